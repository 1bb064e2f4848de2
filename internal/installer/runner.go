package installer

import (
	"context"
	"os/exec"
	"strings"

	"xray-rpc-sync/internal/logger"
)

// Runner invokes an external tool and reports its outcome. The pipeline
// treats the protobuf compiler and the version tool as opaque collaborators:
// arguments go in, an exit code and captured stdout come out. Tests swap in
// fake runners; production uses ExecRunner.
type Runner interface {
	// Run executes name with args, honoring ctx for cancellation/timeouts.
	// exitCode is the process exit code (0 on success). stdout is the
	// captured standard output. err is non-nil for failures to start the
	// process, context expiry, or a non-zero exit.
	Run(ctx context.Context, name string, args ...string) (exitCode int, stdout string, err error)
}

// ExecRunner runs tools via os/exec.
type ExecRunner struct{}

// Run executes the command, capturing stdout. Stderr is folded into the
// debug log rather than returned: callers only ever act on the exit code
// and stdout.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (int, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))

	var out, errOut strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()
	if errOut.Len() > 0 {
		logger.Debug("[DEBUG] %s stderr: %s\n", name, errOut.String())
	}

	exitCode := 0
	if err != nil {
		exitCode = -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		// Context expiry surfaces through err; report it over the exec error.
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
	}
	return exitCode, out.String(), err
}
