package installer

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"xray-rpc-sync/internal/logger"
)

// protoExt is the interface-definition extension the compiler consumes.
const protoExt = ".proto"

// compileProtos regenerates the Python gRPC bindings for every .proto file
// under srcRoot into destRoot, invoking the compiler once via the runner.
//
// destRoot is unconditionally removed and recreated first. Destructive on
// purpose: stale bindings from an earlier run must never mix with fresh
// output. The compiler's exit code is returned verbatim; translating a
// non-zero exit into a failure is the caller's call.
func compileProtos(runner Runner, python, srcRoot, destRoot string) (int, error) {
	if err := os.RemoveAll(destRoot); err != nil {
		return -1, err
	}
	if err := os.MkdirAll(destRoot, 0755); err != nil {
		return -1, err
	}

	protoFiles, err := findFilesByExtension(srcRoot, protoExt)
	if err != nil {
		return -1, err
	}
	logger.Debug("[DEBUG] Found %d proto files under %s\n", len(protoFiles), srcRoot)

	srcAbs, err := filepath.Abs(srcRoot)
	if err != nil {
		return -1, err
	}
	destAbs, err := filepath.Abs(destRoot)
	if err != nil {
		return -1, err
	}

	args := []string{
		"-m", "grpc_tools.protoc",
		"-I=" + srcAbs,
		"--python_out=" + destAbs,
		"--grpc_python_out=" + destAbs,
	}
	args = append(args, protoFiles...)

	exitCode, _, err := runner.Run(context.Background(), python, args...)
	if err != nil {
		logger.Error("[ERROR] Compiler invocation failed (exit %d): %v\n", exitCode, err)
	}
	return exitCode, nil
}

// findFilesByExtension recursively searches rootPath for all files ending
// with the given extension and returns their absolute paths.
func findFilesByExtension(rootPath, extension string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			files = append(files, abs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
