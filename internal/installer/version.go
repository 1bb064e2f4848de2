package installer

import (
	"context"
	"strings"
	"time"

	"xray-rpc-sync/internal/logger"
)

// versionReadTimeout bounds the version-read invocation. A version tool that
// hangs would otherwise stall the whole run.
const versionReadTimeout = 2 * time.Second

// buildStamp is the minute-resolution timestamp layout appended as a build
// qualifier when the package already tracks the upstream release.
const buildStamp = "200601021504"

// syncVersion aligns the local package version with the upstream release tag.
//
// The current version is read with `<tool> version -s` under a 2s timeout; a
// timeout or non-zero exit is a hard failure for this stage. The tag's
// leading "v" is stripped to get the comparable numeric string. If the
// current version already starts with it (same major.minor.patch, possibly
// with a trailing build qualifier), a fresh minute-resolution timestamp is
// appended so the published package still changes; otherwise the version is
// set to the upstream numeric verbatim. The write is fire-and-forget, as the
// original tooling never checked it either.
//
// It returns the version that was written, or "" on failure, alongside the
// stage status.
func syncVersion(runner Runner, tool, upstreamTag string, now func() time.Time) (string, Status) {
	ctx, cancel := context.WithTimeout(context.Background(), versionReadTimeout)
	defer cancel()

	exitCode, stdout, err := runner.Run(ctx, tool, "version", "-s")
	if err != nil || exitCode != 0 {
		logger.Error("[ERROR] Failed to read current package version (exit %d): %v\n", exitCode, err)
		return "", StatusFailed
	}
	current := strings.TrimSpace(stdout)

	numeric := strings.TrimPrefix(upstreamTag, "v")

	var newVersion string
	if strings.HasPrefix(current, numeric) {
		logger.Info("[INFO] Current version %s already tracks %s, appending build qualifier\n", current, upstreamTag)
		newVersion = numeric + "." + now().Format(buildStamp)
	} else {
		logger.Info("[INFO] Current version %s differs from %s, following upstream\n", current, upstreamTag)
		newVersion = numeric
	}

	logger.Info("[INFO] Setting package version to %s\n", newVersion)
	_, _, _ = runner.Run(context.Background(), tool, "version", newVersion)
	return newVersion, StatusOK
}
