package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"xray-rpc-sync/internal/config"
	"xray-rpc-sync/internal/logger"
)

// archiveName is the fixed name the downloaded source bundle is stored
// under inside the install directory. It is overwritten on every run.
const archiveName = "xray-core.zip"

// Layout knows where everything for one sync run lives on disk and how the
// upstream download URLs are shaped. It is derived from config once per run
// and handed to the pipeline.
type Layout struct {
	upstream config.Upstream
	path     string
	useCDN   bool
}

// NewLayout builds the install layout. An empty installPath defaults to
// ~/xray-node, matching the stock setup.
func NewLayout(upstream config.Upstream, installPath string, useCDN bool) Layout {
	if installPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// No home directory means no sensible default; fall back to
			// a relative dir so the run can still proceed.
			logger.Warn("[WARN] Cannot resolve home directory (%v), using ./xray-node\n", err)
			home = "."
		}
		installPath = filepath.Join(home, "xray-node")
	}
	return Layout{upstream: upstream, path: installPath, useCDN: useCDN}
}

// InstallPath returns the directory owning the downloaded archive and its
// expanded contents for the lifetime of one run.
func (l Layout) InstallPath() string {
	return l.path
}

// ArchivePath returns the fixed location of the downloaded source bundle.
func (l Layout) ArchivePath() string {
	return filepath.Join(l.path, archiveName)
}

// SourceDir returns the expanded source tree for the given release tag.
// The upstream archive nests everything under <repo>-<version>/, with the
// tag's leading "v" stripped.
func (l Layout) SourceDir(tag string) string {
	version := strings.TrimPrefix(tag, "v")
	return filepath.Join(l.path, l.upstream.Repo+"-"+version)
}

// DownloadURL returns the source archive URL for the given release tag,
// using the CDN mirror when configured. Both hosts share the same path
// shape.
func (l Layout) DownloadURL(tag string) string {
	base := l.upstream.DownloadBase
	if l.useCDN {
		base = l.upstream.CDNBase
	}
	return fmt.Sprintf("%s/%s/%s/archive/refs/tags/%s.zip", base, l.upstream.Owner, l.upstream.Repo, tag)
}

// ReleaseURL returns the releases metadata endpoint for the upstream project.
func (l Layout) ReleaseURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/releases/latest", l.upstream.APIBase, l.upstream.Owner, l.upstream.Repo)
}

// Prepare creates the install directory with restrictive permissions if it
// does not exist yet.
func (l Layout) Prepare() Status {
	if _, err := os.Stat(l.path); err == nil {
		return StatusOK
	}
	if err := os.MkdirAll(l.path, 0755); err != nil {
		logger.Error("[ERROR] Failed to create install directory %s: %v\n", l.path, err)
		return StatusFailed
	}
	logger.Debug("[DEBUG] Created install directory %s\n", l.path)
	return StatusOK
}
