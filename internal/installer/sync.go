package installer

import (
	"net/http"
	"os"
	"time"

	"xray-rpc-sync/internal/config"
	"xray-rpc-sync/internal/logger"
	"xray-rpc-sync/internal/state"
)

// Pipeline holds everything one sync run needs: the HTTP client shared by
// all network calls, the runner for external tools, the loaded config, and
// the on-disk layout. Construct one per run; it is not safe for concurrent
// use and never needs to be.
type Pipeline struct {
	Client *http.Client
	Runner Runner
	Cfg    config.Config
	Layout Layout

	// Now supplies the timestamp for build qualifiers; tests may pin it.
	Now func() time.Time
}

// NewPipeline wires a production pipeline from config.
func NewPipeline(cfg config.Config) *Pipeline {
	return &Pipeline{
		Client: NewHTTPClient(),
		Runner: ExecRunner{},
		Cfg:    cfg,
		Layout: NewLayout(cfg.Upstream, cfg.Install.Path, cfg.Install.UseCDN),
		Now:    time.Now,
	}
}

// LatestTag fetches the upstream release tag once per run. An empty result
// means the locator failed; callers abort dependent stages.
func (p *Pipeline) LatestTag() string {
	return latestTag(p.Client, p.Layout.ReleaseURL())
}

// Install prepares the install directory, downloads the source archive for
// tag, and expands it in place. Failure of any step aborts the rest.
func (p *Pipeline) Install(tag string) bool {
	if p.Layout.Prepare() != StatusOK {
		return false
	}
	if !downloadFile(p.Client, p.Layout.DownloadURL(tag), p.Layout.ArchivePath()) {
		return false
	}
	if expandArchive(p.Layout.ArchivePath()) != StatusOK {
		return false
	}
	logger.Info("[INFO] Installed %s %s to %s\n", p.Cfg.Upstream.Repo, tag, p.Layout.InstallPath())
	return true
}

// Compile regenerates the bindings for tag and repairs their imports. The
// expected expanded source tree must exist; a missing tree is logged as an
// error and skips the stage. The compiler's exit code is logged but not
// enforced, matching the original tooling.
func (p *Pipeline) Compile(tag string) Status {
	srcPath := p.Layout.SourceDir(tag)
	if _, err := os.Stat(srcPath); err != nil {
		logger.Error("[ERROR] %s does not exist\n", srcPath)
		return StatusSkipped
	}

	destPath := p.Cfg.Compile.OutputDir
	exitCode, err := compileProtos(p.Runner, p.Cfg.Compile.Python, srcPath, destPath)
	if err != nil {
		logger.Error("[ERROR] Failed to generate bindings: %v\n", err)
		return StatusFailed
	}
	if exitCode != 0 {
		logger.Warn("[WARN] Compiler exited with code %d\n", exitCode)
	}
	logger.Info("[INFO] Generated RPC bindings under %s\n", destPath)

	if err := rewriteImports(destPath, p.Cfg.Compile.Package); err != nil {
		logger.Error("[ERROR] Failed to rewrite generated imports: %v\n", err)
		return StatusFailed
	}
	return StatusOK
}

// SyncVersion aligns the local package version with tag and returns the
// version that was written ("" on failure).
func (p *Pipeline) SyncVersion(tag string) (string, Status) {
	return syncVersion(p.Runner, p.Cfg.Version.Tool, tag, p.Now)
}

// Run executes the full pipeline: locate the latest release once, install
// its source, regenerate and repair the bindings, and synchronize the
// package version. The tag from the single locator call is threaded through
// every stage. The updated state is recorded in st on success.
func (p *Pipeline) Run(st *state.State) bool {
	tag := p.LatestTag()
	if tag == "" {
		logger.Error("[ERROR] Could not determine the latest %s release\n", p.Cfg.Upstream.Repo)
		return false
	}
	logger.Info("[INFO] Latest %s release is %s\n", p.Cfg.Upstream.Repo, tag)

	if !p.Install(tag) {
		return false
	}

	if p.Compile(tag) != StatusOK {
		return false
	}

	written, status := p.SyncVersion(tag)
	if status != StatusOK {
		return false
	}

	st.LastTag = tag
	st.PackageVersion = written
	st.InstallPath = p.Layout.InstallPath()
	st.SyncedAt = p.Now().Format(time.RFC3339)
	return true
}
