package installer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"xray-rpc-sync/internal/config"
)

func stockUpstream() config.Upstream {
	return config.Default().Upstream
}

func TestLayoutURLs(t *testing.T) {
	direct := NewLayout(stockUpstream(), "/tmp/xray-node", false)
	require.Equal(t,
		"https://github.com/XTLS/Xray-core/archive/refs/tags/v1.8.4.zip",
		direct.DownloadURL("v1.8.4"))
	require.Equal(t,
		"https://api.github.com/repos/XTLS/Xray-core/releases/latest",
		direct.ReleaseURL())

	cdn := NewLayout(stockUpstream(), "/tmp/xray-node", true)
	require.Equal(t,
		"https://download.fastgit.org/XTLS/Xray-core/archive/refs/tags/v1.8.4.zip",
		cdn.DownloadURL("v1.8.4"))
}

func TestLayoutPaths(t *testing.T) {
	l := NewLayout(stockUpstream(), "/tmp/xray-node", false)
	require.Equal(t, filepath.Join("/tmp/xray-node", "xray-core.zip"), l.ArchivePath())

	// The expanded source dir carries the tag with its leading v stripped.
	require.Equal(t, filepath.Join("/tmp/xray-node", "Xray-core-1.8.4"), l.SourceDir("v1.8.4"))
}

func TestLayoutPrepareCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xray-node")
	l := NewLayout(stockUpstream(), path, false)

	require.Equal(t, StatusOK, l.Prepare())
	require.DirExists(t, path)

	// Re-preparing an existing directory is a no-op.
	require.Equal(t, StatusOK, l.Prepare())
}
