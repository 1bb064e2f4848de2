package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Equal(t, "XTLS", cfg.Upstream.Owner)
	require.Equal(t, "Xray-core", cfg.Upstream.Repo)
	require.Equal(t, "https://api.github.com", cfg.Upstream.APIBase)
	require.True(t, cfg.Install.UseCDN)
	require.Equal(t, "xray_rpc", cfg.Compile.OutputDir)
	require.Equal(t, "xray_rpc", cfg.Compile.Package)
	require.Equal(t, "poetry", cfg.Version.Tool)
}

func TestLoadConfigOverridesKeepOmittedDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
install:
  path: /srv/xray-node
  use_cdn: false
compile:
  python: python3.11
`), 0644))

	cfg := LoadConfig(path)

	require.Equal(t, "/srv/xray-node", cfg.Install.Path)
	require.False(t, cfg.Install.UseCDN)
	require.Equal(t, "python3.11", cfg.Compile.Python)

	// Keys the file omits keep their defaults.
	require.Equal(t, "XTLS", cfg.Upstream.Owner)
	require.Equal(t, "xray_rpc", cfg.Compile.OutputDir)
	require.Equal(t, "poetry", cfg.Version.Tool)
}

func TestLoadConfigMalformedFilePanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("install: [not: a: mapping"), 0644))

	require.Panics(t, func() { LoadConfig(path) })
}
