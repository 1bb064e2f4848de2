package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"xray-rpc-sync/internal/config"
	"xray-rpc-sync/internal/installer"
	"xray-rpc-sync/internal/state"
)

// configPath holds the path to the configuration YAML file.
// Passed via the `--config` or `-c` flag; the file is optional.
var configPath string

// statePath is the path to the JSON file recording the last successful sync.
var statePath string

// syncCmd runs the full release-sync pipeline: locate the latest upstream
// release, install its source, regenerate the RPC bindings, and synchronize
// the package version.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run the full sync (install, compile, rewrite, version)",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)
		st := state.LoadState(statePath)

		p := installer.NewPipeline(cfg)
		if !p.Run(st) {
			os.Exit(1)
		}

		state.SaveState(statePath, st)
	},
}

// syncInstallCmd only downloads and expands the latest source archive.
var syncInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Only download and expand the latest upstream source",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)

		p := installer.NewPipeline(cfg)
		tag := p.LatestTag()
		if tag == "" || !p.Install(tag) {
			os.Exit(1)
		}
	},
}

// syncCompileCmd only regenerates the bindings from an already expanded
// source tree and repairs their imports.
var syncCompileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Only regenerate RPC bindings from the expanded source tree",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)

		p := installer.NewPipeline(cfg)
		tag := p.LatestTag()
		if tag == "" || p.Compile(tag) != installer.StatusOK {
			os.Exit(1)
		}
	},
}

// syncVersionCmd only aligns the package version with the latest release.
var syncVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Only synchronize the package version with the latest release",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)
		st := state.LoadState(statePath)

		p := installer.NewPipeline(cfg)
		tag := p.LatestTag()
		if tag == "" {
			os.Exit(1)
		}
		written, status := p.SyncVersion(tag)
		if status != installer.StatusOK {
			os.Exit(1)
		}

		st.LastTag = tag
		st.PackageVersion = written
		st.SyncedAt = time.Now().Format(time.RFC3339)
		state.SaveState(statePath, st)
	},
}

// init sets up CLI flags and wires the subcommands under `sync`.
func init() {
	syncCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to configuration file")
	syncCmd.PersistentFlags().StringVar(&statePath, "state", "state.json", "Path to sync state file")

	// Subcommands for more granular control
	syncCmd.AddCommand(syncInstallCmd)
	syncCmd.AddCommand(syncCompileCmd)
	syncCmd.AddCommand(syncVersionCmd)
}
