package cmd

import (
	"github.com/spf13/cobra"

	"xray-rpc-sync/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `xray-rpc-sync`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "xray-rpc-sync",
	Short: "Sync the xray_rpc bindings and package version with upstream xray-core releases",

	// PersistentPreRun runs before any subcommand; initialize the logger
	// based on the debug flag here.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute initializes flags, registers subcommands, and starts command
// execution. It's the entry point for the CLI when invoked by the user.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Add the `sync` command and its subcommands (defined in sync.go)
	rootCmd.AddCommand(syncCmd)

	// Cobra prints errors itself; nothing useful to do with the return here.
	_ = rootCmd.Execute()
}
