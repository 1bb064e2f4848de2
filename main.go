package main

import (
	"xray-rpc-sync/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The xray-rpc-sync project keeps the local xray_rpc Python package in lockstep
// with upstream XTLS/Xray-core releases. A full sync run will:
//   - Query the GitHub releases API for the latest xray-core tag
//   - Download the tagged source archive (optionally via a CDN mirror) into the
//     install directory, streaming it to disk
//   - Expand the archive next to it, yielding the Xray-core-<version>/ source tree
//   - Find every .proto file in that tree and invoke grpc_tools.protoc once to
//     regenerate the Python gRPC bindings into a wiped output directory
//   - Rewrite the generated sibling-relative imports to absolute xray_rpc.* form
//   - Bump the package version with poetry to track the upstream tag
//
// Error handling strategy:
//   - Each stage logs its own failures and reports an outcome; the pipeline
//     stops at the first failed stage rather than propagating panics
//   - A failed run leaves at most partial downloads/expansions behind; the next
//     run's truncating download and destructive output wipe clean those up
//
// Integration points:
//   - GitHub releases API and archive endpoints (or a fastgit CDN mirror)
//   - The protobuf/gRPC compiler and poetry, both invoked as external commands
//   - A JSON state file recording what the last successful sync produced
func main() {
	cmd.Execute()
}
