package state

import (
	"encoding/json" // For JSON encoding and decoding of the state file
	"os"            // For reading and writing the state file

	"xray-rpc-sync/internal/logger"
)

// State records what the last successful sync produced. It is informational:
// the pipeline never short-circuits based on it (every run re-downloads and
// regenerates), but it lets the operator see at a glance which upstream tag
// the local bindings were built from and which version was written.
type State struct {
	LastTag        string `json:"last_tag"`        // Upstream release tag of the last successful sync (e.g. v1.8.4)
	PackageVersion string `json:"package_version"` // Version string written to the local package, if any
	InstallPath    string `json:"install_path"`    // Install directory the source tree was expanded into
	SyncedAt       string `json:"synced_at"`       // RFC 3339 timestamp of the last successful sync
}

// LoadState loads the saved state from a JSON file at the given path.
// If the file does not exist or cannot be read or parsed, it returns an
// empty State: a fresh run needs nothing from previous runs.
func LoadState(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		return &State{}
	}

	var st State
	_ = json.Unmarshal(file, &st)
	return &st
}

// SaveState writes the given State to a JSON file at the given path,
// pretty-printed for readability. Errors are logged but not propagated:
// losing the state file costs nothing beyond the informational record.
func SaveState(path string, st *State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}
