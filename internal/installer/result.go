package installer

// Status is the outcome of a pipeline stage. Stages distinguish "a
// precondition was not met, nothing was attempted" from "the operation was
// attempted and failed" so callers can log and abort appropriately instead
// of collapsing everything into a bool.
type Status int

const (
	// StatusOK means the stage completed its work.
	StatusOK Status = iota
	// StatusSkipped means a precondition was not met (e.g. the archive to
	// expand does not exist); the stage did nothing.
	StatusSkipped
	// StatusFailed means the stage attempted its work and failed.
	StatusFailed
)

// String returns a human-readable name for logging.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
