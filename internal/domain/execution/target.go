package execution

// Backend names the runtime that spawns the target program.
type Backend string

const (
	BackendLocal  Backend = "local"
	BackendDocker Backend = "docker"
)

// Target is the executable under test.
type Target struct {
	Path    string
	Backend Backend
	Limits  RunLimits
}

// RunReport is the final record of a whole harness run.
type RunReport struct {
	RunID      string
	Executable string
	Summary    RunSummary
}
