package execution

// RunLimits describes optional resource boundaries for a single target run.
//
// A zero value RunLimits imposes no additional restrictions. Limits are only
// honoured by sandboxed backends; the local backend runs the target as is.
type RunLimits struct {
	// MemoryLimitBytes caps the container memory usage in bytes. Zero means no limit.
	MemoryLimitBytes int64
}
