package execution

import "time"

// TestCase describes a single stdin/stdout expectation pair loaded from disk.
type TestCase struct {
	// Index is the zero-based position of the case in sorted order.
	Index int

	// Name is the base file name shared by the input and output files.
	Name           string
	Input          string
	ExpectedOutput string
}

// TestResult captures the outcome of executing a single TestCase.
//
// Stdout and Expected hold the trimmed values that were compared.
type TestResult struct {
	Case     TestCase
	Status   Status
	Stdout   string
	Expected string
	Stderr   string
	ExitCode int64
	Duration time.Duration
	Error    string
}

// Success reports whether the case passed.
func (r TestResult) Success() bool {
	return r.Status == StatusOK
}

// ElapsedMillis returns the run duration in whole milliseconds.
func (r TestResult) ElapsedMillis() int64 {
	return r.Duration.Milliseconds()
}
