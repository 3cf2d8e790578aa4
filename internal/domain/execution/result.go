package execution

import "time"

// Status classifies the outcome of a single run or test case.
type Status string

const (
	StatusOK          Status = "OK"
	StatusWrongAnswer Status = "WRONG_ANSWER"
	StatusError       Status = "ERROR"
	StatusMemoryLimit Status = "MEMORY_LIMIT"
)

// Result captures the raw outcome of executing the target once.
type Result struct {
	Status   Status
	Stdout   string
	Stderr   string
	ExitCode int64
	Duration time.Duration
}
