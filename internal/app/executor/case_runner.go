package executor

import (
	"context"
	"strings"
	"time"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/ports"
)

type caseRunner struct {
	prepared ports.PreparedTarget
	now      func() time.Time
}

func newCaseRunner(prepared ports.PreparedTarget) *caseRunner {
	return &caseRunner{prepared: prepared, now: time.Now}
}

// Run executes a single case and classifies the outcome. It never fails: a
// spawn error becomes a StatusError result.
func (r *caseRunner) Run(ctx context.Context, tc execution.TestCase) execution.TestResult {
	input := strings.TrimSpace(tc.Input)
	result := execution.TestResult{
		Case:     tc,
		Expected: strings.TrimSpace(tc.ExpectedOutput),
	}

	start := r.now()
	run, err := r.prepared.Run(ctx, input)
	result.Duration = r.now().Sub(start)

	if err != nil {
		result.Status = execution.StatusError
		result.Error = err.Error()
		return result
	}
	if run == nil {
		result.Status = execution.StatusError
		result.Error = "runner returned no result"
		return result
	}

	result.Stdout = strings.TrimSpace(run.Stdout)
	result.Stderr = run.Stderr
	result.ExitCode = run.ExitCode

	result.Status = run.Status
	if result.Status == "" {
		result.Status = execution.StatusOK
	}
	if result.Status == execution.StatusOK && result.Stdout != result.Expected {
		result.Status = execution.StatusWrongAnswer
	}

	return result
}
