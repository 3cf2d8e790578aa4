package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
)

func TestCaseRunnerTrimmedComparison(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		stdout   string
		expected string
		want     execution.Status
	}{
		{name: "trailing newline in output", stdout: "5\n", expected: "5", want: execution.StatusOK},
		{name: "surrounding whitespace in expected", stdout: "5", expected: "  5\n\n", want: execution.StatusOK},
		{name: "leading zero", stdout: "05", expected: "5", want: execution.StatusWrongAnswer},
		{name: "interior whitespace", stdout: "1  2", expected: "1 2", want: execution.StatusWrongAnswer},
		{name: "case sensitive", stdout: "YES", expected: "yes", want: execution.StatusWrongAnswer},
		{name: "both empty", stdout: "\n", expected: "", want: execution.StatusOK},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			runner := newCaseRunner(&stubPreparedTarget{
				runs: []preparedRun{{result: &execution.Result{Stdout: tc.stdout}}},
			})
			result := runner.Run(context.Background(), execution.TestCase{ExpectedOutput: tc.expected})
			if result.Status != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, result.Status)
			}
		})
	}
}

func TestCaseRunnerTrimsInputAndRecordsOutputs(t *testing.T) {
	t.Parallel()

	var gotStdin string
	runner := newCaseRunner(&stubPreparedTarget{
		runFn: func(ctx context.Context, stdin string) (*execution.Result, error) {
			gotStdin = stdin
			return &execution.Result{Stdout: " 6 \n", Stderr: "debug\n", ExitCode: 3}, nil
		},
	})
	runner.now = fixedClock(42 * time.Millisecond)

	result := runner.Run(context.Background(), execution.TestCase{
		Index:          4,
		Name:           "sum",
		Input:          "\n 2 3 \n",
		ExpectedOutput: "5\n",
	})

	if gotStdin != "2 3" {
		t.Fatalf("expected trimmed stdin, got %q", gotStdin)
	}
	if result.Status != execution.StatusWrongAnswer {
		t.Fatalf("expected wrong answer, got %q", result.Status)
	}
	if result.Stdout != "6" || result.Expected != "5" {
		t.Fatalf("expected trimmed values, got stdout=%q expected=%q", result.Stdout, result.Expected)
	}
	if result.Stderr != "debug\n" || result.ExitCode != 3 {
		t.Fatalf("expected stderr and exit code to be captured, got %q %d", result.Stderr, result.ExitCode)
	}
	if result.Duration != 42*time.Millisecond {
		t.Fatalf("expected wall-clock duration 42ms, got %v", result.Duration)
	}
	if result.Case.Index != 4 || result.Case.Name != "sum" {
		t.Fatalf("expected case to be attached, got %+v", result.Case)
	}
}

func TestCaseRunnerSpawnError(t *testing.T) {
	t.Parallel()

	runner := newCaseRunner(&stubPreparedTarget{
		runs: []preparedRun{{err: errors.New("fork/exec ./prog: permission denied")}},
	})
	result := runner.Run(context.Background(), execution.TestCase{ExpectedOutput: "1"})

	if result.Status != execution.StatusError {
		t.Fatalf("expected error status, got %q", result.Status)
	}
	if result.Success() {
		t.Fatalf("spawn errors must count as failures")
	}
	if result.Error != "fork/exec ./prog: permission denied" {
		t.Fatalf("unexpected error message %q", result.Error)
	}
}

func TestCaseRunnerNilResult(t *testing.T) {
	t.Parallel()

	runner := newCaseRunner(&stubPreparedTarget{runs: []preparedRun{{}}})
	result := runner.Run(context.Background(), execution.TestCase{})
	if result.Status != execution.StatusError {
		t.Fatalf("expected error status for nil result, got %q", result.Status)
	}
}
