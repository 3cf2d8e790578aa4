package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
)

func TestConsoleRendersRun(t *testing.T) {
	t.Parallel()

	results := []execution.TestResult{
		{
			Case:     execution.TestCase{Index: 0, Name: "a"},
			Status:   execution.StatusOK,
			Stdout:   "3",
			Expected: "3",
			Duration: 12 * time.Millisecond,
		},
		{
			Case:     execution.TestCase{Index: 1, Name: "b"},
			Status:   execution.StatusWrongAnswer,
			Stdout:   "5",
			Expected: "4",
			Duration: 1500 * time.Microsecond,
		},
		{
			Case:   execution.TestCase{Index: 2, Name: "c"},
			Status: execution.StatusError,
			Error:  "permission denied",
		},
	}

	cases := []struct {
		name   string
		silent bool
		want   string
	}{
		{
			name: "verbose",
			want: "Number of test cases: 3\n" +
				"0. SUCCESS a in 12ms\n" +
				"1. FAILED b in 1ms\n" +
				"Expected: 4\n" +
				"Received: 5\n" +
				"2. ERROR running subprocess: permission denied\n" +
				"TOTAL\n" +
				"SUCCES: 1\n" +
				"FAILS: 2\n",
		},
		{
			name:   "silent",
			silent: true,
			want: "Number of test cases: 3\n" +
				"1. FAILED b in 1ms\n" +
				"Expected: 4\n" +
				"Received: 5\n" +
				"2. ERROR running subprocess: permission denied\n" +
				"TOTAL\n" +
				"SUCCES: 1\n" +
				"FAILS: 2\n",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			console := NewConsole(&out, tc.silent)
			console.Header(len(results))
			for _, r := range results {
				console.Result(r)
			}
			console.Summary(execution.Summarize(results))

			if diff := cmp.Diff(tc.want, out.String()); diff != "" {
				t.Fatalf("unexpected output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConsoleMemoryLimitIsReportedAsFailure(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	NewConsole(&out, true).Result(execution.TestResult{
		Case:     execution.TestCase{Index: 4, Name: "huge"},
		Status:   execution.StatusMemoryLimit,
		Expected: "1",
	})

	want := "4. FAILED huge in 0ms\nExpected: 1\nReceived: \n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestConsoleEmptyRun(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	console := NewConsole(&out, false)
	console.Header(0)
	console.Summary(execution.RunSummary{})

	want := "Number of test cases: 0\nTOTAL\nSUCCES: 0\nFAILS: 0\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}
