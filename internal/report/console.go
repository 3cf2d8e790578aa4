// Package report renders harness progress as plain text lines.
package report

import (
	"fmt"
	"io"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
)

// Console writes the human-readable run report.
type Console struct {
	out    io.Writer
	silent bool
}

// NewConsole returns a Console writing to out. In silent mode passing cases
// are not printed; failures, errors, the header and the summary always are.
func NewConsole(out io.Writer, silent bool) *Console {
	return &Console{out: out, silent: silent}
}

// Header announces the number of cases about to run.
func (c *Console) Header(total int) {
	fmt.Fprintf(c.out, "Number of test cases: %d\n", total)
}

// Result prints the outcome of one case.
func (c *Console) Result(r execution.TestResult) {
	switch {
	case r.Status == execution.StatusError:
		fmt.Fprintf(c.out, "%d. ERROR running subprocess: %s\n", r.Case.Index, r.Error)
	case r.Success():
		if c.silent {
			return
		}
		fmt.Fprintf(c.out, "%d. SUCCESS %s in %dms\n", r.Case.Index, r.Case.Name, r.ElapsedMillis())
	default:
		fmt.Fprintf(c.out, "%d. FAILED %s in %dms\n", r.Case.Index, r.Case.Name, r.ElapsedMillis())
		fmt.Fprintf(c.out, "Expected: %s\n", r.Expected)
		fmt.Fprintf(c.out, "Received: %s\n", r.Stdout)
	}
}

// Summary prints the closing totals. "SUCCES" is the established spelling
// that downstream scripts grep for.
func (c *Console) Summary(s execution.RunSummary) {
	fmt.Fprintln(c.out, "TOTAL")
	fmt.Fprintf(c.out, "SUCCES: %d\n", s.Success)
	fmt.Fprintf(c.out, "FAILS: %d\n", s.Fail)
}
