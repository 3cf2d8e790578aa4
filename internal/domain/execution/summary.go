package execution

// RunSummary aggregates pass/fail counts across a run.
type RunSummary struct {
	Total   int
	Success int
	Fail    int
}

// Add folds a single result into the summary and returns the new value.
func (s RunSummary) Add(result TestResult) RunSummary {
	s.Total++
	if result.Success() {
		s.Success++
	} else {
		s.Fail++
	}
	return s
}

// Summarize folds a sequence of results.
func Summarize(results []TestResult) RunSummary {
	var summary RunSummary
	for _, result := range results {
		summary = summary.Add(result)
	}
	return summary
}
