package executor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/ports"
)

// Service coordinates case execution through a runtime implementation.
type Service struct {
	runtime ports.Runner
}

// NewService constructs a Service with the provided runtime dependency.
func NewService(runtime ports.Runner) *Service {
	return &Service{runtime: runtime}
}

// Execute prepares target once and runs every case from source against it,
// one at a time and in the order the source yields them.
//
// When onResult is provided it is invoked after every case with the
// corresponding result, before the next case starts. Per-case execution
// failures are reported through the result; only preparation and case loading
// failures are returned as errors.
func (s *Service) Execute(
	ctx context.Context,
	target execution.Target,
	source ports.CaseSource,
	onResult func(execution.TestResult),
) (execution.RunSummary, error) {
	var summary execution.RunSummary

	prepared, err := s.runtime.Prepare(ctx, target)
	if err != nil {
		return summary, fmt.Errorf("prepare target: %w", err)
	}
	if prepared == nil {
		return summary, fmt.Errorf("runner returned nil prepared target")
	}
	defer prepared.Close()

	runner := newCaseRunner(prepared)
	for {
		tc, err := source.NextCase(ctx)
		if errors.Is(err, io.EOF) {
			return summary, nil
		}
		if err != nil {
			return summary, fmt.Errorf("load case %d: %w", summary.Total, err)
		}

		result := runner.Run(ctx, tc)
		summary = summary.Add(result)
		if onResult != nil {
			onResult(result)
		}
	}
}

// Close releases any resources owned by the underlying runtime.
func (s *Service) Close() error {
	return s.runtime.Close()
}
