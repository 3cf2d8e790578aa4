package ports

import (
	"context"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
)

// ResultPublisher publishes case results and run reports to an external system.
type ResultPublisher interface {
	PublishTestResult(ctx context.Context, runID string, result execution.TestResult) error
	PublishRunReport(ctx context.Context, report execution.RunReport) error
	Close() error
}
