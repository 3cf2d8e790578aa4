package ports

import (
	"context"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
)

// CaseSource yields test cases in execution order and returns io.EOF when exhausted.
type CaseSource interface {
	NextCase(ctx context.Context) (execution.TestCase, error)
}
