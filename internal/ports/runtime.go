package ports

import (
	"context"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
)

// PreparedTarget represents an executable that is ready to be run once per case.
type PreparedTarget interface {
	Run(ctx context.Context, stdin string) (*execution.Result, error)
	Close() error
}

// Runner prepares target executables on a runtime backend.
type Runner interface {
	Prepare(ctx context.Context, target execution.Target) (PreparedTarget, error)
	Close() error
}
