package runtime

import (
	"context"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/ports"
)

// Module provides support for spawning targets on a specific backend.
type Module interface {
	Backend() execution.Backend
	Prepare(ctx context.Context, target execution.Target) (ports.PreparedTarget, error)
	Close() error
}
