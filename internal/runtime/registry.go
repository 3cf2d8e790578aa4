package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/ports"
)

// Registry wires backend modules into a single ports.Runner implementation.
type Registry struct {
	mu      sync.RWMutex
	modules map[execution.Backend]Module
}

var _ ports.Runner = (*Registry)(nil)

// NewRegistry constructs a registry from the supplied modules.
func NewRegistry(mods ...Module) (*Registry, error) {
	reg := &Registry{
		modules: make(map[execution.Backend]Module, len(mods)),
	}

	for _, module := range mods {
		if module == nil {
			return nil, fmt.Errorf("runtime module cannot be nil")
		}

		backend := module.Backend()
		if backend == "" {
			return nil, fmt.Errorf("runtime module missing backend identifier")
		}
		if _, exists := reg.modules[backend]; exists {
			return nil, fmt.Errorf("duplicate runtime module for backend %q", backend)
		}

		reg.modules[backend] = module
	}

	if len(reg.modules) == 0 {
		return nil, fmt.Errorf("at least one runtime module must be registered")
	}

	return reg, nil
}

// Prepare dispatches to the module for the target's backend. An empty backend
// means local.
func (r *Registry) Prepare(ctx context.Context, target execution.Target) (ports.PreparedTarget, error) {
	backend := target.Backend
	if backend == "" {
		backend = execution.BackendLocal
	}

	module, err := r.moduleFor(backend)
	if err != nil {
		return nil, err
	}
	return module.Prepare(ctx, target)
}

// Close releases resources held by each module.
func (r *Registry) Close() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs []error
	for backend, module := range r.modules {
		if err := module.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", backend, err))
		}
	}

	return errors.Join(errs...)
}

func (r *Registry) moduleFor(backend execution.Backend) (Module, error) {
	r.mu.RLock()
	module, ok := r.modules[backend]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no runtime module registered for backend %q", backend)
	}
	return module, nil
}
