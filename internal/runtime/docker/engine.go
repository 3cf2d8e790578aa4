// Package docker runs target executables inside throwaway Docker containers.
package docker

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/docker/docker/client"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/ports"
	runtimex "github.com/ziuteczek/Turbo-Tester-3000/internal/runtime"
)

// Engine implements runtime.Module backed by Docker containers.
type Engine struct {
	config     Config
	client     dockerClient
	containers *containerEngine

	pullOnce sync.Once
	pullErr  error
}

var _ runtimex.Module = (*Engine)(nil)

// New constructs an Engine using the supplied configuration.
func New(cfg Config) (*Engine, error) {
	if cfg.Image == "" {
		return nil, fmt.Errorf("docker runtime: image must be configured")
	}

	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("docker runtime: create client: %w", err)
	}

	return newEngineWithClient(cli, cfg), nil
}

func newEngineWithClient(cli dockerClient, cfg Config) *Engine {
	if cfg.Workdir == "" {
		cfg.Workdir = defaultWorkdir
	}
	return &Engine{
		config:     cfg,
		client:     cli,
		containers: newContainerEngine(cli, cfg.DefaultLimits),
	}
}

// Backend identifies the module.
func (e *Engine) Backend() execution.Backend {
	return execution.BackendDocker
}

// Prepare pulls the image on first use and loads the target binary from the
// host so it can be copied into a fresh container for every run.
func (e *Engine) Prepare(ctx context.Context, target execution.Target) (ports.PreparedTarget, error) {
	if target.Path == "" {
		return nil, fmt.Errorf("docker runtime: target path is empty")
	}

	if err := e.ensureImage(ctx); err != nil {
		return nil, err
	}

	binary, err := os.ReadFile(target.Path)
	if err != nil {
		return nil, fmt.Errorf("docker runtime: read target: %w", err)
	}

	return &preparedBinary{
		engine: e.containers,
		config: e.config,
		binary: binary,
		limits: target.Limits,
	}, nil
}

// Close releases the Docker client.
func (e *Engine) Close() error {
	if err := e.client.Close(); err != nil {
		return fmt.Errorf("docker client: %w", err)
	}
	return nil
}

func (e *Engine) ensureImage(ctx context.Context) error {
	e.pullOnce.Do(func() {
		e.pullErr = e.containers.pullImage(ctx, e.config.Image)
	})
	return e.pullErr
}
