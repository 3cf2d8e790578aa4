// Package local runs target executables directly on the host.
package local

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/ports"
	runtimex "github.com/ziuteczek/Turbo-Tester-3000/internal/runtime"
)

// Module implements runtime.Module for host processes.
type Module struct{}

var _ runtimex.Module = (*Module)(nil)

// New constructs a local Module.
func New() *Module {
	return &Module{}
}

// Backend identifies the module.
func (m *Module) Backend() execution.Backend {
	return execution.BackendLocal
}

// Prepare resolves the target to an absolute path so that a bare file name is
// never looked up in PATH.
func (m *Module) Prepare(ctx context.Context, target execution.Target) (ports.PreparedTarget, error) {
	if target.Path == "" {
		return nil, fmt.Errorf("local runtime: target path is empty")
	}

	path, err := filepath.Abs(target.Path)
	if err != nil {
		return nil, fmt.Errorf("local runtime: resolve %s: %w", target.Path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("local runtime: stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("local runtime: %s is not a regular file", path)
	}

	return &preparedProcess{path: path}, nil
}

// Close is a no-op; the module holds no resources.
func (m *Module) Close() error {
	return nil
}

type preparedProcess struct {
	path string
}

// Run spawns the target with stdin attached and waits for it to exit. The
// command is an argument vector; no shell is involved. A non-zero exit status
// is reported through the result, only a failed spawn is an error.
func (p *preparedProcess) Run(ctx context.Context, stdin string) (*execution.Result, error) {
	cmd := exec.CommandContext(ctx, p.path)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	exitCode := int64(0)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run %s: %w", p.path, err)
		}
		exitCode = int64(exitErr.ExitCode())
	}

	return &execution.Result{
		Status:   execution.StatusOK,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
		Duration: duration,
	}, nil
}

func (p *preparedProcess) Close() error {
	return nil
}
