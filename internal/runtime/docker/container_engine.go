package docker

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	typesimage "github.com/docker/docker/api/types/image"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
)

type containerEngine struct {
	cli           dockerClient
	defaultLimits execution.RunLimits
}

func newContainerEngine(cli dockerClient, defaultLimits execution.RunLimits) *containerEngine {
	return &containerEngine{
		cli:           cli,
		defaultLimits: normalizeLimits(defaultLimits),
	}
}

func (c *containerEngine) pullImage(ctx context.Context, ref string) error {
	reader, err := c.cli.ImagePull(ctx, ref, typesimage.PullOptions{})
	if err != nil {
		return fmt.Errorf("pull image %s: %w", ref, err)
	}
	defer reader.Close()
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return fmt.Errorf("consume pull output for %s: %w", ref, err)
	}
	return nil
}

func (c *containerEngine) effectiveLimits(request execution.RunLimits) execution.RunLimits {
	effective := c.defaultLimits
	if overrides := normalizeLimits(request); overrides.MemoryLimitBytes > 0 {
		effective.MemoryLimitBytes = overrides.MemoryLimitBytes
	}
	return effective
}

// runProgram executes command in a fresh container holding files. The
// container is removed when the run finishes, whatever the outcome.
func (c *containerEngine) runProgram(
	ctx context.Context,
	cfg Config,
	limits execution.RunLimits,
	command []string,
	files []fileSpec,
	stdin string,
) (*execution.Result, error) {
	effectiveLimits := c.effectiveLimits(limits)

	containerID, cleanup, err := c.createContainer(ctx, cfg, effectiveLimits, command)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := c.copyFiles(ctx, containerID, cfg.Workdir, files); err != nil {
		return nil, fmt.Errorf("copy files: %w", err)
	}

	attach, err := c.cli.ContainerAttach(ctx, containerID, container.AttachOptions{
		Stream: true,
		Stdin:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("attach container: %w", err)
	}
	if attach.Conn != nil {
		defer attach.Close()
	}

	start := time.Now()
	if err := c.cli.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	if err := writeStdin(attach, stdin); err != nil {
		return nil, err
	}

	status, err := c.waitForExit(ctx, containerID)
	if err != nil {
		return nil, err
	}
	duration := time.Since(start)

	inspect, err := c.cli.ContainerInspect(detached(ctx), containerID)
	if err != nil {
		return nil, fmt.Errorf("inspect container: %w", err)
	}

	stdout, stderr, err := c.fetchLogs(detached(ctx), containerID)
	if err != nil {
		return nil, fmt.Errorf("fetch logs: %w", err)
	}

	result := &execution.Result{
		Status:   execution.StatusOK,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: status.StatusCode,
		Duration: duration,
	}

	if inspect.ContainerJSONBase != nil && inspect.State != nil && inspect.State.OOMKilled {
		result.Status = execution.StatusMemoryLimit
	}

	return result, nil
}

func (c *containerEngine) createContainer(ctx context.Context, cfg Config, limits execution.RunLimits, cmd []string) (string, func(), error) {
	hostConfig := &container.HostConfig{
		NetworkMode: "none",
		Resources: container.Resources{
			NanoCPUs: 1_000_000_000,
		},
	}
	if limits.MemoryLimitBytes > 0 {
		hostConfig.Resources.Memory = limits.MemoryLimitBytes
		hostConfig.Resources.MemorySwap = limits.MemoryLimitBytes
	}

	resp, err := c.cli.ContainerCreate(
		ctx,
		&container.Config{
			Image:        cfg.Image,
			Cmd:          cmd,
			AttachStdout: true,
			AttachStderr: true,
			AttachStdin:  true,
			OpenStdin:    true,
			StdinOnce:    true,
			WorkingDir:   cfg.Workdir,
		},
		hostConfig,
		nil,
		nil,
		"",
	)
	if err != nil {
		return "", nil, fmt.Errorf("create container: %w", err)
	}

	cleanup := func() {
		_ = c.cli.ContainerRemove(context.Background(), resp.ID, container.RemoveOptions{Force: true})
	}

	return resp.ID, cleanup, nil
}

func writeStdin(attach types.HijackedResponse, stdin string) error {
	if attach.Conn == nil {
		return nil
	}
	if _, err := io.Copy(attach.Conn, strings.NewReader(stdin)); err != nil {
		return fmt.Errorf("write stdin: %w", err)
	}
	if closer, ok := attach.Conn.(interface{ CloseWrite() error }); ok {
		_ = closer.CloseWrite()
	}
	return nil
}

// detached keeps post-run bookkeeping alive after ctx was cancelled so the
// container's output is still collected.
func detached(ctx context.Context) context.Context {
	if ctx.Err() != nil {
		return context.WithoutCancel(ctx)
	}
	return ctx
}
