package docker

import (
	"context"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
)

const targetFilename = "target"

type preparedBinary struct {
	engine *containerEngine
	config Config
	binary []byte
	limits execution.RunLimits
}

func (p *preparedBinary) Run(ctx context.Context, stdin string) (*execution.Result, error) {
	return p.engine.runProgram(ctx, p.config, p.limits, []string{"./" + targetFilename}, []fileSpec{
		{
			Name: targetFilename,
			Mode: 0o755,
			Data: p.binary,
		},
	}, stdin)
}

func (p *preparedBinary) Close() error {
	return nil
}
