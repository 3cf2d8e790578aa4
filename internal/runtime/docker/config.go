package docker

import "github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"

const defaultWorkdir = "/tmp"

// Config describes how to create a Docker-backed runtime engine.
type Config struct {
	// Image is the container image the target binary runs in.
	Image string

	// Workdir is where the binary is copied inside the container.
	Workdir string

	DefaultLimits execution.RunLimits
}
