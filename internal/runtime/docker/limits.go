package docker

import "github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"

func normalizeLimits(l execution.RunLimits) execution.RunLimits {
	if l.MemoryLimitBytes < 0 {
		l.MemoryLimitBytes = 0
	}
	return l
}
