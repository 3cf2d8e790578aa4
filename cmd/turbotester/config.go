package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/runtime/docker"
)

const (
	inputDir       = "./in"
	inputExt       = ".in"
	outputDir      = "./out"
	outputExt      = ".out"
	defaultTopic   = "turbo-test-results"
	defaultWorkdir = "/tmp"
)

type appConfig struct {
	KafkaBrokers     []string
	KafkaTopic       string
	DockerImage      string
	DockerWorkdir    string
	MemoryLimitBytes int64
}

func loadAppConfig(logger *log.Logger) appConfig {
	return appConfig{
		KafkaBrokers:     parseBrokerList(os.Getenv("TURBO_KAFKA_BROKERS")),
		KafkaTopic:       envOrDefault("TURBO_KAFKA_TOPIC", defaultTopic),
		DockerImage:      strings.TrimSpace(os.Getenv("TURBO_DOCKER_IMAGE")),
		DockerWorkdir:    envOrDefault("TURBO_DOCKER_WORKDIR", defaultWorkdir),
		MemoryLimitBytes: parseBytes(logger, os.Getenv("TURBO_MEMORY_LIMIT")),
	}
}

func (c appConfig) backend() execution.Backend {
	if c.DockerImage != "" {
		return execution.BackendDocker
	}
	return execution.BackendLocal
}

func (c appConfig) dockerConfig() docker.Config {
	return docker.Config{
		Image:   c.DockerImage,
		Workdir: c.DockerWorkdir,
		DefaultLimits: execution.RunLimits{
			MemoryLimitBytes: c.MemoryLimitBytes,
		},
	}
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func parseBrokerList(raw string) []string {
	fields := strings.Split(raw, ",")
	brokers := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}
	return brokers
}

func parseBytes(logger *log.Logger, raw string) int64 {
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		logger.Printf("warning: ignoring invalid TURBO_MEMORY_LIMIT value %q", raw)
		return 0
	}
	return value
}
