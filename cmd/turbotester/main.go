// Command turbotester runs an executable against every ./in/*.in case and
// compares its standard output with the matching ./out/*.out file.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/app/executor"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/app/producer"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/failure"
	kafkainfra "github.com/ziuteczek/Turbo-Tester-3000/internal/infra/kafka"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/pairing"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/ports"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/report"
	runtimex "github.com/ziuteczek/Turbo-Tester-3000/internal/runtime"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/runtime/docker"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/runtime/local"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/target"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newApp(stdin, stdout, stderr).execute(ctx, args)
}

type app struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	logger     *log.Logger
	config     appConfig
	isTerminal bool

	newDocker    func(docker.Config) (runtimex.Module, error)
	newPublisher func(kafkainfra.PublisherConfig) (ports.ResultPublisher, error)
	newRunID     func() string
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	logger := log.New(stderr, "", log.LstdFlags)
	return &app{
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		logger:     logger,
		config:     loadAppConfig(logger),
		isTerminal: isTerminal(stdin),
		newDocker: func(cfg docker.Config) (runtimex.Module, error) {
			return docker.New(cfg)
		},
		newPublisher: func(cfg kafkainfra.PublisherConfig) (ports.ResultPublisher, error) {
			return kafkainfra.NewPublisher(cfg)
		},
		newRunID: func() string {
			return ulid.Make().String()
		},
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// execute parses args and drives one run. Fatal errors are printed as a single
// "Error: <message>" line and turn into exit status 1; failing cases do not.
func (a *app) execute(ctx context.Context, args []string) int {
	cmd := a.command()
	cmd.SetArgs(args)
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func (a *app) command() *cobra.Command {
	var (
		execPath string
		silent   bool
	)

	cmd := &cobra.Command{
		Use:           "turbotester",
		Short:         "Test an executable against input/output cases",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSuite(cmd.Context(), execPath, silent)
		},
	}

	cmd.Flags().StringVarP(&execPath, "exec", "e", "", "path to the executable (prompted for when omitted)")
	cmd.Flags().BoolVarP(&silent, "silent", "s", false, "only print failed cases")

	return cmd
}

func (a *app) runSuite(ctx context.Context, execPath string, silent bool) error {
	path, err := a.resolveExecutable(ctx, execPath)
	if err != nil {
		return err
	}

	pairs, err := pairing.Discover(inputDir, inputExt, outputDir, outputExt)
	if err != nil {
		return err
	}

	registry, err := a.runtimeRegistry()
	if err != nil {
		return err
	}
	service := executor.NewService(registry)
	defer func() {
		if cerr := service.Close(); cerr != nil {
			a.logger.Printf("warning: failed to close runtime: %v", cerr)
		}
	}()

	runID := a.newRunID()
	publisher := a.openPublisher()
	if publisher != nil {
		defer func() {
			if cerr := publisher.Close(); cerr != nil {
				a.logger.Printf("warning: failed to close kafka publisher: %v", cerr)
			}
		}()
	}

	console := report.NewConsole(a.stdout, silent)
	source := producer.NewService(pairs)
	console.Header(source.Len())

	summary, err := service.Execute(ctx, execution.Target{
		Path:    path,
		Backend: a.config.backend(),
		Limits:  execution.RunLimits{MemoryLimitBytes: a.config.MemoryLimitBytes},
	}, source, func(result execution.TestResult) {
		console.Result(result)
		if publisher == nil {
			return
		}
		if perr := publisher.PublishTestResult(ctx, runID, result); perr != nil {
			a.logger.Printf("warning: failed to publish result of case %d: %v", result.Case.Index, perr)
		}
	})
	if err != nil {
		return failure.Wrap(failure.Internal, err, "Run aborted")
	}

	console.Summary(summary)

	if publisher != nil {
		if perr := publisher.PublishRunReport(ctx, execution.RunReport{
			RunID:      runID,
			Executable: path,
			Summary:    summary,
		}); perr != nil {
			a.logger.Printf("warning: failed to publish run summary: %v", perr)
		}
	}

	return nil
}

func (a *app) resolveExecutable(ctx context.Context, execPath string) (string, error) {
	if execPath == "" {
		prompter := target.NewPrompter(a.stdin, a.stdout, target.DefaultMaxAttempts)
		if !a.isTerminal {
			prompter.EchoAnswers()
		}

		var err error
		execPath, err = prompter.ExecutablePath(ctx)
		if err != nil {
			return "", err
		}
	}

	if err := target.Validate(execPath); err != nil {
		return "", err
	}
	return execPath, nil
}

func (a *app) runtimeRegistry() (*runtimex.Registry, error) {
	modules := []runtimex.Module{local.New()}
	if a.config.DockerImage != "" {
		engine, err := a.newDocker(a.config.dockerConfig())
		if err != nil {
			return nil, failure.Wrap(failure.Internal, err, "Docker backend unavailable")
		}
		modules = append(modules, engine)
	}

	registry, err := runtimex.NewRegistry(modules...)
	if err != nil {
		return nil, failure.Wrap(failure.Internal, err, "Runtime setup failed")
	}
	return registry, nil
}

// openPublisher returns nil when publishing is disabled or unavailable; the
// run itself never depends on Kafka.
func (a *app) openPublisher() ports.ResultPublisher {
	if len(a.config.KafkaBrokers) == 0 {
		return nil
	}

	publisher, err := a.newPublisher(kafkainfra.PublisherConfig{
		Brokers: a.config.KafkaBrokers,
		Topic:   a.config.KafkaTopic,
	})
	if err != nil {
		a.logger.Printf("warning: result publishing disabled: %v", err)
		return nil
	}
	return publisher
}
