package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/robbyt/go-supervisor/supervisor"
	"github.com/urfave/cli/v3"

	"github.com/choznerol/luactor/config"
	"github.com/choznerol/luactor/engine"
)

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "Run an actor, feeding stdin lines to its handle hook",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the TOML actor definition",
		},
	}, loggingFlags...),
	Action: runAction,
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	setupLogger(cmd)
	logger := slog.Default()

	configPath := cmd.String("config")
	if configPath == "" {
		if cmd.Args().Len() < 1 {
			return fmt.Errorf(
				"config file path required (use the --config flag, or provide it as a positional argument)",
			)
		}
		configPath = cmd.Args().Get(0)
	}

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	actor, err := cfg.Builder().Build()
	if err != nil {
		return fmt.Errorf("failed to build actor: %w", err)
	}
	actor.SetLogger(logger.With("actor", cfg.Actor.Name))

	eng := engine.New(engine.WithLogger(logger))
	target := eng.Spawn(actor, engine.SpawnWithName(cfg.Actor.Name))
	console := eng.Spawn(&consoleActor{out: os.Stdout}, engine.SpawnWithName("console"))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	runner, err := engine.NewRunner(eng,
		engine.WithRunnerContext(runCtx),
		engine.WithRunnerLogHandler(logger.Handler()),
	)
	if err != nil {
		return fmt.Errorf("failed to create engine runner: %w", err)
	}

	// Pump stdin lines into the actor. EOF releases the supervisor via the
	// shared context so the stopped hook still runs.
	go func() {
		defer cancel()
		pumpLines(runCtx, os.Stdin, eng, target, console)
	}()

	super, err := supervisor.New(
		supervisor.WithContext(runCtx),
		supervisor.WithLogHandler(logger.Handler()),
		supervisor.WithRunnables(runner),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run actor host: %w", err)
	}

	logger.Info("Actor host shutdown complete")
	return nil
}

// pumpLines sends each line of input as a message to target, with console as
// the sender so handle hook return values come back as printed replies.
func pumpLines(ctx context.Context, in io.Reader, eng *engine.Engine, target, console *engine.PID) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		eng.Send(target, scanner.Text(), console)
	}
}

// consoleActor prints every handle reply it receives.
type consoleActor struct {
	out io.Writer
}

func (c *consoleActor) Receive(ctx *engine.Context) {
	switch ctx.Message().(type) {
	case engine.Started, engine.Stopping, engine.Stopped:
	default:
		fmt.Fprintln(c.out, ctx.Message())
	}
}
