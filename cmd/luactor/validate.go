package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/choznerol/luactor/config"
)

var validateCmd = &cli.Command{
	Name:    "validate",
	Aliases: []string{"lint"},
	Usage:   "Validate an actor definition and compile its hooks",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the TOML actor definition",
		},
		&cli.BoolFlag{
			Name:    "tree",
			Aliases: []string{"t"},
			Usage:   "Show a tree view of the validated definition",
		},
	}, loggingFlags...),
	Action: validateAction,
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	setupLogger(cmd)

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

	// Compile check: running Build surfaces file-read and syntax errors the
	// same way the run command would hit them.
	actor, err := cfg.Builder().Build()
	if err != nil {
		return fmt.Errorf("hook compilation failed: %w", err)
	}
	_ = actor.Close()

	fmt.Printf("Actor definition %s is valid\n", configPath)

	if cmd.Bool("tree") {
		fmt.Println(cfg.ToTree().Render())
		return nil
	}

	fmt.Println(cfg)
	return nil
}
