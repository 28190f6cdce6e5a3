package main

import (
	"github.com/urfave/cli/v3"

	"github.com/choznerol/luactor/internal/logging"
)

// loggingFlags are shared by the commands that produce log output.
var loggingFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (debug, info, warn, error)",
		Value: "info",
	},
	&cli.StringFlag{
		Name:  "log-format",
		Usage: "Log format (text, json)",
		Value: "text",
	},
}

// setupLogger installs the default logger from the command's logging flags.
func setupLogger(cmd *cli.Command) {
	logging.SetDefault(cmd.String("log-level"), cmd.String("log-format"))
}
