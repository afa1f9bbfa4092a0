/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/onsa/fatsecret-crawler/pkg/logging"
	"github.com/onsa/fatsecret-crawler/pkg/serializer"
)

const (
	name           = "fatsecret"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
)

// Execute runs the CLI with the process arguments and exits non-zero on error.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "FatSecret nutrition crawler",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Description: `Parses FatSecret nutrition summaries into normalised measurements and
derives ingredient density (g/ml) from mass and volume servings.

search - crawls search results for a term
parse  - parses summary text that was already fetched
units  - lists recognised units and conversion factors`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("FATSECRET_LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Shorthand for --log-level=debug",
			},
		},
		Before: initLogger,
		Commands: []*cli.Command{
			searchCmd(),
			parseCmd(),
			unitsCmd(),
		},
	}
}

// initLogger configures slog once flags are parsed so --log-level takes
// effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := cmd.String("log-level")
	if cmd.Bool("debug") {
		level = "debug"
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
	return ctx, nil
}

// commandLister prints the visible subcommands for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Println(c.Name)
	}
}
