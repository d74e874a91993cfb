// Package main is the entry point for the prefixgender CLI application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	pgcli "github.com/NikitaCOEUR/prefixgender/internal/cli"
	"github.com/NikitaCOEUR/prefixgender/internal/converter"
	"github.com/NikitaCOEUR/prefixgender/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app := newApp(os.Stdout, os.Stdin)

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalParams reads the root flags. Unset flags stay empty so the
// configuration file can supply them.
func globalParams(cmd *cli.Command, out io.Writer, in io.Reader) pgcli.GlobalParams {
	p := pgcli.GlobalParams{
		ConfigPath: cmd.String("config"),
		Out:        out,
		In:         in,
	}
	if cmd.IsSet("db") {
		p.DBPath = cmd.String("db")
	}
	if cmd.IsSet("log-level") {
		p.LogLevel = cmd.String("log-level")
	}
	return p
}

// usageOnError prints our usage text in place of urfave's generated help
// when flags fail to parse, and reports success.
func usageOnError(out io.Writer) cli.OnUsageErrorFunc {
	return func(_ context.Context, _ *cli.Command, _ error, _ bool) error {
		pgcli.Usage(pgcli.GlobalParams{Out: out})
		return nil
	}
}

func newApp(out io.Writer, in io.Reader) *cli.Command {
	onUsageError := usageOnError(out)

	return &cli.Command{
		Name:            "prefixgender",
		Usage:           "Set customer gender from their name prefix",
		Version:         version.String(),
		Writer:          out,
		HideHelpCommand: true,
		OnUsageError:    onUsageError,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Usage:   "SQLite customer database",
				Sources: cli.EnvVars("PREFIXGENDER_DB"),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Configuration file (yaml, toml or json)",
				Sources: cli.EnvVars("PREFIXGENDER_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("PREFIXGENDER_LOG_LEVEL"),
			},
		},
		// Bare invocation and unknown commands print usage
		Action: func(_ context.Context, cmd *cli.Command) error {
			pgcli.Usage(globalParams(cmd, out, in))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:         "list",
				Usage:        "Show all prefixes in system",
				OnUsageError: onUsageError,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return pgcli.Run(ctx, globalParams(cmd, out, in), converter.Command{Name: converter.CommandList})
				},
			},
			{
				Name:         "convert",
				Usage:        "Update the gender of all users with a prefix",
				OnUsageError: onUsageError,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "gender",
						Usage: "The gender to set (male or female)",
					},
					&cli.StringFlag{
						Name:  "prefix",
						Usage: "The prefix to change",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite genders that are already set",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "Show per-customer progress",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return pgcli.Run(ctx, globalParams(cmd, out, in), converter.Command{
						Name:    converter.CommandConvert,
						Gender:  cmd.String("gender"),
						Prefix:  cmd.String("prefix"),
						Force:   cmd.Bool("force"),
						Verbose: cmd.Bool("verbose"),
					})
				},
			},
			{
				Name:         "seed",
				Usage:        "Load customers and attributes from a fixture file",
				ArgsUsage:    "<fixture-file>",
				OnUsageError: onUsageError,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return pgcli.Seed(ctx, pgcli.SeedParams{
						GlobalParams: globalParams(cmd, out, in),
						File:         cmd.Args().First(),
					})
				},
			},
			{
				Name:         "help",
				Usage:        "Show usage",
				OnUsageError: onUsageError,
				Action: func(_ context.Context, cmd *cli.Command) error {
					pgcli.Usage(globalParams(cmd, out, in))
					return nil
				},
			},
		},
	}
}
