// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line in args and returns the exit code. Reports
// go to stdout, a failure is printed to stderr.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := rootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func rootCommand() *cobra.Command {
	var (
		logFormat string
		logLevel  string
	)
	log := zerolog.Nop()

	cmd := &cobra.Command{
		Use:           "avltool",
		Short:         "build, check and draw AVL trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(logFormat, logLevel)
			if err != nil {
				return err
			}
			log = l
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log output format: console or json")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "minimum level to log")

	logger := func() zerolog.Logger { return log }
	cmd.AddCommand(buildCommand(logger), dotCommand(logger))
	return cmd
}

func newLogger(format, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	var log zerolog.Logger
	switch format {
	case "json":
		log = zerolog.New(os.Stderr)
	case "console":
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}
	return log.Level(lvl).With().Timestamp().Logger(), nil
}
