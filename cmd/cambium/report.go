package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var (
	errReportArgs   = errors.New("expected exactly one argument: metrics directory")
	errNotDirectory = errors.New("not a directory")
)

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "Summarize an existing tree of metrics documents",
		ArgsUsage: "<dir>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "report",
				Aliases: []string{"r"},
				Usage:   "Report file to write, or \"-\" for stdout",
				Value:   defaultReport,
			},
			&cli.StringFlag{
				Name:  "pattern",
				Usage: "Glob matched against metric file names",
				Value: defaultPattern,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errReportArgs, cmd.NArg())
			}

			folder := cmd.Args().First()

			info, err := os.Stat(folder)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("%q: %w", folder, errNotDirectory)
			}

			return summarize(folder, cmd.String("pattern"), cmd.String("report"))
		},
	}
}
