//nolint:wrapcheck
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/cambium"
	"github.com/farcloser/cambium/internal/integration/rca"
	"github.com/farcloser/cambium/internal/output"
)

const (
	defaultSource  = "src"
	defaultOutput  = "rust-code-analysis"
	defaultReport  = "rust-code-analysis.tab"
	defaultPattern = "*.json"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Analyze a source tree and summarize its code metrics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"p"},
				Usage:   "Source directory handed to the analysis tool",
				Value:   defaultSource,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Directory receiving the per-file JSON metrics (recreated each run)",
				Value:   defaultOutput,
			},
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
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outputDir := cmd.String("output")

			if err := rca.Generate(ctx, cmd.String("source"), outputDir); err != nil {
				return fmt.Errorf("generating metrics: %w", err)
			}

			return summarize(outputDir, cmd.String("pattern"), cmd.String("report"))
		},
	}
}

// summarize aggregates every matching metrics document under root and
// writes the statistics table. Any failure aborts the run; there is no
// per-file isolation.
func summarize(root, pattern, reportPath string) error {
	files, err := cambium.Discover(root, pattern)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", root, err)
	}

	table := cambium.NewTable()

	for _, path := range files {
		fileTable, err := cambium.ExtractFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		table.Merge(fileTable)
	}

	if err := output.WriteTableFile(reportPath, table); err != nil {
		return err
	}

	if reportPath != "-" {
		fmt.Fprintf(os.Stderr, "Report written to %s (%d files)\n", reportPath, len(files))
	}

	return nil
}
