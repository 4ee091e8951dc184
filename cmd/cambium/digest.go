//nolint:wrapcheck
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"
)

var (
	errDigestArgs = errors.New("expected exactly one argument: path to report file")
	errBadRow     = errors.New("malformed report row")
)

func digestCommand() *cli.Command {
	return &cli.Command{
		Name:      "digest",
		Usage:     "Print a per-group rollup of a written metrics report",
		ArgsUsage: "<report.tab>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errDigestArgs, cmd.NArg())
			}

			return runDigest(cmd.Args().First(), cmd.String("format"))
		},
	}
}

// reportRow is one parsed data line of a report file.
type reportRow struct {
	Group   string
	Method  string
	Minimum float64
	Median  float64
	Mean    float64
	StdDev  float64
	Maximum float64
	Count   int
}

// groupRollup aggregates row counts per metric group.
type groupRollup struct {
	Metrics      int
	Observations int
}

func runDigest(reportPath, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	rows, err := readReport(reportPath)
	if err != nil {
		return err
	}

	rollups := map[string]*groupRollup{}
	totalObservations := 0

	for _, row := range rows {
		rollup, ok := rollups[row.Group]
		if !ok {
			rollup = &groupRollup{}
			rollups[row.Group] = rollup
		}

		rollup.Metrics++
		rollup.Observations += row.Count
		totalObservations += row.Count
	}

	groups := make(map[string]any, len(rollups))
	for group, rollup := range rollups {
		groups[group] = fmt.Sprintf("%d metrics, %d observations", rollup.Metrics, rollup.Observations)
	}

	data := &format.Data{
		Object: reportPath,
		Meta: map[string]any{
			"summary": fmt.Sprintf(
				"%d metrics across %d groups (%d observations)",
				len(rows), len(rollups), totalObservations,
			),
			"groups": groups,
		},
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}

// readReport parses a report file back into rows, skipping the header.
func readReport(path string) ([]reportRow, error) {
	file, err := os.Open(path) //nolint:gosec // CLI tool opens user-specified report files
	if err != nil {
		return nil, fmt.Errorf("opening report: %w", err)
	}
	defer file.Close()

	var rows []reportRow

	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		row, err := parseRow(line)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	return rows, nil
}

func parseRow(line string) (reportRow, error) {
	const columns = 8

	fields := strings.Split(line, "\t")
	if len(fields) != columns {
		return reportRow{}, fmt.Errorf("%w: expected %d columns, got %d", errBadRow, columns, len(fields))
	}

	row := reportRow{
		Group:  strings.TrimSpace(fields[0]),
		Method: strings.TrimSpace(fields[1]),
	}

	stats := []*float64{&row.Minimum, &row.Median, &row.Mean, &row.StdDev, &row.Maximum}
	for i, target := range stats {
		value, err := strconv.ParseFloat(strings.TrimSpace(fields[i+2]), 64)
		if err != nil {
			return reportRow{}, fmt.Errorf("%w: %w", errBadRow, err)
		}

		*target = value
	}

	count, err := strconv.Atoi(strings.TrimSpace(fields[7]))
	if err != nil {
		return reportRow{}, fmt.Errorf("%w: %w", errBadRow, err)
	}

	row.Count = count

	return row, nil
}
