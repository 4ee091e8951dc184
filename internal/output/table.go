// Package output renders aggregated metric tables as reports.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/farcloser/cambium"
)

// header keeps the fixed-width layout of the rust-code-analysis digest
// format: five statistics to one decimal place plus an integer count.
const header = "#group         \tmethod                   \tminimum\tmedian\tmean\tstd_dev\tmaximum\tcount"

// WriteTable renders one row of descriptive statistics per (group, name)
// pair. Rows are sorted by group then name so repeated runs over the same
// inputs produce byte-identical output.
func WriteTable(w io.Writer, table cambium.Table) error {
	out := bufio.NewWriter(w)

	fmt.Fprintln(out, header)

	for _, group := range sortedKeys(table) {
		entries := table[group]

		for _, name := range sortedKeys(entries) {
			summary := cambium.Summarize(entries[name])

			fmt.Fprintf(out, "%-15s\t%-25s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%d\n",
				group, name,
				summary.Minimum, summary.Median, summary.Mean,
				summary.StdDev, summary.Maximum, summary.Count,
			)
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	return nil
}

// WriteTableFile writes the report to path, truncating prior content.
// A path of "-" writes to stdout instead.
func WriteTableFile(path string, table cambium.Table) error {
	if path == "-" {
		return WriteTable(os.Stdout, table)
	}

	file, err := os.Create(path) //nolint:gosec // CLI tool writes the user-specified report file
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	if err := WriteTable(file, table); err != nil {
		file.Close()

		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing report: %w", err)
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}
