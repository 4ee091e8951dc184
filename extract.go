//nolint:wrapcheck
package cambium

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/farcloser/primordium/fault"
)

/*
Usage:

table := cambium.NewTable()

files, err := cambium.Discover("rust-code-analysis", "*.json")
for _, path := range files {
    fileTable, err := cambium.ExtractFile(path)
    if err != nil {
        return err
    }
    table.Merge(fileTable)
}

for group, entries := range table {
    for name, series := range entries {
        summary := cambium.Summarize(series)
        fmt.Printf("%s/%s: mean %.1f over %d observations\n", group, name, summary.Mean, summary.Count)
    }
}

*/

// ExtractFile reads one metrics document and collects every numeric
// observation it holds, keyed by metric group and metric name.
func ExtractFile(path string) (Table, error) {
	data, err := os.ReadFile(path) //nolint:gosec // CLI tool reads tool-generated metric files
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", fault.ErrReadFailure, path, err)
	}

	return Extract(data)
}

// Extract parses a single JSON metrics document. A document without a
// top-level "spaces" field yields an empty table; malformed JSON is an
// error and aborts the run.
func Extract(data []byte) (Table, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err)
	}

	table := NewTable()

	for _, outer := range doc.Spaces {
		for _, inner := range outer.Spaces {
			table.Absorb(inner.Metrics)
		}
	}

	return table, nil
}
