package cambium_test

import (
	"testing"

	"github.com/farcloser/cambium"
)

func TestTableAbsorb(t *testing.T) {
	t.Parallel()

	table := cambium.NewTable()

	table.Absorb(cambium.MetricSet{
		"cyclomatic": {"sum": cambium.Scalar(2)},
		"halstead":   {"operands": cambium.Series(1, 2, 3)},
	})
	table.Absorb(cambium.MetricSet{
		"cyclomatic": {"sum": cambium.Scalar(4), "average": cambium.Scalar(1.5)},
		"nom":        {"total": cambium.Series()},
	})

	assertTable(t, map[string]map[string][]float64{
		"cyclomatic": {"sum": {2, 4}, "average": {1.5}},
		"halstead":   {"operands": {1, 2, 3}},
	}, table)

	// An empty value never creates a series.
	if _, ok := table["nom"]; ok {
		t.Errorf("expected no nom group, got %v", table["nom"])
	}
}

func TestTableMerge(t *testing.T) {
	t.Parallel()

	table := cambium.NewTable()

	table.Merge(cambium.Table{
		"nom": {"total": {3}},
		"loc": {"sloc": {10, 20}},
	})
	table.Merge(cambium.Table{
		"nom": {"total": {5}, "average": {1}},
	})

	assertTable(t, map[string]map[string][]float64{
		"nom": {"total": {3, 5}, "average": {1}},
		"loc": {"sloc": {10, 20}},
	}, table)
}

func TestTableMergeCountsAdd(t *testing.T) {
	t.Parallel()

	table := cambium.NewTable()

	first, err := cambium.Extract([]byte(`{"spaces":[{"spaces":[{"metrics":{"nom":{"total":3}}}]}]}`))
	if err != nil {
		t.Fatal(err)
	}

	second, err := cambium.Extract([]byte(`{"spaces":[{"spaces":[{"metrics":{"nom":{"total":[5,7]}}}]}]}`))
	if err != nil {
		t.Fatal(err)
	}

	table.Merge(first)
	table.Merge(second)

	if got := len(table["nom"]["total"]); got != 3 {
		t.Errorf("expected combined series of 3 observations, got %d", got)
	}
}
