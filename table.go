package cambium

// Table accumulates metric observations per (group, name) pair. One Table
// is constructed per run, fed during aggregation, and consumed exactly once
// by the reporter. Merging the same source twice duplicates observations;
// callers merge each source exactly once.
type Table map[string]map[string][]float64

// NewTable returns an empty accumulator.
func NewTable() Table {
	return make(Table)
}

// Absorb folds the decoded metrics of one space into the table, creating
// groups and series lazily. Values that decoded to nothing are dropped, so
// a series present in the table always holds at least one observation.
func (t Table) Absorb(set MetricSet) {
	for group, entries := range set {
		for name, value := range entries {
			t.append(group, name, value.Values())
		}
	}
}

// Merge folds another table, typically one file's extraction result, into
// this one in place.
func (t Table) Merge(src Table) {
	for group, entries := range src {
		for name, observations := range entries {
			t.append(group, name, observations)
		}
	}
}

func (t Table) append(group, name string, observations []float64) {
	if len(observations) == 0 {
		return
	}

	series, ok := t[group]
	if !ok {
		series = make(map[string][]float64)
		t[group] = series
	}

	series[name] = append(series[name], observations...)
}
