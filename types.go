package cambium

import (
	"bytes"
	"encoding/json"
)

// Document is the root of one rust-code-analysis metrics file.
// Documents produced for inputs with no analyzable content carry no
// "spaces" field at all; decoding leaves Spaces nil and extraction
// yields nothing.
type Document struct {
	Name   string  `json:"name,omitempty"`
	Spaces []Space `json:"spaces,omitempty"`
}

// Space is a structural unit of the analyzed source (file, namespace,
// function) as modeled by the analysis tool. Metrics are collected from
// the second nesting level only; an outer space without children
// contributes nothing.
type Space struct {
	Name    string    `json:"name,omitempty"`
	Kind    string    `json:"kind,omitempty"`
	Spaces  []Space   `json:"spaces,omitempty"`
	Metrics MetricSet `json:"metrics,omitempty"`
}

// MetricSet maps a metric group (e.g. "cyclomatic", "halstead") to its
// named measurements. Decoding is total over well-formed JSON: a metrics
// block that is not an object, a group whose value is not an object, and
// an entry holding neither a number nor a list of numbers are all dropped,
// never surfaced as errors.
type MetricSet map[string]MetricGroup

func (m *MetricSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*m = nil

		return nil //nolint:nilerr // non-object metrics blocks are skipped, not failed
	}

	set := make(MetricSet, len(raw))

	for group, payload := range raw {
		var entries MetricGroup
		if err := json.Unmarshal(payload, &entries); err != nil {
			continue
		}

		set[group] = entries
	}

	*m = set

	return nil
}

// MetricGroup maps a metric name to its recorded value within one group.
type MetricGroup map[string]MetricValue

// MetricValue is a tagged union over the two shapes the analysis tool
// emits: a single observation or a list of observations.
type MetricValue struct {
	values []float64
}

// Scalar returns a MetricValue holding a single observation.
func Scalar(v float64) MetricValue {
	return MetricValue{values: []float64{v}}
}

// Series returns a MetricValue holding a list of observations.
func Series(values ...float64) MetricValue {
	return MetricValue{values: values}
}

func (v *MetricValue) UnmarshalJSON(data []byte) error {
	// The analysis tool emits null for NaN-valued metrics. Unmarshalling
	// null into a float64 is a no-op that reports success, so it has to be
	// rejected before the scalar attempt or it would record a phantom 0.
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.values = nil

		return nil
	}

	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		v.values = []float64{scalar}

		return nil
	}

	var series []*float64
	if err := json.Unmarshal(data, &series); err == nil {
		values := make([]float64, 0, len(series))

		for _, item := range series {
			if item != nil {
				values = append(values, *item)
			}
		}

		v.values = values

		return nil
	}

	// Neither a number nor a list of numbers.
	v.values = nil

	return nil
}

// Values returns the numeric observations the value holds, in input order.
// Empty for values that decoded to neither a number nor a number list.
func (v MetricValue) Values() []float64 {
	return v.values
}
