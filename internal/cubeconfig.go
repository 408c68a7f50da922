package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"smartsales/specs"
)

type CubeConfig struct {
	dateColumn string
	dimensions []DimensionColumn
	metrics    []MetricAggregation
}

func NewCubeConfig(spec specs.CubeConfigSpec) (CubeConfig, error) {
	if len(spec.Dimensions) == 0 {
		return CubeConfig{}, fmt.Errorf("at least one dimension is required")
	}

	dimensions := make([]DimensionColumn, 0, len(spec.Dimensions))
	for i, d := range spec.Dimensions {
		dimension, err := NewDimensionColumn(d)
		if err != nil {
			return CubeConfig{}, fmt.Errorf("dimension %d: %w", i, err)
		}
		dimensions = append(dimensions, dimension)
	}

	if len(spec.Metrics) == 0 {
		return CubeConfig{}, fmt.Errorf("at least one metric is required")
	}

	metrics := make([]MetricAggregation, 0, len(spec.Metrics))
	for i, m := range spec.Metrics {
		metric, err := NewMetricAggregation(m)
		if err != nil {
			return CubeConfig{}, fmt.Errorf("metric %d: %w", i, err)
		}
		metrics = append(metrics, metric)
	}

	return CubeConfig{
		dateColumn: spec.DateColumn,
		dimensions: dimensions,
		metrics:    metrics,
	}, nil
}

func (c CubeConfig) DateColumn() string {
	return c.dateColumn
}

func (c CubeConfig) Dimensions() []DimensionColumn {
	return c.dimensions
}

func (c CubeConfig) Metrics() []MetricAggregation {
	return c.metrics
}

type DimensionColumn struct {
	value string
}

func NewDimensionColumn(value string) (DimensionColumn, error) {
	if value == "" {
		return DimensionColumn{}, fmt.Errorf("dimension column is required")
	}
	return DimensionColumn{value: value}, nil
}

func (d DimensionColumn) ToString() string {
	return d.value
}

type MetricAggregation struct {
	column    MetricColumn
	functions []AggregationFunction
}

func NewMetricAggregation(spec specs.MetricSpec) (MetricAggregation, error) {
	column, err := NewMetricColumn(spec.Column)
	if err != nil {
		return MetricAggregation{}, fmt.Errorf("invalid column: %w", err)
	}

	if len(spec.Functions) == 0 {
		return MetricAggregation{}, fmt.Errorf("column %q: at least one aggregation function is required", spec.Column)
	}

	functions := make([]AggregationFunction, 0, len(spec.Functions))
	for _, f := range spec.Functions {
		function, err := NewAggregationFunction(f)
		if err != nil {
			return MetricAggregation{}, fmt.Errorf("column %q: %w", spec.Column, err)
		}
		functions = append(functions, function)
	}

	return MetricAggregation{
		column:    column,
		functions: functions,
	}, nil
}

func (m MetricAggregation) Column() MetricColumn {
	return m.column
}

func (m MetricAggregation) Functions() []AggregationFunction {
	return m.functions
}

// RequiresNumericColumn reports whether any of the configured functions
// reads the column's numeric values (count only counts group members).
func (m MetricAggregation) RequiresNumericColumn() bool {
	for _, f := range m.functions {
		if !f.IsCount() {
			return true
		}
	}
	return false
}

type MetricColumn struct {
	value string
}

func NewMetricColumn(value string) (MetricColumn, error) {
	if value == "" {
		return MetricColumn{}, fmt.Errorf("metric column is required")
	}
	return MetricColumn{value: value}, nil
}

func (c MetricColumn) ToString() string {
	return c.value
}

type AggregationFunction struct {
	value string
}

func NewAggregationFunction(value string) (AggregationFunction, error) {
	if value == "" {
		return AggregationFunction{}, fmt.Errorf("aggregation function is required")
	}

	// Validate against the supported vocabulary
	switch value {
	case "sum", "mean", "count", "min", "max":
		// Valid
	default:
		return AggregationFunction{}, fmt.Errorf("invalid aggregation function: %q", value)
	}

	return AggregationFunction{value: value}, nil
}

func (a AggregationFunction) ToString() string {
	return a.value
}

func (a AggregationFunction) IsSum() bool {
	return a.value == "sum"
}

func (a AggregationFunction) IsMean() bool {
	return a.value == "mean"
}

func (a AggregationFunction) IsCount() bool {
	return a.value == "count"
}

func (a AggregationFunction) IsMin() bool {
	return a.value == "min"
}

func (a AggregationFunction) IsMax() bool {
	return a.value == "max"
}

// Aggregate applies this function to one group.
//
// values holds the group's non-null measure values in first-seen order;
// recordCount is the total number of records in the group, including
// those whose measure is null.
//
// The second return value reports whether a value exists at all: the mean,
// min or max of an empty non-null set is null, not an error, so the cube
// stays dense.
func (a AggregationFunction) Aggregate(values []Decimal, recordCount int) (Decimal, bool, error) {
	switch a.value {
	case "sum":
		return sumValues(values), true, nil

	case "mean":
		if len(values) == 0 {
			return Decimal{}, false, nil
		}
		sum := sumValues(values)
		return sum.Div(NewDecimalFromInt64(int64(len(values)))), true, nil

	case "count":
		return NewDecimalFromInt64(int64(recordCount)), true, nil

	case "min":
		if len(values) == 0 {
			return Decimal{}, false, nil
		}
		min := values[0]
		for _, v := range values[1:] {
			if v.Cmp(min) < 0 {
				min = v
			}
		}
		return min, true, nil

	case "max":
		if len(values) == 0 {
			return Decimal{}, false, nil
		}
		max := values[0]
		for _, v := range values[1:] {
			if v.Cmp(max) > 0 {
				max = v
			}
		}
		return max, true, nil

	default:
		return Decimal{}, false, fmt.Errorf("unsupported aggregation function: %s", a.value)
	}
}

// sumValues folds Add over the values; the sum of an empty set is zero.
func sumValues(values []Decimal) Decimal {
	sum := NewDecimalFromInt64(0)
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum
}

// LoadCubeConfig reads a CubeConfigSpec from a YAML file.
func LoadCubeConfig(path string) (specs.CubeConfigSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return specs.CubeConfigSpec{}, fmt.Errorf("%w: reading %s: %w", ErrConfiguration, path, err)
	}

	var spec specs.CubeConfigSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return specs.CubeConfigSpec{}, fmt.Errorf("%w: parsing %s: %w", ErrConfiguration, path, err)
	}

	return spec, nil
}
