package internal

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"smartsales/specs"
)

// NameColumns implements specs.NameColumns.
//
// Dimension columns keep their original names in spec order, followed by
// one "{column}_{function}" name per (metric, function) pair in spec
// order, followed by the reserved traceability column. The suffix is kept
// even when a metric has a single function; trailing separators are
// stripped so an empty function name never leaves a dangling underscore.
//
// Duplicate names in the produced list are a fatal configuration error.
func NameColumns(config specs.CubeConfigSpec) ([]string, error) {
	names := make([]string, 0, len(config.Dimensions)+len(config.Metrics)+1)
	for _, dimension := range config.Dimensions {
		names = append(names, strings.TrimRight(dimension, "_"))
	}

	for _, metric := range config.Metrics {
		for _, function := range metric.Functions {
			names = append(names, outputColumnName(metric.Column, function))
		}
	}

	names = append(names, specs.TraceabilityColumn)

	if duplicates := lo.FindDuplicates(names); len(duplicates) > 0 {
		return nil, fmt.Errorf("%w: duplicate output column names: %s",
			ErrConfiguration, strings.Join(duplicates, ", "))
	}

	return names, nil
}

// outputColumnName derives the output column name for one
// (metric, function) pair.
func outputColumnName(column, function string) string {
	return strings.TrimRight(fmt.Sprintf("%s_%s", column, function), "_")
}
