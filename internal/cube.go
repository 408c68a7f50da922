package internal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"smartsales/specs"
)

// BuildCube implements specs.BuildCube.
// Converts specs to domain objects, transforms, and converts back to specs.
func BuildCube(recordSpecs []specs.FactRecordSpec, configSpec specs.CubeConfigSpec) (specs.CubeSpec, error) {
	config, err := NewCubeConfig(configSpec)
	if err != nil {
		return specs.CubeSpec{}, fmt.Errorf("%w: invalid cube config: %w", ErrConfiguration, err)
	}

	// Naming collisions are a configuration error and must surface before
	// any grouping work, like every other config failure.
	columns, err := NameColumns(configSpec)
	if err != nil {
		return specs.CubeSpec{}, err
	}

	// Convert record specs to domain objects
	records := make([]FactRecord, len(recordSpecs))
	seen := make(map[string]bool, len(recordSpecs))
	for i, spec := range recordSpecs {
		record, err := NewFactRecord(spec)
		if err != nil {
			return specs.CubeSpec{}, fmt.Errorf("invalid record at index %d: %w", i, err)
		}
		if seen[spec.ID] {
			return specs.CubeSpec{}, fmt.Errorf("%w: duplicate record ID %q", ErrIngestion, spec.ID)
		}
		seen[spec.ID] = true
		records[i] = record
	}

	if err := validateMetricColumns(records, config); err != nil {
		return specs.CubeSpec{}, err
	}

	groups := groupRecords(records, config.Dimensions())

	rows := make([]specs.CubeRowSpec, 0, len(groups))
	for _, group := range groups {
		row, err := aggregateGroup(group, config)
		if err != nil {
			return specs.CubeSpec{}, err
		}
		rows = append(rows, row)
	}

	return specs.CubeSpec{
		Columns: columns,
		Rows:    rows,
	}, nil
}

// validateMetricColumns checks every configured metric column against the
// record set before grouping begins. sum/mean/min/max need a numeric
// measure column; count accepts any column present in the records. The
// check is skipped for an empty record set, where no column universe
// exists to validate against.
func validateMetricColumns(records []FactRecord, config CubeConfig) error {
	if len(records) == 0 {
		return nil
	}

	attributeColumns := make(map[string]bool)
	measureColumns := make(map[string]bool)
	for _, record := range records {
		for _, name := range record.Attributes.Names() {
			attributeColumns[name] = true
		}
		for _, name := range record.Measures.Names() {
			measureColumns[name] = true
		}
	}

	for _, metric := range config.Metrics() {
		column := metric.Column().ToString()
		switch {
		case measureColumns[column]:
			// Numeric, valid for every function
		case attributeColumns[column]:
			if metric.RequiresNumericColumn() {
				return fmt.Errorf("%w: metric column %q is not numeric", ErrConfiguration, column)
			}
		default:
			return fmt.Errorf("%w: unknown metric column %q (known columns: %s)",
				ErrConfiguration, column, strings.Join(knownColumns(attributeColumns, measureColumns), ", "))
		}
	}

	return nil
}

func knownColumns(attributes, measures map[string]bool) []string {
	known := make([]string, 0, len(attributes)+len(measures))
	for name := range attributes {
		known = append(known, name)
	}
	for name := range measures {
		known = append(known, name)
	}
	sort.Strings(known)
	return known
}

// recordGroup is one partition of the input: every record whose dimension
// tuple matches exactly, in first-seen order.
type recordGroup struct {
	// Dimension values keyed by column; a null dimension value has no entry.
	dimensions map[string]string
	records    []FactRecord
}

// groupRecords partitions records by exact dimension tuple. A missing
// (null) dimension value keys its own group rather than being dropped.
// Groups come back in first-seen input order.
func groupRecords(records []FactRecord, dimensions []DimensionColumn) []*recordGroup {
	grouped := make(map[string]*recordGroup)
	order := make([]string, 0)

	for _, record := range records {
		key := groupKey(record, dimensions)
		group, exists := grouped[key]
		if !exists {
			values := make(map[string]string, len(dimensions))
			for _, dimension := range dimensions {
				if value, ok := record.Attributes.Get(dimension.ToString()); ok {
					values[dimension.ToString()] = value
				}
			}
			group = &recordGroup{dimensions: values}
			grouped[key] = group
			order = append(order, key)
		}
		group.records = append(group.records, record)
	}

	groups := make([]*recordGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, grouped[key])
	}
	return groups
}

// groupKey encodes a record's dimension tuple as a map key. Values are
// quoted so the encoding is injective, and a null value gets a marker
// that no quoted value can produce.
func groupKey(record FactRecord, dimensions []DimensionColumn) string {
	var sb strings.Builder
	for _, dimension := range dimensions {
		if value, ok := record.Attributes.Get(dimension.ToString()); ok {
			sb.WriteString(strconv.Quote(value))
		} else {
			sb.WriteString("<null>")
		}
		sb.WriteByte(0x1f)
	}
	return sb.String()
}

// aggregateGroup computes every configured (metric, function) pair for
// one group and collects the group's record IDs for traceability.
func aggregateGroup(group *recordGroup, config CubeConfig) (specs.CubeRowSpec, error) {
	values := make(map[string]string)

	for _, metric := range config.Metrics() {
		column := metric.Column().ToString()

		// Non-null measure values in first-seen order. count ignores
		// these and uses the group size instead.
		nonNull := make([]Decimal, 0, len(group.records))
		for _, record := range group.records {
			if value, ok := record.Measures.Get(column); ok {
				nonNull = append(nonNull, value)
			}
		}

		for _, function := range metric.Functions() {
			result, ok, err := function.Aggregate(nonNull, len(group.records))
			if err != nil {
				return specs.CubeRowSpec{}, fmt.Errorf("%w: column %q: %w", ErrAggregation, column, err)
			}
			if !ok {
				continue // null result, key stays absent
			}
			values[outputColumnName(column, function.ToString())] = result.String()
		}
	}

	recordIDs := make([]string, len(group.records))
	for i, record := range group.records {
		recordIDs[i] = record.ID.ToString()
	}

	return specs.CubeRowSpec{
		Dimensions: group.dimensions,
		Values:     values,
		RecordIDs:  recordIDs,
	}, nil
}
