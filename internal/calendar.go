package internal

import (
	"fmt"
	"strconv"
	"time"

	"smartsales/specs"
)

// Calendar dimension columns appended to every fact record before grouping.
const (
	DimensionDayOfWeek = "DayOfWeek"
	DimensionMonth     = "Month"
	DimensionQuarter   = "Quarter"
	DimensionYear      = "Year"
)

// Date layouts accepted for the configured date column, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// DeriveCalendar implements specs.DeriveCalendar.
//
// Appends DayOfWeek, Month, Quarter and Year attributes to every record,
// computed from the named date column. The input records are not mutated;
// a new slice with copied attribute maps is returned. Any record with a
// missing or unparseable date fails the whole batch — no silent row drop.
func DeriveCalendar(records []specs.FactRecordSpec, dateColumn string) ([]specs.FactRecordSpec, error) {
	if dateColumn == "" {
		return nil, fmt.Errorf("%w: date column is required", ErrConfiguration)
	}

	derived := make([]specs.FactRecordSpec, len(records))
	for i, record := range records {
		raw, ok := record.Attributes[dateColumn]
		if !ok {
			return nil, fmt.Errorf("%w: record %q has no %q value", ErrIngestion, record.ID, dateColumn)
		}

		date, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: record %q column %q: %w", ErrIngestion, record.ID, dateColumn, err)
		}

		attributes := make(map[string]string, len(record.Attributes)+4)
		for name, value := range record.Attributes {
			attributes[name] = value
		}
		attributes[DimensionDayOfWeek] = date.Weekday().String()
		attributes[DimensionMonth] = strconv.Itoa(int(date.Month()))
		attributes[DimensionQuarter] = strconv.Itoa(quarterOf(date.Month()))
		attributes[DimensionYear] = strconv.Itoa(date.Year())

		derived[i] = specs.FactRecordSpec{
			ID:         record.ID,
			Attributes: attributes,
			Measures:   record.Measures,
		}
	}

	return derived, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, raw); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date", raw)
}

// quarterOf returns the calendar quarter (1-4) for a month: ceil(month/3).
func quarterOf(month time.Month) int {
	return (int(month) + 2) / 3
}
