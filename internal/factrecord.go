package internal

import (
	"fmt"

	"smartsales/specs"
)

type FactRecord struct {
	ID         FactRecordID
	Attributes FactRecordAttributes
	Measures   FactRecordMeasures
}

func NewFactRecord(spec specs.FactRecordSpec) (FactRecord, error) {
	id, err := NewFactRecordID(spec.ID)
	if err != nil {
		return FactRecord{}, fmt.Errorf("%w: invalid ID: %w", ErrIngestion, err)
	}

	attributes := NewFactRecordAttributes()
	for name, value := range spec.Attributes {
		attributes.Set(name, value)
	}

	measures := NewFactRecordMeasures()
	for name, value := range spec.Measures {
		quantity, err := NewDecimal(value)
		if err != nil {
			return FactRecord{}, fmt.Errorf("%w: record %q measure %q value %q: %w",
				ErrAggregation, spec.ID, name, value, err)
		}
		measures.Set(name, quantity)
	}

	return FactRecord{
		ID:         id,
		Attributes: attributes,
		Measures:   measures,
	}, nil
}

type FactRecordID struct {
	value string
}

func NewFactRecordID(value string) (FactRecordID, error) {
	if value == "" {
		return FactRecordID{}, fmt.Errorf("ID is required")
	}
	return FactRecordID{value: value}, nil
}

func (id FactRecordID) ToString() string {
	return id.value
}

type FactRecordAttributes struct {
	values map[string]string
}

func NewFactRecordAttributes() FactRecordAttributes {
	return FactRecordAttributes{
		values: make(map[string]string),
	}
}

func (a *FactRecordAttributes) Set(name string, value string) {
	a.values[name] = value
}

func (a FactRecordAttributes) Get(name string) (string, bool) {
	val, ok := a.values[name]
	return val, ok
}

func (a FactRecordAttributes) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

func (a FactRecordAttributes) Names() []string {
	names := make([]string, 0, len(a.values))
	for name := range a.values {
		names = append(names, name)
	}
	return names
}

type FactRecordMeasures struct {
	values map[string]Decimal
}

func NewFactRecordMeasures() FactRecordMeasures {
	return FactRecordMeasures{
		values: make(map[string]Decimal),
	}
}

func (m *FactRecordMeasures) Set(name string, value Decimal) {
	m.values[name] = value
}

func (m FactRecordMeasures) Get(name string) (Decimal, bool) {
	val, ok := m.values[name]
	return val, ok
}

func (m FactRecordMeasures) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

func (m FactRecordMeasures) Names() []string {
	names := make([]string, 0, len(m.values))
	for name := range m.values {
		names = append(names, name)
	}
	return names
}
