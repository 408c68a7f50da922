package specs

// TraceabilityColumn is the reserved name of the cube's last column: the
// list of source record identifiers that contributed to each cube row.
// No dimension or metric output column may collide with it.
const TraceabilityColumn = "sale_ids"

// CubeSpec is a fully built cube: ordered column names plus one row per
// distinct dimension tuple present in the input.
//
// The rows partition the input fact records exactly — every input record
// appears in exactly one row's traceability list. Row order follows
// first-seen input order of each dimension tuple; consumers that need a
// different order sort after the fact.
type CubeSpec struct {
	// Ordered output column names: dimensions first (in Dimension Spec
	// order), then one column per (metric, function) pair, then
	// TraceabilityColumn last.
	Columns []string `json:"columns" yaml:"columns"`

	// The cube rows, one per distinct dimension tuple.
	Rows []CubeRowSpec `json:"rows" yaml:"rows"`
}

// CubeRowSpec is one row of the cube: the group's dimension values, the
// aggregated metric values, and the traceability list.
//
// Values are keyed by output column name. A missing key means null —
// either a null dimension value that keyed this group, or an aggregate
// over an empty non-null set (e.g. the mean of a group whose measure was
// null in every record).
type CubeRowSpec struct {
	// Dimension values keyed by dimension column name. A missing key is
	// a null dimension value (null is a valid group key).
	Dimensions map[string]string `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`

	// Aggregated metric values as decimal strings, keyed by output column
	// name (e.g. "sale_amount_usd_sum"). A missing key is a null result.
	Values map[string]string `json:"values,omitempty" yaml:"values,omitempty"`

	// Identifiers of the fact records that contributed to this row, in
	// first-seen input order.
	RecordIDs []string `json:"recordIDs" yaml:"record_ids"`
}

// BuildCube groups dimension-derived fact records by the configured
// dimension tuple and computes every configured (metric, function) pair
// per group.
//
// Process:
//  1. Validate the configuration against the record set (fatal before any
//     grouping work begins)
//  2. Partition records by exact dimension tuple (null values key their
//     own groups)
//  3. Aggregate each group's measures with exact decimal arithmetic
//  4. Collect each group's record identifiers for traceability
//
// Returns the complete cube, or an error classifying the failure as
// configuration, aggregation, or ingestion (see the domain error kinds).
//
// This is the spec-level interface using only primitive types.
// See internal.BuildCube for the reference implementation.
type BuildCube func(records []FactRecordSpec, config CubeConfigSpec) (CubeSpec, error)

// NameColumns derives the cube's ordered output column names from the
// configuration: dimensions verbatim, then "{metric}_{function}" per pair
// with trailing separators stripped, then TraceabilityColumn.
//
// Returns an error on any duplicate in the produced list.
//
// See internal.NameColumns for the reference implementation.
type NameColumns func(config CubeConfigSpec) ([]string, error)

// DeriveCalendar appends the calendar dimension attributes (DayOfWeek,
// Month, Quarter, Year) to every record, computed from the named date
// column. An unparseable or missing date on any record fails the whole
// batch.
//
// See internal.DeriveCalendar for the reference implementation.
type DeriveCalendar func(records []FactRecordSpec, dateColumn string) ([]FactRecordSpec, error)
