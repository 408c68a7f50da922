package specs

// FactRecordSpec represents a single transactional fact read from the
// data warehouse.
//
// A fact record is one row of the fact table (one sale), flattened into
// categorical attributes and numeric measures. The record is the unit of
// grouping during cube construction: its attribute values decide which
// cube row it belongs to, and its measure values feed the aggregations.
//
// Null handling: a column that is null for this record is simply absent
// from the Attributes or Measures map. Absence is meaningful — a null
// dimension value forms its own group, and null measure values are
// excluded from sum/mean/min/max.
type FactRecordSpec struct {
	// Unique identifier for this fact record.
	//
	// Taken from the fact table's primary key (transaction_id in the sale
	// table). Identifiers must be unique across the record set; they are
	// preserved per cube row as the traceability list linking aggregates
	// back to their source transactions.
	ID string `json:"id" yaml:"id"`

	// Categorical attribute values, keyed by column name.
	//
	// Contains the native grouping columns (customer_id, product_id,
	// payment_type, ...) plus, after dimension derivation, the calendar
	// columns (DayOfWeek, Month, Quarter, Year). Values are stored as
	// strings; grouping is exact string equality. A null column is
	// represented by a missing key.
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`

	// Numeric measure values as decimal strings, keyed by column name.
	//
	// Stored as strings to preserve arbitrary precision across language
	// boundaries and avoid floating-point representation issues. Must be
	// parseable as decimal numbers. Examples: "6344.96", "312.80", "0".
	// A null measure is represented by a missing key.
	Measures map[string]string `json:"measures,omitempty" yaml:"measures,omitempty"`
}
