package specs

// CubeConfigSpec defines one cube: which date column drives the derived
// calendar dimensions, which columns to group by, and which aggregations
// to compute per metric column.
//
// The configuration is caller-supplied; the engine embeds no defaults.
// Dimension order is significant for output column order, and metric
// order is significant for output column order, so both are slices rather
// than maps.
type CubeConfigSpec struct {
	// Name of the attribute column holding the fact's date.
	//
	// When set, calendar dimensions (DayOfWeek, Month, Quarter, Year) are
	// derived from this column before grouping. When empty, no derivation
	// happens and the records must already carry every configured
	// dimension. Example: "sale_date".
	DateColumn string `json:"dateColumn,omitempty" yaml:"date_column,omitempty"`

	// Ordered list of grouping columns (derived or native).
	//
	// At least one is required. Order determines the order of dimension
	// columns in the output, not the correctness of the aggregate itself.
	// Examples: ["Quarter", "product_id", "customer_id"].
	Dimensions []string `json:"dimensions" yaml:"dimensions"`

	// Ordered list of metric aggregations.
	//
	// Each entry names a column and one or more aggregation functions;
	// each (column, function) pair produces one output column. Order
	// determines output column order after the dimensions.
	Metrics []MetricSpec `json:"metrics" yaml:"metrics"`
}

// MetricSpec defines the aggregations to compute for one metric column.
type MetricSpec struct {
	// The column to aggregate.
	//
	// Must exist in the record set. sum/mean/min/max require a numeric
	// measure column; count accepts any column (it counts group members
	// regardless of the column's nullity). Examples: "sale_amount_usd",
	// "transaction_id".
	Column string `json:"column" yaml:"column"`

	// Aggregation function names, applied in order.
	//
	// Supported vocabulary: "sum", "mean", "count", "min", "max".
	// Each function yields an output column named "{column}_{function}";
	// a single-function metric keeps the suffix too.
	Functions []string `json:"functions" yaml:"functions"`
}
