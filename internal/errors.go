package internal

import "errors"

// Error kinds for the cube-building run. Every failure surfaced by the
// engine wraps exactly one of these sentinels, so callers can branch on
// the kind with errors.Is without inspecting message text.
var (
	// ErrIngestion marks a source failure: the warehouse is unreadable,
	// a record's date is unparseable, or the record set violates the
	// fact-record uniqueness invariant. Fatal for the run.
	ErrIngestion = errors.New("ingestion error")

	// ErrConfiguration marks an invalid cube configuration: an empty
	// dimension list, an unknown column or aggregation function, or an
	// output column-name collision. Raised before any grouping work.
	ErrConfiguration = errors.New("configuration error")

	// ErrAggregation marks an unexpected numeric failure, such as a
	// non-numeric value in a metric column. Fatal for the run.
	ErrAggregation = errors.New("aggregation error")

	// ErrPersistence marks a sink write failure. The already-built cube
	// remains available in memory for the caller to retry.
	ErrPersistence = errors.New("persistence error")
)
