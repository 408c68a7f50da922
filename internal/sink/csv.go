// Package sink persists built cubes. The only implementation writes
// delimited text with a header row, one line per cube row, null values as
// empty fields, and the traceability list as a literal list ([550, 551]).
package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"smartsales/internal"
	"smartsales/specs"
)

// CSVSink writes a cube to one CSV file, creating parent directories as
// needed.
type CSVSink struct {
	path   string
	logger *slog.Logger
}

func NewCSVSink(path string, logger *slog.Logger) *CSVSink {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CSVSink{path: path, logger: logger}
}

// WriteCube implements internal.CubeSink.
func (s *CSVSink) WriteCube(cube specs.CubeSpec) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: creating output directory: %w", internal.ErrPersistence, err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", internal.ErrPersistence, s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(cube.Columns); err != nil {
		return fmt.Errorf("%w: writing header: %w", internal.ErrPersistence, err)
	}

	for _, row := range cube.Rows {
		if err := w.Write(csvFields(cube.Columns, row)); err != nil {
			return fmt.Errorf("%w: writing row: %w", internal.ErrPersistence, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flushing %s: %w", internal.ErrPersistence, s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", internal.ErrPersistence, s.path, err)
	}

	s.logger.Info("cube saved", "path", s.path, "rows", len(cube.Rows))
	return nil
}

// csvFields renders one cube row in column order. Null dimension values
// and null aggregates become empty fields.
func csvFields(columns []string, row specs.CubeRowSpec) []string {
	fields := make([]string, len(columns))
	for i, column := range columns {
		switch {
		case column == specs.TraceabilityColumn:
			fields[i] = formatIDList(row.RecordIDs)
		default:
			if value, ok := row.Dimensions[column]; ok {
				fields[i] = value
			} else if value, ok := row.Values[column]; ok {
				fields[i] = value
			}
		}
	}
	return fields
}

func formatIDList(ids []string) string {
	return "[" + strings.Join(ids, ", ") + "]"
}
