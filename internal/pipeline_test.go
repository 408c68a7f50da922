package internal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartsales/internal/infra"
	"smartsales/specs"
)

type stubSource struct {
	records []specs.FactRecordSpec
	err     error
}

func (s *stubSource) ReadFacts() ([]specs.FactRecordSpec, error) {
	return s.records, s.err
}

type stubSink struct {
	cube    specs.CubeSpec
	written bool
	err     error
}

func (s *stubSink) WriteCube(cube specs.CubeSpec) error {
	if s.err != nil {
		return s.err
	}
	s.cube = cube
	s.written = true
	return nil
}

func pipelineTestRecords() []specs.FactRecordSpec {
	return []specs.FactRecordSpec{
		newTestFactRecord("550",
			withAttributes(map[string]string{"product_id": "101", "sale_date": "2024-01-06"}),
			withMeasures(map[string]string{"sale_amount_usd": "6344.96"})),
		newTestFactRecord("551",
			withAttributes(map[string]string{"product_id": "102", "sale_date": "2024-01-06"}),
			withMeasures(map[string]string{"sale_amount_usd": "312.80"})),
	}
}

func pipelineTestConfig() specs.CubeConfigSpec {
	return specs.CubeConfigSpec{
		DateColumn: "sale_date",
		Dimensions: []string{"DayOfWeek", "product_id"},
		Metrics:    []specs.MetricSpec{{Column: "sale_amount_usd", Functions: []string{"sum"}}},
	}
}

func TestPipelineRun(t *testing.T) {
	t.Run("runs ingest derive build persist and publishes lifecycle events", func(t *testing.T) {
		source := &stubSource{records: pipelineTestRecords()}
		sink := &stubSink{}
		bus := infra.NewBus()

		var seen []infra.EventType
		for _, et := range []infra.EventType{infra.FactsIngested, infra.DimensionsDerived, infra.CubeBuilt, infra.CubePersisted} {
			bus.Subscribe(et, func(e infra.Event) { seen = append(seen, e.EventType()) })
		}

		pipeline := NewPipeline(source, sink, bus, nil)
		cube, err := pipeline.Run(pipelineTestConfig())

		require.NoError(t, err)
		assert.True(t, sink.written)
		assert.Len(t, cube.Rows, 2)
		assert.Equal(t, "Saturday", cube.Rows[0].Dimensions["DayOfWeek"])
		assert.Equal(t, []infra.EventType{
			infra.FactsIngested,
			infra.DimensionsDerived,
			infra.CubeBuilt,
			infra.CubePersisted,
		}, seen)
	})

	t.Run("skips derivation when no date column is configured", func(t *testing.T) {
		source := &stubSource{records: pipelineTestRecords()}
		sink := &stubSink{}
		config := pipelineTestConfig()
		config.DateColumn = ""
		config.Dimensions = []string{"product_id"}

		pipeline := NewPipeline(source, sink, nil, nil)
		cube, err := pipeline.Run(config)

		require.NoError(t, err)
		assert.Len(t, cube.Rows, 2)
		assert.NotContains(t, cube.Rows[0].Dimensions, DimensionDayOfWeek)
	})

	t.Run("with source failure returns ingestion error and no cube", func(t *testing.T) {
		readErr := fmt.Errorf("%w: disk gone", ErrIngestion)
		source := &stubSource{err: readErr}
		sink := &stubSink{}

		pipeline := NewPipeline(source, sink, nil, nil)
		cube, err := pipeline.Run(pipelineTestConfig())

		require.ErrorIs(t, err, ErrIngestion)
		assert.Empty(t, cube.Rows)
		assert.False(t, sink.written)
	})

	t.Run("with sink failure returns the built cube alongside the error", func(t *testing.T) {
		source := &stubSource{records: pipelineTestRecords()}
		sink := &stubSink{err: fmt.Errorf("%w: target unwritable", ErrPersistence)}

		pipeline := NewPipeline(source, sink, nil, nil)
		cube, err := pipeline.Run(pipelineTestConfig())

		require.ErrorIs(t, err, ErrPersistence)
		assert.Len(t, cube.Rows, 2, "built cube must stay available for retry")
	})

	t.Run("with invalid config returns configuration error before persisting", func(t *testing.T) {
		source := &stubSource{records: pipelineTestRecords()}
		sink := &stubSink{}
		config := pipelineTestConfig()
		config.Metrics = []specs.MetricSpec{{Column: "sale_amount_usd", Functions: []string{"median"}}}

		pipeline := NewPipeline(source, sink, nil, nil)
		_, err := pipeline.Run(config)

		require.True(t, errors.Is(err, ErrConfiguration))
		assert.False(t, sink.written)
	})
}
