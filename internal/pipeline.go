package internal

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"smartsales/internal/infra"
	"smartsales/specs"
)

// FactSource supplies the raw fact record set for one run. Each call
// reads an independent consistent snapshot; isolation across concurrent
// runs is the source's responsibility, not the engine's.
type FactSource interface {
	ReadFacts() ([]specs.FactRecordSpec, error)
}

// CubeSink persists a built cube as a tabular output.
type CubeSink interface {
	WriteCube(cube specs.CubeSpec) error
}

// Lifecycle events published on the bus during a run.

type FactsIngestedEvent struct {
	RunID   string
	Records int
}

func (e FactsIngestedEvent) EventType() infra.EventType { return infra.FactsIngested }

type DimensionsDerivedEvent struct {
	RunID      string
	DateColumn string
}

func (e DimensionsDerivedEvent) EventType() infra.EventType { return infra.DimensionsDerived }

type CubeBuiltEvent struct {
	RunID   string
	Rows    int
	Columns int
}

func (e CubeBuiltEvent) EventType() infra.EventType { return infra.CubeBuilt }

type CubePersistedEvent struct {
	RunID string
	Rows  int
}

func (e CubePersistedEvent) EventType() infra.EventType { return infra.CubePersisted }

// Pipeline runs one full cubing pass: ingest, derive calendar dimensions,
// build the cube, persist it. Single-threaded and single-pass — the whole
// record set and the whole cube are materialized in memory.
type Pipeline struct {
	source FactSource
	sink   CubeSink
	bus    *infra.Bus
	logger *slog.Logger
}

// NewPipeline wires a pipeline from its collaborators. A nil bus gets a
// private one; a nil logger discards output, so tests can stay quiet
// without touching process-wide state.
func NewPipeline(source FactSource, sink CubeSink, bus *infra.Bus, logger *slog.Logger) *Pipeline {
	if bus == nil {
		bus = infra.NewBus()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		source: source,
		sink:   sink,
		bus:    bus,
		logger: logger,
	}
}

// Run executes one cubing pass for the given configuration.
//
// There is no partial-success mode: the run yields a complete cube or an
// error. The one nuance is persistence — when only the sink write fails,
// the built cube is returned alongside the error so the caller can retry
// the write without recomputing.
func (p *Pipeline) Run(config specs.CubeConfigSpec) (specs.CubeSpec, error) {
	runID := uuid.NewString()
	log := p.logger.With("run_id", runID)

	log.Info("starting cube build",
		"dimensions", config.Dimensions,
		"metrics", len(config.Metrics))

	records, err := p.source.ReadFacts()
	if err != nil {
		log.Error("ingestion failed", "error", err)
		return specs.CubeSpec{}, err
	}
	log.Info("facts ingested", "records", len(records))
	p.bus.Publish(FactsIngestedEvent{RunID: runID, Records: len(records)})

	if config.DateColumn != "" {
		records, err = DeriveCalendar(records, config.DateColumn)
		if err != nil {
			log.Error("dimension derivation failed", "error", err)
			return specs.CubeSpec{}, err
		}
		p.bus.Publish(DimensionsDerivedEvent{RunID: runID, DateColumn: config.DateColumn})
	}

	cube, err := BuildCube(records, config)
	if err != nil {
		log.Error("cube build failed", "error", err)
		return specs.CubeSpec{}, err
	}
	log.Info("cube built", "rows", len(cube.Rows), "columns", len(cube.Columns))
	p.bus.Publish(CubeBuiltEvent{RunID: runID, Rows: len(cube.Rows), Columns: len(cube.Columns)})

	if err := p.sink.WriteCube(cube); err != nil {
		// The built cube stays available for the caller to retry the write.
		log.Error("cube persistence failed", "error", err)
		return cube, err
	}
	p.bus.Publish(CubePersistedEvent{RunID: runID, Rows: len(cube.Rows)})

	log.Info("cube build complete", "rows", len(cube.Rows))
	return cube, nil
}
