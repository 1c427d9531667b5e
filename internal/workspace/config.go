package workspace

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"homogebra/internal/scene"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultJournalSize  = 1024
	defaultNearbyRadius = 0.5
	tracerName          = "homogebra/internal/workspace"
)

// Config encapsulates all tunables for Workspace construction.
type Config struct {
	// Scene configures the hosted scene. Its Publisher, if set, receives
	// every event after the journal has recorded it.
	Scene scene.Config
	// JournalSize bounds the number of retained events.
	JournalSize int
	// NearbyRadius is used by Nearby when the caller passes no radius.
	NearbyRadius float64
	Tracer       trace.Tracer
}

// New constructs a Workspace from cfg.
func New(cfg Config) *Workspace {
	if cfg.JournalSize <= 0 {
		cfg.JournalSize = defaultJournalSize
	}
	if cfg.NearbyRadius <= 0 {
		cfg.NearbyRadius = defaultNearbyRadius
	}
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer(tracerName)
	}
	j := NewJournal(cfg.JournalSize)
	j.next = cfg.Scene.Publisher
	sc := cfg.Scene
	sc.Publisher = j
	return &Workspace{
		scene:   scene.New(sc),
		journal: j,
		tracer:  cfg.Tracer,
		radius:  cfg.NearbyRadius,
		started: j.now(),
	}
}
