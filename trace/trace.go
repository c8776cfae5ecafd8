package trace

import (
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"elevatorsim/report"
)

// Tracer writes one JSON object per tick. A nil *Tracer discards
// everything.
type Tracer struct {
	runID string
	log   zerolog.Logger
}

func New(w io.Writer) *Tracer {
	runID := uuid.NewString()
	return &Tracer{
		runID: runID,
		log:   zerolog.New(w).With().Timestamp().Str("run", runID).Logger(),
	}
}

func (t *Tracer) RunID() string {
	if t == nil {
		return ""
	}
	return t.runID
}

// Tick records the state of the building after a tick.
func (t *Tracer) Tick(tick int, r report.BuildingReport) {
	if t == nil {
		return
	}

	elevators := zerolog.Arr()
	for _, e := range r.Elevators {
		elevators.Dict(zerolog.Dict().
			Int("id", e.ID).
			Int("floor", e.Floor).
			Str("direction", e.Direction.String()).
			Bool("doorClosed", e.DoorClosed).
			Int("dwell", e.DwellTimer).
			Int("wait", e.WaitTimer).
			Bool("outOfService", e.OutOfService).
			Bool("takingRequests", e.TakingRequests).
			Str("line", e.String()))
	}

	t.log.Info().
		Str("event", "tick").
		Int("tick", tick).
		Str("status", r.SystemStatus.String()).
		Int("up", len(r.UpRequests)).
		Int("down", len(r.DownRequests)).
		Array("elevators", elevators).
		Send()
}

// Rejected records request input the building refused.
func (t *Tracer) Rejected(tick int, input string, err error) {
	if t == nil {
		return
	}
	t.log.Warn().
		Str("event", "rejected").
		Int("tick", tick).
		Str("input", input).
		Err(err).
		Send()
}

// Status records a lifecycle change of the building.
func (t *Tracer) Status(tick int, status string) {
	if t == nil {
		return
	}
	t.log.Info().
		Str("event", "status").
		Int("tick", tick).
		Str("status", status).
		Send()
}
