package telemetry

import (
	"sync"

	"github.com/google/uuid"
)

// Outcome classifies how a generation finished.
type Outcome string

const (
	OutcomeSuccess    Outcome = "success"
	OutcomeValidation Outcome = "validation_error"
	OutcomeTimeout    Outcome = "timeout"
	OutcomeRuntime    Outcome = "runtime_error"
	OutcomeMeshError  Outcome = "mesh_validation_error"
	OutcomeCancelled  Outcome = "cancelled"
)

// GenerationTrace is one correlation-id-tagged record of a generate() call.
// Traces are kept in memory only, in a bounded ring buffer; nothing here is
// persisted.
type GenerationTrace struct {
	ID         uuid.UUID
	LayerID    *string
	StartedAt  int64 // unix nanos, stamped by the caller
	FinishedAt int64
	Outcome    Outcome
}

const defaultRingSize = 50

// Ring is a fixed-capacity, insertion-ordered ring buffer of
// GenerationTrace records; once full, the oldest trace is evicted.
type Ring struct {
	mu       sync.Mutex
	capacity int
	traces   []GenerationTrace
}

// NewRing returns a Ring with the given capacity, or defaultRingSize (50)
// if capacity <= 0.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = defaultRingSize
	}
	return &Ring{capacity: capacity}
}

// Push appends a trace, evicting the oldest if the ring is full.
func (r *Ring) Push(t GenerationTrace) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.traces = append(r.traces, t)
	if len(r.traces) > r.capacity {
		r.traces = r.traces[len(r.traces)-r.capacity:]
	}
}

// Snapshot returns a copy of the traces currently held, oldest first.
func (r *Ring) Snapshot() []GenerationTrace {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]GenerationTrace, len(r.traces))
	copy(out, r.traces)
	return out
}

// NewCorrelationID returns a fresh per-generation correlation id, distinct
// from the layer-id sequence the layer store owns.
func NewCorrelationID() uuid.UUID { return uuid.New() }
