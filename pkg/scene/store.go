package scene

import (
	"fmt"
	"sync"
	"time"

	"github.com/dhconnelly/rtreego"
	"github.com/samber/lo"

	"github.com/chazu/scenecraft/internal/telemetry"
	"github.com/chazu/scenecraft/pkg/mesh"
	"github.com/chazu/scenecraft/pkg/sandbox"
	"github.com/chazu/scenecraft/pkg/sandbox/schema"
	"github.com/chazu/scenecraft/pkg/sceneconfig"
)

// ValidationError reports that C7 static analysis rejected generation
// source before any sandbox was spawned.
type ValidationError struct{ Reason string }

func (e *ValidationError) Error() string { return "validation: " + e.Reason }

// MeshValidationError reports that C8 output validation found a blocking
// error in the drained mesh; the mesh is discarded and no layer is added.
type MeshValidationError struct{ Reasons []string }

func (e *MeshValidationError) Error() string {
	return fmt.Sprintf("mesh validation: %v", e.Reasons)
}

// CancelledError reports that the host cancelled a generation in flight.
type CancelledError struct{}

func (e *CancelledError) Error() string { return "generation cancelled" }

// GenerateResult bundles a newly added layer with any non-blocking C8
// warnings and the correlation id its GenerationTrace was logged under.
type GenerateResult struct {
	Layer         *Layer
	Warnings      []string
	CorrelationID string
}

// Store owns the layer collection: the single-writer, in-memory geometry
// state the engine facade (C11) mutates and the host queries. Sandboxes
// (pkg/sandbox) never touch it directly, matching spec.md §5's ownership
// split.
type Store struct {
	mu     sync.Mutex
	layers map[string]*Layer
	order  []string
	nextID uint64

	runner *sandbox.Runner
	tree   *rtreego.Rtree
	cfg    sceneconfig.Config
	traces *telemetry.Ring
}

// NewStore builds an empty layer store using cfg for timeout/resolution/
// forbidden-identifier policy.
func NewStore(cfg sceneconfig.Config) *Store {
	return &Store{
		layers: make(map[string]*Layer),
		runner: sandbox.NewRunner(),
		tree:   rtreego.NewTree(3, 4, 32),
		cfg:    cfg,
		traces: telemetry.NewRing(cfg.RingBufferSize),
	}
}

// nextLayerID returns the next sequential "layer-<n>" id, starting at
// "layer-0". Must be called with s.mu held.
func (s *Store) nextLayerID() string {
	id := fmt.Sprintf("layer-%d", s.nextID)
	s.nextID++
	return id
}

// Cancel discards the result of whatever generation is currently in
// flight, if any. It never blocks.
func (s *Store) Cancel() {
	s.runner.Cancel()
}

// Generate runs the full C11 pipeline: JSON-schema check, C7 static
// validation, C9 sandboxed evaluation, C8 output validation, and C10
// bounds computation, packaging the result into a new Layer on success.
// Spatial analysis against prior layers is not part of Generate; it is
// computed on request by SpatialAnalysis.
func (s *Store) Generate(rawInput []byte, seed uint32) (*GenerateResult, error) {
	id := telemetry.NewCorrelationID()
	correlationID := id.String()
	trace := telemetry.GenerationTrace{ID: id, StartedAt: time.Now().UnixNano(), Outcome: telemetry.OutcomeRuntime}
	finish := func() {
		trace.FinishedAt = time.Now().UnixNano()
		s.traces.Push(trace)
	}

	input, err := schema.ValidateInput(rawInput)
	if err != nil {
		trace.Outcome = telemetry.OutcomeValidation
		finish()
		telemetry.Warn("generation input failed schema validation", "correlation_id", correlationID, "err", err)
		return nil, &ValidationError{Reason: err.Error()}
	}

	validation := sandbox.Validate(input.Code, s.cfg.ForbiddenIdentifiers)
	if !validation.Valid {
		trace.Outcome = telemetry.OutcomeValidation
		finish()
		telemetry.Warn("generation source rejected by static validator", "correlation_id", correlationID, "reason", validation.Reason)
		return nil, &ValidationError{Reason: validation.Reason}
	}

	s.mu.Lock()
	bounds := s.cfg.SceneBounds
	s.mu.Unlock()

	buf, err := s.runner.Run(input.Code, seed, bounds, s.cfg.Timeout())
	if err != nil {
		switch e := err.(type) {
		case *sandbox.TimeoutError:
			trace.Outcome = telemetry.OutcomeTimeout
			finish()
			telemetry.Error("generation timed out", "correlation_id", correlationID)
			return nil, e
		case *sandbox.RuntimeError:
			trace.Outcome = telemetry.OutcomeRuntime
			finish()
			telemetry.Error("generation raised a runtime error", "correlation_id", correlationID, "message", e.Message, "vertices_so_far", e.VerticesSoFar)
			return nil, e
		case *sandbox.CancelledError:
			trace.Outcome = telemetry.OutcomeCancelled
			finish()
			telemetry.Info("generation cancelled", "correlation_id", correlationID)
			return nil, &CancelledError{}
		default:
			trace.Outcome = telemetry.OutcomeRuntime
			finish()
			telemetry.Error("generation failed with an unrecognized error", "correlation_id", correlationID, "err", err)
			return nil, err
		}
	}

	findings := ValidateMesh(buf)
	if HasError(findings) {
		reasons := lo.Map(lo.Filter(findings, func(f Finding, _ int) bool { return f.Severity == SeverityError }),
			func(f Finding, _ int) string { return f.Message })
		trace.Outcome = telemetry.OutcomeMeshError
		finish()
		telemetry.Error("generated mesh failed output validation", "correlation_id", correlationID, "reasons", reasons)
		return nil, &MeshValidationError{Reasons: reasons}
	}
	warnings := lo.Map(lo.Filter(findings, func(f Finding, _ int) bool { return f.Severity == SeverityWarning }),
		func(f Finding, _ int) string { return f.Message })

	layerBounds := BoundsFromMesh(buf)

	s.mu.Lock()
	layerID := s.nextLayerID()
	layer := &Layer{
		ID:          layerID,
		Description: input.Description,
		Buf:         buf,
		Bounds:      layerBounds,
		Warnings:    warnings,
	}
	s.layers[layerID] = layer
	s.order = append(s.order, layerID)
	s.tree.Insert(&rtreeItem{layer: layer})
	s.mu.Unlock()

	trace.Outcome = telemetry.OutcomeSuccess
	trace.LayerID = lo.ToPtr(layerID)
	finish()
	telemetry.Info("layer generated", "correlation_id", correlationID, "layer_id", layerID, "vertex_count", buf.VertexCount())

	return &GenerateResult{Layer: layer, Warnings: warnings, CorrelationID: correlationID}, nil
}

// SpatialAnalysis computes C10 relationships between layerID and every
// other layer currently in the store, in insertion order.
func (s *Store) SpatialAnalysis(layerID string) ([]SpatialRelationship, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.layers[layerID]
	if !ok {
		return nil, "", false
	}
	var prior []*Layer
	for _, id := range s.order {
		if id == layerID {
			continue
		}
		prior = append(prior, s.layers[id])
	}
	return AnalyzeSpatial(target.Bounds, prior)
}

// Remove deletes a layer by id. It is a no-op if the id is unknown.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	layer, ok := s.layers[id]
	if !ok {
		return
	}
	// Items are matched by the layer they wrap; a fresh wrapper is never
	// pointer-equal to the one inserted by Generate.
	s.tree.DeleteWithComparator(&rtreeItem{layer: layer}, func(a, b rtreego.Spatial) bool {
		return a.(*rtreeItem).layer == b.(*rtreeItem).layer
	})
	delete(s.layers, id)
	s.order = lo.Reject(s.order, func(existing string, _ int) bool { return existing == id })
}

// Clear removes every layer from the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.layers = make(map[string]*Layer)
	s.order = nil
	s.tree = rtreego.NewTree(3, 4, 32)
}

// ListMeta returns bookkeeping-only summaries for every layer, in
// insertion order.
func (s *Store) ListMeta() []LayerMeta {
	s.mu.Lock()
	defer s.mu.Unlock()

	metas := make([]LayerMeta, 0, len(s.order))
	for _, id := range s.order {
		l := s.layers[id]
		metas = append(metas, LayerMeta{ID: l.ID, Description: l.Description, Bounds: l.Bounds, VertexCount: l.Buf.VertexCount()})
	}
	return metas
}

// LayersOverlapping is a supplementary read-only region query backed by
// the store's R-tree index; it does not replace the mandated per-layer
// relationship report in SpatialAnalysis, which remains an exact linear
// pass for correctness and tie-break fidelity.
func (s *Store) LayersOverlapping(min, max mesh.Vec3) []LayerMeta {
	s.mu.Lock()
	defer s.mu.Unlock()

	lengths := []float64{float64(max[0] - min[0]), float64(max[1] - min[1]), float64(max[2] - min[2])}
	for i, l := range lengths {
		if l <= 0 {
			lengths[i] = 1e-9
		}
	}
	rect, err := rtreego.NewRect(rtreego.Point{float64(min[0]), float64(min[1]), float64(min[2])}, lengths)
	if err != nil {
		return nil
	}
	hits := s.tree.SearchIntersect(rect)
	metas := make([]LayerMeta, 0, len(hits))
	for _, h := range hits {
		item := h.(*rtreeItem)
		metas = append(metas, LayerMeta{ID: item.layer.ID, Description: item.layer.Description, Bounds: item.layer.Bounds, VertexCount: item.layer.Buf.VertexCount()})
	}
	return metas
}
