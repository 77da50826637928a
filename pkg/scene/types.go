// Package scene owns the layer store: it validates generated meshes,
// computes spatial relationships between layers, and drives the
// generate/remove/clear/list_meta facade on top of pkg/sandbox.
package scene

import (
	"math"

	"github.com/chazu/scenecraft/pkg/mesh"
)

// AABB is an axis-aligned bounding box in scene space.
type AABB struct {
	Min, Max, Center mesh.Vec3
}

// BoundsFromMesh scans every emitted position and returns the resulting
// AABB. An empty buffer yields an all-zero AABB.
func BoundsFromMesh(buf *mesh.Buffer) AABB {
	positions := buf.Positions()
	if len(positions) == 0 {
		return AABB{}
	}
	min := mesh.Vec3{positions[0], positions[1], positions[2]}
	max := min
	for i := 0; i+2 < len(positions); i += 3 {
		for a := 0; a < 3; a++ {
			v := positions[i+a]
			if v < min[a] {
				min[a] = v
			}
			if v > max[a] {
				max[a] = v
			}
		}
	}
	center := mesh.Vec3{
		(min[0] + max[0]) / 2,
		(min[1] + max[1]) / 2,
		(min[2] + max[2]) / 2,
	}
	return AABB{Min: min, Max: max, Center: center}
}

// Overlaps reports whether two AABBs have a positive-length intersection on
// every axis; boxes that only touch do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	for axis := 0; axis < 3; axis++ {
		if a.Max[axis] <= b.Min[axis] || b.Max[axis] <= a.Min[axis] {
			return false
		}
	}
	return true
}

// AxisName maps an axis index (0,1,2) to its X/Y/Z label.
func AxisName(axis int) string {
	return [3]string{"X", "Y", "Z"}[axis]
}

// Gap reports the separating axis and magnitude between two non-overlapping
// AABBs: on each axis compute max(0, min_a-max_b, min_b-max_a), and report
// the axis with the largest positive value.
func Gap(a, b AABB) (axis string, magnitude float64) {
	bestAxis, bestVal := 0, math.Inf(-1)
	for i := 0; i < 3; i++ {
		v := math.Max(0, math.Max(float64(a.Min[i]-b.Max[i]), float64(b.Min[i]-a.Max[i])))
		if v > bestVal {
			bestVal, bestAxis = v, i
		}
	}
	return AxisName(bestAxis), bestVal
}

// Penetration reports the shallowest overlap axis and magnitude between two
// overlapping AABBs: on each axis compute min(max_a,max_b)-max(min_a,min_b),
// and report the axis with the smallest positive value.
func Penetration(a, b AABB) (axis string, magnitude float64) {
	bestAxis, bestVal := 0, math.Inf(1)
	for i := 0; i < 3; i++ {
		v := float64(math.Min(float64(a.Max[i]), float64(b.Max[i])) - math.Max(float64(a.Min[i]), float64(b.Min[i])))
		if v < bestVal {
			bestVal, bestAxis = v, i
		}
	}
	return AxisName(bestAxis), bestVal
}

// CenterDistance is the ordinary Euclidean distance between two AABBs'
// centers.
func CenterDistance(a, b AABB) float64 {
	dx := float64(a.Center[0] - b.Center[0])
	dy := float64(a.Center[1] - b.Center[1])
	dz := float64(a.Center[2] - b.Center[2])
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// AxisMagnitude is a named separating or overlapping axis with its extent,
// nested under SpatialRelationship's optional gap/penetration fields.
type AxisMagnitude struct {
	Axis      string  `json:"axis"`
	Magnitude float64 `json:"magnitude"`
}

// SpatialRelationship describes how a newly generated layer relates to one
// previously existing layer. Gap and Penetration are mutually exclusive and
// nil when not applicable, matching spec.md §6's `gap?`/`penetration?`
// optional nested shape.
type SpatialRelationship struct {
	ID             string         `json:"id"`
	Description    string         `json:"description"`
	Overlaps       bool           `json:"overlaps"`
	Gap            *AxisMagnitude `json:"gap,omitempty"`
	Penetration    *AxisMagnitude `json:"penetration,omitempty"`
	CenterDistance float64        `json:"center_distance"`
}

// AnalyzeSpatial computes relationships between a new layer's bounds and
// every prior layer, in insertion order, plus the id of the nearest prior
// layer by center distance (ties broken by insertion order). It returns
// ok=false if there are no prior layers, matching spec.md's "absent if
// N==0" rule.
func AnalyzeSpatial(newBounds AABB, prior []*Layer) (rels []SpatialRelationship, nearestID string, ok bool) {
	if len(prior) == 0 {
		return nil, "", false
	}
	bestDist := math.Inf(1)
	for _, layer := range prior {
		rel := SpatialRelationship{
			ID:             layer.ID,
			Description:    layer.Description,
			CenterDistance: CenterDistance(newBounds, layer.Bounds),
		}
		if newBounds.Overlaps(layer.Bounds) {
			rel.Overlaps = true
			axis, mag := Penetration(newBounds, layer.Bounds)
			rel.Penetration = &AxisMagnitude{Axis: axis, Magnitude: mag}
		} else {
			axis, mag := Gap(newBounds, layer.Bounds)
			rel.Gap = &AxisMagnitude{Axis: axis, Magnitude: mag}
		}
		rels = append(rels, rel)
		if rel.CenterDistance < bestDist {
			bestDist = rel.CenterDistance
			nearestID = layer.ID
		}
	}
	return rels, nearestID, true
}

// Layer is a single generated piece of geometry held by the store.
type Layer struct {
	ID          string
	Description string
	Buf         *mesh.Buffer
	Bounds      AABB
	Warnings    []string
}

// TopCenter is [cx, max_y, cz].
func (l *Layer) TopCenter() mesh.Vec3 {
	return mesh.Vec3{l.Bounds.Center[0], l.Bounds.Max[1], l.Bounds.Center[2]}
}

// BottomCenter is [cx, min_y, cz].
func (l *Layer) BottomCenter() mesh.Vec3 {
	return mesh.Vec3{l.Bounds.Center[0], l.Bounds.Min[1], l.Bounds.Center[2]}
}

// Size is max - min per axis.
func (l *Layer) Size() mesh.Vec3 {
	return mesh.Vec3{
		l.Bounds.Max[0] - l.Bounds.Min[0],
		l.Bounds.Max[1] - l.Bounds.Min[1],
		l.Bounds.Max[2] - l.Bounds.Min[2],
	}
}

// LayerMeta is the bookkeeping-only summary returned by ListMeta, without
// the underlying mesh buffer.
type LayerMeta struct {
	ID          string
	Description string
	Bounds      AABB
	VertexCount uint32
}
