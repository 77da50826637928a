package scene

import (
	"fmt"
	"math"

	"github.com/chazu/scenecraft/pkg/mesh"
)

// Severity distinguishes a blocking finding from an advisory one, mirroring
// graph.ValidationSeverity's error/warning split.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Finding is a single output-validation result.
type Finding struct {
	Message  string
	Severity Severity
}

func (f Finding) Error() string {
	return fmt.Sprintf("[%s] %s", f.Severity, f.Message)
}

const (
	maxVertexCountError   = 500_000
	maxVertexCountWarning = 100_000
	maxPositionMagnitude  = 1000
	degenerateSampleCap   = 1000
	degenerateEpsilon     = 1e-20
)

// ValidateMesh runs the C8 output-validator checks against a drained
// buffer, classifying each finding as an error (the caller must discard
// the mesh) or a warning (surfaced to the caller, layer still added).
func ValidateMesh(buf *mesh.Buffer) []Finding {
	var findings []Finding

	vc := buf.VertexCount()
	switch {
	case vc >= maxVertexCountError:
		findings = append(findings, Finding{fmt.Sprintf("vertex_count %d exceeds hard limit %d", vc, maxVertexCountError), SeverityError})
	case vc >= maxVertexCountWarning:
		findings = append(findings, Finding{fmt.Sprintf("vertex_count %d is unusually high", vc), SeverityWarning})
	case vc == 0:
		findings = append(findings, Finding{"zero vertices", SeverityWarning})
	}

	findings = append(findings, checkPositions(buf.Positions())...)
	findings = append(findings, checkFinite(buf.Colors(), "colors")...)
	if buf.HasCustomNormals {
		findings = append(findings, checkFinite(buf.Normals(), "normals")...)
	}
	findings = append(findings, checkDegenerateTriangles(buf.Positions())...)

	return findings
}

// HasError reports whether any finding is severity error.
func HasError(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func checkPositions(positions []float32) []Finding {
	var findings []Finding
	nonFinite := false
	offScene := false
	for _, v := range positions {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			nonFinite = true
		} else if math.Abs(float64(v)) > maxPositionMagnitude {
			offScene = true
		}
	}
	if nonFinite {
		findings = append(findings, Finding{"non-finite value in positions", SeverityError})
	}
	if offScene {
		findings = append(findings, Finding{fmt.Sprintf("a position magnitude exceeds %d (off-scene)", maxPositionMagnitude), SeverityWarning})
	}
	return findings
}

func checkFinite(values []float32, label string) []Finding {
	for _, v := range values {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return []Finding{{fmt.Sprintf("non-finite value in %s", label), SeverityWarning}}
		}
	}
	return nil
}

// checkDegenerateTriangles samples up to degenerateSampleCap triangles at a
// stride chosen to cover the mesh uniformly, flagging any whose two edge
// vectors have a near-zero cross product (zero area).
func checkDegenerateTriangles(positions []float32) []Finding {
	triCount := len(positions) / 9
	if triCount == 0 {
		return nil
	}
	stride := 1
	if triCount > degenerateSampleCap {
		stride = triCount / degenerateSampleCap
	}

	sampled := 0
	degenerate := 0
	for t := 0; t < triCount; t += stride {
		base := t * 9
		p1 := [3]float32{positions[base], positions[base+1], positions[base+2]}
		p2 := [3]float32{positions[base+3], positions[base+4], positions[base+5]}
		p3 := [3]float32{positions[base+6], positions[base+7], positions[base+8]}
		e1 := [3]float32{p2[0] - p1[0], p2[1] - p1[1], p2[2] - p1[2]}
		e2 := [3]float32{p3[0] - p1[0], p3[1] - p1[1], p3[2] - p1[2]}
		cx := e1[1]*e2[2] - e1[2]*e2[1]
		cy := e1[2]*e2[0] - e1[0]*e2[2]
		cz := e1[0]*e2[1] - e1[1]*e2[0]
		sqLen := float64(cx*cx + cy*cy + cz*cz)
		sampled++
		if sqLen < degenerateEpsilon {
			degenerate++
		}
	}

	if degenerate == 0 {
		return nil
	}
	estimatedTotal := degenerate * stride
	return []Finding{{
		fmt.Sprintf("found %d degenerate triangles in a sample of %d (estimated %d of %d total)",
			degenerate, sampled, estimatedTotal, triCount),
		SeverityWarning,
	}}
}
