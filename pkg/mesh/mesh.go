// Package mesh implements the growable vertex buffer that sandboxed
// generation code emits triangles into, and the material hints that ride
// alongside it.
package mesh

// initialCapacity is the vertex-slot capacity a fresh Buffer starts with;
// exceeding it doubles capacity rather than growing incrementally.
const initialCapacity = 300_000

// Vec3 and Color are the flat triples emitters accept and buffers store;
// callers pass values, never pointers into the buffer, so there is nothing
// to alias across emissions.
type Vec3 = [3]float32
type Color = [3]float32

// MaterialHints holds optional PBR-ish material parameters. A nil field
// means "not set"; SetMaterial merges a patch into an existing set of
// hints field-by-field rather than replacing the whole struct.
type MaterialHints struct {
	Roughness *float64
	Metalness *float64
	Opacity   *float64
}

// Merge overwrites only the fields patch sets, leaving the rest untouched.
func (m *MaterialHints) Merge(patch MaterialHints) {
	if patch.Roughness != nil {
		m.Roughness = patch.Roughness
	}
	if patch.Metalness != nil {
		m.Metalness = patch.Metalness
	}
	if patch.Opacity != nil {
		m.Opacity = patch.Opacity
	}
}

// Buffer accumulates emitted triangles as three parallel flat float32
// arrays (positions, colors, normals), each 3 floats per vertex. Normals
// are tracked internally for every vertex so the arrays always agree in
// length, but HasCustomNormals tells callers whether the normals array
// carries real data or is just filler zeros.
type Buffer struct {
	positions []float32
	colors    []float32
	normals   []float32

	vertexCount uint32
	capacity    uint32

	HasCustomNormals bool
	Material         MaterialHints
}

// NewBuffer returns an empty buffer pre-sized to initialCapacity vertex
// slots.
func NewBuffer() *Buffer {
	b := &Buffer{capacity: initialCapacity}
	b.positions = make([]float32, 0, int(b.capacity)*3)
	b.colors = make([]float32, 0, int(b.capacity)*3)
	b.normals = make([]float32, 0, int(b.capacity)*3)
	return b
}

func growTo(s []float32, newCap int) []float32 {
	grown := make([]float32, len(s), newCap)
	copy(grown, s)
	return grown
}

// ensureCapacity doubles capacity, possibly repeatedly, until at least
// extra more vertices fit. Growth always copies the existing contents
// forward, so emission order is preserved.
func (b *Buffer) ensureCapacity(extra uint32) {
	for b.vertexCount+extra > b.capacity {
		b.capacity *= 2
		newCap := int(b.capacity) * 3
		b.positions = growTo(b.positions, newCap)
		b.colors = growTo(b.colors, newCap)
		b.normals = growTo(b.normals, newCap)
	}
}

func (b *Buffer) appendVertex(p, c, n Vec3) {
	b.positions = append(b.positions, p[0], p[1], p[2])
	b.colors = append(b.colors, c[0], c[1], c[2])
	b.normals = append(b.normals, n[0], n[1], n[2])
	b.vertexCount++
}

// EmitTriangle appends one triangle with a single color applied to all
// three vertices and no explicit normal. HasCustomNormals is left
// unchanged.
func (b *Buffer) EmitTriangle(p1, p2, p3, color Vec3) {
	b.ensureCapacity(3)
	var zero Vec3
	b.appendVertex(p1, color, zero)
	b.appendVertex(p2, color, zero)
	b.appendVertex(p3, color, zero)
}

// EmitQuad emits two triangles, (p1,p2,p3) and (p1,p3,p4), preserving the
// caller's winding.
func (b *Buffer) EmitQuad(p1, p2, p3, p4, color Vec3) {
	b.EmitTriangle(p1, p2, p3, color)
	b.EmitTriangle(p1, p3, p4, color)
}

// EmitSmoothTriangle appends one triangle with an explicit per-vertex
// normal and sets HasCustomNormals.
func (b *Buffer) EmitSmoothTriangle(p1, n1, p2, n2, p3, n3, color Vec3) {
	b.ensureCapacity(3)
	b.appendVertex(p1, color, n1)
	b.appendVertex(p2, color, n2)
	b.appendVertex(p3, color, n3)
	b.HasCustomNormals = true
}

// SetMaterial merges patch into the buffer's accumulated material hints.
func (b *Buffer) SetMaterial(patch MaterialHints) {
	b.Material.Merge(patch)
}

// VertexCount is the number of vertices emitted so far.
func (b *Buffer) VertexCount() uint32 { return b.vertexCount }

// TriangleCount is VertexCount/3; every triangle owns three vertices, no
// indexing.
func (b *Buffer) TriangleCount() uint32 { return b.vertexCount / 3 }

// IsEmpty reports whether no vertices have been emitted.
func (b *Buffer) IsEmpty() bool { return b.vertexCount == 0 }

// Positions returns the flat position array, length 3*VertexCount().
func (b *Buffer) Positions() []float32 { return b.positions }

// Colors returns the flat color array, length 3*VertexCount().
func (b *Buffer) Colors() []float32 { return b.colors }

// Normals returns the flat normal array, length 3*VertexCount(). Its
// contents are meaningful only when HasCustomNormals is true.
func (b *Buffer) Normals() []float32 { return b.normals }
