// Package geometry selects and tessellates the primitive solids a model is made of.
package geometry

// Kind is a primitive geometry shape.
type Kind string

// Geometry kinds.
const (
	KindBox      Kind = "box"
	KindCylinder Kind = "cylinder"
	KindSphere   Kind = "sphere"
)

// DefaultSegments is the radial (and sphere ring) resolution of curved solids.
const DefaultSegments = 32

// Params holds the size and resolution of a primitive. Box uses Width, Height and
// Depth; cylinder uses RadiusTop, RadiusBottom, Height and RadialSegments; sphere
// uses Radius, WidthSegments and HeightSegments.
type Params struct {
	Width          float32
	Height         float32
	Depth          float32
	Radius         float32
	RadiusTop      float32
	RadiusBottom   float32
	RadialSegments int
	WidthSegments  int
	HeightSegments int
}

// Spec is a geometry selection: what to tessellate and with which parameters.
type Spec struct {
	Kind   Kind
	Params Params
}

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds tessellated vertex and index data ready for upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Triangles returns the triangle count.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Size returns the extent along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// emptyBounds is the identity for updateBounds.
func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	if p[0] < b.Min[0] {
		b.Min[0] = p[0]
	}
	if p[1] < b.Min[1] {
		b.Min[1] = p[1]
	}
	if p[2] < b.Min[2] {
		b.Min[2] = p[2]
	}
	if p[0] > b.Max[0] {
		b.Max[0] = p[0]
	}
	if p[1] > b.Max[1] {
		b.Max[1] = p[1]
	}
	if p[2] > b.Max[2] {
		b.Max[2] = p[2]
	}
}
