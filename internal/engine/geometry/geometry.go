package geometry

import gomath "math"

// Geometry is an allocated primitive: its selection plus the tessellated mesh.
// A disposed geometry keeps its Spec but no longer holds mesh data.
type Geometry struct {
	Spec
	mesh *Mesh
}

// New tessellates spec into a freshly allocated geometry.
func New(spec Spec) *Geometry {
	return &Geometry{Spec: spec, mesh: tessellate(spec)}
}

// Mesh returns the tessellated mesh, or nil once disposed.
func (g *Geometry) Mesh() *Mesh {
	return g.mesh
}

// Bounds returns the local-space bounding box, or zero bounds once disposed.
func (g *Geometry) Bounds() Bounds {
	if g.mesh == nil {
		return Bounds{}
	}
	return g.mesh.Bounds
}

// Dispose releases the mesh buffers. Safe to call more than once.
func (g *Geometry) Dispose() {
	g.mesh = nil
}

// Disposed reports whether Dispose has been called.
func (g *Geometry) Disposed() bool {
	return g.mesh == nil
}

func tessellate(spec Spec) *Mesh {
	switch spec.Kind {
	case KindCylinder:
		return buildCylinder(spec.Params)
	case KindSphere:
		return buildSphere(spec.Params)
	case KindBox:
		return buildBox(spec.Params)
	default:
		return buildBox(Params{Width: 1, Height: 1, Depth: 1})
	}
}

// boxFaces lists each face's outward normal and the in-plane axes whose cross
// product is that normal, so corners walked in (u,v) order wind counter-clockwise.
var boxFaces = [6]struct{ normal, u, v [3]float32 }{
	{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
	{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
	{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
	{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
	{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
	{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
}

var boxCorners = [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// buildBox creates a box centered on the origin.
func buildBox(p Params) *Mesh {
	half := [3]float32{p.Width / 2, p.Height / 2, p.Depth / 2}
	m := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
		Bounds:   emptyBounds(),
	}

	for _, f := range boxFaces {
		base := uint32(len(m.Vertices))
		for _, c := range boxCorners {
			var pos [3]float32
			for i := 0; i < 3; i++ {
				pos[i] = (f.normal[i] + f.u[i]*c[0] + f.v[i]*c[1]) * half[i]
			}
			updateBounds(&m.Bounds, pos)
			m.Vertices = append(m.Vertices, Vertex{
				Position: pos,
				Normal:   f.normal,
				TexCoord: [2]float32{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// buildCylinder creates a capped cylinder along Y, centered on the origin.
func buildCylinder(p Params) *Mesh {
	segments := max(p.RadialSegments, 3)
	halfH := p.Height / 2
	m := &Mesh{Bounds: emptyBounds()}

	// Side wall: row 0 is the top ring, row 1 the bottom ring.
	slope := float32(0)
	if p.Height > 0 {
		slope = (p.RadiusBottom - p.RadiusTop) / p.Height
	}
	var rows [2][]uint32
	for iy := 0; iy < 2; iy++ {
		radius := p.RadiusTop
		y := halfH
		if iy == 1 {
			radius = p.RadiusBottom
			y = -halfH
		}
		for x := 0; x <= segments; x++ {
			u := float32(x) / float32(segments)
			sin, cos := sincos(u * 2 * gomath.Pi)
			pos := [3]float32{radius * sin, y, radius * cos}
			updateBounds(&m.Bounds, pos)
			rows[iy] = append(rows[iy], uint32(len(m.Vertices)))
			m.Vertices = append(m.Vertices, Vertex{
				Position: pos,
				Normal:   normalize([3]float32{sin, slope, cos}),
				TexCoord: [2]float32{u, 1 - float32(iy)},
			})
		}
	}
	for x := 0; x < segments; x++ {
		a, b := rows[0][x], rows[1][x]
		c, d := rows[1][x+1], rows[0][x+1]
		m.Indices = append(m.Indices, a, b, d, b, c, d)
	}

	m.addCap(segments, p.RadiusTop, halfH, true)
	m.addCap(segments, p.RadiusBottom, -halfH, false)
	return m
}

func (m *Mesh) addCap(segments int, radius, y float32, top bool) {
	sign := float32(1)
	if !top {
		sign = -1
	}
	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{
		Position: [3]float32{0, y, 0},
		Normal:   [3]float32{0, sign, 0},
		TexCoord: [2]float32{0.5, 0.5},
	})
	for x := 0; x <= segments; x++ {
		sin, cos := sincos(float32(x) / float32(segments) * 2 * gomath.Pi)
		pos := [3]float32{radius * sin, y, radius * cos}
		updateBounds(&m.Bounds, pos)
		m.Vertices = append(m.Vertices, Vertex{
			Position: pos,
			Normal:   [3]float32{0, sign, 0},
			TexCoord: [2]float32{sin*0.5 + 0.5, cos*0.5*sign + 0.5},
		})
	}
	for x := uint32(0); x < uint32(segments); x++ {
		a, b := center+1+x, center+2+x
		if top {
			m.Indices = append(m.Indices, center, a, b)
		} else {
			m.Indices = append(m.Indices, center, b, a)
		}
	}
}

// buildSphere creates a UV sphere centered on the origin.
func buildSphere(p Params) *Mesh {
	ws := max(p.WidthSegments, 3)
	hs := max(p.HeightSegments, 2)
	m := &Mesh{Bounds: emptyBounds()}

	grid := make([][]uint32, hs+1)
	for iy := 0; iy <= hs; iy++ {
		v := float32(iy) / float32(hs)
		sinV, cosV := sincos(v * gomath.Pi)
		for ix := 0; ix <= ws; ix++ {
			u := float32(ix) / float32(ws)
			sinU, cosU := sincos(u * 2 * gomath.Pi)
			normal := [3]float32{-cosU * sinV, cosV, sinU * sinV}
			pos := [3]float32{p.Radius * normal[0], p.Radius * normal[1], p.Radius * normal[2]}
			updateBounds(&m.Bounds, pos)
			grid[iy] = append(grid[iy], uint32(len(m.Vertices)))
			m.Vertices = append(m.Vertices, Vertex{
				Position: pos,
				Normal:   normal,
				TexCoord: [2]float32{u, 1 - v},
			})
		}
	}

	for iy := 0; iy < hs; iy++ {
		for ix := 0; ix < ws; ix++ {
			a, b := grid[iy][ix+1], grid[iy][ix]
			c, d := grid[iy+1][ix], grid[iy+1][ix+1]
			// The pole rows collapse to a point, so each contributes one triangle per cell.
			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != hs-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}
	return m
}

func sincos(angle float32) (float32, float32) {
	s, c := gomath.Sincos(float64(angle))
	return float32(s), float32(c)
}

func normalize(v [3]float32) [3]float32 {
	length := float32(gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if length < 0.0001 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / length, v[1] / length, v[2] / length}
}
