package geometry

import (
	"testing"

	"github.com/Faultbox/repairguide/pkg/schema"
)

func TestForBase(t *testing.T) {
	d := schema.Dimensions{Radius: 0.5, Height: 2, Width: 3, Depth: 4, Length: 5}

	tests := []struct {
		objectType schema.ObjectType
		want       Spec
	}{
		{schema.ObjectTap, Spec{KindCylinder, Params{RadiusTop: 0.5, RadiusBottom: 0.5, Height: 2, RadialSegments: 32}}},
		{schema.ObjectPipe, Spec{KindCylinder, Params{RadiusTop: 0.5, RadiusBottom: 0.5, Height: 5, RadialSegments: 32}}},
		{schema.ObjectSink, Spec{KindBox, Params{Width: 3, Height: 2, Depth: 4}}},
		{schema.ObjectToilet, Spec{KindBox, Params{Width: 3, Height: 2, Depth: 4}}},
		{schema.ObjectDoorknob, Spec{KindBox, Params{Width: 3, Height: 2, Depth: 4}}},
		{schema.ObjectCabinet, Spec{KindBox, Params{Width: 3, Height: 2, Depth: 4}}},
		{schema.ObjectGeneric, Spec{KindBox, Params{Width: 3, Height: 2, Depth: 4}}},
		{schema.ObjectType("spaceship"), Spec{KindBox, Params{Width: 3, Height: 2, Depth: 4}}},
	}
	for _, tt := range tests {
		t.Run(string(tt.objectType), func(t *testing.T) {
			if got := ForBase(tt.objectType, d); got != tt.want {
				t.Errorf("ForBase(%s) = %+v, want %+v", tt.objectType, got, tt.want)
			}
		})
	}
}

func TestForPart(t *testing.T) {
	tests := []struct {
		partType schema.PartType
		want     Spec
	}{
		{schema.PartHandle, Spec{KindBox, Params{Width: 0.3, Height: 0.3, Depth: 0.3}}},
		{schema.PartSpout, Spec{KindCylinder, Params{RadiusTop: 0.2, RadiusBottom: 0.2, Height: 2, RadialSegments: 32}}},
		{schema.PartConnector, Spec{KindCylinder, Params{RadiusTop: 0.3, RadiusBottom: 0.3, Height: 0.7, RadialSegments: 32}}},
		{schema.PartPipe, Spec{KindCylinder, Params{RadiusTop: 0.5, RadiusBottom: 0.5, Height: 1, RadialSegments: 32}}},
		{schema.PartUnknown, Spec{KindSphere, Params{Radius: 0.2, WidthSegments: 32, HeightSegments: 32}}},
		{schema.PartType("gasket"), Spec{KindSphere, Params{Radius: 0.5, WidthSegments: 32, HeightSegments: 32}}},
	}
	for _, tt := range tests {
		t.Run(string(tt.partType), func(t *testing.T) {
			d := schema.PartDefaults(tt.partType)
			if got := ForPart(tt.partType, d); got != tt.want {
				t.Errorf("ForPart(%s) = %+v, want %+v", tt.partType, got, tt.want)
			}
		})
	}
}

func TestTablesCoverEveryVariant(t *testing.T) {
	for _, ot := range objectTypesForTest {
		if _, ok := baseTable[ot]; !ok {
			t.Errorf("base table missing %s", ot)
		}
	}
	for _, pt := range []schema.PartType{schema.PartHandle, schema.PartSpout, schema.PartConnector, schema.PartPipe, schema.PartUnknown} {
		if _, ok := partTable[pt]; !ok {
			t.Errorf("part table missing %s", pt)
		}
	}
}

var objectTypesForTest = []schema.ObjectType{
	schema.ObjectTap, schema.ObjectSink, schema.ObjectToilet, schema.ObjectDoorknob,
	schema.ObjectCabinet, schema.ObjectPipe, schema.ObjectGeneric,
}

func TestBoxMesh(t *testing.T) {
	g := New(Spec{KindBox, Params{Width: 2, Height: 4, Depth: 6}})
	m := g.Mesh()

	if len(m.Vertices) != 24 || len(m.Indices) != 36 {
		t.Fatalf("box: got %d vertices / %d indices, want 24 / 36", len(m.Vertices), len(m.Indices))
	}
	want := Bounds{Min: [3]float32{-1, -2, -3}, Max: [3]float32{1, 2, 3}}
	if m.Bounds != want {
		t.Errorf("box bounds = %v, want %v", m.Bounds, want)
	}
	checkWinding(t, m)
}

func TestCylinderMesh(t *testing.T) {
	g := New(Spec{KindCylinder, Params{RadiusTop: 0.5, RadiusBottom: 0.5, Height: 2, RadialSegments: 32}})
	m := g.Mesh()

	if got, want := len(m.Vertices), 2*33+2*34; got != want {
		t.Errorf("cylinder vertices = %d, want %d", got, want)
	}
	if got, want := m.Triangles(), 32*2+32*2; got != want {
		t.Errorf("cylinder triangles = %d, want %d", got, want)
	}
	size := m.Bounds.Size()
	if !near(size[0], 1) || !near(size[1], 2) || !near(size[2], 1) {
		t.Errorf("cylinder size = %v, want ~(1, 2, 1)", size)
	}
	checkWinding(t, m)
}

func TestSphereMesh(t *testing.T) {
	g := New(Spec{KindSphere, Params{Radius: 0.2, WidthSegments: 32, HeightSegments: 32}})
	m := g.Mesh()

	if got, want := len(m.Vertices), 33*33; got != want {
		t.Errorf("sphere vertices = %d, want %d", got, want)
	}
	if got, want := m.Triangles(), 32*(2*32-2); got != want {
		t.Errorf("sphere triangles = %d, want %d", got, want)
	}
	size := m.Bounds.Size()
	for i, s := range size {
		if !near(s, 0.4) {
			t.Errorf("sphere size[%d] = %v, want ~0.4", i, s)
		}
	}
}

func TestDispose(t *testing.T) {
	g := New(Spec{KindBox, Params{Width: 1, Height: 1, Depth: 1}})
	if g.Disposed() {
		t.Fatal("new geometry should not be disposed")
	}
	g.Dispose()
	g.Dispose()
	if !g.Disposed() || g.Mesh() != nil {
		t.Error("disposed geometry should drop its mesh")
	}
	if g.Bounds() != (Bounds{}) {
		t.Error("disposed geometry should report zero bounds")
	}
	if g.Kind != KindBox {
		t.Error("disposed geometry should keep its spec")
	}
}

// checkWinding verifies every non-degenerate triangle faces along its vertex normals.
func checkWinding(t *testing.T, m *Mesh) {
	t.Helper()
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		e1 := sub(b.Position, a.Position)
		e2 := sub(c.Position, a.Position)
		n := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		sum := add(add(a.Normal, b.Normal), c.Normal)
		if dot(n, sum) < 0 {
			t.Fatalf("triangle %d winds against its normals", i/3)
		}
	}
}

func sub(a, b [3]float32) [3]float32 { return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func add(a, b [3]float32) [3]float32 { return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func dot(a, b [3]float32) float32    { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func near(a, b float32) bool {
	d := a - b
	return d > -0.001 && d < 0.001
}
