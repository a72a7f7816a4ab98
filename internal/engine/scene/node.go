// Package scene holds the in-memory graph of solids built from a model
// description and the step state applied to it.
package scene

import (
	"github.com/google/uuid"

	"github.com/Faultbox/repairguide/internal/engine/geometry"
	"github.com/Faultbox/repairguide/internal/engine/material"
	"github.com/Faultbox/repairguide/pkg/math"
)

// Kind distinguishes the base solid from part solids.
type Kind int

const (
	KindBase Kind = iota
	KindPart
)

func (k Kind) String() string {
	if k == KindBase {
		return "base"
	}
	return "part"
}

// Solid is one renderable element of a group.
type Solid struct {
	Name     string
	Kind     Kind
	Type     string // object type for the base, part type otherwise
	Geometry *geometry.Geometry
	Material *material.Standard
	Position math.Vec3
	Rotation math.Vec3
	Visible  bool

	// original is the pre-highlight material, saved the first time the
	// solid is highlighted and kept until the group is disposed.
	original *material.Standard
}

// Original returns the saved pre-highlight material, or nil if the solid has
// never been highlighted.
func (s *Solid) Original() *material.Standard {
	return s.original
}

// Highlighted reports whether the solid currently carries a highlight material.
func (s *Solid) Highlighted() bool {
	return s.Material != nil && s.Material.IsHighlight()
}

// LocalMatrix returns the solid's transform relative to its group.
func (s *Solid) LocalMatrix() math.Mat4 {
	return math.Compose(s.Position, s.Rotation)
}

// install swaps in m and releases the material it replaces.
func (s *Solid) install(m *material.Standard) {
	if s.Material != nil && s.Material != m && s.Material != s.original {
		s.Material.Dispose()
	}
	s.Material = m
}

func (s *Solid) dispose() {
	if s.Geometry != nil {
		s.Geometry.Dispose()
	}
	if s.Material != nil {
		s.Material.Dispose()
	}
	if s.original != nil {
		s.original.Dispose()
		s.original = nil
	}
}

// Group is the root node of a built model: the base solid followed by one
// solid per part, in description order.
type Group struct {
	ID         uuid.UUID
	ObjectType string
	Rotation   math.Vec3
	Solids     []*Solid

	byName   map[string]*Solid
	disposed bool
}

func newGroup(objectType string) *Group {
	return &Group{
		ID:         uuid.New(),
		ObjectType: objectType,
		byName:     make(map[string]*Solid),
	}
}

func (g *Group) add(s *Solid) {
	g.Solids = append(g.Solids, s)
	g.byName[s.Name] = s
}

// Find returns the solid named name, or nil.
func (g *Group) Find(name string) *Solid {
	return g.byName[name]
}

// Base returns the base solid.
func (g *Group) Base() *Solid {
	if len(g.Solids) == 0 {
		return nil
	}
	return g.Solids[0]
}

// Names returns solid names in order, base first.
func (g *Group) Names() []string {
	names := make([]string, len(g.Solids))
	for i, s := range g.Solids {
		names[i] = s.Name
	}
	return names
}

// Matrix returns the group's model matrix.
func (g *Group) Matrix() math.Mat4 {
	return math.EulerXYZ(g.Rotation)
}

// WorldMatrix returns the model-space transform of s.
func (g *Group) WorldMatrix(s *Solid) math.Mat4 {
	return g.Matrix().Mul(s.LocalMatrix())
}

// Bounds returns the model-space bounding box of every visible solid.
func (g *Group) Bounds() geometry.Bounds {
	b := geometry.Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	found := false
	for _, s := range g.Solids {
		if !s.Visible || s.Geometry == nil || s.Geometry.Disposed() {
			continue
		}
		world := g.WorldMatrix(s)
		local := s.Geometry.Bounds()
		for i := 0; i < 8; i++ {
			corner := [3]float32{local.Min[0], local.Min[1], local.Min[2]}
			if i&1 != 0 {
				corner[0] = local.Max[0]
			}
			if i&2 != 0 {
				corner[1] = local.Max[1]
			}
			if i&4 != 0 {
				corner[2] = local.Max[2]
			}
			p := world.TransformPoint(corner)
			for axis := 0; axis < 3; axis++ {
				b.Min[axis] = min(b.Min[axis], p[axis])
				b.Max[axis] = max(b.Max[axis], p[axis])
			}
		}
		found = true
	}
	if !found {
		return geometry.Bounds{}
	}
	return b
}

// Dispose releases every solid's geometry, material and saved original.
// Safe to call more than once.
func (g *Group) Dispose() {
	if g.disposed {
		return
	}
	for _, s := range g.Solids {
		s.dispose()
	}
	g.disposed = true
}

// Disposed reports whether Dispose has been called.
func (g *Group) Disposed() bool {
	return g.disposed
}
