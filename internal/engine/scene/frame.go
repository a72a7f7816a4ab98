package scene

import (
	"github.com/google/uuid"

	"github.com/Faultbox/repairguide/internal/engine/geometry"
	"github.com/Faultbox/repairguide/pkg/math"
	"github.com/Faultbox/repairguide/pkg/schema"
)

// FrameSolid is the render-ready state of one solid.
type FrameSolid struct {
	Name              string
	Kind              Kind
	Shape             geometry.Kind
	Params            geometry.Params
	World             math.Mat4
	Visible           bool
	Color             schema.Color
	Metalness         float32
	Roughness         float32
	Emissive          schema.Color
	EmissiveIntensity float32
	Highlighted       bool
}

// Frame is a self-contained copy of a group, safe to read while the group
// keeps changing.
type Frame struct {
	ModelID    uuid.UUID
	ObjectType string
	Rotation   math.Vec3
	Bounds     geometry.Bounds
	Solids     []FrameSolid
}

// Empty reports whether the frame has nothing to draw.
func (f Frame) Empty() bool {
	return len(f.Solids) == 0
}

// Solid returns the frame entry named name.
func (f Frame) Solid(name string) (FrameSolid, bool) {
	for _, s := range f.Solids {
		if s.Name == name {
			return s, true
		}
	}
	return FrameSolid{}, false
}

// Frame captures the current state of g.
func (g *Group) Frame() Frame {
	if g == nil || g.disposed {
		return Frame{}
	}
	f := Frame{
		ModelID:    g.ID,
		ObjectType: g.ObjectType,
		Rotation:   g.Rotation,
		Bounds:     g.Bounds(),
		Solids:     make([]FrameSolid, 0, len(g.Solids)),
	}
	for _, s := range g.Solids {
		fs := FrameSolid{
			Name:    s.Name,
			Kind:    s.Kind,
			World:   g.WorldMatrix(s),
			Visible: s.Visible,
		}
		if s.Geometry != nil {
			fs.Shape = s.Geometry.Kind
			fs.Params = s.Geometry.Params
		}
		if m := s.Material; m != nil {
			fs.Color = m.Color
			fs.Metalness = m.Metalness
			fs.Roughness = m.Roughness
			fs.Emissive = m.Emissive
			fs.EmissiveIntensity = m.EmissiveIntensity
			fs.Highlighted = m.IsHighlight()
		}
		f.Solids = append(f.Solids, fs)
	}
	return f
}
