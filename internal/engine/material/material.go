// Package material provides the physically-based shading material applied to solids.
package material

import "github.com/Faultbox/repairguide/pkg/schema"

// Highlight parameters: a dim yellow glow at half intensity.
const (
	HighlightEmissive  schema.Color = 0x555500
	HighlightIntensity float32      = 0.5
)

// Standard is a metalness/roughness material.
type Standard struct {
	Color             schema.Color
	Metalness         float32
	Roughness         float32
	Emissive          schema.Color
	EmissiveIntensity float32

	disposed bool
}

// New returns a non-emissive material.
func New(color schema.Color, metalness, roughness float32) *Standard {
	return &Standard{
		Color:             color,
		Metalness:         metalness,
		Roughness:         roughness,
		EmissiveIntensity: 1,
	}
}

// Clone returns an independent copy.
func (m *Standard) Clone() *Standard {
	c := *m
	return &c
}

// Highlight derives the highlight variant of m: same color, metalness and
// roughness, plus the highlight glow.
func Highlight(m *Standard) *Standard {
	h := New(m.Color, m.Metalness, m.Roughness)
	h.Emissive = HighlightEmissive
	h.EmissiveIntensity = HighlightIntensity
	return h
}

// IsHighlight reports whether m carries the highlight glow.
func (m *Standard) IsHighlight() bool {
	return m.Emissive == HighlightEmissive && m.EmissiveIntensity == HighlightIntensity
}

// SameSurface reports whether two materials share color, metalness and roughness.
func (m *Standard) SameSurface(other *Standard) bool {
	return m.Color == other.Color && m.Metalness == other.Metalness && m.Roughness == other.Roughness
}

// Dispose marks the material as released.
func (m *Standard) Dispose() {
	m.disposed = true
}

// Disposed reports whether Dispose has been called.
func (m *Standard) Disposed() bool {
	return m.disposed
}

// Renderable reports whether m can be drawn or derived from.
func Renderable(m *Standard) bool {
	return m != nil && !m.disposed
}
