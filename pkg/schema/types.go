// Package schema defines the model description, repair step, and chat response
// records, and the parse step that turns untrusted JSON into them.
//
// Every default is applied here exactly once. Code downstream of this package can
// assume fully-populated, finite values.
package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Faultbox/repairguide/pkg/math"
)

// ObjectType is the kind of fixture a model description depicts.
type ObjectType string

// Object types understood by the model builder. Anything else parses as ObjectGeneric.
const (
	ObjectTap      ObjectType = "tap"
	ObjectSink     ObjectType = "sink"
	ObjectToilet   ObjectType = "toilet"
	ObjectDoorknob ObjectType = "doorknob"
	ObjectCabinet  ObjectType = "cabinet"
	ObjectPipe     ObjectType = "pipe"
	ObjectGeneric  ObjectType = "generic"
)

var objectTypes = []ObjectType{
	ObjectTap, ObjectSink, ObjectToilet, ObjectDoorknob, ObjectCabinet, ObjectPipe, ObjectGeneric,
}

// ParseObjectType maps s onto the closed enumeration, falling back to ObjectGeneric.
func ParseObjectType(s string) ObjectType {
	t := ObjectType(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(objectTypes, t) {
		return t
	}
	return ObjectGeneric
}

// PartType is the kind of a sub-part.
type PartType string

// Part types with dedicated geometry. Anything else parses as PartUnknown.
const (
	PartHandle    PartType = "handle"
	PartSpout     PartType = "spout"
	PartConnector PartType = "connector"
	PartPipe      PartType = "pipe"
	PartUnknown   PartType = "unknown"
)

// ParsePartType maps s onto the part enumeration, falling back to PartUnknown.
func ParsePartType(s string) PartType {
	switch t := PartType(strings.ToLower(strings.TrimSpace(s))); t {
	case PartHandle, PartSpout, PartConnector, PartPipe:
		return t
	default:
		return PartUnknown
	}
}

// Color is a 24-bit RGB value (0xRRGGBB).
type Color uint32

// DefaultColor is the neutral metal tone used when no valid color is given.
const DefaultColor Color = 0xc0c0c0

// RGB splits the color into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String formats the color as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c))
}

// Material defaults shared by the base and every part.
const (
	DefaultMetalness float32 = 0.8
	DefaultRoughness float32 = 0.2
)

// BaseName is the reserved name of the base solid.
const BaseName = "base"

// Dimensions holds the size parameters of a solid. All values are positive.
type Dimensions struct {
	Radius float32
	Height float32
	Width  float32
	Depth  float32
	Length float32
}

// DefaultDimensions returns the defaults for a base solid.
func DefaultDimensions() Dimensions {
	return Dimensions{Radius: 0.5, Height: 1, Width: 1, Depth: 1, Length: 1}
}

// PartDefaults returns the dimension defaults for a part of type t.
func PartDefaults(t PartType) Dimensions {
	d := DefaultDimensions()
	switch t {
	case PartHandle:
		d.Width, d.Height, d.Depth = 0.3, 0.3, 0.3
	case PartSpout:
		d.Radius, d.Length = 0.2, 2
	case PartConnector:
		d.Radius, d.Length = 0.3, 0.7
	case PartUnknown:
		d.Radius = 0.2
	}
	return d
}

// ModelDescription is a validated description of a 3D object and its parts.
type ModelDescription struct {
	ObjectType ObjectType
	Dimensions Dimensions
	Color      Color
	Metalness  float32
	Roughness  float32
	Parts      []PartDescription
}

// PartDescription is a validated description of one named sub-part.
type PartDescription struct {
	Type       PartType
	RawType    string // type as received, kept for naming and display
	Name       string // unique within the description, never "base"
	Color      Color
	Metalness  float32
	Roughness  float32
	Dimensions Dimensions
	Position   math.Vec3
	Rotation   math.Vec3
}

// ModelState is the visual state a repair step puts the model in.
type ModelState struct {
	Rotation       math.Vec3
	HighlightParts []string
	HideParts      []string
}

// Highlights reports whether name is in HighlightParts.
func (s ModelState) Highlights(name string) bool {
	return slices.Contains(s.HighlightParts, name)
}

// Hides reports whether name is in HideParts.
func (s ModelState) Hides(name string) bool {
	return slices.Contains(s.HideParts, name)
}

// Step is one entry of a repair sequence.
type Step struct {
	Title       string
	Description string
	ModelState  ModelState
}

// ChatResponse is what the chat transport hands to the viewer.
type ChatResponse struct {
	Message   string
	ModelData *ModelDescription
	Steps     []Step
	Error     bool
}
