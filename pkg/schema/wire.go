package schema

import (
	"encoding/json"

	"github.com/Faultbox/repairguide/pkg/math"
)

// Wire shapes mirror the JSON the chat assistant is prompted to produce, so a
// validated record re-encodes into a payload that parses back to itself.

type wireVec struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

type wireDimensions struct {
	Radius float32 `json:"radius"`
	Height float32 `json:"height"`
	Width  float32 `json:"width"`
	Depth  float32 `json:"depth"`
	Length float32 `json:"length"`
}

type wireModel struct {
	ObjectType ObjectType     `json:"objectType"`
	Dimensions wireDimensions `json:"dimensions"`
	Color      uint32         `json:"color"`
	Metalness  float32        `json:"metalness"`
	Roughness  float32        `json:"roughness"`
	Parts      []wirePart     `json:"parts"`
}

type wirePart struct {
	Type      string  `json:"type"`
	Name      string  `json:"name"`
	Color     uint32  `json:"color"`
	Metalness float32 `json:"metalness"`
	Roughness float32 `json:"roughness"`
	Radius    float32 `json:"radius"`
	Height    float32 `json:"height"`
	Width     float32 `json:"width"`
	Depth     float32 `json:"depth"`
	Length    float32 `json:"length"`
	Position  wireVec `json:"position"`
	Rotation  wireVec `json:"rotation"`
}

type wireState struct {
	Rotation       [3]float32 `json:"rotation"`
	HighlightParts []string   `json:"highlightParts"`
	HideParts      []string   `json:"hideParts"`
}

type wireStep struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ModelState  wireState `json:"modelState"`
}

type wireResponse struct {
	Message   string            `json:"message"`
	ModelData *ModelDescription `json:"modelData,omitempty"`
	Steps     []Step            `json:"steps,omitempty"`
	Error     bool              `json:"error,omitempty"`
}

func toWireVec(v math.Vec3) wireVec {
	return wireVec{X: v.X, Y: v.Y, Z: v.Z}
}

func toWireDimensions(d Dimensions) wireDimensions {
	return wireDimensions(d)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// MarshalJSON encodes the description in the chat wire shape.
func (d ModelDescription) MarshalJSON() ([]byte, error) {
	w := wireModel{
		ObjectType: d.ObjectType,
		Dimensions: toWireDimensions(d.Dimensions),
		Color:      uint32(d.Color),
		Metalness:  d.Metalness,
		Roughness:  d.Roughness,
		Parts:      make([]wirePart, 0, len(d.Parts)),
	}
	for _, p := range d.Parts {
		typ := p.RawType
		if typ == "" {
			typ = string(p.Type)
		}
		w.Parts = append(w.Parts, wirePart{
			Type:      typ,
			Name:      p.Name,
			Color:     uint32(p.Color),
			Metalness: p.Metalness,
			Roughness: p.Roughness,
			Radius:    p.Dimensions.Radius,
			Height:    p.Dimensions.Height,
			Width:     p.Dimensions.Width,
			Depth:     p.Dimensions.Depth,
			Length:    p.Dimensions.Length,
			Position:  toWireVec(p.Position),
			Rotation:  toWireVec(p.Rotation),
		})
	}
	return json.Marshal(w)
}

// UnmarshalJSON applies the same defaulting as ParseModel.
func (d *ModelDescription) UnmarshalJSON(data []byte) error {
	parsed, err := ParseModel(data)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes the step in the chat wire shape.
func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireStep{
		Title:       s.Title,
		Description: s.Description,
		ModelState: wireState{
			Rotation:       s.ModelState.Rotation.Array(),
			HighlightParts: orEmpty(s.ModelState.HighlightParts),
			HideParts:      orEmpty(s.ModelState.HideParts),
		},
	})
}

// UnmarshalJSON applies the same defaulting as ParseSteps to a single step.
func (s *Step) UnmarshalJSON(data []byte) error {
	v, err := decode(data)
	if err != nil {
		return err
	}
	steps := StepsFromValue([]any{v})
	if len(steps) == 0 {
		*s = Step{}
		return nil
	}
	*s = steps[0]
	return nil
}

// MarshalJSON encodes the response in the chat wire shape.
func (r ChatResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireResponse(r))
}

// UnmarshalJSON applies the same defaulting as ParseChatResponse.
func (r *ChatResponse) UnmarshalJSON(data []byte) error {
	parsed, err := ParseChatResponse(data)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
