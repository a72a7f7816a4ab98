package schema

import "fmt"

// ParseModel parses a model description from JSON. It only fails when data is not
// JSON at all; every missing or mistyped field degrades to its default.
func ParseModel(data []byte) (ModelDescription, error) {
	v, err := decode(data)
	if err != nil {
		return ModelDescription{}, fmt.Errorf("parse model description: %w", err)
	}
	return ModelFromValue(v), nil
}

// ModelFromValue builds a ModelDescription from a decoded JSON value. A value that
// is not an object yields the generic default model with no parts.
func ModelFromValue(v any) ModelDescription {
	m := object(v)

	desc := ModelDescription{
		ObjectType: ParseObjectType(text(m["objectType"])),
		Dimensions: dimensions(object(m["dimensions"]), nil, DefaultDimensions()),
		Color:      color(m["color"], DefaultColor),
		Metalness:  unit(m["metalness"], DefaultMetalness),
		Roughness:  unit(m["roughness"], DefaultRoughness),
	}

	rawParts, _ := m["parts"].([]any)
	used := map[string]bool{BaseName: true}
	for _, raw := range rawParts {
		p := object(raw)
		if p == nil {
			continue
		}
		desc.Parts = append(desc.Parts, part(p, used))
	}
	return desc
}

func part(p map[string]any, used map[string]bool) PartDescription {
	rawType := label(p["type"])
	t := ParsePartType(rawType)

	name := label(p["name"])
	if name == "" {
		name = rawType
	}
	if name == "" {
		name = "part"
	}

	return PartDescription{
		Type:       t,
		RawType:    rawType,
		Name:       UniqueName(name, used),
		Color:      color(p["color"], DefaultColor),
		Metalness:  unit(p["metalness"], DefaultMetalness),
		Roughness:  unit(p["roughness"], DefaultRoughness),
		Dimensions: dimensions(p, object(p["dimensions"]), PartDefaults(t)),
		Position:   vector(p["position"]),
		Rotation:   vector(p["rotation"]),
	}
}

// dimensions reads each field from primary, then fallback, then def.
func dimensions(primary, fallback map[string]any, def Dimensions) Dimensions {
	field := func(key string, d float32) float32 {
		if v, ok := primary[key]; ok {
			if f := positive(v, -1); f > 0 {
				return f
			}
		}
		return positive(fallback[key], d)
	}
	return Dimensions{
		Radius: field("radius", def.Radius),
		Height: field("height", def.Height),
		Width:  field("width", def.Width),
		Depth:  field("depth", def.Depth),
		Length: field("length", def.Length),
	}
}

// UniqueName returns name, or name_N for the smallest N >= 2 not yet used.
func UniqueName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[candidate]; n++ {
		candidate = fmt.Sprintf("%s_%d", name, n)
	}
	used[candidate] = true
	return candidate
}
