package schema

import "fmt"

// ParseSteps parses a repair step list from JSON.
func ParseSteps(data []byte) ([]Step, error) {
	v, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse steps: %w", err)
	}
	return StepsFromValue(v), nil
}

// StepsFromValue builds the step list from a decoded JSON array. Entries that are
// not objects are skipped; anything else yields nil.
func StepsFromValue(v any) []Step {
	list, _ := v.([]any)
	var steps []Step
	for _, raw := range list {
		s := object(raw)
		if s == nil {
			continue
		}
		steps = append(steps, Step{
			Title:       text(s["title"]),
			Description: text(s["description"]),
			ModelState:  StateFromValue(s["modelState"]),
		})
	}
	return steps
}

// StateFromValue builds a ModelState. A missing state is the zero state: no
// rotation, nothing highlighted or hidden.
func StateFromValue(v any) ModelState {
	m := object(v)
	return ModelState{
		Rotation:       vector(m["rotation"]),
		HighlightParts: names(m["highlightParts"]),
		HideParts:      names(m["hideParts"]),
	}
}
