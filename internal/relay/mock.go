package relay

import (
	gomath "math"
	"strings"

	"github.com/Faultbox/repairguide/pkg/schema"
)

// ClarifyMessage is the mock reply to anything it has no demo for.
const ClarifyMessage = "I understand you're having a home repair issue. Could you please provide more details specifically about a faucet, tap, sink, or other fixture you need help with?"

// Mock answers from built-in demos without calling a model.
func Mock(msg string) schema.ChatResponse {
	if strings.Contains(strings.ToLower(msg), "tap") {
		return schema.ChatResponseFromValue(tapDemo())
	}
	return schema.ChatResponse{Message: ClarifyMessage}
}

// tapDemo is the dripping tap walkthrough, written as the raw payload a model
// would send so it passes through the same parsing.
func tapDemo() map[string]any {
	vec := func(x, y, z float64) map[string]any {
		return map[string]any{"x": x, "y": y, "z": z}
	}
	state := func(rotY float64, highlight ...any) map[string]any {
		return map[string]any{
			"rotation":       []any{0.0, rotY, 0.0},
			"highlightParts": append([]any{}, highlight...),
		}
	}
	return map[string]any{
		"message": "I understand you're having an issue with a broken tap. Let me help you fix it with these step-by-step instructions.",
		"modelData": map[string]any{
			"objectType": "tap",
			"color":      float64(0xc0c0c0),
			"dimensions": map[string]any{"radius": 0.5, "height": 2.0},
			"parts": []any{
				map[string]any{
					"type":     "handle",
					"name":     "left_handle",
					"color":    float64(0xbbbbbb),
					"position": vec(-0.8, 0.5, 0),
					"rotation": vec(0, 0, 0),
				},
				map[string]any{
					"type":     "handle",
					"name":     "right_handle",
					"color":    float64(0xbbbbbb),
					"position": vec(0.8, 0.5, 0),
					"rotation": vec(0, 0, 0),
				},
				map[string]any{
					"type":     "spout",
					"name":     "spout",
					"radius":   0.2,
					"length":   1.5,
					"color":    float64(0xc0c0c0),
					"position": vec(0, 0.5, 0.5),
					"rotation": vec(gomath.Pi/2, 0, 0),
				},
			},
		},
		"steps": []any{
			map[string]any{
				"title":       "Turn Off Water Supply",
				"description": "First, locate and shut off the water supply valves beneath the sink.",
				"modelState":  state(0, "base"),
			},
			map[string]any{
				"title":       "Remove Handle",
				"description": "Using a screwdriver, carefully remove the handle cap and unscrew the handle.",
				"modelState":  state(0.5, "left_handle"),
			},
			map[string]any{
				"title":       "Replace Washer",
				"description": "Inspect and replace the worn-out washer with a new one of the same size.",
				"modelState":  state(0, "left_handle"),
			},
			map[string]any{
				"title":       "Reassemble and Test",
				"description": "Reassemble the tap, turn the water back on, and check for leaks.",
				"modelState":  state(0),
			},
		},
	}
}
