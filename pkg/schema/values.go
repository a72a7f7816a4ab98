package schema

import (
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Faultbox/repairguide/pkg/math"
)

// number extracts a float from a decoded JSON value. Numeric strings are accepted
// because language models frequently quote numbers.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// finite converts v to a finite float32.
func finite(v any) (float32, bool) {
	n, ok := number(v)
	if !ok {
		return 0, false
	}
	f := float32(n)
	if !math.IsFinite(f) {
		return 0, false
	}
	return f, true
}

// positive returns v when it is a finite number above zero, def otherwise.
func positive(v any, def float32) float32 {
	if f, ok := finite(v); ok && f > 0 {
		return f
	}
	return def
}

// coord returns v when it is finite, 0 otherwise.
func coord(v any) float32 {
	f, _ := finite(v)
	return f
}

// unit returns v clamped to [0,1], or def when v is not a finite number.
func unit(v any, def float32) float32 {
	f, ok := finite(v)
	if !ok {
		return def
	}
	return min(max(f, 0), 1)
}

// color parses 0xRRGGBB from a number or a "0xff0000", "#ff0000" or "ff0000" string.
func color(v any, def Color) Color {
	switch c := v.(type) {
	case string:
		s := strings.TrimSpace(c)
		hex := false
		switch {
		case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
			s, hex = s[2:], true
		case strings.HasPrefix(s, "#"):
			s, hex = s[1:], true
		case len(s) == 6:
			hex = true
		}
		base := 10
		if hex {
			base = 16
		}
		n, err := strconv.ParseUint(s, base, 32)
		if err != nil || n > 0xffffff {
			return def
		}
		return Color(n)
	default:
		n, ok := number(v)
		if !ok || n < 0 || n > 0xffffff || n != float64(int64(n)) {
			return def
		}
		return Color(n)
	}
}

// text returns v when it is a string, "" otherwise.
func text(v any) string {
	s, _ := v.(string)
	return s
}

// label trims a part name or type and brings it to NFC, so names that differ
// only in Unicode composition compare equal.
func label(v any) string {
	return norm.NFC.String(strings.TrimSpace(text(v)))
}

// object returns v as a JSON object, or nil.
func object(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// truthy follows the loose boolean reading of the chat payload's error flag.
func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return err == nil && parsed
	default:
		n, ok := number(v)
		return ok && n != 0
	}
}

// vector reads {x,y,z} or [x,y,z]. Absent or invalid axes are 0.
func vector(v any) math.Vec3 {
	switch t := v.(type) {
	case map[string]any:
		return math.Vec3{X: coord(t["x"]), Y: coord(t["y"]), Z: coord(t["z"])}
	case []any:
		var out [3]float32
		for i := 0; i < len(t) && i < 3; i++ {
			out[i] = coord(t[i])
		}
		return math.FromArray(out)
	default:
		return math.Vec3{}
	}
}

// names reads a list of part names. Non-string entries are dropped and a bare
// string is treated as a one-element list.
func names(v any) []string {
	switch t := v.(type) {
	case string:
		if s := label(t); s != "" {
			return []string{s}
		}
		return nil
	case []any:
		var out []string
		for _, item := range t {
			if s := label(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// decode unmarshals data into a generic JSON value.
func decode(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
