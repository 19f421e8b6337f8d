package scenario

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/ivlev/timeline"
	"github.com/lucasb-eyer/go-colorful"
)

func valueError(raw any) error {
	return fmt.Errorf("%w: %v (%T)", ErrValue, raw, raw)
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, valueError(raw)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, valueError(raw)
		}
		return f, nil
	default:
		return 0, valueError(raw)
	}
}

func toInt(raw any, bits int) (int64, error) {
	var n int64
	switch v := raw.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case uint64:
		if v > math.MaxInt64 {
			return 0, valueError(raw)
		}
		n = int64(v)
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			return 0, valueError(raw)
		}
		n = int64(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, valueError(raw)
		}
		n = i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, valueError(raw)
		}
		n = i
	default:
		return 0, valueError(raw)
	}

	limit := int64(1) << (bits - 1)
	if bits < 64 && (n < -limit || n >= limit) {
		return 0, fmt.Errorf("%w: %d overflows int%d", ErrValue, n, bits)
	}
	return n, nil
}

func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, valueError(raw)
		}
		return b, nil
	default:
		return false, valueError(raw)
	}
}

// toComponents accepts a list of numbers or, for text formats, a string of
// numbers separated by commas or whitespace.
func toComponents(raw any, n int) ([]float64, error) {
	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []float64:
		for _, f := range v {
			items = append(items, f)
		}
	case string:
		for _, f := range strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		}) {
			items = append(items, f)
		}
	default:
		return nil, valueError(raw)
	}

	if len(items) != n {
		return nil, fmt.Errorf("%w: want %d components, got %d", ErrValue, n, len(items))
	}
	out := make([]float64, n)
	for i, item := range items {
		f, err := toFloat(item)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func toFloat32(raw any) (timeline.Float32, error) {
	f, err := toFloat(raw)
	return timeline.Float32(f), err
}

func toFloat64(raw any) (timeline.Float64, error) {
	f, err := toFloat(raw)
	return timeline.Float64(f), err
}

func toInt32(raw any) (timeline.Int32, error) {
	n, err := toInt(raw, 32)
	return timeline.Int32(n), err
}

func toInt64(raw any) (timeline.Int64, error) {
	n, err := toInt(raw, 64)
	return timeline.Int64(n), err
}

func toBoolValue(raw any) (timeline.Bool, error) {
	b, err := toBool(raw)
	return timeline.Bool(b), err
}

func toVec2(raw any) (timeline.Vec2, error) {
	c, err := toComponents(raw, 2)
	if err != nil {
		return timeline.Vec2{}, err
	}
	return timeline.Vec2{X: c[0], Y: c[1]}, nil
}

func toVec3(raw any) (timeline.Vec3, error) {
	c, err := toComponents(raw, 3)
	if err != nil {
		return timeline.Vec3{}, err
	}
	return timeline.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

func toVec4(raw any) (timeline.Vec4, error) {
	c, err := toComponents(raw, 4)
	if err != nil {
		return timeline.Vec4{}, err
	}
	return timeline.Vec4{X: c[0], Y: c[1], Z: c[2], W: c[3]}, nil
}

// toColor accepts "#rrggbb" / "#rgb" or an [r, g, b] list in 0..1.
func toColor(raw any) (timeline.Color, error) {
	if s, ok := raw.(string); ok && strings.HasPrefix(strings.TrimSpace(s), "#") {
		c, err := colorful.Hex(strings.TrimSpace(s))
		if err != nil {
			return timeline.Color{}, fmt.Errorf("%w: %v", ErrValue, err)
		}
		return timeline.Color{Color: c}, nil
	}
	c, err := toComponents(raw, 3)
	if err != nil {
		return timeline.Color{}, err
	}
	return timeline.Color{Color: colorful.Color{R: c[0], G: c[1], B: c[2]}}, nil
}

func fromFloat32(v timeline.Float32) any { return float64(v) }
func fromFloat64(v timeline.Float64) any { return float64(v) }
func fromInt32(v timeline.Int32) any     { return int64(v) }
func fromInt64(v timeline.Int64) any     { return int64(v) }
func fromBool(v timeline.Bool) any       { return bool(v) }
func fromVec2(v timeline.Vec2) any       { return []any{v.X, v.Y} }
func fromVec3(v timeline.Vec3) any       { return []any{v.X, v.Y, v.Z} }
func fromVec4(v timeline.Vec4) any       { return []any{v.X, v.Y, v.Z, v.W} }

// fromColor writes hex when it loses nothing.
func fromColor(v timeline.Color) any {
	if v.IsValid() {
		hex := v.Hex()
		if c, err := colorful.Hex(hex); err == nil && c == v.Color {
			return hex
		}
	}
	return []any{v.R, v.G, v.B}
}
