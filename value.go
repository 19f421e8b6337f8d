package timeline

import (
	"fmt"

	"github.com/ivlev/timeline/easing"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Kind tags the value kind stored in a track.
type Kind uint8

const (
	KindFloat32 Kind = iota
	KindFloat64
	KindInt32
	KindInt64
	KindBool
	KindVec2
	KindVec3
	KindVec4
	KindColor
)

var kindNames = [...]string{
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindBool:    "bool",
	KindVec2:    "vec2",
	KindVec3:    "vec3",
	KindVec4:    "vec4",
	KindColor:   "color",
}

// Kinds returns every supported value kind.
func Kinds() []Kind {
	ks := make([]Kind, len(kindNames))
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Value is implemented by every value kind a Track can hold.
// Ease returns the value between the receiver (segment start) and next,
// t seconds into a segment lasting d seconds.
//
// The set is closed: the unexported method keeps other packages from adding
// kinds the Timeline cannot dispatch on.
type Value[V any] interface {
	Kind() Kind
	Ease(next V, t, d float64, f easing.Function, typ easing.Type) V
	value()
}

type (
	Float32 float32
	Float64 float64
	Int32   int32
	Int64   int64

	// Bool does not interpolate; see Bool.Ease.
	Bool bool

	Vec2 r2.Vec
	Vec3 r3.Vec
	Vec4 struct{ X, Y, Z, W float64 }

	// Color eases its R, G and B channels independently in RGB space.
	Color struct{ colorful.Color }
)

var (
	_ Value[Float32] = Float32(0)
	_ Value[Float64] = Float64(0)
	_ Value[Int32]   = Int32(0)
	_ Value[Int64]   = Int64(0)
	_ Value[Bool]    = Bool(false)
	_ Value[Vec2]    = Vec2{}
	_ Value[Vec3]    = Vec3{}
	_ Value[Vec4]    = Vec4{}
	_ Value[Color]   = Color{}
)

func blend(start, next, t, d float64, f easing.Function, typ easing.Type) float64 {
	return easing.Ease(t, start, next-start, d, f, typ)
}

func (v Float32) Kind() Kind { return KindFloat32 }
func (v Float64) Kind() Kind { return KindFloat64 }
func (v Int32) Kind() Kind   { return KindInt32 }
func (v Int64) Kind() Kind   { return KindInt64 }
func (v Bool) Kind() Kind    { return KindBool }
func (v Vec2) Kind() Kind    { return KindVec2 }
func (v Vec3) Kind() Kind    { return KindVec3 }
func (v Vec4) Kind() Kind    { return KindVec4 }
func (v Color) Kind() Kind   { return KindColor }

func (Float32) value() {}
func (Float64) value() {}
func (Int32) value()   {}
func (Int64) value()   {}
func (Bool) value()    {}
func (Vec2) value()    {}
func (Vec3) value()    {}
func (Vec4) value()    {}
func (Color) value()   {}

// Ease evaluates the curve in float64 and rounds to float32 once.
func (v Float32) Ease(next Float32, t, d float64, f easing.Function, typ easing.Type) Float32 {
	return Float32(blend(float64(v), float64(next), t, d, f, typ))
}

func (v Float64) Ease(next Float64, t, d float64, f easing.Function, typ easing.Type) Float64 {
	return Float64(blend(float64(v), float64(next), t, d, f, typ))
}

// Ease computes in floating point and truncates toward zero.
func (v Int32) Ease(next Int32, t, d float64, f easing.Function, typ easing.Type) Int32 {
	return Int32(blend(float64(v), float64(next), t, d, f, typ))
}

// Ease computes in floating point and truncates toward zero.
func (v Int64) Ease(next Int64, t, d float64, f easing.Function, typ easing.Type) Int64 {
	return Int64(blend(float64(v), float64(next), t, d, f, typ))
}

// Ease always returns the segment start value.
// TODO: decide between a step at the next keyframe and a threshold on the
// eased fraction once a host needs animated booleans.
func (v Bool) Ease(next Bool, t, d float64, f easing.Function, typ easing.Type) Bool {
	return v
}

func (v Vec2) Ease(next Vec2, t, d float64, f easing.Function, typ easing.Type) Vec2 {
	return Vec2{
		X: blend(v.X, next.X, t, d, f, typ),
		Y: blend(v.Y, next.Y, t, d, f, typ),
	}
}

func (v Vec3) Ease(next Vec3, t, d float64, f easing.Function, typ easing.Type) Vec3 {
	return Vec3{
		X: blend(v.X, next.X, t, d, f, typ),
		Y: blend(v.Y, next.Y, t, d, f, typ),
		Z: blend(v.Z, next.Z, t, d, f, typ),
	}
}

func (v Vec4) Ease(next Vec4, t, d float64, f easing.Function, typ easing.Type) Vec4 {
	return Vec4{
		X: blend(v.X, next.X, t, d, f, typ),
		Y: blend(v.Y, next.Y, t, d, f, typ),
		Z: blend(v.Z, next.Z, t, d, f, typ),
		W: blend(v.W, next.W, t, d, f, typ),
	}
}

// Ease does not clamp; overshooting curves can leave the RGB gamut.
func (v Color) Ease(next Color, t, d float64, f easing.Function, typ easing.Type) Color {
	return Color{colorful.Color{
		R: blend(v.R, next.R, t, d, f, typ),
		G: blend(v.G, next.G, t, d, f, typ),
		B: blend(v.B, next.B, t, d, f, typ),
	}}
}

// R2 returns v as a gonum vector.
func (v Vec2) R2() r2.Vec { return r2.Vec(v) }

// R3 returns v as a gonum vector.
func (v Vec3) R3() r3.Vec { return r3.Vec(v) }
