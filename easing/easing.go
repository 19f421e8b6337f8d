// Package easing implements Robert Penner's easing equations.
//
// Every function takes the classic (t, b, c, d) arguments: t is the time
// elapsed, b the start value, c the change (end - start) and d the total
// duration. Time is not clamped, so values outside [0, d] extrapolate
// according to the curve formula. d must not be zero.
package easing

import (
	"errors"
	"fmt"
)

// Function selects an easing curve family.
type Function uint8

const (
	Linear Function = iota
	Sine
	Circular
	Quadratic
	Cubic
	Quartic
	Quintic
	Exponential
	Back
	Bounce
	Elastic
)

// Type selects the direction of an easing curve.
type Type uint8

const (
	In Type = iota
	Out
	InOut
)

var (
	ErrUnknownFunction = errors.New("unknown easing function")
	ErrUnknownType     = errors.New("unknown easing type")
)

var functionNames = [...]string{
	Linear:      "linear",
	Sine:        "sine",
	Circular:    "circular",
	Quadratic:   "quadratic",
	Cubic:       "cubic",
	Quartic:     "quartic",
	Quintic:     "quintic",
	Exponential: "exponential",
	Back:        "back",
	Bounce:      "bounce",
	Elastic:     "elastic",
}

var typeNames = [...]string{
	In:    "in",
	Out:   "out",
	InOut: "inout",
}

// Functions returns every easing function in id order.
func Functions() []Function {
	fs := make([]Function, len(functionNames))
	for i := range fs {
		fs[i] = Function(i)
	}
	return fs
}

// Types returns every easing type in id order.
func Types() []Type {
	return []Type{In, Out, InOut}
}

// FunctionFromID decodes the numeric selector used by scenario files
// (0 = Linear ... 10 = Elastic).
func FunctionFromID(id int) (Function, error) {
	if id < 0 || id >= len(functionNames) {
		return Linear, fmt.Errorf("%w: %d", ErrUnknownFunction, id)
	}
	return Function(id), nil
}

// TypeFromID decodes the numeric selector used by scenario files
// (0 = In, 1 = Out, 2 = InOut).
func TypeFromID(id int) (Type, error) {
	if id < 0 || id >= len(typeNames) {
		return In, fmt.Errorf("%w: %d", ErrUnknownType, id)
	}
	return Type(id), nil
}

func (f Function) Valid() bool { return int(f) < len(functionNames) }

func (f Function) String() string {
	if !f.Valid() {
		return fmt.Sprintf("function(%d)", uint8(f))
	}
	return functionNames[f]
}

func (typ Type) Valid() bool { return int(typ) < len(typeNames) }

func (typ Type) String() string {
	if !typ.Valid() {
		return fmt.Sprintf("type(%d)", uint8(typ))
	}
	return typeNames[typ]
}

// Ease evaluates the selected curve at time t.
// c is the change of value (end - start), d the duration of the curve.
func Ease(t, b, c, d float64, f Function, typ Type) float64 {
	if !typ.Valid() {
		panic(fmt.Sprintf("easing: %v", typ))
	}
	switch f {
	case Linear:
		return linear(t, b, c, d)
	case Sine:
		return sine(t, b, c, d, typ)
	case Circular:
		return circular(t, b, c, d, typ)
	case Quadratic:
		return quadratic(t, b, c, d, typ)
	case Cubic:
		return cubic(t, b, c, d, typ)
	case Quartic:
		return quartic(t, b, c, d, typ)
	case Quintic:
		return quintic(t, b, c, d, typ)
	case Exponential:
		return exponential(t, b, c, d, typ)
	case Back:
		return back(t, b, c, d, typ)
	case Bounce:
		return bounce(t, b, c, d, typ)
	case Elastic:
		return elastic(t, b, c, d, typ)
	default:
		panic(fmt.Sprintf("easing: %v", f))
	}
}

// Map remaps v from [minIn, maxIn] to [minOut, maxOut] along the selected
// curve. v is not clamped.
func Map(v, minIn, maxIn, minOut, maxOut float64, f Function, typ Type) float64 {
	t := v - minIn
	c := maxOut - minOut
	d := maxIn - minIn
	return Ease(t, minOut, c, d, f, typ)
}

// MapClamp is Map with v clamped into [minIn, maxIn] first.
func MapClamp(v, minIn, maxIn, minOut, maxOut float64, f Function, typ Type) float64 {
	v = max(min(v, maxIn), minIn)
	return Map(v, minIn, maxIn, minOut, maxOut, f, typ)
}
