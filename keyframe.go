package timeline

import (
	"time"

	"github.com/ivlev/timeline/easing"
)

// Keyframe anchors a value at a time offset from the start of its track.
// Function and Type shape the segment leading to the next keyframe.
type Keyframe[V Value[V]] struct {
	Time     time.Duration
	Value    V
	Function easing.Function
	Type     easing.Type
}

// NewKeyframe creates a keyframe with linear easing.
func NewKeyframe[V Value[V]](t time.Duration, v V) Keyframe[V] {
	return Keyframe[V]{
		Time:     t,
		Value:    v,
		Function: easing.Linear,
		Type:     easing.In,
	}
}

// WithEasing returns a copy of kf using the given curve for its outgoing segment.
func (kf Keyframe[V]) WithEasing(f easing.Function, typ easing.Type) Keyframe[V] {
	kf.Function = f
	kf.Type = typ
	return kf
}
