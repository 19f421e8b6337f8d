package timeline

import (
	"slices"
	"sort"
	"time"
)

// Track is a time-ordered sequence of keyframes of one value kind.
// A Track is built once and then queried; it is not safe for concurrent
// mutation.
type Track[V Value[V]] struct {
	keyframes []Keyframe[V]
}

// NewTrack creates a track holding the given keyframes in time order.
func NewTrack[V Value[V]](kfs ...Keyframe[V]) *Track[V] {
	return new(Track[V]).AddKeyframes(kfs...)
}

// AddKeyframe inserts kf, keeping the track sorted by time. Keyframes
// sharing a time keep their insertion order.
func (tr *Track[V]) AddKeyframe(kf Keyframe[V]) *Track[V] {
	tr.keyframes = append(tr.keyframes, kf)
	tr.sort()
	return tr
}

// AddKeyframes inserts every keyframe as AddKeyframe would, in order.
func (tr *Track[V]) AddKeyframes(kfs ...Keyframe[V]) *Track[V] {
	tr.keyframes = append(tr.keyframes, kfs...)
	tr.sort()
	return tr
}

func (tr *Track[V]) sort() {
	slices.SortStableFunc(tr.keyframes, func(a, b Keyframe[V]) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	})
}

// Keyframes returns a copy of the keyframes in time order.
func (tr *Track[V]) Keyframes() []Keyframe[V] {
	return slices.Clone(tr.keyframes)
}

func (tr *Track[V]) Len() int { return len(tr.keyframes) }

func (tr *Track[V]) Kind() Kind {
	var zero V
	return zero.Kind()
}

// Duration returns the time of the last keyframe, or zero for an empty track.
func (tr *Track[V]) Duration() time.Duration {
	if len(tr.keyframes) == 0 {
		return 0
	}
	return tr.keyframes[len(tr.keyframes)-1].Time
}

// Value returns the track value at t.
//
// Before the first keyframe the first value is held, after the last
// keyframe the last value is held. A query landing exactly on a keyframe
// returns its stored value; with duplicate times the earliest added wins.
// Between keyframes the value is eased with the earlier keyframe's curve.
// Value panics if the track has no keyframes.
func (tr *Track[V]) Value(t time.Duration) V {
	kfs := tr.keyframes
	n := len(kfs)
	if n == 0 {
		panic("timeline: value of an empty track")
	}
	if n == 1 || t < kfs[0].Time {
		return kfs[0].Value
	}

	i := sort.Search(n, func(i int) bool { return kfs[i].Time >= t })
	if i == n {
		return kfs[n-1].Value
	}
	if kfs[i].Time == t {
		return kfs[i].Value
	}

	prev, next := kfs[i-1], kfs[i]
	local := (t - prev.Time).Seconds()
	span := (next.Time - prev.Time).Seconds()
	return prev.Value.Ease(next.Value, local, span, prev.Function, prev.Type)
}

// ValueAt is Value boxed for callers holding an AnyTrack.
func (tr *Track[V]) ValueAt(t time.Duration) any {
	return tr.Value(t)
}

func (tr *Track[V]) track() {}
