package timeline

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// AnyTrack is a Track of any supported value kind. Only *Track[V]
// implements it.
type AnyTrack interface {
	Kind() Kind
	Len() int
	Duration() time.Duration
	ValueAt(t time.Duration) any
	track()
}

var (
	_ AnyTrack = (*Track[Float32])(nil)
	_ AnyTrack = (*Track[Float64])(nil)
	_ AnyTrack = (*Track[Int32])(nil)
	_ AnyTrack = (*Track[Int64])(nil)
	_ AnyTrack = (*Track[Bool])(nil)
	_ AnyTrack = (*Track[Vec2])(nil)
	_ AnyTrack = (*Track[Vec3])(nil)
	_ AnyTrack = (*Track[Vec4])(nil)
	_ AnyTrack = (*Track[Color])(nil)
)

// Timeline is a set of named tracks sharing one time axis.
type Timeline struct {
	tracks map[string]AnyTrack
}

// New creates an empty Timeline.
func New() *Timeline {
	return &Timeline{tracks: make(map[string]AnyTrack)}
}

// Add stores track under name, replacing any track already stored there.
func (tl *Timeline) Add(name string, track AnyTrack) *Timeline {
	if track == nil {
		panic(fmt.Sprintf("timeline: nil track %q", name))
	}
	tl.tracks[name] = track
	return tl
}

// Lookup returns the track stored under name.
func (tl *Timeline) Lookup(name string) (AnyTrack, bool) {
	tr, ok := tl.tracks[name]
	return tr, ok
}

// Get returns the track stored under name and panics if there is none.
func (tl *Timeline) Get(name string) AnyTrack {
	tr, ok := tl.tracks[name]
	if !ok {
		panic(fmt.Sprintf("timeline: unknown track %q", name))
	}
	return tr
}

// Value returns the value of the named track at t.
func (tl *Timeline) Value(name string, t time.Duration) any {
	return tl.Get(name).ValueAt(t)
}

// MaxDuration returns the longest track duration, or zero without tracks.
func (tl *Timeline) MaxDuration() time.Duration {
	var d time.Duration
	for _, tr := range tl.tracks {
		d = max(d, tr.Duration())
	}
	return d
}

// Names returns the track names in lexical order.
func (tl *Timeline) Names() []string {
	return slices.Sorted(maps.Keys(tl.tracks))
}

func (tl *Timeline) Len() int { return len(tl.tracks) }

// AddTrack creates a track of kind V from kfs, stores it under name and
// returns it for further building.
func AddTrack[V Value[V]](tl *Timeline, name string, kfs ...Keyframe[V]) *Track[V] {
	tr := NewTrack(kfs...)
	tl.Add(name, tr)
	return tr
}

// TrackOf returns the named track as a *Track[V]. It panics if the track
// is missing or holds another kind.
func TrackOf[V Value[V]](tl *Timeline, name string) *Track[V] {
	stored := tl.Get(name)
	tr, ok := stored.(*Track[V])
	if !ok {
		var zero V
		panic(fmt.Sprintf("timeline: track %q holds %v, not %v", name, stored.Kind(), zero.Kind()))
	}
	return tr
}

// ValueOf returns the value of the named track of kind V at t.
func ValueOf[V Value[V]](tl *Timeline, name string, t time.Duration) V {
	return TrackOf[V](tl, name).Value(t)
}
