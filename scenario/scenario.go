// Package scenario reads and writes keyframe documents and loads them into
// a timeline.Timeline.
//
// A document lists named tracks, each with a value kind and keys of the form
// (timecode, value, easefunc, easetype). Timecodes are "HH:MM:SS:mmm";
// easefunc and easetype are the numeric ids of easing.Function and
// easing.Type. The same document can be written as YAML, JSON, XML or HCL.
package scenario

import (
	"errors"
	"fmt"
)

// CurrentVersion is written into documents created by FromTimeline.
const CurrentVersion = "1.0"

// Scenario is a keyframe document.
type Scenario struct {
	Version string      `yaml:"version" json:"version"`
	Tracks  []TrackSpec `yaml:"tracks" json:"tracks"`
}

// TrackSpec describes one named track.
type TrackSpec struct {
	Name string `yaml:"name" json:"name"`
	Kind string `yaml:"kind" json:"kind"` // see timeline.Kind
	Keys []Key  `yaml:"keys" json:"keys"`
}

// Key describes one keyframe. Value holds a decoded scalar, bool, string or
// list; its accepted shape depends on the track kind. EaseFunc and EaseType
// are required; a key without them is rejected rather than defaulted.
type Key struct {
	Time     string `yaml:"time" json:"time"` // HH:MM:SS:mmm
	Value    any    `yaml:"value" json:"value"`
	EaseFunc *int   `yaml:"easefunc" json:"easefunc"`
	EaseType *int   `yaml:"easetype" json:"easetype"`
}

var (
	ErrTimecode = errors.New("malformed timecode")
	ErrValue    = errors.New("malformed value")
	ErrKind     = errors.New("unknown value kind")
	ErrDocument = errors.New("malformed scenario")
)

// LoadError reports which track and key of a document could not be loaded.
// Key is -1 when the problem concerns the track itself.
type LoadError struct {
	Track string
	Key   int
	Err   error
}

func (e *LoadError) Error() string {
	if e.Key < 0 {
		return fmt.Sprintf("track %q: %v", e.Track, e.Err)
	}
	return fmt.Sprintf("track %q key %d: %v", e.Track, e.Key, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
