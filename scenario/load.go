package scenario

import (
	"fmt"

	"github.com/ivlev/timeline"
	"github.com/ivlev/timeline/easing"
)

// BuildTrack converts one track description into a typed track.
func BuildTrack(ts TrackSpec) (timeline.AnyTrack, error) {
	if ts.Name == "" {
		return nil, &LoadError{Track: ts.Name, Key: -1, Err: fmt.Errorf("%w: track without a name", ErrDocument)}
	}

	kind, ok := timeline.ParseKind(ts.Kind)
	if !ok {
		return nil, &LoadError{Track: ts.Name, Key: -1, Err: fmt.Errorf("%w: %q", ErrKind, ts.Kind)}
	}

	switch kind {
	case timeline.KindFloat32:
		return buildTrack(ts, toFloat32)
	case timeline.KindFloat64:
		return buildTrack(ts, toFloat64)
	case timeline.KindInt32:
		return buildTrack(ts, toInt32)
	case timeline.KindInt64:
		return buildTrack(ts, toInt64)
	case timeline.KindBool:
		return buildTrack(ts, toBoolValue)
	case timeline.KindVec2:
		return buildTrack(ts, toVec2)
	case timeline.KindVec3:
		return buildTrack(ts, toVec3)
	case timeline.KindVec4:
		return buildTrack(ts, toVec4)
	case timeline.KindColor:
		return buildTrack(ts, toColor)
	default:
		return nil, &LoadError{Track: ts.Name, Key: -1, Err: fmt.Errorf("%w: %v", ErrKind, kind)}
	}
}

func buildTrack[V timeline.Value[V]](ts TrackSpec, conv func(any) (V, error)) (timeline.AnyTrack, error) {
	kfs := make([]timeline.Keyframe[V], 0, len(ts.Keys))
	for i, k := range ts.Keys {
		kf, err := buildKeyframe(k, conv)
		if err != nil {
			return nil, &LoadError{Track: ts.Name, Key: i, Err: err}
		}
		kfs = append(kfs, kf)
	}
	return timeline.NewTrack(kfs...), nil
}

func buildKeyframe[V timeline.Value[V]](k Key, conv func(any) (V, error)) (timeline.Keyframe[V], error) {
	var kf timeline.Keyframe[V]

	at, err := ParseTimecode(k.Time)
	if err != nil {
		return kf, err
	}
	if k.EaseFunc == nil {
		return kf, fmt.Errorf("%w: missing easefunc", ErrDocument)
	}
	if k.EaseType == nil {
		return kf, fmt.Errorf("%w: missing easetype", ErrDocument)
	}
	f, err := easing.FunctionFromID(*k.EaseFunc)
	if err != nil {
		return kf, err
	}
	typ, err := easing.TypeFromID(*k.EaseType)
	if err != nil {
		return kf, err
	}
	v, err := conv(k.Value)
	if err != nil {
		return kf, err
	}

	return timeline.NewKeyframe(at, v).WithEasing(f, typ), nil
}

// Load adds every track of doc to tl. Tracks are converted first and added
// only when all of them converted, so a failed load leaves tl untouched.
func Load(tl *timeline.Timeline, doc *Scenario) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrDocument)
	}

	built := make([]timeline.AnyTrack, len(doc.Tracks))
	seen := make(map[string]bool, len(doc.Tracks))
	for i, ts := range doc.Tracks {
		if seen[ts.Name] {
			return &LoadError{Track: ts.Name, Key: -1, Err: fmt.Errorf("%w: duplicate track name", ErrDocument)}
		}
		seen[ts.Name] = true

		tr, err := BuildTrack(ts)
		if err != nil {
			return err
		}
		built[i] = tr
	}

	for i, tr := range built {
		tl.Add(doc.Tracks[i].Name, tr)
	}
	return nil
}

// FromTimeline describes tl as a document, tracks sorted by name.
func FromTimeline(tl *timeline.Timeline) *Scenario {
	doc := &Scenario{Version: CurrentVersion}
	for _, name := range tl.Names() {
		tr := tl.Get(name)
		ts := TrackSpec{Name: name, Kind: tr.Kind().String()}

		switch tr := tr.(type) {
		case *timeline.Track[timeline.Float32]:
			ts.Keys = describeKeys(tr, fromFloat32)
		case *timeline.Track[timeline.Float64]:
			ts.Keys = describeKeys(tr, fromFloat64)
		case *timeline.Track[timeline.Int32]:
			ts.Keys = describeKeys(tr, fromInt32)
		case *timeline.Track[timeline.Int64]:
			ts.Keys = describeKeys(tr, fromInt64)
		case *timeline.Track[timeline.Bool]:
			ts.Keys = describeKeys(tr, fromBool)
		case *timeline.Track[timeline.Vec2]:
			ts.Keys = describeKeys(tr, fromVec2)
		case *timeline.Track[timeline.Vec3]:
			ts.Keys = describeKeys(tr, fromVec3)
		case *timeline.Track[timeline.Vec4]:
			ts.Keys = describeKeys(tr, fromVec4)
		case *timeline.Track[timeline.Color]:
			ts.Keys = describeKeys(tr, fromColor)
		}
		doc.Tracks = append(doc.Tracks, ts)
	}
	return doc
}

func describeKeys[V timeline.Value[V]](tr *timeline.Track[V], enc func(V) any) []Key {
	kfs := tr.Keyframes()
	keys := make([]Key, len(kfs))
	for i, kf := range kfs {
		f, typ := int(kf.Function), int(kf.Type)
		keys[i] = Key{
			Time:     FormatTimecode(kf.Time),
			Value:    enc(kf.Value),
			EaseFunc: &f,
			EaseType: &typ,
		}
	}
	return keys
}
