// Package timeline evaluates keyframed values over time.
//
// A [Track] holds keyframes of a single value kind and answers "what is the
// value at t". Between two keyframes the value follows the easing curve
// selected on the earlier keyframe (see package easing); before the first
// and after the last keyframe the boundary value is held. A [Timeline]
// groups tracks of different kinds by name.
//
// Supported value kinds form a closed set: [Float32], [Float64], [Int32],
// [Int64], [Bool], [Vec2], [Vec3], [Vec4] and [Color]. Integers are eased in
// floating point and truncated; vectors and colours are eased per
// component; booleans hold the segment start value.
//
// Basic usage:
//
//	tl := timeline.New()
//	timeline.AddTrack(tl, "x",
//		timeline.NewKeyframe(1*time.Second, timeline.Float32(0)),
//		timeline.NewKeyframe(2*time.Second, timeline.Float32(1)).
//			WithEasing(easing.Cubic, easing.InOut),
//	)
//	x := timeline.ValueOf[timeline.Float32](tl, "x", 1500*time.Millisecond)
//
// Tracks and timelines are built once and then queried. Queries do not
// mutate state, so a fully built timeline may be read from several
// goroutines; adding keyframes while other goroutines read is a data race
// and must be serialized by the caller.
package timeline
