package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/ivlev/timeline"
	"golang.org/x/sync/errgroup"
)

// cancelCheckEvery is how many frames a worker samples between context checks.
const cancelCheckEvery = 1024

// Column holds the samples of one track, one per frame.
type Column struct {
	Name   string
	Kind   timeline.Kind
	Values []any
}

// Table is a sampled timeline: frame i was taken at Times[i].
type Table struct {
	FPS     int
	Times   []time.Duration
	Columns []Column
}

// FrameCount returns how many frames cover [0, duration] at fps. Frame 0 is
// at zero, so a one second timeline at 30 fps has 31 frames.
func FrameCount(duration time.Duration, fps int) int {
	if duration < 0 || fps <= 0 {
		return 0
	}
	return int(duration*time.Duration(fps)/time.Second) + 1
}

// FrameTime returns the time of frame i at fps.
func FrameTime(i, fps int) time.Duration {
	return time.Duration(i) * time.Second / time.Duration(fps)
}

// Sample queries every named track once per frame. Tracks are sampled in
// parallel, at most workers at a time; tl must not be modified meanwhile.
func Sample(ctx context.Context, tl *timeline.Timeline, names []string, duration time.Duration, fps, workers int) (*Table, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}

	tracks := make([]timeline.AnyTrack, len(names))
	for i, name := range names {
		tr, ok := tl.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown track %q", name)
		}
		if tr.Len() == 0 {
			return nil, fmt.Errorf("track %q has no keyframes", name)
		}
		tracks[i] = tr
	}

	n := FrameCount(duration, fps)
	table := &Table{
		FPS:     fps,
		Times:   make([]time.Duration, n),
		Columns: make([]Column, len(names)),
	}
	for i := range table.Times {
		table.Times[i] = FrameTime(i, fps)
	}

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, tr := range tracks {
		col := &table.Columns[i]
		col.Name = names[i]
		col.Kind = tr.Kind()
		col.Values = make([]any, n)

		g.Go(func() error {
			for f, at := range table.Times {
				if f%cancelCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				col.Values[f] = tr.ValueAt(at)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return table, nil
}
