// Package anim holds the animation frame buffer. The editor draws into a
// single live grid; every frame-changing operation commits that grid into
// the sequence before swapping, so in-progress edits are never lost.
package anim

import (
	"time"

	"github.com/lixenwraith/pixelpen/raster"
)

// Playback limits
const (
	MaxFrames = 16
	MinDelay  = 50 * time.Millisecond
	MaxDelay  = 1000 * time.Millisecond
	DelayStep = 50 * time.Millisecond
)

// Reel is an ordered, bounded sequence of animation frames plus a cursor
// and playback parameters. All frames share the dimensions of the first.
type Reel struct {
	frames  []*raster.Grid
	current int
	playing bool
	delay   time.Duration
}

// NewReel creates a reel whose single initial frame is a snapshot of live
func NewReel(live *raster.Grid) *Reel {
	return &Reel{
		frames: []*raster.Grid{live.Clone()},
		delay:  200 * time.Millisecond,
	}
}

// Len returns the number of frames
func (r *Reel) Len() int {
	return len(r.frames)
}

// Current returns the index of the frame being edited
func (r *Reel) Current() int {
	return r.current
}

// Playing reports whether playback is active
func (r *Reel) Playing() bool {
	return r.playing
}

// Delay returns the per-frame playback delay
func (r *Reel) Delay() time.Duration {
	return r.delay
}

// Frame returns the stored grid at index i, or nil if out of range.
// The live grid may be ahead of frames[Current()] until the next commit.
func (r *Reel) Frame(i int) *raster.Grid {
	if i < 0 || i >= len(r.frames) {
		return nil
	}
	return r.frames[i]
}

// commit stashes the live grid into the current slot
func (r *Reel) commit(live *raster.Grid) {
	r.frames[r.current] = live.Clone()
}

// NewFrame commits live, appends a blank frame of the same dimensions,
// moves the cursor to it, and returns the new live grid. Returns nil
// without changing anything when the reel is full.
func (r *Reel) NewFrame(live *raster.Grid) *raster.Grid {
	if len(r.frames) >= MaxFrames {
		return nil
	}

	r.commit(live)

	blank, err := raster.New(live.Width(), live.Height())
	if err != nil {
		// Dimensions came from an existing grid, so this cannot happen
		return nil
	}
	r.frames = append(r.frames, blank)
	r.current = len(r.frames) - 1
	return blank.Clone()
}

// Prev commits live and steps to the previous frame, returning its copy
// as the new live grid. Returns nil at the first frame.
func (r *Reel) Prev(live *raster.Grid) *raster.Grid {
	if r.current == 0 {
		return nil
	}
	r.commit(live)
	r.current--
	return r.frames[r.current].Clone()
}

// Next commits live and steps to the next frame, returning its copy as
// the new live grid. Returns nil at the last frame.
func (r *Reel) Next(live *raster.Grid) *raster.Grid {
	if r.current == len(r.frames)-1 {
		return nil
	}
	r.commit(live)
	r.current++
	return r.frames[r.current].Clone()
}

// TogglePlay flips playback without touching frame content
func (r *Reel) TogglePlay() {
	r.playing = !r.playing
}

// AdjustSpeed shifts the frame delay by delta, clamped to [MinDelay, MaxDelay]
func (r *Reel) AdjustSpeed(delta time.Duration) {
	r.delay += delta
	if r.delay < MinDelay {
		r.delay = MinDelay
	}
	if r.delay > MaxDelay {
		r.delay = MaxDelay
	}
}

// Tick advances playback one frame, wrapping at the end, and returns the
// new live grid. The only wrap-around transition; navigation clamps.
// Returns nil when there is nothing to advance to.
func (r *Reel) Tick(live *raster.Grid) *raster.Grid {
	if len(r.frames) < 2 {
		return nil
	}
	r.commit(live)
	r.current = (r.current + 1) % len(r.frames)
	return r.frames[r.current].Clone()
}

// Snapshot returns the frame sequence with the live grid committed into
// the current slot, without mutating the reel. Used by the codec when
// exporting an animation.
func (r *Reel) Snapshot(live *raster.Grid) []*raster.Grid {
	out := make([]*raster.Grid, len(r.frames))
	for i, f := range r.frames {
		if i == r.current {
			out[i] = live.Clone()
		} else {
			out[i] = f.Clone()
		}
	}
	return out
}
