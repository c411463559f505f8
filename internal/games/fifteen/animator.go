package fifteen

import (
	"math"

	"github.com/vovakirdan/tui-fifteen/internal/core"
)

// Direction is the way a tile slides. The board is 4-connected, so there are
// exactly four.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Delta returns the one-cell step in this direction.
func (d Direction) Delta() Cell {
	switch d {
	case DirUp:
		return Cell{X: 0, Y: -1}
	case DirRight:
		return Cell{X: 1, Y: 0}
	case DirDown:
		return Cell{X: 0, Y: 1}
	case DirLeft:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{}
	}
}

// displacement returns a vector of length n pointing in direction d.
func (d Direction) displacement(n float64) core.Vec2 {
	switch d {
	case DirUp:
		return core.Vec2{X: 0, Y: -n}
	case DirRight:
		return core.Vec2{X: n, Y: 0}
	case DirDown:
		return core.Vec2{X: 0, Y: n}
	case DirLeft:
		return core.Vec2{X: -n, Y: 0}
	default:
		return core.Vec2{}
	}
}

// Animator drives one slide at a time.
// Animate must be called at most once per tick; each call advances the slide.
type Animator interface {
	// Start begins a new slide from zero progress.
	Start()
	// Animate advances the slide and returns the tile's displacement from its
	// starting cell. It returns a zero vector once the slide is over.
	Animate(dir Direction) core.Vec2
	// IsOver reports whether the current slide has finished.
	IsOver() bool
}

// PlainAnimator advances progress by a fixed step per call up to max.
// The displacement equals the progress, so the tile moves at constant speed.
type PlainAnimator struct {
	max      float64
	step     float64
	progress float64
}

// NewPlainAnimator creates an animator that is initially finished, so the
// first move is never held back.
func NewPlainAnimator(max, step float64) *PlainAnimator {
	return &PlainAnimator{
		max:      max,
		step:     step,
		progress: max,
	}
}

// Start resets progress to zero.
func (a *PlainAnimator) Start() {
	a.progress = 0
}

// Animate advances progress by one step, never past max.
func (a *PlainAnimator) Animate(dir Direction) core.Vec2 {
	if a.IsOver() {
		return core.Vec2{}
	}
	a.progress = math.Min(a.progress+a.step, a.max)
	return dir.displacement(a.progress)
}

// IsOver reports whether progress has reached max.
func (a *PlainAnimator) IsOver() bool {
	return a.progress >= a.max
}

// Progress returns the current progress in [0, max].
func (a *PlainAnimator) Progress() float64 {
	return a.progress
}

// EasedAnimator steps like PlainAnimator but shapes the displacement with an
// easing curve, so the tile decelerates into the blank.
type EasedAnimator struct {
	PlainAnimator
	ease func(t float64) float64
}

// NewEasedAnimator creates an ease-out animator with the given budget and step.
func NewEasedAnimator(max, step float64) *EasedAnimator {
	return &EasedAnimator{
		PlainAnimator: *NewPlainAnimator(max, step),
		ease:          easeOutQuad,
	}
}

// Animate advances progress by one step and returns the eased displacement.
func (a *EasedAnimator) Animate(dir Direction) core.Vec2 {
	if a.IsOver() {
		return core.Vec2{}
	}
	a.progress = math.Min(a.progress+a.step, a.max)
	return dir.displacement(a.max * a.ease(a.progress/a.max))
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

var (
	_ Animator = (*PlainAnimator)(nil)
	_ Animator = (*EasedAnimator)(nil)
)
