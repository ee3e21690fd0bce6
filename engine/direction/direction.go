// Package direction classifies the left stick into numpad notation.
package direction

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

// Direction is a numpad direction, 1 (down-back) through 9 (up-forward).
type Direction int

const (
	DownBack Direction = iota + 1
	Down
	DownForward
	Back
	Neutral
	Forward
	UpBack
	Up
	UpForward
)

const (
	deadzone        = 0.25
	horizontalLimit = 15.0 // degrees from the x-axis
	verticalLimit   = 70.0
)

// Classify maps raw stick axes to a numpad direction. Vectors shorter than
// the deadzone are neutral. The angle is taken against |x| so both sides
// share the same bands.
func Classify(x, y float32) Direction {
	v := mgl32.Vec2{x, y}
	if v.Len() < deadzone {
		return Neutral
	}
	n := v.Normalize()
	degrees := mgl32.RadToDeg(float32(math.Atan2(float64(n.Y()), math.Abs(float64(n.X())))))
	abs := float32(math.Abs(float64(degrees)))

	switch {
	case abs <= horizontalLimit:
		if x > 0 {
			return Forward
		}
		return Back
	case abs >= verticalLimit:
		if y > 0 {
			return Up
		}
		return Down
	case x > 0:
		if y > 0 {
			return UpForward
		}
		return DownForward
	default:
		if y > 0 {
			return UpBack
		}
		return DownBack
	}
}

// Command reads the fighter's stick and classifies it. With facing set, the
// x axis is flipped so that 6 always means toward the fighter's front, and
// flipped again while turning around in a run.
func Command(f fighter.Fighter, facing bool) Direction {
	x, y := f.Stick()
	if facing {
		x *= f.LR()
		if f.StatusKind() == types.StatusTurnRun {
			x = -x
		}
	}
	return Classify(x, y)
}
