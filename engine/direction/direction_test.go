package direction

import (
	"math"
	"testing"

	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

func polar(length, degrees float64) (float32, float32) {
	r := degrees * math.Pi / 180
	return float32(length * math.Cos(r)), float32(length * math.Sin(r))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		x, y float32
		want Direction
	}{
		{"rest", 0, 0, Neutral},
		{"inside deadzone", 0.2, 0.1, Neutral},
		{"full right", 1, 0, Forward},
		{"full left", -1, 0, Back},
		{"full up", 0, 1, Up},
		{"full down", 0, -1, Down},
		{"up right", 0.7, 0.7, UpForward},
		{"down right", 0.7, -0.7, DownForward},
		{"up left", -0.7, 0.7, UpBack},
		{"down left", -0.7, -0.7, DownBack},
		{"just outside deadzone", 0.25, 0, Forward},
	}
	for _, tt := range tests {
		if got := Classify(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: Classify(%v, %v) = %d, want %d", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClassify_DeadzoneAnyAngle(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 7.5 {
		x, y := polar(0.24, deg)
		if got := Classify(x, y); got != Neutral {
			t.Fatalf("angle %.1f inside deadzone: got %d, want neutral", deg, got)
		}
	}
}

func TestClassify_BandsPartitionQuadrant(t *testing.T) {
	for deg := 0.0; deg <= 90; deg += 0.5 {
		x, y := polar(1, deg)
		got := Classify(x, y)
		switch {
		case deg < 14.5:
			if got != Forward {
				t.Errorf("%.1f°: got %d, want 6", deg, got)
			}
		case deg > 15.5 && deg < 69.5:
			if got != UpForward {
				t.Errorf("%.1f°: got %d, want 9", deg, got)
			}
		case deg > 70.5:
			if got != Up {
				t.Errorf("%.1f°: got %d, want 8", deg, got)
			}
		default:
			// Boundary samples must still land in one of the two neighbours.
			if got != Forward && got != UpForward && got != Up {
				t.Errorf("%.1f°: got %d outside neighbouring bands", deg, got)
			}
		}
	}
}

func TestClassify_Symmetry(t *testing.T) {
	mirror := map[Direction]Direction{
		Forward: Back, UpForward: UpBack, DownForward: DownBack,
		Up: Up, Down: Down, Neutral: Neutral,
	}
	for deg := -90.0; deg <= 90; deg += 5 {
		x, y := polar(0.8, deg)
		right := Classify(x, y)
		left := Classify(-x, y)
		if mirror[right] != left {
			t.Errorf("%.0f°: right=%d left=%d not mirrored", deg, right, left)
		}
	}
}

func TestCommand_Facing(t *testing.T) {
	s := fighter.NewState(types.FighterDef{})
	s.Input.StickX = -1

	if got := Command(s, true); got != Back {
		t.Errorf("facing right, stick left: got %d, want 4", got)
	}

	s.Dir = -1
	if got := Command(s, true); got != Forward {
		t.Errorf("facing left, stick left: got %d, want 6", got)
	}
	if got := Command(s, false); got != Back {
		t.Errorf("raw stick left: got %d, want 4", got)
	}
}

func TestCommand_TurnRunFlips(t *testing.T) {
	s := fighter.NewState(types.FighterDef{})
	s.Status = types.StatusTurnRun
	s.Input.StickX = 1

	if got := Command(s, true); got != Back {
		t.Errorf("turn run, stick forward: got %d, want 4", got)
	}
	if got := Command(s, false); got != Forward {
		t.Errorf("turn run ignored without facing: got %d, want 6", got)
	}
}
