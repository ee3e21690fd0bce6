package fighter

import (
	"testing"

	"github.com/nathoo/cancelcore/types"
)

func TestUpdateMeter(t *testing.T) {
	tests := []struct {
		name   string
		start  float32
		amount float32
		want   float32
	}{
		{"gain", 10, 25, 35},
		{"gain past max", 90, 25, 100},
		{"spend", 50, -20, 30},
		// Negative meter is clamped to zero rather than kept.
		{"spend past zero", 10, -30, 0},
		{"negative amount from empty", 0, -5, 0},
	}
	for _, tt := range tests {
		s := NewState(types.FighterDef{Name: "test"})
		s.SetFloat(FloatMeter, tt.start)
		UpdateMeter(s, FloatMeter, tt.amount, 100)
		if got := s.Float(FloatMeter); got != tt.want {
			t.Errorf("%s: meter = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRegisterHelpers(t *testing.T) {
	s := NewState(types.FighterDef{Name: "test", SlowRate: 0.5})

	AddInt(s, "hits", 3)
	AddInt(s, "hits", -1)
	if got := s.Int("hits"); got != 2 {
		t.Errorf("hits = %d, want 2", got)
	}
	ResetInt(s, "hits")
	if got := s.Int("hits"); got != 0 {
		t.Errorf("hits after reset = %d, want 0", got)
	}

	AddFloat(s, "charge", 1.5)
	AddFloat(s, "charge", 0.25)
	if got := s.Float("charge"); got != 1.75 {
		t.Errorf("charge = %v, want 1.75", got)
	}
	ResetFloat(s, "charge")
	if got := s.Float("charge"); got != 0 {
		t.Errorf("charge after reset = %v, want 0", got)
	}

	// 1 x fighter slow 0.5 x global slow 2.
	s.SetFloat(FloatCancelTimer, 10)
	CountDown(s, FloatCancelTimer, 1, 2)
	if got := s.Float(FloatCancelTimer); got != 9 {
		t.Errorf("timer = %v, want 9", got)
	}
}

func TestIsWallTouch(t *testing.T) {
	s := NewState(types.FighterDef{Name: "test"})
	if s.IsWallTouch(types.WallNone) || s.IsWallTouch(types.WallLeft) {
		t.Error("no wall input should touch nothing")
	}
	s.Input.Wall = types.WallRight
	if !s.IsWallTouch(types.WallRight) || s.IsWallTouch(types.WallLeft) {
		t.Error("right wall input should touch only the right wall")
	}
}
