package usage

import (
	"testing"

	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

func newFighter(status types.StatusKind) *fighter.State {
	s := fighter.NewState(types.FighterDef{Name: "test"})
	s.Status = status
	return s
}

func TestDisableGroundNormal_Union(t *testing.T) {
	s := newFighter(types.StatusAttackS3)

	DisableGroundNormal(s, AttackS3Mask)
	DisableGroundNormal(s, AttackHi3Mask)

	want := AttackS3Mask | AttackHi3Mask
	if got := s.Int(fighter.IntUsedGroundNormals); got != want {
		t.Errorf("used = %b, want %b", got, want)
	}
}

func TestDisableGroundNormal_Idempotent(t *testing.T) {
	once := newFighter(types.StatusAttackS3)
	twice := newFighter(types.StatusAttackS3)

	DisableGroundNormal(once, AttackS3Mask|AttackLw3Mask)
	DisableGroundNormal(twice, AttackS3Mask|AttackLw3Mask)
	DisableGroundNormal(twice, AttackS3Mask|AttackLw3Mask)

	if a, b := once.Int(fighter.IntUsedGroundNormals), twice.Int(fighter.IntUsedGroundNormals); a != b {
		t.Errorf("once = %b, twice = %b", a, b)
	}
}

func TestDisableGroundNormal_OverlappingMaskIsUnion(t *testing.T) {
	s := newFighter(types.StatusAttackS3)
	s.SetInt(fighter.IntUsedGroundNormals, AttackS3Mask)

	// Partially overlapping: arithmetic addition would carry into Lw3.
	DisableGroundNormal(s, AttackS3Mask|AttackHi3Mask)

	want := AttackS3Mask | AttackHi3Mask
	if got := s.Int(fighter.IntUsedGroundNormals); got != want {
		t.Errorf("used = %b, want %b", got, want)
	}
}

func TestDisableGroundNormal_SkippedWhenCancelEnabled(t *testing.T) {
	s := newFighter(types.StatusAttackS3)
	s.CancelEnabled = true

	DisableGroundNormal(s, AttackS3Mask)

	if got := s.Int(fighter.IntUsedGroundNormals); got != 0 {
		t.Errorf("used = %b, want 0", got)
	}
}

func TestApplyDisabledTransitions(t *testing.T) {
	s := newFighter(types.StatusAttackS3)
	s.OnFlag(fighter.FlagHaveItemSwing)

	ApplyDisabledTransitions(s, AttackS3Mask|AttackLw4Mask)

	disabled := []types.TransitionTerm{
		types.TermContAttackS3, types.TermContItemSwing3, types.TermContItemShootS3,
		types.TermContAttackLw4Start,
	}
	for _, term := range disabled {
		if s.IsEnableTransitionTerm(term) {
			t.Errorf("term %s should be disabled", fighter.TermName(term))
		}
	}
	enabled := []types.TransitionTerm{
		types.TermContAttack, types.TermContItemSwing, types.TermContAttackHi3,
		types.TermContAttackLw3, types.TermContAttackS4Start, types.TermContAttackHi4Start,
	}
	for _, term := range enabled {
		if !s.IsEnableTransitionTerm(term) {
			t.Errorf("term %s should stay enabled", fighter.TermName(term))
		}
	}
}

func TestSetUsedGroundNormalTransitionTerms_ReadsRegister(t *testing.T) {
	s := newFighter(types.StatusAttackS3)
	s.SetInt(fighter.IntUsedGroundNormals, AttackNMask)

	SetUsedGroundNormalTransitionTerms(s)
	if s.IsEnableTransitionTerm(types.TermContAttack) {
		t.Error("jab term should be disabled")
	}

	s.EnableAllTransitionTerms()
	s.CancelEnabled = true
	SetUsedGroundNormalTransitionTerms(s)
	if !s.IsEnableTransitionTerm(types.TermContAttack) {
		t.Error("terms must not be disabled once the move is cancelable")
	}
}

func TestResetGroundNormals(t *testing.T) {
	tests := []struct {
		name      string
		status    types.StatusKind
		ignore    bool
		cancel    bool
		motionEnd bool
		wantReset bool
	}{
		{"mid string", types.StatusAttackS3, false, false, false, false},
		{"mid string smash hold", types.StatusAttackS4Hold, false, false, false, false},
		{"ignore", types.StatusAttackS3, true, false, false, true},
		{"cancel enabled", types.StatusAttackS3, false, true, false, true},
		{"motion ended", types.StatusAttackS3, false, false, true, true},
		{"left the string", types.StatusWait, false, false, false, true},
		{"special is not a string status", types.StatusSpecialN, false, false, false, true},
		{"aerial is not a string status", types.StatusAttackAir, false, false, false, true},
	}
	for _, tt := range tests {
		s := newFighter(tt.status)
		s.CancelEnabled = tt.cancel
		s.MotionEnd = tt.motionEnd
		s.SetInt(fighter.IntUsedGroundNormals, AttackS3Mask|AttackHi3Mask)

		ResetGroundNormals(s, tt.ignore)

		got := s.Int(fighter.IntUsedGroundNormals)
		if tt.wantReset && got != 0 {
			t.Errorf("%s: used = %b, want 0", tt.name, got)
		}
		if !tt.wantReset && got != AttackS3Mask|AttackHi3Mask {
			t.Errorf("%s: used = %b, want unchanged", tt.name, got)
		}
	}
}

func TestIsGroundNormalUsed(t *testing.T) {
	s := newFighter(types.StatusAttackS3)
	DisableGroundNormal(s, AttackS3Mask)

	if !IsGroundNormalUsed(s, AttackS3Mask) {
		t.Error("S3 should be used")
	}
	if IsGroundNormalUsed(s, AttackS3Mask|AttackHi3Mask) {
		t.Error("S3|Hi3 should not be fully used")
	}
	if IsGroundNormalUsed(s, 0) {
		t.Error("empty mask is never used")
	}
}

func TestAerialMask(t *testing.T) {
	tests := []struct {
		kind int
		want int
	}{
		{0, 0}, {1, AttackAirNMask}, {2, AttackAirFMask}, {3, AttackAirBMask},
		{4, AttackAirHiMask}, {5, AttackAirLwMask}, {6, 0},
	}
	for _, tt := range tests {
		if got := AerialMask(tt.kind); got != tt.want {
			t.Errorf("AerialMask(%d) = %b, want %b", tt.kind, got, tt.want)
		}
	}
}

func TestAerialEnabled(t *testing.T) {
	s := newFighter(types.StatusAttackAir)
	s.Input.AttackAirKind = 2 // fair

	if !AerialEnabled(s) {
		t.Fatal("without the normal-cancel flag every aerial is enabled")
	}

	s.OnFlag(fighter.FlagNormalCancel)
	if AerialEnabled(s) {
		t.Error("fair is not in the enabled set")
	}

	s.SetInt(fighter.IntEnabledAerials, AttackAirFMask|AttackAirBMask)
	if !AerialEnabled(s) {
		t.Error("fair is enabled and unused")
	}

	DisableAerial(s, AttackAirFMask)
	if AerialEnabled(s) {
		t.Error("fair was used in this string")
	}
	if !AerialKindEnabled(s, 3) {
		t.Error("bair is still available")
	}

	s.CancelEnabled = true
	if !AerialEnabled(s) {
		t.Error("once cancelable, the mask is not consulted")
	}
}

func TestResetAerials(t *testing.T) {
	s := newFighter(types.StatusAttackAir)
	DisableAerial(s, AttackAirNMask|AttackAirLwMask)
	DisableAerial(s, AttackAirNMask)

	if got := s.Int(fighter.IntUsedAerials); got != AttackAirNMask|AttackAirLwMask {
		t.Fatalf("used aerials = %b", got)
	}
	ResetAerials(s)
	if got := s.Int(fighter.IntUsedAerials); got != 0 {
		t.Errorf("used aerials after reset = %b, want 0", got)
	}
}
