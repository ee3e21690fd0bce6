package resolve

import (
	"errors"
	"testing"

	"github.com/nathoo/cancelcore/types"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		want types.StatusKind
	}{
		{"ATTACK_S3", types.StatusAttackS3},
		{"attack_s3", types.StatusAttackS3},
		{"ftilt", types.StatusAttackS3},
		{"attack lw3", types.StatusAttackLw3},
		{"jump-squat", types.StatusJumpSquat},
		{"idle", types.StatusWait},
	}
	for _, tt := range tests {
		got, err := Status(tt.name)
		if err != nil {
			t.Errorf("Status(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Status(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStatus_NotFound(t *testing.T) {
	_, err := Status("shoryuken")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err.Error() != `unknown status "shoryuken"` {
		t.Errorf("error = %q", err.Error())
	}
}

func TestTerms(t *testing.T) {
	got, err := Terms([]string{"special_n", "CONT_SPECIAL_S", "attack_hi3"})
	if err != nil {
		t.Fatal(err)
	}
	want := []types.TransitionTerm{types.TermContSpecialN, types.TermContSpecialS, types.TermContAttackHi3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("term %d = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := Terms([]string{"special_n", "special_x"}); err == nil {
		t.Error("expected error for unknown term")
	}
}

func TestCat(t *testing.T) {
	got, err := Cat("attack_lw3 | dash")
	if err != nil {
		t.Fatal(err)
	}
	if got != types.CatAttackLw3|types.CatDash {
		t.Errorf("Cat = %b", got)
	}
	if _, err := Cat("grab"); err == nil {
		t.Error("expected error for unknown input")
	}
}

func TestSituation(t *testing.T) {
	if s, err := Situation("Air"); err != nil || s != types.SituationAir {
		t.Errorf("Situation(Air) = %v, %v", s, err)
	}
	if _, err := Situation("water"); err == nil {
		t.Error("expected error")
	}
}

func TestJumpCancel(t *testing.T) {
	tests := []struct {
		in   string
		want types.JumpCancel
	}{
		{"none", types.JumpCancelNone},
		{"", types.JumpCancelNone},
		{"hit", types.JumpCancelOnHit},
		{"2", types.JumpCancelOnHitOrBlock},
	}
	for _, tt := range tests {
		got, err := JumpCancel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("JumpCancel(%q) = %v, %v", tt.in, got, err)
		}
	}
	if _, err := JumpCancel("always"); err == nil {
		t.Error("expected error")
	}
}
