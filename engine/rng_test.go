package engine

import "testing"

func TestRNG_SameSeedSameRolls(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 50; i++ {
		if a.Blocked(50) != b.Blocked(50) {
			t.Fatalf("roll %d differs for the same seed", i)
		}
	}
}

func TestRNG_Blocked_Extremes(t *testing.T) {
	rng := NewRNG(7)

	for i := 0; i < 10; i++ {
		if rng.Blocked(0) {
			t.Fatal("0% block chance blocked")
		}
		if !rng.Blocked(100) {
			t.Fatal("100% block chance hit")
		}
	}
	if rng.Position() != 0 {
		t.Errorf("extreme chances should not roll, position = %d", rng.Position())
	}
}

func TestRNG_Blocked_Distribution(t *testing.T) {
	rng := NewRNG(1)
	blocked := 0
	for i := 0; i < 1000; i++ {
		if rng.Blocked(30) {
			blocked++
		}
	}
	if blocked < 200 || blocked > 400 {
		t.Errorf("30%% block chance blocked %d of 1000", blocked)
	}
	if rng.Position() != 1000 {
		t.Errorf("position = %d, want 1000", rng.Position())
	}
}
