package snapshot

import (
	"strings"
	"testing"

	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

func testFighter() *fighter.State {
	f := fighter.NewState(types.FighterDef{Name: "Ryu"})
	f.Status = types.StatusAttackLw3
	f.PrevStatus = types.StatusAttackS3
	f.SetInt(fighter.IntUsedGroundNormals, 6)
	f.SetFloat(fighter.FloatCancelTimer, 2.5)
	f.SetInt64(fighter.Int64LastCancelFrame, 41)
	f.OnFlag(fighter.FlagNormalCancel)
	f.SetInt("combo.count", 3)
	return f
}

func TestSnapshot_Fields(t *testing.T) {
	doc, err := Snapshot(testFighter(), 42)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{"fighter", "Ryu"},
		{"frame", "42"},
		{"status", "ATTACK_LW3"},
		{"prev_status", "ATTACK_S3"},
		{"situation", "ground"},
		{"lr", "1"},
		{"ints.used_ground_normals", "6"},
		{"floats.cancel_timer", "2.5"},
		{"int64s.last_cancel_frame", "41"},
		{"flags.normal_cancel", "true"},
		{`ints.combo\.count`, "3"},
	}
	for _, tt := range tests {
		got, ok := Query(doc, tt.path)
		if !ok {
			t.Errorf("path %q missing in %s", tt.path, doc)
			continue
		}
		if got != tt.want {
			t.Errorf("%s = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestQuery_Missing(t *testing.T) {
	doc, err := Snapshot(testFighter(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := Query(doc, "ints.nope"); ok {
		t.Error("expected missing path")
	}
}

func TestSnapshot_Deterministic(t *testing.T) {
	f := testFighter()
	a, _ := Snapshot(f, 1)
	b, _ := Snapshot(f, 1)
	if a != b {
		t.Errorf("snapshots differ:\n%s\n%s", a, b)
	}
}

func TestPretty(t *testing.T) {
	doc, _ := Snapshot(testFighter(), 1)
	if !strings.Contains(Pretty(doc), "\n") {
		t.Error("pretty output should be multi-line")
	}
}
