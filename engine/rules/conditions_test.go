package rules

import (
	"testing"

	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/engine/usage"
	"github.com/nathoo/cancelcore/types"
)

func testFighter() *fighter.State {
	s := fighter.NewState(types.FighterDef{Name: "test"})
	s.Status = types.StatusAttackLw3
	s.PrevStatus = types.StatusAttackS3
	s.OnFlag("install")
	s.SetInt("lw3_chain", 2)
	s.SetInt(fighter.IntStatusFrame, 10)
	s.SetInt(fighter.IntUsedGroundNormals, usage.AttackS3Mask)
	s.Input.Cat = types.CatAttackLw3 | types.CatDash
	s.Input.StickX = 1
	return s
}

func TestEvalCondition(t *testing.T) {
	s := testFighter()
	tests := []struct {
		name string
		cond types.Condition
		want bool
	}{
		{"flag_set true", types.Condition{Type: "flag_set", Params: map[string]any{"flag": "install"}}, true},
		{"flag_set false", types.Condition{Type: "flag_set", Params: map[string]any{"flag": "other"}}, false},
		{"flag_not", types.Condition{Type: "flag_not", Params: map[string]any{"flag": "other"}}, true},
		{"int_gt", types.Condition{Type: "int_gt", Params: map[string]any{"register": "lw3_chain", "value": 1}}, true},
		{"int_gt equal", types.Condition{Type: "int_gt", Params: map[string]any{"register": "lw3_chain", "value": 2}}, false},
		{"int_lt float", types.Condition{Type: "int_lt", Params: map[string]any{"register": "lw3_chain", "value": float64(3)}}, true},
		{"int_eq", types.Condition{Type: "int_eq", Params: map[string]any{"register": "lw3_chain", "value": 2}}, true},
		{"status_is", types.Condition{Type: "status_is", Params: map[string]any{"status": types.StatusAttackLw3}}, true},
		{"status_is other", types.Condition{Type: "status_is", Params: map[string]any{"status": types.StatusAttackS3}}, false},
		{"prev_status_is", types.Condition{Type: "prev_status_is", Params: map[string]any{"status": types.StatusAttackS3}}, true},
		{"situation_is", types.Condition{Type: "situation_is", Params: map[string]any{"situation": types.SituationGround}}, true},
		{"situation_is air", types.Condition{Type: "situation_is", Params: map[string]any{"situation": types.SituationAir}}, false},
		{"frame_gt", types.Condition{Type: "frame_gt", Params: map[string]any{"value": 9}}, true},
		{"frame_lt", types.Condition{Type: "frame_lt", Params: map[string]any{"value": 10}}, false},
		{"input_has", types.Condition{Type: "input_has", Params: map[string]any{"input": types.CatDash}}, true},
		{"input_has missing", types.Condition{Type: "input_has", Params: map[string]any{"input": types.CatJump}}, false},
		{"stick_dir", types.Condition{Type: "stick_dir", Params: map[string]any{"dir": 6, "facing": true}}, true},
		{"stick_dir wrong", types.Condition{Type: "stick_dir", Params: map[string]any{"dir": 4}}, false},
		{"normal_used", types.Condition{Type: "normal_used", Params: map[string]any{"mask": usage.AttackS3Mask}}, true},
		{"normal_used partly", types.Condition{Type: "normal_used", Params: map[string]any{"mask": usage.AttackS3Mask | usage.AttackHi3Mask}}, false},
		{"normal_used empty mask", types.Condition{Type: "normal_used", Params: map[string]any{"mask": 0}}, false},
		{"unknown", types.Condition{Type: "bogus"}, false},
	}
	for _, tt := range tests {
		if got := EvalCondition(tt.cond, s); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEvalCondition_Not(t *testing.T) {
	s := testFighter()
	inner := types.Condition{Type: "flag_set", Params: map[string]any{"flag": "install"}}
	not := types.Condition{Type: "not", Negate: true, Inner: &inner}
	if EvalCondition(not, s) {
		t.Error("not(flag_set install) should be false")
	}
	if !EvalCondition(types.Condition{Type: "not"}, s) {
		t.Error("not with no inner condition is vacuously true")
	}
}

func TestEvalAllConditions(t *testing.T) {
	s := testFighter()
	if !EvalAllConditions(nil, s) {
		t.Error("empty list should be true")
	}
	conds := []types.Condition{
		{Type: "flag_set", Params: map[string]any{"flag": "install"}},
		{Type: "int_eq", Params: map[string]any{"register": "lw3_chain", "value": 0}},
	}
	if EvalAllConditions(conds, s) {
		t.Error("second condition fails, list should be false")
	}
}
