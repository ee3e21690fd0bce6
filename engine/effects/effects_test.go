package effects

import (
	"testing"

	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/engine/usage"
	"github.com/nathoo/cancelcore/types"
)

func testSetup() (*fighter.State, *fighter.Defs) {
	defs := &fighter.Defs{
		Fighter: types.FighterDef{Name: "test", MeterMax: 100},
	}
	f := fighter.NewState(defs.Fighter)
	f.Status = types.StatusAttackS3
	return f, defs
}

func TestApply_Say(t *testing.T) {
	f, defs := testSetup()
	effects := []types.Effect{
		{Type: "say", Params: map[string]any{"text": "Hello, world!"}},
	}

	_, output := Apply(f, defs, effects)
	if len(output) != 1 || output[0] != "Hello, world!" {
		t.Errorf("expected [Hello, world!], got %v", output)
	}
}

func TestApply_Say_TemplateInterpolation(t *testing.T) {
	f, defs := testSetup()
	effects := []types.Effect{
		{Type: "say", Params: map[string]any{"text": "{status} on the {situation}"}},
	}

	_, output := Apply(f, defs, effects)
	expected := "ATTACK_S3 on the ground"
	if len(output) != 1 || output[0] != expected {
		t.Errorf("expected %q, got %v", expected, output)
	}
}

func TestApply_Registers(t *testing.T) {
	f, defs := testSetup()
	effects := []types.Effect{
		{Type: "set_flag", Params: map[string]any{"flag": "install", "value": true}},
		{Type: "set_int", Params: map[string]any{"register": "a", "value": 4}},
		{Type: "inc_int", Params: map[string]any{"register": "a"}},
		{Type: "inc_int", Params: map[string]any{"register": "b", "amount": float64(3)}},
		{Type: "set_float", Params: map[string]any{"register": "c", "value": 1.5}},
		{Type: "add_float", Params: map[string]any{"register": "c", "amount": float64(0.25)}},
		{Type: "add_float", Params: map[string]any{"register": "e", "amount": -2}},
		{Type: "set_int", Params: map[string]any{"register": "d", "value": 9}},
		{Type: "reset_int", Params: map[string]any{"register": "d"}},
	}

	Apply(f, defs, effects)

	if !f.IsFlag("install") {
		t.Error("install flag not set")
	}
	if f.Int("a") != 5 {
		t.Errorf("a = %d, want 5", f.Int("a"))
	}
	if f.Int("b") != 3 {
		t.Errorf("b = %d, want 3", f.Int("b"))
	}
	if f.Float("c") != 1.75 {
		t.Errorf("c = %v, want 1.75", f.Float("c"))
	}
	if f.Float("e") != -2 {
		t.Errorf("e = %v, want -2", f.Float("e"))
	}
	if f.Int("d") != 0 {
		t.Errorf("d = %d, want 0", f.Int("d"))
	}

	Apply(f, defs, []types.Effect{{Type: "set_flag", Params: map[string]any{"flag": "install", "value": false}}})
	if f.IsFlag("install") {
		t.Error("install flag not cleared")
	}
}

func TestApply_Usage(t *testing.T) {
	f, defs := testSetup()
	effects := []types.Effect{
		{Type: "disable_ground_normal", Params: map[string]any{"mask": usage.AttackS3Mask}},
		{Type: "disable_aerial", Params: map[string]any{"mask": usage.AttackAirNMask}},
		{Type: "enable_aerials", Params: map[string]any{"mask": usage.AttackAirNMask | usage.AttackAirFMask}},
		{Type: "normal_cancel", Params: map[string]any{"value": true}},
	}
	Apply(f, defs, effects)

	if f.Int(fighter.IntUsedGroundNormals) != usage.AttackS3Mask {
		t.Errorf("used ground normals = %b", f.Int(fighter.IntUsedGroundNormals))
	}
	if f.Int(fighter.IntUsedAerials) != usage.AttackAirNMask {
		t.Errorf("used aerials = %b", f.Int(fighter.IntUsedAerials))
	}
	if f.Int(fighter.IntEnabledAerials) != usage.AttackAirNMask|usage.AttackAirFMask {
		t.Errorf("enabled aerials = %b", f.Int(fighter.IntEnabledAerials))
	}
	if !f.IsFlag(fighter.FlagNormalCancel) {
		t.Error("normal cancel flag not set")
	}

	Apply(f, defs, []types.Effect{
		{Type: "reset_ground_normals", Params: map[string]any{"ignore": true}},
		{Type: "reset_aerials"},
	})
	if f.Int(fighter.IntUsedGroundNormals) != 0 || f.Int(fighter.IntUsedAerials) != 0 {
		t.Error("masks not reset")
	}
}

func TestApply_AddMeter(t *testing.T) {
	f, defs := testSetup()

	events, _ := Apply(f, defs, []types.Effect{{Type: "add_meter", Params: map[string]any{"amount": 80}}})
	if len(events) != 1 || events[0].Type != "meter_changed" {
		t.Errorf("events = %v", events)
	}
	Apply(f, defs, []types.Effect{{Type: "add_meter", Params: map[string]any{"amount": 80}}})
	if got := f.Float(fighter.FloatMeter); got != 100 {
		t.Errorf("meter = %v, want clamped to 100", got)
	}
	Apply(f, defs, []types.Effect{{Type: "add_meter", Params: map[string]any{"amount": -250}}})
	if got := f.Float(fighter.FloatMeter); got != 0 {
		t.Errorf("meter = %v, want clamped to 0", got)
	}
}

func TestApply_Terms(t *testing.T) {
	f, defs := testSetup()
	Apply(f, defs, []types.Effect{{Type: "unable_term", Params: map[string]any{"term": types.TermContSpecialN}}})
	if f.IsEnableTransitionTerm(types.TermContSpecialN) {
		t.Error("term still enabled")
	}
	Apply(f, defs, []types.Effect{{Type: "enable_term", Params: map[string]any{"term": types.TermContSpecialN}}})
	if !f.IsEnableTransitionTerm(types.TermContSpecialN) {
		t.Error("term still disabled")
	}
}

func TestApply_Stop(t *testing.T) {
	f, defs := testSetup()
	effects := []types.Effect{
		{Type: "say", Params: map[string]any{"text": "first"}},
		{Type: "stop"},
		{Type: "say", Params: map[string]any{"text": "second"}},
	}
	_, output := Apply(f, defs, effects)
	if len(output) != 1 {
		t.Errorf("expected output to stop after first say, got %v", output)
	}
}

func TestApply_EmitEventAndUnknown(t *testing.T) {
	f, defs := testSetup()
	events, output := Apply(f, defs, []types.Effect{
		{Type: "emit_event", Params: map[string]any{"event": "install_on"}},
		{Type: "warp_drive"},
	})
	if len(events) != 1 || events[0].Type != "install_on" {
		t.Errorf("events = %v", events)
	}
	if len(output) != 0 {
		t.Errorf("output = %v", output)
	}
}
