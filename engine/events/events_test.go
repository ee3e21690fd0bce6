package events

import (
	"testing"

	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

func testDefs() *fighter.Defs {
	return &fighter.Defs{
		Fighter: types.FighterDef{Name: "test"},
		Handlers: []types.EventHandler{
			{
				EventType: "status_enter",
				Effects: []types.Effect{
					{Type: "reset_int", Params: map[string]any{"register": "lw3_chain"}},
				},
			},
			{
				EventType: "hit",
				Conditions: []types.Condition{
					{Type: "flag_set", Params: map[string]any{"flag": "install"}},
				},
				Effects: []types.Effect{
					{Type: "say", Params: map[string]any{"text": "Install hit!"}},
				},
			},
			{
				EventType: "status_enter",
				Effects: []types.Effect{
					{Type: "inc_int", Params: map[string]any{"register": "entries"}},
				},
			},
		},
	}
}

func TestDispatch_MatchesEventType(t *testing.T) {
	defs := testDefs()
	f := fighter.NewState(defs.Fighter)

	events := []types.Event{
		{Type: "status_enter", Data: map[string]any{"status": "ATTACK_LW3"}},
	}

	effs := Dispatch(events, f, defs)
	if len(effs) != 2 {
		t.Fatalf("expected 2 effects from 2 matching handlers, got %d", len(effs))
	}
	if effs[0].Type != "reset_int" {
		t.Errorf("expected reset_int effect, got %q", effs[0].Type)
	}
	if effs[1].Type != "inc_int" {
		t.Errorf("expected inc_int effect, got %q", effs[1].Type)
	}
}

func TestDispatch_ConditionsFilter(t *testing.T) {
	defs := testDefs()
	f := fighter.NewState(defs.Fighter)
	events := []types.Event{{Type: "hit"}}

	if effs := Dispatch(events, f, defs); len(effs) != 0 {
		t.Errorf("expected no effects without the flag, got %d", len(effs))
	}

	f.OnFlag("install")
	if effs := Dispatch(events, f, defs); len(effs) != 1 {
		t.Errorf("expected 1 effect with the flag, got %d", len(effs))
	}
}

func TestDispatch_NoMatch(t *testing.T) {
	defs := testDefs()
	f := fighter.NewState(defs.Fighter)

	effs := Dispatch([]types.Event{{Type: "block"}}, f, defs)
	if len(effs) != 0 {
		t.Errorf("expected 0 effects, got %d", len(effs))
	}
}

func TestDispatch_MultipleEvents(t *testing.T) {
	defs := testDefs()
	f := fighter.NewState(defs.Fighter)
	f.OnFlag("install")

	events := []types.Event{{Type: "status_enter"}, {Type: "hit"}}
	effs := Dispatch(events, f, defs)
	if len(effs) != 3 {
		t.Errorf("expected 3 effects, got %d", len(effs))
	}
}
