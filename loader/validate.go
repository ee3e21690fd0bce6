package loader

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Known effect types.
var validEffectTypes = map[string]bool{
	"say":                   true,
	"set_flag":              true,
	"set_int":               true,
	"inc_int":               true,
	"reset_int":             true,
	"set_float":             true,
	"add_float":             true,
	"disable_ground_normal": true,
	"disable_aerial":        true,
	"reset_ground_normals":  true,
	"reset_aerials":         true,
	"enable_aerials":        true,
	"normal_cancel":         true,
	"add_meter":             true,
	"unable_term":           true,
	"enable_term":           true,
	"emit_event":            true,
	"stop":                  true,
}

// Known condition types.
var validConditionTypes = map[string]bool{
	"flag_set":       true,
	"flag_not":       true,
	"int_gt":         true,
	"int_lt":         true,
	"int_eq":         true,
	"status_is":      true,
	"prev_status_is": true,
	"situation_is":   true,
	"frame_gt":       true,
	"frame_lt":       true,
	"input_has":      true,
	"stick_dir":      true,
	"normal_used":    true,
	"not":            true,
}

// Known cancel action types.
var validActionTypes = map[string]bool{
	"jump_cancel":    true,
	"jump_exception": true,
	"dash_cancel":    true,
	"exception":      true,
	"chain":          true,
	"wall_jump":      true,
}

// Events the engine emits on its own.
var builtinEvents = map[string]bool{
	"status_enter":  true,
	"hit":           true,
	"block":         true,
	"cancel":        true,
	"chain":         true,
	"meter_changed": true,
}

// validate checks the compiled defs for consistency. Warnings are printed
// to stderr; only errors fail the load.
func validate(defs *fighter.Defs) error {
	ve := check(defs)
	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// check runs every validation and returns the collected problems.
func check(defs *fighter.Defs) *ValidationError {
	ve := &ValidationError{}

	if defs.Fighter.Name == "" {
		ve.Errors = append(ve.Errors, "Fighter.name is required")
	}
	if defs.Fighter.JumpCountMax < 1 {
		ve.Warnings = append(ve.Warnings, "Fighter.jump_count_max < 1: the fighter cannot jump")
	}

	// Moves, in status order so messages are stable.
	statuses := make([]types.StatusKind, 0, len(defs.Moves))
	for status := range defs.Moves {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	for _, status := range statuses {
		validateMove(defs.Move(status), ve)
	}

	// Rules.
	ruleIDs := map[string]bool{}
	for _, rule := range defs.Rules {
		if ruleIDs[rule.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate rule ID %q", rule.ID))
		}
		ruleIDs[rule.ID] = true
		validateRule(rule, defs, ve)
	}

	// Handlers.
	emitted := emittedEvents(defs)
	for _, handler := range defs.Handlers {
		validateConditions(handler.Conditions, ve)
		validateEffects(handler.Effects, ve)
		if !builtinEvents[handler.EventType] && !emitted[handler.EventType] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"handler for %q never fires: no built-in or emitted event has that type", handler.EventType))
		}
	}

	return ve
}

func validateMove(move types.MoveDef, ve *ValidationError) {
	name := fighter.StatusName(move.Status)
	if move.IASA > move.Length && move.Length > 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"move %s: iasa %d exceeds length %d", name, move.IASA, move.Length))
	}
	if move.CancelWindow < 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("move %s: negative cancel_window", name))
	}
	for _, term := range move.Cancel.Normals {
		if !fighter.IsGroundNormalTerm(term) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"move %s: normals contains %s, which is not a ground normal", name, fighter.TermName(term)))
		}
	}
	for _, term := range move.Cancel.Specials {
		if !fighter.IsSpecialTerm(term) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"move %s: specials contains %s, which is not a special", name, fighter.TermName(term)))
		}
	}
	if move.HasCancel && move.CancelWindow == 0 {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(
			"move %s has a cancel table but no cancel_window: it can never cancel", name))
	}
	validateEffects(move.OnEnter, ve)
}

func validateRule(rule types.RuleDef, defs *fighter.Defs, ve *ValidationError) {
	if rule.When.Status == types.StatusNone {
		ve.Errors = append(ve.Errors, fmt.Sprintf("rule %q: When{} needs a status", rule.ID))
	} else if _, ok := defs.Moves[rule.When.Status]; !ok && fighter.IsAttackStatus(rule.When.Status) {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(
			"rule %q applies to %s, which has no move definition", rule.ID, fighter.StatusName(rule.When.Status)))
	}
	if len(rule.Cancels) == 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("rule %q has no cancel actions", rule.ID))
	}

	for _, a := range rule.Cancels {
		if !validActionTypes[a.Type] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("rule %q: unknown cancel type %q", rule.ID, a.Type))
			continue
		}
		switch a.Type {
		case "chain":
			if a.Counter == "" {
				ve.Errors = append(ve.Errors, fmt.Sprintf("rule %q: chain needs a counter", rule.ID))
			}
			if a.Input == 0 {
				ve.Errors = append(ve.Errors, fmt.Sprintf("rule %q: chain needs an input", rule.ID))
			}
			if a.Max <= 0 {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"rule %q: chain max %d never allows a restart", rule.ID, a.Max))
			}
		case "exception":
			if a.Input == 0 {
				ve.Errors = append(ve.Errors, fmt.Sprintf("rule %q: exception needs an input", rule.ID))
			}
			if a.Status == types.StatusNone {
				ve.Errors = append(ve.Errors, fmt.Sprintf("rule %q: exception needs a status", rule.ID))
			}
		}
	}

	validateConditions(rule.Conditions, ve)
	validateEffects(rule.Effects, ve)
}

func validateConditions(conditions []types.Condition, ve *ValidationError) {
	for _, cond := range conditions {
		if !validConditionTypes[cond.Type] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("unknown condition type %q", cond.Type))
		}
		if cond.Type == "not" && cond.Inner != nil {
			validateConditions([]types.Condition{*cond.Inner}, ve)
		}
	}
}

func validateEffects(effects []types.Effect, ve *ValidationError) {
	for _, eff := range effects {
		if !validEffectTypes[eff.Type] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("unknown effect type %q", eff.Type))
		}
		if eff.Type == "emit_event" {
			if event, _ := eff.Params["event"].(string); event == "" {
				ve.Errors = append(ve.Errors, "effect emit_event needs an event type")
			}
		}
	}
}

// emittedEvents lists the event types any emit_event effect can produce.
func emittedEvents(defs *fighter.Defs) map[string]bool {
	out := map[string]bool{}
	collect := func(effects []types.Effect) {
		for _, eff := range effects {
			if eff.Type != "emit_event" {
				continue
			}
			if event, ok := eff.Params["event"].(string); ok {
				out[event] = true
			}
		}
	}
	for _, move := range defs.Moves {
		collect(move.OnEnter)
	}
	for _, rule := range defs.Rules {
		collect(rule.Effects)
	}
	for _, handler := range defs.Handlers {
		collect(handler.Effects)
	}
	return out
}
