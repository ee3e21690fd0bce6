// Package effects implements centralized register mutation via the Apply
// function. Every effect type is one atomic operation. No logic in effects.
package effects

import (
	"fmt"
	"strings"

	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/engine/usage"
	"github.com/nathoo/cancelcore/types"
)

// Apply applies a list of effects to the fighter, mutating it.
// Returns events emitted and output text collected.
func Apply(f fighter.Fighter, defs *fighter.Defs, effects []types.Effect) ([]types.Event, []string) {
	var events []types.Event
	var output []string

	for _, eff := range effects {
		switch eff.Type {
		case "say":
			text, _ := eff.Params["text"].(string)
			output = append(output, interpolate(text, f))

		case "set_flag":
			id := register(eff.Params["flag"])
			value, _ := eff.Params["value"].(bool)
			if value {
				f.OnFlag(id)
			} else {
				f.OffFlag(id)
			}

		case "set_int":
			f.SetInt(register(eff.Params["register"]), toInt(eff.Params["value"]))

		case "inc_int":
			id := register(eff.Params["register"])
			if amount, ok := eff.Params["amount"]; ok {
				fighter.AddInt(f, id, toInt(amount))
			} else {
				f.IncInt(id)
			}

		case "reset_int":
			fighter.ResetInt(f, register(eff.Params["register"]))

		case "set_float":
			f.SetFloat(register(eff.Params["register"]), toFloat(eff.Params["value"]))

		case "add_float":
			fighter.AddFloat(f, register(eff.Params["register"]), toFloat(eff.Params["amount"]))

		case "disable_ground_normal":
			usage.DisableGroundNormal(f, toInt(eff.Params["mask"]))

		case "disable_aerial":
			usage.DisableAerial(f, toInt(eff.Params["mask"]))

		case "reset_ground_normals":
			ignore, _ := eff.Params["ignore"].(bool)
			usage.ResetGroundNormals(f, ignore)

		case "reset_aerials":
			usage.ResetAerials(f)

		case "enable_aerials":
			f.SetInt(fighter.IntEnabledAerials, toInt(eff.Params["mask"]))

		case "normal_cancel":
			if value, _ := eff.Params["value"].(bool); value {
				f.OnFlag(fighter.FlagNormalCancel)
			} else {
				f.OffFlag(fighter.FlagNormalCancel)
			}

		case "add_meter":
			amount := toFloat(eff.Params["amount"])
			fighter.UpdateMeter(f, fighter.FloatMeter, amount, defs.Fighter.MeterMax)
			events = append(events, types.Event{
				Type: "meter_changed",
				Data: map[string]any{"amount": amount, "meter": f.Float(fighter.FloatMeter)},
			})

		case "unable_term":
			if term, ok := eff.Params["term"].(types.TransitionTerm); ok {
				f.UnableTransitionTerm(term)
			}

		case "enable_term":
			if term, ok := eff.Params["term"].(types.TransitionTerm); ok {
				f.EnableTransitionTerm(term)
			}

		case "emit_event":
			event, _ := eff.Params["event"].(string)
			events = append(events, types.Event{
				Type: event,
				Data: map[string]any{},
			})

		case "stop":
			return events, output

		default:
			// Unknown effect type: ignore silently.
		}
	}

	return events, output
}

// interpolate replaces template variables in text.
func interpolate(text string, f fighter.Fighter) string {
	if !strings.Contains(text, "{") {
		return text
	}
	r := strings.NewReplacer(
		"{status}", fighter.StatusName(f.StatusKind()),
		"{prev_status}", fighter.StatusName(f.PrevStatusKind()),
		"{situation}", fighter.SituationName(f.Situation()),
		"{meter}", fmt.Sprintf("%g", f.Float(fighter.FloatMeter)),
	)
	return r.Replace(text)
}

func register(v any) types.RegisterID {
	switch id := v.(type) {
	case types.RegisterID:
		return id
	case string:
		return types.RegisterID(id)
	default:
		return ""
	}
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case int64:
		return int(n)
	default:
		return 0
	}
}

func toFloat(v any) float32 {
	switch n := v.(type) {
	case float32:
		return n
	case float64:
		return float32(n)
	case int:
		return float32(n)
	default:
		return 0
	}
}
