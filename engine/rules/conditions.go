// Package rules evaluates the scripted cancel rules of a moveset against a
// fighter, once per frame, before the move's own cancel configuration.
package rules

import (
	"github.com/nathoo/cancelcore/engine/direction"
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/engine/usage"
	"github.com/nathoo/cancelcore/types"
)

// EvalCondition evaluates a single condition against the fighter.
func EvalCondition(c types.Condition, f fighter.Fighter) bool {
	switch c.Type {
	case "flag_set":
		return f.IsFlag(register(c.Params["flag"]))

	case "flag_not":
		return !f.IsFlag(register(c.Params["flag"]))

	case "int_gt":
		return f.Int(register(c.Params["register"])) > toInt(c.Params["value"])

	case "int_lt":
		return f.Int(register(c.Params["register"])) < toInt(c.Params["value"])

	case "int_eq":
		return f.Int(register(c.Params["register"])) == toInt(c.Params["value"])

	case "status_is":
		status, ok := c.Params["status"].(types.StatusKind)
		return ok && f.StatusKind() == status

	case "prev_status_is":
		status, ok := c.Params["status"].(types.StatusKind)
		return ok && f.PrevStatusKind() == status

	case "situation_is":
		sit, ok := c.Params["situation"].(types.Situation)
		return ok && f.Situation() == sit

	case "frame_gt":
		return f.Int(fighter.IntStatusFrame) > toInt(c.Params["value"])

	case "frame_lt":
		return f.Int(fighter.IntStatusFrame) < toInt(c.Params["value"])

	case "input_has":
		cat, ok := c.Params["input"].(types.CommandCat)
		return ok && cat != 0 && f.CommandCat()&cat != 0

	case "stick_dir":
		facing, _ := c.Params["facing"].(bool)
		return int(direction.Command(f, facing)) == toInt(c.Params["dir"])

	case "normal_used":
		return usage.IsGroundNormalUsed(f, toInt(c.Params["mask"]))

	case "not":
		if c.Inner == nil {
			return true
		}
		return !EvalCondition(*c.Inner, f)

	default:
		return false
	}
}

// EvalAllConditions returns true if all conditions pass (AND logic).
// An empty condition list is vacuously true.
func EvalAllConditions(conditions []types.Condition, f fighter.Fighter) bool {
	for _, c := range conditions {
		if !EvalCondition(c, f) {
			return false
		}
	}
	return true
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

// toInt converts an any value to int, handling float64 from Lua.
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
