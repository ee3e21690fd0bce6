package rules

import (
	"sort"

	"github.com/nathoo/cancelcore/engine/cancel"
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

// Evaluate runs the scripted rules for the fighter's current status and
// returns the first successful cancel together with the rule that produced
// it. Rules are ranked by specificity, then priority, then source order; a
// rule's cancels are tried in the order they were written.
func Evaluate(f fighter.Fighter, defs *fighter.Defs) (types.Outcome, *types.RuleDef) {
	// Filter: When match + conditions.
	var candidates []types.RuleDef
	for _, rule := range defs.Rules {
		if !Matches(rule.When, f) {
			continue
		}
		if !EvalAllConditions(rule.Conditions, f) {
			continue
		}
		candidates = append(candidates, rule)
	}

	// Rank: specificity (desc) → priority (desc) → source order (asc).
	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := Specificity(candidates[i]), Specificity(candidates[j])
		if si != sj {
			return si > sj
		}
		if candidates[i].When.Priority != candidates[j].When.Priority {
			return candidates[i].When.Priority > candidates[j].When.Priority
		}
		return candidates[i].SourceOrder < candidates[j].SourceOrder
	})

	for i := range candidates {
		for _, action := range candidates[i].Cancels {
			if out := Run(f, action); out.Canceled {
				return out, &candidates[i]
			}
		}
	}
	return types.Outcome{Status: types.StatusNone}, nil
}

// Run performs one scripted cancel action.
func Run(f fighter.Fighter, a types.CancelAction) types.Outcome {
	switch a.Type {
	case "jump_cancel":
		return cancel.JumpCancel(f, a.OnBlock)
	case "jump_exception":
		return cancel.JumpException(f)
	case "dash_cancel":
		return cancel.DashCancel(f, a.OnBlock, a.Reverse)
	case "exception":
		return cancel.Exception(f, a.Status, a.Input, a.OnHit)
	case "chain":
		return cancel.Chain(f, a.Input, a.OnHit, a.Counter, a.Max)
	case "wall_jump":
		return cancel.WallJump(f)
	default:
		return types.Outcome{Status: types.StatusNone}
	}
}
