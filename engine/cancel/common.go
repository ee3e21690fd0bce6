package cancel

import (
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/engine/usage"
	"github.com/nathoo/cancelcore/types"
)

// JumpCommon requests the jump start for the given situation when jump is
// pressed: a jump squat on the ground, a double jump in the air. Other
// situations do not jump.
func JumpCommon(f fighter.Fighter, sit types.Situation) (types.StatusKind, bool) {
	if f.CommandCat()&types.CatJump == 0 {
		return types.StatusNone, false
	}
	var status types.StatusKind
	var term types.TransitionTerm
	switch sit {
	case types.SituationGround:
		status, term = types.StatusJumpSquat, types.TermContJumpSquat
	case types.SituationAir:
		status, term = types.StatusJumpAerial, types.TermContJumpAerial
	default:
		return types.StatusNone, false
	}
	if !f.IsEnableTransitionTerm(term) {
		return types.StatusNone, false
	}
	f.ChangeStatusRequest(status, true)
	return status, true
}

// SpecialCommon requests the first special term, in caller order, that is
// enabled and whose command category is pressed.
func SpecialCommon(f fighter.Fighter, sit types.Situation, terms []types.TransitionTerm) (types.StatusKind, bool) {
	if sit != types.SituationGround && sit != types.SituationAir {
		return types.StatusNone, false
	}
	return firstTerm(f, terms, fighter.IsSpecialTerm)
}

// AerialCommon requests an aerial when the stick selects one that is still
// available in the current string.
func AerialCommon(f fighter.Fighter) (types.StatusKind, bool) {
	if f.CommandCat()&types.CatAttackAir == 0 || f.AttackAirKind() == 0 {
		return types.StatusNone, false
	}
	if !f.IsEnableTransitionTerm(types.TermContAttackAir) || !usage.AerialEnabled(f) {
		return types.StatusNone, false
	}
	f.ChangeStatusRequest(types.StatusAttackAir, true)
	return types.StatusAttackAir, true
}

// NormalCommon requests the first ground-normal term, in caller order, that
// is enabled and whose command category is pressed. Terms already used in
// the string are disabled by the usage tracker and are skipped here.
func NormalCommon(f fighter.Fighter, terms []types.TransitionTerm) (types.StatusKind, bool) {
	return firstTerm(f, terms, fighter.IsGroundNormalTerm)
}

func firstTerm(f fighter.Fighter, terms []types.TransitionTerm, allowed func(types.TransitionTerm) bool) (types.StatusKind, bool) {
	cat := f.CommandCat()
	for _, term := range terms {
		if !allowed(term) || !f.IsEnableTransitionTerm(term) {
			continue
		}
		if cat&fighter.TermCat(term) == 0 {
			continue
		}
		status := fighter.TermStatus(term)
		f.ChangeStatusRequest(status, true)
		return status, true
	}
	return types.StatusNone, false
}
