package engine

import (
	"github.com/nathoo/cancelcore/engine/cancel"
	"github.com/nathoo/cancelcore/engine/direction"
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

// Follow-ups available from neutral, in the order they are tried.
var (
	specialTerms = []types.TransitionTerm{
		types.TermContSpecialHi, types.TermContSpecialLw,
		types.TermContSpecialS, types.TermContSpecialN,
	}
	groundNormalTerms = []types.TransitionTerm{
		types.TermContAttackS4Start, types.TermContAttackHi4Start, types.TermContAttackLw4Start,
		types.TermContItemSwing4, types.TermContItemShootS4,
		types.TermContAttackS3, types.TermContAttackHi3, types.TermContAttackLw3,
		types.TermContItemSwing3, types.TermContItemShootS3,
		types.TermContItemSwing, types.TermContItemShoot, types.TermContAttack,
	}
	dashNormalTerms = []types.TransitionTerm{
		types.TermContAttackS4Start, types.TermContAttackHi4Start, types.TermContAttackLw4Start,
		types.TermContAttackDash,
	}
)

// actionable statuses accept new actions at any frame.
var actionable = map[types.StatusKind]bool{
	types.StatusWait:       true,
	types.StatusDash:       true,
	types.StatusTurnDash:   true,
	types.StatusRun:        true,
	types.StatusJump:       true,
	types.StatusJumpAerial: true,
	types.StatusFall:       true,
}

// smash maps each smash start and hold to its hold, its release and the
// category that keeps it charging.
var smash = map[types.StatusKind]struct {
	hold, attack types.StatusKind
	cat          types.CommandCat
}{
	types.StatusAttackS4Start:  {types.StatusAttackS4Hold, types.StatusAttackS4, types.CatAttackS4},
	types.StatusAttackHi4Start: {types.StatusAttackHi4Hold, types.StatusAttackHi4, types.CatAttackHi4},
	types.StatusAttackLw4Start: {types.StatusAttackLw4Hold, types.StatusAttackLw4, types.CatAttackLw4},
	types.StatusAttackS4Hold:   {types.StatusAttackS4Hold, types.StatusAttackS4, types.CatAttackS4},
	types.StatusAttackHi4Hold:  {types.StatusAttackHi4Hold, types.StatusAttackHi4, types.CatAttackHi4},
	types.StatusAttackLw4Hold:  {types.StatusAttackLw4Hold, types.StatusAttackLw4, types.CatAttackLw4},
}

// neutralAction starts a new action when the fighter is idle or its move
// has reached its cancelable frames. This is the combat engine's own input
// handling, not a cancel.
func (e *Engine) neutralAction() {
	f := e.Fighter
	if !actionable[f.Status] && !f.CancelEnabled {
		return
	}
	if f.InHitlag() {
		return
	}

	if _, ok := cancel.SpecialCommon(f, f.Sit, specialTerms); ok {
		return
	}

	switch f.Sit {
	case types.SituationGround:
		if f.Input.Cat&types.CatJump != 0 {
			cancel.JumpCommon(f, f.Sit)
			return
		}
		if f.Input.Cat&types.CatTurnDash != 0 && f.Status != types.StatusTurnDash {
			f.ChangeStatusRequest(types.StatusTurnDash, true)
			return
		}
		if f.Input.Cat&types.CatDash != 0 && f.Status != types.StatusDash && f.Status != types.StatusRun {
			f.ChangeStatusRequest(types.StatusDash, true)
			return
		}
		terms := groundNormalTerms
		if f.Status == types.StatusDash || f.Status == types.StatusRun {
			terms = dashNormalTerms
		}
		cancel.NormalCommon(f, terms)

	case types.SituationAir:
		if f.Input.Cat&types.CatJump != 0 && f.Int(fighter.IntJumpCount) < e.Defs.Fighter.JumpCountMax {
			cancel.JumpCommon(f, f.Sit)
			return
		}
		cancel.AerialCommon(f)
	}
}

// naturalTransition ends the current status on its own: landing, smash
// charge release, run turnaround and motion end. These requests take effect
// at the start of the next frame.
func (e *Engine) naturalTransition() {
	f := e.Fighter

	// Landing.
	if f.Sit == types.SituationAir && e.Defs.Fighter.AirTime > 0 &&
		f.Int(fighter.IntAirFrames) >= e.Defs.Fighter.AirTime {
		if f.Status == types.StatusAttackAir {
			f.ChangeStatusRequest(types.StatusLandingAttackAir, false)
		} else {
			f.ChangeStatusRequest(types.StatusLanding, false)
		}
		return
	}

	// Smash charge: holding keeps charging, releasing fires.
	if s, ok := smash[f.Status]; ok && f.Status == s.hold {
		f.IncInt(fighter.IntHoldFrames)
		if f.Input.Cat&s.cat == 0 || f.MotionEnd {
			f.ChangeStatusRequest(s.attack, false)
		}
		return
	}

	// Run follows the stick.
	if f.Status == types.StatusRun {
		switch direction.Command(f, true) {
		case direction.Back, direction.UpBack, direction.DownBack:
			f.ChangeStatusRequest(types.StatusTurnRun, false)
		case direction.Forward, direction.UpForward, direction.DownForward:
		default:
			f.ChangeStatusRequest(types.StatusWait, false)
		}
		return
	}

	if !f.MotionEnd {
		return
	}

	switch f.Status {
	case types.StatusJumpSquat:
		f.ChangeStatusRequest(types.StatusJump, false)
	case types.StatusDash, types.StatusTurnDash:
		if direction.Command(f, true) == direction.Forward {
			f.ChangeStatusRequest(types.StatusRun, false)
		} else {
			f.ChangeStatusRequest(types.StatusWait, false)
		}
	case types.StatusTurnRun:
		f.Dir = -f.Dir
		f.ChangeStatusRequest(types.StatusRun, false)
	default:
		if s, ok := smash[f.Status]; ok {
			if f.Input.Cat&s.cat != 0 {
				f.ChangeStatusRequest(s.hold, false)
			} else {
				f.ChangeStatusRequest(s.attack, false)
			}
			return
		}
		if f.Sit == types.SituationAir {
			f.ChangeStatusRequest(types.StatusFall, false)
		} else {
			f.ChangeStatusRequest(types.StatusWait, false)
		}
	}
}
