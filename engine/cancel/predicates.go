package cancel

import (
	"github.com/nathoo/cancelcore/engine/direction"
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

func none(kind types.CancelKind) types.Outcome {
	return types.Outcome{Kind: kind, Status: types.StatusNone}
}

func canceled(kind types.CancelKind, status types.StatusKind) types.Outcome {
	return types.Outcome{Canceled: true, Kind: kind, Status: status}
}

// JumpCancel jumps out of the current attack once it has hit, or been
// blocked when onBlock is set. Any contact is enough; the jump itself only
// needs the jump input.
func JumpCancel(f fighter.Fighter, onBlock bool) types.Outcome {
	if !Permissive(onBlock).Open(f) {
		return none(types.CancelJump)
	}
	if status, ok := JumpCommon(f, f.Situation()); ok {
		return canceled(types.CancelJump, status)
	}
	return none(types.CancelJump)
}

// JumpException jumps out of the current attack regardless of contact,
// timer or hitlag. It still goes through JumpCommon, so it needs jump input
// in the command categories and the jump transition term enabled.
func JumpException(f fighter.Fighter) types.Outcome {
	if status, ok := JumpCommon(f, f.Situation()); ok {
		return canceled(types.CancelJumpException, status)
	}
	return none(types.CancelJumpException)
}

// DashCancel dashes out of the current attack. The dash command and a
// facing-relative stick direction must both agree: forward (6) for a dash,
// back (4) for a turn dash when reverse is set.
func DashCancel(f fighter.Fighter, onBlock, reverse bool) types.Outcome {
	dir, cat, status := direction.Forward, types.CatDash, types.StatusDash
	if reverse {
		dir, cat, status = direction.Back, types.CatTurnDash, types.StatusTurnDash
	}
	if !Permissive(onBlock).Open(f) {
		return none(types.CancelDash)
	}
	if f.CommandCat()&cat == 0 || direction.Command(f, true) != dir {
		return none(types.CancelDash)
	}
	f.ChangeStatusRequest(status, true)
	return canceled(types.CancelDash, status)
}

// Exception cancels into an arbitrary status when cat is pressed. With
// onHit the attack must have hit or been blocked; without it only the input
// is checked.
func Exception(f fighter.Fighter, status types.StatusKind, cat types.CommandCat, onHit bool) types.Outcome {
	if onHit && !Permissive(true).Open(f) {
		return none(types.CancelException)
	}
	if cat == 0 || f.CommandCat()&cat == 0 {
		return none(types.CancelException)
	}
	f.ChangeStatusRequest(status, true)
	return canceled(types.CancelException, status)
}

// Chain restarts the current attack when cat is pressed, at most max times
// per string. The counter register is incremented on every restart and is
// never decremented here. Canceled reports "continue".
func Chain(f fighter.Fighter, cat types.CommandCat, onHit bool, counter types.RegisterID, maxCount int) types.Outcome {
	out := none(types.CancelChain)
	out.Counter = f.Int(counter)
	if onHit && !Narrow().Open(f) {
		return out
	}
	count := f.Int(counter) + 1
	if cat == 0 || f.CommandCat()&cat == 0 || count > maxCount {
		return out
	}
	f.AttackPreProcess()
	f.IncInt(counter)
	out.Canceled = true
	out.Status = f.StatusKind()
	out.Counter = f.Int(counter)
	return out
}

// WallJump jumps off a wall the fighter is touching when the wall jump
// command points away from it. The right wall is checked first; only when
// it is not touched does the left wall count.
func WallJump(f fighter.Fighter) types.Outcome {
	var away types.CommandCat
	switch {
	case f.IsWallTouch(types.WallRight):
		away = types.CatWallJumpLeft
	case f.IsWallTouch(types.WallLeft):
		away = types.CatWallJumpRight
	default:
		return none(types.CancelWallJump)
	}
	if f.CommandCat()&away == 0 {
		return none(types.CancelWallJump)
	}
	f.ChangeStatusRequest(types.StatusWallJump, true)
	return canceled(types.CancelWallJump, types.StatusWallJump)
}
