package cancel

import (
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

// branch is one step of the dispatcher. enabled reads only the move's
// configuration; try reads the fighter fresh and may request a transition.
type branch struct {
	kind    types.CancelKind
	enabled func(cfg types.CancelSystem) bool
	try     func(f fighter.Fighter, cfg types.CancelSystem) (types.StatusKind, bool)
}

// branches is the fixed priority order: jump, special, aerial, normal.
var branches = []branch{
	{
		kind:    types.CancelJump,
		enabled: func(cfg types.CancelSystem) bool { return cfg.Jump != types.JumpCancelNone },
		try: func(f fighter.Fighter, cfg types.CancelSystem) (types.StatusKind, bool) {
			out := JumpCancel(f, cfg.Jump == types.JumpCancelOnHitOrBlock)
			return out.Status, out.Canceled
		},
	},
	{
		kind:    types.CancelSpecial,
		enabled: func(cfg types.CancelSystem) bool { return len(cfg.Specials) > 0 },
		try: func(f fighter.Fighter, cfg types.CancelSystem) (types.StatusKind, bool) {
			return SpecialCommon(f, f.Situation(), cfg.Specials)
		},
	},
	{
		kind:    types.CancelAerial,
		enabled: func(cfg types.CancelSystem) bool { return cfg.Aerial },
		try: func(f fighter.Fighter, cfg types.CancelSystem) (types.StatusKind, bool) {
			if f.Situation() != types.SituationAir {
				return types.StatusNone, false
			}
			return AerialCommon(f)
		},
	},
	{
		kind:    types.CancelNormal,
		enabled: func(cfg types.CancelSystem) bool { return len(cfg.Normals) > 0 },
		try: func(f fighter.Fighter, cfg types.CancelSystem) (types.StatusKind, bool) {
			if f.Situation() != types.SituationGround {
				return types.StatusNone, false
			}
			return NormalCommon(f, cfg.Normals)
		},
	},
}

// Dispatch runs the move's cancel configuration for this frame. The window
// must be open on hit or block; then the branches are tried in order and
// the first that requests a transition wins. An empty configuration never
// cancels.
func Dispatch(f fighter.Fighter, cfg types.CancelSystem) types.Outcome {
	if !Permissive(true).Open(f) {
		return none(types.CancelNone)
	}
	for _, b := range branches {
		if !b.enabled(cfg) {
			continue
		}
		if status, ok := b.try(f, cfg); ok {
			return canceled(b.kind, status)
		}
	}
	return none(types.CancelNone)
}
