// Package fighter is the register store and combat-engine surface the cancel
// core reads from and writes to. The Fighter interface is what the core
// borrows for the duration of a call; State is the in-memory implementation
// driven by the simulator and the tests.
package fighter

import "github.com/nathoo/cancelcore/types"

// Register IDs used by the engine and the cancel core.
const (
	FloatCancelTimer     types.RegisterID = "cancel_timer"
	FloatMeter           types.RegisterID = "meter"
	IntUsedGroundNormals types.RegisterID = "used_ground_normals"
	IntUsedAerials       types.RegisterID = "used_aerials"
	IntEnabledAerials    types.RegisterID = "enabled_aerials"
	IntStatusFrame       types.RegisterID = "status_frame"
	IntHitlagFrames      types.RegisterID = "hitlag_frames"
	IntAirFrames         types.RegisterID = "air_frames"
	IntJumpCount         types.RegisterID = "jump_count"
	IntHoldFrames        types.RegisterID = "hold_frames"
	IntAttackAirKind     types.RegisterID = "attack_air_kind"
	Int64LastCancelFrame types.RegisterID = "last_cancel_frame"
	FlagNormalCancel     types.RegisterID = "normal_cancel"
	FlagHaveItemSwing    types.RegisterID = "have_item_swing"
	FlagHaveItemShoot    types.RegisterID = "have_item_shoot"
)

// Fighter is one character's mutable simulation state as seen by the cancel
// core. Implementations are owned by the combat engine; callers must not
// retain a Fighter beyond the call that received it.
type Fighter interface {
	Int(id types.RegisterID) int
	SetInt(id types.RegisterID, v int)
	IncInt(id types.RegisterID)
	Float(id types.RegisterID) float32
	SetFloat(id types.RegisterID, v float32)
	Int64(id types.RegisterID) int64
	SetInt64(id types.RegisterID, v int64)
	IsFlag(id types.RegisterID) bool
	OnFlag(id types.RegisterID)
	OffFlag(id types.RegisterID)

	StatusKind() types.StatusKind
	PrevStatusKind() types.StatusKind
	Situation() types.Situation
	// IsInflictionStatus reports whether the current attack has connected
	// with the given collision kind at any point during this status.
	IsInflictionStatus(mask types.CollisionMask) bool
	// IsInfliction reports whether a collision is resolving this frame.
	IsInfliction(mask types.CollisionMask) bool
	InHitlag() bool
	LR() float32
	IsMotionEnd() bool
	IsEnableCancel() bool
	Stick() (x, y float32)
	// IsWallTouch reports whether the fighter touches a wall on side.
	IsWallTouch(side types.WallSide) bool
	CommandCat() types.CommandCat
	AttackAirKind() int
	SlowRate() float32

	IsEnableTransitionTerm(term types.TransitionTerm) bool
	EnableTransitionTerm(term types.TransitionTerm)
	UnableTransitionTerm(term types.TransitionTerm)
	ChangeStatusRequest(status types.StatusKind, immediate bool)
	AttackPreProcess()
}

// Defs holds the immutable moveset definitions loaded from Lua.
type Defs struct {
	Fighter  types.FighterDef
	Moves    map[types.StatusKind]types.MoveDef
	Rules    []types.RuleDef
	Handlers []types.EventHandler
}

// Move returns the move definition for a status, falling back to the
// built-in motion length when the moveset does not define one.
func (d *Defs) Move(status types.StatusKind) types.MoveDef {
	if m, ok := d.Moves[status]; ok {
		if m.Length == 0 {
			m.Length = DefaultLength(status)
		}
		return m
	}
	return types.MoveDef{Status: status, Length: DefaultLength(status)}
}
