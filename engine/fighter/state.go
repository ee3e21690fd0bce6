package fighter

import "github.com/nathoo/cancelcore/types"

// Request is a pending status transition.
type Request struct {
	Status    types.StatusKind
	Immediate bool
}

// Contact records collisions for the current status. Hit and Shield persist
// until the status changes or the attack restarts; the Frame fields are
// cleared at the start of every frame.
type Contact struct {
	Hit         bool
	Shield      bool
	FrameHit    bool
	FrameShield bool
}

// State is the in-memory Fighter. The engine writes the exported fields
// directly; the cancel core only goes through the Fighter interface.
type State struct {
	Def types.FighterDef

	Ints   map[types.RegisterID]int
	Floats map[types.RegisterID]float32
	Int64s map[types.RegisterID]int64
	Flags  map[types.RegisterID]bool

	Status     types.StatusKind
	PrevStatus types.StatusKind
	Sit        types.Situation
	Dir        float32 // 1 facing right, -1 facing left

	Input   types.FrameInput
	Contact Contact

	MotionEnd     bool
	CancelEnabled bool

	Pending *Request
	Restart bool

	disabledTerms [types.TermCount]bool
}

// NewState creates a grounded, idle fighter facing right.
func NewState(def types.FighterDef) *State {
	if def.SlowRate == 0 {
		def.SlowRate = 1
	}
	return &State{
		Def:        def,
		Ints:       map[types.RegisterID]int{},
		Floats:     map[types.RegisterID]float32{},
		Int64s:     map[types.RegisterID]int64{},
		Flags:      map[types.RegisterID]bool{},
		Status:     types.StatusWait,
		PrevStatus: types.StatusNone,
		Sit:        types.SituationGround,
		Dir:        1,
	}
}

// Int returns an integer register. Unset registers return 0.
func (s *State) Int(id types.RegisterID) int { return s.Ints[id] }

// SetInt writes an integer register.
func (s *State) SetInt(id types.RegisterID, v int) { s.Ints[id] = v }

// IncInt adds one to an integer register.
func (s *State) IncInt(id types.RegisterID) { s.Ints[id]++ }

// Float returns a float register. Unset registers return 0.
func (s *State) Float(id types.RegisterID) float32 { return s.Floats[id] }

// SetFloat writes a float register.
func (s *State) SetFloat(id types.RegisterID, v float32) { s.Floats[id] = v }

// Int64 returns a 64-bit register. Unset registers return 0.
func (s *State) Int64(id types.RegisterID) int64 { return s.Int64s[id] }

// SetInt64 writes a 64-bit register.
func (s *State) SetInt64(id types.RegisterID, v int64) { s.Int64s[id] = v }

// IsFlag returns a flag register. Unset flags are false.
func (s *State) IsFlag(id types.RegisterID) bool { return s.Flags[id] }

// OnFlag sets a flag register.
func (s *State) OnFlag(id types.RegisterID) { s.Flags[id] = true }

// OffFlag clears a flag register.
func (s *State) OffFlag(id types.RegisterID) { s.Flags[id] = false }

func (s *State) StatusKind() types.StatusKind     { return s.Status }
func (s *State) PrevStatusKind() types.StatusKind { return s.PrevStatus }
func (s *State) Situation() types.Situation       { return s.Sit }
func (s *State) LR() float32                      { return s.Dir }
func (s *State) IsMotionEnd() bool                { return s.MotionEnd }
func (s *State) IsEnableCancel() bool             { return s.CancelEnabled }
func (s *State) CommandCat() types.CommandCat     { return s.Input.Cat }
func (s *State) AttackAirKind() int               { return s.Input.AttackAirKind }
func (s *State) SlowRate() float32                { return s.Def.SlowRate }

// Stick returns the raw left stick axes.
func (s *State) Stick() (x, y float32) { return s.Input.StickX, s.Input.StickY }

// IsWallTouch reports whether this frame's input has the fighter against a
// wall on side.
func (s *State) IsWallTouch(side types.WallSide) bool {
	return side != types.WallNone && s.Input.Wall == side
}

// InHitlag reports whether hitlag frames remain.
func (s *State) InHitlag() bool { return s.Ints[IntHitlagFrames] > 0 }

// IsInflictionStatus reports status-level contact for the given mask.
func (s *State) IsInflictionStatus(mask types.CollisionMask) bool {
	return (mask&types.CollisionHit != 0 && s.Contact.Hit) ||
		(mask&types.CollisionShield != 0 && s.Contact.Shield)
}

// IsInfliction reports contact resolving this frame for the given mask.
func (s *State) IsInfliction(mask types.CollisionMask) bool {
	return (mask&types.CollisionHit != 0 && s.Contact.FrameHit) ||
		(mask&types.CollisionShield != 0 && s.Contact.FrameShield)
}

// IsEnableTransitionTerm reports whether a follow-up is currently allowed.
// Item terms additionally need the matching held-item flag.
func (s *State) IsEnableTransitionTerm(term types.TransitionTerm) bool {
	if term < 0 || term >= types.TermCount || s.disabledTerms[term] {
		return false
	}
	if flag := TermItemFlag(term); flag != "" {
		return s.Flags[flag]
	}
	return true
}

// EnableTransitionTerm re-allows a follow-up.
func (s *State) EnableTransitionTerm(term types.TransitionTerm) {
	if term >= 0 && term < types.TermCount {
		s.disabledTerms[term] = false
	}
}

// UnableTransitionTerm forbids a follow-up until the next status change.
func (s *State) UnableTransitionTerm(term types.TransitionTerm) {
	if term >= 0 && term < types.TermCount {
		s.disabledTerms[term] = true
	}
}

// EnableAllTransitionTerms clears every disabled term. Called on status change.
func (s *State) EnableAllTransitionTerms() {
	s.disabledTerms = [types.TermCount]bool{}
}

// ChangeStatusRequest records a transition. The latest request in a frame wins.
func (s *State) ChangeStatusRequest(status types.StatusKind, immediate bool) {
	s.Pending = &Request{Status: status, Immediate: immediate}
}

// AttackPreProcess restarts the current attack: the engine rewinds the
// motion and clears contact without a status change.
func (s *State) AttackPreProcess() {
	s.Restart = true
}

var _ Fighter = (*State)(nil)
