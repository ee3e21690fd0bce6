// Package types defines the shared data structures for the cancelcore engine.
// This package contains only type definitions and constants: no logic, no methods.
package types

// StatusKind identifies the action a fighter is currently performing.
type StatusKind int

const (
	StatusNone StatusKind = iota - 1
	StatusWait
	StatusDash
	StatusTurnDash
	StatusRun
	StatusTurnRun
	StatusJumpSquat
	StatusJump
	StatusJumpAerial
	StatusFall
	StatusLanding
	StatusLandingAttackAir
	StatusAttack
	StatusAttack100
	StatusAttackDash
	StatusAttackS3
	StatusAttackHi3
	StatusAttackLw3
	StatusAttackS4Start
	StatusAttackS4Hold
	StatusAttackS4
	StatusAttackHi4Start
	StatusAttackHi4Hold
	StatusAttackHi4
	StatusAttackLw4Start
	StatusAttackLw4Hold
	StatusAttackLw4
	StatusAttackAir
	StatusSpecialN
	StatusSpecialS
	StatusSpecialHi
	StatusSpecialLw
	StatusItemSwing
	StatusItemSwingS3
	StatusItemSwingS4
	StatusItemShoot
	StatusItemShootS3
	StatusItemShootS4
	StatusWallJump
)

// Situation is the coarse grounded/airborne discriminant.
type Situation int

const (
	SituationGround Situation = iota
	SituationAir
	SituationCliff
)

// CommandCat is the bitmask of command categories recognised this frame.
type CommandCat uint32

const (
	CatAttackN CommandCat = 1 << iota
	CatAttackS3
	CatAttackHi3
	CatAttackLw3
	CatAttackS4
	CatAttackHi4
	CatAttackLw4
	CatAttackAir
	CatSpecialN
	CatSpecialS
	CatSpecialHi
	CatSpecialLw
	CatJump
	CatDash
	CatTurnDash
	CatWallJumpLeft  // wall jump pushing off toward the left
	CatWallJumpRight // wall jump pushing off toward the right
)

// WallSide is the side on which the fighter's body touches a wall.
type WallSide int

const (
	WallNone WallSide = iota
	WallLeft
	WallRight
)

// CollisionMask selects which kinds of contact an infliction query considers.
type CollisionMask int

const (
	CollisionHit CollisionMask = 1 << iota
	CollisionShield
	CollisionAll = CollisionHit | CollisionShield
)

// TransitionTerm is a follow-up action the fighter may currently transition into.
type TransitionTerm int

const (
	TermContAttack TransitionTerm = iota
	TermContItemSwing
	TermContItemShoot
	TermContAttackS3
	TermContItemSwing3
	TermContItemShootS3
	TermContAttackHi3
	TermContAttackLw3
	TermContAttackS4Start
	TermContItemSwing4
	TermContItemShootS4
	TermContAttackHi4Start
	TermContAttackLw4Start
	TermContAttackDash
	TermContAttackAir
	TermContSpecialN
	TermContSpecialS
	TermContSpecialHi
	TermContSpecialLw
	TermContJumpSquat
	TermContJumpAerial
	TermContDash
	TermContTurnDash
	TermCount
)

// JumpCancel configures the dispatcher's jump branch.
type JumpCancel int

const (
	JumpCancelNone JumpCancel = iota
	JumpCancelOnHit
	JumpCancelOnHitOrBlock
)

// RegisterID addresses a slot in a fighter's register store.
type RegisterID string

// CancelKind names the predicate or branch that produced an outcome.
type CancelKind string

const (
	CancelNone          CancelKind = ""
	CancelJump          CancelKind = "jump"
	CancelJumpException CancelKind = "jump_exception"
	CancelDash          CancelKind = "dash"
	CancelException     CancelKind = "exception"
	CancelChain         CancelKind = "chain"
	CancelSpecial       CancelKind = "special"
	CancelAerial        CancelKind = "aerial"
	CancelNormal        CancelKind = "normal"
	CancelWallJump      CancelKind = "wall_jump"
)

// Outcome is the result of a cancel predicate or of the dispatcher.
// Counter is only meaningful for chain cancels: the repetition counter
// after the call.
type Outcome struct {
	Canceled bool
	Kind     CancelKind
	Status   StatusKind
	Counter  int
}

// FrameInput is the controller and combat-event input for one frame.
type FrameInput struct {
	StickX        float32
	StickY        float32
	Cat           CommandCat
	AttackAirKind int // 0 none, 1 n, 2 f, 3 b, 4 hi, 5 lw
	Hit           bool
	Block         bool
	Contact       bool // hit or block, decided by the engine's RNG
	Wall          WallSide
}

// Intent is the parsed representation of one simulator input line.
type Intent struct {
	Input   FrameInput
	Repeat  int // number of frames to run with Input (>= 1)
	Wait    bool
	Unknown []string
}

// Effect is a single atomic register mutation instruction.
type Effect struct {
	Type   string
	Params map[string]any
}

// Event is emitted after a status transition, contact, or cancel.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single Step.
type Result struct {
	Frames   int
	Outcomes []Outcome
	Effects  []Effect
	Events   []Event
	Output   []string
}

// Condition is a predicate over the fighter's registers and queries.
type Condition struct {
	Type   string         // "flag_set", "int_gt", "status_is", "input_has", etc.
	Params map[string]any // condition-specific parameters
	Negate bool           // true if wrapped in Not()
	Inner  *Condition     // for Not(): the negated inner condition
}

// CancelAction is one scripted cancel attempt inside a rule.
type CancelAction struct {
	Type    string // "jump_cancel", "jump_exception", "dash_cancel", "exception", "chain", "wall_jump"
	Status  StatusKind
	Input   CommandCat
	OnHit   bool
	OnBlock bool
	Reverse bool
	Counter RegisterID
	Max     int
}

// MatchCriteria defines which fighter state a rule applies to.
type MatchCriteria struct {
	Status       StatusKind
	Situation    Situation
	AnySituation bool
	Priority     int
}

// RuleDef is a scripted cancel rule scoped to a status. Effects run only
// when one of the rule's cancels succeeds.
type RuleDef struct {
	ID          string
	When        MatchCriteria
	Conditions  []Condition
	Cancels     []CancelAction
	Effects     []Effect
	SourceOrder int
}

// CancelSystem is the dispatcher configuration for one move.
type CancelSystem struct {
	Normals  []TransitionTerm
	Specials []TransitionTerm
	Aerial   bool
	Jump     JumpCancel
}

// MoveDef is the definition of one status's move data.
type MoveDef struct {
	Status       StatusKind
	Length       int // motion end frame
	IASA         int // frame from which the move is naturally cancelable, 0 = at end
	CancelWindow float32
	OnEnter      []Effect
	Cancel       CancelSystem
	HasCancel    bool
}

// FighterDef holds fighter-wide tuning from the moveset.
type FighterDef struct {
	Name         string
	Author       string
	Version      string
	Hitlag       int
	JumpCountMax int
	AirTime      int
	SlowRate     float32
	MeterMax     float32
	MeterOnHit   float32
	MeterOnBlock float32
}

// EventHandler is a set of effects triggered by an event rather than input.
type EventHandler struct {
	EventType  string
	Conditions []Condition
	Effects    []Effect
}
