// Package engine provides the Step() orchestrator that wires together
// parsing, contact, usage upkeep, scripted rules, the cancel dispatcher,
// effects and events into simulation frames.
package engine

import (
	"fmt"

	"github.com/nathoo/cancelcore/engine/cancel"
	"github.com/nathoo/cancelcore/engine/direction"
	"github.com/nathoo/cancelcore/engine/effects"
	"github.com/nathoo/cancelcore/engine/events"
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/engine/parser"
	"github.com/nathoo/cancelcore/engine/rules"
	"github.com/nathoo/cancelcore/engine/usage"
	"github.com/nathoo/cancelcore/types"
)

// Options are the simulation settings the engine takes from config.
type Options struct {
	Seed           int64
	BlockChance    int // percent of "contact" rolls that are blocked
	GlobalSlowRate float32
	MaxWait        int // cap on frames run by a single input line
	Trace          bool
}

// Engine holds the moveset definitions and the simulated fighter.
type Engine struct {
	Defs    *fighter.Defs
	Fighter *fighter.State
	RNG     *RNG
	Opts    Options
	Frame   int
	Inputs  []string // every line Step ran, in order, for replays

	deferred *fighter.Request
}

// New creates a new engine from definitions.
func New(defs *fighter.Defs, opts Options) *Engine {
	if opts.GlobalSlowRate == 0 {
		opts.GlobalSlowRate = 1
	}
	if opts.MaxWait <= 0 {
		opts.MaxWait = 600
	}
	e := &Engine{Defs: defs, Opts: opts}
	e.Reset()
	return e
}

// Reset puts a fresh fighter in WAIT on frame 0 and re-seeds the RNG.
func (e *Engine) Reset() {
	e.Fighter = fighter.NewState(e.Defs.Fighter)
	e.RNG = NewRNG(e.Opts.Seed)
	e.Frame = 0
	e.Inputs = nil
	e.deferred = nil
}

// Step processes one input line and returns the result of every frame it ran.
func (e *Engine) Step(input string) types.Result {
	var result types.Result

	// 1. Parse input.
	intent := parser.Parse(input)

	// 2. Empty input.
	if intent.Repeat == 0 {
		result.Output = append(result.Output, `Enter a frame of input, e.g. "6 dash" or "wait 10".`)
		return result
	}

	// 3. Unknown tokens reject the whole line.
	if len(intent.Unknown) > 0 {
		for _, tok := range intent.Unknown {
			result.Output = append(result.Output, fmt.Sprintf("Unknown input %q.", tok))
		}
		return result
	}

	e.Inputs = append(e.Inputs, input)

	// 4. Frame count.
	n := intent.Repeat
	if n > e.Opts.MaxWait {
		n = e.Opts.MaxWait
		result.Output = append(result.Output, fmt.Sprintf("(capped at %d frames)", n))
	}
	in := intent.Input
	if intent.Wait {
		in = types.FrameInput{}
	}

	// 5. Run the frames. Contact applies to the first frame only.
	for i := 0; i < n; i++ {
		fr := e.RunFrame(in)
		result.Frames += fr.Frames
		result.Outcomes = append(result.Outcomes, fr.Outcomes...)
		result.Effects = append(result.Effects, fr.Effects...)
		result.Events = append(result.Events, fr.Events...)
		result.Output = append(result.Output, fr.Output...)
		in.Hit, in.Block, in.Contact = false, false, false
	}

	// 6. Summary.
	result.Output = append(result.Output, e.Summary())
	return result
}

// Summary describes the fighter at the current frame.
func (e *Engine) Summary() string {
	f := e.Fighter
	move := e.Defs.Move(f.Status)
	length := "-"
	if move.Length > 0 {
		length = fmt.Sprint(move.Length)
	}
	return fmt.Sprintf("[f%d] %s (%s) frame %d/%s timer %.1f",
		e.Frame, fighter.StatusName(f.Status), fighter.SituationName(f.Sit),
		f.Int(fighter.IntStatusFrame), length, f.Float(fighter.FloatCancelTimer))
}

// RunFrame advances the simulation by one frame with the given input.
func (e *Engine) RunFrame(in types.FrameInput) types.Result {
	f := e.Fighter
	result := types.Result{Frames: 1}
	var evts []types.Event

	e.Frame++

	// 0. Transitions deferred from the previous frame; per-frame flags.
	if req := e.deferred; req != nil {
		e.deferred = nil
		evts = append(evts, e.enter(req.Status, &result)...)
	}
	f.Contact.FrameHit, f.Contact.FrameShield = false, false
	f.Restart = false
	f.Pending = nil

	// 1. Input and contact.
	e.applyInput(in)
	evts = append(evts, e.applyContact(in, &result)...)

	// 2. Timers.
	e.tickTimers()

	// 3. Motion.
	e.updateMotion()

	// 4. Usage upkeep.
	usage.ResetGroundNormals(f, false)
	if f.Sit == types.SituationGround {
		usage.ResetAerials(f)
	}
	usage.SetUsedGroundNormalTransitionTerms(f)

	// 5-6. Scripted rules, then the move's cancel configuration.
	evts = append(evts, e.tryCancels(&result)...)

	// 7. Neutral actions.
	if f.Pending == nil && !f.Restart {
		e.neutralAction()
	}

	// 8. Natural transitions.
	if f.Pending == nil && !f.Restart {
		e.naturalTransition()
	}

	// 9. Apply the pending transition.
	switch {
	case f.Restart:
		e.restart(&result)
	case f.Pending != nil && f.Pending.Immediate:
		evts = append(evts, e.enter(f.Pending.Status, &result)...)
	case f.Pending != nil:
		req := *f.Pending
		e.deferred = &req
	}
	f.Pending = nil

	// 10. Dispatch events (single pass) and apply handler effects
	// (events NOT re-dispatched).
	result.Events = append(result.Events, evts...)
	if eventEffs := events.Dispatch(evts, f, e.Defs); len(eventEffs) > 0 {
		evts2, output := effects.Apply(f, e.Defs, eventEffs)
		result.Effects = append(result.Effects, eventEffs...)
		result.Events = append(result.Events, evts2...)
		result.Output = append(result.Output, output...)
	}

	return result
}

func (e *Engine) applyInput(in types.FrameInput) {
	f := e.Fighter
	f.Input = in
	if in.Cat&types.CatAttackAir != 0 && in.AttackAirKind == 0 {
		f.Input.AttackAirKind = airKind(direction.Command(f, true))
	}
}

// airKind picks the aerial a stick direction selects.
func airKind(d direction.Direction) int {
	switch d {
	case direction.Forward:
		return 2
	case direction.Back:
		return 3
	case direction.Up, direction.UpForward, direction.UpBack:
		return 4
	case direction.Down, direction.DownForward, direction.DownBack:
		return 5
	default:
		return 1
	}
}

// applyContact records a hit or block against the current attack: contact
// flags, hitlag, the move's cancel window and meter gain.
func (e *Engine) applyContact(in types.FrameInput, result *types.Result) []types.Event {
	f := e.Fighter
	hit, block := in.Hit, in.Block
	if in.Contact {
		blocked := e.RNG.Blocked(e.Opts.BlockChance)
		e.trace(result, "contact roll %d: blocked=%v", e.RNG.Position(), blocked)
		if blocked {
			block = true
		} else {
			hit = true
		}
	}
	if !hit && !block {
		return nil
	}
	if !fighter.IsAttackStatus(f.Status) {
		result.Output = append(result.Output, fmt.Sprintf("f%d: nothing to connect with in %s", e.Frame, fighter.StatusName(f.Status)))
		return nil
	}

	def := e.Defs.Fighter
	kind, gain := "hit", def.MeterOnHit
	if hit {
		f.Contact.Hit, f.Contact.FrameHit = true, true
	} else {
		kind, gain = "block", def.MeterOnBlock
		f.Contact.Shield, f.Contact.FrameShield = true, true
	}
	f.SetInt(fighter.IntHitlagFrames, def.Hitlag)
	f.SetFloat(fighter.FloatCancelTimer, e.Defs.Move(f.Status).CancelWindow)
	if gain != 0 {
		fighter.UpdateMeter(f, fighter.FloatMeter, gain, def.MeterMax)
	}

	result.Output = append(result.Output, fmt.Sprintf("f%d: %s %s", e.Frame, fighter.StatusName(f.Status), kind))
	return []types.Event{{
		Type: kind,
		Data: map[string]any{"status": fighter.StatusName(f.Status), "hitlag": def.Hitlag},
	}}
}

// tickTimers runs hitlag, or when not frozen the cancel timer, the motion
// frame and air time. The contact frame itself does not consume hitlag.
func (e *Engine) tickTimers() {
	f := e.Fighter
	if f.InHitlag() {
		if !f.IsInfliction(types.CollisionAll) {
			fighter.AddInt(f, fighter.IntHitlagFrames, -1)
		}
		return
	}
	if f.Float(fighter.FloatCancelTimer) > 0 {
		fighter.CountDown(f, fighter.FloatCancelTimer, 1, e.Opts.GlobalSlowRate)
		if f.Float(fighter.FloatCancelTimer) < 0 {
			fighter.ResetFloat(f, fighter.FloatCancelTimer)
		}
	}
	f.IncInt(fighter.IntStatusFrame)
	if f.Sit == types.SituationAir {
		f.IncInt(fighter.IntAirFrames)
	}
}

func (e *Engine) updateMotion() {
	f := e.Fighter
	move := e.Defs.Move(f.Status)
	frame := f.Int(fighter.IntStatusFrame)
	f.MotionEnd = move.Length > 0 && frame >= move.Length
	_, charging := smash[f.Status]
	switch {
	case move.Length == 0, charging:
		f.CancelEnabled = false
	case move.IASA > 0:
		f.CancelEnabled = frame >= move.IASA
	default:
		f.CancelEnabled = f.MotionEnd
	}
}

// tryCancels runs the scripted rules and then, if none fired, the move's
// cancel configuration.
func (e *Engine) tryCancels(result *types.Result) []types.Event {
	f := e.Fighter

	out, rule := rules.Evaluate(f, e.Defs)
	if out.Canceled {
		e.trace(result, "rule %s fired", rule.ID)
		evts := e.recordCancel(out, result)
		if len(rule.Effects) > 0 {
			evts2, output := effects.Apply(f, e.Defs, rule.Effects)
			result.Effects = append(result.Effects, rule.Effects...)
			result.Output = append(result.Output, output...)
			evts = append(evts, evts2...)
		}
		return evts
	}

	move := e.Defs.Move(f.Status)
	if !move.HasCancel {
		return nil
	}
	if reason := cancel.Permissive(true).Reason(f); reason != "" {
		if fighter.IsAttackStatus(f.Status) {
			e.trace(result, "cancel window closed: %s", reason)
		}
		return nil
	}
	out = cancel.Dispatch(f, move.Cancel)
	if !out.Canceled {
		e.trace(result, "cancel window open, no branch fired")
		return nil
	}
	return e.recordCancel(out, result)
}

func (e *Engine) recordCancel(out types.Outcome, result *types.Result) []types.Event {
	f := e.Fighter
	f.SetInt64(fighter.Int64LastCancelFrame, int64(e.Frame))
	result.Outcomes = append(result.Outcomes, out)

	if out.Kind == types.CancelChain {
		return []types.Event{{
			Type: "chain",
			Data: map[string]any{"status": fighter.StatusName(out.Status), "counter": out.Counter},
		}}
	}
	result.Output = append(result.Output, fmt.Sprintf("f%d: %s cancel into %s", e.Frame, out.Kind, fighter.StatusName(out.Status)))
	return []types.Event{{
		Type: "cancel",
		Data: map[string]any{"kind": string(out.Kind), "status": fighter.StatusName(out.Status)},
	}}
}

// enter performs a status transition and runs the new move's on_enter
// effects. The returned events include status_enter.
func (e *Engine) enter(status types.StatusKind, result *types.Result) []types.Event {
	f := e.Fighter
	prev := f.Status

	f.PrevStatus = prev
	f.Status = status
	sit := fighter.EntrySituation(status, f.Sit)
	if sit == types.SituationAir && f.Sit != types.SituationAir {
		fighter.ResetInt(f, fighter.IntAirFrames)
	}
	f.Sit = sit

	switch status {
	case types.StatusJump:
		f.SetInt(fighter.IntJumpCount, 1)
	case types.StatusJumpAerial:
		f.IncInt(fighter.IntJumpCount)
	case types.StatusLanding, types.StatusLandingAttackAir:
		fighter.ResetInt(f, fighter.IntJumpCount)
	case types.StatusTurnDash:
		f.Dir = -f.Dir
	case types.StatusAttackAir:
		f.SetInt(fighter.IntAttackAirKind, f.Input.AttackAirKind)
	}

	// Status-scoped state.
	f.Contact = fighter.Contact{}
	fighter.ResetFloat(f, fighter.FloatCancelTimer)
	fighter.ResetInt(f, fighter.IntStatusFrame)
	fighter.ResetInt(f, fighter.IntHoldFrames)
	f.OffFlag(fighter.FlagNormalCancel)
	f.EnableAllTransitionTerms()
	f.MotionEnd = false
	f.CancelEnabled = false
	if status == types.StatusAttackAir {
		usage.DisableAerial(f, usage.AerialMask(f.Int(fighter.IntAttackAirKind)))
	}

	result.Output = append(result.Output, fmt.Sprintf("f%d: %s -> %s", e.Frame, fighter.StatusName(prev), fighter.StatusName(status)))

	move := e.Defs.Move(status)
	evts, output := effects.Apply(f, e.Defs, move.OnEnter)
	result.Effects = append(result.Effects, move.OnEnter...)
	result.Output = append(result.Output, output...)

	return append(evts, types.Event{
		Type: "status_enter",
		Data: map[string]any{"status": fighter.StatusName(status), "prev": fighter.StatusName(prev)},
	})
}

// restart rewinds the current attack for a chain cancel. The status does
// not change, so no status_enter is emitted and chain counters survive.
func (e *Engine) restart(result *types.Result) {
	f := e.Fighter
	f.Contact = fighter.Contact{}
	fighter.ResetFloat(f, fighter.FloatCancelTimer)
	fighter.ResetInt(f, fighter.IntStatusFrame)
	f.MotionEnd = false
	f.CancelEnabled = false
	result.Output = append(result.Output, fmt.Sprintf("f%d: %s restarted", e.Frame, fighter.StatusName(f.Status)))
}

func (e *Engine) trace(result *types.Result, format string, args ...any) {
	if !e.Opts.Trace {
		return
	}
	result.Output = append(result.Output, fmt.Sprintf("[trace] f%d: ", e.Frame)+fmt.Sprintf(format, args...))
}
