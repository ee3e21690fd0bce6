// Package cancel decides, once per frame, whether the fighter's current
// attack may be interrupted and by what. Every function here borrows the
// Fighter for the duration of the call and re-reads the registers it needs.
package cancel

import (
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

// Gate is the cancel window: the cancel timer is running, the attack has
// connected, and the fighter is not frozen in hitlag.
//
// OnBlock lets a blocked attack open the window as well as a hit. Strict
// additionally closes the window while a collision is still resolving this
// frame; chain cancels use a non-strict gate so a string can continue
// through overlapping contact.
type Gate struct {
	OnBlock bool
	Strict  bool
}

// Permissive is the gate used by jump, dash and exception cancels and by
// the dispatcher.
func Permissive(onBlock bool) Gate {
	return Gate{OnBlock: onBlock, Strict: true}
}

// Narrow is the gate used by chain cancels.
func Narrow() Gate {
	return Gate{OnBlock: true}
}

// Open reports whether the window is open right now. It has no side effects.
func (g Gate) Open(f fighter.Fighter) bool {
	return g.Reason(f) == ""
}

// Reason returns why the window is closed, or "" when it is open.
func (g Gate) Reason(f fighter.Fighter) string {
	connected := f.IsInflictionStatus(types.CollisionHit) ||
		(g.OnBlock && f.IsInflictionStatus(types.CollisionShield))
	switch {
	case !connected:
		return "no contact"
	case g.Strict && f.IsInfliction(types.CollisionAll):
		return "contact resolving"
	case f.InHitlag():
		return "hitlag"
	case f.Float(fighter.FloatCancelTimer) <= 0:
		return "timer expired"
	}
	return ""
}
