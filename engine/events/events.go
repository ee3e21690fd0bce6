// Package events implements single-pass event handler dispatch.
// Event handlers produce additional effects but do not recurse.
package events

import (
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/engine/rules"
	"github.com/nathoo/cancelcore/types"
)

// Dispatch runs event handlers against the emitted events. Single pass,
// no recursion. Returns additional effects produced by matching handlers.
func Dispatch(events []types.Event, f fighter.Fighter, defs *fighter.Defs) []types.Effect {
	var result []types.Effect

	for _, event := range events {
		for _, handler := range defs.Handlers {
			if handler.EventType != event.Type {
				continue
			}
			if !rules.EvalAllConditions(handler.Conditions, f) {
				continue
			}
			result = append(result, handler.Effects...)
		}
	}

	return result
}
