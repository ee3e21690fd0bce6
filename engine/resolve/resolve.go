// Package resolve maps the names used in movesets and at the prompt to
// statuses, transition terms, command categories and situations.
package resolve

import (
	"fmt"
	"strings"

	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

// NotFoundError indicates no definition matched a name.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

// statusAliases are the player-facing shorthands for common statuses.
var statusAliases = map[string]string{
	"jab":    "ATTACK",
	"ftilt":  "ATTACK_S3",
	"utilt":  "ATTACK_HI3",
	"dtilt":  "ATTACK_LW3",
	"fsmash": "ATTACK_S4_START",
	"usmash": "ATTACK_HI4_START",
	"dsmash": "ATTACK_LW4_START",
	"nair":   "ATTACK_AIR",
	"aerial": "ATTACK_AIR",
	"da":     "ATTACK_DASH",
	"idle":   "WAIT",
}

// canonical upper-cases a name and turns spaces and dashes into underscores.
func canonical(name string) string {
	name = strings.TrimSpace(name)
	if alias, ok := statusAliases[strings.ToLower(name)]; ok {
		return alias
	}
	r := strings.NewReplacer(" ", "_", "-", "_")
	return strings.ToUpper(r.Replace(name))
}

// Status resolves a status name such as "ATTACK_S3", "attack_s3" or "ftilt".
func Status(name string) (types.StatusKind, error) {
	if k, ok := fighter.StatusByName(canonical(name)); ok {
		return k, nil
	}
	return types.StatusNone, &NotFoundError{Kind: "status", Name: name}
}

// Term resolves a transition term name such as "ATTACK_HI3" or "special_n".
func Term(name string) (types.TransitionTerm, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "CONT_")
	if t, ok := fighter.TermByName(n); ok {
		return t, nil
	}
	return 0, &NotFoundError{Kind: "term", Name: name}
}

// Terms resolves a list of term names, stopping at the first unknown one.
func Terms(names []string) ([]types.TransitionTerm, error) {
	terms := make([]types.TransitionTerm, 0, len(names))
	for _, name := range names {
		t, err := Term(name)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}

// Cat resolves a command category name such as "ATTACK_LW3" or "dash".
// Several names may be joined with "|".
func Cat(name string) (types.CommandCat, error) {
	var cat types.CommandCat
	for _, part := range strings.Split(name, "|") {
		c, ok := fighter.CatByName(strings.ToUpper(strings.TrimSpace(part)))
		if !ok {
			return 0, &NotFoundError{Kind: "input", Name: name}
		}
		cat |= c
	}
	return cat, nil
}

// Situation resolves "ground", "air" or "cliff".
func Situation(name string) (types.Situation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ground", "g":
		return types.SituationGround, nil
	case "air", "a":
		return types.SituationAir, nil
	case "cliff":
		return types.SituationCliff, nil
	}
	return 0, &NotFoundError{Kind: "situation", Name: name}
}

// JumpCancel resolves the dispatcher's jump setting: "none", "hit" or
// "hit_or_block" (also 0, 1, 2).
func JumpCancel(name string) (types.JumpCancel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "0":
		return types.JumpCancelNone, nil
	case "hit", "on_hit", "1":
		return types.JumpCancelOnHit, nil
	case "hit_or_block", "on_hit_or_block", "block", "2":
		return types.JumpCancelOnHitOrBlock, nil
	}
	return 0, &NotFoundError{Kind: "jump cancel", Name: name}
}
