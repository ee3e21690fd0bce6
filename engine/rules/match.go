package rules

import (
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

// Matches checks if a rule's When criteria match the fighter's current
// status and situation.
func Matches(when types.MatchCriteria, f fighter.Fighter) bool {
	if when.Status != f.StatusKind() {
		return false
	}
	return when.AnySituation || when.Situation == f.Situation()
}

// Specificity returns a numeric score for ranking rules.
// Higher is more specific.
func Specificity(rule types.RuleDef) int {
	score := 0
	if !rule.When.AnySituation {
		score++
	}
	return score
}
