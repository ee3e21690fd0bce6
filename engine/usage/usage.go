// Package usage tracks which ground normals and aerials have already been
// used in the current cancel string, so a string cannot repeat a move.
package usage

import (
	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/types"
)

// Ground-normal buckets.
const (
	AttackNMask = 1 << iota
	AttackS3Mask
	AttackHi3Mask
	AttackLw3Mask
	AttackS4Mask
	AttackHi4Mask
	AttackLw4Mask
)

// Aerial buckets, indexed by attack-air kind 1..5.
const (
	AttackAirNMask = 1 << iota
	AttackAirFMask
	AttackAirBMask
	AttackAirHiMask
	AttackAirLwMask
)

// groundBuckets maps each bucket to the follow-up terms it disables. An
// attack and its item swing/shoot variants share a bucket.
var groundBuckets = []struct {
	mask  int
	terms []types.TransitionTerm
}{
	{AttackNMask, []types.TransitionTerm{types.TermContAttack, types.TermContItemSwing, types.TermContItemShoot}},
	{AttackS3Mask, []types.TransitionTerm{types.TermContAttackS3, types.TermContItemSwing3, types.TermContItemShootS3}},
	{AttackHi3Mask, []types.TransitionTerm{types.TermContAttackHi3}},
	{AttackLw3Mask, []types.TransitionTerm{types.TermContAttackLw3}},
	{AttackS4Mask, []types.TransitionTerm{types.TermContAttackS4Start, types.TermContItemSwing4, types.TermContItemShootS4}},
	{AttackHi4Mask, []types.TransitionTerm{types.TermContAttackHi4Start}},
	{AttackLw4Mask, []types.TransitionTerm{types.TermContAttackLw4Start}},
}

// stringStatuses are the ground attack statuses a string survives in.
var stringStatuses = map[types.StatusKind]bool{
	types.StatusAttack:         true,
	types.StatusAttack100:      true,
	types.StatusAttackDash:     true,
	types.StatusAttackS3:       true,
	types.StatusAttackHi3:      true,
	types.StatusAttackLw3:      true,
	types.StatusAttackS4Start:  true,
	types.StatusAttackS4Hold:   true,
	types.StatusAttackS4:       true,
	types.StatusAttackHi4Start: true,
	types.StatusAttackHi4Hold:  true,
	types.StatusAttackHi4:      true,
	types.StatusAttackLw4Start: true,
	types.StatusAttackLw4Hold:  true,
	types.StatusAttackLw4:      true,
}

// InString reports whether status keeps a ground string alive.
func InString(status types.StatusKind) bool {
	return stringStatuses[status]
}

// DisableGroundNormal marks the buckets in mask as used. It only records
// while the move is not yet naturally cancelable.
func DisableGroundNormal(f fighter.Fighter, mask int) {
	if f.IsEnableCancel() {
		return
	}
	f.SetInt(fighter.IntUsedGroundNormals, f.Int(fighter.IntUsedGroundNormals)|mask)
}

// ApplyDisabledTransitions disables the follow-up terms of every bucket set
// in used.
func ApplyDisabledTransitions(f fighter.Fighter, used int) {
	for _, b := range groundBuckets {
		if used&b.mask == 0 {
			continue
		}
		for _, term := range b.terms {
			f.UnableTransitionTerm(term)
		}
	}
}

// SetUsedGroundNormalTransitionTerms applies the fighter's used mask to its
// transition terms while the move is not naturally cancelable.
func SetUsedGroundNormalTransitionTerms(f fighter.Fighter) {
	if f.IsEnableCancel() {
		return
	}
	ApplyDisabledTransitions(f, f.Int(fighter.IntUsedGroundNormals))
}

// ResetGroundNormals clears the used mask unless the fighter is mid-string:
// inside a string status, not naturally cancelable, and the motion still
// running. ignore forces the reset.
func ResetGroundNormals(f fighter.Fighter, ignore bool) {
	if ignore || f.IsEnableCancel() || f.IsMotionEnd() || !InString(f.StatusKind()) {
		f.SetInt(fighter.IntUsedGroundNormals, 0)
	}
}

// IsGroundNormalUsed reports whether every bucket in mask is marked used.
func IsGroundNormalUsed(f fighter.Fighter, mask int) bool {
	return mask != 0 && f.Int(fighter.IntUsedGroundNormals)&mask == mask
}

// DisableAerial marks the aerial buckets in mask as used.
func DisableAerial(f fighter.Fighter, mask int) {
	if f.IsEnableCancel() {
		return
	}
	f.SetInt(fighter.IntUsedAerials, f.Int(fighter.IntUsedAerials)|mask)
}

// AerialMask returns the bucket for an attack-air kind, or 0.
func AerialMask(kind int) int {
	if kind < 1 || kind > 5 {
		return 0
	}
	return 1 << (kind - 1)
}

// AerialEnabled reports whether the aerial currently selected by the stick
// may be used. Outside a normal-cancel window every aerial is allowed; inside
// one the aerial must be in the enabled set and not yet used.
func AerialEnabled(f fighter.Fighter) bool {
	return AerialKindEnabled(f, f.AttackAirKind())
}

// AerialKindEnabled is AerialEnabled for an explicit attack-air kind.
func AerialKindEnabled(f fighter.Fighter, kind int) bool {
	if !f.IsFlag(fighter.FlagNormalCancel) || f.IsEnableCancel() {
		return true
	}
	flag := AerialMask(kind)
	enabled := f.Int(fighter.IntEnabledAerials)
	used := f.Int(fighter.IntUsedAerials)
	return enabled&flag != 0 && used&flag == 0
}

// ResetAerials clears the aerial string.
func ResetAerials(f fighter.Fighter) {
	f.SetInt(fighter.IntUsedAerials, 0)
}

var groundMaskNames = map[string]int{
	"N":   AttackNMask,
	"S3":  AttackS3Mask,
	"HI3": AttackHi3Mask,
	"LW3": AttackLw3Mask,
	"S4":  AttackS4Mask,
	"HI4": AttackHi4Mask,
	"LW4": AttackLw4Mask,
}

var aerialMaskNames = map[string]int{
	"N":  AttackAirNMask,
	"F":  AttackAirFMask,
	"B":  AttackAirBMask,
	"HI": AttackAirHiMask,
	"LW": AttackAirLwMask,
}

// GroundMask returns the ground bucket for a name such as "S3" or "LW4".
func GroundMask(name string) (int, bool) {
	m, ok := groundMaskNames[name]
	return m, ok
}

// AerialMaskByName returns the aerial bucket for "N", "F", "B", "HI" or "LW".
func AerialMaskByName(name string) (int, bool) {
	m, ok := aerialMaskNames[name]
	return m, ok
}
