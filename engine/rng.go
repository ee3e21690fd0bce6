package engine

import "math/rand"

// RNG is the seeded source for contact rolls. Pos counts rolls so traces
// can name them; the same seed and inputs always give the same rolls.
type RNG struct {
	src *rand.Rand
	pos int64
}

func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// Blocked reports whether a contact is blocked, for a block chance in
// percent. Chances at or past 0 and 100 are decided without a roll.
func (r *RNG) Blocked(chance int) bool {
	if chance <= 0 {
		return false
	}
	if chance >= 100 {
		return true
	}
	r.pos++
	return r.src.Intn(100) < chance
}

// Position returns the number of rolls made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}
