// Package parser converts simulator input lines into Intent structs.
// Intentionally dumb: no buffering, no motion inputs, just tokens.
package parser

import (
	"strconv"
	"strings"

	"github.com/nathoo/cancelcore/types"
)

const diag = 0.7071

// numpad maps a numpad digit to an absolute stick position.
var numpad = map[string][2]float32{
	"1": {-diag, -diag},
	"2": {0, -1},
	"3": {diag, -diag},
	"4": {-1, 0},
	"5": {0, 0},
	"6": {1, 0},
	"7": {-diag, diag},
	"8": {0, 1},
	"9": {diag, diag},
}

type command struct {
	cat types.CommandCat
	air int // attack-air kind, 0 = chosen from the stick
}

var commands = map[string]command{
	"attack":    {cat: types.CatAttackN},
	"s3":        {cat: types.CatAttackS3},
	"hi3":       {cat: types.CatAttackHi3},
	"lw3":       {cat: types.CatAttackLw3},
	"s4":        {cat: types.CatAttackS4},
	"hi4":       {cat: types.CatAttackHi4},
	"lw4":       {cat: types.CatAttackLw4},
	"air":       {cat: types.CatAttackAir},
	"nair":      {cat: types.CatAttackAir, air: 1},
	"fair":      {cat: types.CatAttackAir, air: 2},
	"bair":      {cat: types.CatAttackAir, air: 3},
	"uair":      {cat: types.CatAttackAir, air: 4},
	"dair":      {cat: types.CatAttackAir, air: 5},
	"special":   {cat: types.CatSpecialN},
	"side_b":    {cat: types.CatSpecialS},
	"up_b":      {cat: types.CatSpecialHi},
	"down_b":    {cat: types.CatSpecialLw},
	"jump":      {cat: types.CatJump},
	"dash":      {cat: types.CatDash},
	"turn_dash": {cat: types.CatTurnDash},
	"wj_left":   {cat: types.CatWallJumpLeft},
	"wj_right":  {cat: types.CatWallJumpRight},
}

var commandAliases = map[string]string{
	// Ground normals
	"jab":        "attack",
	"a":          "attack",
	"ftilt":      "s3",
	"attack_s3":  "s3",
	"utilt":      "hi3",
	"attack_hi3": "hi3",
	"dtilt":      "lw3",
	"attack_lw3": "lw3",
	"fsmash":     "s4",
	"attack_s4":  "s4",
	"usmash":     "hi4",
	"attack_hi4": "hi4",
	"dsmash":     "lw4",
	"attack_lw4": "lw4",

	// Aerials
	"aerial":     "air",
	"attack_air": "air",

	// Specials
	"neutral_b":  "special",
	"b":          "special",
	"special_n":  "special",
	"special_s":  "side_b",
	"special_hi": "up_b",
	"special_lw": "down_b",

	// Movement
	"j":        "jump",
	"hop":      "jump",
	"turn":     "turn_dash",
	"backdash": "turn_dash",

	// Wall jumps, named by the direction of the push off
	"wall_jump_left":  "wj_left",
	"wall_jump_right": "wj_right",
	"wjl":             "wj_left",
	"wjr":             "wj_right",
}

// Parse converts a raw input line into an Intent. Unrecognised tokens are
// collected in Intent.Unknown; parsing never fails.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	intent := types.Intent{Repeat: 1}
	words := strings.Fields(strings.ToLower(input))

	for i := 0; i < len(words); i++ {
		w := words[i]

		if stick, ok := numpad[w]; ok {
			intent.Input.StickX, intent.Input.StickY = stick[0], stick[1]
			continue
		}

		if alias, ok := commandAliases[w]; ok {
			w = alias
		}
		if cmd, ok := commands[w]; ok {
			intent.Input.Cat |= cmd.cat
			if cmd.air != 0 {
				intent.Input.AttackAirKind = cmd.air
			}
			continue
		}

		switch {
		case w == "hit":
			intent.Input.Hit = true
		case w == "block":
			intent.Input.Block = true
		case w == "contact":
			intent.Input.Contact = true
		case w == "wait" || w == "z":
			intent.Wait = true
			if i+1 < len(words) {
				if n, err := strconv.Atoi(words[i+1]); err == nil && n > 0 {
					intent.Repeat = n
					i++
				}
			}
		case strings.HasPrefix(w, "x="):
			if v, ok := parseAxis(w[2:]); ok {
				intent.Input.StickX = v
			} else {
				intent.Unknown = append(intent.Unknown, words[i])
			}
		case strings.HasPrefix(w, "y="):
			if v, ok := parseAxis(w[2:]); ok {
				intent.Input.StickY = v
			} else {
				intent.Unknown = append(intent.Unknown, words[i])
			}
		case strings.HasPrefix(w, "wall="):
			switch w[len("wall="):] {
			case "l", "left":
				intent.Input.Wall = types.WallLeft
			case "r", "right":
				intent.Input.Wall = types.WallRight
			default:
				intent.Unknown = append(intent.Unknown, words[i])
			}
		case strings.HasPrefix(w, "stick="):
			if !parseStick(w[len("stick="):], &intent.Input) {
				intent.Unknown = append(intent.Unknown, words[i])
			}
		case isRepeat(w):
			n, _ := strconv.Atoi(w[1:])
			intent.Repeat = n
		default:
			intent.Unknown = append(intent.Unknown, words[i])
		}
	}

	return intent
}

// isRepeat matches the "xN" suffix token, N >= 1.
func isRepeat(w string) bool {
	if len(w) < 2 || w[0] != 'x' {
		return false
	}
	n, err := strconv.Atoi(w[1:])
	return err == nil && n >= 1
}

// parseAxis reads one stick axis, clamped to [-1, 1].
func parseAxis(s string) (float32, bool) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return float32(v), true
}

// parseStick reads "x,y".
func parseStick(s string, in *types.FrameInput) bool {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return false
	}
	x, okx := parseAxis(xs)
	y, oky := parseAxis(ys)
	if !okx || !oky {
		return false
	}
	in.StickX, in.StickY = x, y
	return true
}
