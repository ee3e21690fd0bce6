package fighter

import "github.com/nathoo/cancelcore/types"

type statusInfo struct {
	name      string
	situation types.Situation
	air       bool // entered airborne regardless of the current situation
	keep      bool // keeps the current situation
	length    int
}

var statusTable = map[types.StatusKind]statusInfo{
	types.StatusWait:             {name: "WAIT", situation: types.SituationGround},
	types.StatusDash:             {name: "DASH", situation: types.SituationGround, length: 12},
	types.StatusTurnDash:         {name: "TURN_DASH", situation: types.SituationGround, length: 12},
	types.StatusRun:              {name: "RUN", situation: types.SituationGround},
	types.StatusTurnRun:          {name: "TURN_RUN", situation: types.SituationGround, length: 10},
	types.StatusJumpSquat:        {name: "JUMP_SQUAT", situation: types.SituationGround, length: 3},
	types.StatusJump:             {name: "JUMP", air: true},
	types.StatusJumpAerial:       {name: "JUMP_AERIAL", air: true},
	types.StatusFall:             {name: "FALL", air: true},
	types.StatusLanding:          {name: "LANDING", situation: types.SituationGround, length: 4},
	types.StatusLandingAttackAir: {name: "LANDING_ATTACK_AIR", situation: types.SituationGround, length: 8},
	types.StatusAttack:           {name: "ATTACK", situation: types.SituationGround, length: 20},
	types.StatusAttack100:        {name: "ATTACK_100", situation: types.SituationGround, length: 40},
	types.StatusAttackDash:       {name: "ATTACK_DASH", situation: types.SituationGround, length: 36},
	types.StatusAttackS3:         {name: "ATTACK_S3", situation: types.SituationGround, length: 30},
	types.StatusAttackHi3:        {name: "ATTACK_HI3", situation: types.SituationGround, length: 30},
	types.StatusAttackLw3:        {name: "ATTACK_LW3", situation: types.SituationGround, length: 24},
	types.StatusAttackS4Start:    {name: "ATTACK_S4_START", situation: types.SituationGround, length: 6},
	types.StatusAttackS4Hold:     {name: "ATTACK_S4_HOLD", situation: types.SituationGround, length: 60},
	types.StatusAttackS4:         {name: "ATTACK_S4", situation: types.SituationGround, length: 40},
	types.StatusAttackHi4Start:   {name: "ATTACK_HI4_START", situation: types.SituationGround, length: 6},
	types.StatusAttackHi4Hold:    {name: "ATTACK_HI4_HOLD", situation: types.SituationGround, length: 60},
	types.StatusAttackHi4:        {name: "ATTACK_HI4", situation: types.SituationGround, length: 40},
	types.StatusAttackLw4Start:   {name: "ATTACK_LW4_START", situation: types.SituationGround, length: 6},
	types.StatusAttackLw4Hold:    {name: "ATTACK_LW4_HOLD", situation: types.SituationGround, length: 60},
	types.StatusAttackLw4:        {name: "ATTACK_LW4", situation: types.SituationGround, length: 40},
	types.StatusAttackAir:        {name: "ATTACK_AIR", air: true, length: 30},
	types.StatusSpecialN:         {name: "SPECIAL_N", keep: true, length: 45},
	types.StatusSpecialS:         {name: "SPECIAL_S", keep: true, length: 45},
	types.StatusSpecialHi:        {name: "SPECIAL_HI", air: true, length: 40},
	types.StatusSpecialLw:        {name: "SPECIAL_LW", keep: true, length: 45},
	types.StatusItemSwing:        {name: "ITEM_SWING", situation: types.SituationGround, length: 24},
	types.StatusItemSwingS3:      {name: "ITEM_SWING_S3", situation: types.SituationGround, length: 30},
	types.StatusItemSwingS4:      {name: "ITEM_SWING_S4", situation: types.SituationGround, length: 40},
	types.StatusItemShoot:        {name: "ITEM_SHOOT", situation: types.SituationGround, length: 20},
	types.StatusItemShootS3:      {name: "ITEM_SHOOT_S3", situation: types.SituationGround, length: 20},
	types.StatusItemShootS4:      {name: "ITEM_SHOOT_S4", situation: types.SituationGround, length: 20},
	types.StatusWallJump:         {name: "WALL_JUMP", air: true, length: 30},
}

// StatusName returns the canonical name of a status, e.g. "ATTACK_S3".
func StatusName(k types.StatusKind) string {
	if info, ok := statusTable[k]; ok {
		return info.name
	}
	return "NONE"
}

// StatusByName looks up a status by canonical name.
func StatusByName(name string) (types.StatusKind, bool) {
	for k, info := range statusTable {
		if info.name == name {
			return k, true
		}
	}
	return types.StatusNone, false
}

// DefaultLength is the built-in motion length of a status; 0 means the
// status loops until something else ends it.
func DefaultLength(k types.StatusKind) int {
	return statusTable[k].length
}

// EntrySituation is the situation a fighter has after entering k.
func EntrySituation(k types.StatusKind, current types.Situation) types.Situation {
	info, ok := statusTable[k]
	switch {
	case !ok, info.keep:
		return current
	case info.air:
		return types.SituationAir
	default:
		return info.situation
	}
}

type termInfo struct {
	name   string
	cat    types.CommandCat
	status types.StatusKind
	item   types.RegisterID
	ground bool // a ground normal, as opposed to a special or movement term
}

var termTable = [types.TermCount]termInfo{
	types.TermContAttack:         {name: "ATTACK", cat: types.CatAttackN, status: types.StatusAttack, ground: true},
	types.TermContItemSwing:      {name: "ITEM_SWING", cat: types.CatAttackN, status: types.StatusItemSwing, item: FlagHaveItemSwing, ground: true},
	types.TermContItemShoot:      {name: "ITEM_SHOOT", cat: types.CatAttackN, status: types.StatusItemShoot, item: FlagHaveItemShoot, ground: true},
	types.TermContAttackS3:       {name: "ATTACK_S3", cat: types.CatAttackS3, status: types.StatusAttackS3, ground: true},
	types.TermContItemSwing3:     {name: "ITEM_SWING_3", cat: types.CatAttackS3, status: types.StatusItemSwingS3, item: FlagHaveItemSwing, ground: true},
	types.TermContItemShootS3:    {name: "ITEM_SHOOT_S3", cat: types.CatAttackS3, status: types.StatusItemShootS3, item: FlagHaveItemShoot, ground: true},
	types.TermContAttackHi3:      {name: "ATTACK_HI3", cat: types.CatAttackHi3, status: types.StatusAttackHi3, ground: true},
	types.TermContAttackLw3:      {name: "ATTACK_LW3", cat: types.CatAttackLw3, status: types.StatusAttackLw3, ground: true},
	types.TermContAttackS4Start:  {name: "ATTACK_S4_START", cat: types.CatAttackS4, status: types.StatusAttackS4Start, ground: true},
	types.TermContItemSwing4:     {name: "ITEM_SWING_4", cat: types.CatAttackS4, status: types.StatusItemSwingS4, item: FlagHaveItemSwing, ground: true},
	types.TermContItemShootS4:    {name: "ITEM_SHOOT_S4", cat: types.CatAttackS4, status: types.StatusItemShootS4, item: FlagHaveItemShoot, ground: true},
	types.TermContAttackHi4Start: {name: "ATTACK_HI4_START", cat: types.CatAttackHi4, status: types.StatusAttackHi4Start, ground: true},
	types.TermContAttackLw4Start: {name: "ATTACK_LW4_START", cat: types.CatAttackLw4, status: types.StatusAttackLw4Start, ground: true},
	types.TermContAttackDash:     {name: "ATTACK_DASH", cat: types.CatAttackN, status: types.StatusAttackDash, ground: true},
	types.TermContAttackAir:      {name: "ATTACK_AIR", cat: types.CatAttackAir, status: types.StatusAttackAir},
	types.TermContSpecialN:       {name: "SPECIAL_N", cat: types.CatSpecialN, status: types.StatusSpecialN},
	types.TermContSpecialS:       {name: "SPECIAL_S", cat: types.CatSpecialS, status: types.StatusSpecialS},
	types.TermContSpecialHi:      {name: "SPECIAL_HI", cat: types.CatSpecialHi, status: types.StatusSpecialHi},
	types.TermContSpecialLw:      {name: "SPECIAL_LW", cat: types.CatSpecialLw, status: types.StatusSpecialLw},
	types.TermContJumpSquat:      {name: "JUMP_SQUAT", cat: types.CatJump, status: types.StatusJumpSquat},
	types.TermContJumpAerial:     {name: "JUMP_AERIAL", cat: types.CatJump, status: types.StatusJumpAerial},
	types.TermContDash:           {name: "DASH", cat: types.CatDash, status: types.StatusDash},
	types.TermContTurnDash:       {name: "TURN_DASH", cat: types.CatTurnDash, status: types.StatusTurnDash},
}

// TermName returns the canonical name of a transition term.
func TermName(t types.TransitionTerm) string {
	if t < 0 || t >= types.TermCount {
		return "NONE"
	}
	return termTable[t].name
}

// TermByName looks up a transition term by canonical name.
func TermByName(name string) (types.TransitionTerm, bool) {
	for i, info := range termTable {
		if info.name == name {
			return types.TransitionTerm(i), true
		}
	}
	return 0, false
}

// TermCat is the command category that selects the term.
func TermCat(t types.TransitionTerm) types.CommandCat { return termTable[t].cat }

// TermStatus is the status a term transitions into.
func TermStatus(t types.TransitionTerm) types.StatusKind { return termTable[t].status }

// TermItemFlag is the held-item flag an item term requires, or "".
func TermItemFlag(t types.TransitionTerm) types.RegisterID { return termTable[t].item }

// IsGroundNormalTerm reports whether t is a ground attack or item attack term.
func IsGroundNormalTerm(t types.TransitionTerm) bool {
	return t >= 0 && t < types.TermCount && termTable[t].ground
}

// IsSpecialTerm reports whether t is one of the four special-move terms.
func IsSpecialTerm(t types.TransitionTerm) bool {
	return t >= types.TermContSpecialN && t <= types.TermContSpecialLw
}

var catNames = []struct {
	cat  types.CommandCat
	name string
}{
	{types.CatAttackN, "ATTACK_N"},
	{types.CatAttackS3, "ATTACK_S3"},
	{types.CatAttackHi3, "ATTACK_HI3"},
	{types.CatAttackLw3, "ATTACK_LW3"},
	{types.CatAttackS4, "ATTACK_S4"},
	{types.CatAttackHi4, "ATTACK_HI4"},
	{types.CatAttackLw4, "ATTACK_LW4"},
	{types.CatAttackAir, "ATTACK_AIR"},
	{types.CatSpecialN, "SPECIAL_N"},
	{types.CatSpecialS, "SPECIAL_S"},
	{types.CatSpecialHi, "SPECIAL_HI"},
	{types.CatSpecialLw, "SPECIAL_LW"},
	{types.CatJump, "JUMP"},
	{types.CatDash, "DASH"},
	{types.CatTurnDash, "TURN_DASH"},
	{types.CatWallJumpLeft, "WALL_JUMP_LEFT"},
	{types.CatWallJumpRight, "WALL_JUMP_RIGHT"},
}

// CatByName looks up a single command category by canonical name.
func CatByName(name string) (types.CommandCat, bool) {
	for _, c := range catNames {
		if c.name == name {
			return c.cat, true
		}
	}
	return 0, false
}

// CatNames lists the canonical names of every category set in cat.
func CatNames(cat types.CommandCat) []string {
	var names []string
	for _, c := range catNames {
		if cat&c.cat != 0 {
			names = append(names, c.name)
		}
	}
	return names
}

// SituationName returns "ground", "air" or "cliff".
func SituationName(s types.Situation) string {
	switch s {
	case types.SituationGround:
		return "ground"
	case types.SituationAir:
		return "air"
	case types.SituationCliff:
		return "cliff"
	default:
		return "unknown"
	}
}

// IsAttackStatus reports whether k is a ground, aerial, special or item
// attack: a status whose hitbox can connect.
func IsAttackStatus(k types.StatusKind) bool {
	return k >= types.StatusAttack && k <= types.StatusItemShootS4
}
