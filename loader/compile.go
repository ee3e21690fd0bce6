// Package loader loads a fighter's moveset from Lua files into Go structs at
// load time. The Lua VM is discarded after loading: zero Lua at runtime.
package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/cancelcore/engine/fighter"
	"github.com/nathoo/cancelcore/engine/resolve"
	"github.com/nathoo/cancelcore/engine/usage"
	"github.com/nathoo/cancelcore/types"
	lua "github.com/yuin/gopher-lua"
)

// rawMove holds a move table before compilation.
type rawMove struct {
	status string
	table  *lua.LTable
}

// rawRule holds a rule before compilation.
type rawRule struct {
	id         string
	when       *lua.LTable
	conditions *lua.LTable // may be nil
	then       *lua.LTable
	order      int
}

// rawHandler holds an event handler before compilation.
type rawHandler struct {
	eventType string
	table     *lua.LTable
}

// Fighter defaults applied when the moveset leaves a field out.
const (
	defaultAirTime      = 40
	defaultJumpCountMax = 2
	defaultMeterMax     = 100
)

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getNumber returns a numeric field from a Lua table, or def if missing.
func getNumber(tbl *lua.LTable, key string, def float64) float64 {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return def
}

func getInt(tbl *lua.LTable, key string, def int) int {
	return int(getNumber(tbl, key, float64(def)))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// elements returns the array part of a table in order.
func elements(tbl *lua.LTable) []lua.LValue {
	if tbl == nil {
		return nil
	}
	n := tbl.Len()
	out := make([]lua.LValue, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, tbl.RawGetInt(i))
	}
	return out
}

// stringList returns the string elements of an array table.
func stringList(tbl *lua.LTable) []string {
	var out []string
	for _, v := range elements(tbl) {
		if s, ok := v.(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// toGoValue converts a Lua value to a Go value recursively.
func toGoValue(v lua.LValue) any {
	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		f := float64(val)
		if f == float64(int(f)) {
			return int(f)
		}
		return f
	case lua.LString:
		return string(val)
	case *lua.LTable:
		if val.MaxN() > 0 {
			arr := make([]any, 0, val.MaxN())
			for _, e := range elements(val) {
				arr = append(arr, toGoValue(e))
			}
			return arr
		}
		m := map[string]any{}
		val.ForEach(func(k, v lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				m[string(ks)] = toGoValue(v)
			}
		})
		return m
	default:
		return nil
	}
}

// params copies every string-keyed field except skip into a map.
func params(tbl *lua.LTable, skip string) map[string]any {
	m := map[string]any{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok && string(ks) != skip {
			m[string(ks)] = toGoValue(v)
		}
	})
	return m
}

// compile converts all collected Lua data into a Defs struct. Names are
// resolved to enums here, so runtime code never sees a string status.
func compile(coll *collector) (*fighter.Defs, error) {
	defs := &fighter.Defs{
		Moves: map[types.StatusKind]types.MoveDef{},
	}

	if coll.fighter == nil {
		return nil, fmt.Errorf("no Fighter{} definition found")
	}
	defs.Fighter = compileFighter(coll.fighter)

	for _, raw := range coll.moves {
		move, err := compileMove(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling move %s: %w", raw.status, err)
		}
		if _, dup := defs.Moves[move.Status]; dup {
			return nil, fmt.Errorf("move %s defined twice", fighter.StatusName(move.Status))
		}
		defs.Moves[move.Status] = move
	}

	for _, raw := range coll.rules {
		rule, err := compileRule(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling rule %s: %w", raw.id, err)
		}
		defs.Rules = append(defs.Rules, rule)
	}

	for _, raw := range coll.handlers {
		handler, err := compileHandler(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling handler %s: %w", raw.eventType, err)
		}
		defs.Handlers = append(defs.Handlers, handler)
	}

	return defs, nil
}

func compileFighter(tbl *lua.LTable) types.FighterDef {
	return types.FighterDef{
		Name:         getString(tbl, "name"),
		Author:       getString(tbl, "author"),
		Version:      getString(tbl, "version"),
		Hitlag:       getInt(tbl, "hitlag", 0),
		JumpCountMax: getInt(tbl, "jump_count_max", defaultJumpCountMax),
		AirTime:      getInt(tbl, "air_time", defaultAirTime),
		SlowRate:     float32(getNumber(tbl, "slow_rate", 1)),
		MeterMax:     float32(getNumber(tbl, "meter_max", defaultMeterMax)),
		MeterOnHit:   float32(getNumber(tbl, "meter_on_hit", 0)),
		MeterOnBlock: float32(getNumber(tbl, "meter_on_block", 0)),
	}
}

func compileMove(raw rawMove) (types.MoveDef, error) {
	status, err := resolve.Status(raw.status)
	if err != nil {
		return types.MoveDef{}, err
	}
	tbl := raw.table
	move := types.MoveDef{
		Status:       status,
		Length:       getInt(tbl, "length", 0),
		IASA:         getInt(tbl, "iasa", 0),
		CancelWindow: float32(getNumber(tbl, "cancel_window", 0)),
	}
	if effTbl := getTable(tbl, "on_enter"); effTbl != nil {
		if move.OnEnter, err = compileEffects(effTbl); err != nil {
			return types.MoveDef{}, err
		}
	}
	if cancelTbl := getTable(tbl, "cancel"); cancelTbl != nil {
		if move.Cancel, err = compileCancelSystem(cancelTbl); err != nil {
			return types.MoveDef{}, err
		}
		move.HasCancel = true
	}
	return move, nil
}

func compileCancelSystem(tbl *lua.LTable) (types.CancelSystem, error) {
	var cs types.CancelSystem
	var err error
	if cs.Normals, err = resolve.Terms(stringList(getTable(tbl, "normals"))); err != nil {
		return cs, err
	}
	if cs.Specials, err = resolve.Terms(stringList(getTable(tbl, "specials"))); err != nil {
		return cs, err
	}
	cs.Aerial = getBool(tbl, "aerial", false)

	switch v := tbl.RawGetString("jump").(type) {
	case lua.LString:
		cs.Jump, err = resolve.JumpCancel(string(v))
	case lua.LNumber:
		cs.Jump, err = resolve.JumpCancel(fmt.Sprint(int(v)))
	case lua.LBool:
		if v {
			cs.Jump = types.JumpCancelOnHit
		}
	}
	return cs, err
}

func compileRule(raw rawRule) (types.RuleDef, error) {
	rule := types.RuleDef{
		ID:          raw.id,
		SourceOrder: raw.order,
	}

	var err error
	if rule.When, err = compileMatchCriteria(raw.when); err != nil {
		return rule, err
	}
	if raw.conditions != nil {
		if rule.Conditions, err = compileConditions(raw.conditions); err != nil {
			return rule, err
		}
	}

	// Then{} mixes cancel actions with effects.
	for _, v := range elements(raw.then) {
		tbl, ok := v.(*lua.LTable)
		if !ok {
			continue
		}
		if getString(tbl, "action") != "" {
			a, err := compileAction(tbl)
			if err != nil {
				return rule, err
			}
			rule.Cancels = append(rule.Cancels, a)
			continue
		}
		eff, err := compileEffect(tbl)
		if err != nil {
			return rule, err
		}
		rule.Effects = append(rule.Effects, eff)
	}
	return rule, nil
}

func compileMatchCriteria(tbl *lua.LTable) (types.MatchCriteria, error) {
	mc := types.MatchCriteria{
		Status:       types.StatusNone,
		AnySituation: true,
		Priority:     getInt(tbl, "priority", 0),
	}
	var err error
	if name := getString(tbl, "status"); name != "" {
		if mc.Status, err = resolve.Status(name); err != nil {
			return mc, err
		}
	}
	if name := getString(tbl, "situation"); name != "" {
		if mc.Situation, err = resolve.Situation(name); err != nil {
			return mc, err
		}
		mc.AnySituation = false
	}
	return mc, nil
}

func compileAction(tbl *lua.LTable) (types.CancelAction, error) {
	a := types.CancelAction{
		Type:    getString(tbl, "action"),
		Status:  types.StatusNone,
		OnHit:   getBool(tbl, "on_hit", false),
		OnBlock: getBool(tbl, "on_block", false),
		Reverse: getBool(tbl, "reverse", false),
		Counter: types.RegisterID(getString(tbl, "counter")),
		Max:     getInt(tbl, "max", 0),
	}
	var err error
	if name := getString(tbl, "status"); name != "" {
		if a.Status, err = resolve.Status(name); err != nil {
			return a, err
		}
	}
	if name := getString(tbl, "input"); name != "" {
		if a.Input, err = resolve.Cat(name); err != nil {
			return a, err
		}
	}
	return a, nil
}

func compileConditions(tbl *lua.LTable) ([]types.Condition, error) {
	var conditions []types.Condition
	for _, v := range elements(tbl) {
		condTbl, ok := v.(*lua.LTable)
		if !ok {
			continue
		}
		cond, err := compileCondition(condTbl)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, cond)
	}
	return conditions, nil
}

func compileCondition(tbl *lua.LTable) (types.Condition, error) {
	condType := getString(tbl, "type")

	if condType == "not" {
		if innerTbl := getTable(tbl, "inner"); innerTbl != nil {
			inner, err := compileCondition(innerTbl)
			if err != nil {
				return types.Condition{}, err
			}
			return types.Condition{Type: "not", Negate: true, Inner: &inner}, nil
		}
	}

	p := params(tbl, "type")
	var err error
	switch condType {
	case "status_is", "prev_status_is":
		p["status"], err = resolve.Status(fmt.Sprint(p["status"]))
	case "situation_is":
		p["situation"], err = resolve.Situation(fmt.Sprint(p["situation"]))
	case "input_has":
		p["input"], err = resolve.Cat(fmt.Sprint(p["input"]))
	case "normal_used":
		p["mask"], err = maskOf(getTable(tbl, "masks"), "ground normal", usage.GroundMask)
		delete(p, "masks")
	}
	if err != nil {
		return types.Condition{}, err
	}
	return types.Condition{Type: condType, Params: p}, nil
}

func compileEffects(tbl *lua.LTable) ([]types.Effect, error) {
	var effects []types.Effect
	for _, v := range elements(tbl) {
		effTbl, ok := v.(*lua.LTable)
		if !ok {
			continue
		}
		eff, err := compileEffect(effTbl)
		if err != nil {
			return nil, err
		}
		effects = append(effects, eff)
	}
	return effects, nil
}

func compileEffect(tbl *lua.LTable) (types.Effect, error) {
	effType := getString(tbl, "type")
	p := params(tbl, "type")

	var err error
	switch effType {
	case "disable_ground_normal":
		p["mask"], err = maskOf(getTable(tbl, "masks"), "ground normal", usage.GroundMask)
		delete(p, "masks")
	case "disable_aerial", "enable_aerials":
		p["mask"], err = maskOf(getTable(tbl, "masks"), "aerial", usage.AerialMaskByName)
		delete(p, "masks")
	case "unable_term", "enable_term":
		p["term"], err = resolve.Term(fmt.Sprint(p["term"]))
	}
	if err != nil {
		return types.Effect{}, err
	}
	return types.Effect{Type: effType, Params: p}, nil
}

// maskOf ORs together the buckets named in an array table. Numbers are taken
// as raw masks.
func maskOf(tbl *lua.LTable, kind string, lookup func(string) (int, bool)) (int, error) {
	mask := 0
	for _, v := range elements(tbl) {
		switch val := v.(type) {
		case lua.LNumber:
			mask |= int(val)
		case lua.LString:
			m, ok := lookup(strings.ToUpper(string(val)))
			if !ok {
				return 0, &resolve.NotFoundError{Kind: kind, Name: string(val)}
			}
			mask |= m
		}
	}
	return mask, nil
}

func compileHandler(raw rawHandler) (types.EventHandler, error) {
	handler := types.EventHandler{EventType: raw.eventType}
	var err error
	if condTbl := getTable(raw.table, "conditions"); condTbl != nil {
		if handler.Conditions, err = compileConditions(condTbl); err != nil {
			return handler, err
		}
	}
	if effTbl := getTable(raw.table, "effects"); effTbl != nil {
		if handler.Effects, err = compileEffects(effTbl); err != nil {
			return handler, err
		}
	}
	return handler, nil
}

// sortedLuaFiles returns .lua files with fighter.lua first and the rest
// sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var fighterFile string
	var others []string
	for _, f := range files {
		if f == "fighter.lua" {
			fighterFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if fighterFile != "" {
		return append([]string{fighterFile}, others...)
	}
	return others
}
