package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerConditionHelpers(L)
	registerCancelHelpers(L)
	registerEffectHelpers(L)
}

// typed returns a new table with its "type" field set.
func typed(L *lua.LState, typ string) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("type", lua.LString(typ))
	return tbl
}

// names collects string arguments from position start onward into an array
// table. A single table argument is passed through.
func names(L *lua.LState, start int) *lua.LTable {
	if t, ok := L.Get(start).(*lua.LTable); ok {
		return t
	}
	tbl := L.NewTable()
	for i := start; i <= L.GetTop(); i++ {
		tbl.Append(lua.LString(L.CheckString(i)))
	}
	return tbl
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Fighter { name = "...", hitlag = 6, ... }
	L.SetGlobal("Fighter", L.NewFunction(func(L *lua.LState) int {
		coll.fighter = L.CheckTable(1)
		return 0
	}))

	// Move "ATTACK_S3" { length = 30, cancel = {...} }: curried.
	L.SetGlobal("Move", L.NewFunction(func(L *lua.LState) int {
		status := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.moves = append(coll.moves, rawMove{status: status, table: tbl})
			return 0
		}))
		return 1
	}))

	// Rule("id", when, conditions, then) or Rule("id", when, then).
	L.SetGlobal("Rule", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		when := L.CheckTable(2)

		var conditions, thenTbl *lua.LTable
		if L.Get(4) != lua.LNil {
			if t, ok := L.Get(3).(*lua.LTable); ok {
				conditions = t
			}
			thenTbl = L.CheckTable(4)
		} else {
			thenTbl = L.CheckTable(3)
		}

		coll.rules = append(coll.rules, rawRule{
			id:         id,
			when:       when,
			conditions: conditions,
			then:       thenTbl,
			order:      coll.nextSourceOrder(),
		})
		return 0
	}))

	// On("event_type", { conditions = {...}, effects = {...} })
	L.SetGlobal("On", L.NewFunction(func(L *lua.LState) int {
		eventType := L.CheckString(1)
		tbl := L.CheckTable(2)
		coll.handlers = append(coll.handlers, rawHandler{eventType: eventType, table: tbl})
		return 0
	}))

	// When and Then are pass-through.
	passThrough := L.NewFunction(func(L *lua.LState) int {
		L.Push(L.CheckTable(1))
		return 1
	})
	L.SetGlobal("When", passThrough)
	L.SetGlobal("Then", passThrough)
}

func registerConditionHelpers(L *lua.LState) {
	// FlagSet("flag"), FlagNot("flag")
	for fn, typ := range map[string]string{"FlagSet": "flag_set", "FlagNot": "flag_not"} {
		typ := typ
		L.SetGlobal(fn, L.NewFunction(func(L *lua.LState) int {
			tbl := typed(L, typ)
			tbl.RawSetString("flag", lua.LString(L.CheckString(1)))
			L.Push(tbl)
			return 1
		}))
	}

	// IntGt("register", n), IntLt, IntEq
	for fn, typ := range map[string]string{"IntGt": "int_gt", "IntLt": "int_lt", "IntEq": "int_eq"} {
		typ := typ
		L.SetGlobal(fn, L.NewFunction(func(L *lua.LState) int {
			tbl := typed(L, typ)
			tbl.RawSetString("register", lua.LString(L.CheckString(1)))
			tbl.RawSetString("value", L.CheckNumber(2))
			L.Push(tbl)
			return 1
		}))
	}

	// StatusIs("ATTACK_S3"), PrevStatusIs("ATTACK_S3")
	for fn, typ := range map[string]string{"StatusIs": "status_is", "PrevStatusIs": "prev_status_is"} {
		typ := typ
		L.SetGlobal(fn, L.NewFunction(func(L *lua.LState) int {
			tbl := typed(L, typ)
			tbl.RawSetString("status", lua.LString(L.CheckString(1)))
			L.Push(tbl)
			return 1
		}))
	}

	// SituationIs("ground")
	L.SetGlobal("SituationIs", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "situation_is")
		tbl.RawSetString("situation", lua.LString(L.CheckString(1)))
		L.Push(tbl)
		return 1
	}))

	// FrameGt(n), FrameLt(n)
	for fn, typ := range map[string]string{"FrameGt": "frame_gt", "FrameLt": "frame_lt"} {
		typ := typ
		L.SetGlobal(fn, L.NewFunction(func(L *lua.LState) int {
			tbl := typed(L, typ)
			tbl.RawSetString("value", L.CheckNumber(1))
			L.Push(tbl)
			return 1
		}))
	}

	// InputHas("ATTACK_LW3")
	L.SetGlobal("InputHas", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "input_has")
		tbl.RawSetString("input", lua.LString(L.CheckString(1)))
		L.Push(tbl)
		return 1
	}))

	// StickDir(6) or StickDir(6, true) for facing-relative.
	L.SetGlobal("StickDir", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "stick_dir")
		tbl.RawSetString("dir", L.CheckNumber(1))
		tbl.RawSetString("facing", lua.LBool(L.OptBool(2, false)))
		L.Push(tbl)
		return 1
	}))

	// NormalUsed("S3", ...): every named ground normal is used in this string.
	L.SetGlobal("NormalUsed", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "normal_used")
		tbl.RawSetString("masks", names(L, 1))
		L.Push(tbl)
		return 1
	}))

	// Not(condition)
	L.SetGlobal("Not", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "not")
		tbl.RawSetString("inner", L.CheckTable(1))
		L.Push(tbl)
		return 1
	}))
}

// Cancel helpers return tables tagged with "action" so Then{} can mix them
// with effects.
func registerCancelHelpers(L *lua.LState) {
	// JumpCancel { on_block = true }
	L.SetGlobal("JumpCancel", L.NewFunction(func(L *lua.LState) int {
		L.Push(action(L, "jump_cancel"))
		return 1
	}))

	// JumpException()
	L.SetGlobal("JumpException", L.NewFunction(func(L *lua.LState) int {
		L.Push(action(L, "jump_exception"))
		return 1
	}))

	// DashCancel { on_block = true, reverse = false }
	L.SetGlobal("DashCancel", L.NewFunction(func(L *lua.LState) int {
		L.Push(action(L, "dash_cancel"))
		return 1
	}))

	// Exception { status = "SPECIAL_LW", input = "SPECIAL_LW", on_hit = true }
	L.SetGlobal("Exception", L.NewFunction(func(L *lua.LState) int {
		L.Push(action(L, "exception"))
		return 1
	}))

	// Chain { input = "ATTACK_LW3", counter = "lw3_chain", max = 2, on_hit = true }
	L.SetGlobal("Chain", L.NewFunction(func(L *lua.LState) int {
		L.Push(action(L, "chain"))
		return 1
	}))

	// WallJump()
	L.SetGlobal("WallJump", L.NewFunction(func(L *lua.LState) int {
		L.Push(action(L, "wall_jump"))
		return 1
	}))
}

// action copies the optional options table and tags it.
func action(L *lua.LState, typ string) *lua.LTable {
	tbl := L.NewTable()
	if opts, ok := L.Get(1).(*lua.LTable); ok {
		opts.ForEach(func(k, v lua.LValue) { tbl.RawSet(k, v) })
	}
	tbl.RawSetString("action", lua.LString(typ))
	return tbl
}

func registerEffectHelpers(L *lua.LState) {
	// Say("text")
	L.SetGlobal("Say", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "say")
		tbl.RawSetString("text", lua.LString(L.CheckString(1)))
		L.Push(tbl)
		return 1
	}))

	// SetFlag("flag", value)
	L.SetGlobal("SetFlag", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "set_flag")
		tbl.RawSetString("flag", lua.LString(L.CheckString(1)))
		tbl.RawSetString("value", lua.LBool(L.CheckBool(2)))
		L.Push(tbl)
		return 1
	}))

	// SetInt("register", n)
	L.SetGlobal("SetInt", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "set_int")
		tbl.RawSetString("register", lua.LString(L.CheckString(1)))
		tbl.RawSetString("value", L.CheckNumber(2))
		L.Push(tbl)
		return 1
	}))

	// IncInt("register") or IncInt("register", amount)
	L.SetGlobal("IncInt", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "inc_int")
		tbl.RawSetString("register", lua.LString(L.CheckString(1)))
		if L.GetTop() >= 2 {
			tbl.RawSetString("amount", L.CheckNumber(2))
		}
		L.Push(tbl)
		return 1
	}))

	// ResetInt("register")
	L.SetGlobal("ResetInt", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "reset_int")
		tbl.RawSetString("register", lua.LString(L.CheckString(1)))
		L.Push(tbl)
		return 1
	}))

	// SetFloat("register", x)
	L.SetGlobal("SetFloat", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "set_float")
		tbl.RawSetString("register", lua.LString(L.CheckString(1)))
		tbl.RawSetString("value", L.CheckNumber(2))
		L.Push(tbl)
		return 1
	}))

	// AddFloat("register", x)
	L.SetGlobal("AddFloat", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "add_float")
		tbl.RawSetString("register", lua.LString(L.CheckString(1)))
		tbl.RawSetString("amount", L.CheckNumber(2))
		L.Push(tbl)
		return 1
	}))

	// DisableGroundNormal("S3", ...), DisableAerial("F", ...), EnableAerials("N", "F", ...)
	for fn, typ := range map[string]string{
		"DisableGroundNormal": "disable_ground_normal",
		"DisableAerial":       "disable_aerial",
		"EnableAerials":       "enable_aerials",
	} {
		typ := typ
		L.SetGlobal(fn, L.NewFunction(func(L *lua.LState) int {
			tbl := typed(L, typ)
			tbl.RawSetString("masks", names(L, 1))
			L.Push(tbl)
			return 1
		}))
	}

	// ResetGroundNormals() or ResetGroundNormals(true) to force.
	L.SetGlobal("ResetGroundNormals", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "reset_ground_normals")
		tbl.RawSetString("ignore", lua.LBool(L.OptBool(1, false)))
		L.Push(tbl)
		return 1
	}))

	// ResetAerials()
	L.SetGlobal("ResetAerials", L.NewFunction(func(L *lua.LState) int {
		L.Push(typed(L, "reset_aerials"))
		return 1
	}))

	// NormalCancel(true)
	L.SetGlobal("NormalCancel", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "normal_cancel")
		tbl.RawSetString("value", lua.LBool(L.OptBool(1, true)))
		L.Push(tbl)
		return 1
	}))

	// AddMeter(n)
	L.SetGlobal("AddMeter", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "add_meter")
		tbl.RawSetString("amount", L.CheckNumber(1))
		L.Push(tbl)
		return 1
	}))

	// UnableTerm("ATTACK_S3"), EnableTerm("ATTACK_S3")
	for fn, typ := range map[string]string{"UnableTerm": "unable_term", "EnableTerm": "enable_term"} {
		typ := typ
		L.SetGlobal(fn, L.NewFunction(func(L *lua.LState) int {
			tbl := typed(L, typ)
			tbl.RawSetString("term", lua.LString(L.CheckString(1)))
			L.Push(tbl)
			return 1
		}))
	}

	// EmitEvent("type")
	L.SetGlobal("EmitEvent", L.NewFunction(func(L *lua.LState) int {
		tbl := typed(L, "emit_event")
		tbl.RawSetString("event", lua.LString(L.CheckString(1)))
		L.Push(tbl)
		return 1
	}))

	// Stop()
	L.SetGlobal("Stop", L.NewFunction(func(L *lua.LState) int {
		L.Push(typed(L, "stop"))
		return 1
	}))
}
