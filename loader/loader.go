package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/nathoo/cancelcore/engine/fighter"
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	fighter  *lua.LTable
	moves    []rawMove
	rules    []rawRule
	handlers []rawHandler
	order    int
}

func (c *collector) nextSourceOrder() int {
	c.order++
	return c.order
}

// Load compiles the moveset in directory dir. See LoadFS.
func Load(dir string) (*fighter.Defs, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("reading moveset directory %s: %w", dir, err)
	}
	defs, err := LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	return defs, nil
}

// LoadFS runs every top-level .lua file in fsys (fighter.lua first),
// compiles the collected definitions and validates them. The Lua VM is
// discarded before returning; the Defs are immutable from here on.
func LoadFS(fsys fs.FS) (*fighter.Defs, error) {
	names, err := luaFileNames(fsys)
	if err != nil {
		return nil, err
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)
	for _, name := range names {
		if err := runFile(L, fsys, name); err != nil {
			return nil, fmt.Errorf("executing %s: %w", name, err)
		}
	}

	defs, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling moveset: %w", err)
	}
	if err := validate(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

func luaFileNames(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading moveset: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".lua" {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, errors.New("no .lua files found")
	}
	return sortedLuaFiles(names), nil
}

// runFile compiles one chunk and calls it with no arguments.
func runFile(L *lua.LState, fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	fn, err := L.Load(f, name)
	if err != nil {
		return err
	}
	L.Push(fn)
	return L.PCall(0, lua.MultRet, nil)
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach the filesystem, load code or break
// determinism.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	if mathTbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		mathTbl.RawSetString("randomseed", lua.LNil)
		mathTbl.RawSetString("random", lua.LNil)
	}
}
