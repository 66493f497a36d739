package keymap

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyscope/internal/input/key"
)

// LuaLoader loads keymaps produced by Lua scripts. A script returns a
// table describing one keymap:
//
//	return {
//	  name = "editor",
//	  default_kind = "keydown",
//	  bindings = {
//	    { keys = "cmd+s", action = "editor.save" },
//	    { keys = "up up down down", action = "easter.egg", kind = "keydown" },
//	  },
//	}
type LuaLoader struct{}

// NewLuaLoader creates a new Lua keymap loader.
func NewLuaLoader() *LuaLoader {
	return &LuaLoader{}
}

// LoadFile runs a Lua script and converts its returned table into a
// keymap.
func (l *LuaLoader) LoadFile(path string) (*Keymap, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("running keymap script: %w", err)
	}

	km, err := l.fromReturn(L)
	if err != nil {
		return nil, fmt.Errorf("keymap script %s: %w", path, err)
	}
	km.Source = "lua:" + path
	return km, nil
}

// LoadString runs Lua source and converts its returned table into a
// keymap.
func (l *LuaLoader) LoadString(source string) (*Keymap, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoString(source); err != nil {
		return nil, fmt.Errorf("running keymap script: %w", err)
	}

	km, err := l.fromReturn(L)
	if err != nil {
		return nil, err
	}
	km.Source = "lua"
	return km, nil
}

// fromReturn reads the script's return value off the Lua stack.
func (l *LuaLoader) fromReturn(L *lua.LState) (*Keymap, error) {
	ret := L.Get(-1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("script must return a table, got %s", ret.Type())
	}
	return l.fromTable(tbl)
}

func (l *LuaLoader) fromTable(tbl *lua.LTable) (*Keymap, error) {
	km := NewKeymap(luaString(tbl.RawGetString("name")))

	defaultKind, err := key.ParseKind(luaString(tbl.RawGetString("default_kind")))
	if err != nil {
		return nil, err
	}
	km.DefaultKind = defaultKind

	bindings, ok := tbl.RawGetString("bindings").(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("keymap %q: missing bindings table", km.Name)
	}

	var convErr error
	bindings.ForEach(func(idx, v lua.LValue) {
		if convErr != nil {
			return
		}
		bt, ok := v.(*lua.LTable)
		if !ok {
			convErr = fmt.Errorf("keymap %q: binding %s is not a table", km.Name, idx.String())
			return
		}

		kind, err := key.ParseKind(luaString(bt.RawGetString("kind")))
		if err != nil {
			convErr = fmt.Errorf("keymap %q binding %s: %w", km.Name, idx.String(), err)
			return
		}

		km.Bindings = append(km.Bindings, Binding{
			Keys:        luaString(bt.RawGetString("keys")),
			Action:      luaString(bt.RawGetString("action")),
			Kind:        kind,
			Description: luaString(bt.RawGetString("description")),
		})
	})
	if convErr != nil {
		return nil, convErr
	}

	return km, nil
}

// luaString converts a Lua value to a Go string, treating nil as empty.
func luaString(lv lua.LValue) string {
	if lv == lua.LNil {
		return ""
	}
	if s, ok := lv.(lua.LString); ok {
		return string(s)
	}
	return lv.String()
}
