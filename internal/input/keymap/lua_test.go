package keymap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keyscope/internal/input/key"
)

func TestLuaLoaderLoadString(t *testing.T) {
	km, err := NewLuaLoader().LoadString(`
		return {
			name = "editor",
			default_kind = "keydown",
			bindings = {
				{ keys = "cmd+s", action = "editor.save", description = "write buffer" },
				{ keys = "esc", action = "editor.cancel", kind = "keyup" },
			},
		}
	`)
	require.NoError(t, err)

	assert.Equal(t, "editor", km.Name)
	assert.Equal(t, key.KindKeydown, km.DefaultKind)
	require.Len(t, km.Bindings, 2)
	assert.Equal(t, "editor.save", km.Bindings[0].Action)
	assert.Equal(t, "write buffer", km.Bindings[0].Description)
	assert.Equal(t, key.KindKeyup, km.Bindings[1].Kind)
	assert.Equal(t, "lua", km.Source)

	require.NoError(t, km.Validate())
}

func TestLuaLoaderComputedBindings(t *testing.T) {
	// Scripts can build the bindings table programmatically.
	km, err := NewLuaLoader().LoadString(`
		local bindings = {}
		for i = 1, 3 do
			bindings[i] = { keys = "ctrl+" .. i, action = "tab.select" .. i }
		end
		return { name = "tabs", bindings = bindings }
	`)
	require.NoError(t, err)

	require.Len(t, km.Bindings, 3)
	assert.Equal(t, "ctrl+2", km.Bindings[1].Keys)
	assert.Equal(t, "tab.select2", km.Bindings[1].Action)
}

func TestLuaLoaderLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.lua")
	require.NoError(t, os.WriteFile(path, []byte(
		`return { name = "f", bindings = { { keys = "a", action = "go" } } }`), 0o644))

	km, err := NewLuaLoader().LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "f", km.Name)
	assert.Equal(t, "lua:"+path, km.Source)
}

func TestLuaLoaderErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"syntax error", `return {`},
		{"not a table", `return 42`},
		{"missing bindings", `return { name = "x" }`},
		{"binding not a table", `return { name = "x", bindings = { "a" } }`},
		{"bad kind", `return { name = "x", bindings = { { keys = "a", action = "go", kind = "warp" } } }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLuaLoader().LoadString(tt.source)
			assert.Error(t, err)
		})
	}
}
