package keymap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keyscope/internal/input/focus"
	"github.com/dshills/keyscope/internal/input/key"
)

func TestKeymapBuilder(t *testing.T) {
	km := NewKeymap("editor").
		WithDefaultKind(key.KindKeydown).
		WithSource("default").
		Add("cmd+s", "editor.save").
		AddBinding(NewBinding("esc", "editor.cancel").On(key.KindKeyup).WithDescription("dismiss"))

	assert.Equal(t, "editor", km.Name)
	assert.Equal(t, "default", km.Source)
	require.Len(t, km.Bindings, 2)
	assert.Equal(t, key.KindNone, km.Bindings[0].Kind, "builder leaves kind for the default")
	assert.Equal(t, key.KindKeyup, km.Bindings[1].Kind)
	assert.Equal(t, "dismiss", km.Bindings[1].Description)
}

func TestKeymapValidate(t *testing.T) {
	tests := []struct {
		name    string
		keymap  *Keymap
		wantErr string
	}{
		{
			name:   "valid",
			keymap: NewKeymap("ok").WithDefaultKind(key.KindKeydown).Add("cmd+s", "save"),
		},
		{
			name:    "empty keys",
			keymap:  NewKeymap("bad").Add("", "save"),
			wantErr: "empty keys",
		},
		{
			name:    "empty action",
			keymap:  NewKeymap("bad").Add("cmd+s", ""),
			wantErr: "empty action",
		},
		{
			name:    "unknown key",
			keymap:  NewKeymap("bad").Add("warp+s", "save"),
			wantErr: "warp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.keymap.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestKeymapActionMap(t *testing.T) {
	km := NewKeymap("editor").
		WithDefaultKind(key.KindKeydown).
		Add("cmd+s", "save").
		Add("ctrl+s", "save").
		AddBinding(NewBinding("esc", "cancel").On(key.KindKeyup))

	actions := km.ActionMap()
	require.Len(t, actions, 2)

	assert.Equal(t, []focus.Trigger{
		{Sequence: "cmd+s", Kind: key.KindKeydown},
		{Sequence: "ctrl+s", Kind: key.KindKeydown},
	}, actions["save"], "alternate triggers accumulate")
	assert.Equal(t, []focus.Trigger{
		{Sequence: "esc", Kind: key.KindKeyup},
	}, actions["cancel"])

	assert.Equal(t, key.KindKeydown, km.Options().DefaultKind)
}

func TestKeymapDefaultKindFallback(t *testing.T) {
	km := NewKeymap("bare").Add("a", "go")
	assert.Equal(t, key.KindKeydown, km.Options().DefaultKind)
	assert.Equal(t, key.KindKeydown, km.ActionMap()["go"][0].Kind)
}

func TestKeymapCloneAndMerge(t *testing.T) {
	base := NewKeymap("base").Add("a", "one")
	clone := base.Clone()
	clone.Bindings[0].Action = "changed"
	assert.Equal(t, "one", base.Bindings[0].Action, "clone is independent")

	base.Merge(NewKeymap("extra").Add("b", "two"))
	require.Len(t, base.Bindings, 2)
	assert.Equal(t, "two", base.Bindings[1].Action)
}

func TestLoaderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.json")

	km := NewKeymap("editor").
		WithDefaultKind(key.KindKeydown).
		Add("cmd+s", "editor.save").
		AddBinding(NewBinding("esc", "editor.cancel").On(key.KindKeyup))
	require.NoError(t, km.SaveFile(path))

	loaded, err := NewLoader().LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "editor", loaded.Name)
	assert.Equal(t, key.KindKeydown, loaded.DefaultKind)
	require.Len(t, loaded.Bindings, 2)
	assert.Equal(t, "editor.save", loaded.Bindings[0].Action)
	assert.Equal(t, key.KindKeyup, loaded.Bindings[1].Kind)
	assert.Equal(t, path, loaded.Source)
}

func TestLoaderRejectsBadKind(t *testing.T) {
	_, err := NewLoader().LoadReader(strings.NewReader(
		`{"name":"x","bindings":[{"keys":"a","action":"go","kind":"keywarp"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keywarp")
}

func TestLoaderLoadAllSkipsUnparseable(t *testing.T) {
	dir := t.TempDir()
	good := NewKeymap("good").Add("a", "go")
	require.NoError(t, good.SaveFile(filepath.Join(dir, "good.json")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	l := NewLoader()
	l.AddSearchPath(dir)
	keymaps, err := l.LoadAll()
	require.Len(t, keymaps, 1)
	assert.Equal(t, "good", keymaps[0].Name)
	require.Error(t, err, "skipped files are reported")
	assert.Contains(t, err.Error(), "bad.json")
}

func TestLoaderLoadAllCleanDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewKeymap("only").Add("a", "go").SaveFile(filepath.Join(dir, "only.json")))

	l := NewLoader()
	l.AddSearchPath(dir)
	keymaps, err := l.LoadAll()
	require.NoError(t, err)
	require.Len(t, keymaps, 1)
}
