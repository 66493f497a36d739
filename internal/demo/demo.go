// Package demo runs the interactive terminal showcase for the focus
// engine: two nested scopes, combination and sequence bindings, and a
// live log of which scope's handler fired.
package demo

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/keyscope/internal/input/focus"
	"github.com/dshills/keyscope/internal/input/key"
	"github.com/dshills/keyscope/internal/input/keymap"
	"github.com/dshills/keyscope/internal/logging"
)

// Options configures the demo.
type Options struct {
	// KeymapPath optionally replaces the editor scope's bindings with
	// a keymap file (.json or .lua).
	KeymapPath string
}

// logLines is how many fired-action entries stay on screen.
const logLines = 12

// Run starts the demo and blocks until the quit action fires. The
// logger travels on ctx; the demo and the engine get component child
// loggers from it.
func Run(ctx context.Context, opts Options) error {
	engineLog := logging.FromContext(logging.WithComponent(ctx, "engine"))
	d := &demo{
		ctx:     logging.WithComponent(ctx, "demo"),
		manager: focus.NewManager(focus.Config{Logger: *engineLog}),
	}
	d.log = logging.FromContext(d.ctx)

	editor, err := editorKeymap(opts.KeymapPath)
	if err != nil {
		return err
	}
	if err := editor.Validate(); err != nil {
		return fmt.Errorf("editor keymap: %w", err)
	}
	d.editor = editor
	d.log.Info().
		Str("keymap", editor.Name).
		Str("source", editor.Source).
		Int("bindings", len(editor.Bindings)).
		Msg("editor keymap loaded")

	if err := d.registerScopes(); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	d.screen = screen

	return d.loop()
}

type demo struct {
	ctx     context.Context
	log     *zerolog.Logger
	screen  tcell.Screen
	manager *focus.Manager
	editor  *keymap.Keymap

	fired []string
	done  bool
}

// editorKeymap returns the inner scope's bindings, either loaded from
// a file or the built-in defaults.
func editorKeymap(path string) (*keymap.Keymap, error) {
	if path != "" {
		km, err := loadKeymapFile(path)
		if err != nil {
			return nil, err
		}
		return km, nil
	}

	return keymap.NewKeymap("editor").
		WithDefaultKind(key.KindKeydown).
		WithSource("default").
		Add("ctrl+s", "editor.save").
		Add("ctrl+p", "editor.palette").
		Add("g g", "editor.top"), nil
}

func loadKeymapFile(path string) (*keymap.Keymap, error) {
	if isLua(path) {
		return keymap.NewLuaLoader().LoadFile(path)
	}
	return keymap.NewLoader().LoadFile(path)
}

func isLua(path string) bool {
	return len(path) > 4 && path[len(path)-4:] == ".lua"
}

// registerScopes builds the two-scope tree: the editor keymap nearest
// the event source, the application keymap behind it. Both bind
// ctrl+p, so the demo shows the inner scope winning.
func (d *demo) registerScopes() error {
	editorHandlers := make(map[string]focus.Handler)
	for action := range d.editor.ActionMap() {
		editorHandlers[action] = d.record("editor", action)
	}

	editorID, err := d.manager.RegisterScope(d.editor.ActionMap(), editorHandlers, d.editor.Options())
	if err != nil {
		return fmt.Errorf("registering editor scope: %w", err)
	}
	logging.FromContext(logging.WithScope(d.ctx, editorID)).
		Debug().Str("keymap", d.editor.Name).Msg("scope bound")

	app := keymap.NewKeymap("app").
		WithDefaultKind(key.KindKeydown).
		Add("ctrl+q", "app.quit").
		Add("esc", "app.quit").
		Add("ctrl+p", "app.palette").
		Add("up up down down", "app.egg")
	if err := app.Validate(); err != nil {
		return fmt.Errorf("app keymap: %w", err)
	}

	appHandlers := map[string]focus.Handler{
		"app.quit":    func(focus.Event) { d.done = true },
		"app.palette": d.record("app", "app.palette"),
		"app.egg":     d.record("app", "app.egg"),
	}
	appID, err := d.manager.RegisterScope(app.ActionMap(), appHandlers, app.Options())
	if err != nil {
		return fmt.Errorf("registering app scope: %w", err)
	}
	logging.FromContext(logging.WithScope(d.ctx, appID)).
		Debug().Str("keymap", app.Name).Msg("scope bound")

	return nil
}

// record returns a handler that appends a fired-action line.
func (d *demo) record(scope, action string) focus.Handler {
	return func(ev focus.Event) {
		line := fmt.Sprintf("%-8s %s  (key %s, %s)", scope, action, ev.Key, ev.Kind)
		d.fired = append(d.fired, line)
		if len(d.fired) > logLines {
			d.fired = d.fired[len(d.fired)-logLines:]
		}
	}
}

func (d *demo) loop() error {
	for !d.done {
		d.draw()
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			d.dispatch(ev)
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
	return nil
}

// dispatch emulates a full press of the chord a terminal event
// represents: modifiers down, key down, key up, modifiers up. Each
// keydown and keyup bubbles through every scope, innermost first.
func (d *demo) dispatch(ev *tcell.EventKey) {
	name, mods := translate(ev)
	if name == "" {
		return
	}

	gen := d.manager.Generation()
	for _, mod := range mods {
		d.bubbleDown(mod, gen)
	}
	d.bubbleDown(name, gen)
	d.bubbleUp(name, gen)
	for i := len(mods) - 1; i >= 0; i-- {
		d.bubbleUp(mods[i], gen)
	}
}

func (d *demo) bubbleDown(name string, gen int) {
	for i := 0; i < 2; i++ {
		d.manager.HandleKeyDown(focus.Event{Key: name}, gen, i, focus.EventOptions{})
	}
}

func (d *demo) bubbleUp(name string, gen int) {
	for i := 0; i < 2; i++ {
		d.manager.HandleKeyUp(focus.Event{Key: name}, gen, i, focus.EventOptions{})
	}
}

func (d *demo) draw() {
	d.screen.Clear()
	style := tcell.StyleDefault
	bold := style.Bold(true)

	row := 0
	d.print(0, row, bold, "keyscope demo")
	row += 2
	d.print(0, row, style, "editor scope: "+d.editor.Name+" ("+d.editor.Source+")")
	row++
	for _, b := range d.editor.Bindings {
		d.print(2, row, style, fmt.Sprintf("%-20s %s", b.Keys, b.Action))
		row++
	}
	row++
	d.print(0, row, style, "app scope: ctrl+q/esc quit, ctrl+p palette (editor wins), up up down down")
	row += 2
	d.print(0, row, bold, "fired actions")
	row++
	for _, line := range d.fired {
		d.print(2, row, style, line)
		row++
	}

	d.screen.Show()
}

func (d *demo) print(x, y int, style tcell.Style, s string) {
	for i, r := range s {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}
