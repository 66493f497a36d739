package demo

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyscope/internal/input/key"
)

// translate converts a tcell key event into a canonical key name plus
// the modifier names held with it. Terminals collapse a chord into one
// event, so the caller emulates the modifier keydowns itself.
func translate(ev *tcell.EventKey) (string, []string) {
	var mods []string
	m := ev.Modifiers()
	if m&tcell.ModCtrl != 0 {
		mods = append(mods, key.NameControl)
	}
	if m&tcell.ModAlt != 0 {
		mods = append(mods, key.NameAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = append(mods, key.NameShift)
	}
	if m&tcell.ModMeta != 0 {
		mods = append(mods, key.NameMeta)
	}

	name := keyName(ev)
	if name == "" {
		return "", nil
	}

	// Control chords arrive as dedicated key codes with no ModCtrl
	// bit on some terminals.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && m&tcell.ModCtrl == 0 {
		switch k {
		case tcell.KeyEnter, tcell.KeyTab, tcell.KeyBackspace:
			// Plain keys that share control codes.
		default:
			mods = append(mods, key.NameControl)
		}
	}

	return key.Normalize(name), mods
}

func keyName(ev *tcell.EventKey) string {
	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyEnter:
		return key.NameEnter
	case tcell.KeyEscape:
		return key.NameEscape
	case tcell.KeyTab:
		return key.NameTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "Backspace"
	case tcell.KeyDelete:
		return "Delete"
	case tcell.KeyInsert:
		return "Insert"
	case tcell.KeyHome:
		return "Home"
	case tcell.KeyEnd:
		return "End"
	case tcell.KeyPgUp:
		return "PageUp"
	case tcell.KeyPgDn:
		return "PageDown"
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	default:
		if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
			return fmt.Sprintf("F%d", int(k-tcell.KeyF1)+1)
		}
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return string(rune('a' + int(k-tcell.KeyCtrlA)))
		}
		return ""
	}
}
