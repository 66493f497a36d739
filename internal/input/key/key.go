package key

import "strings"

// Canonical names for keys that are referenced throughout the engine.
const (
	NameShift   = "Shift"
	NameControl = "Control"
	NameAlt     = "Alt"
	NameMeta    = "Meta"
	NameEnter   = "Enter"
	NameEscape  = "Escape"
	NameSpace   = "Space"
	NameTab     = "Tab"
)

// synonyms maps lowercase spellings of key names to canonical names.
var synonyms = map[string]string{
	"shift":       NameShift,
	"control":     NameControl,
	"ctrl":        NameControl,
	"alt":         NameAlt,
	"option":      NameAlt,
	"opt":         NameAlt,
	"meta":        NameMeta,
	"cmd":         NameMeta,
	"command":     NameMeta,
	"win":         NameMeta,
	"super":       NameMeta,
	"enter":       NameEnter,
	"return":      NameEnter,
	"escape":      NameEscape,
	"esc":         NameEscape,
	"space":       NameSpace,
	"spacebar":    NameSpace,
	"tab":         NameTab,
	"backspace":   "Backspace",
	"bs":          "Backspace",
	"delete":      "Delete",
	"del":         "Delete",
	"insert":      "Insert",
	"ins":         "Insert",
	"home":        "Home",
	"end":         "End",
	"pageup":      "PageUp",
	"pgup":        "PageUp",
	"pagedown":    "PageDown",
	"pgdn":        "PageDown",
	"up":          "ArrowUp",
	"arrowup":     "ArrowUp",
	"down":        "ArrowDown",
	"arrowdown":   "ArrowDown",
	"left":        "ArrowLeft",
	"arrowleft":   "ArrowLeft",
	"right":       "ArrowRight",
	"arrowright":  "ArrowRight",
	"capslock":    "CapsLock",
	"numlock":     "NumLock",
	"scrolllock":  "ScrollLock",
	"pause":       "Pause",
	"printscreen": "PrintScreen",
	"contextmenu": "ContextMenu",
	"f1":          "F1",
	"f2":          "F2",
	"f3":          "F3",
	"f4":          "F4",
	"f5":          "F5",
	"f6":          "F6",
	"f7":          "F7",
	"f8":          "F8",
	"f9":          "F9",
	"f10":         "F10",
	"f11":         "F11",
	"f12":         "F12",
}

// canonicalNames is the set of valid multi-character canonical names,
// derived from the synonym table.
var canonicalNames = func() map[string]bool {
	names := make(map[string]bool, len(synonyms))
	for _, canonical := range synonyms {
		names[canonical] = true
	}
	return names
}()

// Normalize maps a key identifier to its canonical name. Single
// printable characters are canonical as themselves (case preserved,
// since "A" and "a" are distinct identifiers related by a shift
// alias). A literal space character normalizes to "Space". Unknown
// multi-character names are returned unchanged.
func Normalize(name string) string {
	if name == " " {
		return NameSpace
	}
	if len([]rune(name)) == 1 {
		return name
	}
	if canonical, ok := synonyms[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}

// Known returns true if name is a canonical name the engine
// recognizes: any single character, or one of the named special keys.
func Known(name string) bool {
	if len([]rune(name)) == 1 {
		return true
	}
	return canonicalNames[name]
}

// IsModifier returns true for the modifier keys.
func IsModifier(name string) bool {
	switch name {
	case NameShift, NameControl, NameAlt, NameMeta:
		return true
	}
	return false
}

// HasNativeKeypress reports whether a key natively produces a keypress
// event. Printable keys and Enter do; modifier, navigation and
// function keys only produce keydown/keyup, so the engine synthesizes
// their keypress.
func HasNativeKeypress(name string) bool {
	if name == NameEnter || name == NameSpace {
		return true
	}
	return len([]rune(name)) == 1
}
