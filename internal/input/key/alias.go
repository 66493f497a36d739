package key

// shifted maps a key name to the character it produces with Shift held
// (US layout).
var shifted = map[string]string{
	"a": "A", "b": "B", "c": "C", "d": "D", "e": "E", "f": "F",
	"g": "G", "h": "H", "i": "I", "j": "J", "k": "K", "l": "L",
	"m": "M", "n": "N", "o": "O", "p": "P", "q": "Q", "r": "R",
	"s": "S", "t": "T", "u": "U", "v": "V", "w": "W", "x": "X",
	"y": "Y", "z": "Z",
	"1": "!", "2": "@", "3": "#", "4": "$", "5": "%",
	"6": "^", "7": "&", "8": "*", "9": "(", "0": ")",
	"-": "_", "=": "+", "[": "{", "]": "}", "\\": "|",
	";": ":", "'": "\"", ",": "<", ".": ">", "/": "?", "`": "~",
}

// alted maps a key name to the character it produces with Alt held
// (US layout, macOS option characters).
var alted = map[string]string{
	"a": "å", "b": "∫", "c": "ç", "d": "∂", "e": "´", "f": "ƒ",
	"g": "©", "h": "˙", "i": "ˆ", "j": "∆", "k": "˚", "l": "¬",
	"m": "µ", "n": "˜", "o": "ø", "p": "π", "q": "œ", "r": "®",
	"s": "ß", "t": "†", "u": "¨", "v": "√", "w": "∑", "x": "≈",
	"y": "¥", "z": "Ω",
	"1": "¡", "2": "™", "3": "£", "4": "¢", "5": "∞",
	"6": "§", "7": "¶", "8": "•", "9": "ª", "0": "º",
	"-": "–", "=": "≠", "[": "“", "]": "‘", "\\": "«",
	";": "…", "'": "æ", ",": "≤", ".": "≥", "/": "÷", "`": "`",
}

// altShifted maps a key name to the character it produces with both
// Alt and Shift held (US layout, macOS option characters).
var altShifted = map[string]string{
	"a": "Å", "b": "ı", "c": "Ç", "d": "Î", "e": "´", "f": "Ï",
	"g": "˝", "h": "Ó", "i": "ˆ", "j": "Ô", "k": "", "l": "Ò",
	"m": "Â", "n": "˜", "o": "Ø", "p": "∏", "q": "Œ", "r": "‰",
	"s": "Í", "t": "ˇ", "u": "¨", "v": "◊", "w": "„", "x": "˛",
	"y": "Á", "z": "¸",
	"1": "⁄", "2": "€", "3": "‹", "4": "›", "5": "ﬁ",
	"6": "ﬂ", "7": "‡", "8": "°", "9": "·", "0": "‚",
	"-": "—", "=": "±", "[": "”", "]": "’", "\\": "»",
	";": "À", "'": "Æ", ",": "¯", ".": "˘", "/": "¿", "`": "`",
}

// Reverse tables, derived once at init.
var (
	unshifted    = invert(shifted)
	unalted      = invert(alted)
	unaltShifted = invert(altShifted)
)

func invert(m map[string]string) map[string]string {
	inv := make(map[string]string, len(m))
	for k, v := range m {
		if _, exists := inv[v]; !exists {
			inv[v] = k
		}
	}
	return inv
}

// Shifted returns the shifted variant of a key name, if one exists.
func Shifted(name string) (string, bool) {
	v, ok := shifted[name]
	return v, ok
}

// Unshifted returns the unshifted variant of a key name, if one exists.
func Unshifted(name string) (string, bool) {
	v, ok := unshifted[name]
	return v, ok
}

// Aliases returns the set of names that identify the same physical key
// state when a combination is serialized: the name itself plus its
// shifted or unshifted partner. A combination containing "!" is also
// identifiable as containing "1", so both spellings yield valid
// combination ids.
func Aliases(name string) []string {
	out := []string{name}
	if v, ok := shifted[name]; ok {
		out = append(out, v)
	}
	if v, ok := unshifted[name]; ok {
		out = append(out, v)
	}
	if v, ok := unalted[name]; ok {
		out = append(out, v)
	}
	if v, ok := unaltShifted[name]; ok {
		out = append(out, v)
	}
	return dedupe(out)
}

// Variants returns the key names a matcher key may appear under in the
// live combination, given the current modifier context. With Shift
// held, a matcher key "a" may be recorded as "A"; with Alt held, as
// "å"; with both, as "Å".
func Variants(name string, shiftHeld, altHeld bool) []string {
	out := []string{name}
	switch {
	case shiftHeld && altHeld:
		if v, ok := altShifted[name]; ok {
			out = append(out, v)
		}
		if v, ok := unaltShifted[name]; ok {
			out = append(out, v)
		}
	case shiftHeld:
		if v, ok := shifted[name]; ok {
			out = append(out, v)
		}
		if v, ok := unshifted[name]; ok {
			out = append(out, v)
		}
	case altHeld:
		if v, ok := alted[name]; ok {
			out = append(out, v)
		}
		if v, ok := unalted[name]; ok {
			out = append(out, v)
		}
	}
	return dedupe(out)
}

func dedupe(names []string) []string {
	if len(names) < 2 {
		return names
	}
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
