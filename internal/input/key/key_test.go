package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cmd", "Meta"},
		{"Command", "Meta"},
		{"ctrl", "Control"},
		{"esc", "Escape"},
		{"return", "Enter"},
		{"up", "ArrowUp"},
		{"ArrowDown", "ArrowDown"},
		{"a", "a"},
		{"A", "A"},
		{"!", "!"},
		{" ", "Space"},
		{"f5", "F5"},
		{"NoSuchKey", "NoSuchKey"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("a"))
	assert.True(t, Known("Z"))
	assert.True(t, Known("Escape"))
	assert.True(t, Known("ArrowLeft"))
	assert.False(t, Known("NoSuchKey"))
}

func TestIsModifier(t *testing.T) {
	assert.True(t, IsModifier("Shift"))
	assert.True(t, IsModifier("Meta"))
	assert.False(t, IsModifier("a"))
	assert.False(t, IsModifier("Enter"))
}

func TestHasNativeKeypress(t *testing.T) {
	assert.True(t, HasNativeKeypress("a"))
	assert.True(t, HasNativeKeypress("!"))
	assert.True(t, HasNativeKeypress("Enter"))
	assert.True(t, HasNativeKeypress("Space"))
	assert.False(t, HasNativeKeypress("Shift"))
	assert.False(t, HasNativeKeypress("ArrowUp"))
	assert.False(t, HasNativeKeypress("F5"))
}

func TestKindFlags(t *testing.T) {
	var f Flags
	assert.True(t, f.Empty())

	f = f.With(KindKeydown)
	assert.True(t, f.Has(KindKeydown))
	assert.False(t, f.Has(KindKeyup))

	f = f.With(KindKeyup)
	assert.True(t, f.Has(KindKeyup))
	assert.False(t, f.Has(KindKeypress))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("keydown")
	assert.NoError(t, err)
	assert.Equal(t, KindKeydown, k)

	k, err = ParseKind("")
	assert.NoError(t, err)
	assert.Equal(t, KindNone, k)

	_, err = ParseKind("keyhover")
	assert.Error(t, err)
}

func TestAliases(t *testing.T) {
	assert.ElementsMatch(t, []string{"a", "A"}, Aliases("a"))
	assert.ElementsMatch(t, []string{"!", "1"}, Aliases("!"))
	assert.Equal(t, []string{"Shift"}, Aliases("Shift"))
}

func TestVariants(t *testing.T) {
	// No modifier context: only the key itself.
	assert.Equal(t, []string{"a"}, Variants("a", false, false))

	// Shift held: the shifted partner becomes a candidate.
	assert.Contains(t, Variants("a", true, false), "A")
	assert.Contains(t, Variants("1", true, false), "!")

	// Alt held: the alted character becomes a candidate.
	assert.Contains(t, Variants("a", false, true), "å")

	// Both held: the alt-shifted character becomes a candidate.
	assert.Contains(t, Variants("a", true, true), "Å")
}
