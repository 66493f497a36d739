package combo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keyscope/internal/input/key"
)

func TestHistorySingleKeyRoundTrip(t *testing.T) {
	h := NewHistory(4)

	// keydown then keyup extend the same combination.
	h.Record("a", key.KindKeydown)
	h.Record("a", key.KindKeyup)
	assert.Equal(t, 1, h.Len())

	// A second keydown of the same key after its keyup starts a new
	// combination.
	h.Record("a", key.KindKeydown)
	assert.Equal(t, 2, h.Len())
}

func TestHistoryKeydownAfterAnyKeyupStartsNew(t *testing.T) {
	h := NewHistory(4)

	h.Record("a", key.KindKeydown)
	h.Record("a", key.KindKeyup)

	// A different key's keydown also starts a new combination because
	// the current one already contains a keyup.
	h.Record("b", key.KindKeydown)
	assert.Equal(t, 2, h.Len())
	assert.True(t, h.Current().Contains("b"))
	assert.False(t, h.Current().Contains("a"))
}

func TestHistoryHeldKeyCarriesForward(t *testing.T) {
	h := NewHistory(4)

	// Hold shift across combinations.
	h.Record("Shift", key.KindKeydown)
	h.Record("a", key.KindKeydown)
	h.Record("a", key.KindKeyup)
	h.Record("b", key.KindKeydown)

	cur := h.Current()
	assert.True(t, cur.Contains("Shift"), "held key survives the new combination")
	assert.True(t, cur.Contains("b"))
	assert.False(t, cur.Contains("a"), "released key does not carry forward")
}

func TestHistoryRepeatKeypressStartsNew(t *testing.T) {
	h := NewHistory(4)

	h.Record("a", key.KindKeydown)
	h.Record("a", key.KindKeypress)
	assert.Equal(t, 1, h.Len())

	// Auto-repeat: a second keypress without keyup starts a new
	// combination.
	h.Record("a", key.KindKeypress)
	assert.Equal(t, 2, h.Len())
}

func TestHistoryBound(t *testing.T) {
	h := NewHistory(2)

	for i := 0; i < 10; i++ {
		h.Record("a", key.KindKeydown)
		h.Record("a", key.KindKeyup)
	}
	assert.LessOrEqual(t, h.Len(), 3, "history never exceeds maxLength+1")
}

func TestHistoryPrior(t *testing.T) {
	h := NewHistory(4)
	assert.Nil(t, h.Prior())

	h.Record("a", key.KindKeydown)
	h.Record("a", key.KindKeyup)
	h.Record("b", key.KindKeydown)

	prior := h.Prior()
	require.Len(t, prior, 1)
	assert.Contains(t, prior[0].IDs(), "a")
}

func TestHistoryCollapse(t *testing.T) {
	h := NewHistory(4)

	h.Record("Meta", key.KindKeydown)
	h.Record("s", key.KindKeydown)
	h.Record("s", key.KindKeyup)
	h.Record("x", key.KindKeydown)
	require.Equal(t, 2, h.Len())

	h.Collapse()
	assert.Equal(t, 1, h.Len())
	cur := h.Current()
	assert.True(t, cur.Contains("Meta"), "held key survives collapse")
	assert.True(t, cur.Contains("x"))
	assert.False(t, cur.Contains("s"))
}
