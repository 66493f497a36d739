package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequence(t *testing.T) {
	tests := []struct {
		name       string
		expr       string
		wantPrefix string
		wantID     string
		wantLen    int
		wantSize   int
		wantErr    bool
	}{
		{
			name:     "single key",
			expr:     "a",
			wantID:   "a",
			wantLen:  1,
			wantSize: 1,
		},
		{
			name:     "combination",
			expr:     "cmd+s",
			wantID:   "Meta+s",
			wantLen:  1,
			wantSize: 2,
		},
		{
			name:     "combination order is canonical",
			expr:     "s+cmd",
			wantID:   "Meta+s",
			wantLen:  1,
			wantSize: 2,
		},
		{
			name:       "sequence",
			expr:       "up up down down",
			wantPrefix: "ArrowUp ArrowUp ArrowDown",
			wantID:     "ArrowDown",
			wantLen:    4,
			wantSize:   1,
		},
		{
			name:       "sequence with combinations",
			expr:       "ctrl+x ctrl+s",
			wantPrefix: "Control+x",
			wantID:     "Control+s",
			wantLen:    2,
			wantSize:   2,
		},
		{
			name:     "plus key",
			expr:     "ctrl++",
			wantID:   "++Control",
			wantLen:  1,
			wantSize: 2,
		},
		{
			name:    "empty expression",
			expr:    "",
			wantErr: true,
		},
		{
			name:    "unknown key",
			expr:    "hyperdrive+a",
			wantErr: true,
		},
		{
			name:    "duplicate key",
			expr:    "ctrl+control",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseSequence("test.action", tt.expr, KindKeydown)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrefix, m.Prefix)
			assert.Equal(t, tt.wantID, m.CombinationID)
			assert.Equal(t, tt.wantLen, m.SequenceLength)
			assert.Equal(t, tt.wantSize, m.Size)
			assert.Len(t, m.Keys, tt.wantSize)
			assert.Equal(t, "test.action", m.Action)
		})
	}
}

func TestParseSequenceRequiresKind(t *testing.T) {
	_, err := ParseSequence("test.action", "a", KindNone)
	assert.Error(t, err)
}

func TestMatcherSequenceID(t *testing.T) {
	m, err := ParseSequence("go.top", "g g", KindKeydown)
	require.NoError(t, err)
	assert.Equal(t, "g g", m.SequenceID())

	m, err = ParseSequence("save", "cmd+s", KindKeydown)
	require.NoError(t, err)
	assert.Equal(t, "Meta+s", m.SequenceID())
}

func TestCombinationID(t *testing.T) {
	assert.Equal(t, "Meta+Shift+s", CombinationID([]string{"s", "Shift", "Meta"}))
	assert.Equal(t, "a", CombinationID([]string{"a"}))
}
