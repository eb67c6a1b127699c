package mongo

import (
	"strings"
	"testing"

	"github.com/logistics-id/simplemongo/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 24)

	got, err := ParseID(id)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = ParseID(strings.ToUpper(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, bad := range []string{"", "paolo", "507f1f77bcf86cd79943901", "507f1f77bcf86cd79943901z", id + "00"} {
		_, err := ParseID(bad)
		assert.ErrorIs(t, err, common.ErrInvalidID, bad)
	}
}

func TestNewIDIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		_, dup := seen[id]
		require.False(t, dup, id)
		seen[id] = struct{}{}
	}
}
