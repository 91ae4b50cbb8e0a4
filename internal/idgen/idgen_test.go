package idgen

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_GenerateIsUnique(t *testing.T) {
	gen := UUID{}
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := gen.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}

func TestUUID_GenerateFormat(t *testing.T) {
	id := UUID{}.Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, id, parsed.String())
}

func TestFunc_Generate(t *testing.T) {
	n := 0
	var gen Generator = Func(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})

	assert.Equal(t, "id-1", gen.Generate())
	assert.Equal(t, "id-2", gen.Generate())
}
