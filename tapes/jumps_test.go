package tapes

import (
	"testing"

	"github.com/reusee/tapecode/programs"
	"github.com/stretchr/testify/require"
)

func TestBuildJumpTable(t *testing.T) {
	table, err := BuildJumpTable([]rune("+[>[-]<]."))
	require.NoError(t, err)
	require.Equal(t, JumpTable{-1, 7, -1, 5, -1, 3, -1, 1, -1}, table)
}

func TestJumpCache(t *testing.T) {
	cache, err := NewJumpCache(2)
	require.NoError(t, err)

	get := func(p programs.Program) (JumpTable, error) {
		return cache.Get(p, p.Ops())
	}

	a, err := get("[]")
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())
	b, err := get("[]")
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, 1, cache.Len())

	_, err = get("[")
	require.ErrorIs(t, err, ErrUnmatchedOpen)
	require.Equal(t, 1, cache.Len())

	_, err = get("+[]")
	require.NoError(t, err)
	_, err = get("++[]")
	require.NoError(t, err)
	require.Equal(t, 2, cache.Len())

	var nilCache *JumpCache
	table, err := nilCache.Get("[]", []rune("[]"))
	require.NoError(t, err)
	require.Equal(t, JumpTable{1, 0}, table)
}
