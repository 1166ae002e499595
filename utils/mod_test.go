package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	t.Run("returns first index of item", func(t *testing.T) {
		require.Equal(t, 1, FindIndex([]int{3, 5, 5}, 5), "Should return the first match")
	})

	t.Run("returns -1 when missing", func(t *testing.T) {
		require.Equal(t, -1, FindIndex([]int{3, 5}, 7), "Missing item should return -1")
		require.False(t, Contains([]int{}, 0), "Empty slice contains nothing")
	})
}

func TestAbs(t *testing.T) {
	require.Equal(t, 4, Abs(-4))
	require.Equal(t, 4, Abs(4))
	require.Equal(t, int64(0), Abs(int64(0)))
}
