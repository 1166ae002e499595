package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateDistance(t *testing.T) {
	t.Run("captured target is unreachable", func(t *testing.T) {
		got := EvaluateDistance(NewState(positions(-1, 12), 2), 1, 0)

		require.False(t, got.Reachable(), "Lost state should be unreachable")
		require.True(t, got.Exceeds(1000), "Unreachable should exceed every budget")
		_, ok := got.Cost()
		require.False(t, ok, "Unreachable should carry no cost")
	})

	t.Run("target home scores zero", func(t *testing.T) {
		got := EvaluateDistance(NewState(positions(0, 12), 2), 1, 0)

		require.Equal(t, Scored(0), got)
	})

	t.Run("twice the manhattan distance", func(t *testing.T) {
		got := EvaluateDistance(NewState(positions(33), 2), 1, 0)

		require.Equal(t, Scored(12), got)
	})

	t.Run("look-ahead die that moves the target", func(t *testing.T) {
		exact := EvaluateDistance(NewState(positions(33), 2), 1, 1)
		bracket := EvaluateDistance(NewState(positions(33), 2), 1, 3)

		require.Equal(t, Scored(8), exact, "Exact die should grant the mobility bonus")
		require.Equal(t, Scored(8), bracket, "Bracketing die should grant the mobility bonus")
	})

	t.Run("look-ahead die that moves another piece", func(t *testing.T) {
		got := EvaluateDistance(NewState(positions(33, -1, 90), 3), 1, 3)

		require.Equal(t, Scored(12), got, "Die matching piece 3 should not help the target")
	})

	t.Run("obstacle on the staircase", func(t *testing.T) {
		got := EvaluateDistance(NewState(positions(33, 11), 2), 1, 0)

		require.Equal(t, Scored(14), got, "Piece on 11 blocks the route 33 -> 11 -> 00")
	})

	t.Run("target able to capture", func(t *testing.T) {
		got := EvaluateDistance(NewState(positions(33, 34), 1), 1, 0)

		require.Equal(t, Scored(9), got)
	})

	t.Run("non-target pieces close to each other", func(t *testing.T) {
		got := EvaluateDistance(NewState(positions(55, 90, 91), 2), 1, 0)

		require.Equal(t, Scored(18), got, "Two adjacent non-target pieces should each earn a bonus")
	})

	t.Run("clamped at zero", func(t *testing.T) {
		got := EvaluateDistance(NewState(positions(1, 0), 1), 1, 1)

		require.Equal(t, Scored(0), got)
		require.False(t, NewState(positions(1, 0), 1).IsWinning(1), "Zero estimate is not a win")
	})
}

func TestPath(t *testing.T) {
	require.Equal(t, []Position{11, 0}, Path(33, Goal), "Diagonal walk should skip the hole")
	require.Equal(t, []Position{44, 33, 11, 0}, Path(55, Goal))
	require.Equal(t, []Position{41, 30, 20, 10, 0}, Path(52, Goal), "Diagonal first, then straight")
	require.Equal(t, []Position{6, 5, 4, 3, 2, 1, 0}, Path(7, Goal))
	require.Empty(t, Path(Goal, Goal))
	require.Empty(t, Path(Captured, Goal))
}

func TestOnTargetPath(t *testing.T) {
	state := NewState(positions(33, 50), 2)

	require.True(t, OnTargetPath(state, 1, 11))
	require.False(t, OnTargetPath(state, 1, 22), "Hole is never on a path")
	require.False(t, OnTargetPath(state, 1, 34))
	require.False(t, OnTargetPath(NewState(positions(-1, 50), 2), 1, 0), "Captured target has no path")
}

func TestMinDistanceToOthers(t *testing.T) {
	state := NewState(positions(33, 50, 53, -1, 99), 2)

	require.Equal(t, 3, MinDistanceToOthers(state, 1, 2, 50), "Closest other non-target piece is 53")
	require.Equal(t, 3, MinDistanceToOthers(NewState(positions(33, 50), 2), 1, 2, 50),
		"No other non-target piece should default to 3")
	require.Equal(t, 0, MinDistanceToOthers(state, 1, 2, 53))
}
