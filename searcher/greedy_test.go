package searcher

import (
	"testing"

	"einstein/game"

	"github.com/stretchr/testify/require"
)

func TestTargetMove(t *testing.T) {
	t.Run("closest to the goal", func(t *testing.T) {
		state := game.NewState(positions(12), 1)

		move, ok := NewSearcher(1).targetMove(state)

		require.True(t, ok)
		require.Equal(t, game.Move{Piece: 1, From: 12, To: 1}, move)
	})

	t.Run("captures are preferred over distance", func(t *testing.T) {
		state := game.NewState(positions(33, 43), 1)

		move, ok := NewSearcher(1).targetMove(state)

		require.True(t, ok)
		require.Equal(t, game.Move{Piece: 1, From: 33, To: 43}, move, "Capture should win over the closer 23")
	})

	t.Run("closest capture among captures", func(t *testing.T) {
		state := game.NewState(positions(33, 43, 23), 1)

		move, ok := NewSearcher(1).targetMove(state)

		require.True(t, ok)
		require.Equal(t, game.Move{Piece: 1, From: 33, To: 23}, move)
	})

	t.Run("target not movable", func(t *testing.T) {
		state := game.NewState(positions(33, 43), 2)

		_, ok := NewSearcher(1).targetMove(state)

		require.False(t, ok)
	})
}

func TestScoreMove(t *testing.T) {
	t.Run("blocking the target's route scores lower", func(t *testing.T) {
		state := game.NewState(positions(55, 34), 2)
		s := NewSearcher(1)

		onPath := s.scoreMove(state, game.Move{Piece: 2, From: 34, To: 33}, 0)
		offPath := s.scoreMove(state, game.Move{Piece: 2, From: 34, To: 24}, 0)

		require.Less(t, onPath, offPath, "Path-blocking move should rank below an equivalent clear move")
		require.Equal(t, offPathBonus, offPath-onPath)
	})

	t.Run("next die enabling the target", func(t *testing.T) {
		// Capturing piece 2 lets die 2 bracket down to the target
		state := game.NewState(positions(55, 81, 80), 3)
		s := NewSearcher(1)

		capture := s.scoreMove(state, game.Move{Piece: 3, From: 80, To: 81}, 2)
		quiet := s.scoreMove(state, game.Move{Piece: 3, From: 80, To: 71}, 2)

		require.Equal(t, nextTurnBonus+captureBonus+proximityBase+offPathBonus, capture)
		require.Equal(t, proximityBase-1+offPathBonus, quiet)
	})

	t.Run("capturing an obstacle", func(t *testing.T) {
		state := game.NewState(positions(55, 34, 33), 2)
		s := NewSearcher(1)

		got := s.scoreMove(state, game.Move{Piece: 2, From: 34, To: 33}, 0)

		require.Equal(t, captureBonus+clearPathBonus+proximityBase, got,
			"Clearing the route earns the capture and path bonuses but not the off-path bonus")
	})
}

func TestGreedy(t *testing.T) {
	t.Run("first off-path move wins ties", func(t *testing.T) {
		state := game.NewState(positions(55, 34), 2)
		turn := game.Turn{Dice: []int{2}}

		move, err := NewSearcher(1).greedy(state, turn, state.LegalMoves())

		require.NoError(t, err)
		require.Equal(t, game.Move{Piece: 2, From: 34, To: 23}, move)
	})

	t.Run("movable target is walked home", func(t *testing.T) {
		state := game.NewState(positions(55, 34), 1)
		turn := game.Turn{Dice: []int{1}}

		move, err := NewSearcher(1).greedy(state, turn, state.LegalMoves())

		require.NoError(t, err)
		require.Equal(t, game.Move{Piece: 1, From: 55, To: 44}, move)
	})

	t.Run("never captures the target", func(t *testing.T) {
		state := game.NewState(positions(44, 55), 2)
		turn := game.Turn{Dice: []int{2, 2}}

		move, err := NewSearcher(1).greedy(state, turn, state.LegalMoves())

		require.NoError(t, err)
		require.NotEqual(t, game.Position(44), move.To)
	})
}
