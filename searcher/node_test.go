package searcher

import (
	"testing"

	"einstein/game"

	"github.com/stretchr/testify/require"
)

func TestFrontierOrder(t *testing.T) {
	open := &openSet{}
	open.push(&node{g: 1, h: 4})
	open.push(&node{g: 2, h: 1})
	open.push(&node{g: 0, h: 3})
	open.push(&node{g: 1, h: 2})

	require.Equal(t, 3, open.pop().cost(), "Lowest cost first")
	second := open.pop()
	require.Equal(t, 3, second.cost())
	require.Equal(t, 2, second.seq, "Ties should pop in insertion order")
	require.Equal(t, 3, open.pop().cost())
	require.Equal(t, 5, open.pop().cost())
	require.True(t, open.empty())
}

func TestFrontierKeepsFirstMove(t *testing.T) {
	open := &openSet{}
	first := game.Move{Piece: 1, From: 12, To: 1}
	open.push(&node{g: 1, h: 2, firstMove: &first})
	open.push(&node{g: 0, h: 5})

	n := open.pop()

	require.Equal(t, &first, n.firstMove)
	require.Nil(t, open.pop().firstMove, "Root carries no first move")
}
