package agent

import (
	"sync"

	"einstein/experiments/metrics"
	"einstein/game"
	"einstein/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random legal moves. Agents built
// with the same seed play the same moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Name() string {
	return "Random Player"
}

func (a *randomAgent) FindMove(state game.State, turn game.Turn) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, searcher.ErrNoMove
	}
	a.mu.Lock()
	move := moves[a.rng.Intn(len(moves))]
	a.mu.Unlock()
	return move, metrics.SearchMetric{}, nil
}
