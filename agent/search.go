package agent

import (
	"einstein/experiments/metrics"
	"einstein/game"
	"einstein/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent that plans moves for target with the bounded search.
func NewSearchAgent(target game.Piece, options ...searcher.Option) Agent {
	return searchAgent{searcher: searcher.NewSearcher(target, options...)}
}

func (a searchAgent) Name() string {
	return "AI Player"
}

func (a searchAgent) FindMove(state game.State, turn game.Turn) (game.Move, metrics.SearchMetric, error) {
	return a.searcher.ChooseMove(state, turn)
}
