package agent

import (
	"einstein/experiments/metrics"
	"einstein/game"
)

type Agent interface {
	// Name identifies the player in move logs and experiment records
	Name() string
	// FindMove returns the move to play this turn and performance metrics (if collected).
	// It returns searcher.ErrNoMove when the state has no legal move.
	FindMove(state game.State, turn game.Turn) (game.Move, metrics.SearchMetric, error)
}
