package searcher

import (
	"errors"

	"einstein/experiments/metrics"
	"einstein/game"
)

// ErrNoMove is returned when the acting side has no legal move at all.
var ErrNoMove = errors.New("no legal move available")

type Option func(s *Searcher)

// WithEvaluationFn replaces the heuristic guiding the search.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithMetrics records per-decision search statistics.
func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

// stateKey identifies a reached configuration. ply is the cursor of the decision that
// started the search, shared by every node of one search.
type stateKey struct {
	positions [game.NumPieces]game.Position
	die       int
	ply       int
}

func keyOf(state game.State, ply int) stateKey {
	return stateKey{
		positions: state.Positions(),
		die:       state.Die(),
		ply:       ply,
	}
}
