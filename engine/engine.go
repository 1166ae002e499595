package engine

import (
	"io"

	"einstein/experiments/metrics"
	"einstein/game"
	"einstein/meta"

	"github.com/pkg/errors"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
)

type Option func(e *Engine)

// WithMaxMoves overrides the move budget of the game.
func WithMaxMoves(maxMoves int) Option {
	return func(e *Engine) {
		e.maxMoves = maxMoves
	}
}

// WithMoveLog records the game in the moves.txt format on w.
func WithMoveLog(w io.Writer) Option {
	return func(e *Engine) {
		e.moveLog = NewMoveLog(w)
	}
}

// Result is the outcome of a finished game.
type Result struct {
	Won         bool
	Moves       int
	Positions   [game.NumPieces]game.Position
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

// defaultMaxMoves picks the level's own budget when it has one.
func defaultMaxMoves(level *game.Level) int {
	if level.MaxMoves > 0 {
		return level.MaxMoves
	}
	return meta.MAX_MOVES
}
