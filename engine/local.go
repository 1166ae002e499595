package engine

import (
	"time"

	"einstein/agent"
	"einstein/experiments/metrics"
	"einstein/game"
	"einstein/searcher"
	"einstein/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Engine drives a single-player game: one ply per die, until the target reaches the
// goal, the dice run out or the move budget is spent.
type Engine struct {
	level    *game.Level
	agent    agent.Agent
	state    game.State
	ply      int
	maxMoves int
	moveLog  *MoveLog
	gameOver bool
}

// LocalEngine sets up a game of level played by a. Levels the board model cannot play
// are rejected with game.ErrInvalidLevel.
func LocalEngine(level *game.Level, a agent.Agent, options ...Option) (*Engine, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		level:    level,
		agent:    a,
		state:    level.Start(),
		maxMoves: defaultMaxMoves(level),
		moveLog:  NewMoveLog(nil),
	}
	for _, option := range options {
		option(e)
	}
	e.gameOver = e.isOver()
	return e, nil
}

// State returns the current state, rolled with the current ply's die.
func (e *Engine) State() game.State {
	return e.state
}

// Turn returns the decision context of the current ply.
func (e *Engine) Turn() game.Turn {
	return game.Turn{
		Ply:       e.ply,
		Remaining: e.maxMoves - (e.ply + 1),
		Dice:      e.level.Dice,
	}
}

func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Run executes the entire game loop and returns its outcome.
func (e *Engine) Run() (Result, error) {
	startTime := time.Now()
	log.Info().
		Str("level", e.level.Name).
		Str("agent", e.agent.Name()).
		Int("target", int(e.level.Target)).
		Msg("game started")

	if err := e.moveLog.WriteHeader(e.agent.Name(), e.level); err != nil {
		return Result{}, err
	}

	var moveMetrics []metrics.MoveMetric
	for !e.gameOver {
		turn := e.Turn()
		move, searchMetric, err := e.agent.FindMove(e.state, turn)
		if errors.Is(err, searcher.ErrNoMove) {
			log.Info().Int("ply", turn.Ply).Msg("no legal move, game over")
			break
		}
		if err != nil {
			return Result{}, errors.WithMessagef(err, "ply %d", turn.Ply)
		}

		if err := e.Play(move); err != nil {
			return Result{}, err
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn.Ply + 1,
			Piece:        int(move.Piece),
			From:         int(move.From),
			To:           int(move.To),
			SearchMetric: searchMetric,
		})
	}

	endTime := time.Now()
	won := e.state.IsWinning(e.level.Target)
	log.Info().
		Str("level", e.level.Name).
		Bool("won", won).
		Int("moves", e.ply).
		Msg("game over")

	return Result{
		Won:       won,
		Moves:     e.ply,
		Positions: e.state.Positions(),
		GameMetric: metrics.GameMetric{
			Level:      e.level.Name,
			Agent:      e.agent.Name(),
			Won:        won,
			StartTime:  startTime,
			EndTime:    endTime,
			Duration:   endTime.Sub(startTime),
			TotalMoves: e.ply,
		},
		MoveMetrics: moveMetrics,
	}, nil
}

// Play validates and applies one move for the current ply, then rolls the next die.
func (e *Engine) Play(move game.Move) error {
	if e.gameOver {
		return ErrGameOver
	}
	if !utils.Contains(e.state.LegalMoves(), move) {
		return errors.Wrapf(ErrIllegalMove, "%v with die %d", move, e.state.Die())
	}

	e.state = e.state.Play(move)
	if err := e.moveLog.WritePositions(e.state.Positions()); err != nil {
		return err
	}
	log.Debug().
		Int("ply", e.ply).
		Int("die", e.state.Die()).
		Stringer("move", move).
		Stringer("state", e.state).
		Msg("move played")

	e.ply++
	if e.gameOver = e.isOver(); !e.gameOver {
		e.state = e.state.WithDie(e.level.Dice[e.ply])
	}
	return nil
}

func (e *Engine) isOver() bool {
	switch {
	case e.state.IsWinning(e.level.Target):
		return true
	case e.ply >= e.maxMoves:
		return true
	case e.ply >= len(e.level.Dice):
		log.Info().Int("ply", e.ply).Msg("die sequence exhausted")
		return true
	}
	return false
}
