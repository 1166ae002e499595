package searcher

import (
	"einstein/experiments/metrics"
	"einstein/game"

	"github.com/rs/zerolog/log"
)

// Searcher picks moves that bring one target piece home. It keeps no state between
// decisions: everything a decision depends on arrives in the state and the turn.
type Searcher struct {
	target   game.Piece
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func NewSearcher(target game.Piece, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		target:   target,
		evaluate: game.EvaluateDistance,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Target() game.Piece {
	return s.target
}

// ChooseMove returns the move to play this turn. With plies left in the budget it runs
// the bounded search and falls back to the greedy scorer when no plan fits; with no
// plies left it pushes the target toward the goal directly.
func (s *Searcher) ChooseMove(state game.State, turn game.Turn) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, ErrNoMove
	}

	s.metrics.Start(turn.Remaining)

	if turn.Remaining <= 0 {
		s.metrics.SetSource(metrics.FromForced)
		move, ok := s.targetMove(state)
		if !ok {
			move = s.firstSafe(state, moves)
		}
		return s.complete(turn, move)
	}

	if move, ok := s.search(state, turn, turn.Remaining); ok {
		s.metrics.SetSource(metrics.FromSearch)
		return s.complete(turn, move)
	}

	s.metrics.SetSource(metrics.FromFallback)
	move, err := s.greedy(state, turn, moves)
	if err != nil {
		return game.Move{}, s.metrics.Complete(), err
	}
	return s.complete(turn, move)
}

func (s *Searcher) complete(turn game.Turn, move game.Move) (game.Move, metrics.SearchMetric, error) {
	metric := s.metrics.Complete()
	log.Debug().
		Int("ply", turn.Ply).
		Int("remaining", turn.Remaining).
		Stringer("move", move).
		Msg("chose move")
	return move, metric, nil
}

// search runs a best-first search over g+h bounded to depth plies and returns the
// first move of the first winning line it pops.
func (s *Searcher) search(root game.State, turn game.Turn, depth int) (game.Move, bool) {
	rootH, ok := s.evaluate(root, s.target, lookahead(turn, turn.Ply)).Cost()
	if !ok { // Target already lost
		return game.Move{}, false
	}

	visited := map[stateKey]int{keyOf(root, turn.Ply): 0}
	open := &openSet{}
	open.push(&node{state: root, h: rootH, dieIndex: turn.Ply})

	for !open.empty() {
		current := open.pop()

		if current.state.IsWinning(s.target) {
			if current.firstMove == nil {
				return game.Move{}, false
			}
			return *current.firstMove, true
		}
		if current.g >= depth {
			continue
		}

		s.metrics.AddExpanded()
		for _, move := range current.state.LegalMoves() {
			next := current.state.Play(move)
			g := current.g + 1

			// Keyed by the decision's ply cursor, not the node's own die index
			key := keyOf(next, turn.Ply)
			if seen, ok := visited[key]; ok && seen <= g {
				s.metrics.AddPruned(metrics.PruneVisited)
				continue
			}
			if !next.Position(s.target).Live() {
				s.metrics.AddPruned(metrics.PruneTarget)
				continue
			}
			if game.CapturesTarget(current.state, s.target, move) {
				s.metrics.AddPruned(metrics.PruneCapture)
				continue
			}

			estimate := s.evaluate(next, s.target, lookahead(turn, current.dieIndex+1))
			if estimate.Exceeds(depth - g) {
				s.metrics.AddPruned(metrics.PruneBudget)
				continue
			}

			if move.Piece != s.target &&
				game.OnTargetPath(next, s.target, move.To) &&
				!game.CapturesOther(current.state, s.target, move) {
				s.metrics.AddPruned(metrics.PruneBlocking)
				continue
			}

			first := current.firstMove
			if first == nil {
				m := move
				first = &m
			}
			h, _ := estimate.Cost()
			open.push(&node{
				state:     next,
				firstMove: first,
				g:         g,
				h:         h,
				dieIndex:  current.dieIndex + 1,
			})
			visited[key] = g
			s.metrics.AddPushed()
		}
	}
	return game.Move{}, false
}

// firstSafe returns the first move that leaves the target alone, the first move when
// every move lands on it.
func (s *Searcher) firstSafe(state game.State, moves []game.Move) game.Move {
	for _, move := range moves {
		if !game.CapturesTarget(state, s.target, move) {
			return move
		}
	}
	return moves[0]
}

// lookahead returns the die following index i, 0 past the end of the sequence.
func lookahead(turn game.Turn, i int) int {
	die, _ := turn.DieAt(i + 1)
	return die
}
