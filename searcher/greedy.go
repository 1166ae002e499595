package searcher

import "einstein/game"

// Greedy scoring weights
const (
	nextTurnBonus  = 6
	captureBonus   = 5
	clearPathBonus = 2
	proximityBase  = 3
	offPathBonus   = 2
)

// greedy picks a move one ply deep when the search found no plan. A movable target is
// walked toward the goal; otherwise the other pieces set it up for the next die.
func (s *Searcher) greedy(state game.State, turn game.Turn, moves []game.Move) (game.Move, error) {
	if state.CanMove(s.target) {
		if move, ok := s.targetMove(state); ok {
			return move, nil
		}
	}

	nextDie, _ := turn.NextDie()
	var best game.Move
	bestScore, found := 0, false
	for _, move := range moves {
		if game.CapturesTarget(state, s.target, move) {
			continue
		}
		if score := s.scoreMove(state, move, nextDie); !found || score > bestScore {
			best, bestScore, found = move, score, true
		}
	}
	if !found {
		return game.Move{}, ErrNoMove
	}
	return best, nil
}

// targetMove returns the target's move closest to the goal, captures first.
func (s *Searcher) targetMove(state game.State) (game.Move, bool) {
	var best game.Move
	found, capturing := false, false
	minDistance := 0
	for _, move := range state.MovesOf(s.target) {
		if game.CapturesTarget(state, s.target, move) {
			continue
		}
		distance := game.Distance(move.To, game.Goal)
		if game.CapturesOther(state, s.target, move) {
			if !capturing || distance < minDistance {
				best, minDistance, capturing, found = move, distance, true, true
			}
		} else if !capturing && (!found || distance < minDistance) {
			best, minDistance, found = move, distance, true
		}
	}
	return best, found
}

// scoreMove rates a non-target move, higher is better.
func (s *Searcher) scoreMove(state game.State, move game.Move, nextDie int) int {
	score := 0
	if game.CanMoveNext(state.Play(move), s.target, nextDie) {
		score += nextTurnBonus
	}
	if game.CapturesOther(state, s.target, move) {
		score += captureBonus
		if game.OnTargetPath(state, s.target, move.To) {
			score += clearPathBonus
		}
	}
	score += proximityBase - game.MinDistanceToOthers(state, s.target, move.Piece, move.To)
	if !game.OnTargetPath(state, s.target, move.To) {
		score += offPathBonus
	}
	return score
}
