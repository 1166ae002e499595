package game

import "fmt"

// Heuristic weights
const (
	distanceWeight  = 2
	captureBonus    = 3
	lookaheadBonus  = 4
	obstaclePenalty = 2
	proximityBonus  = 1
)

// Estimate is the heuristic cost of a state. A state whose target was captured can
// never win and is Unreachable; every other state carries a finite cost.
type Estimate struct {
	cost      int
	reachable bool
}

// Unreachable is the estimate of a lost state.
var Unreachable = Estimate{}

// Scored returns a finite estimate.
func Scored(cost int) Estimate {
	return Estimate{cost: cost, reachable: true}
}

func (e Estimate) Reachable() bool {
	return e.reachable
}

// Cost returns the finite cost and whether there is one.
func (e Estimate) Cost() (int, bool) {
	return e.cost, e.reachable
}

// Exceeds reports whether the estimate cannot fit within limit plies. Unreachable
// exceeds every limit.
func (e Estimate) Exceeds(limit int) bool {
	return !e.reachable || e.cost > limit
}

func (e Estimate) String() string {
	if !e.reachable {
		return "unreachable"
	}
	return fmt.Sprintf("%d", e.cost)
}

// EvaluateDistance scores how far the target is from the goal, twice its Manhattan
// distance, adjusted for capture chances, next-turn mobility, pieces standing in the
// way and non-target pieces close enough to trade captures.
func EvaluateDistance(s State, target Piece, lookahead int) Estimate {
	pos := s.Position(target)
	if !pos.Live() {
		return Unreachable
	}
	if pos == Goal {
		return Scored(0)
	}

	score := distanceWeight * Distance(pos, Goal)

	if targetCanCapture(s, target) {
		score -= captureBonus
	}
	if CanMoveNext(s, target, lookahead) {
		score -= lookaheadBonus
	}
	score += obstaclePenalty * countObstacles(s, target, pos)
	score -= proximityBonus * countProximity(s, target)

	return Scored(max(score, 0))
}

// CanMoveNext reports whether a turn rolled with die would let target move.
func CanMoveNext(s State, target Piece, die int) bool {
	if die < 1 || !s.Position(target).Live() {
		return false
	}
	for _, piece := range MovablePiecesFor(s.positions, die) {
		if piece == target {
			return true
		}
	}
	return false
}

func targetCanCapture(s State, target Piece) bool {
	for _, move := range s.MovesOf(target) {
		if CapturesOther(s, target, move) {
			return true
		}
	}
	return false
}

func countObstacles(s State, target Piece, from Position) int {
	count := 0
	for _, cell := range Path(from, Goal) {
		for i, pos := range s.positions {
			if Piece(i+1) != target && pos == cell {
				count++
				break
			}
		}
	}
	return count
}

func countProximity(s State, target Piece) int {
	count := 0
	for i, pos := range s.positions {
		piece := Piece(i + 1)
		if piece == target || !pos.Live() {
			continue
		}
		if MinDistanceToOthers(s, target, piece, pos) <= 1 {
			count++
		}
	}
	return count
}
