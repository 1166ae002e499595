package game

import "einstein/utils"

// Path returns the staircase route from one position to another: row and column step
// down together until each reaches its target, then the remaining one walks straight.
// The starting cell is not included, the hole is skipped.
func Path(from, to Position) []Position {
	if !from.Live() || !to.Live() {
		return nil
	}

	var path []Position
	row, col := from.Row(), from.Col()
	for row > to.Row() || col > to.Col() {
		if row > to.Row() {
			row--
		}
		if col > to.Col() {
			col--
		}
		if pos := At(row, col); pos != Hole {
			path = append(path, pos)
		}
	}
	return path
}

// OnTargetPath reports whether pos lies on the target's staircase route to the goal.
// A captured target, or one already home, has no route.
func OnTargetPath(s State, target Piece, pos Position) bool {
	from := s.Position(target)
	if !from.Live() || from == Goal {
		return false
	}
	return utils.Contains(Path(from, Goal), pos)
}

// CapturesOther reports whether move removes a piece other than target.
func CapturesOther(s State, target Piece, move Move) bool {
	captured, ok := s.Captures(move)
	return ok && captured != target
}

// CapturesTarget reports whether move lands on the target's cell.
func CapturesTarget(s State, target Piece, move Move) bool {
	pos := s.Position(target)
	return move.Piece != target && pos.Live() && pos == move.To
}

// MinDistanceToOthers returns the Manhattan distance from pos to the closest live
// piece other than mover and target, 3 when there is none.
func MinDistanceToOthers(s State, target, mover Piece, pos Position) int {
	best := -1
	for i, other := range s.positions {
		piece := Piece(i + 1)
		if piece == mover || piece == target || !other.Live() {
			continue
		}
		if d := Distance(pos, other); best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return 3
	}
	return best
}
