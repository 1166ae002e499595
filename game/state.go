package game

import (
	"fmt"
	"strings"
)

// King steps in generation order: row change, then column change.
var steps = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// State is the board configuration: where every piece stands and the die of the
// current turn. State is a value, operations on it always return a new copy, so
// snapshots handed out never alias each other.
type State struct {
	positions [NumPieces]Position
	die       int
}

// NewState builds a state from piece positions and the current die.
func NewState(positions [NumPieces]Position, die int) State {
	return State{positions: positions, die: die}
}

func (s State) Die() int {
	return s.die
}

// WithDie returns a copy of the state for a turn rolled with die.
func (s State) WithDie(die int) State {
	s.die = die
	return s
}

// Positions returns a copy of all piece positions, indexed by piece-1.
func (s State) Positions() [NumPieces]Position {
	return s.positions
}

// Position returns where piece p stands, Captured if it was removed.
func (s State) Position(p Piece) Position {
	if !p.Valid() {
		return Captured
	}
	return s.positions[p.index()]
}

// LivePieces returns the numbers of the pieces still in play, ascending.
func (s State) LivePieces() []Piece {
	pieces := make([]Piece, 0, NumPieces)
	for i, pos := range s.positions {
		if pos.Live() {
			pieces = append(pieces, Piece(i+1))
		}
	}
	return pieces
}

// MovablePieces returns the pieces allowed to move under the current die.
func (s State) MovablePieces() []Piece {
	return MovablePiecesFor(s.positions, s.die)
}

// MovablePiecesFor applies the die rule: the piece numbered die moves if it is still
// live, otherwise the smallest live piece above die and the largest live piece below
// it do.
func MovablePiecesFor(positions [NumPieces]Position, die int) []Piece {
	var minBigger, maxSmaller Piece
	for i, pos := range positions {
		if !pos.Live() {
			continue
		}
		piece := Piece(i + 1)
		switch {
		case int(piece) == die:
			return []Piece{piece}
		case int(piece) > die:
			if minBigger == 0 || piece < minBigger {
				minBigger = piece
			}
		default:
			if piece > maxSmaller {
				maxSmaller = piece
			}
		}
	}

	movable := make([]Piece, 0, 2)
	if minBigger != 0 {
		movable = append(movable, minBigger)
	}
	if maxSmaller != 0 {
		movable = append(movable, maxSmaller)
	}
	return movable
}

// CanMove reports whether piece p is movable under the current die.
func (s State) CanMove(p Piece) bool {
	for _, movable := range s.MovablePieces() {
		if movable == p {
			return true
		}
	}
	return false
}

// LegalMoves generates every king step of every movable piece that stays on the board.
func (s State) LegalMoves() []Move {
	var moves []Move
	for _, piece := range s.MovablePieces() {
		moves = append(moves, s.movesOf(piece)...)
	}
	return moves
}

// MovesOf returns the legal moves of piece p, none if p is not movable this turn.
func (s State) MovesOf(p Piece) []Move {
	if !s.CanMove(p) {
		return nil
	}
	return s.movesOf(p)
}

func (s State) movesOf(piece Piece) []Move {
	from := s.positions[piece.index()]
	if !from.Live() {
		return nil
	}

	moves := make([]Move, 0, len(steps))
	for _, step := range steps {
		row, col := from.Row()+step[0], from.Col()+step[1]
		if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
			continue
		}
		to := At(row, col)
		if to == Hole {
			continue
		}
		moves = append(moves, Move{Piece: piece, From: from, To: to})
	}
	return moves
}

// Captures reports which piece, if any, move would remove from play.
func (s State) Captures(move Move) (Piece, bool) {
	for i, pos := range s.positions {
		if Piece(i+1) != move.Piece && pos.Live() && pos == move.To {
			return Piece(i + 1), true
		}
	}
	return 0, false
}

// Play applies move and returns the resulting state. The move is not validated;
// callers pass moves obtained from LegalMoves.
func (s State) Play(move Move) State {
	if captured, ok := s.Captures(move); ok {
		s.positions[captured.index()] = Captured
	}
	s.positions[move.Piece.index()] = move.To
	return s
}

// IsWinning reports whether target stands on the goal.
func (s State) IsWinning(target Piece) bool {
	return target.Valid() && s.positions[target.index()] == Goal
}

func (s State) String() string {
	parts := make([]string, len(s.positions))
	for i, pos := range s.positions {
		parts[i] = fmt.Sprintf("%d", int(pos))
	}
	return fmt.Sprintf("[%s] die=%d", strings.Join(parts, " "), s.die)
}
