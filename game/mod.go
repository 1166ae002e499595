package game

import (
	"fmt"

	"einstein/utils"
)

const (
	NumPieces = 6
	BoardSize = 10 // Rows and columns are both 0..9
)

// Position encodes a cell as row*10+col.
type Position int

const (
	Captured Position = -1 // Piece removed from play
	Goal     Position = 0  // Cell the target piece must reach
	Hole     Position = 22 // Removed cell, never a legal destination
)

// At returns the position of the cell at row, col.
func At(row, col int) Position {
	return Position(row*BoardSize + col)
}

func (p Position) Row() int {
	return int(p) / BoardSize
}

func (p Position) Col() int {
	return int(p) % BoardSize
}

// Live reports whether the position holds a piece still in play.
func (p Position) Live() bool {
	return p != Captured
}

// OnBoard reports whether p is a cell a piece may occupy.
func (p Position) OnBoard() bool {
	return p >= 0 && p < BoardSize*BoardSize && p != Hole
}

func (p Position) String() string {
	if p == Captured {
		return "-1"
	}
	return fmt.Sprintf("%d%d", p.Row(), p.Col())
}

// Distance returns the Manhattan distance between two live positions.
func Distance(a, b Position) int {
	return utils.Abs(a.Row()-b.Row()) + utils.Abs(a.Col()-b.Col())
}

// Piece is numbered 1..6; its location lives at index piece-1.
type Piece int

func (p Piece) index() int {
	return int(p) - 1
}

func (p Piece) Valid() bool {
	return p >= 1 && p <= NumPieces
}

// Turn is the per-decision context handed to a player. It never changes during a
// decision; the driver builds a new one every ply.
type Turn struct {
	Ply       int   // Index of the current die in Dice
	Remaining int   // Plies left in the move budget after this one
	Dice      []int // Full die sequence of the level
}

// NextDie returns the die that follows the current one, if the sequence has one.
func (t Turn) NextDie() (int, bool) {
	return t.DieAt(t.Ply + 1)
}

// DieAt returns the die at index i of the sequence.
func (t Turn) DieAt(i int) (int, bool) {
	if i < 0 || i >= len(t.Dice) {
		return 0, false
	}
	return t.Dice[i], true
}

// Evaluates how far the state is from a win for target. lookahead is the die of the
// following turn, 0 when the sequence has none.
type Evaluate func(s State, target Piece, lookahead int) Estimate
