package game

import "fmt"

// Move represents a single king step of one piece. It is a plain value and carries no
// legality on its own.
type Move struct {
	Piece Piece
	From  Position
	To    Position
}

func (m Move) String() string {
	return fmt.Sprintf("piece %d: %s -> %s", m.Piece, m.From, m.To)
}
