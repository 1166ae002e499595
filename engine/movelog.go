package engine

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"einstein/game"
)

// MoveLog writes a game in the moves.txt format: the player name, the die sequence,
// the target piece and the initial positions, then the positions after every move.
type MoveLog struct {
	w io.Writer
}

// NewMoveLog returns a log writing to w, discarding everything when w is nil.
func NewMoveLog(w io.Writer) *MoveLog {
	if w == nil {
		w = io.Discard
	}
	return &MoveLog{w: w}
}

func (l *MoveLog) WriteHeader(player string, level *game.Level) error {
	lines := []string{
		player,
		joinInts(level.Dice),
		strconv.Itoa(int(level.Target)),
		joinPositions(level.Positions),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(l.w, line); err != nil {
			return fmt.Errorf("failed to write move log header: %w", err)
		}
	}
	return nil
}

func (l *MoveLog) WritePositions(positions [game.NumPieces]game.Position) error {
	if _, err := fmt.Fprintln(l.w, joinPositions(positions)); err != nil {
		return fmt.Errorf("failed to write move log positions: %w", err)
	}
	return nil
}

func joinPositions(positions [game.NumPieces]game.Position) string {
	values := make([]int, len(positions))
	for i, pos := range positions {
		values[i] = int(pos)
	}
	return joinInts(values)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
