package game

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidLevel = errors.New("invalid level")

// Level is the start configuration of a game.
type Level struct {
	Name      string
	Target    Piece
	Positions [NumPieces]Position
	Dice      []int
	MaxMoves  int // Move budget, 0 lets the driver use its default
}

// LoadLevel reads a level file from disk.
func LoadLevel(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open level %s", path)
	}
	defer f.Close()

	level, err := ParseLevel(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "level %s", path)
	}
	level.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return level, nil
}

// ParseLevel reads the three-line level format: the target piece, the six initial
// positions and the die sequence, all whitespace separated.
func ParseLevel(r io.Reader) (*Level, error) {
	var lines [][]int
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() && len(lines) < 3 {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		values, err := parseInts(text)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidLevel, "line %d: %v", lineNo, err)
		}
		lines = append(lines, values)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read level")
	}
	if len(lines) < 3 {
		return nil, errors.Wrapf(ErrInvalidLevel, "expected 3 lines, got %d", len(lines))
	}

	if len(lines[0]) != 1 {
		return nil, errors.Wrapf(ErrInvalidLevel, "expected a single target piece, got %d values", len(lines[0]))
	}
	if len(lines[1]) != NumPieces {
		return nil, errors.Wrapf(ErrInvalidLevel, "expected %d positions, got %d", NumPieces, len(lines[1]))
	}

	level := &Level{
		Target: Piece(lines[0][0]),
		Dice:   lines[2],
	}
	for i, value := range lines[1] {
		level.Positions[i] = Position(value)
	}

	if err := level.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}

// Validate rejects configurations the board model cannot play.
func (l *Level) Validate() error {
	if !l.Target.Valid() {
		return errors.Wrapf(ErrInvalidLevel, "target piece %d out of range 1..%d", l.Target, NumPieces)
	}

	occupied := make(map[Position]Piece, NumPieces)
	for i, pos := range l.Positions {
		piece := Piece(i + 1)
		if !pos.Live() {
			continue
		}
		if !pos.OnBoard() {
			return errors.Wrapf(ErrInvalidLevel, "piece %d at invalid position %d", piece, int(pos))
		}
		if other, ok := occupied[pos]; ok {
			return errors.Wrapf(ErrInvalidLevel, "pieces %d and %d share position %d", other, piece, int(pos))
		}
		occupied[pos] = piece
	}
	if !l.Positions[l.Target.index()].Live() {
		return errors.Wrapf(ErrInvalidLevel, "target piece %d starts captured", l.Target)
	}

	if len(l.Dice) == 0 {
		return errors.Wrap(ErrInvalidLevel, "empty die sequence")
	}
	for i, die := range l.Dice {
		if die < 1 || die > NumPieces {
			return errors.Wrapf(ErrInvalidLevel, "die %d at index %d out of range 1..%d", die, i, NumPieces)
		}
	}
	if l.MaxMoves < 0 {
		return errors.Wrapf(ErrInvalidLevel, "negative move budget %d", l.MaxMoves)
	}
	return nil
}

// Start returns the initial state, rolled with the first die.
func (l *Level) Start() State {
	return NewState(l.Positions, l.Dice[0])
}

func parseInts(text string) ([]int, error) {
	fields := strings.Fields(text)
	values := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Errorf("%q is not an integer", field)
		}
		values[i] = v
	}
	return values, nil
}
