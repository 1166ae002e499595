package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"einstein/experiments/metrics"
	"einstein/game"
	"einstein/searcher"
	"einstein/utils"
)

type humanAgent struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

// NewHumanAgent returns an agent that prompts on out and reads the piece, then the
// destination, from in. Invalid answers are asked again.
func NewHumanAgent(name string, in io.Reader, out io.Writer) Agent {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &humanAgent{name: name, in: scanner, out: out}
}

func (a *humanAgent) Name() string {
	return a.name
}

func (a *humanAgent) FindMove(state game.State, turn game.Turn) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, searcher.ErrNoMove
	}

	pieces := state.MovablePieces()
	fmt.Fprintf(a.out, "\nCurrent die: %d\n", state.Die())
	fmt.Fprintf(a.out, "Movable pieces: %s\n", join(pieces))
	fmt.Fprintln(a.out, "Current positions:")
	for i, pos := range state.Positions() {
		fmt.Fprintf(a.out, "  piece %d: %d\n", i+1, int(pos))
	}

	var piece game.Piece
	for {
		value, err := a.ask("Piece to move: ")
		if err != nil {
			return game.Move{}, metrics.SearchMetric{}, err
		}
		if utils.Contains(pieces, game.Piece(value)) {
			piece = game.Piece(value)
			break
		}
		fmt.Fprintln(a.out, "Invalid piece, choose a movable piece.")
	}

	options := state.MovesOf(piece)
	destinations := make([]game.Position, len(options))
	for i, move := range options {
		destinations[i] = move.To
	}
	fmt.Fprintf(a.out, "Destinations: %s\n", join(destinations))

	for {
		value, err := a.ask("Destination: ")
		if err != nil {
			return game.Move{}, metrics.SearchMetric{}, err
		}
		if i := utils.FindIndex(destinations, game.Position(value)); i >= 0 {
			return options[i], metrics.SearchMetric{}, nil
		}
		fmt.Fprintln(a.out, "Invalid destination, choose one of the listed positions.")
	}
}

// ask prompts until it reads an integer.
func (a *humanAgent) ask(prompt string) (int, error) {
	for {
		fmt.Fprint(a.out, prompt)
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}
			return 0, io.ErrUnexpectedEOF
		}
		value, err := strconv.Atoi(a.in.Text())
		if err == nil {
			return value, nil
		}
		fmt.Fprintf(a.out, "%q is not a number.\n", a.in.Text())
	}
}

func join[T ~int](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, " ")
}
