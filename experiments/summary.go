package experiments

import (
	"time"

	"einstein/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// Summary aggregates the games of one agent config.
type Summary struct {
	Config       int
	Games        int
	Wins         int
	Moves        int
	Expanded     int
	SearchTime   time.Duration
	FromSearch   int
	FromFallback int
	FromForced   int
}

func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Summarize groups game and move records by agent config, in order of first appearance.
func Summarize(games []metrics.GameRecord, moves []metrics.MoveRecord) []Summary {
	index := map[int]int{} // Config ID -> summary index
	gameConfig := map[int]int{}
	var summaries []Summary

	for _, game := range games {
		i, ok := index[game.Config]
		if !ok {
			i = len(summaries)
			index[game.Config] = i
			summaries = append(summaries, Summary{Config: game.Config})
		}
		gameConfig[game.ID] = game.Config
		summaries[i].Games++
		summaries[i].Moves += game.TotalMoves
		if game.Won {
			summaries[i].Wins++
		}
	}

	for _, move := range moves {
		config, ok := gameConfig[move.Game]
		if !ok {
			continue
		}
		s := &summaries[index[config]]
		s.Expanded += move.Expanded
		s.SearchTime += move.Duration
		switch move.Source {
		case metrics.FromSearch:
			s.FromSearch++
		case metrics.FromFallback:
			s.FromFallback++
		case metrics.FromForced:
			s.FromForced++
		}
	}

	for _, s := range summaries {
		log.Info().
			Int("config", s.Config).
			Int("games", s.Games).
			Float64("win_rate", s.WinRate()).
			Int("moves", s.Moves).
			Int("expanded", s.Expanded).
			Dur("search_time", s.SearchTime).
			Msg("summary")
	}
	return summaries
}
