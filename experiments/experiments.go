package experiments

import (
	"fmt"

	"einstein/agent"
	"einstein/engine"
	"einstein/experiments/metrics"
	"einstein/game"
	"einstein/meta"
	"einstein/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const NumGames = 3 // Per level and agent config

var DefaultConfigs = []metrics.AgentConfig{
	{ID: 1, Mode: "ai"},
	{ID: 2, Mode: "random", Seed: 1},
	{ID: 3, Mode: "ai", MaxMoves: 15}, // Tight budget, exercises the fallback
	{ID: 4, Mode: "ai", MaxMoves: 60}, // Loose budget, deeper searches
}

var ErrUnknownMode = errors.New("unknown agent mode")

// Report holds everything an experiment recorded.
type Report struct {
	Dir     string
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Summary []Summary
}

type job struct {
	config metrics.AgentConfig
	level  *game.Level
	game   int // Index within the level/config pair
}

// Run plays NumGames games of every level for every agent config, at most
// meta.GO_ROUTINES at once, and stores the records under root/name/<timestamp>.
func Run(root, name string, levels []*game.Level, configs []metrics.AgentConfig) (*Report, error) {
	for _, level := range levels {
		if err := level.Validate(); err != nil {
			return nil, errors.WithMessagef(err, "level %s", level.Name)
		}
	}

	var jobs []job
	for _, config := range configs {
		for _, level := range levels {
			for i := 0; i < NumGames; i++ {
				jobs = append(jobs, job{config: config, level: level, game: i})
			}
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", name, len(jobs))

	results := make([]engine.Result, len(jobs))
	g := errgroup.Group{}
	g.SetLimit(meta.GO_ROUTINES)
	for i, j := range jobs {
		g.Go(func() error {
			log.Info().Msgf("starting game %d of %d: level=%s config=%d", i+1, len(jobs), j.level.Name, j.config.ID)
			result, err := runGame(j)
			if err != nil {
				return errors.WithMessagef(err, "game %d (level %s, config %d)", i+1, j.level.Name, j.config.ID)
			}
			results[i] = result
			log.Info().Msgf("completed game %d of %d, won: %t", i+1, len(jobs), result.Won)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("completed %s experiment", name)

	report := &Report{}
	for i, result := range results {
		id := i + 1
		report.Games = append(report.Games, metrics.GameRecord{
			ID:         id,
			Config:     jobs[i].config.ID,
			GameMetric: result.GameMetric,
		})
		for _, mm := range result.MoveMetrics {
			report.Moves = append(report.Moves, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}
	}
	report.Summary = Summarize(report.Games, report.Moves)

	dir, err := store(root, name, configs, report)
	if err != nil {
		return nil, err
	}
	report.Dir = dir
	return report, nil
}

func store(root, name string, configs []metrics.AgentConfig, report *Report) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(report.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(report.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game and returns its result
func runGame(j job) (engine.Result, error) {
	a, err := createAgent(j.config, j.level.Target, j.game)
	if err != nil {
		return engine.Result{}, err
	}
	options := []engine.Option{}
	if j.config.MaxMoves > 0 {
		options = append(options, engine.WithMaxMoves(j.config.MaxMoves))
	}
	e, err := engine.LocalEngine(j.level, a, options...)
	if err != nil {
		return engine.Result{}, err
	}
	return e.Run()
}

// createAgent builds a fresh agent per game so no searcher or RNG is shared between
// goroutines.
func createAgent(config metrics.AgentConfig, target game.Piece, gameIndex int) (agent.Agent, error) {
	switch config.Mode {
	case "ai":
		return agent.NewSearchAgent(target, searcher.WithMetrics()), nil
	case "random":
		return agent.NewRandomAgent(config.Seed + uint64(gameIndex)), nil
	default:
		return nil, errors.Wrapf(ErrUnknownMode, "config %d: %q", config.ID, config.Mode)
	}
}
