package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"einstein/agent"
	"einstein/engine"
	"einstein/experiments"
	"einstein/game"
	"einstein/meta"
	"einstein/searcher"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode        string
	level       string
	levelsDir   string
	name        string
	seed        uint64
	maxMoves    int
	maxMovesSet bool // -max-moves given explicitly, otherwise the level's budget applies
	movesPath   string
	logLevel    string
	experiment  string
	profiling   bool
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("einstein failed")
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config
	fs.StringVar(&cfg.mode, "mode", "ai", "Player: human, random or ai")
	fs.StringVar(&cfg.level, "level", "1", "Level number (1-4) or path to a level file")
	fs.StringVar(&cfg.levelsDir, "levels", "levels", "Directory holding level1.txt..level4.txt")
	fs.StringVar(&cfg.name, "name", "Player", "Human player's name")
	fs.Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "Seed of the random player")
	fs.IntVar(&cfg.maxMoves, "max-moves", meta.MAX_MOVES, "Move budget, defaults to the level's own")
	fs.StringVar(&cfg.movesPath, "moves", meta.MOVE_LOG, "Move log file, empty to disable")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "Log level")
	fs.StringVar(&cfg.experiment, "experiment", "", "Run the named experiment over every level instead of one game")
	fs.BoolVar(&cfg.profiling, "profile", false, "Write a CPU profile to the working directory")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "max-moves" {
			cfg.maxMovesSet = true
		}
	})
	return cfg, nil
}

// run plays one game or one experiment. Every deferred cleanup completes before it
// returns, including on failure.
func run(cfg config, in io.Reader, out io.Writer) error {
	if cfg.profiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if cfg.experiment != "" {
		return runExperiment(cfg.experiment, cfg.levelsDir, out)
	}

	l, err := game.LoadLevel(levelPath(cfg.level, cfg.levelsDir))
	if err != nil {
		return err
	}

	var a agent.Agent
	switch cfg.mode {
	case "human":
		a = agent.NewHumanAgent(cfg.name, in, out)
	case "random":
		a = agent.NewRandomAgent(cfg.seed)
	case "ai":
		a = agent.NewSearchAgent(l.Target, searcher.WithMetrics())
	default:
		return errors.Errorf("invalid mode %q, expected human, random or ai", cfg.mode)
	}

	options := engineOptions(cfg)
	if cfg.movesPath != "" {
		f, err := os.Create(cfg.movesPath)
		if err != nil {
			return fmt.Errorf("failed to create move log: %w", err)
		}
		defer f.Close()
		options = append(options, engine.WithMoveLog(f))
	}

	e, err := engine.LocalEngine(l, a, options...)
	if err != nil {
		return err
	}
	result, err := e.Run()
	if err != nil {
		return errors.WithMessage(err, "game failed")
	}

	if result.Won {
		fmt.Fprintf(out, "Won in %d moves: piece %d reached the goal.\n", result.Moves, l.Target)
	} else {
		fmt.Fprintf(out, "Lost after %d moves: piece %d did not reach the goal.\n", result.Moves, l.Target)
	}
	return nil
}

// engineOptions leaves the move budget to the level unless -max-moves was given.
func engineOptions(cfg config) []engine.Option {
	options := []engine.Option{}
	if cfg.maxMovesSet {
		options = append(options, engine.WithMaxMoves(cfg.maxMoves))
	}
	return options
}

func runExperiment(name, levelsDir string, out io.Writer) error {
	var levels []*game.Level
	for i := 1; i <= meta.NUM_LEVELS; i++ {
		l, err := game.LoadLevel(levelPath(strconv.Itoa(i), levelsDir))
		if err != nil {
			return err
		}
		levels = append(levels, l)
	}

	report, err := experiments.Run("experiments", name, levels, experiments.DefaultConfigs)
	if err != nil {
		return errors.WithMessage(err, "experiment failed")
	}
	for _, s := range report.Summary {
		fmt.Fprintf(out, "config %d: won %d of %d games (%.0f%%)\n", s.Config, s.Wins, s.Games, 100*s.WinRate())
	}
	fmt.Fprintf(out, "Records stored in %s\n", report.Dir)
	return nil
}

// levelPath resolves a level number to its bundled file, anything else is a path.
func levelPath(level, dir string) string {
	if n, err := strconv.Atoi(level); err == nil && n >= 1 && n <= meta.NUM_LEVELS {
		return filepath.Join(dir, fmt.Sprintf("level%d.txt", n))
	}
	return level
}
