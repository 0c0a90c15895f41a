package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"pazaak/agent"
	"pazaak/config"
	"pazaak/engine"
	"pazaak/experiments"
	"pazaak/game"
	"pazaak/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	envFile := flag.String("env", ".env", "dotenv file with PAZAAK_* variables")
	mode := flag.String("mode", "match", "match or experiment")
	opponent := flag.String("opponent", "mcts", "opponent agent: mcts or random")
	iterations := flag.Int("iterations", 0, "MCTS iterations per decision")
	goroutines := flag.Int("goroutines", 0, "independent search trees per decision")
	exploration := flag.Float64("exploration", 0, "UCB1 exploration constant")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one)")
	playerDeck := flag.String("player-deck", "", "player side-deck file")
	opponentDeck := flag.String("opponent-deck", "", "opponent side-deck file")
	experiment := flag.String("experiment", "", "iterations, parallelization or baseline")
	games := flag.Int("games", 0, "games per experiment matchup")
	workers := flag.Int("workers", 0, "experiment games played concurrently")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Explicit flags override everything else
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "iterations":
			cfg.Search.Iterations = *iterations
		case "goroutines":
			cfg.Search.Goroutines = *goroutines
		case "exploration":
			cfg.Search.Exploration = *exploration
		case "seed":
			cfg.Search.Seed = *seed
		case "player-deck":
			cfg.PlayerDeck = *playerDeck
		case "opponent-deck":
			cfg.OpponentDeck = *opponentDeck
		case "experiment":
			cfg.Experiment.Name = *experiment
		case "games":
			cfg.Experiment.Games = *games
		case "workers":
			cfg.Experiment.Workers = *workers
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.LogLevel)

	if cfg.Search.Seed == 0 {
		cfg.Search.Seed = frand.Uint64n(1 << 63)
	}
	log.Info().Uint64("seed", cfg.Search.Seed).Msg("configured")

	sideDecks, err := cfg.SideDecks()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load side decks")
	}

	switch *mode {
	case "match":
		runMatch(cfg, sideDecks, *opponent)
	case "experiment":
		runExperiment(cfg, sideDecks)
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func newSearchAgent(cfg config.Config, seed uint64) agent.Agent {
	mcts := searcher.NewMCTS(
		searcher.WithRules(&cfg.Rules),
		searcher.WithIterations(cfg.Search.Iterations),
		searcher.WithGoroutines(cfg.Search.Goroutines),
		searcher.WithExploration(cfg.Search.Exploration),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	)
	return agent.NewEvaluationAgent(mcts)
}

func runMatch(cfg config.Config, sideDecks [2][]game.Card, opponent string) {
	agents := [2]agent.Agent{newSearchAgent(cfg, cfg.Search.Seed+1)}
	switch opponent {
	case "mcts":
		agents[game.Opponent] = newSearchAgent(cfg, cfg.Search.Seed+2)
	case "random":
		agents[game.Opponent] = agent.NewRandomAgent(&cfg.Rules, cfg.Search.Seed+2)
	default:
		log.Fatal().Str("opponent", opponent).Msg("unknown opponent")
	}

	e := engine.NewLocalEngine(&cfg.Rules, agents, sideDecks, cfg.Search.Seed)
	winner, gameMetric, _ := e.Run()

	log.Info().
		Str("winner", winner).
		Int("player", gameMetric.Scores[game.Player]).
		Int("opponent", gameMetric.Scores[game.Opponent]).
		Int("rounds", gameMetric.Rounds).
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Msg("match-complete")
}

func runExperiment(cfg config.Config, sideDecks [2][]game.Card) {
	s := experiments.Settings{
		Games:     cfg.Experiment.Games,
		Workers:   cfg.Experiment.Workers,
		OutputDir: cfg.Experiment.OutputDir,
		Seed:      cfg.Search.Seed,
		Rules:     &cfg.Rules,
		SideDecks: sideDecks,
	}

	var dir string
	var err error
	switch cfg.Experiment.Name {
	case "iterations", "":
		dir, err = experiments.RunIterationExperiment(s)
	case "parallelization":
		dir, err = experiments.RunParallelizationExperiment(s)
	case "baseline":
		dir, err = experiments.RunBaselineExperiment(s)
	default:
		log.Fatal().Str("experiment", cfg.Experiment.Name).Msg("unknown experiment")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Str("dir", dir).Msg("experiment-complete")
}
