package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"pazaak/game"
	"pazaak/meta"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Search struct {
	Iterations  int     `yaml:"iterations"`
	Goroutines  int     `yaml:"goroutines"`
	Exploration float64 `yaml:"exploration"`
	Seed        uint64  `yaml:"seed"` // 0 picks a random seed
}

type Experiment struct {
	Name      string `yaml:"name"` // iterations, parallelization or baseline
	Games     int    `yaml:"games"`
	Workers   int    `yaml:"workers"`
	OutputDir string `yaml:"output_dir"`
}

type Config struct {
	Rules        game.StandardRules `yaml:"rules"`
	Search       Search             `yaml:"search"`
	Experiment   Experiment         `yaml:"experiment"`
	PlayerDeck   string             `yaml:"player_deck"`
	OpponentDeck string             `yaml:"opponent_deck"`
	LogLevel     string             `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Rules: game.StandardRules{
			TargetTotal:   meta.TARGET,
			MatchWinScore: meta.WIN_SCORE,
			Hand:          meta.HAND_SIZE,
			PlaysPerTurn:  meta.PLAYS_PER_TURN,
			MaxDraw:       meta.MAX_DRAW,
		},
		Search: Search{
			Iterations:  meta.ITERATIONS,
			Goroutines:  meta.GO_ROUTINES,
			Exploration: meta.EXPLORATION,
		},
		Experiment: Experiment{
			Games:     meta.EXPERIMENT_GAMES,
			Workers:   1,
			OutputDir: meta.EXPERIMENT_DIR,
		},
		LogLevel: meta.LOG_LEVEL,
	}
}

// Load layers the YAML file at path (optional), then the .env file at
// envFile (optional) and the process environment over the defaults.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		defer f.Close()
		if err := cfg.decode(f); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("%s: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	return decoder.Decode(c)
}

// applyEnv overrides fields from PAZAAK_* variables. Unset or empty
// variables leave the field alone.
func (c *Config) applyEnv(getenv func(string) string) error {
	ints := map[string]*int{
		"TARGET":         &c.Rules.TargetTotal,
		"WIN_SCORE":      &c.Rules.MatchWinScore,
		"HAND_SIZE":      &c.Rules.Hand,
		"PLAYS_PER_TURN": &c.Rules.PlaysPerTurn,
		"MAX_DRAW":       &c.Rules.MaxDraw,
		"ITERATIONS":     &c.Search.Iterations,
		"GOROUTINES":     &c.Search.Goroutines,
		"GAMES":          &c.Experiment.Games,
		"WORKERS":        &c.Experiment.Workers,
	}
	for key, field := range ints {
		v := getenv(meta.ENV_PREFIX + key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", meta.ENV_PREFIX, key, err)
		}
		*field = n
	}

	strs := map[string]*string{
		"PLAYER_DECK":   &c.PlayerDeck,
		"OPPONENT_DECK": &c.OpponentDeck,
		"LOG_LEVEL":     &c.LogLevel,
		"EXPERIMENT":    &c.Experiment.Name,
		"OUTPUT_DIR":    &c.Experiment.OutputDir,
	}
	for key, field := range strs {
		if v := getenv(meta.ENV_PREFIX + key); v != "" {
			*field = v
		}
	}

	if v := getenv(meta.ENV_PREFIX + "EXPLORATION"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sEXPLORATION: %w", meta.ENV_PREFIX, err)
		}
		c.Search.Exploration = f
	}
	if v := getenv(meta.ENV_PREFIX + "SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", meta.ENV_PREFIX, err)
		}
		c.Search.Seed = seed
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Rules.TargetTotal <= 0:
		return fmt.Errorf("%w: target must be positive", ErrInvalidConfig)
	case c.Rules.MatchWinScore <= 0:
		return fmt.Errorf("%w: win score must be positive", ErrInvalidConfig)
	case c.Rules.Hand < 0:
		return fmt.Errorf("%w: hand size must not be negative", ErrInvalidConfig)
	case c.Rules.PlaysPerTurn < 0:
		return fmt.Errorf("%w: plays per turn must not be negative", ErrInvalidConfig)
	case c.Rules.MaxDraw <= 0:
		return fmt.Errorf("%w: max draw must be positive", ErrInvalidConfig)
	case c.Search.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive", ErrInvalidConfig)
	case c.Search.Goroutines <= 0:
		return fmt.Errorf("%w: goroutines must be positive", ErrInvalidConfig)
	case c.Search.Exploration < 0:
		return fmt.Errorf("%w: exploration must not be negative", ErrInvalidConfig)
	}
	return nil
}

// SideDecks loads both configured side decks, falling back to the default
// deck for an empty path.
func (c Config) SideDecks() ([2][]game.Card, error) {
	var decks [2][]game.Card
	for i, path := range []string{c.PlayerDeck, c.OpponentDeck} {
		if path == "" {
			decks[i] = game.DefaultSideDeck()
			continue
		}
		cards, err := game.LoadSideDeck(path)
		if err != nil {
			return decks, err
		}
		decks[i] = cards
	}
	return decks, nil
}
