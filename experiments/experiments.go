package experiments

import (
	"fmt"

	"pazaak/agent"
	"pazaak/engine"
	"pazaak/experiments/metrics"
	"pazaak/game"
	"pazaak/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Settings shared by every experiment.
type Settings struct {
	Games     int // per matchup
	Workers   int // matches run concurrently
	OutputDir string
	Seed      uint64
	Rules     game.Rules
	SideDecks [2][]game.Card
}

var iterationConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: 1, Iterations: 10},
	{ID: 2, Goroutines: 1, Iterations: 50},
	{ID: 3, Goroutines: 1, Iterations: 200},
	{ID: 4, Goroutines: 1, Iterations: 1000},
}

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: 1, Iterations: 1000},
	{ID: 2, Goroutines: 2, Iterations: 1000},
	{ID: 3, Goroutines: 4, Iterations: 1000},
	{ID: 4, Goroutines: 8, Iterations: 1000},
}

// RunIterationExperiment pairs agents of growing iteration budgets against a
// baseline of the smallest budget.
func RunIterationExperiment(s Settings) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 1, Iterations: 10}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range iterationConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("iterations", s, append(iterationConfigs, baseline), matchUps)
}

// RunParallelizationExperiment pairs root-parallel agents against the
// sequential agent at the same total budget.
func RunParallelizationExperiment(s Settings) (string, error) {
	baseline := parallelConfigs[0]
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range parallelConfigs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("parallelization", s, parallelConfigs, matchUps)
}

// RunBaselineExperiment pairs search agents against a random agent.
func RunBaselineExperiment(s Settings) (string, error) {
	random := metrics.AgentConfig{ID: 0, Random: true}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range iterationConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{random, config})
	}

	return runExperiment("baseline", s, append(iterationConfigs, random), matchUps)
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

func runExperiment(name string, s Settings, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) (string, error) {
	if s.Games <= 0 {
		return "", fmt.Errorf("%s: games per matchup must be positive, got %d", name, s.Games)
	}

	log.Info().Msgf("starting %s experiment...", name)

	outcomes := make([]outcome, len(matchUps)*s.Games)
	g := errgroup.Group{}
	g.SetLimit(max(s.Workers, 1))
	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < s.Games; i++ {
			id := mi*s.Games + i + 1
			g.Go(func() error {
				// Alternate seats so neither agent always moves first
				seats := matchup
				if i%2 == 1 {
					seats[0], seats[1] = seats[1], seats[0]
				}
				outcomes[id-1] = runGame(id, s, seats)
				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, outcomes[id-1].game.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	log.Info().Msgf("completed %s experiment", name)

	gameRecords := make([]metrics.GameRecord, 0, len(outcomes))
	moveRecords := []metrics.MoveRecord{}
	for _, o := range outcomes {
		gameRecords = append(gameRecords, o.game)
		moveRecords = append(moveRecords, o.moves...)
	}

	return store(name, s.OutputDir, configs, gameRecords, moveRecords)
}

// runGame executes a single match between two agents
func runGame(id int, s Settings, seats [2]metrics.AgentConfig) outcome {
	seed := s.Seed + uint64(id)*1000
	agents := [2]agent.Agent{
		createAgent(seats[0], s.Rules, seed+1),
		createAgent(seats[1], s.Rules, seed+2),
	}
	e := engine.NewLocalEngine(s.Rules, agents, s.SideDecks, seed)

	_, gameMetric, moveMetrics := e.Run()

	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: id, MoveMetric: mm}
	}
	return outcome{
		game: metrics.GameRecord{
			ID:         id,
			Agent1:     seats[0].ID,
			Agent2:     seats[1].ID,
			GameMetric: gameMetric,
		},
		moves: moves,
	}
}

func createAgent(config metrics.AgentConfig, rules game.Rules, seed uint64) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(rules, seed)
	}

	options := []searcher.Option{
		searcher.WithRules(rules),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	return agent.NewEvaluationAgent(searcher.NewMCTS(options...))
}

func store(name, root string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
