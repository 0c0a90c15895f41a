package searcher

import (
	"fmt"

	"pazaak/experiments/metrics"
	"pazaak/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

type Option func(mcts *MCTS)

// Policy maps each root action to its visit count.
type Policy map[game.Action]int

// Decision is the outcome of one search.
type Decision struct {
	Policy     Policy
	Actions    []game.Action // root actions in creation order
	Best       game.Action
	Path       []game.Action // root to the recommended child
	Iterations int
}

// MCTS recommends actions for the side to move. It is not safe for
// concurrent use; each goroutine of a root-parallel search owns its own tree.
type MCTS struct {
	goroutines  int
	iterations  int
	exploration float64
	rules       game.Rules
	rng         *rand.Rand
	metrics     metrics.Collector
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRules(rules game.Rules) Option {
	return func(m *MCTS) {
		if rules != nil {
			m.rules = rules
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines:  1,
		exploration: C,
		rules:       game.NewStandardRules(),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 {
		panic("Must specify search iterations")
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(frand.Uint64n(1 << 63)))
	}
	return m
}

// Recommend returns the action path to the most visited root child. It
// reports false when the side to move has no legal action.
func (m *MCTS) Recommend(state game.RoundState, hand game.Hand) ([]game.Action, bool) {
	decision, _ := m.Search(state, hand)
	return decision.Path, len(decision.Path) > 0
}

// Search builds one tree per goroutine, splitting the iteration budget
// between them, and merges their root statistics by action.
func (m *MCTS) Search(state game.RoundState, hand game.Hand) (Decision, metrics.SearchMetric) {
	m.metrics.Start(m.goroutines, m.iterations, m.exploration)

	if len(game.LegalActions(m.rules, state, hand)) == 0 {
		return Decision{Policy: Policy{}}, m.metrics.Complete()
	}

	trees := make([]*tree, min(m.goroutines, m.iterations))
	seeds := make([]uint64, len(trees))
	for i := range seeds {
		seeds[i] = m.rng.Uint64()
	}

	g := errgroup.Group{}
	for i := range trees {
		budget := m.iterations / len(trees)
		if i < m.iterations%len(trees) {
			budget++
		}
		g.Go(func() error {
			t := newTree(m.rules, state, hand, m.exploration, rand.New(rand.NewSource(seeds[i])))
			for range budget {
				if t.simulate() {
					m.metrics.AddFullPlayout()
				}
				m.metrics.AddEpisode()
			}
			if len(t.nodes[root].children) == 0 {
				return fmt.Errorf("tree %d: root was not expanded after %d episodes", i, budget)
			}
			m.metrics.AddNodes(len(t.nodes))
			trees[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}

	decision := merge(trees)
	decision.Iterations = m.iterations
	metric := m.metrics.Complete()

	log.Debug().
		Int("iterations", m.iterations).
		Int("goroutines", len(trees)).
		Str("action", decision.Best.String()).
		Int("visits", decision.Policy[decision.Best]).
		Msg("search-complete")

	return decision, metric
}

// merge sums root visits across trees. The best action is the most visited,
// with ties going to the first created; its path comes from the tree that
// visited it most.
func merge(trees []*tree) Decision {
	if len(trees) == 1 {
		t := trees[0]
		child, _ := t.bestChild()
		policy := Policy{}
		for _, c := range t.nodes[root].children {
			policy[t.nodes[c].action] = t.nodes[c].visits
		}
		return Decision{Policy: policy, Actions: t.rootActions(), Best: t.nodes[child].action, Path: t.path(child)}
	}

	policy := Policy{}
	order := trees[0].rootActions()
	for _, t := range trees {
		for _, child := range t.nodes[root].children {
			policy[t.nodes[child].action] += t.nodes[child].visits
		}
	}

	best := order[0]
	for _, action := range order[1:] {
		if policy[action] > policy[best] {
			best = action
		}
	}

	var path []game.Action
	maxVisits := -1
	for _, t := range trees {
		child, ok := t.child(root, best)
		if ok && t.nodes[child].visits > maxVisits {
			maxVisits = t.nodes[child].visits
			path = t.path(child)
		}
	}

	return Decision{Policy: policy, Actions: order, Best: best, Path: path}
}
