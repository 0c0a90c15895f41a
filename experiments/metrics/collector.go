package metrics

import (
	"sync/atomic"
	"time"

	"pazaak/game"
)

type SearchMetric struct {
	Goroutines   int
	Iterations   int
	Exploration  float64
	Duration     time.Duration
	Episodes     int
	FullPlayouts int // episodes ending with the searching side standing or busted
	TreeSize     int
}

type MoveMetric struct {
	Step   int
	Round  int
	Side   game.Side
	Action string
	SearchMetric
}

type GameMetric struct {
	MatchID      string
	StartingSide game.Side
	Winner       string
	Scores       [2]int
	Rounds       int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

// AgentConfig describes one contestant in an experiment.
type AgentConfig struct {
	ID          int
	Goroutines  int
	Iterations  int
	Exploration float64
	Random      bool
}

type Collector interface {
	Start(goroutines, iterations int, exploration float64)
	AddFullPlayout()
	AddEpisode()
	AddNodes(n int)
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	iterations   int
	exploration  float64
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	nodes        atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, iterations int, exploration float64) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.iterations = iterations
	m.exploration = exploration
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.nodes.Store(0)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int32(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Iterations:   m.iterations,
		Exploration:  m.exploration,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		TreeSize:     int(m.nodes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, iterations int, exploration float64) {}
func (m *dummyCollector) AddFullPlayout()                                       {}
func (m *dummyCollector) AddEpisode()                                           {}
func (m *dummyCollector) AddNodes(n int)                                        {}
func (m *dummyCollector) Complete() SearchMetric                                { return SearchMetric{} }
