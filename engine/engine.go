package engine

import "pazaak/experiments/metrics"

// MaxRounds bounds a match that keeps ending in draws.
const MaxRounds = 100

// DeckCopies is the number of copies of each draw value in a main deck.
const DeckCopies = 4

type Engine interface {
	// Run plays a match till a side reaches the win score or MaxRounds rounds are played
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
