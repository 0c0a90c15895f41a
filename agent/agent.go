package agent

import (
	"pazaak/experiments/metrics"
	"pazaak/game"
)

type Agent interface {
	// FindMove returns the next action for the acting side of state and performance metrics (if collected) from the search
	FindMove(state game.RoundState, hand game.Hand) (game.Action, metrics.SearchMetric)
}
