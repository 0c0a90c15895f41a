package agent

import (
	"pazaak/experiments/metrics"
	"pazaak/game"
	"pazaak/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent that always plays the most visited root action.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(state game.RoundState, hand game.Hand) (game.Action, metrics.SearchMetric) {
	decision, metric := a.mcts.Search(state, hand)
	if len(decision.Path) == 0 {
		return game.Stand(), metric
	}
	return decision.Path[0], metric
}
