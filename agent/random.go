package agent

import (
	"pazaak/experiments/metrics"
	"pazaak/game"

	"golang.org/x/exp/rand"
)

// randomAgent picks uniformly among the legal actions. It draws as often as
// it plays, so it serves as a weak baseline opponent.
type randomAgent struct {
	rules game.Rules
	rng   *rand.Rand
}

func NewRandomAgent(rules game.Rules, seed uint64) Agent {
	return &randomAgent{rules: rules, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.RoundState, hand game.Hand) (game.Action, metrics.SearchMetric) {
	possibleActions := game.LegalActions(a.rules, state, hand)
	if len(possibleActions) == 0 {
		return game.Stand(), metrics.SearchMetric{}
	}
	return possibleActions[a.rng.Intn(len(possibleActions))], metrics.SearchMetric{}
}
