package agent

import (
	"math"

	"pazaak/experiments/metrics"
	"pazaak/game"
	"pazaak/searcher"

	"golang.org/x/exp/rand"
)

type samplingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewSamplingAgent returns an agent that samples root actions in proportion
// to their visit counts, sharpened or flattened by temperature.
func NewSamplingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &samplingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *samplingAgent) FindMove(state game.RoundState, hand game.Hand) (game.Action, metrics.SearchMetric) {
	decision, metric := a.mcts.Search(state, hand)
	if len(decision.Actions) == 0 {
		return game.Stand(), metric
	}
	probs := adjustTemperature(decision.Actions, decision.Policy, a.temperature)
	return sample(decision.Actions, probs, a.rng.Float64()), metric
}

// adjustTemperature computes temperature-adjusted move probabilities in the
// order of actions.
func adjustTemperature(actions []game.Action, policy searcher.Policy, temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	probs := make([]float64, len(actions))
	for i, action := range actions {
		probs[i] = math.Pow(float64(policy[action]), exponent)
		sum += probs[i]
	}
	if sum == 0 {
		for i := range probs {
			probs[i] = 1.0 / float64(len(probs))
		}
		return probs
	}
	// Normalize
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

func sample(actions []game.Action, probs []float64, sampled float64) game.Action {
	cumulative := 0.0
	for i, prob := range probs {
		cumulative += prob
		if sampled < cumulative {
			return actions[i]
		}
	}
	return actions[len(actions)-1] // Fallback in case of rounding errors
}
