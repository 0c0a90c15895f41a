package agent

import (
	"testing"

	"pazaak/game"
	"pazaak/searcher"

	"github.com/stretchr/testify/require"
)

func fullDeck() game.Deck {
	deck := game.Deck{}
	for value := 1; value <= 10; value++ {
		deck = append(deck, value, value, value, value)
	}
	return deck
}

func TestEvaluationAgent(t *testing.T) {
	state := game.NewRoundState(fullDeck(), game.Player)
	state.Boards[game.Player].Add(game.DrawnCard(10))
	state.Boards[game.Player].Add(game.DrawnCard(10))
	a := NewEvaluationAgent(searcher.NewMCTS(searcher.WithIterations(300), searcher.WithSeed(1), searcher.WithMetrics()))

	action, metric := a.FindMove(state, nil)

	require.Equal(t, game.Stand(), action)
	require.Equal(t, 300, metric.Episodes)
}

func TestRandomAgent(t *testing.T) {
	rules := game.NewStandardRules()
	state := game.NewRoundState(fullDeck(), game.Player)
	hand := game.Hand{game.NewCard(1), game.NewSpecialCard(game.AlternateValue, 2, -2)}
	legal := game.LegalActions(rules, state, hand)
	a := NewRandomAgent(rules, 9)

	seen := map[game.Action]bool{}
	for range 200 {
		action, _ := a.FindMove(state, hand)
		require.Contains(t, legal, action)
		seen[action] = true
	}

	require.Greater(t, len(seen), 1, "Should not always pick the same action")
}

func TestSamplingAgent(t *testing.T) {
	t.Run("panics on a non positive temperature", func(t *testing.T) {
		mcts := searcher.NewMCTS(searcher.WithIterations(10))

		require.Panics(t, func() { NewSamplingAgent(mcts, 0, 1) })
	})

	t.Run("samples a legal root action", func(t *testing.T) {
		rules := game.NewStandardRules()
		state := game.NewRoundState(fullDeck(), game.Player)
		hand := game.Hand{game.NewCard(3)}
		a := NewSamplingAgent(searcher.NewMCTS(searcher.WithIterations(50), searcher.WithSeed(2)), 1.0, 3)

		action, _ := a.FindMove(state, hand)

		require.Contains(t, game.LegalActions(rules, state, hand), action)
	})
}

func TestAdjustTemperature(t *testing.T) {
	actions := []game.Action{game.EndTurn(1), game.EndTurn(2), game.Stand()}
	policy := searcher.Policy{game.EndTurn(1): 1, game.EndTurn(2): 3, game.Stand(): 0}

	t.Run("unit temperature gives visit proportions", func(t *testing.T) {
		probs := adjustTemperature(actions, policy, 1.0)

		require.InDeltaSlice(t, []float64{0.25, 0.75, 0}, probs, 1e-9)
	})

	t.Run("low temperature sharpens towards the most visited", func(t *testing.T) {
		probs := adjustTemperature(actions, policy, 0.5)

		require.InDeltaSlice(t, []float64{0.1, 0.9, 0}, probs, 1e-9)
	})

	t.Run("no visits gives a uniform distribution", func(t *testing.T) {
		probs := adjustTemperature(actions, searcher.Policy{}, 1.0)

		require.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, probs, 1e-9)
	})
}

func TestSample(t *testing.T) {
	actions := []game.Action{game.EndTurn(1), game.EndTurn(2), game.Stand()}
	probs := []float64{0.25, 0.75, 0}

	require.Equal(t, game.EndTurn(1), sample(actions, probs, 0.1))
	require.Equal(t, game.EndTurn(2), sample(actions, probs, 0.5))
	require.Equal(t, game.Stand(), sample(actions, probs, 1.0), "Should fall back to the last action")
}
