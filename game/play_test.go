package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fullDeck() Deck {
	deck := Deck{}
	for value := 1; value <= 10; value++ {
		deck = append(deck, value, value)
	}
	return deck
}

func TestLegalActions(t *testing.T) {
	rules := NewStandardRules()

	t.Run("two plain cards give thirteen actions", func(t *testing.T) {
		rs := NewRoundState(fullDeck(), Player)
		hand := Hand{NewCard(2), NewCard(-3)}

		actions := LegalActions(rules, rs, hand)

		require.Len(t, actions, 13, "10 draw outcomes + 2 plays + stand")
		for i := 0; i < 10; i++ {
			require.Equal(t, EndTurn(i+1), actions[i], "Draw outcomes come first, in order")
		}
		require.Equal(t, PlayCard(hand[0].ID, 0), actions[10])
		require.Equal(t, PlayCard(hand[1].ID, 0), actions[11])
		require.Equal(t, Stand(), actions[12], "Stand comes last")
	})

	t.Run("alternate value cards offer one action per choice", func(t *testing.T) {
		rs := NewRoundState(fullDeck(), Player)
		hand := Hand{NewSpecialCard(AlternateValue, 1, -1)}

		actions := LegalActions(rules, rs, hand)

		require.Len(t, actions, 13)
		require.Contains(t, actions, PlayCard(hand[0].ID, 0))
		require.Contains(t, actions, PlayCard(hand[0].ID, 1))
	})

	t.Run("missing draw values are omitted", func(t *testing.T) {
		rs := NewRoundState(Deck{3, 3, 7}, Player)

		actions := LegalActions(rules, rs, nil)

		require.Equal(t, []Action{EndTurn(3), EndTurn(7), Stand()}, actions)
	})

	t.Run("empty draw source leaves only stand and plays", func(t *testing.T) {
		rs := NewRoundState(Deck{}, Player)
		hand := Hand{NewCard(1)}

		actions := LegalActions(rules, rs, hand)

		require.Equal(t, []Action{PlayCard(hand[0].ID, 0), Stand()}, actions)
	})

	t.Run("no plays after the per turn limit", func(t *testing.T) {
		rs := NewRoundState(fullDeck(), Player)
		rs.Played = 1

		actions := LegalActions(rules, rs, Hand{NewCard(1)})

		require.Len(t, actions, 11, "10 draw outcomes + stand")
	})

	t.Run("inactive side has no actions", func(t *testing.T) {
		for _, status := range []Status{Standing, Busted} {
			rs := NewRoundState(fullDeck(), Opponent)
			rs.Status[Opponent] = status

			require.Empty(t, LegalActions(rules, rs, Hand{NewCard(1)}), "status %s", status)
		}
	})
}

func TestPlay(t *testing.T) {
	rules := NewStandardRules()

	t.Run("end turn draws the modelled outcome", func(t *testing.T) {
		rs := NewRoundState(Deck{4, 6, 4}, Player)
		hand := Hand{NewCard(1)}

		next, nextHand, err := Play(rules, rs, hand, EndTurn(4))

		require.NoError(t, err)
		require.Equal(t, 4, next.Boards[Player].Total())
		require.Equal(t, Deck{4, 6}, next.Deck, "Should remove one card of the drawn value")
		require.Equal(t, 2, next.Turn)
		require.True(t, nextHand.Equal(hand), "Hand should not change")
		require.Equal(t, Deck{4, 6, 4}, rs.Deck, "Input state should not change")
		require.Empty(t, rs.Boards[Player].Cards, "Input state should not change")
	})

	t.Run("end turn resets the play count", func(t *testing.T) {
		rs := NewRoundState(Deck{1}, Player)
		rs.Played = 1

		next, _, err := Play(rules, rs, nil, EndTurn(1))

		require.NoError(t, err)
		require.Equal(t, 0, next.Played)
	})

	t.Run("end turn with an absent outcome fails", func(t *testing.T) {
		rs := NewRoundState(Deck{1}, Player)

		_, _, err := Play(rules, rs, nil, EndTurn(9))

		require.ErrorIs(t, err, ErrNoSuchDraw)
	})

	t.Run("drawing past the target busts", func(t *testing.T) {
		rs := NewRoundState(Deck{5}, Player)
		rs.Boards[Player] = boardOf(10, 8)

		next, _, err := Play(rules, rs, nil, EndTurn(5))

		require.NoError(t, err)
		require.Equal(t, Busted, next.Status[Player])
		require.Empty(t, LegalActions(rules, next, nil), "Busted side has no further actions")
	})

	t.Run("playing a card moves it from hand to board", func(t *testing.T) {
		rs := NewRoundState(Deck{1}, Player)
		rs.Boards[Player] = boardOf(10, 5)
		hand := Hand{NewCard(3), NewSpecialCard(AlternateValue, 2, -2)}

		next, nextHand, err := Play(rules, rs, hand, PlayCard(hand[1].ID, 1))

		require.NoError(t, err)
		require.Equal(t, 13, next.Boards[Player].Total())
		require.Len(t, nextHand, 1)
		require.Equal(t, hand[0].ID, nextHand[0].ID)
		require.Len(t, hand, 2, "Input hand should not change")
		require.Equal(t, 0, hand[1].Value, "Input hand card should stay unresolved")
		require.Equal(t, 1, next.Played)
	})

	t.Run("playing an invert card flips matching values", func(t *testing.T) {
		rs := NewRoundState(Deck{1}, Player)
		rs.Boards[Player] = boardOf(4, 10, 2)
		hand := Hand{NewSpecialCard(Invert, 2, 4)}

		next, _, err := Play(rules, rs, hand, PlayCard(hand[0].ID, 0))

		require.NoError(t, err)
		require.Equal(t, 4, next.Boards[Player].Total(), "-4 + 10 - 2 + 0")
		require.Equal(t, 16, rs.Boards[Player].Total(), "Input board should not change")
	})

	t.Run("playing an echo card copies the previous value", func(t *testing.T) {
		rs := NewRoundState(Deck{1}, Player)
		rs.Boards[Player] = boardOf(5, 7)
		hand := Hand{NewSpecialCard(Echo, 0)}

		next, _, err := Play(rules, rs, hand, PlayCard(hand[0].ID, 0))

		require.NoError(t, err)
		require.Equal(t, 19, next.Boards[Player].Total())
	})

	t.Run("playing with an invalid choice fails", func(t *testing.T) {
		rs := NewRoundState(Deck{1}, Player)
		hand := Hand{NewSpecialCard(AlternateValue, 2, -2)}

		_, _, err := Play(rules, rs, hand, PlayCard(hand[0].ID, 5))

		require.ErrorIs(t, err, ErrInvalidChoice)
	})

	t.Run("playing an unknown card fails", func(t *testing.T) {
		rs := NewRoundState(Deck{1}, Player)

		_, _, err := Play(rules, rs, Hand{NewCard(1)}, PlayCard(NewCard(1).ID, 0))

		require.ErrorIs(t, err, ErrCardNotInHand)
	})

	t.Run("playing twice in one turn fails", func(t *testing.T) {
		rs := NewRoundState(Deck{1}, Player)
		hand := Hand{NewCard(1), NewCard(2)}

		next, nextHand, err := Play(rules, rs, hand, PlayCard(hand[0].ID, 0))
		require.NoError(t, err)
		_, _, err = Play(rules, next, nextHand, PlayCard(hand[1].ID, 0))

		require.ErrorIs(t, err, ErrNoPlaysLeft)
	})

	t.Run("standing ends the side's round", func(t *testing.T) {
		rs := NewRoundState(Deck{1}, Opponent)

		next, _, err := Play(rules, rs, nil, Stand())

		require.NoError(t, err)
		require.Equal(t, Standing, next.Status[Opponent])
		require.Equal(t, Active, rs.Status[Opponent])
	})

	t.Run("acting when not active fails", func(t *testing.T) {
		rs := NewRoundState(Deck{1}, Player)
		rs.Status[Player] = Standing

		_, _, err := Play(rules, rs, nil, EndTurn(1))

		require.ErrorIs(t, err, ErrNotActive)
	})
}
