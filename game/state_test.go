package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boardOf(values ...int) Board {
	board := Board{}
	for _, v := range values {
		board.Add(DrawnCard(v))
	}
	return board
}

func TestDetermineRoundWinner(t *testing.T) {
	const target = 20

	t.Run("closer total wins", func(t *testing.T) {
		rs := RoundState{Boards: [2]Board{boardOf(10, 8), boardOf(10, 9)}}

		require.Equal(t, OpponentWins, DetermineRoundWinner(rs, target),
			"19 is one away from 20, 18 is two away")
	})

	t.Run("tiebreaker settles equal totals", func(t *testing.T) {
		tb := NewSpecialCard(TieBreaker, 1, -1)
		require.NoError(t, tb.Resolve(0))
		player := boardOf(10, 9)
		player.Add(tb)
		rs := RoundState{Boards: [2]Board{player, boardOf(10, 10)}}

		require.Equal(t, PlayerWins, DetermineRoundWinner(rs, target))
	})

	t.Run("equal totals without tiebreaker draw", func(t *testing.T) {
		rs := RoundState{Boards: [2]Board{boardOf(10, 7), boardOf(9, 8)}}

		require.Equal(t, Draw, DetermineRoundWinner(rs, target))
	})

	t.Run("equal totals with two tiebreakers draw", func(t *testing.T) {
		player := boardOf(10, 9)
		opponent := boardOf(10, 9)
		for _, board := range []*Board{&player, &opponent} {
			tb := NewSpecialCard(TieBreaker, 1, -1)
			require.NoError(t, tb.Resolve(0))
			board.Add(tb)
		}
		rs := RoundState{Boards: [2]Board{player, opponent}}

		require.Equal(t, Draw, DetermineRoundWinner(rs, target))
	})

	t.Run("busted side loses regardless of totals", func(t *testing.T) {
		rs := RoundState{Boards: [2]Board{boardOf(10, 10, 3), boardOf(10, 9)}}

		require.Equal(t, OpponentWins, DetermineRoundWinner(rs, target))
	})

	t.Run("both busted is a draw", func(t *testing.T) {
		rs := RoundState{Boards: [2]Board{boardOf(10, 10, 3), boardOf(10, 10, 1)}}

		require.Equal(t, Draw, DetermineRoundWinner(rs, target))
	})

	t.Run("far total still beats a bust", func(t *testing.T) {
		rs := RoundState{Boards: [2]Board{boardOf(2), boardOf(10, 10, 10)}}

		require.Equal(t, PlayerWins, DetermineRoundWinner(rs, target))
	})
}

func TestRoundStateAddCard(t *testing.T) {
	t.Run("busting when total exceeds target", func(t *testing.T) {
		rs := RoundState{Boards: [2]Board{boardOf(10, 10)}}

		rs.AddCard(Player, DrawnCard(1), 20)

		require.Equal(t, Busted, rs.Status[Player])
		require.Equal(t, Active, rs.Status[Opponent], "Other side should not change")
	})

	t.Run("hitting the target exactly is not a bust", func(t *testing.T) {
		rs := RoundState{Boards: [2]Board{boardOf(10, 5)}}

		rs.AddCard(Player, DrawnCard(5), 20)

		require.Equal(t, Active, rs.Status[Player])
		require.Equal(t, 20, rs.Boards[Player].Total())
	})
}

func TestRoundStateCopy(t *testing.T) {
	rs := RoundState{Boards: [2]Board{boardOf(3, 4), boardOf(5)}, Deck: Deck{1, 2, 3}}
	copied := rs.Copy()

	copied.Boards[Player].Cards[0].Value = 9
	copied.Deck[0] = 7
	copied.Status[Opponent] = Standing

	require.Equal(t, 3, rs.Boards[Player].Cards[0].Value, "Boards should be deep copied")
	require.Equal(t, 1, rs.Deck[0], "Deck should be deep copied")
	require.Equal(t, Active, rs.Status[Opponent])
}

func TestRoundStateEquality(t *testing.T) {
	t.Run("equal content hashes equal", func(t *testing.T) {
		a := RoundState{Boards: [2]Board{boardOf(3, 4), boardOf(5)}, Deck: Deck{1, 2}}
		b := a.Copy()

		require.True(t, a.Equal(b))
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("different boards differ", func(t *testing.T) {
		a := RoundState{Boards: [2]Board{boardOf(3, 4), boardOf(5)}}
		b := RoundState{Boards: [2]Board{boardOf(3, 5), boardOf(5)}}

		require.False(t, a.Equal(b))
		require.NotEqual(t, a.Hash(), b.Hash())
	})

	t.Run("card identity is not content", func(t *testing.T) {
		a := RoundState{Boards: [2]Board{{Cards: []Card{NewCard(4)}}, {}}}
		b := RoundState{Boards: [2]Board{{Cards: []Card{NewCard(4)}}, {}}}
		require.NotEqual(t, a.Boards[Player].Cards[0].ID, b.Boards[Player].Cards[0].ID)

		require.True(t, a.Equal(b))
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("different statuses differ", func(t *testing.T) {
		a := RoundState{}
		b := RoundState{Status: [2]Status{Standing, Active}}

		require.False(t, a.Equal(b))
		require.NotEqual(t, a.Hash(), b.Hash())
	})
}

func TestRoundStateIsTerminal(t *testing.T) {
	require.False(t, RoundState{}.IsTerminal())
	require.False(t, RoundState{Status: [2]Status{Standing, Active}}.IsTerminal())
	require.True(t, RoundState{Status: [2]Status{Standing, Busted}}.IsTerminal())
}
