package game

import "strings"

// Board holds the resolved cards one side has played this round.
type Board struct {
	Cards []Card
}

func (b Board) Copy() Board {
	cards := make([]Card, len(b.Cards))
	for i, card := range b.Cards {
		cards[i] = card.Copy()
	}
	return Board{Cards: cards}
}

func (b Board) Total() int {
	total := 0
	for _, card := range b.Cards {
		total += card.Value
	}
	return total
}

// Distance to target; negative means the board is bust.
func (b Board) Distance(target int) int {
	return target - b.Total()
}

func (b Board) HasTieBreaker() bool {
	for _, card := range b.Cards {
		if card.Kind == TieBreaker {
			return true
		}
	}
	return false
}

func (b Board) Last() (Card, bool) {
	if len(b.Cards) == 0 {
		return Card{}, false
	}
	return b.Cards[len(b.Cards)-1], true
}

func (b *Board) Add(card Card) {
	b.Cards = append(b.Cards, card)
}

func (b Board) String() string {
	parts := make([]string, len(b.Cards))
	for i, card := range b.Cards {
		parts[i] = card.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
