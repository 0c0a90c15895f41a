package game

import (
	"slices"

	"github.com/google/uuid"
)

// Hand is a side's private cards.
type Hand []Card

func (h Hand) Copy() Hand {
	hand := make(Hand, len(h))
	for i, card := range h {
		hand[i] = card.Copy()
	}
	return hand
}

func (h Hand) Find(id uuid.UUID) (int, bool) {
	i := slices.IndexFunc(h, func(c Card) bool { return c.ID == id })
	return i, i >= 0
}

// Remove returns a copy of the hand without the card at index i.
func (h Hand) Remove(i int) Hand {
	return slices.Delete(h.Copy(), i, i+1)
}

func (h Hand) Equal(other Hand) bool {
	return slices.EqualFunc(h, other, Card.Equal)
}
