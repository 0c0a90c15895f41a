package game

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidChoice = errors.New("invalid choice index")

// Kind selects the fixed behavior of a card.
type Kind int

const (
	Plain          Kind = iota // 0
	AlternateValue             // 1
	Invert                     // 2
	Echo                       // 3
	TieBreaker                 // 4
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case AlternateValue:
		return "alternate"
	case Invert:
		return "invert"
	case Echo:
		return "echo"
	case TieBreaker:
		return "tiebreaker"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Card is a playable unit. Candidates holds the values a player may choose
// from and Value the resolved value once a choice or board effect applies.
type Card struct {
	ID         uuid.UUID
	Kind       Kind
	Candidates []int
	Value      int
}

func NewCard(value int) Card {
	return Card{ID: uuid.New(), Kind: Plain, Candidates: []int{value}, Value: value}
}

// DrawnCard is a main-deck card. It never sits in a hand, so it carries no
// identity and replays of the same draws compare equal.
func DrawnCard(value int) Card {
	return Card{Kind: Plain, Candidates: []int{value}, Value: value}
}

func NewSpecialCard(kind Kind, candidates ...int) Card {
	return Card{ID: uuid.New(), Kind: kind, Candidates: candidates}
}

func (c Card) Copy() Card {
	c.Candidates = slices.Clone(c.Candidates)
	return c
}

func (c Card) Equal(other Card) bool {
	return c.ID == other.ID && c.Kind == other.Kind && c.Value == other.Value &&
		slices.Equal(c.Candidates, other.Candidates)
}

// Choices is the number of ways the card can be played.
func (c Card) Choices() int {
	switch c.Kind {
	case AlternateValue, TieBreaker:
		return len(c.Candidates)
	default:
		return 1
	}
}

// Resolve fixes the card's value. Invert and Echo resolve to 0 and take
// their contribution from ApplyEffect.
func (c *Card) Resolve(choice int) error {
	if choice < 0 || choice >= c.Choices() {
		return fmt.Errorf("%w: %d not in [0, %d) for %s", ErrInvalidChoice, choice, c.Choices(), c)
	}
	switch c.Kind {
	case AlternateValue, TieBreaker:
		c.Value = c.Candidates[choice]
	case Plain:
		if len(c.Candidates) > 0 {
			c.Value = c.Candidates[0]
		}
	default:
		c.Value = 0
	}
	return nil
}

// ApplyEffect applies the board effect of card, which is about to be added to
// board. Malformed cards (no candidates, empty board) leave both untouched.
func ApplyEffect(card *Card, board *Board) {
	switch card.Kind {
	case Invert:
		for i := range board.Cards {
			if slices.Contains(card.Candidates, board.Cards[i].Value) {
				board.Cards[i].Value = -board.Cards[i].Value
			}
		}
	case Echo:
		if last, ok := board.Last(); ok {
			card.Value = last.Value
		}
	}
}

func (c Card) String() string {
	switch c.Kind {
	case Plain:
		return fmt.Sprintf("%+d", c.Value)
	case Echo:
		return "D"
	case Invert:
		parts := make([]string, len(c.Candidates))
		for i, v := range c.Candidates {
			parts[i] = fmt.Sprint(v)
		}
		return strings.Join(parts, "&")
	default:
		parts := make([]string, len(c.Candidates))
		for i, v := range c.Candidates {
			parts[i] = fmt.Sprintf("%+d", v)
		}
		s := strings.Join(parts, "/")
		if c.Kind == TieBreaker {
			s += "T"
		}
		return s
	}
}
