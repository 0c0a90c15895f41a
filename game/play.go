package game

import (
	"errors"
	"fmt"
)

var (
	ErrNotActive     = errors.New("acting side is not active")
	ErrUnknownAction = errors.New("unknown action")
	ErrCardNotInHand = errors.New("card not in hand")
	ErrNoPlaysLeft   = errors.New("no plays left this turn")
	ErrNoSuchDraw    = errors.New("draw outcome not in draw source")
)

// Play applies action for the acting side and returns the resulting state and
// hand. Neither input is modified.
func Play(rules Rules, rs RoundState, hand Hand, action Action) (RoundState, Hand, error) {
	side := rs.Current
	if rs.Status[side] != Active {
		return rs, hand, fmt.Errorf("%s: %w", action, ErrNotActive)
	}

	next := rs.Copy()
	switch action.Type {
	case StandAction:
		next.Status[side] = Standing
		return next, hand.Copy(), nil

	case EndTurnAction:
		deck, ok := next.Deck.Take(action.Outcome)
		if !ok {
			return rs, hand, fmt.Errorf("%s: %w", action, ErrNoSuchDraw)
		}
		next.Deck = deck
		next.Turn++
		next.Played = 0
		next.AddCard(side, DrawnCard(action.Outcome), rules.Target())
		return next, hand.Copy(), nil

	case PlayAction:
		if next.Played >= rules.MaxPlaysPerTurn() {
			return rs, hand, fmt.Errorf("%s: %w", action, ErrNoPlaysLeft)
		}
		i, ok := hand.Find(action.Card)
		if !ok {
			return rs, hand, fmt.Errorf("%s: %w", action, ErrCardNotInHand)
		}
		card := hand[i].Copy()
		if err := card.Resolve(action.Choice); err != nil {
			return rs, hand, fmt.Errorf("%s: %w", action, err)
		}
		ApplyEffect(&card, &next.Boards[side])
		next.Played++
		next.AddCard(side, card, rules.Target())
		return next, hand.Remove(i), nil

	default:
		return rs, hand, fmt.Errorf("%s: %w", action, ErrUnknownAction)
	}
}
