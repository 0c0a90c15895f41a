package game

import (
	"fmt"

	"github.com/google/uuid"
)

// ActionType represents the type of action a side can perform.
type ActionType int

const (
	EndTurnAction ActionType = iota
	PlayAction
	StandAction
)

// Action is comparable so it can key a node's children.
type Action struct {
	Type    ActionType
	Outcome int       // EndTurnAction: value of the next draw
	Card    uuid.UUID // PlayAction: card identity in the hand
	Choice  int       // PlayAction: candidate index passed to Card.Resolve
}

func EndTurn(outcome int) Action {
	return Action{Type: EndTurnAction, Outcome: outcome}
}

func PlayCard(id uuid.UUID, choice int) Action {
	return Action{Type: PlayAction, Card: id, Choice: choice}
}

func Stand() Action {
	return Action{Type: StandAction}
}

func (a Action) String() string {
	switch a.Type {
	case EndTurnAction:
		return fmt.Sprintf("end(%d)", a.Outcome)
	case PlayAction:
		return fmt.Sprintf("play(%s/%d)", a.Card.String()[:8], a.Choice)
	case StandAction:
		return "stand"
	default:
		return fmt.Sprintf("action(%d)", int(a.Type))
	}
}
