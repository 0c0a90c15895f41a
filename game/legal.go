package game

// LegalActions lists the acting side's actions in a fixed order: every
// available draw outcome, every hand card with each of its choices, then
// Stand. The list is empty when the acting side is no longer active.
func LegalActions(rules Rules, rs RoundState, hand Hand) []Action {
	if rs.Status[rs.Current] != Active {
		return nil
	}

	actions := make([]Action, 0, rules.Outcomes()+len(hand)+1)
	for outcome := 1; outcome <= rules.Outcomes(); outcome++ {
		if rs.Deck.Count(outcome) > 0 {
			actions = append(actions, EndTurn(outcome))
		}
	}

	if rs.Played < rules.MaxPlaysPerTurn() {
		for _, card := range hand {
			for choice := 0; choice < card.Choices(); choice++ {
				actions = append(actions, PlayCard(card.ID, choice))
			}
		}
	}

	return append(actions, Stand())
}
