package game

// DetermineMatchWinner returns the side whose round wins reached winScore.
func DetermineMatchWinner(scores [2]int, winScore int) (Side, bool) {
	switch {
	case scores[Player] >= winScore:
		return Player, true
	case scores[Opponent] >= winScore:
		return Opponent, true
	default:
		return 0, false
	}
}

// Match tracks round results until one side takes the match.
type Match struct {
	Scores  [2]int
	Results []Result
	rules   Rules
}

func NewMatch(rules Rules) *Match {
	return &Match{rules: rules}
}

func (m *Match) Record(result Result) {
	m.Results = append(m.Results, result)
	if side, ok := result.Winner(); ok {
		m.Scores[side]++
	}
}

func (m *Match) Round() int {
	return len(m.Results) + 1
}

func (m *Match) Winner() (Side, bool) {
	return DetermineMatchWinner(m.Scores, m.rules.WinScore())
}
