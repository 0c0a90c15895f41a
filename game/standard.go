package game

type StandardRules struct {
	TargetTotal   int `yaml:"target"`
	MatchWinScore int `yaml:"win_score"`
	Hand          int `yaml:"hand_size"`
	PlaysPerTurn  int `yaml:"plays_per_turn"`
	MaxDraw       int `yaml:"max_draw"`
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		TargetTotal:   20,
		MatchWinScore: 3,
		Hand:          4,
		PlaysPerTurn:  1,
		MaxDraw:       10,
	}
}

func (sr *StandardRules) Target() int {
	return sr.TargetTotal
}

func (sr *StandardRules) WinScore() int {
	return sr.MatchWinScore
}

func (sr *StandardRules) HandSize() int {
	return sr.Hand
}

func (sr *StandardRules) MaxPlaysPerTurn() int {
	return sr.PlaysPerTurn
}

func (sr *StandardRules) Outcomes() int {
	return sr.MaxDraw
}
