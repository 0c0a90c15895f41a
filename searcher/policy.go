package searcher

import "math"

// Hyperparameters for MCTS

const C = 1.4 // Exploration constant

const WIN = 5.0   // Reward when the searching side wins the round
const LOSS = -WIN // Reward when it loses
const DRAW = 0.0

type uct struct {
	c    float64
	logN float64
}

func newUCT(c float64, N int) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{c: c, logN: math.Log(float64(N))}
}

func (u uct) evaluate(q float64, n int) float64 {
	// Unvisited children go first
	if n == 0 {
		return math.Inf(1)
	}
	// UCB1 = q/n + c*sqrt(ln(N)/n)
	return q/float64(n) + u.c*math.Sqrt(u.logN/float64(n))
}
