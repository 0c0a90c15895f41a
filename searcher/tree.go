package searcher

import (
	"math"
	"slices"

	"pazaak/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const root = 0

// tree is the arena for a single decision. It is owned by one goroutine and
// discarded once the recommendation has been read.
type tree struct {
	rules game.Rules
	side  game.Side // the side the search decides for
	c     float64
	rng   *rand.Rand
	nodes []node
}

func newTree(rules game.Rules, state game.RoundState, hand game.Hand, c float64, rng *rand.Rand) *tree {
	return &tree{
		rules: rules,
		side:  state.Current,
		c:     c,
		rng:   rng,
		nodes: []node{newNode(noParent, game.Action{}, state.Copy(), hand.Copy())},
	}
}

// simulate runs one select, expand, rollout, backup episode and reports
// whether the rollout ended with the searching side done for the round.
func (t *tree) simulate() bool {
	leaf := t.selects()
	t.expand(leaf)
	end, value := t.rollout(leaf)
	t.backup(end, value)
	return t.nodes[end].state.Status[t.side] != game.Active
}

// selects descends by UCB1 to the first node without children.
func (t *tree) selects() int {
	id := root
	for t.stage(id) != unexpanded {
		id = t.pickChild(id)
	}
	return id
}

func (t *tree) pickChild(id int) int {
	parent := &t.nodes[id]
	if parent.visits == 0 {
		panic("node has children but no visits")
	}

	policy := newUCT(t.c, parent.visits)

	maxIndex := -1
	maxScore := math.Inf(-1)
	for _, child := range parent.children {
		score := policy.evaluate(t.nodes[child].score, t.nodes[child].visits)
		if score == math.Inf(1) {
			return child
		}
		if score > maxScore {
			maxScore = score
			maxIndex = child
		}
	}
	return maxIndex
}

// expand adds one child per legal action. Nodes whose side is no longer
// active get no children and stay leaves.
func (t *tree) expand(id int) {
	if t.nodes[id].isExpanded {
		return
	}
	t.nodes[id].isExpanded = true

	state, hand := t.nodes[id].state, t.nodes[id].hand
	actions := game.LegalActions(t.rules, state, hand)
	if len(actions) == 0 {
		return
	}

	children := make([]int, 0, len(actions))
	index := make(map[game.Action]int, len(actions))
	for _, action := range actions {
		childState, childHand, err := game.Play(t.rules, state, hand, action)
		if err != nil {
			log.Debug().Err(err).Str("action", action.String()).Msg("skipping-unplayable-action")
			continue
		}
		child := len(t.nodes)
		t.nodes = append(t.nodes, newNode(id, action, childState, childHand))
		children = append(children, child)
		index[action] = child
	}
	t.nodes[id].children = children
	t.nodes[id].index = index
}

// rollout walks uniformly random children down to a leaf, summing the scores
// of the nodes it passes, and scores the leaf's round from the searching
// side's point of view.
func (t *tree) rollout(id int) (int, float64) {
	traversal := 0.0
	for len(t.nodes[id].children) > 0 {
		children := t.nodes[id].children
		id = children[t.rng.Intn(len(children))]
		traversal += t.nodes[id].score
	}

	result := game.DetermineRoundWinner(t.nodes[id].state, t.rules.Target())
	return id, reward(result, t.side) + traversal
}

func reward(result game.Result, side game.Side) float64 {
	if result.WonBy(side) {
		return WIN
	}
	if result.WonBy(side.Other()) {
		return LOSS
	}
	return DRAW
}

func (t *tree) backup(id int, value float64) {
	for id != noParent {
		t.nodes[id].visits++
		t.nodes[id].score += value
		id = t.nodes[id].parent
	}
}

func (t *tree) stage(id int) stage {
	n := &t.nodes[id]
	if len(n.children) == 0 {
		return unexpanded
	}
	for _, child := range n.children {
		if t.nodes[child].visits > 0 {
			return exploited
		}
	}
	return expanded
}

func (t *tree) child(id int, action game.Action) (int, bool) {
	child, ok := t.nodes[id].index[action]
	return child, ok
}

// bestChild is the most visited child of the root; the first created wins
// ties. It returns false when the root has no children.
func (t *tree) bestChild() (int, bool) {
	children := t.nodes[root].children
	if len(children) == 0 {
		return 0, false
	}

	best := children[0]
	for _, child := range children[1:] {
		if t.nodes[child].visits > t.nodes[best].visits {
			best = child
		}
	}
	return best, true
}

// path lists the actions leading from the root to id.
func (t *tree) path(id int) []game.Action {
	var actions []game.Action
	for id != root {
		actions = append(actions, t.nodes[id].action)
		id = t.nodes[id].parent
	}
	slices.Reverse(actions)
	return actions
}

// rootActions returns the root's child actions in creation order.
func (t *tree) rootActions() []game.Action {
	actions := make([]game.Action, len(t.nodes[root].children))
	for i, child := range t.nodes[root].children {
		actions[i] = t.nodes[child].action
	}
	return actions
}
