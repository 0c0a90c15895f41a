package searcher

import "pazaak/game"

const noParent = -1

type stage int

const (
	unexpanded stage = iota // no children
	expanded                // children, none visited
	exploited               // at least one child visited
)

// node is one arena slot. Children are owned by index; parent is a
// non-owning back index.
type node struct {
	state      game.RoundState
	hand       game.Hand
	action     game.Action // move from parent to this node
	parent     int
	children   []int               // creation order
	index      map[game.Action]int // action -> arena index
	isExpanded bool
	visits     int
	score      float64
}

func newNode(parent int, action game.Action, state game.RoundState, hand game.Hand) node {
	return node{
		state:  state,
		hand:   hand,
		action: action,
		parent: parent,
	}
}
