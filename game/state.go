package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
	"slices"
)

type StateHash uint64

// Side indexes the two players of a round.
type Side int

const (
	Player Side = iota
	Opponent
)

func (s Side) Other() Side {
	return 1 - s
}

func (s Side) String() string {
	switch s {
	case Player:
		return "player"
	case Opponent:
		return "opponent"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

type Status int

const (
	Active Status = iota
	Standing
	Busted
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Standing:
		return "standing"
	case Busted:
		return "busted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result of a round from a neutral point of view.
type Result int

const (
	Draw Result = iota
	PlayerWins
	OpponentWins
)

func (r Result) WonBy(side Side) bool {
	winner, ok := r.Winner()
	return ok && winner == side
}

// Winner returns the winning side, or false on a draw.
func (r Result) Winner() (Side, bool) {
	switch r {
	case PlayerWins:
		return Player, true
	case OpponentWins:
		return Opponent, true
	default:
		return 0, false
	}
}

func (r Result) String() string {
	if side, ok := r.Winner(); ok {
		return side.String()
	}
	return "draw"
}

// RoundState is the public state of one round. Values are copied with Copy
// before mutation; the simulator never changes a state it was handed.
type RoundState struct {
	Boards  [2]Board
	Status  [2]Status
	Deck    Deck // shared draw source
	Turn    int
	Current Side // acting side
	Played  int  // hand cards played by Current this turn
}

func NewRoundState(deck Deck, first Side) RoundState {
	return RoundState{
		Deck:    deck,
		Turn:    1,
		Current: first,
	}
}

func (rs RoundState) Copy() RoundState {
	return RoundState{
		Boards:  [2]Board{rs.Boards[0].Copy(), rs.Boards[1].Copy()},
		Status:  rs.Status,
		Deck:    rs.Deck.Copy(),
		Turn:    rs.Turn,
		Current: rs.Current,
		Played:  rs.Played,
	}
}

// IsTerminal reports whether both sides are done for the round.
func (rs RoundState) IsTerminal() bool {
	return rs.Status[Player] != Active && rs.Status[Opponent] != Active
}

// AddCard places an already resolved card on side's board and applies the
// bust rule.
func (rs *RoundState) AddCard(side Side, card Card, target int) {
	rs.Boards[side].Add(card)
	if rs.Boards[side].Total() > target {
		rs.Status[side] = Busted
	}
}

// DetermineRoundWinner scores a round. A busted board loses to any other
// board; otherwise the smaller distance wins and a lone tiebreaker settles an
// exact tie.
func DetermineRoundWinner(rs RoundState, target int) Result {
	player := rs.Boards[Player].Distance(target)
	opponent := rs.Boards[Opponent].Distance(target)

	switch {
	case player < 0 && opponent < 0:
		return Draw
	case player < 0:
		return OpponentWins
	case opponent < 0:
		return PlayerWins
	case player < opponent:
		return PlayerWins
	case opponent < player:
		return OpponentWins
	}

	playerTB := rs.Boards[Player].HasTieBreaker()
	opponentTB := rs.Boards[Opponent].HasTieBreaker()
	if playerTB && !opponentTB {
		return PlayerWins
	}
	if opponentTB && !playerTB {
		return OpponentWins
	}
	return Draw
}

func (rs RoundState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(rs.Current))
	binary.Write(hasher, binary.LittleEndian, int64(rs.Turn))
	binary.Write(hasher, binary.LittleEndian, int64(rs.Played))

	for side := range rs.Boards {
		binary.Write(hasher, binary.LittleEndian, int64(rs.Status[side]))
		binary.Write(hasher, binary.LittleEndian, int64(len(rs.Boards[side].Cards)))
		for _, card := range rs.Boards[side].Cards {
			hashCard(hasher, card)
		}
	}

	for _, value := range rs.Deck {
		binary.Write(hasher, binary.LittleEndian, int64(value))
	}

	return StateHash(hasher.Sum64())
}

// Equal compares resolved content. Card identities are ignored, so boards
// built from different copies of the same cards compare equal.
func (rs RoundState) Equal(other RoundState) bool {
	if rs.Current != other.Current || rs.Turn != other.Turn || rs.Played != other.Played ||
		rs.Status != other.Status || !slices.Equal(rs.Deck, other.Deck) {
		return false
	}
	for side := range rs.Boards {
		if !slices.EqualFunc(rs.Boards[side].Cards, other.Boards[side].Cards, sameContent) {
			return false
		}
	}
	return true
}

func sameContent(a, b Card) bool {
	return a.Kind == b.Kind && a.Value == b.Value && slices.Equal(a.Candidates, b.Candidates)
}

func hashCard(hasher io.Writer, card Card) {
	binary.Write(hasher, binary.LittleEndian, int64(card.Kind))
	binary.Write(hasher, binary.LittleEndian, int64(card.Value))
	for _, candidate := range card.Candidates {
		binary.Write(hasher, binary.LittleEndian, int64(candidate))
	}
}

func (rs RoundState) String() string {
	return fmt.Sprintf("turn %d %s to act | player %s=%d (%s) | opponent %s=%d (%s) | deck %d",
		rs.Turn, rs.Current,
		rs.Boards[Player], rs.Boards[Player].Total(), rs.Status[Player],
		rs.Boards[Opponent], rs.Boards[Opponent].Total(), rs.Status[Opponent],
		len(rs.Deck))
}
