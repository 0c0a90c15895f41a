package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"pazaak/utils"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

var (
	ErrUnknownCard   = errors.New("unknown card")
	ErrQuotaExceeded = errors.New("too many cards of kind")
	ErrCardValue     = errors.New("card value out of range")
)

// Deck is the shared draw source: plain card values, drawn from the end.
type Deck []int

// NewMainDeck builds copies of every value 1..outcomes and shuffles them.
func NewMainDeck(outcomes, copies int, rng *rand.Rand) Deck {
	deck := make(Deck, 0, outcomes*copies)
	for i := 0; i < copies; i++ {
		for value := 1; value <= outcomes; value++ {
			deck = append(deck, value)
		}
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

func (d Deck) Copy() Deck {
	return slices.Clone(d)
}

func (d Deck) Count(value int) int {
	return utils.Count(d, value)
}

// Draw removes the top card. The receiver is not modified.
func (d Deck) Draw() (int, Deck, bool) {
	if len(d) == 0 {
		return 0, d, false
	}
	return d[len(d)-1], slices.Clone(d[:len(d)-1]), true
}

// Take removes the topmost card with the given value, modelling a known draw.
func (d Deck) Take(value int) (Deck, bool) {
	i := utils.FindLastIndex(d, value)
	if i < 0 {
		return d, false
	}
	return slices.Delete(slices.Clone(d), i, i+1), true
}

// Side-deck line formats
var (
	plainPattern      = regexp.MustCompile(`^([+-]?\d+)$`)
	tieBreakerPattern = regexp.MustCompile(`^([+-]?\d+)/([+-]?\d+)T$`)
	alternatePattern  = regexp.MustCompile(`^([+-]?\d+)/([+-]?\d+)$`)
	invertPattern     = regexp.MustCompile(`^(\d+)&(\d+)$`)
	echoPattern       = regexp.MustCompile(`^D$`)
)

// SideDeckQuota is the maximum number of cards of each kind in one side deck.
var SideDeckQuota = map[Kind]int{
	Plain:          24,
	Invert:         12,
	AlternateValue: 12,
	Echo:           1,
	TieBreaker:     1,
}

// ParseCard creates a card from its side-deck notation, e.g. "+3", "+1/-1",
// "+1/-1T", "2&4" or "D". Values must fit in a signed byte.
func ParseCard(line string) (Card, error) {
	line = strings.TrimSpace(line)

	if echoPattern.MatchString(line) {
		return NewSpecialCard(Echo, 0), nil
	}

	var kind Kind
	var m []string
	switch {
	case tieBreakerPattern.MatchString(line):
		kind, m = TieBreaker, tieBreakerPattern.FindStringSubmatch(line)
	case alternatePattern.MatchString(line):
		kind, m = AlternateValue, alternatePattern.FindStringSubmatch(line)
	case invertPattern.MatchString(line):
		kind, m = Invert, invertPattern.FindStringSubmatch(line)
	case plainPattern.MatchString(line):
		kind, m = Plain, plainPattern.FindStringSubmatch(line)
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, line)
	}

	values := make([]int, 0, len(m)-1)
	for _, s := range m[1:] {
		v, err := cardValue(s)
		if err != nil {
			return Card{}, fmt.Errorf("%w: %q: %w", ErrCardValue, line, err)
		}
		values = append(values, v)
	}

	if kind == Plain {
		return NewCard(values[0]), nil
	}
	return NewSpecialCard(kind, values...), nil
}

// ParseSideDeck reads one card per line, skipping blanks and '#' comments.
func ParseSideDeck(r io.Reader) ([]Card, error) {
	remaining := make(map[Kind]int, len(SideDeckQuota))
	for kind, quota := range SideDeckQuota {
		remaining[kind] = quota
	}

	var cards []Card
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		card, err := ParseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if remaining[card.Kind] == 0 {
			return nil, fmt.Errorf("line %d: %w %s", lineNo, ErrQuotaExceeded, card.Kind)
		}
		remaining[card.Kind]--
		cards = append(cards, card)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read side deck: %w", err)
	}
	return cards, nil
}

func LoadSideDeck(path string) ([]Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open side deck: %w", err)
	}
	defer f.Close()

	cards, err := ParseSideDeck(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cards, nil
}

// DefaultSideDeck is used when no side-deck file is configured.
func DefaultSideDeck() []Card {
	lines := []string{
		"+1", "+2", "+3", "+4", "+5", "-1", "-2", "-3", "-4", "-5",
		"+1/-1", "+2/-2", "+3/-3", "2&4", "3&6", "D", "+1/-1T",
	}
	cards := make([]Card, len(lines))
	for i, line := range lines {
		card, err := ParseCard(line)
		if err != nil {
			panic(err)
		}
		cards[i] = card
	}
	return cards
}

// DealHand shuffles a copy of the side deck and returns the first size cards
// with fresh identities.
func DealHand(sideDeck []Card, size int, rng *rand.Rand) Hand {
	order := rng.Perm(len(sideDeck))
	size = min(size, len(sideDeck))
	hand := make(Hand, size)
	for i := 0; i < size; i++ {
		card := sideDeck[order[i]].Copy()
		card.ID = uuid.New()
		hand[i] = card
	}
	return hand
}

func cardValue(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
