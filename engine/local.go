package engine

import (
	"time"

	"pazaak/agent"
	"pazaak/experiments/metrics"
	"pazaak/game"
	"pazaak/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// LocalEngine runs a match between two in-process agents.
type LocalEngine struct {
	ID     uuid.UUID
	Match  *game.Match
	State  game.RoundState
	Hands  [2]game.Hand
	rules  game.Rules
	agents [2]agent.Agent
	rng    *rand.Rand

	step        int
	moveMetrics []metrics.MoveMetric
}

// NewLocalEngine deals each side a hand from its side deck. The seed drives
// the deals and every main-deck shuffle.
func NewLocalEngine(rules game.Rules, agents [2]agent.Agent, sideDecks [2][]game.Card, seed uint64) *LocalEngine {
	if agents[game.Player] == nil || agents[game.Opponent] == nil {
		panic("need two agents")
	}

	rng := rand.New(rand.NewSource(seed))
	e := &LocalEngine{
		ID:     uuid.New(),
		Match:  game.NewMatch(rules),
		rules:  rules,
		agents: agents,
		rng:    rng,
	}
	for _, side := range []game.Side{game.Player, game.Opponent} {
		e.Hands[side] = game.DealHand(sideDecks[side], rules.HandSize(), rng)
	}
	return e
}

// Run executes rounds until a side takes the match.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		MatchID:      e.ID.String(),
		StartingSide: game.Player,
		StartTime:    time.Now(),
	}

	log.Info().Str("match", e.ID.String()).Msg("match-start")

	winner := ""
	for e.Match.Round() <= MaxRounds {
		result := e.playRound()
		e.Match.Record(result)
		log.Info().
			Str("match", e.ID.String()).
			Int("round", len(e.Match.Results)).
			Str("result", result.String()).
			Int("player", e.Match.Scores[game.Player]).
			Int("opponent", e.Match.Scores[game.Opponent]).
			Msg("round-complete")

		if side, ok := e.Match.Winner(); ok {
			winner = side.String()
			break
		}
	}

	if winner == "" {
		log.Warn().Str("match", e.ID.String()).Msgf("stopped after %d rounds (no winner yet)", MaxRounds)
	}

	gameMetric.Winner = winner
	gameMetric.Scores = e.Match.Scores
	gameMetric.Rounds = len(e.Match.Results)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.step
	return winner, gameMetric, e.moveMetrics
}

// playRound deals a fresh main deck and alternates turns, player first, until
// both sides are done, a side busts or the deck runs out.
func (e *LocalEngine) playRound() game.Result {
	target := e.rules.Target()
	e.State = game.NewRoundState(game.NewMainDeck(e.rules.Outcomes(), DeckCopies, e.rng), game.Player)

	for !e.roundOver() {
		for _, side := range []game.Side{game.Player, game.Opponent} {
			if e.State.Status[side] != game.Active {
				continue
			}

			value, deck, ok := e.State.Deck.Draw()
			if !ok {
				log.Debug().Str("match", e.ID.String()).Msg("deck-exhausted")
				return game.DetermineRoundWinner(e.State, target)
			}
			e.State.Deck = deck
			e.State.Current = side
			e.State.Played = 0
			e.State.AddCard(side, game.DrawnCard(value), target)
			log.Debug().Str("side", side.String()).Int("card", value).Int("total", e.State.Boards[side].Total()).Msg("draw")

			if e.State.Status[side] == game.Active {
				e.takeTurn(side)
			}
			if e.State.Status[side] == game.Busted {
				log.Debug().Str("side", side.String()).Int("total", e.State.Boards[side].Total()).Msg("busted")
				return game.DetermineRoundWinner(e.State, target)
			}
		}
		e.State.Turn++
	}

	return game.DetermineRoundWinner(e.State, target)
}

func (e *LocalEngine) roundOver() bool {
	return e.State.IsTerminal() || len(e.State.Deck) == 0
}

// takeTurn asks side's agent for actions until it ends its turn, stands or
// busts. Hand cards are applied for real; ending the turn only hands over
// play, the next card is drawn at the start of the side's next turn.
func (e *LocalEngine) takeTurn(side game.Side) {
	for e.State.Status[side] == game.Active {
		legal := game.LegalActions(e.rules, e.State, e.Hands[side])
		action, metric := e.agents[side].FindMove(e.State.Copy(), e.Hands[side].Copy())

		if utils.FindIndex(legal, action) < 0 {
			log.Warn().Str("side", side.String()).Str("action", action.String()).Msg("invalid action, forcing stand")
			action = legal[len(legal)-1]
		}

		e.step++
		e.moveMetrics = append(e.moveMetrics, metrics.MoveMetric{
			Step:         e.step,
			Round:        e.Match.Round(),
			Side:         side,
			Action:       action.String(),
			SearchMetric: metric,
		})
		log.Debug().Str("side", side.String()).Str("action", action.String()).Msg("action")

		if action.Type == game.EndTurnAction {
			return
		}

		state, hand, err := game.Play(e.rules, e.State, e.Hands[side], action)
		if err != nil {
			panic(err) // legal actions always apply
		}
		e.State, e.Hands[side] = state, hand
	}
}
