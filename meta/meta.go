// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines (independent trees) per search.
const GO_ROUTINES = 1

// ITERATIONS defines the number of MCTS episodes per decision.
const ITERATIONS = 1000

// EXPLORATION defines the UCB1 exploration constant.
const EXPLORATION = 1.4

// TARGET defines the board total above which a side busts.
const TARGET = 20

// WIN_SCORE defines the round wins needed to take a match.
const WIN_SCORE = 3

// HAND_SIZE defines the cards dealt from each side deck.
const HAND_SIZE = 4

// PLAYS_PER_TURN defines the hand cards a side may play in one turn.
const PLAYS_PER_TURN = 1

// MAX_DRAW defines the highest main-deck card value.
const MAX_DRAW = 10

const LOG_LEVEL = "info"

const EXPERIMENT_GAMES = 30

const EXPERIMENT_DIR = "results"

// ENV_PREFIX prefixes every environment variable read by the config package.
const ENV_PREFIX = "PAZAAK_"
