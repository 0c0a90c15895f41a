package game

// Rules supplies the round and match parameters the simulator depends on.
type Rules interface {
	Target() int          // board total above which a side busts
	WinScore() int        // round wins needed to take the match
	HandSize() int        // cards dealt from the side deck
	MaxPlaysPerTurn() int // hand cards a side may play in one turn
	Outcomes() int        // draw values are 1..Outcomes()
}
