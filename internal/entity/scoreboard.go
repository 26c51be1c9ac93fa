package entity

import "github.com/rocketscienceinc/tictactoe-cli/internal/engine"

// Scoreboard counts finished rounds for the current session. It is never
// persisted; a new process starts at zero.
type Scoreboard struct {
	XWins int
	OWins int
	Ties  int
}

// Record tallies the winner of a finished round. Unknown values are ignored
// so an unfinished game cannot skew the score.
func (that *Scoreboard) Record(winner string) {
	switch winner {
	case engine.PlayerX:
		that.XWins++
	case engine.PlayerO:
		that.OWins++
	case PlayerTie:
		that.Ties++
	}
}

// Reset zeroes the tallies, used when the session switches game mode.
func (that *Scoreboard) Reset() {
	*that = Scoreboard{}
}
