package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/engine"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	PlayerTie = "-"
)

const (
	WithFriendMode = "friend"
	WithBotMode    = "bot"
)

// Game is one round of tic-tac-toe: the live board plus whose turn it is,
// how the round ended, and the players seated at it.
type Game struct {
	ID      string
	Board   engine.Board
	Turn    string
	Winner  string
	Status  string
	Mode    string
	Players []*Player
}

// NewGame starts a fresh round in the given mode. X always opens.
func NewGame(mode string) *Game {
	return &Game{
		ID:     uuid.NewString(),
		Board:  engine.Board{},
		Turn:   engine.PlayerX,
		Status: StatusOngoing,
		Mode:   mode,
	}
}

// MakeTurn places playerMark on the given cell. It validates the move before
// touching the board, then re-evaluates the board to settle winner, draw, or
// turn change.
func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != engine.EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark
	that.updateState(playerMark)

	return nil
}

// updateState settles the round after a move: a completed line finishes it
// with a winner, a full board finishes it as a tie, otherwise the turn flips.
func (that *Game) updateState(lastMark string) {
	verdict := engine.Evaluate(that.Board)

	switch {
	case verdict.Winner != engine.EmptyCell:
		that.Winner = verdict.Winner
		that.Status = StatusFinished
		that.Turn = ""
	case verdict.IsDraw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	default:
		that.Turn = toggleMark(lastMark)
	}
}

func toggleMark(currentMark string) string {
	if currentMark == engine.PlayerX {
		return engine.PlayerO
	}

	return engine.PlayerX
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithBot() bool {
	return that.Mode == WithBotMode
}
