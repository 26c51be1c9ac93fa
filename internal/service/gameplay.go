package service

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/engine"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// GamePlayService owns the mutable session state the pure engine must not
// hold: the current round, the scoreboard, and the active game mode.
type GamePlayService interface {
	StartRound() *entity.Game
	SwitchMode(mode string) (*entity.Game, error)

	Game() *entity.Game
	Scores() entity.Scoreboard

	MakeTurn(cell int) (*entity.Game, error)
	BotTurn() (*entity.Game, error)
	IsBotTurn() bool
}

type gamePlayService struct {
	logger *slog.Logger

	botService BotService

	mode      string
	botMark   string
	humanMark string

	game   *entity.Game
	scores entity.Scoreboard
}

func NewGamePlayService(logger *slog.Logger, botService BotService, mode, botMark string) GamePlayService {
	humanMark := engine.PlayerX
	if botMark == engine.PlayerX {
		humanMark = engine.PlayerO
	}

	return &gamePlayService{
		logger: logger.With("component", "gameplay"),

		botService: botService,

		mode:      mode,
		botMark:   botMark,
		humanMark: humanMark,
	}
}

// StartRound discards the current round, if any, and seats players for a
// fresh one. X always opens.
func (that *gamePlayService) StartRound() *entity.Game {
	game := entity.NewGame(that.mode)

	switch that.mode {
	case entity.WithBotMode:
		game.Players = []*entity.Player{
			{ID: uuid.NewString(), Mark: that.humanMark},
			{ID: uuid.NewString(), Mark: that.botMark, Bot: true},
		}
	default:
		game.Players = []*entity.Player{
			{ID: uuid.NewString(), Mark: engine.PlayerX},
			{ID: uuid.NewString(), Mark: engine.PlayerO},
		}
	}

	that.game = game
	that.logger.Debug("round started", "game_id", game.ID, "mode", that.mode)

	return game
}

// SwitchMode changes the game mode, resets the scoreboard and starts a fresh
// round. Switching to the already-active mode just restarts the round.
func (that *gamePlayService) SwitchMode(mode string) (*entity.Game, error) {
	if mode != entity.WithBotMode && mode != entity.WithFriendMode {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}

	if mode != that.mode {
		that.mode = mode
		that.scores.Reset()
	}

	return that.StartRound(), nil
}

func (that *gamePlayService) Game() *entity.Game {
	return that.game
}

func (that *gamePlayService) Scores() entity.Scoreboard {
	return that.scores
}

// MakeTurn plays the current human turn on the given cell.
func (that *gamePlayService) MakeTurn(cell int) (*entity.Game, error) {
	if that.game == nil {
		return nil, apperror.ErrNoActiveGame
	}

	if that.IsBotTurn() {
		return that.game, apperror.ErrNotYourTurn
	}

	if err := that.game.MakeTurn(that.game.Turn, cell); err != nil {
		return that.game, fmt.Errorf("failed to make turn: %w", err)
	}

	that.recordIfFinished()

	return that.game, nil
}

// BotTurn lets the bot commit its reply. The caller decides when: the board
// with the human's move should be on screen before the bot answers.
func (that *gamePlayService) BotTurn() (*entity.Game, error) {
	if that.game == nil {
		return nil, apperror.ErrNoActiveGame
	}

	if !that.IsBotTurn() {
		return that.game, apperror.ErrNotYourTurn
	}

	if err := that.botService.MakeTurn(that.game); err != nil {
		return that.game, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.recordIfFinished()

	return that.game, nil
}

func (that *gamePlayService) IsBotTurn() bool {
	return that.game != nil && that.game.IsOngoing() && that.game.IsWithBot() && that.game.Turn == that.botMark
}

func (that *gamePlayService) recordIfFinished() {
	if !that.game.IsFinished() {
		return
	}

	that.scores.Record(that.game.Winner)
	that.logger.Debug("round finished", "game_id", that.game.ID, "winner", that.game.Winner)
}
