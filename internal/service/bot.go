package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/engine"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn plays the bot's mark on the cell the minimax search selects.
// The search is exhaustive, so the bot never loses a round.
func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	humanMark := engine.PlayerX
	if botPlayer.Mark == engine.PlayerX {
		humanMark = engine.PlayerO
	}

	chosenCell, ok := engine.ChooseMove(game.Board, botPlayer.Mark, humanMark)
	if !ok {
		return ErrNoAvailableMoves
	}

	if err := game.MakeTurn(botPlayer.Mark, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
