package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/engine"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGamePlay(mode, botMark string) GamePlayService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGamePlayService(logger, NewBotService(), mode, botMark)
}

func TestGamePlayService_StartRound(t *testing.T) {
	t.Run("Bot mode seats a human and a bot", func(t *testing.T) {
		// Given: a bot-mode session where the computer plays O
		gamePlay := newTestGamePlay(entity.WithBotMode, engine.PlayerO)

		// When: a round starts
		game := gamePlay.StartRound()

		// Then: two players are seated and exactly one is the bot with mark O
		require.Len(t, game.Players, 2)
		require.Equal(t, engine.PlayerX, game.Players[0].Mark)
		require.False(t, game.Players[0].IsBot())
		require.Equal(t, engine.PlayerO, game.Players[1].Mark)
		require.True(t, game.Players[1].IsBot())
	})

	t.Run("Friend mode seats two humans", func(t *testing.T) {
		// Given: a friend-mode session
		gamePlay := newTestGamePlay(entity.WithFriendMode, engine.PlayerO)

		// When: a round starts
		game := gamePlay.StartRound()

		// Then: nobody at the table is a bot
		require.Len(t, game.Players, 2)
		for _, player := range game.Players {
			require.False(t, player.IsBot())
		}
	})
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	t.Run("Error without an active game", func(t *testing.T) {
		// Given: a session where no round has started
		gamePlay := newTestGamePlay(entity.WithBotMode, engine.PlayerO)

		// When: a move comes in anyway
		_, err := gamePlay.MakeTurn(4)

		// Then: an error ErrNoActiveGame must be returned
		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
	})

	t.Run("Human move hands the turn to the bot", func(t *testing.T) {
		// Given: a fresh bot-mode round with the human as X
		gamePlay := newTestGamePlay(entity.WithBotMode, engine.PlayerO)
		gamePlay.StartRound()

		// When: the human takes the center
		game, err := gamePlay.MakeTurn(4)
		require.NoError(t, err)

		// Then: it is the bot's turn and further human moves are rejected
		require.Equal(t, engine.PlayerX, game.Board[4])
		require.True(t, gamePlay.IsBotTurn())

		_, err = gamePlay.MakeTurn(0)
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		// When: the bot replies
		game, err = gamePlay.BotTurn()
		require.NoError(t, err)

		// Then: the board holds one O and the human is back on the clock
		require.Equal(t, engine.PlayerO, game.Board[0])
		require.False(t, gamePlay.IsBotTurn())
	})

	t.Run("Bot turn is rejected when it is not the bot's turn", func(t *testing.T) {
		// Given: a fresh bot-mode round, human to open
		gamePlay := newTestGamePlay(entity.WithBotMode, engine.PlayerO)
		gamePlay.StartRound()

		// When: the bot is nudged out of turn
		_, err := gamePlay.BotTurn()

		// Then: an error ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Bot opens the round when it holds X", func(t *testing.T) {
		// Given: a bot-mode session where the computer plays X
		gamePlay := newTestGamePlay(entity.WithBotMode, engine.PlayerX)
		gamePlay.StartRound()

		// Then: the very first turn belongs to the bot
		require.True(t, gamePlay.IsBotTurn())

		// When: the bot opens
		game, err := gamePlay.BotTurn()
		require.NoError(t, err)

		// Then: one X is on the board
		require.Equal(t, engine.PlayerX, game.Board[0])
	})
}

func TestGamePlayService_Scores(t *testing.T) {
	t.Run("Finished rounds land on the scoreboard", func(t *testing.T) {
		// Given: a friend-mode session
		gamePlay := newTestGamePlay(entity.WithFriendMode, engine.PlayerO)
		gamePlay.StartRound()

		// When: X wins the round
		for _, cell := range []int{0, 3, 1, 4, 2} {
			_, err := gamePlay.MakeTurn(cell)
			require.NoError(t, err)
		}

		// Then: the scoreboard credits X
		require.Equal(t, entity.Scoreboard{XWins: 1}, gamePlay.Scores())
	})

	t.Run("Switching modes resets the scoreboard", func(t *testing.T) {
		// Given: a friend-mode session with a recorded win
		gamePlay := newTestGamePlay(entity.WithFriendMode, engine.PlayerO)
		gamePlay.StartRound()
		for _, cell := range []int{0, 3, 1, 4, 2} {
			_, err := gamePlay.MakeTurn(cell)
			require.NoError(t, err)
		}

		// When: the session switches to bot mode
		game, err := gamePlay.SwitchMode(entity.WithBotMode)
		require.NoError(t, err)

		// Then: a fresh bot-mode round starts with a clean scoreboard
		require.Equal(t, entity.WithBotMode, game.Mode)
		require.Equal(t, entity.Scoreboard{}, gamePlay.Scores())
	})

	t.Run("Unknown mode is rejected", func(t *testing.T) {
		// Given: a running session
		gamePlay := newTestGamePlay(entity.WithBotMode, engine.PlayerO)
		gamePlay.StartRound()

		// When: an unknown mode is requested
		_, err := gamePlay.SwitchMode("tournament")

		// Then: an error ErrUnknownMode must be returned
		assert.ErrorIs(t, err, apperror.ErrUnknownMode)
	})
}
