package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
)

// errQuit signals a clean exit requested from the prompt.
var errQuit = errors.New("quit requested")

// Server runs the interactive game session on a line-based prompt. Commands
// are dispatched through a handler map; a bare cell number is a move.
type Server struct {
	logger   *slog.Logger
	gamePlay service.GamePlayService

	in       io.Reader
	out      *termenv.Output
	botDelay time.Duration

	handlers map[string]func(ctx context.Context, args []string) error
}

func New(logger *slog.Logger, gamePlay service.GamePlayService, in io.Reader, out io.Writer, botDelay time.Duration) *Server {
	server := &Server{
		logger:   logger.With("component", "terminal"),
		gamePlay: gamePlay,

		in:       in,
		out:      termenv.NewOutput(out),
		botDelay: botDelay,
	}

	server.handlers = make(map[string]func(context.Context, []string) error)
	server.handlers["new"] = server.handleNewRound
	server.handlers["mode"] = server.handleSwitchMode
	server.handlers["score"] = server.handleScore
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Start - runs the prompt loop until the input closes, quit is entered, or
// the context is canceled.
func (that *Server) Start(ctx context.Context) error {
	that.printWelcome()

	that.gamePlay.StartRound()
	that.render()

	// the bot opens the round when it holds X
	if err := that.runBot(ctx); err != nil {
		return err
	}

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	for {
		that.prompt()

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				return nil
			}

			if line == "" {
				continue
			}

			if err := that.dispatch(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					that.printGoodbye()
					return nil
				}

				return err
			}
		}
	}
}

// dispatch - routes a line either to a named command or, when it parses as a
// number, to the move handler.
func (that *Server) dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(line)

	if cell, err := strconv.Atoi(fields[0]); err == nil {
		return that.handleMove(ctx, cell)
	}

	handler, ok := that.handlers[strings.ToLower(fields[0])]
	if !ok {
		that.printf("unknown command %q, type help for the list\n", fields[0])
		return nil
	}

	return handler(ctx, fields[1:])
}

func (that *Server) handleMove(ctx context.Context, cell int) error {
	if _, err := that.gamePlay.MakeTurn(cell); err != nil {
		that.logger.Debug("rejected move", "cell", cell, "error", err)
		that.printf("%s\n", err)

		return nil
	}

	that.render()
	that.announceIfFinished()

	return that.runBot(ctx)
}

// runBot lets the bot take its turn after the human's move is already on
// screen, waiting out the configured thinking delay first. The loop covers
// the bot opening the next round after an announced finish.
func (that *Server) runBot(ctx context.Context) error {
	for that.gamePlay.IsBotTurn() {
		that.printf("computer is thinking...\n")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(that.botDelay):
		}

		if _, err := that.gamePlay.BotTurn(); err != nil {
			return fmt.Errorf("bot turn failed: %w", err)
		}

		that.render()
		that.announceIfFinished()
	}

	return nil
}

func (that *Server) handleNewRound(ctx context.Context, _ []string) error {
	that.gamePlay.StartRound()
	that.printf("new round\n")
	that.render()

	return that.runBot(ctx)
}

func (that *Server) handleSwitchMode(ctx context.Context, args []string) error {
	if len(args) != 1 {
		that.printf("usage: mode %s|%s\n", entity.WithBotMode, entity.WithFriendMode)
		return nil
	}

	if _, err := that.gamePlay.SwitchMode(strings.ToLower(args[0])); err != nil {
		that.printf("%s\n", err)
		return nil
	}

	that.printf("mode switched to %s, score reset\n", strings.ToLower(args[0]))
	that.render()

	return that.runBot(ctx)
}

func (that *Server) handleScore(_ context.Context, _ []string) error {
	that.printScore()
	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	that.printHelp()
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	return errQuit
}

// announceIfFinished reports the round result and immediately seats the next
// round so play keeps flowing.
func (that *Server) announceIfFinished() {
	game := that.gamePlay.Game()
	if !game.IsFinished() {
		return
	}

	switch game.Winner {
	case entity.PlayerTie:
		that.printf("round drawn\n")
	default:
		that.printf("%s wins the round\n", game.Winner)
	}

	that.printScore()

	that.gamePlay.StartRound()
	that.printf("next round\n")
	that.render()
}
