package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	botService := service.NewBotService()
	gamePlayService := service.NewGamePlayService(logger, botService, conf.Mode, conf.BotMark)

	term := terminal.New(logger, gamePlayService, os.Stdin, os.Stdout, conf.BotDelay)

	log.Info("starting game session", "mode", conf.Mode, "bot_mark", conf.BotMark)

	if err := term.Start(ctx); err != nil {
		return fmt.Errorf("terminal session error: %w", err)
	}

	log.Info("game session ended")

	return nil
}
