package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/transport/tui"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
)

// RunApp - runs the application until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameUseCase := usecase.NewGameUseCase(logger, conf)
	ui := tui.New(logger, gameUseCase, conf)

	log.Info("Starting terminal UI", "height", conf.Board.Height, "width", conf.Board.Width)

	if err := ui.Run(ctx); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	log.Info("Terminal UI closed")

	return nil
}
