package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var ErrNoActiveGame = errors.New("no active game")

type GameUseCase interface {
	NewGame(ctx context.Context, settings entity.GameSettings) (entity.GameState, error)
	DropPiece(ctx context.Context, column int) (entity.MoveResult, error)
	State(ctx context.Context) (entity.GameState, error)
}

// gameUseCase holds the single active game of a session and serializes every access to it.
type gameUseCase struct {
	logger   *slog.Logger
	defaults entity.GameSettings

	mu   sync.Mutex
	game *connectfour.Game
}

func NewGameUseCase(logger *slog.Logger, conf *config.Config) GameUseCase {
	return &gameUseCase{
		logger: logger.With("component", "game"),
		defaults: entity.GameSettings{
			Height:      conf.Board.Height,
			Width:       conf.Board.Width,
			FirstColor:  conf.Players.First,
			SecondColor: conf.Players.Second,
		},
	}
}

// NewGame replaces the active game. Zero dimensions and blank colors fall back to the configured defaults.
func (that *gameUseCase) NewGame(ctx context.Context, settings entity.GameSettings) (entity.GameState, error) {
	log := that.logger.With("method", "NewGame")

	settings = that.withDefaults(settings)

	game, err := connectfour.New(settings.Height, settings.Width, settings.FirstColor, settings.SecondColor)
	if err != nil {
		log.WarnContext(ctx, "rejected game settings", "error", err)
		return entity.GameState{}, fmt.Errorf("failed to create game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.game = game

	log.InfoContext(ctx, "game started",
		"height", settings.Height,
		"width", settings.Width,
		"first", settings.FirstColor,
		"second", settings.SecondColor,
	)

	return game.State(), nil
}

func (that *gameUseCase) DropPiece(ctx context.Context, column int) (entity.MoveResult, error) {
	log := that.logger.With("method", "DropPiece", "column", column)

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return entity.MoveResult{}, ErrNoActiveGame
	}

	player := that.game.CurrentPlayer()

	result, err := that.game.DropPiece(column)
	if err != nil {
		log.DebugContext(ctx, "move rejected", "player", player.Color, "error", err)
		return entity.MoveResult{}, fmt.Errorf("failed to drop piece: %w", err)
	}

	log.DebugContext(ctx, "piece dropped",
		"player", player.Color,
		"row", result.Position.Row,
		"moves", that.game.Moves(),
	)

	switch {
	case result.Status.IsWon():
		log.InfoContext(ctx, "game won", "winner", player.Color, "moves", that.game.Moves())
	case result.Status.IsTied():
		log.InfoContext(ctx, "game tied", "moves", that.game.Moves())
	}

	return result, nil
}

func (that *gameUseCase) State(_ context.Context) (entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return entity.GameState{}, ErrNoActiveGame
	}

	return that.game.State(), nil
}

func (that *gameUseCase) withDefaults(settings entity.GameSettings) entity.GameSettings {
	if settings.Height == 0 {
		settings.Height = that.defaults.Height
	}

	if settings.Width == 0 {
		settings.Width = that.defaults.Width
	}

	if strings.TrimSpace(settings.FirstColor) == "" {
		settings.FirstColor = that.defaults.FirstColor
	}

	if strings.TrimSpace(settings.SecondColor) == "" {
		settings.SecondColor = that.defaults.SecondColor
	}

	return settings
}
