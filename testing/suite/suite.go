package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/connectfour/internal/config"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Config *config.Config
}

// New returns a context cancelled when the test ends, a silent logger and the default config.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Config: &config.Config{
			LogLevel: "debug",
			Board:    config.Board{Height: 6, Width: 7},
			Players:  config.Players{First: "red", Second: "yellow"},
		},
	}
}
