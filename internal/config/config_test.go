package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// useXDGConfigDir points the XDG config lookup at dir for the duration of the test.
func useXDGConfigDir(t *testing.T, dir string) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", dir)
	xdg.Reload()

	t.Cleanup(xdg.Reload)
}

func TestMustLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file overriding every field
		path := writeConfig(t, t.TempDir(), `
log-level: debug
log-file: /tmp/connectfour.log
board:
  height: 8
  width: 9
players:
  first: blue
  second: green
`)

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: the file values are used
		assert.Equal(t, &Config{
			LogLevel: "debug",
			LogFile:  "/tmp/connectfour.log",
			Board:    Board{Height: 8, Width: 9},
			Players:  Players{First: "blue", Second: "green"},
		}, conf)
	})

	t.Run("Fills missing values with defaults", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, t.TempDir(), "log-level: debug\n")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: the rest comes from the defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, Board{Height: 6, Width: 7}, conf.Board)
		assert.Equal(t, Players{First: "red", Second: "yellow"}, conf.Players)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an environment override
		path := writeConfig(t, t.TempDir(), "board:\n  width: 8\n")
		t.Setenv("CONNECTFOUR_BOARD_WIDTH", "10")
		t.Setenv("CONNECTFOUR_SECOND_COLOR", "purple")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: the environment wins
		assert.Equal(t, 10, conf.Board.Width)
		assert.Equal(t, "purple", conf.Players.Second)
	})

	t.Run("Uses environment and defaults for an empty path", func(t *testing.T) {
		// Given: no config file and one environment override
		t.Setenv("CONNECTFOUR_BOARD_HEIGHT", "8")

		// When: the config is loaded without a path
		conf := MustLoad("")

		// Then: the override and the defaults are used
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, Board{Height: 8, Width: 7}, conf.Board)
		assert.Equal(t, Players{First: "red", Second: "yellow"}, conf.Players)
	})

	t.Run("Panics on an invalid file", func(t *testing.T) {
		// Given: a config file with equal colors
		path := writeConfig(t, t.TempDir(), "players:\n  first: red\n  second: red\n")

		// When/Then: loading it panics
		assert.Panics(t, func() {
			MustLoad(path)
		})
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		// When/Then: loading a file that does not exist panics
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestPath(t *testing.T) {
	t.Run("Prefers CONNECTFOUR_CONFIG", func(t *testing.T) {
		// Given: an explicit config path in the environment
		t.Setenv(PathEnv, "/etc/connectfour.yml")

		// When/Then: it is returned as is
		assert.Equal(t, "/etc/connectfour.yml", Path())
	})

	t.Run("Finds the file in the XDG config directory", func(t *testing.T) {
		// Given: connectfour/config.yml in the XDG config directory
		t.Setenv(PathEnv, "")
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, AppName), 0o700))
		path := writeConfig(t, filepath.Join(dir, AppName), "board:\n  height: 5\n  width: 5\n")
		useXDGConfigDir(t, dir)

		// When/Then: the file is found
		assert.Equal(t, path, Path())
	})

	t.Run("Is empty without a config file", func(t *testing.T) {
		// Given: empty XDG config directories
		t.Setenv(PathEnv, "")
		useXDGConfigDir(t, t.TempDir())

		// When/Then: there is nothing to read
		assert.Empty(t, Path())
	})
}

func TestLoad(t *testing.T) {
	t.Run("Returns ErrInvalidConfig for an invalid file", func(t *testing.T) {
		// Given: a config file with a board too small to win on
		path := writeConfig(t, t.TempDir(), "board:\n  height: 3\n")

		// When: the config is loaded
		conf, err := load(path)

		// Then: validation fails
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, conf)
	})

	t.Run("Returns ErrInvalidConfig for an invalid environment", func(t *testing.T) {
		// Given: no file and both colors set to the same value
		t.Setenv("CONNECTFOUR_FIRST_COLOR", "blue")
		t.Setenv("CONNECTFOUR_SECOND_COLOR", "Blue")

		// When: the config is loaded
		conf, err := load("")

		// Then: validation fails
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, conf)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		LogLevel: "info",
		Board:    Board{Height: 6, Width: 7},
		Players:  Players{First: "red", Second: "yellow"},
	}

	t.Run("Accepts the defaults", func(t *testing.T) {
		conf := valid
		assert.NoError(t, conf.Validate())
	})

	t.Run("Rejects board dimensions out of range", func(t *testing.T) {
		for _, board := range []Board{{Height: 3, Width: 7}, {Height: 6, Width: 3}, {Height: 13, Width: 7}, {Height: 6, Width: 40}} {
			// Given: a config with a bad board
			conf := valid
			conf.Board = board

			// When: it is validated
			err := conf.Validate()

			// Then: ErrInvalidConfig is returned
			assert.ErrorIs(t, err, ErrInvalidConfig)
		}
	})

	t.Run("Rejects blank or shared colors", func(t *testing.T) {
		for _, players := range []Players{{First: "", Second: "yellow"}, {First: "red", Second: " "}, {First: "Red", Second: "red"}} {
			// Given: a config with bad colors
			conf := valid
			conf.Players = players

			// When: it is validated
			err := conf.Validate()

			// Then: ErrInvalidConfig is returned
			assert.ErrorIs(t, err, ErrInvalidConfig)
		}
	})
}

func TestConfig_LogFilePath(t *testing.T) {
	t.Run("Prefers the configured file", func(t *testing.T) {
		conf := &Config{LogFile: "/var/log/connectfour.log"}

		path, err := conf.LogFilePath()

		require.NoError(t, err)
		assert.Equal(t, "/var/log/connectfour.log", path)
	})

	t.Run("Falls back to the XDG state directory", func(t *testing.T) {
		// Given: XDG_STATE_HOME pointing at a temporary directory
		dir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", dir)
		xdg.Reload()
		t.Cleanup(xdg.Reload)

		// When: the log file path is resolved
		path, err := (&Config{}).LogFilePath()

		// Then: it lives under connectfour/ in that directory
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, AppName, AppName+".log"), path)
	})
}
