package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	AppName  = "connectfour"
	PathEnv  = "CONNECTFOUR_CONFIG"
	fileName = AppName + "/config.yml"
	logName  = AppName + "/" + AppName + ".log"

	minBoardDimension = 4
	// the board view has to fit an 80x24 terminal
	maxBoardDimension = 12
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"CONNECTFOUR_LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"CONNECTFOUR_LOG_FILE"`
	Board    Board   `yaml:"board"`
	Players  Players `yaml:"players"`
}

type Board struct {
	Height int `yaml:"height" env:"CONNECTFOUR_BOARD_HEIGHT" env-default:"6"`
	Width  int `yaml:"width" env:"CONNECTFOUR_BOARD_WIDTH" env-default:"7"`
}

type Players struct {
	First  string `yaml:"first" env:"CONNECTFOUR_FIRST_COLOR" env-default:"red"`
	Second string `yaml:"second" env:"CONNECTFOUR_SECOND_COLOR" env-default:"yellow"`
}

// MustLoad - load all configurations from the given yml file, or from the environment and defaults
// when path is empty. It panics when the result is unusable.
func MustLoad(path string) *Config {
	config, err := load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Path - the file named by CONNECTFOUR_CONFIG, otherwise connectfour/config.yml from the XDG
// config directories. It is empty when neither exists.
func Path() string {
	if path := os.Getenv(PathEnv); path != "" {
		return path
	}

	path, err := xdg.SearchConfigFile(fileName)
	if err != nil {
		return ""
	}

	return path
}

func load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := that.Board.Validate(); err != nil {
		return err
	}

	return that.Players.Validate()
}

func (that *Board) Validate() error {
	if err := validateDimension("height", that.Height); err != nil {
		return err
	}

	return validateDimension("width", that.Width)
}

func validateDimension(name string, value int) error {
	if value < minBoardDimension || value > maxBoardDimension {
		return fmt.Errorf("%w: board %s %d is outside %d..%d",
			ErrInvalidConfig, name, value, minBoardDimension, maxBoardDimension)
	}

	return nil
}

func (that *Players) Validate() error {
	first, second := strings.TrimSpace(that.First), strings.TrimSpace(that.Second)

	if first == "" || second == "" {
		return fmt.Errorf("%w: both player colors must be set", ErrInvalidConfig)
	}

	if strings.EqualFold(first, second) {
		return fmt.Errorf("%w: players share the color %q", ErrInvalidConfig, first)
	}

	return nil
}

// LogFilePath - the configured log file, or connectfour/connectfour.log under XDG_STATE_HOME.
func (that *Config) LogFilePath() (string, error) {
	if that.LogFile != "" {
		return that.LogFile, nil
	}

	path, err := xdg.StateFile(logName)
	if err != nil {
		return "", fmt.Errorf("unable to resolve log file: %w", err)
	}

	return path, nil
}
