package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/engine"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type Config struct {
	LogLevel string        `yaml:"log-level" env-default:"info"`
	Mode     string        `yaml:"mode" env-default:"bot"`
	BotMark  string        `yaml:"bot-mark" env-default:"O"`
	BotDelay time.Duration `yaml:"bot-delay" env-default:"600ms"`
}

// MustLoad - load all configurations from the config.yml file. A missing file
// is fine: defaults apply. An unreadable or invalid one is not.
func MustLoad(path string) *Config {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if errors.Is(err, os.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err = config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

// Validate - rejects unknown game modes and marks before any game starts.
func (that *Config) Validate() error {
	if that.Mode != entity.WithBotMode && that.Mode != entity.WithFriendMode {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMode, that.Mode)
	}

	if that.BotMark != engine.PlayerX && that.BotMark != engine.PlayerO {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, that.BotMark)
	}

	return nil
}
