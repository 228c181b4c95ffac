package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	configFile      = "tictactoe/config.yml"
	localConfigFile = "config.yml"

	// MaxGridSize keeps the board inside an 80x24 terminal.
	MaxGridSize = 9
)

var (
	ErrInvalidGridSize = errors.New("grid-size must be between 1 and 9")
	ErrInvalidLogLevel = errors.New("unknown log-level")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	GridSize int    `yaml:"grid-size" env:"TICTACTOE_GRID_SIZE" env-default:"3"`
	Redis    Redis  `yaml:"redis"`
}

type Redis struct {
	Enabled        bool          `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host           string        `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port           string        `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	Channel        string        `yaml:"channel" env:"TICTACTOE_REDIS_CHANNEL" env-default:"tictactoe:results"`
	PublishTimeout time.Duration `yaml:"publish-timeout" env:"TICTACTOE_REDIS_PUBLISH_TIMEOUT" env-default:"2s"`
}

// MustLoad - loads the configuration from path, or from defaults and the environment when path is empty.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Resolve - picks the config file to load: the explicit path if set, then the XDG config
// directories, then ./config.yml. It returns "" when no file exists.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if path, err := xdg.SearchConfigFile(configFile); err == nil {
		return path
	}

	if _, err := os.Stat(localConfigFile); err == nil {
		return localConfigFile
	}

	return ""
}

func (that *Config) Validate() error {
	if that.GridSize < 1 || that.GridSize > MaxGridSize {
		return fmt.Errorf("%w: %d", ErrInvalidGridSize, that.GridSize)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
