package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration of an announcer host.
type Config struct {
	AppName  string     `env:"APP_NAME" envDefault:"announcer"`
	AppEnv   string     `env:"APP_ENV" envDefault:"development"`
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	Announcer Announcer `envPrefix:"ANNOUNCER_"`
}

// Announcer holds store and rendering settings.
type Announcer struct {
	// ClearDelay empties the regions this long after the last announcement.
	// Zero disables auto-clear.
	ClearDelay time.Duration `env:"CLEAR_DELAY" envDefault:"7s"`

	// RenderDisabled suppresses the live region markup.
	RenderDisabled bool `env:"RENDER_DISABLED" envDefault:"false"`

	// ContainerID is the element id wrapping the regions.
	ContainerID string `env:"CONTAINER_ID" envDefault:"announcer"`
}

// Load reads the given .env files, then parses the environment into Config.
// Without files the default .env in the working directory is loaded when it
// exists. Variables already present in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		// The default .env file is optional.
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure.
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// Validate checks value ranges that struct tags cannot express.
func (c Config) Validate() error {
	if c.Announcer.ClearDelay < 0 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("ANNOUNCER_CLEAR_DELAY must not be negative, got %s", c.Announcer.ClearDelay))
	}
	if c.HTTPAddr == "" {
		return errors.Join(ErrInvalidConfig, errors.New("HTTP_ADDR must not be empty"))
	}
	return nil
}

// IsProduction reports whether AppEnv names a production environment.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}
