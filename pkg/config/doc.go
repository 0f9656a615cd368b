// Package config loads the announcer host configuration from environment
// variables, optionally seeded from .env files.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for struct parsing.
//
// # Variables
//
//	APP_NAME                   service name attached to logs (default "announcer")
//	APP_ENV                    development | staging | production (default "development")
//	HTTP_ADDR                  listen address (default ":8080")
//	LOG_LEVEL                  DEBUG | INFO | WARN | ERROR (default "INFO")
//	ANNOUNCER_CLEAR_DELAY      auto-clear delay, 0 disables (default "7s")
//	ANNOUNCER_RENDER_DISABLED  suppress live region markup (default false)
//	ANNOUNCER_CONTAINER_ID     id of the region container (default "announcer")
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//	store := announcer.New(announcer.WithClearDelay(cfg.Announcer.ClearDelay))
//
// # Error Handling
//
// Errors wrap one of the sentinels below and can be matched with errors.Is:
//
//   - ErrLoadingEnvFile – an explicitly requested .env file could not be read.
//   - ErrParsingConfig  – environment values could not be parsed.
//   - ErrInvalidConfig  – parsed values are out of range.
package config
