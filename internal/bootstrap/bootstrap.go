// Package bootstrap wires the commands that depend on the loaded config
// into a registry and returns the dispatcher both binaries run.
package bootstrap

import (
	"fmt"

	"clima-bot/internal/command"
	"clima-bot/internal/command/clima"
	_ "clima-bot/internal/command/core"
	"clima-bot/internal/config"
	"clima-bot/internal/logger"
	"clima-bot/internal/middleware"
	"clima-bot/internal/weather"
	"clima-bot/pkg/cmd"
)

// Setup registers clima (when enabled) into reg and returns a dispatcher
// over reg. Call it once per registry.
func Setup(reg *cmd.Registry, cfg *config.Config) (*command.Dispatcher, error) {
	if cfg.Enabled(config.WeatherCommandName) {
		client := weather.New(cfg.API.WeatherKey,
			weather.WithBaseURL(cfg.Weather.BaseURL),
			weather.WithLang(cfg.Weather.Lang),
			weather.WithTimeout(cfg.Weather.Timeout),
			weather.WithRateLimit(cfg.Weather.RequestsPerMinute),
		)
		if err := command.Register(reg, &clima.ClimaCommand{Weather: client}, middleware.Default()...); err != nil {
			return nil, fmt.Errorf("registering clima: %w", err)
		}
	}

	d := command.NewDispatcher(reg, cfg)
	for _, c := range d.Commands() {
		logger.Log.Debugf("Command enabled: %s%s", cfg.Commands.Prefix, c.Name())
	}
	return d, nil
}
