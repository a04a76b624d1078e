// Package config loads the bot configuration once at startup from a TOML
// file, a local .env file and environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"clima-bot/internal/logger"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultPath        = "config.toml"
	DefaultWeatherURL  = "https://api.openweathermap.org/data/2.5/weather"
	DefaultCity        = "Madrid"
	DefaultHelloImage  = "./ferris_eyes.png"
	WeatherCommandName = "clima"
)

var (
	ErrMissingToken      = errors.New("discord token is not set (api.api_token or DISCORD_TOKEN)")
	ErrMissingWeatherKey = errors.New("weather api key is not set (api.api_weather or WEATHER_API_KEY)")
)

type Config struct {
	API      APIConfig      `koanf:"api"`
	Commands CommandsConfig `koanf:"commands"`
	Weather  WeatherConfig  `koanf:"weather"`
	Assets   AssetsConfig   `koanf:"assets"`
	Log      LogConfig      `koanf:"log"`

	// LegacyToken is the top-level api_token of single-section config files.
	LegacyToken string `koanf:"api_token"`
}

type APIConfig struct {
	Token      string `koanf:"api_token" env:"DISCORD_TOKEN"`
	WeatherKey string `koanf:"api_weather" env:"WEATHER_API_KEY"`
}

type CommandsConfig struct {
	Prefix   string   `koanf:"prefix" env:"COMMAND_PREFIX"`
	Disabled []string `koanf:"disabled" env:"DISABLED_COMMANDS" envSeparator:","`
}

type WeatherConfig struct {
	BaseURL           string        `koanf:"base_url" env:"WEATHER_BASE_URL"`
	DefaultCity       string        `koanf:"default_city" env:"WEATHER_DEFAULT_CITY"`
	Lang              string        `koanf:"lang" env:"WEATHER_LANG"`
	Timeout           time.Duration `koanf:"timeout" env:"WEATHER_TIMEOUT"`
	RequestsPerMinute int           `koanf:"requests_per_minute" env:"WEATHER_RPM"`
}

type AssetsConfig struct {
	HelloImage string `koanf:"hello_image" env:"HELLO_IMAGE"`
}

type LogConfig struct {
	Level  string `koanf:"level" env:"LOG_LEVEL"`
	Format string `koanf:"format" env:"LOG_FORMAT"`
	File   string `koanf:"file" env:"LOG_FILE"`
}

// Default returns the configuration used for every key the file omits.
// It has no token, so it never validates on its own.
func Default() *Config {
	return &Config{
		Commands: CommandsConfig{Prefix: "!"},
		Weather: WeatherConfig{
			BaseURL:           DefaultWeatherURL,
			DefaultCity:       DefaultCity,
			Lang:              "es",
			Timeout:           10 * time.Second,
			RequestsPerMinute: 60,
		},
		Assets: AssetsConfig{HelloImage: DefaultHelloImage},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Path returns the config file location, CONFIG_PATH or config.toml.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads path, overlays .env and environment variables, and validates
// the result. Any failure is meant to stop the process before it connects.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug("No .env file found, using system environment variables")
	}

	cfg := Default()

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if cfg.API.Token == "" {
		cfg.API.Token = cfg.LegacyToken
	}
	cfg.API.Token = strings.TrimSpace(cfg.API.Token)
	cfg.API.WeatherKey = strings.TrimSpace(cfg.API.WeatherKey)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first problem that would make the bot unusable.
func (c *Config) Validate() error {
	if c.API.Token == "" {
		return ErrMissingToken
	}
	if c.Enabled(WeatherCommandName) && c.API.WeatherKey == "" {
		return ErrMissingWeatherKey
	}
	if c.Commands.Prefix == "" || strings.ContainsAny(c.Commands.Prefix, " \t\r\n") {
		return fmt.Errorf("commands.prefix %q must be non-empty and contain no whitespace", c.Commands.Prefix)
	}
	if c.Weather.Timeout <= 0 {
		return fmt.Errorf("weather.timeout must be positive, got %s", c.Weather.Timeout)
	}
	if c.Weather.RequestsPerMinute < 0 {
		return fmt.Errorf("weather.requests_per_minute must be non-negative, got %d", c.Weather.RequestsPerMinute)
	}
	if c.Weather.BaseURL == "" {
		return errors.New("weather.base_url is required")
	}
	return nil
}

// Enabled reports whether the named command is not listed in commands.disabled.
func (c *Config) Enabled(name string) bool {
	return !slices.Contains(c.Commands.Disabled, name)
}

// Mask hides all but the last four characters of a secret for display.
func Mask(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
