package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadNestedLayout(t *testing.T) {
	path := writeConfig(t, `
[api]
api_token = "discord-token"
api_weather = "weather-key"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.API.Token != "discord-token" {
		t.Errorf("token: got %q", cfg.API.Token)
	}
	if cfg.API.WeatherKey != "weather-key" {
		t.Errorf("weather key: got %q", cfg.API.WeatherKey)
	}

	// Defaults survive for keys the file does not mention.
	if cfg.Commands.Prefix != "!" {
		t.Errorf("prefix: got %q, want !", cfg.Commands.Prefix)
	}
	if cfg.Weather.DefaultCity != "Madrid" {
		t.Errorf("default city: got %q", cfg.Weather.DefaultCity)
	}
	if cfg.Weather.Timeout != 10*time.Second {
		t.Errorf("timeout: got %s", cfg.Weather.Timeout)
	}
	if cfg.Weather.BaseURL != DefaultWeatherURL {
		t.Errorf("base url: got %q", cfg.Weather.BaseURL)
	}
}

func TestLoadLegacyLayoutWithWeatherDisabled(t *testing.T) {
	path := writeConfig(t, `
api_token = "legacy-token"

[commands]
disabled = ["clima"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.API.Token != "legacy-token" {
		t.Errorf("token: got %q, want legacy-token", cfg.API.Token)
	}
	if cfg.Enabled("clima") {
		t.Error("clima should be disabled")
	}
	if !cfg.Enabled("ping") {
		t.Error("ping should be enabled")
	}
}

func TestLoadOptionalSections(t *testing.T) {
	path := writeConfig(t, `
[api]
api_token = "t"
api_weather = "w"

[commands]
prefix = "?"

[weather]
default_city = "Paris"
lang = "en"
timeout = "3s"
requests_per_minute = 0

[assets]
hello_image = "/srv/assets/hello.png"

[log]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Commands.Prefix != "?" {
		t.Errorf("prefix: got %q", cfg.Commands.Prefix)
	}
	if cfg.Weather.DefaultCity != "Paris" || cfg.Weather.Lang != "en" {
		t.Errorf("weather: got %+v", cfg.Weather)
	}
	if cfg.Weather.Timeout != 3*time.Second {
		t.Errorf("timeout: got %s", cfg.Weather.Timeout)
	}
	if cfg.Weather.RequestsPerMinute != 0 {
		t.Errorf("rpm: got %d", cfg.Weather.RequestsPerMinute)
	}
	if cfg.Assets.HelloImage != "/srv/assets/hello.png" {
		t.Errorf("hello image: got %q", cfg.Assets.HelloImage)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log: got %+v", cfg.Log)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "env-token")
	t.Setenv("WEATHER_TIMEOUT", "2s")
	t.Setenv("DISABLED_COMMANDS", "hello,help")

	path := writeConfig(t, `
[api]
api_token = "file-token"
api_weather = "w"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.API.Token != "env-token" {
		t.Errorf("token: got %q, want env-token", cfg.API.Token)
	}
	if cfg.Weather.Timeout != 2*time.Second {
		t.Errorf("timeout: got %s", cfg.Weather.Timeout)
	}
	if cfg.Enabled("hello") || cfg.Enabled("help") || !cfg.Enabled("clima") {
		t.Errorf("disabled: got %v", cfg.Commands.Disabled)
	}
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		missing bool
		target  error
	}{
		{name: "missing file", missing: true},
		{name: "unparseable", body: "api_token = = broken"},
		{name: "missing token", body: "[api]\napi_weather = \"w\"\n", target: ErrMissingToken},
		{name: "blank token", body: "[api]\napi_token = \"  \"\napi_weather = \"w\"\n", target: ErrMissingToken},
		{name: "missing weather key", body: "[api]\napi_token = \"t\"\n", target: ErrMissingWeatherKey},
		{name: "bad prefix", body: "[api]\napi_token = \"t\"\napi_weather = \"w\"\n[commands]\nprefix = \"! \"\n"},
		{name: "zero timeout", body: "[api]\napi_token = \"t\"\napi_weather = \"w\"\n[weather]\ntimeout = \"0s\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.toml")
			if !tt.missing {
				path = writeConfig(t, tt.body)
			}

			cfg, err := Load(path)
			if err == nil {
				t.Fatalf("Load succeeded with %+v, want error", cfg)
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestMask(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"abc":        "***",
		"abcdefgh12": "******gh12",
	}
	for in, want := range tests {
		if got := Mask(in); got != want {
			t.Errorf("Mask(%q) = %q, want %q", in, got, want)
		}
	}
}
