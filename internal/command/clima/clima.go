// Package clima implements the weather command backed by OpenWeatherMap.
package clima

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"clima-bot/internal/command"
	"clima-bot/internal/config"
	"clima-bot/internal/weather"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
	"github.com/sirupsen/logrus"
)

const (
	FetchFailedText = "⚠️ No se pudo obtener el clima."
	FooterText      = "Datos proporcionados por OpenWeatherMap"
)

// Fetcher is the part of *weather.Client the command uses.
type Fetcher interface {
	Current(ctx context.Context, city string) (*weather.Report, error)
}

type ClimaCommand struct {
	Weather Fetcher
	// Now is used for the embed timestamp; nil means time.Now.
	Now func() time.Time
}

func (c *ClimaCommand) Name() string        { return config.WeatherCommandName }
func (c *ClimaCommand) Description() string { return "Current weather for a city (default Madrid)" }
func (c *ClimaCommand) AcceptsArgs() bool   { return true }

func (c *ClimaCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	city := City(mc.Args, mc.Config.Weather.DefaultCity)

	report, err := c.Weather.Current(ctx, city)
	if err != nil {
		entry := mc.Log.WithError(err).WithField("city", city)
		var werr *weather.Error
		if errors.As(err, &werr) {
			entry = entry.WithFields(logrus.Fields{"kind": werr.Kind, "status": werr.StatusCode})
		}
		entry.Warn("Weather lookup failed")

		if err := mc.Reply(ctx, FetchFailedText); err != nil {
			return fmt.Errorf("sending weather apology: %w", err)
		}
		return nil
	}

	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}
	msg := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{Embed(report, now)}}
	if err := mc.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending weather embed: %w", err)
	}
	return nil
}

// City joins the arguments so multi-word names work, falling back to def
// and then to Madrid.
func City(args []string, def string) string {
	if city := strings.Join(args, " "); city != "" {
		return city
	}
	if def != "" {
		return def
	}
	return config.DefaultCity
}

// Embed renders a report.
func Embed(r *weather.Report, now time.Time) *discordgo.MessageEmbed {
	e := embed.NewEmbed().
		SetTitle("🌤️ Clima en " + r.City).
		SetDescription(capitalize(r.Description)).
		AddField("🌡️ Temperatura", weather.FormatCelsius(r.Temp)).
		AddField("🔻 Mínima", weather.FormatCelsius(r.TempMin)).
		AddField("🔺 Máxima", weather.FormatCelsius(r.TempMax)).
		AddField("💧 Humedad", strconv.Itoa(r.Humidity)+"%").
		AddField("☁️ Descripción", r.Description).
		SetFooter(FooterText).
		SetColor(command.EmbedColor).
		InlineAllFields()

	e.Timestamp = now.Format(time.RFC3339)
	return e.MessageEmbed
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
