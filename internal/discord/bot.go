package discord

import (
	"context"
	"fmt"
	"time"

	"clima-bot/internal/command"
	"clima-bot/internal/config"
	"clima-bot/internal/logger"
	"clima-bot/internal/version"

	"github.com/bwmarrin/discordgo"
)

// handlerSlack is added to the weather timeout to bound a whole command,
// replies included.
const handlerSlack = 20 * time.Second

// Bot is a Discord bot
type Bot struct {
	cfg        *config.Config
	dispatcher *command.Dispatcher
	dg         *discordgo.Session
	ctx        context.Context
}

// NewBot creates a bot that answers through d
func NewBot(cfg *config.Config, d *command.Dispatcher) *Bot {
	return &Bot{cfg: cfg, dispatcher: d}
}

// Run connects to the gateway and blocks until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.API.Token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg
	b.ctx = ctx

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	logger.Log.Info("❎ Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents asks only for what text commands need
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Log.WithField("guilds", len(r.Guilds)).
		Infof("✅ %s is connected! (%s)", r.User.Username, version.String())
}

// onMessageCreate is called when a message is created
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	ctx, cancel := context.WithTimeout(b.ctx, b.cfg.Weather.Timeout+handlerSlack)
	defer cancel()

	b.dispatcher.Dispatch(ctx, toMessage(selfID(s), m), &sessionSender{s: s})
}

func selfID(s *discordgo.Session) string {
	if s.State == nil || s.State.User == nil {
		return ""
	}
	return s.State.User.ID
}

// toMessage converts a gateway event into the dispatcher's message type
func toMessage(selfID string, m *discordgo.MessageCreate) command.Message {
	msg := command.Message{
		ID:        m.ID,
		Content:   m.Content,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
	}
	if m.Author != nil {
		msg.AuthorID = m.Author.ID
		msg.AuthorName = m.Author.Username
		msg.FromSelf = selfID != "" && m.Author.ID == selfID
	}
	return msg
}
