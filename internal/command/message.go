package command

import (
	"context"

	"clima-bot/internal/config"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Message is an inbound chat message as the dispatcher sees it.
type Message struct {
	ID         string
	Content    string
	ChannelID  string
	GuildID    string
	AuthorID   string
	AuthorName string
	// FromSelf is set when the bot itself wrote the message.
	FromSelf bool
}

// Sender is the outbound half of the gateway: everything a handler may do
// in response to a message.
type Sender interface {
	SendMessage(ctx context.Context, channelID string, msg *discordgo.MessageSend) error
	SendDirect(ctx context.Context, userID string, msg *discordgo.MessageSend) error
	ResolveChannel(ctx context.Context, channelID string) (*discordgo.Channel, error)
}

// MessageContext is the per-invocation state handed to a MessageCommand.
// Config is the value loaded at startup and must not be modified.
type MessageContext struct {
	Message Message
	Args    []string
	Sender  Sender
	Config  *config.Config
	Log     *logrus.Entry
}

// Reply sends plain text to the channel the message came from.
func (mc *MessageContext) Reply(ctx context.Context, content string) error {
	return mc.Send(ctx, &discordgo.MessageSend{Content: content})
}

// Send sends msg to the channel the message came from.
func (mc *MessageContext) Send(ctx context.Context, msg *discordgo.MessageSend) error {
	return mc.Sender.SendMessage(ctx, mc.Message.ChannelID, msg)
}

// DirectMessage sends content privately to the author.
func (mc *MessageContext) DirectMessage(ctx context.Context, content string) error {
	return mc.Sender.SendDirect(ctx, mc.Message.AuthorID, &discordgo.MessageSend{Content: content})
}
