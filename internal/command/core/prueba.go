package core

import (
	"context"
	"fmt"

	"clima-bot/internal/command"

	"github.com/bwmarrin/discordgo"
)

type PruebaCommand struct{}

func (c *PruebaCommand) Name() string        { return "prueba" }
func (c *PruebaCommand) Description() string { return "Say who used the command and where" }

func (c *PruebaCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	channel, err := mc.Sender.ResolveChannel(ctx, mc.Message.ChannelID)
	if err != nil {
		return fmt.Errorf("resolving channel %s: %w", mc.Message.ChannelID, err)
	}

	msg := &discordgo.MessageSend{
		Content: PruebaText(mc.Message.AuthorName, channel),
		// The channel mention renders as a link either way; nobody gets pinged.
		AllowedMentions: &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}},
	}
	if err := mc.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending prueba reply: %w", err)
	}
	return nil
}

// PruebaText builds the reply with the author name escaped and in bold.
func PruebaText(author string, channel *discordgo.Channel) string {
	return "User " + command.BoldSafe(author) +
		" used the 'prueba' command in the " + channel.Mention() + " channel"
}
