package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// sessionSender implements command.Sender over a live session. Every REST
// call carries the command's context so shutdown and timeouts cancel it.
type sessionSender struct {
	s *discordgo.Session
}

func (ss *sessionSender) SendMessage(ctx context.Context, channelID string, msg *discordgo.MessageSend) error {
	_, err := ss.s.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx))
	return err
}

func (ss *sessionSender) SendDirect(ctx context.Context, userID string, msg *discordgo.MessageSend) error {
	ch, err := ss.s.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("opening DM channel: %w", err)
	}
	_, err = ss.s.ChannelMessageSendComplex(ch.ID, msg, discordgo.WithContext(ctx))
	return err
}

// ResolveChannel prefers the state cache and falls back to the REST API.
func (ss *sessionSender) ResolveChannel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	if ss.s.State != nil {
		if ch, err := ss.s.State.Channel(channelID); err == nil {
			return ch, nil
		}
	}
	return ss.s.Channel(channelID, discordgo.WithContext(ctx))
}
