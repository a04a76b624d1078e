// Package commandtest provides a recording command.Sender for handler tests.
package commandtest

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Sent is one outbound message. Direct is true for private messages, in
// which case Target is the user id instead of the channel id.
type Sent struct {
	Target string
	Direct bool
	Msg    *discordgo.MessageSend
}

// Recorder records outbound messages and can be told to fail.
type Recorder struct {
	SendErr    error
	DirectErr  error
	ResolveErr error
	// Channels answers ResolveChannel; unknown ids resolve to a text channel
	// with that id.
	Channels map[string]*discordgo.Channel

	mu   sync.Mutex
	sent []Sent
}

func (r *Recorder) SendMessage(_ context.Context, channelID string, msg *discordgo.MessageSend) error {
	if r.SendErr != nil {
		return r.SendErr
	}
	r.record(Sent{Target: channelID, Msg: msg})
	return nil
}

func (r *Recorder) SendDirect(_ context.Context, userID string, msg *discordgo.MessageSend) error {
	if r.DirectErr != nil {
		return r.DirectErr
	}
	r.record(Sent{Target: userID, Direct: true, Msg: msg})
	return nil
}

func (r *Recorder) ResolveChannel(_ context.Context, channelID string) (*discordgo.Channel, error) {
	if r.ResolveErr != nil {
		return nil, r.ResolveErr
	}
	if ch, ok := r.Channels[channelID]; ok {
		return ch, nil
	}
	return &discordgo.Channel{ID: channelID, Name: "general", Type: discordgo.ChannelTypeGuildText}, nil
}

func (r *Recorder) record(s Sent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, s)
}

// Sent returns a copy of everything recorded so far.
func (r *Recorder) Sent() []Sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sent(nil), r.sent...)
}

// Last returns the most recent message, or nil.
func (r *Recorder) Last() *Sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return nil
	}
	s := r.sent[len(r.sent)-1]
	return &s
}
