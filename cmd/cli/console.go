package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// consoleSender prints outbound messages instead of sending them.
type consoleSender struct {
	mu  sync.Mutex
	out io.Writer
}

func (cs *consoleSender) SendMessage(_ context.Context, channelID string, msg *discordgo.MessageSend) error {
	cs.print("#"+channelID, msg)
	return nil
}

func (cs *consoleSender) SendDirect(_ context.Context, userID string, msg *discordgo.MessageSend) error {
	cs.print("DM @"+userID, msg)
	return nil
}

func (cs *consoleSender) ResolveChannel(_ context.Context, channelID string) (*discordgo.Channel, error) {
	return &discordgo.Channel{ID: channelID, Name: channelID, Type: discordgo.ChannelTypeGuildText}, nil
}

func (cs *consoleSender) print(target string, msg *discordgo.MessageSend) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if msg.Content != "" {
		fmt.Fprintf(cs.out, "[%s] %s\n", target, msg.Content)
	}
	for _, e := range msg.Embeds {
		fmt.Fprintf(cs.out, "[%s] embed: %s\n", target, e.Title)
		if e.Description != "" {
			fmt.Fprintf(cs.out, "    %s\n", e.Description)
		}
		for _, f := range e.Fields {
			fmt.Fprintf(cs.out, "    %s: %s\n", f.Name, f.Value)
		}
		if e.Image != nil {
			fmt.Fprintf(cs.out, "    image: %s\n", e.Image.URL)
		}
		if e.Footer != nil {
			fmt.Fprintf(cs.out, "    -- %s\n", e.Footer.Text)
		}
	}
	for _, f := range msg.Files {
		fmt.Fprintf(cs.out, "[%s] file: %s (%s)\n", target, f.Name, f.ContentType)
	}
}
