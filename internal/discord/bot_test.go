package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestToMessage(t *testing.T) {
	m := &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "m1",
		Content:   "!clima Paris",
		ChannelID: "c1",
		GuildID:   "g1",
		Author:    &discordgo.User{ID: "u1", Username: "ferris"},
	}}

	got := toMessage("bot", m)
	if got.ID != "m1" || got.Content != "!clima Paris" || got.ChannelID != "c1" || got.GuildID != "g1" {
		t.Errorf("message = %+v", got)
	}
	if got.AuthorID != "u1" || got.AuthorName != "ferris" {
		t.Errorf("author = %s/%s", got.AuthorID, got.AuthorName)
	}
	if got.FromSelf {
		t.Error("message from another user flagged as self")
	}
}

func TestToMessageFlagsOwnMessages(t *testing.T) {
	m := &discordgo.MessageCreate{Message: &discordgo.Message{
		Content: "Pong!",
		Author:  &discordgo.User{ID: "bot", Username: "clima-bot"},
	}}
	if !toMessage("bot", m).FromSelf {
		t.Error("own message not flagged")
	}
	// Before READY the session does not know its own id.
	if toMessage("", m).FromSelf {
		t.Error("empty self id flagged a message as own")
	}
}

func TestSelfID(t *testing.T) {
	s := &discordgo.Session{State: discordgo.NewState()}
	if id := selfID(s); id != "" {
		t.Errorf("selfID before ready = %q", id)
	}
	s.State.User = &discordgo.User{ID: "bot"}
	if id := selfID(s); id != "bot" {
		t.Errorf("selfID = %q, want bot", id)
	}
}

func TestResolveChannelUsesState(t *testing.T) {
	s := &discordgo.Session{State: discordgo.NewState()}
	ch := &discordgo.Channel{ID: "c1", GuildID: "g1", Name: "general", Type: discordgo.ChannelTypeGuildText}
	if err := s.State.GuildAdd(&discordgo.Guild{ID: "g1", Channels: []*discordgo.Channel{ch}}); err != nil {
		t.Fatal(err)
	}

	got, err := (&sessionSender{s: s}).ResolveChannel(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ResolveChannel: %v", err)
	}
	if got.Mention() != "<#c1>" {
		t.Errorf("mention = %q", got.Mention())
	}
}
