package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"clima-bot/internal/command"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

const (
	HelloText       = "Hello, World!"
	ImageFailedText = "⚠️ No se pudo cargar la imagen."
)

type HelloCommand struct {
	// Now is used for the embed timestamp; nil means time.Now.
	Now func() time.Time
}

func (c *HelloCommand) Name() string        { return "hello" }
func (c *HelloCommand) Description() string { return "Show an example embed with an image" }

func (c *HelloCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	path := mc.Config.Assets.HelloImage
	image, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("reading hello image: %w", err)
		if sendErr := mc.Reply(ctx, ImageFailedText); sendErr != nil {
			return errors.Join(err, fmt.Errorf("sending image apology: %w", sendErr))
		}
		return err
	}

	name := filepath.Base(path)
	msg := &discordgo.MessageSend{
		Content: HelloText,
		Embeds:  []*discordgo.MessageEmbed{HelloEmbed(name, c.now())},
		Files: []*discordgo.File{{
			Name:        name,
			ContentType: contentType(name),
			Reader:      bytes.NewReader(image),
		}},
	}
	if err := mc.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending hello embed: %w", err)
	}
	return nil
}

func (c *HelloCommand) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// HelloEmbed builds the demo embed; imageName must match the attached file.
func HelloEmbed(imageName string, now time.Time) *discordgo.MessageEmbed {
	e := embed.NewEmbed().
		SetTitle("This is a title").
		SetDescription("This is a description").
		AddField("This is the first field", "This is a field body").
		AddField("This is the second field", "Both fields are inline").
		AddField("This is the third field", "This is not an inline field").
		SetImage("attachment://" + imageName).
		SetFooter("This is a footer").
		SetColor(command.EmbedColor)

	e.Fields[0].Inline = true
	e.Fields[1].Inline = true
	e.Timestamp = now.Format(time.RFC3339)
	return e.MessageEmbed
}

func contentType(name string) string {
	switch filepath.Ext(name) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return "application/octet-stream"
}
