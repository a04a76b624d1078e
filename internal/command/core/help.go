package core

import (
	"context"
	"fmt"

	"clima-bot/internal/command"
)

const HelpText = "HELP"

// HelpCommand answers in a direct message, not in the channel.
type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Send help by direct message" }

func (c *HelpCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	if err := mc.DirectMessage(ctx, HelpText); err != nil {
		return fmt.Errorf("direct message to %s: %w", mc.Message.AuthorID, err)
	}
	return nil
}
