package core

import (
	"context"
	"fmt"

	"clima-bot/internal/command"
)

const PongText = "Pong!"

type PingCommand struct{}

func (c *PingCommand) Name() string        { return "ping" }
func (c *PingCommand) Description() string { return "Reply with Pong!" }

func (c *PingCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	if err := mc.Reply(ctx, PongText); err != nil {
		return fmt.Errorf("sending pong: %w", err)
	}
	return nil
}
