package command

import (
	"context"
	"fmt"

	"clima-bot/pkg/cmd"
)

// MessageCommand is what individual text commands implement.
type MessageCommand interface {
	Name() string
	Description() string
	Run(ctx context.Context, mc *MessageContext) error
}

// ArgsAcceptor is implemented by commands that take text after their name,
// like "!clima Paris". Other commands only match the bare name.
type ArgsAcceptor interface {
	AcceptsArgs() bool
}

// MessageAdapter adapts a MessageCommand to cmd.Command so it can live in
// the universal registry.
type MessageAdapter struct {
	Cmd MessageCommand
}

func (a *MessageAdapter) Name() string        { return a.Cmd.Name() }
func (a *MessageAdapter) Description() string { return a.Cmd.Description() }

func (a *MessageAdapter) AcceptsArgs() bool {
	if aa, ok := a.Cmd.(ArgsAcceptor); ok {
		return aa.AcceptsArgs()
	}
	return false
}

func (a *MessageAdapter) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, ok := inv.Data.(*MessageContext)
	if !ok {
		return fmt.Errorf("%s: wrong context type %T", a.Name(), inv.Data)
	}
	mc.Args = inv.Args
	return a.Cmd.Run(ctx, mc)
}

// Register adds c to reg behind mws.
func Register(reg *cmd.Registry, c MessageCommand, mws ...cmd.Middleware) error {
	return reg.Register(cmd.Apply(&MessageAdapter{Cmd: c}, mws...))
}

// RegisterCommand adds c to cmd.DefaultRegistry and panics on a name clash.
// It is meant for init() and main.
func RegisterCommand(c MessageCommand, mws ...cmd.Middleware) {
	if err := Register(cmd.DefaultRegistry, c, mws...); err != nil {
		panic(err)
	}
}
