package command

import (
	"context"
	"strings"

	"clima-bot/internal/config"
	"clima-bot/internal/logger"
	"clima-bot/pkg/cmd"

	"github.com/sirupsen/logrus"
)

// Dispatcher routes message content to at most one registered command.
// It holds no mutable state and may be called from many goroutines.
type Dispatcher struct {
	registry *cmd.Registry
	cfg      *config.Config
}

func NewDispatcher(reg *cmd.Registry, cfg *config.Config) *Dispatcher {
	return &Dispatcher{registry: reg, cfg: cfg}
}

// Match resolves content to a command. "<prefix><name>" matches any
// registered, enabled command; "<prefix><name> <args>" matches only commands
// that accept arguments. Matching is case-sensitive.
func (d *Dispatcher) Match(content string) (cmd.Command, []string, bool) {
	rest, ok := strings.CutPrefix(content, d.cfg.Commands.Prefix)
	if !ok {
		return nil, nil, false
	}
	name, tail, hasTail := strings.Cut(rest, " ")
	if name == "" || !d.cfg.Enabled(name) {
		return nil, nil, false
	}
	c := d.registry.Get(name)
	if c == nil {
		return nil, nil, false
	}
	if !hasTail {
		return c, nil, true
	}
	if aa, ok := cmd.As[ArgsAcceptor](c); !ok || !aa.AcceptsArgs() {
		return nil, nil, false
	}
	return c, strings.Fields(tail), true
}

// Dispatch runs the command matching msg, if any, and reports whether one
// ran. Command errors are logged here and go no further.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message, sender Sender) bool {
	if msg.FromSelf {
		return false
	}
	c, args, ok := d.Match(msg.Content)
	if !ok {
		return false
	}

	mc := &MessageContext{
		Message: msg,
		Sender:  sender,
		Config:  d.cfg,
		Log: logger.Log.WithFields(logrus.Fields{
			"command": c.Name(),
			"user":    msg.AuthorName,
			"channel": msg.ChannelID,
		}),
	}
	inv := &cmd.Invocation{Name: c.Name(), Args: args, Data: mc}
	if err := c.Run(ctx, inv); err != nil {
		mc.Log.WithError(err).Error("Command failed")
	}
	return true
}

// Commands lists the enabled commands, sorted by name.
func (d *Dispatcher) Commands() []cmd.Command {
	var list []cmd.Command
	for _, c := range d.registry.All() {
		if d.cfg.Enabled(c.Name()) {
			list = append(list, c)
		}
	}
	return list
}
