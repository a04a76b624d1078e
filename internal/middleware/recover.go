package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"clima-bot/internal/logger"
	"clima-bot/pkg/cmd"
)

// WithRecover turns a panic inside a command into an error so one bad
// message cannot take the bot down.
func WithRecover() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Log.WithField("command", c.Name()).Debugf("panic stack:\n%s", debug.Stack())
					err = fmt.Errorf("panic in command %s: %v", c.Name(), r)
				}
			}()
			return c.Run(ctx, inv)
		})
	}
}

// Default is the chain every command is registered with.
func Default() []cmd.Middleware {
	return []cmd.Middleware{WithCommandLogger(), WithRecover()}
}
