package middleware

import (
	"context"
	"time"

	"clima-bot/internal/command"
	"clima-bot/internal/logger"
	"clima-bot/pkg/cmd"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// WithCommandLogger tags the invocation's logger with a request id and logs
// one line per executed command with its duration and outcome.
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			entry := logger.Log.WithField("command", c.Name())
			if mc, ok := inv.Data.(*command.MessageContext); ok {
				if mc.Log != nil {
					entry = mc.Log
				}
				entry = entry.WithField("request_id", uuid.NewString())
				mc.Log = entry
			}

			start := time.Now()
			err := c.Run(ctx, inv)

			entry = entry.WithFields(logrus.Fields{
				"args":     len(inv.Args),
				"duration": time.Since(start).Round(time.Millisecond).String(),
			})
			if err != nil {
				entry.WithError(err).Warn("Command finished with error")
			} else {
				entry.Info("Command executed")
			}
			return err
		})
	}
}
