// Package core holds the commands that need nothing beyond the startup
// config: ping, prueba, hello and help.
package core

import (
	"clima-bot/internal/command"
	"clima-bot/internal/middleware"
)

func init() {
	command.RegisterCommand(&PingCommand{}, middleware.Default()...)
	command.RegisterCommand(&PruebaCommand{}, middleware.Default()...)
	command.RegisterCommand(&HelloCommand{}, middleware.Default()...)
	command.RegisterCommand(&HelpCommand{}, middleware.Default()...)
}
