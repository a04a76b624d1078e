// Package cmd is the transport-agnostic command core. A command has a name,
// a description and a Run(ctx, invocation). The Discord gateway adapter and
// the local CLI both dispatch into the same registry; each puts its own
// context into Invocation.Data.
package cmd

import "context"

// Invocation is what a dispatcher hands to a command: the matched name, the
// whitespace-split arguments and an adapter-specific payload.
type Invocation struct {
	Name string
	Args []string
	Data any
}

// Command is the universal contract: identity plus execution.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}

// RunFunc is the signature of Command.Run, used by middleware.
type RunFunc func(ctx context.Context, inv *Invocation) error
