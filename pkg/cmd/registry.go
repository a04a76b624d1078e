package cmd

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicate is returned when a second command claims an existing name.
var ErrDuplicate = errors.New("command already registered")

// DefaultRegistry is the process-wide registry filled from init() and main.
var DefaultRegistry = NewRegistry()

// Registry maps command names to commands. It is filled before the gateway
// opens and only read afterwards, so it carries no lock.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds c under c.Name().
func (r *Registry) Register(c Command) error {
	name := c.Name()
	if name == "" {
		return fmt.Errorf("register %T: empty command name", Root(c))
	}
	if _, ok := r.commands[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrDuplicate)
	}
	r.commands[name] = c
	return nil
}

// Get returns the command registered under name, or nil.
func (r *Registry) Get(name string) Command {
	return r.commands[name]
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered commands sorted by name.
func (r *Registry) All() []Command {
	names := r.Names()
	list := make([]Command, 0, len(names))
	for _, name := range names {
		list = append(list, r.commands[name])
	}
	return list
}
