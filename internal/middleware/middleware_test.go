package middleware

import (
	"context"
	"errors"
	"strings"
	"testing"

	"clima-bot/internal/command"
	"clima-bot/internal/logger"
	"clima-bot/pkg/cmd"

	"github.com/sirupsen/logrus/hooks/test"
)

type funcCommand struct {
	name string
	run  cmd.RunFunc
}

func (f *funcCommand) Name() string        { return f.name }
func (f *funcCommand) Description() string { return f.name }
func (f *funcCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	return f.run(ctx, inv)
}

func TestWithRecover(t *testing.T) {
	c := cmd.Apply(&funcCommand{name: "hello", run: func(context.Context, *cmd.Invocation) error {
		panic("asset missing")
	}}, WithRecover())

	err := c.Run(context.Background(), &cmd.Invocation{})
	if err == nil || !strings.Contains(err.Error(), "asset missing") {
		t.Fatalf("err = %v, want recovered panic", err)
	}
}

func TestWithCommandLogger(t *testing.T) {
	hook := test.NewLocal(logger.Log)
	t.Cleanup(hook.Reset)

	var seen string
	c := cmd.Apply(&funcCommand{name: "ping", run: func(_ context.Context, inv *cmd.Invocation) error {
		mc := inv.Data.(*command.MessageContext)
		seen, _ = mc.Log.Data["request_id"].(string)
		return nil
	}}, Default()...)

	mc := &command.MessageContext{Log: logger.Log.WithField("user", "ferris")}
	if err := c.Run(context.Background(), &cmd.Invocation{Name: "ping", Data: mc}); err != nil {
		t.Fatal(err)
	}

	if seen == "" {
		t.Fatal("command did not see a request id")
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Message != "Command executed" {
		t.Fatalf("last entry = %+v", entry)
	}
	if entry.Data["request_id"] != seen || entry.Data["user"] != "ferris" {
		t.Errorf("entry fields = %v", entry.Data)
	}
}

func TestWithCommandLoggerPassesErrorsThrough(t *testing.T) {
	hook := test.NewLocal(logger.Log)
	t.Cleanup(hook.Reset)

	boom := errors.New("boom")
	c := cmd.Apply(&funcCommand{name: "help", run: func(context.Context, *cmd.Invocation) error {
		return boom
	}}, WithCommandLogger())

	if err := c.Run(context.Background(), &cmd.Invocation{}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Message != "Command finished with error" {
		t.Errorf("last entry = %+v", entry)
	}
}
