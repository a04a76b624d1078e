package main

import (
	"context"
	"fmt"
	"strings"

	"clima-bot/internal/bootstrap"
	"clima-bot/internal/command"
	"clima-bot/internal/config"
	"clima-bot/internal/logger"
	"clima-bot/internal/version"
	"clima-bot/pkg/cmd"

	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	author     string
	channel    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "clima-cli",
		Short:         "Run " + version.AppName + " commands locally",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.Path(), "path to config.toml")

	say := &cobra.Command{
		Use:     "say <message>",
		Short:   "Dispatch a chat message and print the bot's replies",
		Example: `  clima-cli say '!clima Buenos Aires'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runSay(c, opts, strings.Join(args, " "))
		},
	}
	say.Flags().StringVar(&opts.author, "author", "cli-user", "author name of the simulated message")
	say.Flags().StringVar(&opts.channel, "channel", "local", "channel id of the simulated message")

	check := &cobra.Command{
		Use:   "check-config",
		Short: "Load and validate the configuration",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runCheck(c, opts)
		},
	}

	ver := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintln(c.OutOrStdout(), version.String())
		},
	}

	root.AddCommand(say, check, ver)
	return root
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File}); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSay(c *cobra.Command, opts *options, content string) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	logger.Log.SetOutput(c.ErrOrStderr())

	d, err := bootstrap.Setup(cmd.DefaultRegistry, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context(), cfg.Weather.Timeout*2)
	defer cancel()

	msg := command.Message{
		ID:         "local",
		Content:    content,
		ChannelID:  opts.channel,
		AuthorID:   opts.author,
		AuthorName: opts.author,
	}
	if !d.Dispatch(ctx, msg, &consoleSender{out: c.OutOrStdout()}) {
		fmt.Fprintf(c.OutOrStdout(), "(no command matched %q)\n", content)
	}
	return nil
}

func runCheck(c *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	fmt.Fprintf(out, "config:        %s\n", opts.configPath)
	fmt.Fprintf(out, "discord token: %s\n", config.Mask(cfg.API.Token))
	fmt.Fprintf(out, "weather key:   %s\n", config.Mask(cfg.API.WeatherKey))
	fmt.Fprintf(out, "prefix:        %s\n", cfg.Commands.Prefix)
	fmt.Fprintf(out, "weather:       %s (lang=%s, timeout=%s, %d req/min)\n",
		cfg.Weather.BaseURL, cfg.Weather.Lang, cfg.Weather.Timeout, cfg.Weather.RequestsPerMinute)
	fmt.Fprintf(out, "hello image:   %s\n", cfg.Assets.HelloImage)
	if len(cfg.Commands.Disabled) > 0 {
		fmt.Fprintf(out, "disabled:      %s\n", strings.Join(cfg.Commands.Disabled, ", "))
	}
	fmt.Fprintln(out, "OK")
	return nil
}
