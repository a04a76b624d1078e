// Package logger owns the process-wide logrus instance.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger. It is usable before Init with info level text output.
var Log = logrus.New()

// Config selects level, format ("text" or "json") and an optional log file
// that is rotated by size.
type Config struct {
	Level  string
	Format string
	File   string
}

func init() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(textFormatter())
}

func textFormatter() logrus.Formatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}
}

// Init reconfigures Log. An empty level means info.
func Init(cfg Config) error {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		lvl, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		level = lvl
	}
	Log.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		Log.SetFormatter(textFormatter())
	case "json":
		Log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("log format %q: must be text or json", cfg.Format)
	}

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}
	Log.SetOutput(out)
	return nil
}
