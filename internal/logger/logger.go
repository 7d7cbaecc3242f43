package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/voxtools/spriterig/internal/env"
)

// Options configures logger construction.
type Options struct {
	Level     slog.Level
	LogToFile bool
	LogFile   string
}

// Option mutates Options.
type Option func(*Options)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *Options) { o.Level = level }
}

// WithLogToFile enables mirroring log output to a rotating file.
func WithLogToFile(enabled bool) Option {
	return func(o *Options) { o.LogToFile = enabled }
}

// WithLogFile sets the log file path used when file logging is enabled.
func WithLogFile(path string) Option {
	return func(o *Options) { o.LogFile = path }
}

// New builds a slog.Logger appropriate for the environment: a tinted,
// human-readable handler in development, JSON in production. When file
// logging is enabled, output is duplicated to a size-rotated log file.
func New(environment env.Environment, opts ...Option) *slog.Logger {
	options := Options{
		Level:   slog.LevelInfo,
		LogFile: "logs/spriterig.log",
	}
	for _, opt := range opts {
		opt(&options)
	}

	var w io.Writer = os.Stderr
	if options.LogToFile {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   options.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		})
	}

	if environment.IsDevelopment() {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      options.Level,
			TimeFormat: time.Kitchen,
		}))
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: options.Level,
	}))
}
