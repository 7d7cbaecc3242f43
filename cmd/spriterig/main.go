package main

import (
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/voxtools/spriterig/internal/config"
	"github.com/voxtools/spriterig/internal/env"
	"github.com/voxtools/spriterig/internal/logger"
)

// Global carries state shared by all subcommands.
type Global struct {
	Config     *config.Config
	ConfigPath string
}

var cli struct {
	Config  string `short:"c" help:"Configuration file path (defaults to the per-OS config directory)"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Render RenderCmd `cmd:"" help:"Render the sprite once and exit"`
	Watch  WatchCmd  `cmd:"" help:"Render, open the viewer, and rebuild whenever the model changes"`
	View   ViewCmd   `cmd:"" help:"Open the image viewer on the output file"`
	Init   InitCmd   `cmd:"" help:"Write a default configuration file"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("spriterig"),
		kong.Description("Renders voxel sprites and re-renders them on model changes."),
		kong.UsageOnError(),
	)

	global := &Global{ConfigPath: cli.Config}

	// init writes the config file, so it must not require one.
	if !strings.HasPrefix(ctx.Command(), "init") {
		cfg, err := config.Resolve(cli.Config)
		ctx.FatalIfErrorf(err)
		global.Config = cfg
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logOpts := []logger.Option{logger.WithLevel(level)}
	if global.Config != nil && global.Config.Log.ToFile {
		logOpts = append(logOpts,
			logger.WithLogToFile(true),
			logger.WithLogFile(global.Config.Log.File),
		)
	}
	slog.SetDefault(logger.New(env.FromEnv(), logOpts...))

	ctx.FatalIfErrorf(ctx.Run(global))
}
