package main

import (
	"log/slog"
	"path/filepath"

	"github.com/voxtools/spriterig/internal/config"
)

// InitCmd writes a commented default configuration file.
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file."`
}

func (i *InitCmd) Run(g *Global) error {
	path := g.ConfigPath
	if path == "" {
		path = filepath.Join(config.DefaultConfigPath(), "config.yaml")
	}

	if err := config.Init(path, i.Force); err != nil {
		return err
	}

	slog.Info("Configuration written", "path", path)
	return nil
}
