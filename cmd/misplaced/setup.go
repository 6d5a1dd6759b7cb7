package main

import (
	"flag"
	"fmt"

	"github.com/appengine-ltd/misplaced/internal/game"
)

type options struct {
	showVersion bool
	debug       bool
	levelFile   string
	assetsDir   string
}

func parseFlags() options {
	var opts options
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.BoolVar(&opts.debug, "debug", false, "start with the debug overlay open")
	flag.StringVar(&opts.levelFile, "level", "", "level file (overrides MISPLACED_LEVEL_FILE)")
	flag.StringVar(&opts.assetsDir, "assets", "", "asset directory (overrides MISPLACED_ASSETS_DIR)")
	flag.Parse()
	return opts
}

// loadSetup reads MISPLACED_* variables, applies flag overrides and loads
// the level.
func loadSetup(opts options) (game.Config, game.Level, error) {
	cfg, err := game.LoadConfigFromEnv()
	if err != nil {
		return game.Config{}, game.Level{}, fmt.Errorf("config: %w", err)
	}
	if opts.levelFile != "" {
		cfg.LevelFile = opts.levelFile
	}
	if opts.assetsDir != "" {
		cfg.AssetsDir = opts.assetsDir
	}
	level, err := game.LoadLevel(cfg.LevelFile)
	if err != nil {
		return game.Config{}, game.Level{}, fmt.Errorf("level: %w", err)
	}
	return cfg, level, nil
}
