//go:build cgo

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/appengine-ltd/misplaced/internal/gui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	opts := parseFlags()
	if opts.showVersion {
		fmt.Printf("Misplaced %s (%s) %s\n", version, commit, date)
		return
	}

	logger := log.New(os.Stderr, "misplaced: ", log.LstdFlags)
	cfg, level, err := loadSetup(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Config:    cfg,
		Level:     level,
		Logger:    logger,
		Debug:     opts.debug,
	})
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
