//go:build !cgo

package main

import (
	"fmt"
	"os"
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

	cfg, level, err := loadSetup(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "level %q: %d files, %s on the clock\n", level.Name, len(level.Collectibles), cfg.Deadline)
	fmt.Fprintln(os.Stderr, "Misplaced requires the 3D client build (cgo/raylib enabled).")
	os.Exit(1)
}
