package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appengine-ltd/misplaced/internal/dialogue"
	"github.com/appengine-ltd/misplaced/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateDialogueDoc(dialogue.BuiltinLibrary()),
		generateLevelDoc(game.DefaultLevel()),
		generateConfigDoc(game.DefaultConfig()),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateDialogueDoc(lib *dialogue.Library) docFile {
	ids := lib.IDs()

	var b strings.Builder
	b.WriteString("# Dialogue\n\n")
	b.WriteString("Source: `internal/dialogue/builtin.go` (`BuiltinNodes`).\n\n")
	b.WriteString(fmt.Sprintf("Total nodes: **%d**.\n\n", len(ids)))
	b.WriteString("| ID | Speaker | Rate (chars/s) | Characters | Reveal | Audio | Advance | Final |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, id := range ids {
		n, err := lib.Resolve(id)
		if err != nil {
			fatal(err)
		}
		w := dialogue.NewTypewriter(n.Rate)
		text := n.Body
		w.Tick(0, &text)

		b.WriteString("| ")
		b.WriteString(escape(string(n.ID)))
		b.WriteString(" | ")
		b.WriteString(escape(n.Speaker))
		b.WriteString(" | ")
		b.WriteString(formatRate(n.Rate))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(w.Total()))
		b.WriteString(" | ")
		b.WriteString(revealTime(w.Total(), n.Rate))
		b.WriteString(" | ")
		b.WriteString(escape(formatAudio(n.Audio)))
		b.WriteString(" | ")
		b.WriteString(escape(n.Advance.String()))
		b.WriteString(" | ")
		b.WriteString(yesNo(n.Final))
		b.WriteString(" |\n")
	}

	b.WriteString("\n## Chains\n\n")
	for _, id := range ids {
		chain, err := lib.Chain(id)
		if err != nil || len(chain) < 2 {
			continue
		}
		steps := make([]string, 0, len(chain))
		for _, n := range chain {
			steps = append(steps, "`"+string(n.ID)+"`")
		}
		b.WriteString(fmt.Sprintf("- %s\n", strings.Join(steps, " → ")))
	}
	return docFile{Name: "dialogue.md", Title: "Dialogue", Content: b.String()}
}

func generateLevelDoc(level game.Level) docFile {
	var b strings.Builder
	b.WriteString("# Default level\n\n")
	b.WriteString("Source: `internal/game/level.go` (`DefaultLevel`).\n\n")
	b.WriteString(fmt.Sprintf("Name: **%s**. Spawn: %s. Floor: %s m square.\n\n", level.Name, formatVec(level.Spawn), formatFloat(float64(level.FloorHalfExtent*2))))
	b.WriteString("| ID | Name | Position | Dialogue | Audio | Payload |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, c := range level.Collectibles {
		b.WriteString("| ")
		b.WriteString(escape(string(c.ID)))
		b.WriteString(" | ")
		b.WriteString(escape(c.Name))
		b.WriteString(" | ")
		b.WriteString(formatVec(c.Position))
		b.WriteString(" | ")
		b.WriteString(escape(string(c.Dialogue)))
		b.WriteString(" | ")
		b.WriteString(escape(c.Audio))
		b.WriteString(" | ")
		b.WriteString(escape(c.Payload))
		b.WriteString(" |\n")
	}
	return docFile{Name: "level.md", Title: "Default level", Content: b.String()}
}

func generateConfigDoc(cfg game.Config) docFile {
	var b strings.Builder
	b.WriteString("# Configuration\n\n")
	b.WriteString("Source: `internal/game/config.go` (`Config`). Every value can be set from the environment.\n\n")
	b.WriteString("| Variable | Default |\n")
	b.WriteString("| --- | --- |\n")
	rows := [][2]string{
		{"MISPLACED_DEADLINE", cfg.Deadline.String()},
		{"MISPLACED_REQUIRED", "0 (every file in the level)"},
		{"MISPLACED_HISTORY_CAPACITY", strconv.Itoa(cfg.HistoryCapacity)},
		{"MISPLACED_FALL_THRESHOLD", cfg.FallThreshold.String()},
		{"MISPLACED_SPEED_TOLERANCE", formatFloat(cfg.SpeedFractionTolerance)},
		{"MISPLACED_GROUND_EPSILON", strconv.FormatFloat(cfg.GroundNormalEpsilon, 'g', -1, 64)},
		{"MISPLACED_SAMPLE_INTERVAL", cfg.SampleInterval.String()},
		{"MISPLACED_RESET_FALL_TIMER", yesNo(cfg.ResetFallTimerOnRecovery)},
		{"MISPLACED_REVEAL_RATE", formatFloat(cfg.DefaultRevealRate)},
		{"MISPLACED_ASSETS_DIR", cfg.AssetsDir},
		{"MISPLACED_LEVEL_FILE", "(built-in level)"},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("| `%s` | %s |\n", r[0], escape(r[1])))
	}
	return docFile{Name: "config.md", Title: "Configuration", Content: b.String()}
}

func formatAudio(a *dialogue.Audio) string {
	if a == nil || a.Ref == "" {
		return ""
	}
	if a.Looping {
		return a.Ref + " (loop)"
	}
	return a.Ref
}

func formatRate(rate float64) string {
	if rate <= 0 {
		return "default"
	}
	return formatFloat(rate)
}

func revealTime(chars int, rate float64) string {
	if rate <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", float64(chars)/rate)
}

func formatVec(v game.Vec3) string {
	return fmt.Sprintf("(%s, %s, %s)", formatFloat(float64(v.X)), formatFloat(float64(v.Y)), formatFloat(float64(v.Z)))
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 32)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
