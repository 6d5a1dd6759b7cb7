// Command dialogue-preview plays the built-in dialogue script in a terminal
// with the same typewriter reveal and branching the game uses.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/appengine-ltd/misplaced/internal/assets"
	"github.com/appengine-ltd/misplaced/internal/audio"
	"github.com/appengine-ltd/misplaced/internal/dialogue"
	"github.com/appengine-ltd/misplaced/internal/game"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

const frame = 16 * time.Millisecond

type preview struct {
	screen  tcell.Screen
	seq     *dialogue.Sequencer
	control *game.ControlGate
	queue   []dialogue.ID
	pressed bool
	status  string
}

type options struct {
	id        string
	all       bool
	withAudio bool
	assetsDir string
}

func main() {
	var (
		opts options
		list bool
	)
	flag.StringVar(&opts.id, "id", string(dialogue.IDIntro), "dialogue id to preview")
	flag.BoolVar(&opts.all, "all", false, "play every entry point in order")
	flag.BoolVar(&opts.withAudio, "audio", false, "play dialogue audio")
	flag.StringVar(&opts.assetsDir, "assets", "assets", "asset directory")
	flag.BoolVar(&list, "list", false, "list dialogue ids and exit")
	flag.Parse()

	lib := dialogue.BuiltinLibrary()
	if list {
		for _, known := range lib.IDs() {
			fmt.Println(known)
		}
		return
	}
	if err := play(lib, opts, tcell.NewScreen); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
}

// play runs the preview until the queue is exhausted or the user quits.
// Resources are released by its defers before main decides the exit code.
func play(lib *dialogue.Library, opts options, newScreen func() (tcell.Screen, error)) error {
	// Warnings go to a file; the terminal belongs to tcell.
	logger := log.New(io.Discard, "", 0)
	if f, err := os.CreateTemp("", "dialogue-preview-*.log"); err == nil {
		defer f.Close()
		logger = log.New(f, "preview: ", log.LstdFlags)
	}

	catalog := assets.New(opts.assetsDir)
	var player dialogue.AudioPlayer
	if opts.withAudio {
		engine := audio.NewEngine(catalog, logger)
		if err := engine.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "audio: %v\n", err)
		} else {
			defer engine.Close()
			player = engine
		}
	}

	queue := []dialogue.ID{dialogue.ID(opts.id)}
	if opts.all {
		queue = entryPoints(lib)
	}

	screen, err := newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	control := game.NewControlGate()
	p := &preview{
		screen:  screen,
		control: control,
		queue:   queue,
		seq: dialogue.NewSequencer(dialogue.Options{
			Library: lib,
			Assets:  catalog,
			Audio:   player,
			Control: control,
			Logger:  logger,
		}),
	}
	p.openNext()
	p.run()
	return nil
}

// entryPoints lists ids that are not only reachable as a branch target.
func entryPoints(lib *dialogue.Library) []dialogue.ID {
	targets := map[dialogue.ID]bool{}
	for _, known := range lib.IDs() {
		n, _ := lib.Resolve(known)
		if n.Advance.Kind == dialogue.AdvanceBranch {
			targets[n.Advance.Next] = true
		}
	}
	var out []dialogue.ID
	for _, known := range lib.IDs() {
		if !targets[known] {
			out = append(out, known)
		}
	}
	return out
}

func (p *preview) openNext() bool {
	if len(p.queue) == 0 {
		return false
	}
	next := p.queue[0]
	p.queue = p.queue[1:]
	p.seq.Open(next)
	return true
}

func (p *preview) run() {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !p.handle(ev) {
				return
			}
		case now := <-ticker.C:
			p.seq.Tick(now.Sub(last))
			last = now
			p.draw()
		}
	}
}

func (p *preview) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' '):
			return p.dismiss()
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		clicked := down && !p.pressed
		p.pressed = down
		if clicked {
			return p.dismiss()
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

// dismiss acts on the top display. Returns false once there is nothing
// left to show.
func (p *preview) dismiss() bool {
	top, ok := p.seq.Top()
	if !ok {
		return p.openNext()
	}
	res, ok := p.seq.Dismiss(top.Handle())
	switch {
	case !ok:
		p.status = "final node, press q to quit"
	case res.Closed:
		p.status = fmt.Sprintf("closed %s", res.From)
		if !p.seq.Active() {
			return p.openNext()
		}
	default:
		p.status = fmt.Sprintf("%s → %s", res.From, res.To)
	}
	return true
}

func (p *preview) draw() {
	p.screen.Clear()
	w, h := p.screen.Size()
	base := tcell.StyleDefault
	dim := base.Foreground(tcell.ColorGray)

	top, ok := p.seq.Top()
	if !ok {
		drawString(p.screen, 2, 1, "nothing to show", dim)
		p.screen.Show()
		return
	}
	node := top.Node()
	content := top.Content()
	writer := top.Typewriter()

	boxW := min(w-4, 80)
	drawBox(p.screen, 1, 1, boxW+2, h-3, dim)

	speaker := content.Speaker
	if speaker == "" {
		speaker = "(narration)"
	}
	drawString(p.screen, 3, 2, speaker, base.Bold(true).Foreground(tcell.ColorYellow))
	drawString(p.screen, 3+uniseg.StringWidth(speaker)+2, 2, "["+string(node.ID)+"]", dim)

	y := 4
	for _, line := range wrap(content.Body, boxW-2) {
		if y >= h-5 {
			break
		}
		drawString(p.screen, 3, y, line, base)
		y++
	}

	footer := fmt.Sprintf("%d/%d chars  %.0f/s  %s", writer.VisibleCount(), writer.Total(), writer.Rate(), node.Advance)
	if content.Portrait == "" && node.Portrait != "" {
		footer += "  portrait missing"
	}
	if !p.control.Enabled() {
		footer += "  control held by " + strings.Join(p.control.Holders(), ",")
	}
	drawString(p.screen, 3, h-3, footer, dim)
	drawString(p.screen, 1, h-1, "enter/click: continue  q: quit  "+p.status, dim)
	p.screen.Show()
}

// drawString writes s one grapheme cluster per cell group so combining
// marks stay attached to their base.
func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += max(g.Width(), 1)
	}
}

func drawBox(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for i := x; i < x+w; i++ {
		s.SetContent(i, y, '─', nil, style)
		s.SetContent(i, y+h-1, '─', nil, style)
	}
	for j := y; j < y+h; j++ {
		s.SetContent(x, j, '│', nil, style)
		s.SetContent(x+w-1, j, '│', nil, style)
	}
	s.SetContent(x, y, '┌', nil, style)
	s.SetContent(x+w-1, y, '┐', nil, style)
	s.SetContent(x, y+h-1, '└', nil, style)
	s.SetContent(x+w-1, y+h-1, '┘', nil, style)
}

// wrap breaks text into lines of at most width terminal cells.
func wrap(text string, width int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if uniseg.StringWidth(current)+1+uniseg.StringWidth(word) <= width {
				current += " " + word
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}
