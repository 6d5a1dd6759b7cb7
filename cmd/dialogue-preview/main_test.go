package main

import (
	"errors"
	"testing"

	"github.com/appengine-ltd/misplaced/internal/dialogue"
	"github.com/gdamore/tcell/v2"
)

func TestWrapUsesCellWidth(t *testing.T) {
	lines := wrap("ab 漢字 cd", 7)
	if len(lines) != 2 || lines[0] != "ab 漢字" || lines[1] != "cd" {
		t.Fatalf("lines: got %q", lines)
	}
}

func TestEntryPointsSkipBranchTargets(t *testing.T) {
	ids := entryPoints(dialogue.BuiltinLibrary())
	for _, id := range ids {
		if id == dialogue.IDArchivistReply {
			t.Fatalf("branch target listed as an entry point")
		}
	}
	if len(ids) != len(dialogue.BuiltinLibrary().IDs())-1 {
		t.Fatalf("entry points: got %d", len(ids))
	}
}

func TestDrawStringKeepsCombiningMarks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(20, 2)

	drawString(screen, 0, 0, "ℸ \u0323⍑", tcell.StyleDefault)

	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != 'ℸ' {
		t.Fatalf("cell 0: got %q", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(2, 0); mainc != '⍑' {
		t.Fatalf("cell 2: got %q", mainc)
	}
}

func TestDismissWalksBranchThenQueue(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()

	p := &preview{
		screen: screen,
		queue:  []dialogue.ID{dialogue.IDArchivist, dialogue.IDMemo},
		seq:    dialogue.NewSequencer(dialogue.Options{Library: dialogue.BuiltinLibrary()}),
	}
	if !p.openNext() {
		t.Fatalf("expected first entry to open")
	}

	steps := []dialogue.ID{dialogue.IDArchivistReply, dialogue.IDMemo}
	for _, want := range steps {
		if !p.dismiss() {
			t.Fatalf("preview ended early")
		}
		top, ok := p.seq.Top()
		if !ok || top.Node().ID != want {
			t.Fatalf("top: got %v want %s", top, want)
		}
	}
	if p.dismiss() {
		t.Fatalf("expected preview to end after the queue")
	}
}

func TestPlayReturnsScreenErrors(t *testing.T) {
	noTTY := errors.New("no tty")
	opts := options{id: string(dialogue.IDIntro), assetsDir: t.TempDir()}

	err := play(dialogue.BuiltinLibrary(), opts, func() (tcell.Screen, error) { return nil, noTTY })
	if !errors.Is(err, noTTY) {
		t.Fatalf("play err=%v want=%v", err, noTTY)
	}
}
