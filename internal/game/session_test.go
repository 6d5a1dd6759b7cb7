package game

import (
	"strings"
	"testing"
	"time"

	"github.com/appengine-ltd/misplaced/internal/dialogue"
)

type recordingAudio struct {
	played  []string
	stopped int
}

type recordingVoice struct {
	audio *recordingAudio
}

func (v recordingVoice) Stop() { v.audio.stopped++ }

func (a *recordingAudio) Play(ref string, loop bool) (dialogue.Voice, error) {
	a.played = append(a.played, ref)
	return recordingVoice{audio: a}, nil
}

func newTestSession(t *testing.T, cfg Config, level Level) (*Session, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	s, err := NewSession(SessionOptions{
		Config:  cfg,
		Level:   level,
		Library: dialogue.BuiltinLibrary(),
		Audio:   audio,
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, audio
}

func TestSessionStartOpensIntroAndHoldsControl(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig(), testLevel("a"))

	events := s.Start()
	if countEvents(events, EventDialogueOpened) != 1 {
		t.Fatalf("expected intro to open, got %v", events)
	}
	top, ok := s.Dialogue().Top()
	if !ok || top.Node().ID != dialogue.IDIntro {
		t.Fatalf("top dialogue: got %v", top)
	}
	if s.Control().Enabled() {
		t.Fatalf("control should be suspended while the intro is open")
	}

	events = s.Update(FrameInput{Delta: 16 * time.Millisecond, Dismiss: []dialogue.Handle{top.Handle()}})
	if countEvents(events, EventDialogueClosed) != 1 {
		t.Fatalf("expected intro to close, got %v", events)
	}
	if !s.Control().Enabled() {
		t.Fatalf("control still held by %v", s.Control().Holders())
	}
}

func TestSessionCollectionPlaysAudioAndOpensDialogue(t *testing.T) {
	level := testLevel("a", "b")
	level.Collectibles[0].Audio = "pickup.ogg"
	s, audio := newTestSession(t, DefaultConfig(), level)

	events := s.Update(FrameInput{Delta: 16 * time.Millisecond, Collect: []CollectibleID{"a"}})

	if countEvents(events, EventCollected) != 1 || countEvents(events, EventDialogueOpened) != 1 {
		t.Fatalf("unexpected events %v", events)
	}
	if len(audio.played) == 0 || audio.played[0] != "pickup.ogg" {
		t.Fatalf("pickup audio: got %v", audio.played)
	}
	top, ok := s.Dialogue().Top()
	if !ok || top.Node().ID != dialogue.IDMemo {
		t.Fatalf("expected memo dialogue, got %v", top)
	}
	if got := top.Typewriter().Total(); got == 0 {
		t.Fatalf("typewriter should capture the memo text on the opening frame")
	}
}

func TestSessionWinOpensEndingSameFrame(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig(), testLevel("a", "b"))
	s.Start()

	s.Update(FrameInput{Delta: time.Second, Collect: []CollectibleID{"a"}})
	events := s.Update(FrameInput{Delta: time.Second, Collect: []CollectibleID{"b"}})

	if countEvents(events, EventWin) != 1 {
		t.Fatalf("expected win, got %v", events)
	}
	ending, ok := s.Ending()
	if !ok || ending.Outcome != OutcomeWin {
		t.Fatalf("ending: got %#v,%t", ending, ok)
	}
	sessions := s.Dialogue().Sessions()
	if len(sessions) != 1 || sessions[0].Handle() != ending.Handle {
		t.Fatalf("expected only the ending open, got %d displays", len(sessions))
	}
	node := sessions[0].Node()
	if node.ID != dialogue.IDEndingWin || !node.Final {
		t.Fatalf("ending node: got %s final=%t", node.ID, node.Final)
	}
	if !strings.Contains(node.Body, "Files returned: 2/2") {
		t.Fatalf("ending body missing summary: %q", node.Body)
	}
	if s.Control().Enabled() {
		t.Fatalf("control should stay suspended after the ending")
	}
	if _, ok := s.Dialogue().Dismiss(ending.Handle); ok {
		t.Fatalf("ending should not be dismissable")
	}
}

func TestSessionWinBeatsDeadlineInSameFrame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Deadline = time.Second
	cfg.RequiredCollectibles = 1
	s, _ := newTestSession(t, cfg, testLevel("a", "b"))

	events := s.Update(FrameInput{Delta: 2 * time.Second, Collect: []CollectibleID{"a"}})

	if countEvents(events, EventWin) != 1 || countEvents(events, EventLose) != 0 {
		t.Fatalf("tie should resolve as a win, got %v", events)
	}
	if got := s.Progress().State().Elapsed; got != 0 {
		t.Fatalf("countdown should not tick after the win, elapsed %s", got)
	}
}

func TestSessionLoseOpensLoseEnding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Deadline = 3 * time.Second
	s, _ := newTestSession(t, cfg, testLevel("a", "b"))

	for range 4 {
		s.Update(FrameInput{Delta: time.Second})
	}

	ending, ok := s.Ending()
	if !ok || ending.Outcome != OutcomeLose {
		t.Fatalf("ending: got %#v,%t", ending, ok)
	}
	top, _ := s.Dialogue().Top()
	if top.Node().ID != dialogue.IDEndingLose {
		t.Fatalf("ending node: got %s", top.Node().ID)
	}
	if !strings.Contains(top.Node().Body, "Files returned: 0/2  Time: 00:03") {
		t.Fatalf("ending summary: %q", top.Node().Body)
	}

	events := s.Update(FrameInput{Delta: time.Second, Collect: []CollectibleID{"a"}})
	if countEvents(events, EventCollected) != 0 {
		t.Fatalf("collection after the ending: %v", events)
	}
}

func TestSessionBranchDismissKeepsHandle(t *testing.T) {
	level := testLevel("ledger", "other")
	level.Collectibles[0].Dialogue = dialogue.IDArchivist
	s, _ := newTestSession(t, DefaultConfig(), level)

	s.Update(FrameInput{Delta: time.Second, Collect: []CollectibleID{"ledger"}})
	top, _ := s.Dialogue().Top()
	h := top.Handle()

	events := s.Update(FrameInput{Delta: time.Second, Dismiss: []dialogue.Handle{h}})
	if countEvents(events, EventDialogueAdvanced) != 1 {
		t.Fatalf("expected an advance, got %v", events)
	}
	top, _ = s.Dialogue().Top()
	if top.Handle() != h || top.Node().ID != dialogue.IDArchivistReply {
		t.Fatalf("branch should replace in place, got %d %s", top.Handle(), top.Node().ID)
	}

	events = s.Update(FrameInput{Delta: time.Second, Dismiss: []dialogue.Handle{h}})
	if countEvents(events, EventDialogueClosed) != 1 || s.Dialogue().Active() {
		t.Fatalf("reply should close, got %v", events)
	}
}

func TestSessionRecoversFallingBody(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig(), testLevel("a"))
	b := s.NewBody("player", testMaxSpeed)
	b.Ground = &Contact{Normal: Up}
	s.Update(FrameInput{Delta: 16 * time.Millisecond})
	stable := b.Position

	b.Ground = nil
	b.Velocity.Y = -testMaxSpeed
	b.Position.Y = -200
	events := s.Update(FrameInput{Delta: 5100 * time.Millisecond})

	if countEvents(events, EventBodyRecovered) != 1 {
		t.Fatalf("expected recovery, got %v", events)
	}
	if b.Position != stable {
		t.Fatalf("position: got %v want %v", b.Position, stable)
	}

	events = s.Update(FrameInput{Delta: 16 * time.Millisecond})
	if countEvents(events, EventRecoverySkipped) != 1 {
		t.Fatalf("expected skipped recovery with empty history, got %v", events)
	}
}

func TestFormatClock(t *testing.T) {
	for _, tc := range []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{59*time.Second + 900*time.Millisecond, "00:59"},
		{5 * time.Minute, "05:00"},
		{-time.Second, "00:00"},
	} {
		if got := FormatClock(tc.in); got != tc.want {
			t.Fatalf("FormatClock(%s): got %q want %q", tc.in, got, tc.want)
		}
	}
}
