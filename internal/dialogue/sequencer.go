package dialogue

import (
	"fmt"
	"io"
	"log"
	"time"
)

// Assets answers whether a portrait or audio ref can be loaded.
type Assets interface {
	Exists(ref string) bool
}

// Voice is a playing sound owned by a display.
type Voice interface {
	Stop()
}

type AudioPlayer interface {
	Play(ref string, loop bool) (Voice, error)
}

// Control suspends and resumes player input. Input stays suspended while
// any key is held.
type Control interface {
	Suspend(key string)
	Resume(key string)
}

type Handle uint64

// Content is what a display shows. Body holds the revealed text, not the
// full node text.
type Content struct {
	Speaker  string
	Body     string
	Portrait string
	Audio    *Audio
}

type Session struct {
	handle  Handle
	node    Node
	content Content
	writer  *Typewriter
	voice   Voice
}

func (s *Session) Handle() Handle { return s.handle }

func (s *Session) Node() Node { return s.node }

func (s *Session) Content() Content { return s.content }

func (s *Session) Typewriter() *Typewriter { return s.writer }

func (s *Session) Dismissable() bool { return !s.node.Final }

func (s *Session) controlKey() string {
	return fmt.Sprintf("dialogue:%d", s.handle)
}

type Options struct {
	Library     *Library
	Assets      Assets
	Audio       AudioPlayer
	Control     Control
	Logger      *log.Logger
	DefaultRate float64
}

type DismissResult struct {
	Handle Handle
	From   ID
	// To is set when the display branched in place.
	To     ID
	Closed bool
}

type Sequencer struct {
	lib         *Library
	assets      Assets
	audio       AudioPlayer
	control     Control
	log         *log.Logger
	defaultRate float64

	next     Handle
	sessions []*Session
}

func NewSequencer(opts Options) *Sequencer {
	if opts.Library == nil {
		opts.Library = BuiltinLibrary()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.DefaultRate <= 0 {
		opts.DefaultRate = 15
	}
	return &Sequencer{
		lib:         opts.Library,
		assets:      opts.Assets,
		audio:       opts.Audio,
		control:     opts.Control,
		log:         opts.Logger,
		defaultRate: opts.DefaultRate,
	}
}

func (q *Sequencer) Library() *Library { return q.lib }

// Open resolves id and spawns its display. An unknown id opens a
// placeholder and logs a warning.
func (q *Sequencer) Open(id ID) *Session {
	return q.OpenNode(q.resolve(id))
}

// OpenNode spawns a display for n and suspends player control until the
// display is closed.
func (q *Sequencer) OpenNode(n Node) *Session {
	q.next++
	s := &Session{handle: q.next}
	q.load(s, n)
	q.sessions = append(q.sessions, s)
	if q.control != nil {
		q.control.Suspend(s.controlKey())
	}
	return s
}

// Dismiss handles a click on the display h. Close steps despawn the display
// and resume control; branch steps swap in the next node with a fresh
// typewriter. Returns false when h is unknown or not dismissable.
func (q *Sequencer) Dismiss(h Handle) (DismissResult, bool) {
	i := q.index(h)
	if i < 0 {
		return DismissResult{}, false
	}
	s := q.sessions[i]
	if !s.Dismissable() {
		return DismissResult{}, false
	}
	from := s.node.ID
	if s.node.Advance.Kind == AdvanceBranch {
		next := q.resolve(s.node.Advance.Next)
		q.stopVoice(s)
		q.load(s, next)
		return DismissResult{Handle: h, From: from, To: next.ID}, true
	}
	q.despawn(i)
	return DismissResult{Handle: h, From: from, Closed: true}, true
}

// CloseAll despawns every display, dismissable or not.
func (q *Sequencer) CloseAll() []Handle {
	handles := make([]Handle, 0, len(q.sessions))
	for len(q.sessions) > 0 {
		handles = append(handles, q.sessions[0].handle)
		q.despawn(0)
	}
	return handles
}

func (q *Sequencer) Tick(delta time.Duration) {
	for _, s := range q.sessions {
		s.writer.Tick(delta, &s.content.Body)
	}
}

func (q *Sequencer) Sessions() []*Session {
	return q.sessions
}

func (q *Sequencer) Session(h Handle) (*Session, bool) {
	if i := q.index(h); i >= 0 {
		return q.sessions[i], true
	}
	return nil, false
}

func (q *Sequencer) Top() (*Session, bool) {
	if len(q.sessions) == 0 {
		return nil, false
	}
	return q.sessions[len(q.sessions)-1], true
}

func (q *Sequencer) Active() bool {
	return len(q.sessions) > 0
}

func (q *Sequencer) resolve(id ID) Node {
	n, err := q.lib.Resolve(id)
	if err != nil {
		q.log.Printf("warning: %v; opening placeholder", err)
		return Placeholder(id)
	}
	return n
}

func (q *Sequencer) load(s *Session, n Node) {
	rate := n.Rate
	if rate <= 0 {
		rate = q.defaultRate
	}
	s.node = n
	s.content = Content{
		Speaker:  n.Speaker,
		Body:     n.Body,
		Portrait: n.Portrait,
		Audio:    n.Audio,
	}
	if s.content.Portrait != "" && q.assets != nil && !q.assets.Exists(s.content.Portrait) {
		q.log.Printf("warning: %v: portrait %q for %s; using placeholder", ErrMissingAsset, s.content.Portrait, n.ID)
		s.content.Portrait = ""
	}
	s.writer = NewTypewriter(rate)
	// Capture now so the display starts empty instead of flashing the full text.
	s.writer.Tick(0, &s.content.Body)
	s.voice = q.startVoice(n)
}

func (q *Sequencer) startVoice(n Node) Voice {
	if n.Audio == nil || n.Audio.Ref == "" || q.audio == nil {
		return nil
	}
	v, err := q.audio.Play(n.Audio.Ref, n.Audio.Looping)
	if err != nil {
		q.log.Printf("warning: audio for %s: %v", n.ID, err)
		return nil
	}
	return v
}

func (q *Sequencer) stopVoice(s *Session) {
	if s.voice != nil {
		s.voice.Stop()
		s.voice = nil
	}
}

func (q *Sequencer) despawn(i int) {
	s := q.sessions[i]
	q.stopVoice(s)
	q.sessions = append(q.sessions[:i], q.sessions[i+1:]...)
	if q.control != nil {
		q.control.Resume(s.controlKey())
	}
}

func (q *Sequencer) index(h Handle) int {
	for i, s := range q.sessions {
		if s.handle == h {
			return i
		}
	}
	return -1
}
