package game

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/appengine-ltd/misplaced/internal/dialogue"
)

const endingControlKey = "ending"

type SessionOptions struct {
	Config  Config
	Level   Level
	Library *dialogue.Library
	Assets  dialogue.Assets
	Audio   dialogue.AudioPlayer
	Logger  *log.Logger
}

// FrameInput is everything the collaborators hand the core for one frame.
type FrameInput struct {
	Delta   time.Duration
	Collect []CollectibleID
	Dismiss []dialogue.Handle
}

type Ending struct {
	Outcome   Outcome
	Elapsed   time.Duration
	Collected int
	Required  int
	Handle    dialogue.Handle
}

// Session drives one playthrough. It is not safe for concurrent use; call
// Update once per frame from the game loop.
type Session struct {
	cfg      Config
	level    Level
	queue    *Queue
	router   *Router
	progress *Controller
	dialogue *dialogue.Sequencer
	control  *ControlGate
	audio    dialogue.AudioPlayer
	bodies   []*Body
	frame    uint64
	ending   *Ending
	log      *log.Logger
}

func NewSession(opts SessionOptions) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	queue := NewQueue()
	progress, err := NewController(opts.Config, opts.Level, queue, prefixed(logger, "progress: "))
	if err != nil {
		return nil, err
	}
	control := NewControlGate()
	s := &Session{
		cfg:      opts.Config,
		level:    opts.Level,
		queue:    queue,
		router:   NewRouter(queue),
		progress: progress,
		control:  control,
		audio:    opts.Audio,
		log:      logger,
		dialogue: dialogue.NewSequencer(dialogue.Options{
			Library:     opts.Library,
			Assets:      opts.Assets,
			Audio:       opts.Audio,
			Control:     control,
			Logger:      prefixed(logger, "dialogue: "),
			DefaultRate: opts.Config.DefaultRevealRate,
		}),
	}
	s.router.Register(HandlerFunc(s.onCollected, EventCollected))
	s.router.Register(HandlerFunc(s.onResolved, EventWin, EventLose))
	s.router.Register(HandlerFunc(s.onRecovery, EventBodyRecovered, EventRecoverySkipped))
	return s, nil
}

func prefixed(l *log.Logger, prefix string) *log.Logger {
	return log.New(l.Writer(), l.Prefix()+prefix, l.Flags())
}

func (s *Session) Router() *Router { return s.router }

func (s *Session) Progress() *Controller { return s.progress }

func (s *Session) Dialogue() *dialogue.Sequencer { return s.dialogue }

func (s *Session) Control() *ControlGate { return s.control }

func (s *Session) Level() Level { return s.level }

func (s *Session) Config() Config { return s.cfg }

func (s *Session) Bodies() []*Body { return s.bodies }

func (s *Session) Frame() uint64 { return s.frame }

func (s *Session) Ending() (Ending, bool) {
	if s.ending == nil {
		return Ending{}, false
	}
	return *s.ending, true
}

func (s *Session) NewBody(name string, maxSpeed float32) *Body {
	b := NewBody(name, s.level.Spawn, maxSpeed, s.cfg)
	s.bodies = append(s.bodies, b)
	return b
}

func (s *Session) Start() []Event {
	s.openDialogue(dialogue.IDIntro)
	return s.router.DispatchAll()
}

// Update runs one frame: collections, dismissals, the countdown, stable
// ground recovery and typewriters, draining events after each stage.
// Collections run before the countdown, so a win and a timeout in the same
// frame resolve as a win.
func (s *Session) Update(in FrameInput) []Event {
	s.frame++
	s.queue.setFrame(s.frame)
	var dispatched []Event

	for _, id := range in.Collect {
		if s.progress.Terminal() != OutcomeNone {
			s.log.Printf("collect %s: ignored after %s", id, s.progress.Terminal())
			continue
		}
		if err := s.progress.RegisterCollection(id); err != nil {
			s.log.Printf("collect %s: %v", id, err)
		}
	}
	dispatched = append(dispatched, s.router.DispatchAll()...)

	for _, h := range in.Dismiss {
		s.dismiss(h)
	}
	dispatched = append(dispatched, s.router.DispatchAll()...)

	if s.progress.Terminal() == OutcomeNone {
		_ = s.progress.Tick(in.Delta)
	}
	dispatched = append(dispatched, s.router.DispatchAll()...)

	for _, b := range s.bodies {
		s.recover(b, in.Delta)
	}
	dispatched = append(dispatched, s.router.DispatchAll()...)

	s.dialogue.Tick(in.Delta)
	return dispatched
}

func (s *Session) dismiss(h dialogue.Handle) {
	res, ok := s.dialogue.Dismiss(h)
	if !ok {
		return
	}
	if res.Closed {
		s.queue.Push(EventDialogueClosed, DialoguePayload{Handle: res.Handle, ID: res.From})
		return
	}
	s.queue.Push(EventDialogueAdvanced, DialoguePayload{Handle: res.Handle, ID: res.To})
}

func (s *Session) recover(b *Body, delta time.Duration) {
	rec := b.Recovery()
	if rec == nil {
		return
	}
	rec.Sample(b, delta)
	from := b.Position
	to, recovered, err := rec.Watch(b, delta)
	switch {
	case err != nil:
		s.queue.Push(EventRecoverySkipped, RecoveryPayload{Body: b.Name, From: from, To: from, Err: err})
	case recovered:
		s.queue.Push(EventBodyRecovered, RecoveryPayload{Body: b.Name, From: from, To: to})
	}
}

func (s *Session) openDialogue(id dialogue.ID) *dialogue.Session {
	d := s.dialogue.Open(id)
	s.queue.Push(EventDialogueOpened, DialoguePayload{Handle: d.Handle(), ID: d.Node().ID})
	return d
}

func (s *Session) onCollected(ev Event) {
	p, ok := ev.Payload.(CollectedPayload)
	if !ok {
		return
	}
	if p.Item.Audio != "" && s.audio != nil {
		if _, err := s.audio.Play(p.Item.Audio, false); err != nil {
			s.log.Printf("warning: pickup audio for %s: %v", p.Item.ID, err)
		}
	}
	// The winning pickup goes straight to the ending.
	if s.progress.Terminal() != OutcomeNone {
		return
	}
	s.openDialogue(p.Item.Dialogue)
}

func (s *Session) onResolved(ev Event) {
	p, ok := ev.Payload.(OutcomePayload)
	if !ok || s.ending != nil {
		return
	}
	s.control.Suspend(endingControlKey)
	for _, h := range s.dialogue.CloseAll() {
		s.queue.Push(EventDialogueClosed, DialoguePayload{Handle: h})
	}

	id := dialogue.IDEndingLose
	if p.Outcome == OutcomeWin {
		id = dialogue.IDEndingWin
	}
	node, err := s.dialogue.Library().Resolve(id)
	if err != nil {
		s.log.Printf("warning: %v; opening placeholder ending", err)
		node = dialogue.Placeholder(id)
		node.Final = true
	}
	node.Body = fmt.Sprintf("%s\n\n%s", node.Body, endingSummary(p))
	d := s.dialogue.OpenNode(node)
	s.queue.Push(EventDialogueOpened, DialoguePayload{Handle: d.Handle(), ID: id})

	s.ending = &Ending{
		Outcome:   p.Outcome,
		Elapsed:   p.Elapsed,
		Collected: p.Collected,
		Required:  p.Required,
		Handle:    d.Handle(),
	}
	s.log.Printf("ending %s: %s", p.Outcome, endingSummary(p))
}

func (s *Session) onRecovery(ev Event) {
	p, ok := ev.Payload.(RecoveryPayload)
	if !ok {
		return
	}
	if ev.Type == EventRecoverySkipped {
		s.log.Printf("recovery: warning: %v; %s stays at %v", p.Err, p.Body, p.From)
		return
	}
	s.log.Printf("recovery: %s returned to %v", p.Body, p.To)
}

func endingSummary(p OutcomePayload) string {
	return fmt.Sprintf("Files returned: %d/%d  Time: %s", p.Collected, p.Required, FormatClock(p.Elapsed))
}

// FormatClock renders a duration as mm:ss, rounding down.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
