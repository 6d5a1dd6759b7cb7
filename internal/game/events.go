package game

import (
	"time"

	"github.com/appengine-ltd/misplaced/internal/dialogue"
)

// EventType tags a game event. Each payload type is fixed per event type.
type EventType int

const (
	// EventCollected reports a collectible leaving the world
	// Trigger: Controller.RegisterCollection | Payload: CollectedPayload
	EventCollected EventType = iota

	// EventWin fires once when the last required collectible is collected
	// Trigger: Controller.RegisterCollection | Payload: OutcomePayload
	EventWin

	// EventLose fires once when the countdown passes the deadline
	// Trigger: Controller.Tick | Payload: OutcomePayload
	EventLose

	// EventDialogueOpened reports a new dialogue display
	// Trigger: Session on collection, intro, resolution | Payload: DialoguePayload
	EventDialogueOpened

	// EventDialogueAdvanced reports a branch replacing a display in place
	// Trigger: Session on dismiss | Payload: DialoguePayload
	EventDialogueAdvanced

	// EventDialogueClosed reports a despawned display
	// Trigger: Session on dismiss | Payload: DialoguePayload
	EventDialogueClosed

	// EventBodyRecovered reports a teleport back to stable ground
	// Trigger: StableGround.Watch | Payload: RecoveryPayload
	EventBodyRecovered

	// EventRecoverySkipped reports a fall past the threshold with no history
	// Trigger: StableGround.Watch | Payload: RecoveryPayload
	EventRecoverySkipped
)

func (t EventType) String() string {
	switch t {
	case EventCollected:
		return "collected"
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	case EventDialogueOpened:
		return "dialogue_opened"
	case EventDialogueAdvanced:
		return "dialogue_advanced"
	case EventDialogueClosed:
		return "dialogue_closed"
	case EventBodyRecovered:
		return "body_recovered"
	case EventRecoverySkipped:
		return "recovery_skipped"
	default:
		return "unknown"
	}
}

type Event struct {
	Type    EventType
	Frame   uint64
	Payload any
}

type CollectedPayload struct {
	Item      Collectible
	Collected int
	Required  int
}

type OutcomePayload struct {
	Outcome   Outcome
	Elapsed   time.Duration
	Collected int
	Required  int
}

type DialoguePayload struct {
	Handle dialogue.Handle
	ID     dialogue.ID
}

type RecoveryPayload struct {
	Body string
	From Vec3
	To   Vec3
	Err  error
}

type Queue struct {
	pending []Event
	frame   uint64
}

func NewQueue() *Queue {
	return &Queue{pending: make([]Event, 0, 16)}
}

func (q *Queue) Push(t EventType, payload any) {
	q.pending = append(q.pending, Event{Type: t, Frame: q.frame, Payload: payload})
}

func (q *Queue) Len() int { return len(q.pending) }

func (q *Queue) setFrame(frame uint64) { q.frame = frame }

func (q *Queue) pop() (Event, bool) {
	if len(q.pending) == 0 {
		return Event{}, false
	}
	ev := q.pending[0]
	q.pending[0] = Event{}
	q.pending = q.pending[1:]
	if len(q.pending) == 0 {
		q.pending = q.pending[:0:cap(q.pending)]
	}
	return ev, true
}

// Handler receives routed events synchronously during dispatch.
type Handler interface {
	HandleEvent(ev Event)
	EventTypes() []EventType
}

type handlerFunc struct {
	types []EventType
	fn    func(Event)
}

func (h handlerFunc) HandleEvent(ev Event) { h.fn(ev) }

func (h handlerFunc) EventTypes() []EventType { return h.types }

func HandlerFunc(fn func(Event), types ...EventType) Handler {
	return handlerFunc{types: types, fn: fn}
}

// Router dispatches queued events to handlers. Handlers run in registration
// order; events pushed while dispatching are handled in the same drain.
type Router struct {
	handlers map[EventType][]Handler
	queue    *Queue
}

func NewRouter(queue *Queue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}

// DispatchAll drains the queue in FIFO order and returns what was dispatched.
func (r *Router) DispatchAll() []Event {
	var out []Event
	for {
		ev, ok := r.queue.pop()
		if !ok {
			return out
		}
		out = append(out, ev)
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}
