package sceneui

// Signal names an event emitted on a node.
type Signal string

// Signals emitted by elements and the scene host.
const (
	SignalPressed  Signal = "pressed"
	SignalReleased Signal = "released"
	SignalChecked  Signal = "checked"
	SignalFocus    Signal = "focus"
	SignalBlur     Signal = "blur"
	SignalAction   Signal = "action"
	SignalDestroy  Signal = "destroy"
)

// Handler receives the payload passed to Emit.
type Handler func(args ...any)

type handlerEntry struct {
	id        uint64
	fn        Handler
	cancelled bool
}

// Emitter is a per-node signal bus. Handlers for a signal run in the order
// they were subscribed.
type Emitter struct {
	handlers map[Signal][]*handlerEntry
	nextID   uint64
}

// Subscription is returned by On and cancels the handler it registered.
type Subscription struct {
	em     *Emitter
	signal Signal
	id     uint64
}

// On subscribes fn to signal.
func (em *Emitter) On(signal Signal, fn Handler) Subscription {
	if em.handlers == nil {
		em.handlers = make(map[Signal][]*handlerEntry)
	}
	em.nextID++
	em.handlers[signal] = append(em.handlers[signal], &handlerEntry{id: em.nextID, fn: fn})
	return Subscription{em: em, signal: signal, id: em.nextID}
}

// Emit calls every handler subscribed to signal. Handlers subscribed while
// the emit is running are not called until the next emit; handlers cancelled
// while it is running are skipped.
func (em *Emitter) Emit(signal Signal, args ...any) {
	entries := em.handlers[signal]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]*handlerEntry, len(entries))
	copy(snapshot, entries)
	for _, h := range snapshot {
		if h.cancelled {
			continue
		}
		h.fn(args...)
	}
}

// Count returns the number of live handlers for signal.
func (em *Emitter) Count(signal Signal) int {
	return len(em.handlers[signal])
}

// Cancel removes the handler. Cancelling twice, or cancelling the zero
// Subscription, is a no-op.
func (s Subscription) Cancel() {
	if s.em == nil {
		return
	}
	entries := s.em.handlers[s.signal]
	for i, h := range entries {
		if h.id == s.id {
			h.cancelled = true
			s.em.handlers[s.signal] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}
