package sceneui

import (
	"errors"
	"fmt"
)

// ErrConflictingStop is returned when two Stop bindings share a key pattern.
var ErrConflictingStop = errors.New("conflicting stop handlers")

// dispatchEntry is a handler with its registration position for ordering.
type dispatchEntry struct {
	pattern  KeyPattern
	handler  func(KeyEvent)
	stop     bool
	position int // index of the listener that contributed the binding
}

// dispatchTable holds all handlers in a single ordered list.
// Handlers are matched against incoming KeyEvents by pattern.
type dispatchTable struct {
	entries []dispatchEntry
}

// buildDispatchTable collects KeyMap() from every listener in order,
// validates exclusive conflicts, and builds the dispatch table.
func buildDispatchTable(listeners []KeyListener) (*dispatchTable, error) {
	table := &dispatchTable{}

	for position, kl := range listeners {
		km := kl.KeyMap()
		for _, binding := range km {
			table.entries = append(table.entries, dispatchEntry{
				pattern:  binding.Pattern,
				handler:  binding.Handler,
				stop:     binding.Stop,
				position: position,
			})
		}
	}

	if err := table.validate(); err != nil {
		return nil, err
	}

	return table, nil
}

// matches checks if a dispatch entry matches a key event.
func (e *dispatchEntry) matches(ke KeyEvent) bool {
	p := e.pattern

	if p.Action != ke.Action {
		return false
	}

	// Check modifier requirements
	if p.RequireNoMods && ke.Mod != 0 {
		return false
	}
	if p.Mod != 0 && ke.Mod != p.Mod {
		return false
	}

	if p.AnyRune && ke.Key == KeyRune {
		return true
	}
	if p.Rune != 0 && ke.Rune == p.Rune && ke.Key == KeyRune {
		return true
	}
	if p.Key != 0 && ke.Key == p.Key {
		return true
	}
	return false
}

// dispatch sends a key event to all matching handlers in order.
// Stops early if a matching handler has Stop=true. Returns whether any
// handler matched.
func (dt *dispatchTable) dispatch(ke KeyEvent) bool {
	if dt == nil {
		return false
	}
	handled := false
	for i := range dt.entries {
		if dt.entries[i].matches(ke) {
			handled = true
			dt.entries[i].handler(ke)
			if dt.entries[i].stop {
				return true
			}
		}
	}
	return handled
}

// validate checks for conflicting Stop handlers. Two active Stop handlers
// for the same key pattern is an error since it is ambiguous which should win.
// A Stop handler + a broadcast handler for the same pattern is fine.
func (dt *dispatchTable) validate() error {
	stopPatterns := make(map[KeyPattern]int)

	for _, entry := range dt.entries {
		if !entry.stop {
			continue
		}
		if existing, conflict := stopPatterns[entry.pattern]; conflict {
			return fmt.Errorf(
				"%w for key pattern %+v at positions %d and %d",
				ErrConflictingStop, entry.pattern, existing, entry.position,
			)
		}
		stopPatterns[entry.pattern] = entry.position
	}

	return nil
}
