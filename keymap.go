package sceneui

// KeyListener is implemented by anything that handles keyboard input through
// the UI's dispatch table. KeyMap is called whenever the table is rebuilt.
type KeyListener interface {
	KeyMap() KeyMap
}

// KeyMap is a list of key bindings returned by KeyListener.KeyMap().
// It is a value, not a registration; the UI collects and manages it.
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with a handler.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(KeyEvent)
	Stop    bool // If true, prevent later handlers from firing for this key
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key       // Specific key (KeyEnter, KeyTab, etc.), or 0
	Rune          rune      // Specific rune, or 0
	AnyRune       bool      // Match any printable character
	Mod           Modifier  // Required modifiers (when non-zero, event must have exactly these mods)
	RequireNoMods bool      // When true, event must have no modifiers (Mod field is ignored)
	Action        KeyAction // KeyPress (zero value) or KeyRelease
}

// OnKey creates a broadcast binding for a key going down.
// Other handlers for the same key will also fire.
func OnKey(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key},
		Handler: handler,
	}
}

// OnKeyStop creates a stop-propagation binding for a key going down.
// No handlers registered after this one will fire.
func OnKeyStop(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key},
		Handler: handler,
		Stop:    true,
	}
}

// OnKeyRelease creates a broadcast binding for a key coming back up.
func OnKeyRelease(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key, Action: KeyRelease},
		Handler: handler,
	}
}

// OnRune creates a broadcast binding for a specific printable character.
func OnRune(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Rune: r},
		Handler: handler,
	}
}

// OnRunesStop creates a stop-propagation binding for all printable characters.
// Use this for text inputs that need exclusive access to character keys.
func OnRunesStop(handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{AnyRune: true},
		Handler: handler,
		Stop:    true,
	}
}
