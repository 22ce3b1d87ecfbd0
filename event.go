package sceneui

// Event is the base interface for input events delivered by a host.
// Use type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// KeyAction distinguishes key-down from key-up.
type KeyAction uint8

const (
	// KeyPress indicates the key went down.
	KeyPress KeyAction = iota
	// KeyRelease indicates the key came back up.
	KeyRelease
)

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Key is the key involved. For printable characters, this is KeyRune.
	Key Key

	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune

	// Mod contains the modifiers held when the event fired.
	Mod Modifier

	// Action is KeyPress or KeyRelease.
	Action KeyAction
}

func (KeyEvent) isEvent() {}

// IsRune returns true if this is a printable character event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// Is checks if the event matches a specific key with optional modifiers.
// Example: event.Is(KeyEnter) or event.Is(KeyTab, ModShift)
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// MouseButton represents which mouse button was involved in an event.
type MouseButton int

const (
	// MouseLeft is the left (primary) mouse button.
	MouseLeft MouseButton = iota
	// MouseMiddle is the middle mouse button.
	MouseMiddle
	// MouseRight is the right (secondary) mouse button.
	MouseRight
)

// MouseAction represents the type of mouse action.
type MouseAction int

const (
	// MousePress indicates a button was pressed.
	MousePress MouseAction = iota
	// MouseRelease indicates a button was released.
	MouseRelease
)

// MouseEvent represents a pointer input event in scene coordinates.
type MouseEvent struct {
	Button MouseButton
	Action MouseAction
	X, Y   float64
	Mod    Modifier
}

func (MouseEvent) isEvent() {}

// Input is the per-frame pointer state a host exposes to UI.Update.
type Input interface {
	// IsPointerDown reports whether the primary pointer is currently held.
	IsPointerDown() bool

	// IsHovering reports whether the pointer is currently over n.
	IsHovering(n *Node) bool
}
