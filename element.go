package sceneui

import "github.com/grindlemire/go-sceneui/internal/debug"

// Tags the UI mirrors onto nodes so host queries see element state.
const (
	TagCanFocus = "canfocus"
	TagFocus    = "focus"
	TagPressed  = "pressed"
	TagChecked  = "checked"
)

// Kind identifies the built-in behavior of an element.
type Kind uint8

const (
	// KindButton emits SignalAction when released over itself.
	KindButton Kind = iota
	// KindCheckbox toggles its checked state on pointer release.
	KindCheckbox
	// KindRadio checks itself and unchecks its group on pointer release.
	KindRadio
	// KindCustom has press, release and focus behavior only.
	KindCustom
)

// String returns the tag name of the kind.
func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindCheckbox:
		return "checkbox"
	case KindRadio:
		return "radiobutton"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// pressSource records what put an element into the pressed state. Only
// pointer presses are released by UI.Update.
type pressSource uint8

const (
	pressNone pressSource = iota
	pressPointer
	pressKeyboard
)

// Element is interactive behavior attached to a node. Create one with
// UI.Attach.
type Element struct {
	ui   *UI
	node *Node

	kind     Kind
	kindName string // tag carried by the node; the custom name for KindCustom
	group    string

	canFocus bool
	focused  bool
	checked  bool
	pressed  pressSource

	destroySub Subscription
}

// Node returns the node the element is attached to.
func (e *Element) Node() *Node { return e.node }

// Kind returns the element's kind.
func (e *Element) Kind() Kind { return e.kind }

// KindName returns the tag naming the kind. For custom kinds this is the
// name given to WithCustomKind.
func (e *Element) KindName() string { return e.kindName }

// Group returns the radio group name, or "" for non-radio elements.
func (e *Element) Group() string { return e.group }

// --- Subscriptions ---

// OnPressed subscribes fn to the element being pressed.
func (e *Element) OnPressed(fn func()) Subscription {
	return e.node.On(SignalPressed, func(...any) { fn() })
}

// OnReleased subscribes fn to the element being released.
func (e *Element) OnReleased(fn func()) Subscription {
	return e.node.On(SignalReleased, func(...any) { fn() })
}

// OnChecked subscribes fn to checked-state changes. fn receives the checked
// state at the time of the emit.
func (e *Element) OnChecked(fn func(checked bool)) Subscription {
	return e.node.On(SignalChecked, func(...any) { fn(e.checked) })
}

// OnFocus subscribes fn to the element gaining focus.
func (e *Element) OnFocus(fn func()) Subscription {
	return e.node.On(SignalFocus, func(...any) { fn() })
}

// OnBlur subscribes fn to the element losing focus.
func (e *Element) OnBlur(fn func()) Subscription {
	return e.node.On(SignalBlur, func(...any) { fn() })
}

// OnAction subscribes fn to the element's action (buttons only).
func (e *Element) OnAction(fn func()) Subscription {
	return e.node.On(SignalAction, func(...any) { fn() })
}

// --- State ---

// IsPressed reports whether the element is pressed.
func (e *Element) IsPressed() bool { return e.pressed != pressNone }

// IsChecked reports whether the element is checked.
func (e *Element) IsChecked() bool { return e.checked }

// IsFocused reports whether the element holds focus.
func (e *Element) IsFocused() bool { return e.focused }

// IsFocusable reports whether Tab traversal can reach the element.
func (e *Element) IsFocusable() bool { return e.canFocus }

// SetFocusable sets whether Tab traversal can reach the element. It does not
// blur a focused element.
func (e *Element) SetFocusable(focusable bool) {
	e.canFocus = focusable
	if focusable {
		e.node.Tag(TagCanFocus)
	} else {
		e.node.Untag(TagCanFocus)
	}
}

// SetChecked sets the checked state and emits SignalChecked with the new
// value, even when the value did not change.
func (e *Element) SetChecked(checked bool) {
	e.checked = checked
	if checked {
		e.node.Tag(TagChecked)
	} else {
		e.node.Untag(TagChecked)
	}
	e.node.Emit(SignalChecked, checked)
}

// SetFocus moves focus to this element. See UI.SetFocus.
func (e *Element) SetFocus() {
	e.ui.SetFocus(e)
}

// Click is the pointer-down transition: the element becomes pressed, takes
// focus and emits SignalPressed. The matching release is observed by
// UI.Update once the host reports the pointer is no longer down.
func (e *Element) Click() {
	debug.Log("Element.Click: %s", e.node)
	e.press(pressPointer)
	e.SetFocus()
	e.node.Emit(SignalPressed)
}

func (e *Element) press(src pressSource) {
	e.ui.clearKeyboardPresses(e)
	e.pressed = src
	e.node.Tag(TagPressed)
}

// pointerRelease is the release transition for a pointer press.
func (e *Element) pointerRelease(hovering bool) {
	debug.Log("Element.pointerRelease: %s kind=%s hovering=%v", e.node, e.kind, hovering)
	e.pressed = pressNone
	e.node.Untag(TagPressed)

	switch e.kind {
	case KindButton:
		if hovering {
			e.node.Emit(SignalAction)
		}
	case KindCheckbox:
		e.SetChecked(!e.checked)
	case KindRadio:
		if !e.checked {
			e.ui.RadioGroup(e.group).Select(e)
		}
	}
	e.node.Emit(SignalReleased)
}
