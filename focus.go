package sceneui

import "github.com/grindlemire/go-sceneui/internal/debug"

// Focused returns the focused element, or nil if none.
func (ui *UI) Focused() *Element {
	return ui.focused
}

// SetFocus moves focus to e. The previously focused element, if it is not e,
// loses its "focus" tag and emits SignalBlur first; then e is tagged and
// emits SignalFocus. Focusing the focused element emits SignalFocus again.
func (ui *UI) SetFocus(e *Element) {
	if e == nil {
		return
	}
	if prev := ui.focused; prev != nil && prev != e {
		ui.blur(prev)
	}
	debug.Log("UI.SetFocus: %s", e.node)
	ui.focused = e
	e.focused = true
	e.node.Tag(TagFocus)
	e.node.Emit(SignalFocus)
}

// Blur removes focus from the focused element, if any.
func (ui *UI) Blur() {
	if ui.focused == nil {
		return
	}
	ui.blur(ui.focused)
	ui.focused = nil
}

func (ui *UI) blur(e *Element) {
	debug.Log("UI.blur: %s", e.node)
	e.focused = false
	e.node.Untag(TagFocus)
	e.node.Emit(SignalBlur)
}

// Focusable returns every focusable element in the scene tree, in traversal
// order.
func (ui *UI) Focusable() []*Element {
	var out []*Element
	for _, e := range ui.Elements() {
		if e.canFocus {
			out = append(out, e)
		}
	}
	return out
}

// Traverse moves focus to the next focusable element, or the previous one
// when reverse is set, wrapping at both ends. Without a focused element in
// the traversal order the first focusable element is focused. Does nothing
// when no element is focusable.
func (ui *UI) Traverse(reverse bool) {
	order := ui.Focusable()
	if len(order) == 0 {
		debug.Log("UI.Traverse: nothing focusable")
		return
	}

	idx := -1
	if ui.focused != nil {
		for i, e := range order {
			if e == ui.focused {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		ui.SetFocus(order[0])
		return
	}

	dir := 1
	if reverse {
		dir = -1
	}
	n := len(order)
	next := ((idx+dir)%n + n) % n
	debug.Log("UI.Traverse: %d -> %d of %d (reverse=%v)", idx, next, n, reverse)
	ui.SetFocus(order[next])
}

// ActivateDown presses the focused element from the keyboard: it is tagged
// pressed and emits SignalPressed. Focus does not move. A press the pointer
// already holds stays a pointer press so Update still releases it.
func (ui *UI) ActivateDown() {
	e := ui.focused
	if e == nil {
		return
	}
	if e.pressed == pressPointer {
		e.node.Tag(TagPressed)
	} else {
		e.press(pressKeyboard)
	}
	e.node.Emit(SignalPressed)
}

// clearKeyboardPresses drops the pressed state that ActivateUp leaves behind
// on every element except keep. No signals are emitted.
func (ui *UI) clearKeyboardPresses(keep *Element) {
	for _, e := range ui.elements {
		if e != keep && e.pressed == pressKeyboard {
			debug.Log("UI.clearKeyboardPresses: %s", e.node)
			e.pressed = pressNone
			e.node.Untag(TagPressed)
		}
	}
}

// ActivateUp releases the focused element from the keyboard. The element
// stays tagged pressed; buttons emit SignalAction; every kind then emits
// SignalReleased. Checkboxes and radio buttons are not toggled here, only by
// a pointer release.
func (ui *UI) ActivateUp() {
	e := ui.focused
	if e == nil {
		return
	}
	if e.pressed == pressNone {
		ui.clearKeyboardPresses(e)
		e.pressed = pressKeyboard
	}
	e.node.Tag(TagPressed)
	if e.kind == KindButton {
		e.node.Emit(SignalAction)
	}
	e.node.Emit(SignalReleased)
}
