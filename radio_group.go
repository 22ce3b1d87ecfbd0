package sceneui

// RadioGroup is a view over the radio buttons sharing a group name. It holds
// no state of its own; membership is read from the UI on every call.
type RadioGroup struct {
	ui   *UI
	name string
}

// RadioGroup returns the view for the named group.
func (ui *UI) RadioGroup(name string) *RadioGroup {
	return &RadioGroup{ui: ui, name: name}
}

// Name returns the group name.
func (g *RadioGroup) Name() string { return g.name }

// Members returns the group's radio buttons in traversal order.
func (g *RadioGroup) Members() []*Element {
	var out []*Element
	for _, e := range g.ui.Elements() {
		if e.kind == KindRadio && e.group == g.name {
			out = append(out, e)
		}
	}
	return out
}

// Selected returns the first checked member, or nil.
func (g *RadioGroup) Selected() *Element {
	for _, e := range g.Members() {
		if e.checked {
			return e
		}
	}
	return nil
}

// Select unchecks every other member, then checks e. Each member emits
// SignalChecked. Does nothing if e is not a member of the group.
func (g *RadioGroup) Select(e *Element) {
	if e == nil || e.kind != KindRadio || e.group != g.name {
		return
	}
	for _, m := range g.Members() {
		if m != e {
			m.SetChecked(false)
		}
	}
	e.SetChecked(true)
}
