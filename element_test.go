package sceneui

import (
	"errors"
	"testing"
)

func TestAttach_InitializesTags(t *testing.T) {
	type tc struct {
		opts     []ElementOption
		wantTags []string
	}

	tests := map[string]tc{
		"default is a button": {
			wantTags: []string{"button", "canfocus"},
		},
		"checkbox": {
			opts:     []ElementOption{WithKind(KindCheckbox)},
			wantTags: []string{"canfocus", "checkbox"},
		},
		"checked checkbox": {
			opts:     []ElementOption{WithKind(KindCheckbox), WithChecked(true)},
			wantTags: []string{"canfocus", "checkbox", "checked"},
		},
		"radio carries its group": {
			opts:     []ElementOption{WithKind(KindRadio), WithGroup("size")},
			wantTags: []string{"canfocus", "radiobutton", "size"},
		},
		"custom kind uses its name": {
			opts:     []ElementOption{WithCustomKind("slider")},
			wantTags: []string{"canfocus", "slider"},
		},
		"checked is ignored for buttons": {
			opts:     []ElementOption{WithChecked(true)},
			wantTags: []string{"button", "canfocus"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tu := newTestUI(t)
			e := tu.add(t, nil, "el", tt.opts...)
			if got := e.Node().Tags(); !equalStrings(got, tt.wantTags) {
				t.Errorf("tags = %v, want %v", got, tt.wantTags)
			}
		})
	}
}

func TestAttach_Errors(t *testing.T) {
	type tc struct {
		node    func(tu *testUI) *Node
		opts    []ElementOption
		wantErr error
	}

	tests := map[string]tc{
		"radio without group": {
			node:    func(tu *testUI) *Node { return tu.scene.NewNode("r") },
			opts:    []ElementOption{WithKind(KindRadio)},
			wantErr: ErrRadioGroupRequired,
		},
		"nil node": {
			node:    func(tu *testUI) *Node { return nil },
			wantErr: ErrNilNode,
		},
		"attached twice": {
			node: func(tu *testUI) *Node {
				n := tu.scene.NewNode("b")
				tu.ui.MustAttach(n)
				return n
			},
			wantErr: ErrAlreadyAttached,
		},
		"radio group named like a state tag": {
			node:    func(tu *testUI) *Node { return tu.scene.NewNode("r") },
			opts:    []ElementOption{WithKind(KindRadio), WithGroup(TagChecked)},
			wantErr: ErrReservedName,
		},
		"radio group named like a kind": {
			node:    func(tu *testUI) *Node { return tu.scene.NewNode("r") },
			opts:    []ElementOption{WithKind(KindRadio), WithGroup("button")},
			wantErr: ErrReservedName,
		},
		"custom kind named like a state tag": {
			node:    func(tu *testUI) *Node { return tu.scene.NewNode("c") },
			opts:    []ElementOption{WithCustomKind(TagFocus)},
			wantErr: ErrReservedName,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tu := newTestUI(t)
			e, err := tu.ui.Attach(tt.node(tu), tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Attach error = %v, want %v", err, tt.wantErr)
			}
			if e != nil {
				t.Error("Attach should return a nil element on error")
			}
		})
	}
}

func TestMustAttach_PanicsWithoutGroup(t *testing.T) {
	tu := newTestUI(t)
	defer func() {
		if recover() == nil {
			t.Error("MustAttach should panic for a radio button without a group")
		}
	}()
	tu.ui.MustAttach(tu.scene.NewNode("r"), WithKind(KindRadio))
}

func TestAttach_InitialCheckedEmits(t *testing.T) {
	tu := newTestUI(t)
	n := tu.scene.NewNode("cb")
	tu.scene.Root().AddChild(n)
	var rec recorder
	rec.watch(n, SignalChecked)

	e := tu.ui.MustAttach(n, WithKind(KindCheckbox), WithChecked(true))

	if !e.IsChecked() {
		t.Error("IsChecked() = false, want true")
	}
	if want := []string{"cb:checked(true)"}; !equalStrings(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
}

func TestPointer_ButtonRelease(t *testing.T) {
	type tc struct {
		hovering bool
		want     []string
	}

	tests := map[string]tc{
		"released over the button fires action": {
			hovering: true,
			want:     []string{"b:focus", "b:pressed", "b:action", "b:released"},
		},
		"released elsewhere skips action": {
			hovering: false,
			want:     []string{"b:focus", "b:pressed", "b:released"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tu := newTestUI(t)
			b := tu.add(t, nil, "b")
			var rec recorder
			rec.watch(b.Node(), allSignals...)

			tu.clickRelease(b, tt.hovering)

			if !equalStrings(rec.events, tt.want) {
				t.Errorf("events = %v, want %v", rec.events, tt.want)
			}
			if b.IsPressed() || b.Node().Is(TagPressed) {
				t.Error("button should not be pressed after release")
			}
		})
	}
}

func TestPointer_StillDownDoesNothing(t *testing.T) {
	tu := newTestUI(t)
	cb := tu.add(t, nil, "cb", WithKind(KindCheckbox))
	tu.input.down = true
	cb.Click()

	for i := 0; i < 3; i++ {
		tu.ui.Update()
	}

	if !cb.IsPressed() {
		t.Error("IsPressed() = false while pointer held")
	}
	if cb.IsChecked() {
		t.Error("checkbox toggled while pointer held")
	}
}

func TestPointer_CheckboxToggles(t *testing.T) {
	tu := newTestUI(t)
	cb := tu.add(t, nil, "cb", WithKind(KindCheckbox))
	var got []bool
	cb.OnChecked(func(checked bool) { got = append(got, checked) })

	tu.clickRelease(cb, true)
	tu.clickRelease(cb, false)
	tu.clickRelease(cb, true)

	want := []bool{true, false, true}
	if len(got) != len(want) {
		t.Fatalf("checked callbacks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("checked[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if !cb.Node().Is(TagChecked) {
		t.Error("node should carry the checked tag")
	}
}

func TestPointer_RadioExclusive(t *testing.T) {
	tu := newTestUI(t)
	r1 := tu.add(t, nil, "r1", WithKind(KindRadio), WithGroup("g"))
	r2 := tu.add(t, nil, "r2", WithKind(KindRadio), WithGroup("g"), WithChecked(true))
	r3 := tu.add(t, nil, "r3", WithKind(KindRadio), WithGroup("g"))
	other := tu.add(t, nil, "other", WithKind(KindRadio), WithGroup("h"), WithChecked(true))
	radios := []*Element{r1, r2, r3}

	for _, step := range []*Element{r1, r3, r3, r2, r1} {
		tu.clickRelease(step, true)

		checked := 0
		for _, r := range radios {
			if r.IsChecked() {
				checked++
			}
		}
		if checked != 1 {
			t.Fatalf("after clicking %s: %d radios checked, want 1", step.Node().Name(), checked)
		}
		if !step.IsChecked() {
			t.Errorf("clicked radio %s is not checked", step.Node().Name())
		}
		if got := tu.scene.Query("g", TagChecked); len(got) != 1 || got[0] != step.Node() {
			t.Errorf("query g+checked = %v, want [%s]", got, step.Node())
		}
	}
	if !other.IsChecked() {
		t.Error("radio in another group was unchecked")
	}
}

func TestPointer_RadioAlreadyCheckedEmitsNoChecked(t *testing.T) {
	tu := newTestUI(t)
	r1 := tu.add(t, nil, "r1", WithKind(KindRadio), WithGroup("g"), WithChecked(true))
	r2 := tu.add(t, nil, "r2", WithKind(KindRadio), WithGroup("g"))
	var rec recorder
	rec.watch(r1.Node(), SignalChecked, SignalReleased)
	rec.watch(r2.Node(), SignalChecked)

	tu.clickRelease(r1, true)

	if want := []string{"r1:released"}; !equalStrings(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
}

func TestPointer_RadioSelectOrder(t *testing.T) {
	tu := newTestUI(t)
	r1 := tu.add(t, nil, "r1", WithKind(KindRadio), WithGroup("g"), WithChecked(true))
	r2 := tu.add(t, nil, "r2", WithKind(KindRadio), WithGroup("g"))
	var rec recorder
	rec.watch(r1.Node(), SignalChecked)
	rec.watch(r2.Node(), SignalChecked, SignalReleased)

	tu.clickRelease(r2, true)

	want := []string{"r1:checked(false)", "r2:checked(true)", "r2:released"}
	if !equalStrings(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
}

func TestSetChecked_AlwaysEmits(t *testing.T) {
	tu := newTestUI(t)
	cb := tu.add(t, nil, "cb", WithKind(KindCheckbox))
	var rec recorder
	rec.watch(cb.Node(), SignalChecked)

	cb.SetChecked(false)
	cb.SetChecked(true)
	cb.SetChecked(true)

	want := []string{"cb:checked(false)", "cb:checked(true)", "cb:checked(true)"}
	if !equalStrings(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
}

func TestPointer_CustomKindHasNoCheckSemantics(t *testing.T) {
	tu := newTestUI(t)
	c := tu.add(t, nil, "knob", WithCustomKind("knob"))
	var rec recorder
	rec.watch(c.Node(), allSignals...)

	tu.clickRelease(c, true)

	want := []string{"knob:focus", "knob:pressed", "knob:released"}
	if !equalStrings(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
}

func TestSubscription_Cancel(t *testing.T) {
	tu := newTestUI(t)
	b := tu.add(t, nil, "b")
	calls := 0
	sub := b.OnPressed(func() { calls++ })

	b.Click()
	sub.Cancel()
	b.Click()

	if calls != 1 {
		t.Errorf("pressed calls = %d, want 1", calls)
	}
}

func TestDetach(t *testing.T) {
	tu := newTestUI(t)
	r := tu.add(t, nil, "r", WithKind(KindRadio), WithGroup("g"), WithChecked(true))
	r.SetFocus()
	var rec recorder
	rec.watch(r.Node(), SignalBlur)

	if !tu.ui.Detach(r.Node()) {
		t.Fatal("Detach returned false")
	}

	if want := []string{"r:blur"}; !equalStrings(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
	if tags := r.Node().Tags(); len(tags) != 0 {
		t.Errorf("tags after Detach = %v, want none", tags)
	}
	if _, ok := tu.ui.Element(r.Node()); ok {
		t.Error("element still registered after Detach")
	}
	if tu.ui.Focused() != nil {
		t.Error("Focused() should be nil after detaching the focused element")
	}
	if tu.ui.Detach(r.Node()) {
		t.Error("second Detach should return false")
	}
}

func TestRadioGroup(t *testing.T) {
	tu := newTestUI(t)
	r1 := tu.add(t, nil, "r1", WithKind(KindRadio), WithGroup("g"))
	cb := tu.add(t, nil, "cb", WithKind(KindCheckbox))
	r2 := tu.add(t, nil, "r2", WithKind(KindRadio), WithGroup("g"), WithChecked(true))
	other := tu.add(t, nil, "other", WithKind(KindRadio), WithGroup("h"))

	g := tu.ui.RadioGroup("g")
	members := g.Members()
	if len(members) != 2 || members[0] != r1 || members[1] != r2 {
		t.Fatalf("Members() = %v, want [r1 r2]", members)
	}
	if g.Selected() != r2 {
		t.Errorf("Selected() = %v, want r2", g.Selected())
	}

	rec := &recorder{}
	for _, e := range []*Element{r1, cb, r2, other} {
		rec.watch(e.Node(), SignalChecked)
	}

	g.Select(r1)
	want := []string{"r2:checked(false)", "r1:checked(true)"}
	if !equalStrings(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
	if g.Selected() != r1 {
		t.Errorf("Selected() after Select = %v, want r1", g.Selected())
	}

	rec.reset()
	g.Select(other)
	g.Select(cb)
	g.Select(nil)
	if len(rec.events) != 0 {
		t.Errorf("selecting a non-member emitted %v", rec.events)
	}
	if tu.ui.RadioGroup("none").Selected() != nil {
		t.Error("empty group should have no selection")
	}
}

func TestAttach_ReservedNameLeavesNodeUntouched(t *testing.T) {
	tu := newTestUI(t)
	n := tu.scene.NewNode("r")
	if _, err := tu.ui.Attach(n, WithKind(KindRadio), WithGroup(TagPressed)); !errors.Is(err, ErrReservedName) {
		t.Fatalf("Attach error = %v, want %v", err, ErrReservedName)
	}
	if len(n.Tags()) != 0 {
		t.Errorf("tags = %v, want none", n.Tags())
	}
	if _, ok := tu.ui.Element(n); ok {
		t.Error("rejected node should not be registered")
	}
}

func TestPointer_ReleaseAfterRemoveChild(t *testing.T) {
	tu := newTestUI(t)
	cb := tu.add(t, nil, "cb", WithKind(KindCheckbox))
	var rec recorder
	rec.watch(cb.Node(), SignalReleased, SignalChecked)

	tu.input.down = true
	cb.Click()
	tu.scene.Root().RemoveChild(cb.Node())
	tu.input.down = false
	tu.ui.Update()

	want := []string{"cb:checked(true)", "cb:released"}
	if !equalStrings(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
	if cb.IsPressed() || cb.Node().Is(TagPressed) {
		t.Error("element removed while pressed should be released")
	}

	rec.reset()
	tu.ui.Update()
	if len(rec.events) != 0 {
		t.Errorf("second Update emitted %v", rec.events)
	}
}
