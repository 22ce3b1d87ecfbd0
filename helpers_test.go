package sceneui

import "testing"

// fakeInput is a hand-driven Input for tests.
type fakeInput struct {
	down  bool
	hover map[*Node]bool
}

func (f *fakeInput) IsPointerDown() bool { return f.down }

func (f *fakeInput) IsHovering(n *Node) bool { return f.hover[n] }

// recorder collects signals emitted on nodes as "name:signal" strings.
type recorder struct {
	events []string
}

func (r *recorder) watch(n *Node, signals ...Signal) {
	for _, sig := range signals {
		sig := sig
		n.On(sig, func(args ...any) {
			entry := n.Name() + ":" + string(sig)
			if len(args) == 1 {
				if b, ok := args[0].(bool); ok {
					if b {
						entry += "(true)"
					} else {
						entry += "(false)"
					}
				}
			}
			r.events = append(r.events, entry)
		})
	}
}

func (r *recorder) reset() { r.events = nil }

var allSignals = []Signal{SignalPressed, SignalReleased, SignalChecked, SignalFocus, SignalBlur, SignalAction}

type testUI struct {
	scene *Scene
	ui    *UI
	input *fakeInput
}

func newTestUI(t *testing.T) *testUI {
	t.Helper()
	scene := NewScene()
	in := &fakeInput{hover: map[*Node]bool{}}
	return &testUI{scene: scene, ui: NewUI(scene, WithInput(in)), input: in}
}

// add creates a node under parent (the root when nil) and attaches an
// element with opts.
func (tu *testUI) add(t *testing.T, parent *Node, name string, opts ...ElementOption) *Element {
	t.Helper()
	n := tu.scene.NewNode(name, WithSize(10, 10))
	if parent == nil {
		parent = tu.scene.Root()
	}
	parent.AddChild(n)
	e, err := tu.ui.Attach(n, opts...)
	if err != nil {
		t.Fatalf("Attach(%s): %v", name, err)
	}
	return e
}

// clickRelease runs a full pointer press and release on e.
func (tu *testUI) clickRelease(e *Element, hovering bool) {
	tu.input.down = true
	e.Click()
	tu.ui.Update()
	tu.input.down = false
	tu.input.hover[e.Node()] = hovering
	tu.ui.Update()
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
