package sceneui

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/grindlemire/go-sceneui/internal/debug"
)

// Configuration errors returned by Attach.
var (
	ErrNilNode            = errors.New("nil node")
	ErrAlreadyAttached    = errors.New("node already has an element")
	ErrRadioGroupRequired = errors.New("radio buttons need a group")
	ErrReservedName       = errors.New("name is reserved for element state")
)

// reservedNames are tags the UI manages itself. Radio groups and custom kinds
// cannot use them.
var reservedNames = []string{
	TagCanFocus, TagFocus, TagPressed, TagChecked,
	KindButton.String(), KindCheckbox.String(), KindRadio.String(),
}

// UI is the focus and input coordinator for one scene. It owns the element
// registry and the single focused-element reference, turns key and pointer
// input into element transitions, and polls pointer state once per frame.
type UI struct {
	scene    *Scene
	input    Input
	elements map[NodeID]*Element
	focused  *Element

	activateKey Key
	traverseKey Key

	listeners []KeyListener
	table     *dispatchTable
}

// UIOption configures a UI.
type UIOption func(*UI)

// WithInput sets the pointer state source polled by Update.
func WithInput(in Input) UIOption {
	return func(ui *UI) {
		ui.input = in
	}
}

// WithActivateKey changes the key that activates the focused element.
// The default is KeyEnter.
func WithActivateKey(k Key) UIOption {
	return func(ui *UI) {
		ui.activateKey = k
	}
}

// WithTraverseKey changes the key that moves focus. The default is KeyTab;
// holding Shift moves backward.
func WithTraverseKey(k Key) UIOption {
	return func(ui *UI) {
		ui.traverseKey = k
	}
}

// NewUI creates the coordinator for scene.
func NewUI(scene *Scene, opts ...UIOption) *UI {
	ui := &UI{
		scene:       scene,
		elements:    make(map[NodeID]*Element),
		activateKey: KeyEnter,
		traverseKey: KeyTab,
	}
	for _, opt := range opts {
		opt(ui)
	}
	ui.listeners = []KeyListener{ui}
	// The built-in bindings never use Stop, so this cannot fail.
	ui.table, _ = buildDispatchTable(ui.listeners)
	return ui
}

// Scene returns the scene the UI coordinates.
func (ui *UI) Scene() *Scene { return ui.scene }

// SetInput replaces the pointer state source polled by Update.
func (ui *UI) SetInput(in Input) { ui.input = in }

// Attach adds element behavior to node. The node is tagged with its kind and
// "canfocus"; radio buttons are also tagged with their group. An initially
// checked checkbox or radio button emits SignalChecked during Attach.
func (ui *UI) Attach(node *Node, opts ...ElementOption) (*Element, error) {
	if node == nil {
		return nil, ErrNilNode
	}
	if _, ok := ui.elements[node.id]; ok {
		return nil, fmt.Errorf("attach %s: %w", node, ErrAlreadyAttached)
	}

	cfg := elementConfig{kind: KindButton}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.kind == KindRadio && cfg.group == "" {
		return nil, fmt.Errorf("attach %s: %w", node, ErrRadioGroupRequired)
	}
	if cfg.kind == KindRadio && slices.Contains(reservedNames, cfg.group) {
		return nil, fmt.Errorf("attach %s: group %q: %w", node, cfg.group, ErrReservedName)
	}
	if cfg.kind == KindCustom && slices.Contains(reservedNames, cfg.customName) {
		return nil, fmt.Errorf("attach %s: kind %q: %w", node, cfg.customName, ErrReservedName)
	}

	e := &Element{
		ui:       ui,
		node:     node,
		kind:     cfg.kind,
		kindName: cfg.kind.String(),
		canFocus: true,
	}
	if cfg.kind == KindCustom && cfg.customName != "" {
		e.kindName = cfg.customName
	}
	if cfg.kind == KindRadio {
		e.group = cfg.group
	}

	node.Tag(e.kindName, TagCanFocus)
	if e.kind == KindRadio {
		node.Tag(e.group)
	}
	ui.elements[node.id] = e
	e.destroySub = node.On(SignalDestroy, func(...any) { ui.forget(e) })
	debug.Log("UI.Attach: %s kind=%s group=%q", node, e.kindName, e.group)

	if cfg.checked && (e.kind == KindCheckbox || e.kind == KindRadio) {
		e.SetChecked(true)
	}
	return e, nil
}

// MustAttach is like Attach but panics on error.
func (ui *UI) MustAttach(node *Node, opts ...ElementOption) *Element {
	e, err := ui.Attach(node, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Detach removes element behavior from node and clears the tags Attach and
// later transitions added. A focused element emits SignalBlur first.
// Returns false if the node had no element.
func (ui *UI) Detach(node *Node) bool {
	e, ok := ui.elements[node.id]
	if !ok {
		return false
	}
	if ui.focused == e {
		ui.blur(e)
		ui.focused = nil
	}
	node.Untag(e.kindName, TagCanFocus, TagPressed, TagChecked, TagFocus)
	if e.group != "" {
		node.Untag(e.group)
	}
	e.destroySub.Cancel()
	delete(ui.elements, node.id)
	debug.Log("UI.Detach: %s", node)
	return true
}

// forget drops a destroyed node's element. No signals are emitted.
func (ui *UI) forget(e *Element) {
	debug.Log("UI.forget: %s destroyed (focused=%v)", e.node, ui.focused == e)
	if ui.focused == e {
		ui.focused = nil
	}
	delete(ui.elements, e.node.id)
}

// Element returns the element attached to node.
func (ui *UI) Element(node *Node) (*Element, bool) {
	if node == nil {
		return nil, false
	}
	e, ok := ui.elements[node.id]
	return e, ok
}

// Elements returns every element whose node is in the scene tree, in
// traversal order.
func (ui *UI) Elements() []*Element {
	var out []*Element
	ui.scene.Walk(func(n *Node) bool {
		if e, ok := ui.elements[n.id]; ok {
			out = append(out, e)
		}
		return true
	})
	return out
}

// --- Keyboard ---

// KeyMap returns the built-in bindings: the activate key going down and up,
// and the traverse key going down with or without Shift.
func (ui *UI) KeyMap() KeyMap {
	return KeyMap{
		OnKey(ui.activateKey, func(KeyEvent) { ui.ActivateDown() }),
		OnKeyRelease(ui.activateKey, func(KeyEvent) { ui.ActivateUp() }),
		OnKey(ui.traverseKey, func(ke KeyEvent) { ui.Traverse(ke.Mod.Has(ModShift)) }),
	}
}

// AddKeyListener appends kl to the dispatch table after the built-in
// bindings. Returns an error wrapping ErrConflictingStop if kl introduces a
// second Stop binding for a pattern.
func (ui *UI) AddKeyListener(kl KeyListener) error {
	listeners := append(slices.Clip(ui.listeners), kl)
	table, err := buildDispatchTable(listeners)
	if err != nil {
		return err
	}
	ui.listeners = listeners
	ui.table = table
	return nil
}

// RemoveKeyListener removes kl from the dispatch table.
func (ui *UI) RemoveKeyListener(kl KeyListener) {
	i := slices.Index(ui.listeners, kl)
	if i <= 0 {
		return
	}
	ui.listeners = slices.Delete(slices.Clone(ui.listeners), i, i+1)
	ui.table, _ = buildDispatchTable(ui.listeners)
}

// RefreshKeyMaps rebuilds the dispatch table, picking up listeners whose
// KeyMap changed.
func (ui *UI) RefreshKeyMaps() error {
	table, err := buildDispatchTable(ui.listeners)
	if err != nil {
		return err
	}
	ui.table = table
	return nil
}

// HandleKey dispatches a key event. Returns true if any binding matched.
func (ui *UI) HandleKey(ke KeyEvent) bool {
	debug.Log("UI.HandleKey: key=%s mod=%s action=%d", ke.Key, ke.Mod, ke.Action)
	return ui.table.dispatch(ke)
}

// --- Pointer ---

// HandlePointer routes a left-button press to the element under the
// pointer: the topmost node hit, or its nearest ancestor with an element.
// Returns true if an element was clicked. Releases are not events; they are
// observed by Update.
func (ui *UI) HandlePointer(me MouseEvent) bool {
	if me.Button != MouseLeft || me.Action != MousePress {
		return false
	}
	hit := ui.scene.HitTest(me.X, me.Y)
	for n := hit; n != nil; n = n.parent {
		if e, ok := ui.elements[n.id]; ok {
			e.Click()
			return true
		}
	}
	debug.Log("UI.HandlePointer: no element at (%.1f, %.1f)", me.X, me.Y)
	return false
}

// Update runs the per-frame pointer check: every element pressed by the
// pointer is released once the input reports the pointer is no longer down.
// Elements in the scene tree are released in traversal order, then elements
// whose nodes were removed from the tree while pressed, by node id.
// Does nothing without an Input.
func (ui *UI) Update() {
	if ui.input == nil {
		return
	}
	if ui.input.IsPointerDown() {
		return
	}
	pressed := slices.DeleteFunc(ui.Elements(), func(e *Element) bool {
		return e.pressed != pressPointer
	})
	var removed []*Element
	for _, e := range ui.elements {
		if e.pressed == pressPointer && !e.node.Attached() {
			removed = append(removed, e)
		}
	}
	slices.SortFunc(removed, func(a, b *Element) int {
		return cmp.Compare(a.node.id, b.node.id)
	})
	for _, e := range append(pressed, removed...) {
		e.pointerRelease(ui.input.IsHovering(e.node))
	}
}
