// Package widget builds ready-made nodes for the common element kinds. Each
// widget is a node sized from its label text, with a background and a label
// child for the host to draw, and the matching element attached.
package widget

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	sceneui "github.com/grindlemire/go-sceneui"
)

// Tags carried by the decoration children so hosts can find and draw them.
const (
	TagBackground = "widget-bg"
	TagIcon       = "widget-icon"
	TagText       = "widget-text"
	TagGroupBox   = "groupbox"
)

// Height is the height of every widget: one line of text plus a frame.
const Height = 24

const (
	hPad      = 16 // room for the icon
	hFrame    = 6
	iconSize  = 16
	textInset = 20
)

// Option configures a widget.
type Option func(*config)

type config struct {
	face     font.Face
	pos      sceneui.Vec2
	minWidth float64
}

// WithFace measures labels with f instead of basicfont.Face7x13.
func WithFace(f font.Face) Option {
	return func(c *config) {
		c.face = f
	}
}

// WithPos sets the widget's initial position inside its parent. A container
// parent overrides it on the next layout pass.
func WithPos(x, y float64) Option {
	return func(c *config) {
		c.pos = sceneui.V(x, y)
	}
}

// WithMinWidth keeps the widget at least w pixels wide.
func WithMinWidth(w float64) Option {
	return func(c *config) {
		c.minWidth = w
	}
}

func newConfig(opts []Option) config {
	c := config{face: basicfont.Face7x13}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// TextWidth returns the advance width of s in face, rounded to whole pixels.
func TextWidth(face font.Face, s string) float64 {
	if face == nil || s == "" {
		return 0
	}
	return float64(font.MeasureString(face, s).Round())
}

// Measure returns the size of a widget labelled s.
func Measure(face font.Face, s string) sceneui.Size {
	return sceneui.Size{Width: TextWidth(face, s) + hPad + hFrame, Height: Height}
}

// build creates the widget node and its decoration children under parent.
func build(ui *sceneui.UI, parent *sceneui.Node, label string, icon bool, cfg config) *sceneui.Node {
	scene := ui.Scene()
	size := Measure(cfg.face, label)
	if size.Width < cfg.minWidth {
		size.Width = cfg.minWidth
	}

	n := scene.NewNode(label,
		sceneui.WithPos(cfg.pos.X, cfg.pos.Y),
		sceneui.WithSize(size.Width, size.Height),
		sceneui.WithLabel(label),
	)
	if icon {
		n.AddChild(scene.NewNode(label+"-icon",
			sceneui.WithPos(0, (Height-iconSize)/2),
			sceneui.WithSize(iconSize, iconSize),
			sceneui.WithTags(TagIcon),
		))
		n.AddChild(scene.NewNode(label+"-text",
			sceneui.WithPos(textInset, 0),
			sceneui.WithSize(size.Width-textInset, Height),
			sceneui.WithTags(TagText),
			sceneui.WithLabel(label),
		))
	} else {
		n.AddChild(scene.NewNode(label+"-bg",
			sceneui.WithPos(1, 1),
			sceneui.WithSize(size.Width-2, size.Height-2),
			sceneui.WithTags(TagBackground),
		))
		n.AddChild(scene.NewNode(label+"-text",
			sceneui.WithSize(size.Width, Height),
			sceneui.WithTags(TagText),
			sceneui.WithLabel(label),
		))
	}
	if parent == nil {
		parent = scene.Root()
	}
	parent.AddChild(n)
	return n
}

// NewButton adds a button labelled label to parent (the scene root when nil).
func NewButton(ui *sceneui.UI, parent *sceneui.Node, label string, opts ...Option) (*sceneui.Element, error) {
	n := build(ui, parent, label, false, newConfig(opts))
	e, err := ui.Attach(n, sceneui.WithKind(sceneui.KindButton))
	if err != nil {
		n.Destroy()
		return nil, fmt.Errorf("button %q: %w", label, err)
	}
	return e, nil
}

// NewCheckbox adds a checkbox labelled label to parent.
func NewCheckbox(ui *sceneui.UI, parent *sceneui.Node, label string, checked bool, opts ...Option) (*sceneui.Element, error) {
	n := build(ui, parent, label, true, newConfig(opts))
	e, err := ui.Attach(n, sceneui.WithKind(sceneui.KindCheckbox), sceneui.WithChecked(checked))
	if err != nil {
		n.Destroy()
		return nil, fmt.Errorf("checkbox %q: %w", label, err)
	}
	return e, nil
}

// NewRadio adds a radio button in group to parent.
func NewRadio(ui *sceneui.UI, parent *sceneui.Node, label, group string, checked bool, opts ...Option) (*sceneui.Element, error) {
	n := build(ui, parent, label, true, newConfig(opts))
	e, err := ui.Attach(n,
		sceneui.WithKind(sceneui.KindRadio),
		sceneui.WithGroup(group),
		sceneui.WithChecked(checked),
	)
	if err != nil {
		n.Destroy()
		return nil, fmt.Errorf("radio %q: %w", label, err)
	}
	return e, nil
}

// NewCustom adds a widget with a custom element kind named kind. It has the
// button's look and no check semantics.
func NewCustom(ui *sceneui.UI, parent *sceneui.Node, label, kind string, opts ...Option) (*sceneui.Element, error) {
	n := build(ui, parent, label, false, newConfig(opts))
	e, err := ui.Attach(n, sceneui.WithCustomKind(kind))
	if err != nil {
		n.Destroy()
		return nil, fmt.Errorf("%s %q: %w", kind, label, err)
	}
	return e, nil
}

// NewGroupBox adds an empty panel named name to parent and makes it a
// container. The panel is resized to fit its children after every layout
// pass unless a size is given with sceneui.WithSize.
func NewGroupBox(scene *sceneui.Scene, parent *sceneui.Node, name string, nodeOpts []sceneui.NodeOption, opts ...sceneui.ContainerOption) (*sceneui.Container, error) {
	n := scene.NewNode(name, append([]sceneui.NodeOption{sceneui.WithTags(TagGroupBox)}, nodeOpts...)...)
	if parent == nil {
		parent = scene.Root()
	}
	parent.AddChild(n)
	if n.Size() == (sceneui.Size{}) {
		opts = append([]sceneui.ContainerOption{sceneui.WithFit()}, opts...)
	}
	c, err := sceneui.NewContainer(n, opts...)
	if err != nil {
		n.Destroy()
		return nil, fmt.Errorf("group box %q: %w", name, err)
	}
	return c, nil
}
