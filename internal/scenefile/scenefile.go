// Package scenefile reads TOML scene documents: one panel container and the
// widgets it holds. Build turns a document into live nodes and elements.
//
// Example document:
//
//	[panel]
//	type = "column"
//	padding = 5
//	spacing = 5
//	columns = 2
//	max_width = 170
//
//	[[widget]]
//	kind = "button"
//	label = "Action"
//
//	[[widget]]
//	kind = "radio"
//	label = "Flex"
//	group = "layout"
//	select_layout = "flex"
package scenefile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	sceneui "github.com/grindlemire/go-sceneui"
	"github.com/grindlemire/go-sceneui/internal/debug"
	"github.com/grindlemire/go-sceneui/widget"
)

// Document is a decoded scene file.
type Document struct {
	Title   string   `toml:"title"`
	Panel   Panel    `toml:"panel"`
	Widgets []Widget `toml:"widget"`
}

// Panel describes the container every widget is added to.
type Panel struct {
	Name     string  `toml:"name"`
	Type     string  `toml:"type"`
	X        float64 `toml:"x"`
	Y        float64 `toml:"y"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Padding  float64 `toml:"padding"`
	Spacing  float64 `toml:"spacing"`
	Columns  int     `toml:"columns"`
	MaxWidth float64 `toml:"max_width"`
}

// Widget describes one element in the panel.
type Widget struct {
	Kind     string  `toml:"kind"`
	Label    string  `toml:"label"`
	Group    string  `toml:"group"`
	Checked  bool    `toml:"checked"`
	MinWidth float64 `toml:"min_width"`
	// SelectLayout switches the panel's layout type when the widget becomes
	// checked.
	SelectLayout string `toml:"select_layout"`
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid scene document")

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document for mistakes Build would otherwise hit
// halfway through.
func (d *Document) Validate() error {
	if d.Panel.Type != "" {
		typ, err := sceneui.ParseLayoutType(d.Panel.Type)
		if err != nil {
			return fmt.Errorf("%w: panel: %w", ErrInvalid, err)
		}
		if typ == sceneui.LayoutGrid && d.Panel.Columns < 1 {
			return fmt.Errorf("%w: panel: %w", ErrInvalid, sceneui.ErrGridColumns)
		}
	}

	seen := make(map[string]bool, len(d.Widgets))
	for i, w := range d.Widgets {
		if w.Label == "" {
			return fmt.Errorf("%w: widget[%d]: label is required", ErrInvalid, i)
		}
		if seen[w.Label] {
			return fmt.Errorf("%w: widget %q: duplicate label", ErrInvalid, w.Label)
		}
		seen[w.Label] = true

		switch w.kind() {
		case "radio":
			if w.Group == "" {
				return fmt.Errorf("%w: widget %q: %w", ErrInvalid, w.Label, sceneui.ErrRadioGroupRequired)
			}
		case "button":
			if w.Checked {
				return fmt.Errorf("%w: widget %q: buttons cannot be checked", ErrInvalid, w.Label)
			}
		}
		if w.SelectLayout != "" {
			if _, err := sceneui.ParseLayoutType(w.SelectLayout); err != nil {
				return fmt.Errorf("%w: widget %q: %w", ErrInvalid, w.Label, err)
			}
		}
	}
	return nil
}

// kind normalizes the widget kind. An empty kind is a button.
func (w Widget) kind() string {
	k := strings.ToLower(strings.TrimSpace(w.Kind))
	switch k {
	case "", "button":
		return "button"
	case "radio", "radiobutton":
		return "radio"
	default:
		return k
	}
}

// Built is a document turned into live nodes.
type Built struct {
	Panel    *sceneui.Container
	Elements map[string]*sceneui.Element
	// Order lists widget labels in document order.
	Order []string
}

// Element returns the element built for the widget with label.
func (b *Built) Element(label string) *sceneui.Element {
	return b.Elements[label]
}

// Build adds the panel and its widgets to ui's scene. Initially checked
// radio buttons apply their select_layout before Build returns.
func (d *Document) Build(ui *sceneui.UI) (*Built, error) {
	scene := ui.Scene()
	p := d.Panel
	name := p.Name
	if name == "" {
		name = "panel"
	}

	nodeOpts := []sceneui.NodeOption{sceneui.WithPos(p.X, p.Y)}
	if p.Width > 0 || p.Height > 0 {
		nodeOpts = append(nodeOpts, sceneui.WithSize(p.Width, p.Height))
	}
	containerOpts := []sceneui.ContainerOption{
		sceneui.WithPadding(p.Padding),
		sceneui.WithSpacing(p.Spacing),
		sceneui.WithColumns(p.Columns),
	}
	if p.Type != "" {
		typ, err := sceneui.ParseLayoutType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("panel: %w", err)
		}
		containerOpts = append(containerOpts, sceneui.WithLayoutType(typ))
	}
	if p.MaxWidth > 0 {
		containerOpts = append(containerOpts, sceneui.WithMaxWidth(p.MaxWidth))
	}

	panel, err := widget.NewGroupBox(scene, nil, name, nodeOpts, containerOpts...)
	if err != nil {
		return nil, err
	}

	built := &Built{Panel: panel, Elements: make(map[string]*sceneui.Element, len(d.Widgets))}
	for _, w := range d.Widgets {
		e, err := buildWidget(ui, panel, w)
		if err != nil {
			panel.Node().Destroy()
			return nil, err
		}
		built.Elements[w.Label] = e
		built.Order = append(built.Order, w.Label)
	}
	panel.DoLayout()
	debug.Log("scenefile.Build: %s widgets=%d type=%s", panel.Node(), len(built.Order), panel.Type())
	return built, nil
}

func buildWidget(ui *sceneui.UI, panel *sceneui.Container, w Widget) (*sceneui.Element, error) {
	opts := []widget.Option{widget.WithMinWidth(w.MinWidth)}
	parent := panel.Node()

	var (
		e   *sceneui.Element
		err error
	)
	switch k := w.kind(); k {
	case "button":
		e, err = widget.NewButton(ui, parent, w.Label, opts...)
	case "checkbox":
		e, err = widget.NewCheckbox(ui, parent, w.Label, w.Checked, opts...)
	case "radio":
		// Subscribe before the initial check so select_layout applies.
		e, err = widget.NewRadio(ui, parent, w.Label, w.Group, false, opts...)
		if err == nil {
			bindLayout(panel, e, w.SelectLayout)
			if w.Checked {
				ui.RadioGroup(w.Group).Select(e)
			}
			return e, nil
		}
	default:
		e, err = widget.NewCustom(ui, parent, w.Label, k, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("widget %q: %w", w.Label, err)
	}
	bindLayout(panel, e, w.SelectLayout)
	return e, nil
}

func bindLayout(panel *sceneui.Container, e *sceneui.Element, layout string) {
	if layout == "" {
		return
	}
	typ, err := sceneui.ParseLayoutType(layout)
	if err != nil {
		return
	}
	e.OnChecked(func(checked bool) {
		if checked {
			panel.SetType(typ)
		}
	})
}
