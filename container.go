package sceneui

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-sceneui/internal/debug"
	"github.com/grindlemire/go-sceneui/internal/layout"
)

// ErrGridColumns is returned when a grid container is created without a
// positive column count.
var ErrGridColumns = errors.New("grid layout needs columns")

// Container is layout behavior attached to a node. It positions the node's
// children according to its type, padding, spacing, columns and max width.
// Every setter lays the children out again before returning.
type Container struct {
	node   *Node
	params layout.Params
	fit    bool
	last   Size
}

// NewContainer attaches layout behavior to node, tags the node with the
// layout type and performs the first layout pass.
func NewContainer(node *Node, opts ...ContainerOption) (*Container, error) {
	if node == nil {
		return nil, ErrNilNode
	}
	c := &Container{
		node:   node,
		params: layout.DefaultParams(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.params.Type == LayoutGrid && c.params.Columns < 1 {
		return nil, fmt.Errorf("container %s: %w", node, ErrGridColumns)
	}
	node.Tag(c.params.Type.String())
	c.DoLayout()
	return c, nil
}

// MustNewContainer is like NewContainer but panics on error.
func MustNewContainer(node *Node, opts ...ContainerOption) *Container {
	c, err := NewContainer(node, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Node returns the container node.
func (c *Container) Node() *Node { return c.node }

// DoLayout positions every child and returns the size the children span,
// including trailing padding. With fit enabled the container node is resized
// to that size.
func (c *Container) DoLayout() Size {
	children := c.node.Children()
	items := make([]layout.Layoutable, len(children))
	for i, child := range children {
		items[i] = child
	}
	bounds := layout.Calculate(c.params, items)
	if c.fit {
		c.node.SetSize(bounds)
	}
	c.last = bounds
	debug.Log("Container.DoLayout: %s type=%s children=%d bounds=%.1fx%.1f",
		c.node, c.params.Type, len(children), bounds.Width, bounds.Height)
	return bounds
}

// Bounds returns the size computed by the most recent layout pass.
func (c *Container) Bounds() Size { return c.last }

// --- Attributes ---

// Type returns the layout type.
func (c *Container) Type() LayoutType { return c.params.Type }

// SetType changes the layout type, retags the node and lays out again.
func (c *Container) SetType(t LayoutType) {
	c.node.Untag(c.params.Type.String())
	c.params.Type = t
	c.node.Tag(t.String())
	c.DoLayout()
}

// Padding returns the padding.
func (c *Container) Padding() Vec2 { return c.params.Padding }

// SetPadding changes the padding and lays out again.
func (c *Container) SetPadding(p Vec2) {
	c.params.Padding = p
	c.DoLayout()
}

// Spacing returns the spacing between children.
func (c *Container) Spacing() Vec2 { return c.params.Spacing }

// SetSpacing changes the spacing and lays out again.
func (c *Container) SetSpacing(s Vec2) {
	c.params.Spacing = s
	c.DoLayout()
}

// Columns returns the grid column count.
func (c *Container) Columns() int { return c.params.Columns }

// SetColumns changes the grid column count and lays out again. A count below
// 1 places every grid child in one row.
func (c *Container) SetColumns(n int) {
	c.params.Columns = n
	c.DoLayout()
}

// MaxWidth returns the flex line width limit.
func (c *Container) MaxWidth() float64 { return c.params.MaxWidth }

// SetMaxWidth changes the flex line width limit and lays out again.
func (c *Container) SetMaxWidth(w float64) {
	c.params.MaxWidth = w
	c.DoLayout()
}

// Fit reports whether the container resizes its node after each pass.
func (c *Container) Fit() bool { return c.fit }

// SetFit changes whether the container resizes its node and lays out again.
func (c *Container) SetFit(fit bool) {
	c.fit = fit
	c.DoLayout()
}
