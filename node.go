package sceneui

import (
	"fmt"
	"slices"
	"sort"
)

// NodeID identifies a node within its scene. IDs are never reused.
type NodeID uint64

// Node is a positioned entity in the scene graph. Position is relative to the
// parent. Children are kept in insertion order, which is also traversal and
// paint order.
type Node struct {
	id    NodeID
	name  string
	scene *Scene

	// Tree structure
	parent   *Node
	children []*Node

	tags map[string]struct{}

	// Geometry
	pos  Vec2
	size Size

	label string

	events    Emitter
	destroyed bool
}

// NodeOption configures a Node at creation.
type NodeOption func(*Node)

// WithPos sets the node's position relative to its parent.
func WithPos(x, y float64) NodeOption {
	return func(n *Node) {
		n.pos = Vec2{X: x, Y: y}
	}
}

// WithSize sets the node's width and height.
func WithSize(width, height float64) NodeOption {
	return func(n *Node) {
		n.size = Size{Width: width, Height: height}
	}
}

// WithTags adds tags to the node.
func WithTags(tags ...string) NodeOption {
	return func(n *Node) {
		n.Tag(tags...)
	}
}

// WithLabel sets the node's label text.
func WithLabel(label string) NodeOption {
	return func(n *Node) {
		n.label = label
	}
}

// ID returns the node's scene-unique identifier.
func (n *Node) ID() NodeID { return n.id }

// Name returns the name the node was created with.
func (n *Node) Name() string { return n.name }

// Scene returns the scene that created the node.
func (n *Node) Scene() *Scene { return n.scene }

func (n *Node) String() string {
	return fmt.Sprintf("%s#%d", n.name, n.id)
}

// --- Tags ---

// Tag adds the given tags. Adding a tag twice is a no-op.
func (n *Node) Tag(tags ...string) {
	if n.tags == nil {
		n.tags = make(map[string]struct{}, len(tags))
	}
	for _, t := range tags {
		n.tags[t] = struct{}{}
	}
}

// Untag removes the given tags.
func (n *Node) Untag(tags ...string) {
	for _, t := range tags {
		delete(n.tags, t)
	}
}

// Is reports whether the node carries tag.
func (n *Node) Is(tag string) bool {
	_, ok := n.tags[tag]
	return ok
}

// IsAll reports whether the node carries every tag in tags.
func (n *Node) IsAll(tags ...string) bool {
	for _, t := range tags {
		if !n.Is(t) {
			return false
		}
	}
	return true
}

// Tags returns the node's tags in sorted order.
func (n *Node) Tags() []string {
	out := make([]string, 0, len(n.tags))
	for t := range n.tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// --- Geometry ---

// Pos returns the position relative to the parent.
func (n *Node) Pos() Vec2 { return n.pos }

// SetPos moves the node relative to its parent.
func (n *Node) SetPos(p Vec2) { n.pos = p }

// Size returns the node's width and height.
func (n *Node) Size() Size { return n.size }

// SetSize resizes the node.
func (n *Node) SetSize(s Size) { n.size = s }

// Width returns the node's width.
func (n *Node) Width() float64 { return n.size.Width }

// Height returns the node's height.
func (n *Node) Height() float64 { return n.size.Height }

// WorldPos returns the node's position in scene coordinates.
func (n *Node) WorldPos() Vec2 {
	p := n.pos
	for a := n.parent; a != nil; a = a.parent {
		p = p.Add(a.pos)
	}
	return p
}

// Contains reports whether the scene-space point (x, y) lies inside the node.
func (n *Node) Contains(x, y float64) bool {
	return Vec2{X: x, Y: y}.In(n.WorldPos(), n.size)
}

// Label returns the node's label text.
func (n *Node) Label() string { return n.label }

// SetLabel sets the node's label text.
func (n *Node) SetLabel(label string) { n.label = label }

// --- Tree ---

// Parent returns the parent node, or nil for the root and detached nodes.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in insertion order.
func (n *Node) Children() []*Node { return n.children }

// AddChild appends children to this node, detaching each from its previous
// parent first.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.children = append(n.children, child)
	}
}

// RemoveChild detaches child from this node, preserving the order of the
// remaining children. Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	return true
}

// Attached reports whether the node is reachable from its scene's root.
func (n *Node) Attached() bool {
	for a := n; a != nil; a = a.parent {
		if a.scene != nil && a == a.scene.root {
			return true
		}
	}
	return false
}

// Destroy detaches the node and removes it and its subtree from the scene.
// SignalDestroy is emitted on every destroyed node, parent before children.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	n.destroyRecursive()
}

func (n *Node) destroyRecursive() {
	n.destroyed = true
	n.events.Emit(SignalDestroy)
	if n.scene != nil {
		delete(n.scene.nodes, n.id)
	}
	children := n.children
	n.children = nil
	for _, child := range children {
		child.parent = nil
		child.destroyRecursive()
	}
}

// Destroyed reports whether Destroy has been called on the node or an
// ancestor.
func (n *Node) Destroyed() bool { return n.destroyed }

// Walk visits every descendant in depth-first pre-order. Returning false from
// fn skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	for _, child := range n.children {
		if fn(child) {
			child.Walk(fn)
		}
	}
}

// Query returns every descendant carrying all of tags, in traversal order.
// An empty tag list matches every descendant.
func (n *Node) Query(tags ...string) []*Node {
	var out []*Node
	n.Walk(func(d *Node) bool {
		if d.IsAll(tags...) {
			out = append(out, d)
		}
		return true
	})
	return out
}

// --- Signals ---

// On subscribes fn to signal on this node.
func (n *Node) On(signal Signal, fn Handler) Subscription {
	return n.events.On(signal, fn)
}

// Emit fires signal on this node with an optional payload.
func (n *Node) Emit(signal Signal, args ...any) {
	n.events.Emit(signal, args...)
}
