package sceneui

// Scene owns the node tree. It is the host side of the UI layer: elements
// and containers attach behavior to nodes the scene created.
type Scene struct {
	root   *Node
	nodes  map[NodeID]*Node
	nextID NodeID
}

// NewScene creates a scene with an empty root node.
func NewScene() *Scene {
	s := &Scene{nodes: make(map[NodeID]*Node)}
	s.root = s.NewNode("root")
	return s
}

// Root returns the root node. The root itself is never returned by queries.
func (s *Scene) Root() *Node {
	return s.root
}

// NewNode creates a detached node. Attach it with AddChild.
func (s *Scene) NewNode(name string, opts ...NodeOption) *Node {
	s.nextID++
	n := &Node{
		id:    s.nextID,
		name:  name,
		scene: s,
	}
	for _, opt := range opts {
		opt(n)
	}
	s.nodes[n.id] = n
	return n
}

// Node looks up a live node by ID.
func (s *Scene) Node(id NodeID) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Len returns the number of live nodes, including the root and detached
// nodes.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Walk visits every node below the root in depth-first pre-order.
func (s *Scene) Walk(fn func(*Node) bool) {
	s.root.Walk(fn)
}

// Query returns every node in the tree carrying all of tags, in traversal
// order.
func (s *Scene) Query(tags ...string) []*Node {
	return s.root.Query(tags...)
}

// Find returns the first node in traversal order with the given name.
func (s *Scene) Find(name string) *Node {
	var found *Node
	s.root.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// HitTest returns the topmost node containing the scene-space point, or nil.
// Later nodes in traversal order paint over earlier ones, so the search runs
// backward.
func (s *Scene) HitTest(x, y float64) *Node {
	var order []*Node
	s.root.Walk(func(n *Node) bool {
		order = append(order, n)
		return true
	})
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].Contains(x, y) {
			return order[i]
		}
	}
	return nil
}
