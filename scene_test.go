package sceneui

import "testing"

func TestNode_Tags(t *testing.T) {
	s := NewScene()
	n := s.NewNode("n", WithTags("b", "a"))

	n.Tag("c", "a")
	if got, want := n.Tags(), []string{"a", "b", "c"}; !equalStrings(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
	if !n.IsAll("a", "c") || n.IsAll("a", "z") {
		t.Error("IsAll mismatch")
	}

	n.Untag("a", "missing")
	if n.Is("a") {
		t.Error("Is(a) after Untag = true")
	}
	if !n.IsAll() {
		t.Error("IsAll() with no tags should match")
	}
}

func TestNode_AddChildReparents(t *testing.T) {
	s := NewScene()
	a := s.NewNode("a")
	b := s.NewNode("b")
	c := s.NewNode("c")
	s.Root().AddChild(a, b)
	a.AddChild(c)

	b.AddChild(c)

	if len(a.Children()) != 0 {
		t.Errorf("a.Children() = %v, want none", a.Children())
	}
	if c.Parent() != b {
		t.Errorf("c.Parent() = %v, want b", c.Parent())
	}
}

func TestNode_RemoveChildKeepsOrder(t *testing.T) {
	s := NewScene()
	var kids []*Node
	for _, name := range []string{"a", "b", "c", "d"} {
		n := s.NewNode(name)
		kids = append(kids, n)
		s.Root().AddChild(n)
	}

	if !s.Root().RemoveChild(kids[1]) {
		t.Fatal("RemoveChild returned false")
	}
	if s.Root().RemoveChild(kids[1]) {
		t.Error("second RemoveChild returned true")
	}

	var names []string
	for _, n := range s.Root().Children() {
		names = append(names, n.Name())
	}
	if want := []string{"a", "c", "d"}; !equalStrings(names, want) {
		t.Errorf("children = %v, want %v", names, want)
	}
	if kids[1].Attached() {
		t.Error("removed node still attached")
	}
}

func TestNode_WorldPosAndContains(t *testing.T) {
	type tc struct {
		x, y float64
		want bool
	}

	s := NewScene()
	panel := s.NewNode("panel", WithPos(100, 50))
	btn := s.NewNode("btn", WithPos(10, 5), WithSize(30, 20))
	panel.AddChild(btn)
	s.Root().AddChild(panel)

	if got, want := btn.WorldPos(), V(110, 55); got != want {
		t.Fatalf("WorldPos() = %v, want %v", got, want)
	}

	tests := map[string]tc{
		"inside":          {x: 120, y: 60, want: true},
		"top left corner": {x: 110, y: 55, want: true},
		"right edge":      {x: 140, y: 60, want: false},
		"bottom edge":     {x: 120, y: 75, want: false},
		"local coords":    {x: 15, y: 10, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := btn.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestScene_QueryAndFind(t *testing.T) {
	s := NewScene()
	panel := s.NewNode("panel", WithTags("container"))
	a := s.NewNode("a", WithTags("x", "y"))
	b := s.NewNode("b", WithTags("x"))
	c := s.NewNode("c", WithTags("x", "y"))
	panel.AddChild(a, b)
	s.Root().AddChild(panel, c)

	got := s.Query("x", "y")
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("Query(x, y) = %v, want [a c]", got)
	}
	if all := s.Query(); len(all) != 4 {
		t.Errorf("Query() returned %d nodes, want 4", len(all))
	}
	if sub := panel.Query("x"); len(sub) != 2 {
		t.Errorf("panel.Query(x) = %v, want [a b]", sub)
	}
	if s.Find("b") != b {
		t.Errorf("Find(b) = %v", s.Find("b"))
	}
	if s.Find("root") != nil {
		t.Error("Find should not return the root")
	}
	if s.Find("missing") != nil {
		t.Error("Find(missing) should be nil")
	}
}

func TestScene_WalkSkipsSubtree(t *testing.T) {
	s := NewScene()
	panel := s.NewNode("panel")
	panel.AddChild(s.NewNode("hidden"))
	s.Root().AddChild(panel, s.NewNode("after"))

	var names []string
	s.Walk(func(n *Node) bool {
		names = append(names, n.Name())
		return n != panel
	})

	if want := []string{"panel", "after"}; !equalStrings(names, want) {
		t.Errorf("walk = %v, want %v", names, want)
	}
}

func TestScene_HitTestTopmost(t *testing.T) {
	s := NewScene()
	back := s.NewNode("back", WithSize(100, 100))
	front := s.NewNode("front", WithPos(20, 20), WithSize(20, 20))
	child := s.NewNode("child", WithPos(5, 5), WithSize(5, 5))
	back.AddChild(child)
	s.Root().AddChild(back, front)

	type tc struct {
		x, y float64
		want *Node
	}

	tests := map[string]tc{
		"later sibling wins":    {x: 25, y: 25, want: front},
		"child beats parent":    {x: 6, y: 6, want: child},
		"parent when no child":  {x: 80, y: 80, want: back},
		"outside everything":    {x: 200, y: 200, want: nil},
		"root is never hit":     {x: -1, y: -1, want: nil},
		"front covers back hit": {x: 39, y: 39, want: front},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := s.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNode_Destroy(t *testing.T) {
	s := NewScene()
	panel := s.NewNode("panel")
	a := s.NewNode("a")
	panel.AddChild(a)
	s.Root().AddChild(panel)
	before := s.Len()

	var order []string
	for _, n := range []*Node{panel, a} {
		n := n
		n.On(SignalDestroy, func(...any) { order = append(order, n.Name()) })
	}

	panel.Destroy()
	panel.Destroy()

	if want := []string{"panel", "a"}; !equalStrings(order, want) {
		t.Errorf("destroy order = %v, want %v", order, want)
	}
	if !a.Destroyed() || !panel.Destroyed() {
		t.Error("nodes not marked destroyed")
	}
	if s.Len() != before-2 {
		t.Errorf("Len() = %d, want %d", s.Len(), before-2)
	}
	if _, ok := s.Node(a.ID()); ok {
		t.Error("destroyed node still in scene")
	}
	if len(s.Root().Children()) != 0 {
		t.Error("destroyed node still a child of the root")
	}
}
