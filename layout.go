// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package sceneui

import "github.com/grindlemire/go-sceneui/internal/layout"

// Vec2 represents an (X, Y) pair used for positions, padding and spacing.
type Vec2 = layout.Vec2

// Size represents a width/height pair.
type Size = layout.Size

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return layout.V(x, y)
}

// LayoutType selects how a container arranges its children.
type LayoutType = layout.Type

const (
	LayoutRow    = layout.Row
	LayoutColumn = layout.Column
	LayoutGrid   = layout.Grid
	LayoutFlex   = layout.Flex
)

// ParseLayoutType parses "row", "column", "grid" or "flex".
func ParseLayoutType(s string) (LayoutType, error) {
	return layout.ParseType(s)
}
