package layout

// Layoutable is the interface for anything that can be positioned by a
// container. The layout engine works entirely with this interface.
type Layoutable interface {
	// Size returns the current size of the child. Sizes are read, never
	// written, by the engine.
	Size() Size

	// SetPos is called by the engine to store the computed position,
	// relative to the container.
	SetPos(Vec2)
}
