package sceneui

// ContainerOption configures a Container at creation.
type ContainerOption func(*Container)

// WithLayoutType sets the layout type. The default is LayoutRow.
func WithLayoutType(t LayoutType) ContainerOption {
	return func(c *Container) {
		c.params.Type = t
	}
}

// WithPadding sets the same padding on both axes.
func WithPadding(n float64) ContainerOption {
	return func(c *Container) {
		c.params.Padding = Vec2{X: n, Y: n}
	}
}

// WithPaddingXY sets horizontal and vertical padding.
func WithPaddingXY(x, y float64) ContainerOption {
	return func(c *Container) {
		c.params.Padding = Vec2{X: x, Y: y}
	}
}

// WithSpacing sets the same spacing on both axes.
func WithSpacing(n float64) ContainerOption {
	return func(c *Container) {
		c.params.Spacing = Vec2{X: n, Y: n}
	}
}

// WithSpacingXY sets horizontal and vertical spacing.
func WithSpacingXY(x, y float64) ContainerOption {
	return func(c *Container) {
		c.params.Spacing = Vec2{X: x, Y: y}
	}
}

// WithColumns sets the grid column count.
func WithColumns(n int) ContainerOption {
	return func(c *Container) {
		c.params.Columns = n
	}
}

// WithMaxWidth sets the flex line width limit. The default is unbounded.
func WithMaxWidth(w float64) ContainerOption {
	return func(c *Container) {
		c.params.MaxWidth = w
	}
}

// WithFit resizes the container node to the laid-out bounds after every
// pass.
func WithFit() ContainerOption {
	return func(c *Container) {
		c.fit = true
	}
}
