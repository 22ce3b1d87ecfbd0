package sceneui

// ElementOption configures an Element at attach time.
type ElementOption func(*elementConfig)

type elementConfig struct {
	kind       Kind
	customName string
	group      string
	checked    bool
}

// WithKind sets the element kind. The default is KindButton.
func WithKind(kind Kind) ElementOption {
	return func(c *elementConfig) {
		c.kind = kind
	}
}

// WithCustomKind makes the element a KindCustom element whose node is tagged
// with name instead of a built-in kind name.
func WithCustomKind(name string) ElementOption {
	return func(c *elementConfig) {
		c.kind = KindCustom
		c.customName = name
	}
}

// WithGroup sets the radio group. Required for KindRadio.
func WithGroup(group string) ElementOption {
	return func(c *elementConfig) {
		c.group = group
	}
}

// WithChecked sets the initial checked state of a checkbox or radio button.
// Ignored for other kinds.
func WithChecked(checked bool) ElementOption {
	return func(c *elementConfig) {
		c.checked = checked
	}
}
