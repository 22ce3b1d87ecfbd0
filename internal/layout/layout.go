package layout

import "math"

// Result holds the output of a layout pass.
type Result struct {
	// Positions holds one position per child, in child order.
	Positions []Vec2

	// Bounds is the size spanned by the placed children plus trailing
	// padding. An empty container measures twice its padding.
	Bounds Size
}

// Calculate arranges children according to p, stores each computed position
// through SetPos and returns the bounding size.
func Calculate(p Params, children []Layoutable) Size {
	sizes := make([]Size, len(children))
	for i, child := range children {
		sizes[i] = child.Size()
	}
	res := Arrange(p, sizes)
	for i, child := range children {
		child.SetPos(res.Positions[i])
	}
	return res.Bounds
}

// Arrange computes child positions for the given sizes without touching any
// node.
func Arrange(p Params, sizes []Size) Result {
	var pos []Vec2
	switch p.Type {
	case Column:
		pos = column(p, sizes)
	case Grid:
		pos = grid(p, sizes)
	case Flex:
		pos = flex(p, sizes)
	default:
		pos = row(p, sizes)
	}
	return Result{Positions: pos, Bounds: bounds(p, sizes, pos)}
}

// row places children left-to-right on a single line at padding.Y.
func row(p Params, sizes []Size) []Vec2 {
	out := make([]Vec2, len(sizes))
	pos := p.Padding
	for i, s := range sizes {
		out[i] = pos
		pos.X += s.Width + p.Spacing.X
	}
	return out
}

// column places children top-to-bottom at padding.X.
func column(p Params, sizes []Size) []Vec2 {
	out := make([]Vec2, len(sizes))
	pos := p.Padding
	for i, s := range sizes {
		out[i] = pos
		pos.Y += s.Height + p.Spacing.Y
	}
	return out
}

// grid lays children out in rows of p.Columns cells.
//
// Pass 1 fixes the vertical position of every row and records the widest
// cell of each column. Pass 2 fixes the horizontal position from the column
// widths. At the start of every row after the first the horizontal cursor
// returns to padding.X.
func grid(p Params, sizes []Size) []Vec2 {
	out := make([]Vec2, len(sizes))
	columns := p.Columns
	if columns < 1 {
		columns = max(len(sizes), 1)
	}

	// Pass 1: vertical position, column widths.
	colWidth := make([]float64, columns)
	pos := p.Padding
	col := 0
	maxHeight := 0.0
	for i, s := range sizes {
		out[i] = pos
		maxHeight = math.Max(maxHeight, s.Height)
		colWidth[col] = math.Max(colWidth[col], s.Width)
		col++
		if col == columns {
			pos.Y += maxHeight + p.Spacing.Y
			col = 0
			maxHeight = 0
		}
	}

	// Pass 2: horizontal position.
	x := p.Padding.X
	col = 0
	for i := range sizes {
		out[i].X = x
		x += colWidth[col] + p.Spacing.X
		col++
		if col == columns {
			x = p.Padding.X
			col = 0
		}
	}
	return out
}

// flex places children left-to-right and starts a new line whenever the next
// child would cross MaxWidth. Every line holds at least one child.
func flex(p Params, sizes []Size) []Vec2 {
	out := make([]Vec2, len(sizes))
	pos := p.Padding
	lineHeight := 0.0
	for i, s := range sizes {
		if i > 0 && pos.X+s.Width > p.MaxWidth {
			// Not enough room left on this line.
			pos.Y += lineHeight + p.Spacing.Y
			out[i] = Vec2{X: p.Padding.X, Y: pos.Y}
			pos.X = p.Padding.X + s.Width + p.Spacing.X
			lineHeight = s.Height
			continue
		}
		out[i] = pos
		lineHeight = math.Max(lineHeight, s.Height)
		pos.X += s.Width + p.Spacing.X
	}
	return out
}

// bounds returns the far corner of the placed children plus trailing padding.
func bounds(p Params, sizes []Size, pos []Vec2) Size {
	right, bottom := p.Padding.X, p.Padding.Y
	for i, s := range sizes {
		right = math.Max(right, pos[i].X+s.Width)
		bottom = math.Max(bottom, pos[i].Y+s.Height)
	}
	return Size{Width: right + p.Padding.X, Height: bottom + p.Padding.Y}
}
