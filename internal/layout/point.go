package layout

// Vec2 represents an (X, Y) pair. It is used for positions as well as for
// per-axis padding and spacing.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Uniform returns a Vec2 with both components set to n.
func Uniform(n float64) Vec2 {
	return Vec2{X: n, Y: n}
}

// Add returns a new Vec2 offset by other.
func (p Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Vec2 with other subtracted.
func (p Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point lies inside the rectangle spanned by origin
// and size. Edges on the far side are exclusive.
func (p Vec2) In(origin Vec2, size Size) bool {
	return p.X >= origin.X && p.X < origin.X+size.Width &&
		p.Y >= origin.Y && p.Y < origin.Y+size.Height
}

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}
