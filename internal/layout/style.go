package layout

import (
	"fmt"
	"math"
)

// Type selects the arrangement algorithm.
type Type uint8

const (
	Row    Type = iota // Children left-to-right on a single line
	Column             // Children top-to-bottom
	Grid               // Fixed number of columns, column widths from the widest cell
	Flex               // Left-to-right, wrapping when MaxWidth is exceeded
)

var typeNames = [...]string{
	Row:    "row",
	Column: "column",
	Grid:   "grid",
	Flex:   "flex",
}

// String returns the lower-case name of the type, which is also the tag a
// container carries.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// ParseType parses a type name as produced by String.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}
	return Row, fmt.Errorf("unknown layout type %q", s)
}

// Params contains all layout properties for a container.
type Params struct {
	Type    Type
	Padding Vec2
	Spacing Vec2

	// Columns is the number of columns for Grid. Values below 1 place every
	// child in a single row.
	Columns int

	// MaxWidth bounds the line width for Flex. Ignored by the other types.
	MaxWidth float64
}

// DefaultParams returns a row layout without padding or spacing and an
// unbounded flex width.
func DefaultParams() Params {
	return Params{
		Type:     Row,
		MaxWidth: math.Inf(1),
	}
}
