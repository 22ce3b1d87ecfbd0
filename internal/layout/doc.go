// Package layout implements the arrangement algorithms used by layout
// containers: row, column, grid and greedy line-wrapping flex.
//
// The algorithms are pure: given the container's [Params] and the current
// child sizes they compute child positions (relative to the container) and
// the bounding size the children span. No state survives between calls.
// Types are re-exported through the root sceneui package for public
// consumption.
//
// The main entry point is [Calculate], which arranges a slice of
// [Layoutable] children in place. [Arrange] is the allocation-only variant
// used by tests and measurement code.
package layout
