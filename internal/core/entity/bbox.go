// Package entity holds the detector's value types: bounding boxes, field
// types, candidates and the detection result returned to callers.
package entity

import "fmt"

// BoundingBox is a rectangle in PDF user-space points, native PDF
// coordinate convention: origin at the bottom-left of the page, y
// increasing upward. Every strategy, the deduplicator, and the adapter
// share this convention so geometry never needs flipping downstream.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns width*height, or 0 for a degenerate box.
func (b BoundingBox) Area() float64 {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	return b.Width * b.Height
}

// Valid reports whether the box satisfies width >= 0 && height >= 0.
func (b BoundingBox) Valid() bool {
	return b.Width >= 0 && b.Height >= 0
}

// IntersectionArea returns the area shared by b and other.
func (b BoundingBox) IntersectionArea(other BoundingBox) float64 {
	x1 := max(b.X, other.X)
	y1 := max(b.Y, other.Y)
	x2 := min(b.X+b.Width, other.X+other.Width)
	y2 := min(b.Y+b.Height, other.Y+other.Height)

	w := x2 - x1
	h := y2 - y1
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// OverlapsSignificantly reports whether b and other overlap by more than
// threshold of either box's own area. Zero-area boxes never overlap
// significantly.
func (b BoundingBox) OverlapsSignificantly(other BoundingBox, threshold float64) bool {
	areaA, areaB := b.Area(), other.Area()
	if areaA == 0 || areaB == 0 {
		return false
	}
	inter := b.IntersectionArea(other)
	return inter/areaA > threshold || inter/areaB > threshold
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%.1f,%.1f %.1fx%.1f)", b.X, b.Y, b.Width, b.Height)
}
