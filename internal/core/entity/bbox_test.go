package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBox_Area(t *testing.T) {
	b := BoundingBox{X: 10, Y: 20, Width: 4, Height: 5}
	assert.Equal(t, 20.0, b.Area())
}

func TestBoundingBox_Valid(t *testing.T) {
	tests := []struct {
		name string
		box  BoundingBox
		want bool
	}{
		{"positive width and height", BoundingBox{Width: 1, Height: 1}, true},
		{"zero width is a degenerate but valid box", BoundingBox{Width: 0, Height: 1}, true},
		{"negative height", BoundingBox{Width: 1, Height: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.box.Valid())
		})
	}
}

func TestBoundingBox_IntersectionArea(t *testing.T) {
	a := BoundingBox{X: 0, Y: 0, Width: 10, Height: 10}
	b := BoundingBox{X: 5, Y: 5, Width: 10, Height: 10}
	assert.Equal(t, 25.0, a.IntersectionArea(b))

	c := BoundingBox{X: 100, Y: 100, Width: 10, Height: 10}
	assert.Equal(t, 0.0, a.IntersectionArea(c))
}

func TestBoundingBox_OverlapsSignificantly(t *testing.T) {
	a := BoundingBox{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name      string
		other     BoundingBox
		threshold float64
		want      bool
	}{
		{"full overlap exceeds threshold", BoundingBox{X: 0, Y: 0, Width: 10, Height: 10}, 0.5, true},
		{"no overlap", BoundingBox{X: 100, Y: 100, Width: 5, Height: 5}, 0.5, false},
		{"partial overlap below threshold", BoundingBox{X: 9, Y: 9, Width: 10, Height: 10}, 0.5, false},
		{"small box mostly inside large box", BoundingBox{X: 1, Y: 1, Width: 2, Height: 2}, 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.OverlapsSignificantly(tt.other, tt.threshold))
		})
	}
}
