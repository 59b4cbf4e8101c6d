package vecpath

import "math"

// Point is a 2D point in source (vectorizer) coordinate space.
type Point struct {
	X float64
	Y float64
}

// BoundingBox is an axis-aligned bounding box in source coordinates.
// The zero value is not a valid box; use NewBoundingBox or Extend.
type BoundingBox struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// NewBoundingBox returns the degenerate box containing only p.
func NewBoundingBox(p Point) BoundingBox {
	return BoundingBox{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
}

// Extend grows the box to include p.
func (b BoundingBox) Extend(p Point) BoundingBox {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

// Union returns the smallest box containing both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	if other.MinX < b.MinX {
		b.MinX = other.MinX
	}
	if other.MaxX > b.MaxX {
		b.MaxX = other.MaxX
	}
	if other.MinY < b.MinY {
		b.MinY = other.MinY
	}
	if other.MaxY > b.MaxY {
		b.MaxY = other.MaxY
	}
	return b
}

// SpanX returns the horizontal extent of the box.
func (b BoundingBox) SpanX() float64 { return b.MaxX - b.MinX }

// SpanY returns the vertical extent of the box.
func (b BoundingBox) SpanY() float64 { return b.MaxY - b.MinY }

// Area returns the box area. Degenerate boxes have zero area.
func (b BoundingBox) Area() float64 { return b.SpanX() * b.SpanY() }

// Center returns the box midpoint.
func (b BoundingBox) Center() (cx, cy float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Outline is one sampled path: an ordered, non-empty polyline plus its
// derived bounding box. OuterFrame is set by the geometry aggregator when
// the outline is judged to be a scan artifact (the traced border of the
// source canvas) rather than real content; it is the only field mutated
// after construction.
type Outline struct {
	Points     []Point
	Bounds     BoundingBox
	OuterFrame bool
}

// NewOutline builds an Outline from points, deriving the bounding box.
// Points with non-finite coordinates are dropped. Returns nil if no usable
// points remain.
func NewOutline(points []Point) *Outline {
	kept := make([]Point, 0, len(points))
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil
	}
	bounds := NewBoundingBox(kept[0])
	for _, p := range kept[1:] {
		bounds = bounds.Extend(p)
	}
	return &Outline{Points: kept, Bounds: bounds}
}

// FrameGeometry holds the outlines belonging to one source video frame.
// A frame with no outlines is legal; the assembler substitutes a blanked
// placeholder point so the output frame count never changes.
type FrameGeometry struct {
	Outlines []*Outline
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
