package vecpath

// Segment sampling constants. Curves are flattened at a fixed density so
// polyline size stays bounded no matter how long the traced curve is; 24
// samples keeps potrace output visually faithful at laser resolution.
const (
	CurveSamples = 24 // polyline points generated per curved segment
)

// SegmentKind identifies the geometry of one path segment.
type SegmentKind int

const (
	SegmentLine      SegmentKind = iota // straight line: Start → End
	SegmentQuadratic                    // quadratic Bézier: Start, C1, End
	SegmentCubic                        // cubic Bézier: Start, C1, C2, End
)

// Segment is one piece of a vector outline as delivered by the vectorizer.
// C1 and C2 are control points; C2 is unused for quadratic segments and
// both are unused for lines.
type Segment struct {
	Kind  SegmentKind
	Start Point
	C1    Point
	C2    Point
	End   Point
}

// SampleSegments flattens a segment list into an Outline.
//
// Straight segments contribute their endpoints; curved segments are sampled
// at CurveSamples points each. Zero-length segments are skipped. Returns nil
// when the list produces no usable points — the caller proceeds with the
// frame's remaining outlines.
func SampleSegments(segments []Segment) *Outline {
	if len(segments) == 0 {
		return nil
	}

	pts := make([]Point, 0, len(segments)*2)
	first := true

	for _, seg := range segments {
		if first {
			pts = append(pts, seg.Start)
			first = false
		}

		switch seg.Kind {
		case SegmentLine:
			if seg.Start == seg.End {
				continue
			}
			pts = append(pts, seg.End)
		case SegmentQuadratic:
			if seg.Start == seg.End && seg.Start == seg.C1 {
				continue
			}
			for i := 1; i <= CurveSamples; i++ {
				t := float64(i) / CurveSamples
				pts = append(pts, quadraticAt(seg.Start, seg.C1, seg.End, t))
			}
		case SegmentCubic:
			if seg.Start == seg.End && seg.Start == seg.C1 && seg.Start == seg.C2 {
				continue
			}
			for i := 1; i <= CurveSamples; i++ {
				t := float64(i) / CurveSamples
				pts = append(pts, cubicAt(seg.Start, seg.C1, seg.C2, seg.End, t))
			}
		}
	}

	return NewOutline(pts)
}

// quadraticAt evaluates a quadratic Bézier at parameter t in [0,1].
func quadraticAt(p0, c, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

// cubicAt evaluates a cubic Bézier at parameter t in [0,1].
func cubicAt(p0, c1, c2, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*p1.X,
		Y: u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*p1.Y,
	}
}
