package laser

import (
	"log"
	"math"

	"github.com/lumen-data/laserpath/internal/ilda"
	"github.com/lumen-data/laserpath/internal/vecpath"
)

// Normalizer maps source-space coordinates into the signed 16-bit device
// envelope. One Normalizer serves every frame of an export: rebuilding it
// per frame would let the scale drift with per-frame content and make shapes
// pulse over time.
type Normalizer struct {
	cx      float64
	cy      float64
	scale   float64
	refSpan float64
	invertY bool
}

// NewNormalizer builds the shared mapping from the filtered global box.
//
// The scale is k = (32767 · fillRatio) / (S/2), where S is the reference
// span selected by the fit axis. A zero span (single point, or no geometry
// at all) is substituted with 1 so the mapping stays defined; the result is
// a degenerate but non-crashing point at the device origin.
func NewNormalizer(box vecpath.BoundingBox, p Profile) *Normalizer {
	spanX := box.SpanX()
	spanY := box.SpanY()

	var ref float64
	switch p.FitAxis {
	case FitMin:
		ref = math.Min(spanX, spanY)
	case FitX:
		ref = spanX
	case FitY:
		ref = spanY
	default:
		ref = math.Max(spanX, spanY)
	}
	if ref == 0 {
		log.Printf("laser: global span is zero on axis %q; using fallback scale", p.FitAxis)
		ref = 1
	}

	cx, cy := box.Center()
	return &Normalizer{
		cx:      cx,
		cy:      cy,
		scale:   (ilda.MaxCoord * p.FillRatio) / (ref / 2),
		refSpan: ref,
		invertY: p.InvertY,
	}
}

// RefSpan returns the reference span the scale was derived from; the path
// filter measures relative outline size against the same span so that
// filtering and scaling agree.
func (n *Normalizer) RefSpan() float64 { return n.refSpan }

// Map converts one source point to device coordinates. Output is inside the
// device range by construction; clamping only backstops rounding at the
// extremes.
func (n *Normalizer) Map(p vecpath.Point) (x, y int16) {
	nx := (p.X - n.cx) * n.scale
	var ny float64
	if n.invertY {
		ny = (n.cy - p.Y) * n.scale
	} else {
		ny = (p.Y - n.cy) * n.scale
	}
	return clampCoord(nx), clampCoord(ny)
}

func clampCoord(v float64) int16 {
	r := math.Round(v)
	if r < ilda.MinCoord {
		return ilda.MinCoord
	}
	if r > ilda.MaxCoord {
		return ilda.MaxCoord
	}
	return int16(r)
}
