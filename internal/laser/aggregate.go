package laser

import (
	"log"

	"github.com/lumen-data/laserpath/internal/vecpath"
)

// Aggregate is the result of the global geometry pass: the pre-filter
// bounding box over every outline of every frame, and the filtered box after
// outer-frame artifacts were excluded. When filtering would have removed
// everything, the marking is discarded and Filtered equals Global.
type Aggregate struct {
	Global   vecpath.BoundingBox
	Filtered vecpath.BoundingBox

	Outlines    int  // total outlines seen
	OuterFrames int  // outlines marked as outer-frame artifacts
	Reverted    bool // marking was discarded to avoid an empty box
	Empty       bool // no outlines at all; both boxes are zero
}

// Analyze runs the global two-pass computation over all frames. It must
// complete before any per-frame assembly because the normalizer mapping is
// derived from Filtered and shared across the whole animation.
//
// Outer-frame detection marks each outline independently against the
// pre-filter global box: the outline's bbox area must cover at least
// p.AreaRatio of the global area AND at least p.EdgeFraction of its points
// must lie within p.FrameMarginRel of a global edge. Vectorizing bordered
// footage typically traces the canvas border as one such rectangle; it does
// not exist in the original footage, so it must not reach the laser.
func Analyze(frames []*vecpath.FrameGeometry, p Profile) *Aggregate {
	agg := &Aggregate{}

	var global vecpath.BoundingBox
	for _, f := range frames {
		for _, o := range f.Outlines {
			if agg.Outlines == 0 {
				global = o.Bounds
			} else {
				global = global.Union(o.Bounds)
			}
			agg.Outlines++
		}
	}
	if agg.Outlines == 0 {
		// Nothing to measure. The normalizer degrades to a unit span and
		// every frame becomes a placeholder.
		agg.Empty = true
		log.Printf("laser: no outlines in %d frames; export will contain placeholder frames only", len(frames))
		return agg
	}
	agg.Global = global
	agg.Filtered = global

	if !p.RemoveOuterFrame {
		return agg
	}

	for _, f := range frames {
		for _, o := range f.Outlines {
			if isOuterFrame(o, global, p) {
				o.OuterFrame = true
				agg.OuterFrames++
			}
		}
	}
	if agg.OuterFrames == 0 {
		return agg
	}

	// Recompute the box over surviving outlines. If everything was marked,
	// the heuristic misfired: revert rather than normalize against nothing.
	kept := 0
	var filtered vecpath.BoundingBox
	for _, f := range frames {
		for _, o := range f.Outlines {
			if o.OuterFrame {
				continue
			}
			if kept == 0 {
				filtered = o.Bounds
			} else {
				filtered = filtered.Union(o.Bounds)
			}
			kept++
		}
	}
	if kept == 0 {
		for _, f := range frames {
			for _, o := range f.Outlines {
				o.OuterFrame = false
			}
		}
		agg.OuterFrames = 0
		agg.Reverted = true
		log.Printf("laser: outer-frame filter marked all %d outlines; reverting to unfiltered bounds", agg.Outlines)
		return agg
	}

	agg.Filtered = filtered
	return agg
}

// isOuterFrame applies the two outer-frame criteria to one outline.
func isOuterFrame(o *vecpath.Outline, global vecpath.BoundingBox, p Profile) bool {
	globalArea := global.Area()
	if globalArea <= 0 {
		return false
	}
	if o.Bounds.Area()/globalArea < p.AreaRatio {
		return false
	}

	span := global.SpanX()
	if global.SpanY() > span {
		span = global.SpanY()
	}
	eps := p.FrameMarginRel * span

	onEdge := 0
	for _, pt := range o.Points {
		if pt.X-global.MinX <= eps || global.MaxX-pt.X <= eps ||
			pt.Y-global.MinY <= eps || global.MaxY-pt.Y <= eps {
			onEdge++
		}
	}
	return float64(onEdge)/float64(len(o.Points)) >= p.EdgeFraction
}
