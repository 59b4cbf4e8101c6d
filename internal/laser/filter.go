package laser

import "github.com/lumen-data/laserpath/internal/vecpath"

// SurvivingOutlines returns the outlines of one frame that reach the
// assembler: outer-frame artifacts are dropped, and so are outlines whose
// largest bbox dimension falls under minRelSize of the global reference
// span. The decision is frame-local and depends only on the fixed global
// scale, so it is reproducible and order-independent.
func SurvivingOutlines(frame *vecpath.FrameGeometry, refSpan, minRelSize float64) []*vecpath.Outline {
	kept := make([]*vecpath.Outline, 0, len(frame.Outlines))
	for _, o := range frame.Outlines {
		if o.OuterFrame {
			continue
		}
		size := o.Bounds.SpanX()
		if o.Bounds.SpanY() > size {
			size = o.Bounds.SpanY()
		}
		if refSpan > 0 && size/refSpan < minRelSize {
			continue
		}
		kept = append(kept, o)
	}
	return kept
}
