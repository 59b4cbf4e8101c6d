package laser

import (
	"github.com/lumen-data/laserpath/internal/ilda"
	"github.com/lumen-data/laserpath/internal/vecpath"
)

// AssembleFrame converts one frame's surviving outlines into an ordered
// device-point list. The first mapped point of each outline is blanked — a
// beam-off repositioning move — and the rest draw with the beam on; joining
// outlines without the blanked jump would paint a stray line between them.
//
// A frame left with no points gets the single blanked placeholder at the
// origin, preserving the one-input-frame/one-output-frame invariant.
func AssembleFrame(frame *vecpath.FrameGeometry, n *Normalizer, p Profile, name string) ilda.Frame {
	out := ilda.Frame{
		Name:      name,
		Company:   p.Company,
		Projector: p.Projector,
		Format:    p.Format(),
	}

	for _, o := range SurvivingOutlines(frame, n.RefSpan(), p.MinRelSize) {
		for i, src := range o.Points {
			x, y := n.Map(src)
			out.Points = append(out.Points, ilda.Point{
				X:          x,
				Y:          y,
				Blanked:    i == 0,
				ColorIndex: p.ColorIndex,
				Color:      p.Color,
			})
		}
	}

	if len(out.Points) == 0 {
		out.Points = append(out.Points, ilda.Point{
			Blanked:    true,
			ColorIndex: p.ColorIndex,
			Color:      p.Color,
		})
	}
	return out
}
