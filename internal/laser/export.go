package laser

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumen-data/laserpath/internal/ilda"
	"github.com/lumen-data/laserpath/internal/vecpath"
)

// ErrNoFrames is returned when an export is requested with zero input
// frames; there is nothing to write, not even placeholders.
var ErrNoFrames = errors.New("laser: no input frames")

// Result is the outcome of one export run. When the context was cancelled
// between frames, Complete is false and File holds the frames assembled so
// far — an explicitly partial result, never a silently truncated one.
type Result struct {
	File      *ilda.File
	Aggregate *Aggregate
	Complete  bool

	// PointsPerFrame mirrors File.Frames for cataloguing and reporting.
	PointsPerFrame []int
}

// TotalPoints sums the device points across all assembled frames.
func (r *Result) TotalPoints() int {
	total := 0
	for _, n := range r.PointsPerFrame {
		total += n
	}
	return total
}

// Export compiles the frame sequence into an ILDA file structure.
//
// The global pass (aggregation, outer-frame marking, normalizer
// construction) always runs to completion first. The per-frame loop is the
// cancellation checkpoint: ctx is consulted between frames, and on
// cancellation the partial Result is returned together with the context's
// error so the caller can distinguish a cancelled run from a failed one.
func Export(ctx context.Context, frames []*vecpath.FrameGeometry, p Profile) (*Result, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	agg := Analyze(frames, p)
	norm := NewNormalizer(agg.Filtered, p)

	res := &Result{
		File:      &ilda.File{Frames: make([]ilda.Frame, 0, len(frames))},
		Aggregate: agg,
	}
	if p.EmbedPalette && p.ColorMode == ColorIndexed {
		res.File.Palette = ilda.PaletteIDTF14()
	}

	for i, frame := range frames {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("laser: export cancelled after %d of %d frames: %w",
				i, len(frames), err)
		}
		name := fmt.Sprintf("%s%04d", p.FrameNamePrefix, i)
		out := AssembleFrame(frame, norm, p, name)
		res.File.Frames = append(res.File.Frames, out)
		res.PointsPerFrame = append(res.PointsPerFrame, len(out.Points))
	}

	res.Complete = true
	return res, nil
}

// ExportBytes runs Export and encodes the result, returning one complete
// .ild byte buffer.
func ExportBytes(ctx context.Context, frames []*vecpath.FrameGeometry, p Profile) ([]byte, *Result, error) {
	res, err := Export(ctx, frames, p)
	if err != nil {
		return nil, res, err
	}
	data, err := ilda.Encode(res.File)
	if err != nil {
		return nil, res, err
	}
	return data, res, nil
}
