// Package preview renders decoded ILDA frames to raster images so an export
// can be eyeballed without projector hardware.
package preview

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lumen-data/laserpath/internal/ilda"
)

// defaultImageSize is the rendered square's edge length.
const defaultImageSize = 6 * vg.Inch

// Options controls rendering of one frame.
type Options struct {
	// Palette is used for indexed formats. When nil, the file's embedded
	// palette is used if present, else the IDTF14-style default. True-color
	// frames ignore it.
	Palette []ilda.RGB

	// Size is the output edge length; zero means the default.
	Size vg.Length
}

// stroke is a maximal run of consecutive visible points. The blanked point
// opening each outline is a repositioning move and is never drawn.
type stroke struct {
	points []ilda.Point
}

// RenderFrame builds a plot of one frame: visible strokes as lines on a
// black background, axes hidden, fixed to the full device coordinate range
// so consecutive frames render at a stable scale.
func RenderFrame(frame ilda.Frame, palette []ilda.RGB) (*plot.Plot, error) {
	p := plot.New()
	p.BackgroundColor = color.Black
	p.HideAxes()
	p.X.Min, p.X.Max = ilda.MinCoord, ilda.MaxCoord
	p.Y.Min, p.Y.Max = ilda.MinCoord, ilda.MaxCoord

	for _, st := range splitStrokes(frame.Points) {
		c := pointColor(st.points[0], frame.Format, palette)

		if len(st.points) == 1 {
			pts := plotter.XYs{{X: float64(st.points[0].X), Y: float64(st.points[0].Y)}}
			scatter, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, err
			}
			scatter.GlyphStyle.Color = c
			scatter.GlyphStyle.Radius = vg.Points(1.5)
			p.Add(scatter)
			continue
		}

		pts := make(plotter.XYs, 0, len(st.points))
		for _, dp := range st.points {
			pts = append(pts, plotter.XY{X: float64(dp.X), Y: float64(dp.Y)})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = c
		line.Width = vg.Points(1.5)
		p.Add(line)
	}

	return p, nil
}

// SavePNG decodes frame frameIndex (zero-based) of file and writes it as a
// PNG at outPath.
func SavePNG(file *ilda.File, frameIndex int, opts Options, outPath string) error {
	if len(file.Frames) == 0 {
		return fmt.Errorf("preview: file contains no frames")
	}
	if frameIndex < 0 || frameIndex >= len(file.Frames) {
		return fmt.Errorf("preview: frame index %d out of range [0,%d)", frameIndex, len(file.Frames))
	}
	frame := file.Frames[frameIndex]

	palette := opts.Palette
	if palette == nil {
		palette = file.Palette
	}
	if palette == nil {
		palette = ilda.PaletteIDTF14()
	}

	p, err := RenderFrame(frame, palette)
	if err != nil {
		return fmt.Errorf("preview: render frame %d: %w", frameIndex, err)
	}

	size := opts.Size
	if size == 0 {
		size = defaultImageSize
	}
	if err := p.Save(size, size, outPath); err != nil {
		return fmt.Errorf("preview: save %s: %w", outPath, err)
	}
	return nil
}

// splitStrokes groups the point list into drawable runs. A blanked point
// terminates the current run; the visible point after it starts the next.
func splitStrokes(points []ilda.Point) []stroke {
	var strokes []stroke
	var cur []ilda.Point
	for _, p := range points {
		if p.Blanked {
			if len(cur) > 0 {
				strokes = append(strokes, stroke{points: cur})
				cur = nil
			}
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		strokes = append(strokes, stroke{points: cur})
	}
	return strokes
}

func pointColor(p ilda.Point, format ilda.Format, palette []ilda.RGB) color.RGBA {
	if format.TrueColor() {
		return color.RGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: 255}
	}
	c := ilda.RGB{R: 255, G: 255, B: 255}
	if int(p.ColorIndex) < len(palette) {
		c = palette[p.ColorIndex]
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
