// Package report renders an HTML summary of an export run: a line chart of
// device points per frame plus aggregate statistics. Point count is the best
// cheap proxy for scanner load — frames that spike above the mean flicker on
// galvo projectors, and the chart makes those frames easy to spot before a
// file ever reaches hardware.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the aggregate statistics shown under the chart title.
type Summary struct {
	Frames      int
	TotalPoints int
	MeanPoints  float64
	StdDev      float64
	MaxPoints   int
	EmptyFrames int // frames reduced to the single placeholder point
}

// Summarize computes aggregate statistics over per-frame point counts.
func Summarize(pointsPerFrame []int) Summary {
	s := Summary{Frames: len(pointsPerFrame)}
	if s.Frames == 0 {
		return s
	}

	counts := make([]float64, len(pointsPerFrame))
	for i, n := range pointsPerFrame {
		counts[i] = float64(n)
		s.TotalPoints += n
		if n > s.MaxPoints {
			s.MaxPoints = n
		}
		if n <= 1 {
			s.EmptyFrames++
		}
	}
	s.MeanPoints = stat.Mean(counts, nil)
	s.StdDev = stat.StdDev(counts, nil)
	return s
}

// Render writes the HTML report for one export run to w.
func Render(w io.Writer, title string, pointsPerFrame []int) error {
	s := Summarize(pointsPerFrame)

	x := make([]int, len(pointsPerFrame))
	y := make([]opts.LineData, len(pointsPerFrame))
	for i, n := range pointsPerFrame {
		x[i] = i
		y[i] = opts.LineData{Value: n}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Theme:     "dark",
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Subtitle: fmt.Sprintf("frames=%d points=%d mean=%.1f stddev=%.1f max=%d empty=%d",
				s.Frames, s.TotalPoints, s.MeanPoints, s.StdDev, s.MaxPoints, s.EmptyFrames),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "frame"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "points"}),
	)
	line.SetXAxis(x).AddSeries("points per frame", y)

	return line.Render(w)
}

// WriteFile renders the report to an HTML file at path.
func WriteFile(path, title string, pointsPerFrame []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := Render(f, title, pointsPerFrame); err != nil {
		f.Close()
		return fmt.Errorf("report: render: %w", err)
	}
	return f.Close()
}
