package laser

import (
	"testing"

	"github.com/lumen-data/laserpath/internal/vecpath"
)

// rectOutline builds a closed rectangle outline; every point sits on the
// rectangle's own edges.
func rectOutline(minX, minY, maxX, maxY float64) *vecpath.Outline {
	return vecpath.NewOutline([]vecpath.Point{
		{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: maxY},
		{X: minX, Y: maxY}, {X: minX, Y: minY},
	})
}

func smallTriangle() *vecpath.Outline {
	return vecpath.NewOutline([]vecpath.Point{
		{X: 40, Y: 40}, {X: 45, Y: 40}, {X: 42.5, Y: 45}, {X: 40, Y: 40},
	})
}

func TestAnalyze_MarksOuterFrame(t *testing.T) {
	frames := []*vecpath.FrameGeometry{
		{Outlines: []*vecpath.Outline{rectOutline(0, 0, 100, 100), smallTriangle()}},
	}

	agg := Analyze(frames, DefaultProfile())

	if agg.OuterFrames != 1 {
		t.Fatalf("expected 1 outer frame, got %d", agg.OuterFrames)
	}
	if !frames[0].Outlines[0].OuterFrame {
		t.Error("the canvas-sized rectangle should be marked")
	}
	if frames[0].Outlines[1].OuterFrame {
		t.Error("the small triangle must not be marked")
	}

	wantGlobal := vecpath.BoundingBox{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}
	if agg.Global != wantGlobal {
		t.Errorf("expected global box %v, got %v", wantGlobal, agg.Global)
	}
	wantFiltered := vecpath.BoundingBox{MinX: 40, MaxX: 45, MinY: 40, MaxY: 45}
	if agg.Filtered != wantFiltered {
		t.Errorf("expected filtered box %v, got %v", wantFiltered, agg.Filtered)
	}
}

func TestAnalyze_LargeButNotEdgeHugging(t *testing.T) {
	// A diagonal stroke spans the whole canvas, so its bbox passes the area
	// test, but almost none of its points sit near a global edge.
	diagonal := make([]vecpath.Point, 0, 11)
	for i := 0; i <= 10; i++ {
		diagonal = append(diagonal, vecpath.Point{X: float64(i) * 10, Y: float64(i) * 10})
	}
	frames := []*vecpath.FrameGeometry{
		{Outlines: []*vecpath.Outline{vecpath.NewOutline(diagonal), smallTriangle()}},
	}

	agg := Analyze(frames, DefaultProfile())

	if agg.OuterFrames != 0 {
		t.Errorf("expected no outer frames, got %d", agg.OuterFrames)
	}
	if agg.Filtered != agg.Global {
		t.Errorf("filtered box should equal global box, got %v vs %v", agg.Filtered, agg.Global)
	}
}

func TestAnalyze_RevertsWhenEverythingIsMarked(t *testing.T) {
	// The only outline is the border rectangle itself. Dropping it would
	// leave nothing to normalize against, so the marking must be undone.
	frames := []*vecpath.FrameGeometry{
		{Outlines: []*vecpath.Outline{rectOutline(0, 0, 100, 100)}},
	}

	agg := Analyze(frames, DefaultProfile())

	if !agg.Reverted {
		t.Error("expected the marking to be reverted")
	}
	if agg.OuterFrames != 0 {
		t.Errorf("expected the outer-frame count to be reset, got %d", agg.OuterFrames)
	}
	if frames[0].Outlines[0].OuterFrame {
		t.Error("the outline's mark should have been cleared")
	}
	if agg.Filtered != agg.Global {
		t.Errorf("filtered box should fall back to global, got %v vs %v", agg.Filtered, agg.Global)
	}
}

func TestAnalyze_MarkingDisabled(t *testing.T) {
	frames := []*vecpath.FrameGeometry{
		{Outlines: []*vecpath.Outline{rectOutline(0, 0, 100, 100), smallTriangle()}},
	}
	p := DefaultProfile()
	p.RemoveOuterFrame = false

	agg := Analyze(frames, p)

	if agg.OuterFrames != 0 {
		t.Errorf("expected no marking with the filter disabled, got %d", agg.OuterFrames)
	}
	if frames[0].Outlines[0].OuterFrame {
		t.Error("no outline should be marked with the filter disabled")
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	frames := []*vecpath.FrameGeometry{{}, {}}

	agg := Analyze(frames, DefaultProfile())

	if !agg.Empty {
		t.Error("expected Empty for frames without outlines")
	}
	if agg.Global != (vecpath.BoundingBox{}) || agg.Filtered != (vecpath.BoundingBox{}) {
		t.Errorf("expected zero boxes, got global %v filtered %v", agg.Global, agg.Filtered)
	}
}

func TestAnalyze_MarkingSpansFrames(t *testing.T) {
	// The border rectangle appears in two frames; both copies must be marked
	// against the same global box.
	frames := []*vecpath.FrameGeometry{
		{Outlines: []*vecpath.Outline{rectOutline(0, 0, 100, 100), smallTriangle()}},
		{Outlines: []*vecpath.Outline{rectOutline(0, 0, 100, 100)}},
	}

	agg := Analyze(frames, DefaultProfile())

	if agg.OuterFrames != 2 {
		t.Fatalf("expected both rectangle copies marked, got %d", agg.OuterFrames)
	}
	if !frames[1].Outlines[0].OuterFrame {
		t.Error("the second frame's rectangle should be marked")
	}
}
