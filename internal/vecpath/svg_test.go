package vecpath

import (
	"math"
	"testing"
)

func TestParseSVG_SimplePath(t *testing.T) {
	svg := []byte(`<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
  <path d="M 10 10 L 90 10 L 90 90 Z"/>
</svg>`)

	frame, err := ParseSVG(svg)
	if err != nil {
		t.Fatalf("ParseSVG failed: %v", err)
	}
	if len(frame.Outlines) != 1 {
		t.Fatalf("expected 1 outline, got %d", len(frame.Outlines))
	}

	o := frame.Outlines[0]
	want := []Point{{10, 10}, {90, 10}, {90, 90}, {10, 10}}
	if len(o.Points) != len(want) {
		t.Fatalf("expected %d points, got %d: %v", len(want), len(o.Points), o.Points)
	}
	for i, p := range want {
		if o.Points[i] != p {
			t.Errorf("point %d: expected %v, got %v", i, p, o.Points[i])
		}
	}
}

func TestParseSVG_MultipleSubpathsAreIndependent(t *testing.T) {
	// Two M commands in one d attribute must become two outlines; joining
	// them would draw a visible stroke between separate shapes.
	svg := []byte(`<svg><path d="M 0 0 L 1 0 L 1 1 M 5 5 L 6 5"/></svg>`)

	frame, err := ParseSVG(svg)
	if err != nil {
		t.Fatalf("ParseSVG failed: %v", err)
	}
	if len(frame.Outlines) != 2 {
		t.Fatalf("expected 2 outlines, got %d", len(frame.Outlines))
	}
	if frame.Outlines[1].Points[0] != (Point{5, 5}) {
		t.Errorf("second subpath should start at (5,5), got %v", frame.Outlines[1].Points[0])
	}
}

func TestParseSVG_RelativeCommandsAndCurves(t *testing.T) {
	svg := []byte(`<svg><path d="m 10 10 l 5 0 h 5 v 5 c 0 5 -5 5 -5 0"/></svg>`)

	frame, err := ParseSVG(svg)
	if err != nil {
		t.Fatalf("ParseSVG failed: %v", err)
	}
	if len(frame.Outlines) != 1 {
		t.Fatalf("expected 1 outline, got %d", len(frame.Outlines))
	}

	o := frame.Outlines[0]
	// m 10 10, l → (15,10), h → (20,10), v → (20,15), then a sampled curve.
	if o.Points[0] != (Point{10, 10}) || o.Points[1] != (Point{15, 10}) ||
		o.Points[2] != (Point{20, 10}) || o.Points[3] != (Point{20, 15}) {
		t.Errorf("unexpected line points: %v", o.Points[:4])
	}
	if len(o.Points) != 4+CurveSamples {
		t.Errorf("expected %d points after curve sampling, got %d", 4+CurveSamples, len(o.Points))
	}
}

func TestParseSVG_TransformComposition(t *testing.T) {
	svg := []byte(`<svg>
  <g transform="translate(100,200) scale(2)">
    <path d="M 1 1 L 2 1"/>
  </g>
</svg>`)

	frame, err := ParseSVG(svg)
	if err != nil {
		t.Fatalf("ParseSVG failed: %v", err)
	}
	if len(frame.Outlines) != 1 {
		t.Fatalf("expected 1 outline, got %d", len(frame.Outlines))
	}

	o := frame.Outlines[0]
	// translate ∘ scale: (1,1) → (102, 202), (2,1) → (104, 202)
	if math.Abs(o.Points[0].X-102) > 1e-9 || math.Abs(o.Points[0].Y-202) > 1e-9 {
		t.Errorf("expected first point (102,202), got %v", o.Points[0])
	}
	if math.Abs(o.Points[1].X-104) > 1e-9 || math.Abs(o.Points[1].Y-202) > 1e-9 {
		t.Errorf("expected second point (104,202), got %v", o.Points[1])
	}
}

func TestParseSVG_PolygonCloses(t *testing.T) {
	svg := []byte(`<svg><polygon points="0,0 10,0 10,10"/></svg>`)

	frame, err := ParseSVG(svg)
	if err != nil {
		t.Fatalf("ParseSVG failed: %v", err)
	}
	if len(frame.Outlines) != 1 {
		t.Fatalf("expected 1 outline, got %d", len(frame.Outlines))
	}

	o := frame.Outlines[0]
	first, last := o.Points[0], o.Points[len(o.Points)-1]
	if first != last {
		t.Errorf("polygon should close: first %v, last %v", first, last)
	}
}

func TestParseSVG_BadPathIsSkippedNotFatal(t *testing.T) {
	svg := []byte(`<svg>
  <path d="M 1 1 L banana"/>
  <path d="M 0 0 L 1 0"/>
</svg>`)

	frame, err := ParseSVG(svg)
	if err != nil {
		t.Fatalf("ParseSVG failed: %v", err)
	}
	if len(frame.Outlines) != 1 {
		t.Fatalf("expected the parsable outline to survive, got %d outlines", len(frame.Outlines))
	}
}

func TestParseSVG_EmptyDocument(t *testing.T) {
	frame, err := ParseSVG([]byte(`<svg width="10" height="10"></svg>`))
	if err != nil {
		t.Fatalf("ParseSVG failed: %v", err)
	}
	if len(frame.Outlines) != 0 {
		t.Errorf("expected no outlines, got %d", len(frame.Outlines))
	}
}

func TestParseSVG_MalformedXML(t *testing.T) {
	if _, err := ParseSVG([]byte(`<svg><path`)); err == nil {
		t.Error("expected an error for malformed XML")
	}
}

func TestParsePathData_ScientificNotation(t *testing.T) {
	subpaths, err := parsePathData("M 1e2 1.5e-1 L 2e2 0")
	if err != nil {
		t.Fatalf("parsePathData failed: %v", err)
	}
	if len(subpaths) != 1 || len(subpaths[0]) != 1 {
		t.Fatalf("expected one subpath with one segment, got %v", subpaths)
	}
	seg := subpaths[0][0]
	if seg.Start != (Point{100, 0.15}) || seg.End != (Point{200, 0}) {
		t.Errorf("unexpected segment %+v", seg)
	}
}
