package report

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]int{10, 1, 7})

	if s.Frames != 3 {
		t.Errorf("expected 3 frames, got %d", s.Frames)
	}
	if s.TotalPoints != 18 {
		t.Errorf("expected 18 total points, got %d", s.TotalPoints)
	}
	if s.MaxPoints != 10 {
		t.Errorf("expected max 10, got %d", s.MaxPoints)
	}
	if s.EmptyFrames != 1 {
		t.Errorf("expected 1 empty frame, got %d", s.EmptyFrames)
	}
	if math.Abs(s.MeanPoints-6) > 1e-9 {
		t.Errorf("expected mean 6, got %v", s.MeanPoints)
	}
	// Sample standard deviation of {10, 1, 7}.
	if math.Abs(s.StdDev-math.Sqrt(21)) > 1e-9 {
		t.Errorf("expected stddev sqrt(21), got %v", s.StdDev)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s != (Summary{}) {
		t.Errorf("expected a zero summary for no frames, got %+v", s)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "demo export", []int{4, 1, 9, 9}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "demo export") {
		t.Error("report should contain the title")
	}
	if !strings.Contains(html, "frames=4") || !strings.Contains(html, "empty=1") {
		t.Error("report should contain the summary line")
	}
	if !strings.Contains(html, "points per frame") {
		t.Error("report should contain the series name")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	if err := WriteFile(path, "file test", []int{2, 3}); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report back failed: %v", err)
	}
	if !strings.Contains(string(data), "file test") {
		t.Error("written report should contain the title")
	}
}
