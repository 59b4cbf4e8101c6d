package laser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lumen-data/laserpath/internal/ilda"
)

func TestProfileValidate(t *testing.T) {
	if err := DefaultProfile().Validate(); err != nil {
		t.Errorf("default profile should validate, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"fill ratio zero", func(p *Profile) { p.FillRatio = 0 }},
		{"fill ratio above one", func(p *Profile) { p.FillRatio = 1.5 }},
		{"negative min rel size", func(p *Profile) { p.MinRelSize = -0.1 }},
		{"min rel size one", func(p *Profile) { p.MinRelSize = 1 }},
		{"frame margin one", func(p *Profile) { p.FrameMarginRel = 1 }},
		{"negative area ratio", func(p *Profile) { p.AreaRatio = -0.1 }},
		{"area ratio above one", func(p *Profile) { p.AreaRatio = 1.5 }},
		{"negative edge fraction", func(p *Profile) { p.EdgeFraction = -0.5 }},
		{"edge fraction above one", func(p *Profile) { p.EdgeFraction = 2 }},
		{"bad fit axis", func(p *Profile) { p.FitAxis = "diagonal" }},
		{"bad color mode", func(p *Profile) { p.ColorMode = "sepia" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultProfile()
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestProfileFormat(t *testing.T) {
	tests := []struct {
		mode   ColorMode
		threeD bool
		want   ilda.Format
	}{
		{ColorIndexed, true, ilda.Format3DIndexed},
		{ColorIndexed, false, ilda.Format2DIndexed},
		{ColorTrueColor, true, ilda.Format3DTrueColor},
		{ColorTrueColor, false, ilda.Format2DTrueColor},
	}
	for _, tc := range tests {
		p := Profile{ColorMode: tc.mode, ThreeD: tc.threeD}
		if got := p.Format(); got != tc.want {
			t.Errorf("mode=%s threeD=%v: expected %v, got %v", tc.mode, tc.threeD, got, tc.want)
		}
	}
}

func TestProfileByName(t *testing.T) {
	if p := ProfileByName("arcade"); p.ColorMode != ColorTrueColor || p.ThreeD {
		t.Errorf("arcade should be 2D true-color, got %+v", p)
	}
	if p := ProfileByName(""); p.Name != "classic" {
		t.Errorf("empty name should fall back to classic, got %q", p.Name)
	}
	if p := ProfileByName("does-not-exist"); p.Name != "classic" {
		t.Errorf("unknown name should fall back to classic, got %q", p.Name)
	}
}

func TestLoadProfileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tune.json")
	content := `{
  "fit_axis": "min",
  "fill_ratio": 0.8,
  "invert_y": false,
  "color_mode": "truecolor",
  "color_rgb": [255, 0, 128],
  "company": "TESTCO"
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ov, err := LoadProfileOverrides(path)
	if err != nil {
		t.Fatalf("LoadProfileOverrides failed: %v", err)
	}

	p := ov.Apply(DefaultProfile())
	if p.FitAxis != FitMin {
		t.Errorf("expected fit axis min, got %q", p.FitAxis)
	}
	if p.FillRatio != 0.8 {
		t.Errorf("expected fill ratio 0.8, got %v", p.FillRatio)
	}
	if p.InvertY {
		t.Error("expected invert_y false")
	}
	if p.ColorMode != ColorTrueColor || p.Color != (ilda.RGB{R: 255, G: 0, B: 128}) {
		t.Errorf("unexpected color settings: mode=%q color=%+v", p.ColorMode, p.Color)
	}
	if p.Company != "TESTCO" {
		t.Errorf("expected company TESTCO, got %q", p.Company)
	}

	// Fields absent from the file keep the base value.
	if p.MinRelSize != DefaultMinRelSize {
		t.Errorf("min rel size should be untouched, got %v", p.MinRelSize)
	}
	if !p.RemoveOuterFrame {
		t.Error("remove_outer_frame should be untouched")
	}
}

func TestLoadProfileOverrides_Rejections(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "tune.txt")
	if err := os.WriteFile(txt, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfileOverrides(txt); err == nil {
		t.Error("expected an error for a non-.json extension")
	}

	if _, err := LoadProfileOverrides(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfileOverrides(bad); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestOverridesApplyNil(t *testing.T) {
	var ov *ProfileOverrides
	base := DefaultProfile()
	if got := ov.Apply(base); got != base {
		t.Errorf("nil overrides should return the base unchanged, got %+v", got)
	}
}
