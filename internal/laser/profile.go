package laser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumen-data/laserpath/internal/ilda"
)

// FitAxis selects the reference span used to scale source geometry into the
// device envelope.
type FitAxis string

const (
	FitMax FitAxis = "max" // larger of the two global spans
	FitMin FitAxis = "min" // smaller of the two global spans
	FitX   FitAxis = "x"   // horizontal span
	FitY   FitAxis = "y"   // vertical span
)

// ColorMode selects the per-export color policy.
type ColorMode string

const (
	ColorIndexed   ColorMode = "indexed"   // fixed palette index on every point
	ColorTrueColor ColorMode = "truecolor" // fixed RGB on every point
)

// Default tuning values. The outer-frame thresholds are empirical: they were
// tuned against bordered/cropped footage where the vectorizer traces the
// canvas edge as one big rectangle.
const (
	DefaultFillRatio      = 0.95
	DefaultMinRelSize     = 0.01
	DefaultFrameMarginRel = 0.02

	// An outline is an outer-frame candidate when its bbox covers at least
	// this fraction of the global bbox area...
	DefaultOuterFrameAreaRatio = 0.5
	// ...and at least this fraction of its points hug a global edge.
	DefaultOuterFrameEdgeFraction = 0.9

	DefaultCompany         = "LSRPATH"
	DefaultFrameNamePrefix = "F"
)

// Profile bundles every tunable of one export run. It is immutable for the
// duration of the run.
type Profile struct {
	Name string

	// Geometry
	FitAxis          FitAxis
	FillRatio        float64 // (0,1]: fraction of the device half-range to fill
	MinRelSize       float64 // [0,1): outlines smaller than this relative size are noise
	RemoveOuterFrame bool
	FrameMarginRel   float64 // [0,1): edge-proximity margin relative to the global span
	AreaRatio        float64 // outer-frame area threshold
	EdgeFraction     float64 // outer-frame edge-proximity threshold
	InvertY          bool    // SVG origin is top-left; ILDA Y grows upward

	// Color and format
	ColorMode    ColorMode
	ColorIndex   uint8    // ColorIndexed: palette index stamped on every point
	Color        ilda.RGB // ColorTrueColor: color stamped on every point
	ThreeD       bool     // write 3D record layouts (Z always zero)
	EmbedPalette bool     // prepend a format-2 palette block (indexed modes)

	// Frame labelling
	FrameNamePrefix string
	Company         string
	Projector       uint8
}

// Format returns the ILDA block format implied by the color mode and
// dimensionality.
func (p Profile) Format() ilda.Format {
	if p.ColorMode == ColorTrueColor {
		if p.ThreeD {
			return ilda.Format3DTrueColor
		}
		return ilda.Format2DTrueColor
	}
	if p.ThreeD {
		return ilda.Format3DIndexed
	}
	return ilda.Format2DIndexed
}

// Validate checks the numeric ranges the pipeline depends on.
func (p Profile) Validate() error {
	if p.FillRatio <= 0 || p.FillRatio > 1 {
		return fmt.Errorf("laser: fill ratio %v outside (0,1]", p.FillRatio)
	}
	if p.MinRelSize < 0 || p.MinRelSize >= 1 {
		return fmt.Errorf("laser: min relative size %v outside [0,1)", p.MinRelSize)
	}
	if p.FrameMarginRel < 0 || p.FrameMarginRel >= 1 {
		return fmt.Errorf("laser: frame margin %v outside [0,1)", p.FrameMarginRel)
	}
	if p.AreaRatio < 0 || p.AreaRatio > 1 {
		return fmt.Errorf("laser: outer-frame area ratio %v outside [0,1]", p.AreaRatio)
	}
	if p.EdgeFraction < 0 || p.EdgeFraction > 1 {
		return fmt.Errorf("laser: outer-frame edge fraction %v outside [0,1]", p.EdgeFraction)
	}
	switch p.FitAxis {
	case FitMax, FitMin, FitX, FitY:
	default:
		return fmt.Errorf("laser: unknown fit axis %q", p.FitAxis)
	}
	switch p.ColorMode {
	case ColorIndexed, ColorTrueColor:
	default:
		return fmt.Errorf("laser: unknown color mode %q", p.ColorMode)
	}
	return nil
}

// DefaultProfile returns the baseline "classic" profile.
func DefaultProfile() Profile {
	return Profile{
		Name:             "classic",
		FitAxis:          FitMax,
		FillRatio:        DefaultFillRatio,
		MinRelSize:       DefaultMinRelSize,
		RemoveOuterFrame: true,
		FrameMarginRel:   DefaultFrameMarginRel,
		AreaRatio:        DefaultOuterFrameAreaRatio,
		EdgeFraction:     DefaultOuterFrameEdgeFraction,
		InvertY:          true,
		ColorMode:        ColorIndexed,
		ColorIndex:       7, // white in the standard preview palette; 0 renders red in some players
		ThreeD:           true,
		FrameNamePrefix:  DefaultFrameNamePrefix,
		Company:          DefaultCompany,
	}
}

// Profiles returns the named built-in profiles.
func Profiles() map[string]Profile {
	classic := DefaultProfile()

	arcade := classic
	arcade.Name = "arcade"
	arcade.ColorMode = ColorTrueColor
	arcade.Color = ilda.RGB{R: 255, G: 255, B: 255}
	arcade.ThreeD = false

	mono := classic
	mono.Name = "mono"
	mono.ColorIndex = 1
	mono.EmbedPalette = true

	return map[string]Profile{
		"classic": classic,
		"arcade":  arcade,
		"mono":    mono,
	}
}

// ProfileByName returns the named built-in profile, falling back to classic
// for an empty or unknown name.
func ProfileByName(name string) Profile {
	if p, ok := Profiles()[name]; ok {
		return p
	}
	return DefaultProfile()
}

// ProfileOverrides is the JSON-loadable partial configuration. Fields left
// null keep the base profile's value, so partial config files are safe.
type ProfileOverrides struct {
	FitAxis          *string  `json:"fit_axis,omitempty"`
	FillRatio        *float64 `json:"fill_ratio,omitempty"`
	MinRelSize       *float64 `json:"min_rel_size,omitempty"`
	RemoveOuterFrame *bool    `json:"remove_outer_frame,omitempty"`
	FrameMarginRel   *float64 `json:"frame_margin_rel,omitempty"`
	AreaRatio        *float64 `json:"outer_frame_area_ratio,omitempty"`
	EdgeFraction     *float64 `json:"outer_frame_edge_fraction,omitempty"`
	InvertY          *bool    `json:"invert_y,omitempty"`
	ColorMode        *string  `json:"color_mode,omitempty"`
	ColorIndex       *int     `json:"color_index,omitempty"`
	ColorRGB         *[3]int  `json:"color_rgb,omitempty"`
	ThreeD           *bool    `json:"three_d,omitempty"`
	EmbedPalette     *bool    `json:"embed_palette,omitempty"`
	FrameNamePrefix  *string  `json:"frame_name_prefix,omitempty"`
	Company          *string  `json:"company,omitempty"`
	Projector        *int     `json:"projector,omitempty"`
}

// LoadProfileOverrides reads a JSON override file. The file must have a
// .json extension and stay under 1MB, matching how tuning files are handled
// elsewhere in the toolchain.
func LoadProfileOverrides(path string) (*ProfileOverrides, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("profile file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat profile file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("profile file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var ov ProfileOverrides
	if err := json.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("failed to parse profile file: %w", err)
	}
	return &ov, nil
}

// Apply layers the overrides onto base and returns the result.
func (ov *ProfileOverrides) Apply(base Profile) Profile {
	if ov == nil {
		return base
	}
	p := base
	if ov.FitAxis != nil {
		p.FitAxis = FitAxis(*ov.FitAxis)
	}
	if ov.FillRatio != nil {
		p.FillRatio = *ov.FillRatio
	}
	if ov.MinRelSize != nil {
		p.MinRelSize = *ov.MinRelSize
	}
	if ov.RemoveOuterFrame != nil {
		p.RemoveOuterFrame = *ov.RemoveOuterFrame
	}
	if ov.FrameMarginRel != nil {
		p.FrameMarginRel = *ov.FrameMarginRel
	}
	if ov.AreaRatio != nil {
		p.AreaRatio = *ov.AreaRatio
	}
	if ov.EdgeFraction != nil {
		p.EdgeFraction = *ov.EdgeFraction
	}
	if ov.InvertY != nil {
		p.InvertY = *ov.InvertY
	}
	if ov.ColorMode != nil {
		p.ColorMode = ColorMode(*ov.ColorMode)
	}
	if ov.ColorIndex != nil {
		p.ColorIndex = uint8(*ov.ColorIndex)
	}
	if ov.ColorRGB != nil {
		p.Color = ilda.RGB{R: uint8(ov.ColorRGB[0]), G: uint8(ov.ColorRGB[1]), B: uint8(ov.ColorRGB[2])}
	}
	if ov.ThreeD != nil {
		p.ThreeD = *ov.ThreeD
	}
	if ov.EmbedPalette != nil {
		p.EmbedPalette = *ov.EmbedPalette
	}
	if ov.FrameNamePrefix != nil {
		p.FrameNamePrefix = *ov.FrameNamePrefix
	}
	if ov.Company != nil {
		p.Company = *ov.Company
	}
	if ov.Projector != nil {
		p.Projector = uint8(*ov.Projector)
	}
	return p
}
