// Command ilda-preview decodes an .ild file and renders one frame to a PNG
// for visual verification.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/lumen-data/laserpath/internal/ilda"
	"github.com/lumen-data/laserpath/internal/preview"
)

var (
	inPath      = flag.String("in", "", "Input .ild file (required)")
	outPath     = flag.String("out", "preview.png", "Output PNG path")
	frameIndex  = flag.Int("frame", 0, "Frame index to render (zero-based)")
	paletteName = flag.String("palette", "", "Palette for indexed formats: idtf14, white63 (default: embedded palette, else idtf14)")
)

func main() {
	flag.Parse()
	if *inPath == "" {
		flag.Usage()
		log.Fatal("ilda-preview: -in is required")
	}

	file, err := ilda.ReadFile(*inPath)
	if err != nil {
		var trunc *ilda.TruncationError
		if errors.As(err, &trunc) && file != nil && len(file.Frames) > 0 {
			// A short file can still be previewed up to the damage.
			log.Printf("ilda-preview: %v; previewing the %d frames decoded before it", err, len(file.Frames))
		} else {
			log.Fatalf("ilda-preview: %v", err)
		}
	}

	opts := preview.Options{}
	if *paletteName != "" {
		pal, err := ilda.PaletteByName(*paletteName)
		if err != nil {
			log.Fatalf("ilda-preview: %v", err)
		}
		opts.Palette = pal
	}

	if err := preview.SavePNG(file, *frameIndex, opts, *outPath); err != nil {
		log.Fatalf("ilda-preview: %v", err)
	}
	log.Printf("ilda-preview: wrote frame %d of %s to %s", *frameIndex, *inPath, *outPath)
}
