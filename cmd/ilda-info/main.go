// Command ilda-info dumps the block structure of an .ild file: per-frame
// header fields, point counts, and blanking ratios. Useful when a player
// refuses a file and the question is whose fault it is.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lumen-data/laserpath/internal/ilda"
)

var inPath = flag.String("in", "", "Input .ild file (required)")

func main() {
	flag.Parse()
	if *inPath == "" {
		flag.Usage()
		log.Fatal("ilda-info: -in is required")
	}

	file, err := ilda.ReadFile(*inPath)
	if err != nil {
		var trunc *ilda.TruncationError
		if errors.As(err, &trunc) && file != nil {
			fmt.Printf("WARNING: %v\n", err)
		} else {
			log.Fatalf("ilda-info: %v", err)
		}
	}

	if file.Palette != nil {
		fmt.Printf("palette: %d entries\n", len(file.Palette))
	}
	fmt.Printf("frames: %d\n", len(file.Frames))

	for i, frame := range file.Frames {
		blanked := 0
		for _, p := range frame.Points {
			if p.Blanked {
				blanked++
			}
		}
		fmt.Printf("%4d  %-12s name=%-8q company=%-8q projector=%d points=%d blanked=%d\n",
			i, frame.Format, frame.Name, frame.Company, frame.Projector, len(frame.Points), blanked)
	}

	if len(file.Frames) == 0 && file.Palette == nil {
		fmt.Println("no content blocks found")
		os.Exit(1)
	}
}
