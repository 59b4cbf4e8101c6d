// Command ilda-export compiles a directory of vectorized video frames
// (frame_*.svg, one file per frame, in name order) into a single ILDA
// animation file. Interrupting the run (SIGINT/SIGTERM) cancels it between
// frames; a cancelled run writes nothing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/lumen-data/laserpath/internal/exportdb"
	"github.com/lumen-data/laserpath/internal/ilda"
	"github.com/lumen-data/laserpath/internal/laser"
	"github.com/lumen-data/laserpath/internal/report"
	"github.com/lumen-data/laserpath/internal/vecpath"
)

var (
	svgDir      = flag.String("svg-dir", "", "Directory containing frame_*.svg input files (required)")
	outPath     = flag.String("out", "", "Output .ild path (default: <svg-dir>/<dirname>.ild)")
	profileName = flag.String("profile", "classic", "Built-in profile: classic, arcade, mono")
	profileFile = flag.String("profile-file", "", "JSON file with partial profile overrides")

	fitAxis    = flag.String("fit-axis", "", "Override fit axis: max, min, x, y")
	fillRatio  = flag.Float64("fill-ratio", 0, "Override fill ratio (0,1]")
	minRelSize = flag.Float64("min-rel-size", -1, "Override minimum relative outline size [0,1)")
	keepFrame  = flag.Bool("keep-outer-frame", false, "Disable outer-frame artifact removal")

	dbPath     = flag.String("db", "", "Optional export catalog database; the run is recorded when set")
	reportPath = flag.String("report", "", "Optional HTML report output path")
)

func main() {
	flag.Parse()
	if *svgDir == "" {
		flag.Usage()
		log.Fatal("ilda-export: -svg-dir is required")
	}

	profile := laser.ProfileByName(*profileName)
	if *profileFile != "" {
		ov, err := laser.LoadProfileOverrides(*profileFile)
		if err != nil {
			log.Fatalf("ilda-export: %v", err)
		}
		profile = ov.Apply(profile)
	}
	if *fitAxis != "" {
		profile.FitAxis = laser.FitAxis(*fitAxis)
	}
	if *fillRatio != 0 {
		profile.FillRatio = *fillRatio
	}
	if *minRelSize >= 0 {
		profile.MinRelSize = *minRelSize
	}
	if *keepFrame {
		profile.RemoveOuterFrame = false
	}

	frames, err := loadFrames(*svgDir)
	if err != nil {
		log.Fatalf("ilda-export: %v", err)
	}
	log.Printf("ilda-export: loaded %d frames from %s", len(frames), *svgDir)

	out := *outPath
	if out == "" {
		base := filepath.Base(filepath.Clean(*svgDir))
		out = filepath.Join(*svgDir, base+".ild")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := laser.Export(ctx, frames, profile)
	if err != nil {
		if res != nil && !res.Complete {
			log.Fatalf("ilda-export: cancelled with %d of %d frames assembled; nothing written: %v",
				len(res.File.Frames), len(frames), err)
		}
		log.Fatalf("ilda-export: %v", err)
	}

	if err := ilda.WriteFile(out, res.File); err != nil {
		log.Fatalf("ilda-export: %v", err)
	}
	log.Printf("ilda-export: wrote %d frames (%d points, %d outer-frame outlines removed) to %s",
		len(res.File.Frames), res.TotalPoints(), res.Aggregate.OuterFrames, out)

	if *dbPath != "" {
		if err := recordRun(res, out); err != nil {
			log.Fatalf("ilda-export: %v", err)
		}
	}
	if *reportPath != "" {
		title := fmt.Sprintf("Export %s (%s)", filepath.Base(out), profile.Name)
		if err := report.WriteFile(*reportPath, title, res.PointsPerFrame); err != nil {
			log.Fatalf("ilda-export: %v", err)
		}
		log.Printf("ilda-export: report written to %s", *reportPath)
	}
}

// loadFrames reads every frame_*.svg in dir, sorted by name so the lexical
// frame numbering produced by the extractor defines playback order.
func loadFrames(dir string) ([]*vecpath.FrameGeometry, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "frame_*.svg"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no frame_*.svg files in %s", dir)
	}
	sort.Strings(matches)

	frames := make([]*vecpath.FrameGeometry, 0, len(matches))
	for _, path := range matches {
		frame, err := vecpath.ParseSVGFile(path)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func recordRun(res *laser.Result, out string) error {
	db, err := exportdb.NewDB(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	project := filepath.Base(filepath.Clean(*svgDir))
	format := ilda.Format3DIndexed
	if len(res.File.Frames) > 0 {
		format = res.File.Frames[0].Format
	}
	id, err := db.RecordRun(exportdb.Run{
		Project:     project,
		OutputPath:  out,
		Profile:     *profileName,
		FormatCode:  int(format),
		FrameCount:  len(res.File.Frames),
		TotalPoints: res.TotalPoints(),
		OuterFrames: res.Aggregate.OuterFrames,
		Complete:    res.Complete,
	}, res.PointsPerFrame)
	if err != nil {
		return err
	}
	log.Printf("ilda-export: catalogued run %s in %s", id, *dbPath)
	return nil
}
