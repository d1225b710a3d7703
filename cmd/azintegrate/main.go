// Command azintegrate runs azimuthal integration on a detector frame and
// prints or displays the resulting histogram.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"azimint"
	"azimint/internal/config"
	"azimint/internal/ingest"
	"azimint/internal/version"
	"azimint/ui/plotwindow"
)

func main() {
	log.SetFlags(log.LstdFlags)

	imagePath := flag.String("image", "", "Path to the detector frame (TIFF, PNG, or any gocv-readable format)")
	maskPath := flag.String("mask", "", "Path to a mask image; nonzero pixels are excluded")
	darkPath := flag.String("dark", "", "Path to a dark-current frame")
	flatPath := flag.String("flat", "", "Path to a flat-field frame")
	configPath := flag.String("config", "", "Path to a job config JSON file supplying input paths and bin counts; -image, -mask, -dark, -flat and -bins override it when given")

	bins := flag.Int("bins", 0, "Number of radial bins for 1D integration")
	bins0 := flag.Int("bins0", 0, "Number of radial bins for 2D integration")
	bins1 := flag.Int("bins1", 0, "Number of azimuthal bins for 2D integration")

	pos0Range := flag.String("pos0-range", "", "Radial range LO,HI; derived from the data if omitted")
	pos1Range := flag.String("pos1-range", "", "Azimuthal range LO,HI; derived from the data if omitted")
	dummy := flag.Float64("dummy", 0, "Sentinel intensity value to skip; used only when the flag is given")
	deltaDummy := flag.Float64("delta-dummy", 0, "Tolerance around -dummy; 0 requires an exact match")
	hasDummy := false

	view := flag.Bool("view", false, "Open a viewer window instead of printing a summary")
	showVersion := flag.Bool("version", false, "Print version information and exit")

	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "dummy" {
			hasDummy = true
		}
	})

	if *showVersion {
		fmt.Printf("azintegrate %s (built %s, commit %s)\n", version.Version, version.BuildTime, version.GitCommit)
		return
	}

	job, resolvedConfigPath, err := resolveJob(*configPath, *imagePath, *maskPath, *darkPath, *flatPath, *bins)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := azimint.Options{}
	if hasDummy {
		opts.Dummy = dummy
		if *deltaDummy != 0 {
			opts.DeltaDummy = deltaDummy
		}
	}
	if r, err := parseRange(*pos0Range); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else if r != nil {
		opts.Pos0Range = r
	}
	if r, err := parseRange(*pos1Range); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else if r != nil {
		opts.Pos1Range = r
	}

	frame, err := ingest.LoadFrame(job.GetImagePath(resolvedConfigPath))
	if err != nil {
		log.Fatalf("loading frame: %v", err)
	}
	if job.MaskPath != "" {
		mask, err := ingest.LoadMask(job.GetMaskPath(resolvedConfigPath))
		if err != nil {
			log.Fatalf("loading mask: %v", err)
		}
		opts.Mask = mask
	}
	if job.DarkPath != "" {
		dark, err := ingest.LoadFrame(job.GetDarkPath(resolvedConfigPath))
		if err != nil {
			log.Fatalf("loading dark frame: %v", err)
		}
		opts.Dark = dark.Data
	}
	if job.FlatPath != "" {
		flat, err := ingest.LoadFrame(job.GetFlatPath(resolvedConfigPath))
		if err != nil {
			log.Fatalf("loading flat frame: %v", err)
		}
		opts.Flat = flat.Data
	}

	pos := flatAngularGeometry(frame.Width, frame.Height)

	useBins0, useBins1 := *bins0, *bins1
	if job.Bins1 > 0 {
		useBins0, useBins1 = job.Bins, job.Bins1
	}
	use1D := useBins1 == 0

	if use1D {
		n := *bins
		if job.Bins1 == 0 && job.Bins > 0 {
			n = job.Bins
		}
		if n <= 0 {
			fmt.Fprintln(os.Stderr, "azintegrate: -bins (or bins in -config) is required for 1D integration")
			os.Exit(1)
		}
		res, err := azimint.Integrate1D(pos, frame.Data, n, opts)
		if err != nil {
			log.Fatalf("integrating: %v", err)
		}
		if *view {
			plotwindow.Show1D(*imagePath, res)
			return
		}
		log.Printf("1D integration: %d bins, pos0 [%.6g, %.6g]", n, res.OutPos[0], res.OutPos[n-1])
		for k := 0; k < n; k++ {
			fmt.Printf("%.6g\t%.6g\t%.6g\n", res.OutPos[k], res.OutMerge[k], res.OutCount[k])
		}
		return
	}

	res, err := azimint.Integrate2D(pos, frame.Data, useBins0, useBins1, opts)
	if err != nil {
		log.Fatalf("integrating: %v", err)
	}
	if *view {
		plotwindow.Show2D(*imagePath, res)
		return
	}
	log.Printf("2D integration: %d x %d bins", useBins0, useBins1)
	for i := 0; i < useBins0; i++ {
		for j := 0; j < useBins1; j++ {
			fmt.Printf("%.6g\t", res.At(i, j))
		}
		fmt.Println()
	}
}

// resolveJob merges a loaded config file (if any) with the individually
// supplied flags: a non-empty path flag or a positive -bins replaces the
// config's value for that field. It returns the job plus the path
// config-relative fields should be resolved against.
func resolveJob(configPath, imagePath, maskPath, darkPath, flatPath string, bins int) (*config.File, string, error) {
	if configPath == "" {
		return &config.File{
			ImagePath: imagePath,
			MaskPath:  maskPath,
			DarkPath:  darkPath,
			FlatPath:  flatPath,
			Bins:      bins,
		}, ".", nil
	}
	job, err := config.Load(configPath)
	if err != nil {
		return nil, "", err
	}
	if imagePath != "" {
		job.ImagePath = imagePath
	}
	if maskPath != "" {
		job.MaskPath = maskPath
	}
	if darkPath != "" {
		job.DarkPath = darkPath
	}
	if flatPath != "" {
		job.FlatPath = flatPath
	}
	if bins > 0 {
		job.Bins = bins
	}
	if job.ImagePath == "" {
		return nil, "", fmt.Errorf("azintegrate: config %s has no image path and -image was not given", configPath)
	}
	return job, configPath, nil
}

func parseRange(s string) (*[2]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("azintegrate: range %q must be LO,HI", s)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("azintegrate: invalid range %q: %w", s, err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("azintegrate: invalid range %q: %w", s, err)
	}
	return &[2]float64{lo, hi}, nil
}

// flatAngularGeometry builds a trivial per-pixel quadrilateral geometry: no
// detector distance, tilt, or wavelength calibration, just pixel index
// treated directly as (pos0, pos1) in a unit grid. It stands in for a real
// PONI-file-driven geometry solve, which is out of scope for this engine.
func flatAngularGeometry(width, height int) []azimint.Quad {
	pos := make([]azimint.Quad, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p0, p1 := float64(x), float64(y)
			pos[y*width+x] = azimint.Quad{
				{p0, p1}, {p0 + 1, p1}, {p0 + 1, p1 + 1}, {p0, p1 + 1},
			}
		}
	}
	return pos
}
