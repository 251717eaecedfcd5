package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	findereye "github.com/ericlevine/findereye"
	"github.com/ericlevine/findereye/binarizer"
	"github.com/ericlevine/findereye/bitutil"
	"github.com/ericlevine/findereye/finder"
	"github.com/ericlevine/findereye/internal/config"
)

type options struct {
	threshold int
	histogram bool
	invert    bool
	workers   int
	config    string
	annotate  string
	verbose   bool
}

func main() {
	var o options
	flag.IntVar(&o.threshold, "threshold", binarizer.DefaultThreshold, "luminance at or below which a pixel is dark")
	flag.BoolVar(&o.histogram, "histogram", false, "pick the threshold from the image histogram instead of -threshold")
	flag.BoolVar(&o.invert, "invert", false, "look for light-on-dark symbols")
	flag.IntVar(&o.workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS, overrides -config)")
	flag.StringVar(&o.config, "config", "", "YAML tuning file")
	flag.StringVar(&o.annotate, "annotate", "", "write a PNG marking the detected rings (single input only)")
	flag.BoolVar(&o.verbose, "v", false, "log pipeline details to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: findereye [flags] <image-file> [image-file...]\n\n")
		fmt.Fprintf(os.Stderr, "Locate QR code finder eyes in image files (PNG, JPEG, GIF).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	if o.annotate != "" && flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "findereye: -annotate needs exactly one input file")
		os.Exit(1)
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	detectOpts, err := detectorOptions(o, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "findereye: %v\n", err)
		os.Exit(1)
	}

	out := message.NewPrinter(language.English)
	exitCode := 0
	for _, path := range flag.Args() {
		eyes, img, err := scanFile(path, o, detectOpts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: error: %v\n", path, err)
			exitCode = 1
			continue
		}
		if len(eyes) == 0 {
			fmt.Fprintf(os.Stderr, "%s: no finder eyes found\n", path)
			exitCode = 1
			continue
		}
		prefix := ""
		if flag.NArg() > 1 {
			prefix = path + ": "
		}
		report(out, os.Stdout, prefix, eyes)

		if o.annotate != "" {
			if err := writeAnnotated(o.annotate, img, eyes); err != nil {
				fmt.Fprintf(os.Stderr, "%s: annotate: %v\n", path, err)
				exitCode = 1
			}
		}
	}
	os.Exit(exitCode)
}

func detectorOptions(o options, logger *slog.Logger) (*finder.Options, error) {
	opts := finder.DefaultOptions()
	if o.config != "" {
		var err error
		if opts, err = config.Load(o.config); err != nil {
			return nil, err
		}
	}
	if o.workers > 0 {
		opts.Workers = o.workers
	}
	opts.Logger = logger
	return opts, nil
}

func scanFile(path string, o options, opts *finder.Options) ([]findereye.Eye, *bitutil.BitMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("decode image: %w", err)
	}

	source := findereye.NewImageLuminanceSource(img)
	var bin findereye.Binarizer = binarizer.NewThreshold(source, o.threshold)
	if o.histogram {
		bin = binarizer.NewGlobalHistogram(source)
	}
	matrix, err := bin.BlackMatrix()
	if errors.Is(err, findereye.ErrNotFound) {
		// No contrast to work with.
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("binarize: %w", err)
	}
	if o.invert {
		matrix = matrix.Clone()
		matrix.FlipAll()
	}

	eyes, err := finder.Detect(matrix, opts)
	if err != nil {
		return nil, nil, err
	}
	return eyes, matrix, nil
}

func report(p *message.Printer, w io.Writer, prefix string, eyes []findereye.Eye) {
	for i, eye := range eyes {
		p.Fprintf(w, "%seye %d: center=(%.1f, %.1f) module=%.2f\n", prefix, i+1, eye.X, eye.Y, eye.ModuleSize())
		for j, name := range [3]string{"inner", "middle", "outer"} {
			r := eye.Rings()[j]
			p.Fprintf(w, "%s  %-6s %-5s centroid=(%d, %d) area=%d\n",
				prefix, name, r.Color, r.Centroid.X, r.Centroid.Y, r.Area)
		}
	}
}
