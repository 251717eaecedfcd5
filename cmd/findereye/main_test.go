package main

import (
	"bytes"
	"image"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	findereye "github.com/ericlevine/findereye"
	"github.com/ericlevine/findereye/bitutil"
)

func sampleEye() findereye.Eye {
	return findereye.Eye{
		X: 64, Y: 59.5, Width: 112,
		Inner:  findereye.Ring{Color: findereye.Dark, Centroid: image.Pt(60, 60), Area: 2304},
		Middle: findereye.Ring{Color: findereye.Light, Centroid: image.Pt(60, 60), Area: 4096},
		Outer:  findereye.Ring{Color: findereye.Dark, Centroid: image.Pt(60, 60), Area: 6144},
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	report(message.NewPrinter(language.English), &buf, "a.png: ", []findereye.Eye{sampleEye()})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "a.png: eye 1: center=(64.0, 59.5) module=16.00", lines[0])
	assert.Contains(t, lines[1], "inner")
	assert.Contains(t, lines[1], "DARK")
	assert.Contains(t, lines[1], "area=2,304")
	assert.Contains(t, lines[3], "area=6,144")
}

func TestDetectorOptionsWorkersOverride(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts, err := detectorOptions(options{workers: 3}, logger)
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Workers)
	assert.Same(t, logger, opts.Logger)

	_, err = detectorOptions(options{config: filepath.Join(t.TempDir(), "nope.yaml")}, logger)
	assert.Error(t, err)
}

func TestWriteAnnotated(t *testing.T) {
	bm := bitutil.NewBitMatrix(128)
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, writeAnnotated(path, bm, []findereye.Eye{sampleEye()}))
}
