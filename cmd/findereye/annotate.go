package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	findereye "github.com/ericlevine/findereye"
)

var ringColors = [3]color.RGBA{
	{R: 255, A: 255},
	{G: 200, A: 255},
	{B: 255, A: 255},
}

// writeAnnotated saves the binarized image as a PNG with a cross on every
// ring centroid: red for the core, green for the light ring, blue for the
// outer ring.
func writeAnnotated(path string, img findereye.BinaryImage, eyes []findereye.Eye) error {
	gray := findereye.BinaryImageToGray(img)
	canvas := image.NewRGBA(gray.Bounds())
	draw.Draw(canvas, canvas.Bounds(), gray, image.Point{}, draw.Src)

	for _, eye := range eyes {
		arm := max(int(eye.ModuleSize()), 2)
		for i, r := range eye.Rings() {
			cross(canvas, r.Centroid, arm+i, ringColors[i])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, canvas); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func cross(img *image.RGBA, c image.Point, arm int, col color.RGBA) {
	for d := -arm; d <= arm; d++ {
		img.SetRGBA(c.X+d, c.Y, col)
		img.SetRGBA(c.X, c.Y+d, col)
	}
}
