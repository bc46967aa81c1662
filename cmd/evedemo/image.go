// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/webp"
	"periph.io/x/conn/v3/display"
)

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// fit scales src to the largest size that fits r while keeping its aspect
// ratio, centered on a black background.
func fit(src image.Image, r image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(r)
	draw.Draw(dst, r, image.Black, image.Point{}, draw.Src)
	sb := src.Bounds()
	if sb.Empty() || r.Empty() {
		return dst
	}
	w, h := r.Dx(), sb.Dy()*r.Dx()/sb.Dx()
	if h > r.Dy() {
		w, h = sb.Dx()*r.Dy()/sb.Dy(), r.Dy()
	}
	at := r.Min.Add(image.Pt((r.Dx()-w)/2, (r.Dy()-h)/2))
	draw.CatmullRom.Scale(dst, image.Rectangle{Min: at, Max: at.Add(image.Pt(w, h))}, src, sb, draw.Src, nil)
	return dst
}

func show(dst display.Drawer, img image.Image) error {
	r := dst.Bounds()
	return dst.Draw(r, fit(img, r), r.Min)
}

// mirror forwards everything to the primary Drawer and copies the drawing
// to a second one.
type mirror struct {
	display.Drawer
	second display.Drawer
}

func (m mirror) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if err := m.Drawer.Draw(r, src, sp); err != nil {
		return err
	}
	return m.second.Draw(r, src, sp)
}

// testCard renders color bars, a gray ramp, a circle and a caption at the
// size of r.
func testCard(r image.Rectangle, caption string) (image.Image, error) {
	w, h := r.Dx(), r.Dy()
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("test card of %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)
	dc.SetColor(color.Black)
	dc.Clear()

	bars := []color.Color{
		color.White,
		color.RGBA{255, 255, 0, 255},
		color.RGBA{0, 255, 255, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{255, 0, 255, 255},
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 0, 255, 255},
		color.Black,
	}
	bw := float64(w) / float64(len(bars))
	for i, c := range bars {
		dc.SetColor(c)
		dc.DrawRectangle(float64(i)*bw, 0, bw, float64(h)*2/3)
		dc.Fill()
	}
	for x := 0; x < w; x++ {
		dc.SetColor(color.Gray{Y: uint8(x * 255 / (w - 1))})
		dc.DrawRectangle(float64(x), float64(h)*2/3, 1, float64(h)/6)
		dc.Fill()
	}

	radius := float64(h) * 0.4
	if w < h {
		radius = float64(w) * 0.4
	}
	dc.SetColor(color.White)
	dc.SetLineWidth(2)
	dc.DrawCircle(float64(w)/2, float64(h)/2, radius)
	dc.Stroke()

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: float64(h) / 12}))
	dc.DrawStringAnchored(fmt.Sprintf("%s %dx%d", caption, w, h), float64(w)/2, float64(h)*11/12, 0.5, 0.5)
	return dc.Image(), nil
}
