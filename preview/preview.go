// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package preview implements a display.Drawer that renders a downscaled copy
// of the screen to a terminal using ANSI 256 color codes.
//
// Useful to see what is sent to a panel that is out of sight, or to develop
// screens before the panel comes by mail.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	// Width and Height of the emulated screen in pixels.
	Width, Height int
	// Columns is the number of terminal columns used. Defaults to 80.
	Columns int
	Palette *ansi256.Palette

	_ struct{}
}

// Dev renders to a terminal.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	frame   *image.RGBA
	cols    int
	rows    int
	drawn   bool

	buf bytes.Buffer
}

// New returns a Dev that renders to stdout, translating the escape codes on
// consoles that need it.
func New(opts *Opts) *Dev {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that renders to w.
func NewWriter(w io.Writer, opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	cols := opts.Columns
	if cols <= 0 {
		cols = 80
	}
	if cols > opts.Width {
		cols = opts.Width
	}
	// Terminal cells are about twice as high as they are wide.
	rows := 1
	if opts.Width > 0 {
		rows = cols * opts.Height / opts.Width / 2
	}
	if rows < 1 {
		rows = 1
	}
	frame := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(frame, frame.Bounds(), image.Black, image.Point{}, draw.Src)
	return &Dev{w: w, palette: *p, frame: frame, cols: cols, rows: rows}
}

func (d *Dev) String() string {
	return fmt.Sprintf("Preview{%dx%d}", d.cols, d.rows)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.frame.Bounds()
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(d.frame, r, src, sp, draw.Src)
	return d.refresh()
}

// refresh redraws the whole preview, over the previous one if any. Each
// cell shows the pixel at its top left corner.
func (d *Dev) refresh() error {
	d.buf.Reset()
	if d.drawn {
		fmt.Fprintf(&d.buf, "\033[%dA", d.rows)
	}
	b := d.frame.Bounds()
	for y := 0; y < d.rows; y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		sy := b.Min.Y + y*b.Dy()/d.rows
		for x := 0; x < d.cols; x++ {
			sx := b.Min.X + x*b.Dx()/d.cols
			c := d.frame.RGBAAt(sx, sy)
			_, _ = io.WriteString(&d.buf, d.palette.Block(color.NRGBA{c.R, c.G, c.B, 255}))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
