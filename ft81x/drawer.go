// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"context"
	"image"
	"image/color"
	"image/draw"

	"github.com/GermanBionicSystems/eve/ft81x/dl"
	"periph.io/x/conn/v3/display"
)

// The frame shown by Draw lives in RAM_G, below the working area used by
// the coprocessor. Panels too large for RGB565 there fall back to RGB332.

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	if d.fbFormat == dl.RGB332 {
		return rgb332Model
	}
	return rgb565Model
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
//
// The pixels are kept in RAM_G and a display list showing them as a bitmap
// is made current, replacing whatever was on screen.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.frame == nil {
		d.frame = image.NewRGBA(d.rect)
		draw.Draw(d.frame, d.rect, image.Black, image.Point{}, draw.Src)
	}
	draw.Draw(d.frame, r, src, sp, draw.Src)
	r = r.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	// Whole rows are sent so the upload is a single contiguous block.
	rows := image.Rect(d.rect.Min.X, r.Min.Y, d.rect.Max.X, r.Max.Y)
	buf := encodeFrame(d.frame, rows, d.fbFormat)
	addr := d.fbAddr + uint32((rows.Min.Y-d.rect.Min.Y)*d.rect.Dx()*bytesPerPixel(d.fbFormat))
	if _, err := d.writeBlock(addr, buf); err != nil {
		return err
	}
	return d.showFrame(context.Background())
}

func (d *Dev) showFrame(ctx context.Context) error {
	p := d.opts.Panel
	w, h := uint16(d.rect.Dx()), uint16(d.rect.Dy())
	if err := d.cmd(
		CmdDLStart,
		dl.ClearColorRGB(0, 0, 0),
		dl.Clear(true, true, true),
		CmdSetBitmap, d.fbAddr, pair(w, uint16(d.fbFormat)), uint32(h),
		dl.Begin(dl.Bitmaps),
		dl.Vertex2F(int16(p.OffsetX*16), int16(p.OffsetY*16)),
		dl.End(),
	); err != nil {
		return err
	}
	return d.run(ctx, dl.Display(), CmdSwap)
}

// frameFormat returns the densest format that fits a w by h frame below the
// coprocessor working area.
func frameFormat(w, h int) dl.Format {
	if w*h*2 <= int(RamGWorking-RamG) {
		return dl.RGB565
	}
	return dl.RGB332
}

func bytesPerPixel(f dl.Format) int {
	if f == dl.RGB332 {
		return 1
	}
	return 2
}

// encodeFrame converts the r part of img to f, row after row.
func encodeFrame(img *image.RGBA, r image.Rectangle, f dl.Format) []byte {
	bpp := bytesPerPixel(f)
	out := make([]byte, 0, r.Dx()*r.Dy()*bpp)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if f == dl.RGB332 {
				out = append(out, c.R&0xE0|c.G>>3&0x1C|c.B>>6)
			} else {
				v := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
				out = append(out, byte(v), byte(v>>8))
			}
		}
	}
	return out
}

var rgb565Model = color.ModelFunc(func(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r>>8) & 0xF8, G: uint8(g>>8) & 0xFC, B: uint8(b>>8) & 0xF8, A: 255}
})

var rgb332Model = color.ModelFunc(func(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r>>8) & 0xE0, G: uint8(g>>8) & 0xE0, B: uint8(b>>8) & 0xC0, A: 255}
})

var _ display.Drawer = (*Dev)(nil)
