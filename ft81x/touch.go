// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/GermanBionicSystems/eve/ft81x/dl"
)

// NoTouch is the coordinate reported by the touch registers when the screen
// is not touched.
const NoTouch = -32768

// TouchTag returns the tag of the object being touched, 0 if none.
func (d *Dev) TouchTag() (uint8, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rd8(RegTouchTag)
}

// TouchTagXY returns the screen coordinate the tag lookup used.
func (d *Dev) TouchTagXY() (image.Point, error) {
	return d.readXY(RegTouchTagXY)
}

// TouchScreenXY returns the calibrated touch position in pixels, or
// NoTouch, NoTouch when the screen is not touched.
func (d *Dev) TouchScreenXY() (image.Point, error) {
	return d.readXY(RegTouchScreenXY)
}

// TouchRawXY returns the uncalibrated ADC readings, 0xFFFF, 0xFFFF when the
// screen is not touched.
func (d *Dev) TouchRawXY() (x, y uint16, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.rd32(RegTouchRawXY)
	return uint16(v >> 16), uint16(v), err
}

func (d *Dev) readXY(addr uint32) (image.Point, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.rd32(addr)
	return image.Pt(int(int16(v>>16)), int(int16(v))), err
}

// TouchTransform is the matrix mapping raw touch readings to screen
// coordinates, in 16.16 fixed point:
//
//	x = A*rx + B*ry + C
//	y = D*rx + E*ry + F
type TouchTransform [6]int32

// SetTouchTransform writes t to REG_TOUCH_TRANSFORM_A..F. Use it to restore a
// calibration saved from CalibrateManual or TouchTransform.
func (d *Dev) SetTouchTransform(t TouchTransform) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setTouchTransform(t)
}

// TouchTransform returns the current content of REG_TOUCH_TRANSFORM_A..F.
func (d *Dev) TouchTransform() (TouchTransform, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var t TouchTransform
	for i := range t {
		v, err := d.rd32(RegTouchTransformA + uint32(i)*4)
		if err != nil {
			return t, err
		}
		t[i] = int32(v)
	}
	return t, nil
}

func (d *Dev) setTouchTransform(t TouchTransform) error {
	for i, v := range t {
		if err := d.wr32(RegTouchTransformA+uint32(i)*4, uint32(v)); err != nil {
			return err
		}
	}
	return nil
}

// SetBacklight sets the backlight PWM duty cycle, 0 (off) to 128 (full).
func (d *Dev) SetBacklight(duty uint8) error {
	if duty > 128 {
		duty = 128
	}
	return d.Write8(RegPWMDuty, duty)
}

// ErrDegenerateCalibration is returned by CalibrateManual when the three
// touches are colinear.
var ErrDegenerateCalibration = errors.New("ft81x: calibration points are colinear")

// CalibrateManual shows three targets in turn, reads where each one is
// touched and programs the resulting transform. It returns the transform so
// it can be saved and restored later with SetTouchTransform.
//
// It blocks until the three targets are tapped or ctx is done.
// Opts.WaitTimeout bounds the drawing of the targets but not the wait for a
// tap.
func (d *Dev) CalibrateManual(ctx context.Context) (TouchTransform, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var t TouchTransform
	targets := calibrationTargets(d.opts.Panel)
	var touched [3]image.Point
	for i, p := range targets {
		if err := d.drawTarget(ctx, i, p); err != nil {
			return t, err
		}
		d.bus.Delay(300 * time.Millisecond)
		var err error
		if touched[i], err = d.waitTouch(ctx); err != nil {
			return t, err
		}
		d.debug("calibration target %d at %v touched at %v", i, p, touched[i])
	}
	t, ok := touchTransform(targets, touched)
	if !ok {
		return t, ErrDegenerateCalibration
	}
	return t, d.setTouchTransform(t)
}

// calibrationTargets returns the three points, in frame coordinates, that
// CalibrateManual asks to tap.
func calibrationTargets(p *Panel) [3]image.Point {
	w, h := p.Width, p.Height
	o := image.Pt(p.OffsetX, p.OffsetY)
	return [3]image.Point{
		image.Pt(w*15/100, h*15/100).Add(o),
		image.Pt(w*85/100, h/2).Add(o),
		image.Pt(w/2, h*85/100).Add(o),
	}
}

func (d *Dev) drawTarget(ctx context.Context, i int, p image.Point) error {
	panel := d.opts.Panel
	cx := int16(panel.Width/2 + panel.OffsetX)
	words := []uint32{
		CmdDLStart,
		dl.ClearColorRGB(0, 0, 0),
		dl.Clear(true, true, true),
		dl.ColorRGB(255, 0, 0),
		dl.PointSize(20 * 16),
		dl.Begin(dl.Points),
		dl.Vertex2F(int16(p.X*16), int16(p.Y*16)),
		dl.End(),
		dl.ColorRGB(255, 255, 255),
	}
	words = appendText(words, cx, int16(panel.Height/3+panel.OffsetY), 27, dl.OptCenter, "Calibrating")
	words = appendText(words, cx, int16(panel.Height/2+panel.OffsetY), 27, dl.OptCenter, "Please tap the dots")
	words = appendText(words, int16(p.X), int16(p.Y), 27, dl.OptCenter, string(rune('1'+i)))
	words = append(words, dl.Display(), CmdSwap)
	return d.run(ctx, words...)
}

// waitTouch polls REG_TOUCH_DIRECT_XY until the panel is touched. Bit 31 is
// set while it is not.
func (d *Dev) waitTouch(ctx context.Context) (image.Point, error) {
	ctx, cancel := userContext(ctx)
	defer cancel()
	for {
		v, err := d.rd32(RegTouchDirectXY)
		if err != nil {
			return image.Point{}, err
		}
		if v&0x80000000 == 0 {
			return image.Pt(int(v>>16&0x3FF), int(v&0x3FF)), nil
		}
		if err := ctx.Err(); err != nil {
			return image.Point{}, errors.Join(ErrTimeout, err)
		}
		d.bus.Delay(10 * time.Millisecond)
	}
}

// touchTransform solves the affine transform mapping the touch readings t
// onto the screen points s. ok is false when the readings are colinear.
func touchTransform(s, t [3]image.Point) (m TouchTransform, ok bool) {
	tx0, ty0 := int64(t[0].X), int64(t[0].Y)
	tx1, ty1 := int64(t[1].X), int64(t[1].Y)
	tx2, ty2 := int64(t[2].X), int64(t[2].Y)
	k := (tx0-tx2)*(ty1-ty2) - (tx1-tx2)*(ty0-ty2)
	if k == 0 {
		return m, false
	}
	solve := func(d0, d1, d2 int64) [3]int32 {
		a := (d0-d2)*(ty1-ty2) - (d1-d2)*(ty0-ty2)
		b := (tx0-tx2)*(d1-d2) - (d0-d2)*(tx1-tx2)
		c := ty0*(tx2*d1-tx1*d2) + ty1*(tx0*d2-tx2*d0) + ty2*(tx1*d0-tx0*d1)
		return [3]int32{int32((a << 16) / k), int32((b << 16) / k), int32((c << 16) / k)}
	}
	x := solve(int64(s[0].X), int64(s[1].X), int64(s[2].X))
	y := solve(int64(s[0].Y), int64(s[1].Y), int64(s[2].Y))
	return TouchTransform{x[0], x[1], x[2], y[0], y[1], y[2]}, true
}

func appendText(words []uint32, x, y int16, font, options uint16, s string) []uint32 {
	str := packString(s)
	if str == nil {
		return words
	}
	words = append(words, CmdText, xy(x, y), pair(options, font))
	return append(words, str...)
}
