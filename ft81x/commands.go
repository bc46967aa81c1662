// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"context"

	"github.com/GermanBionicSystems/eve/ft81x/dl"
)

// Coprocessor commands. FT81x Series Programmers Guide chapter 5 and BT81x
// Series Programming Guide chapter 5.
const (
	CmdDLStart      uint32 = 0xFFFFFF00
	CmdSwap         uint32 = 0xFFFFFF01
	CmdInterrupt    uint32 = 0xFFFFFF02
	CmdBGColor      uint32 = 0xFFFFFF09
	CmdFGColor      uint32 = 0xFFFFFF0A
	CmdGradient     uint32 = 0xFFFFFF0B
	CmdText         uint32 = 0xFFFFFF0C
	CmdButton       uint32 = 0xFFFFFF0D
	CmdKeys         uint32 = 0xFFFFFF0E
	CmdProgress     uint32 = 0xFFFFFF0F
	CmdSlider       uint32 = 0xFFFFFF10
	CmdScrollbar    uint32 = 0xFFFFFF11
	CmdToggle       uint32 = 0xFFFFFF12
	CmdGauge        uint32 = 0xFFFFFF13
	CmdClock        uint32 = 0xFFFFFF14
	CmdCalibrate    uint32 = 0xFFFFFF15
	CmdSpinner      uint32 = 0xFFFFFF16
	CmdStop         uint32 = 0xFFFFFF17
	CmdMemCRC       uint32 = 0xFFFFFF18
	CmdRegRead      uint32 = 0xFFFFFF19
	CmdMemWrite     uint32 = 0xFFFFFF1A
	CmdMemSet       uint32 = 0xFFFFFF1B
	CmdMemZero      uint32 = 0xFFFFFF1C
	CmdMemCpy       uint32 = 0xFFFFFF1D
	CmdAppend       uint32 = 0xFFFFFF1E
	CmdSnapshot     uint32 = 0xFFFFFF1F
	CmdInflate      uint32 = 0xFFFFFF22
	CmdGetPtr       uint32 = 0xFFFFFF23
	CmdLoadImage    uint32 = 0xFFFFFF24
	CmdGetProps     uint32 = 0xFFFFFF25
	CmdLoadIdentity uint32 = 0xFFFFFF26
	CmdTranslate    uint32 = 0xFFFFFF27
	CmdScale        uint32 = 0xFFFFFF28
	CmdRotate       uint32 = 0xFFFFFF29
	CmdSetMatrix    uint32 = 0xFFFFFF2A
	CmdSetFont      uint32 = 0xFFFFFF2B
	CmdTrack        uint32 = 0xFFFFFF2C
	CmdDial         uint32 = 0xFFFFFF2D
	CmdNumber       uint32 = 0xFFFFFF2E
	CmdScreenSaver  uint32 = 0xFFFFFF2F
	CmdSketch       uint32 = 0xFFFFFF30
	CmdLogo         uint32 = 0xFFFFFF31
	CmdColdStart    uint32 = 0xFFFFFF32
	CmdGetMatrix    uint32 = 0xFFFFFF33
	CmdGradColor    uint32 = 0xFFFFFF34
	CmdSetRotate    uint32 = 0xFFFFFF36
	CmdMediaFIFO    uint32 = 0xFFFFFF39
	CmdPlayVideo    uint32 = 0xFFFFFF3A
	CmdSetFont2     uint32 = 0xFFFFFF3B
	CmdRomFont      uint32 = 0xFFFFFF3F
	CmdVideoStart   uint32 = 0xFFFFFF40
	CmdVideoFrame   uint32 = 0xFFFFFF41
	CmdSetBitmap    uint32 = 0xFFFFFF43
	CmdFlashErase   uint32 = 0xFFFFFF44
	CmdFlashWrite   uint32 = 0xFFFFFF45
	CmdFlashRead    uint32 = 0xFFFFFF46
	CmdFlashUpdate  uint32 = 0xFFFFFF47
	CmdFlashDetach  uint32 = 0xFFFFFF48
	CmdFlashAttach  uint32 = 0xFFFFFF49
	CmdFlashFast    uint32 = 0xFFFFFF4A
	CmdClearCache   uint32 = 0xFFFFFF4F
	CmdInflate2     uint32 = 0xFFFFFF50
	CmdAnimStart    uint32 = 0xFFFFFF53
	CmdAnimStop     uint32 = 0xFFFFFF54
	CmdAnimXY       uint32 = 0xFFFFFF55
	CmdAnimDraw     uint32 = 0xFFFFFF56
	CmdAnimFrame    uint32 = 0xFFFFFF5A
)

// Each encoder below appends one coprocessor command to the ring. Nothing
// happens on screen until the commands are committed, usually by Swap or
// Execute.

// DLStart starts a new display list in the coprocessor.
func (d *Dev) DLStart() error {
	return d.Cmd(CmdDLStart)
}

// Swap ends the display list being built, makes it current and waits until
// the coprocessor is done.
func (d *Dev) Swap(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.run(ctx, dl.Display(), CmdSwap)
}

// Text draws s. An empty string draws nothing.
func (d *Dev) Text(x, y int16, font, options uint16, s string) error {
	return d.Cmd(appendText(nil, x, y, font, options, s)...)
}

// Button draws a button labelled s. An empty label draws nothing.
func (d *Dev) Button(x, y int16, w, h, font, options uint16, s string) error {
	str := packString(s)
	if str == nil {
		return nil
	}
	return d.Cmd(append([]uint32{CmdButton, xy(x, y), pair(h, w), pair(options, font)}, str...)...)
}

// Number draws n in decimal.
func (d *Dev) Number(x, y int16, font, options uint16, n int32) error {
	return d.Cmd(CmdNumber, xy(x, y), pair(options, font), uint32(n))
}

// Slider draws a slider at val out of rng.
func (d *Dev) Slider(x, y int16, w, h, options, val, rng uint16) error {
	return d.Cmd(CmdSlider, xy(x, y), pair(h, w), pair(val, options), uint32(rng))
}

// Progress draws a progress bar at val out of rng.
func (d *Dev) Progress(x, y int16, w, h, options, val, rng uint16) error {
	return d.Cmd(CmdProgress, xy(x, y), pair(h, w), pair(val, options), uint32(rng))
}

// Spinner draws an animated busy indicator. It keeps running until
// another command is sent; CmdStop stops it explicitly.
func (d *Dev) Spinner(x, y int16, style, scale uint16) error {
	return d.Cmd(CmdSpinner, xy(x, y), pair(scale, style))
}

// Gauge draws a gauge of radius r.
func (d *Dev) Gauge(x, y int16, r, options, major, minor, val, rng uint16) error {
	return d.Cmd(CmdGauge, xy(x, y), pair(options, r), pair(minor, major), pair(rng, val))
}

// Dial draws a rotary dial of radius r at val, 0 to 65535 for a full turn.
func (d *Dev) Dial(x, y int16, r, options, val uint16) error {
	return d.Cmd(CmdDial, xy(x, y), pair(options, r), uint32(val))
}

// Track starts tracking touches in the area for tag. w=1, h=1 tracks
// rotary movement around x, y.
func (d *Dev) Track(x, y int16, w, h int16, tag uint8) error {
	return d.Cmd(CmdTrack, xy(x, y), xy(w, h), uint32(tag))
}

// Gradient fills the screen with a gradient from rgb0 at x0, y0 to rgb1 at
// x1, y1. The colors are 0xRRGGBB.
func (d *Dev) Gradient(x0, y0 int16, rgb0 uint32, x1, y1 int16, rgb1 uint32) error {
	return d.Cmd(CmdGradient, xy(x0, y0), rgb0, xy(x1, y1), rgb1)
}

// GradColor sets the highlight color of 3D widgets.
func (d *Dev) GradColor(rgb uint32) error {
	return d.Cmd(CmdGradColor, rgb)
}

// FGColor sets the foreground color of widgets.
func (d *Dev) FGColor(rgb uint32) error {
	return d.Cmd(CmdFGColor, rgb)
}

// BGColor sets the background color of widgets.
func (d *Dev) BGColor(rgb uint32) error {
	return d.Cmd(CmdBGColor, rgb)
}

// SetFont2 registers a custom font at addr in RAM_G as handle.
func (d *Dev) SetFont2(handle, addr, firstChar uint32) error {
	return d.Cmd(CmdSetFont2, handle, addr, firstChar)
}

// SetBitmap generates the display list instructions for a bitmap of the
// given format and size at addr.
func (d *Dev) SetBitmap(addr uint32, f dl.Format, w, h uint16) error {
	return d.Cmd(CmdSetBitmap, addr, pair(w, uint16(f)), uint32(h))
}

// Memcpy copies num bytes of chip memory from src to dst.
func (d *Dev) Memcpy(dst, src, num uint32) error {
	return d.Cmd(CmdMemCpy, dst, src, num)
}

// LoadIdentity resets the bitmap transform matrix.
func (d *Dev) LoadIdentity() error {
	return d.Cmd(CmdLoadIdentity)
}

// Translate translates the bitmap transform matrix, in 16.16 fixed point.
func (d *Dev) Translate(tx, ty int32) error {
	return d.Cmd(CmdTranslate, uint32(tx), uint32(ty))
}

// Scale scales the bitmap transform matrix, in 16.16 fixed point.
func (d *Dev) Scale(sx, sy int32) error {
	return d.Cmd(CmdScale, uint32(sx), uint32(sy))
}

// Rotate rotates the bitmap transform matrix clockwise, 65536 units for a
// full turn.
func (d *Dev) Rotate(a int32) error {
	return d.Cmd(CmdRotate, uint32(a))
}

// SetMatrix writes the bitmap transform matrix to the display list.
func (d *Dev) SetMatrix() error {
	return d.Cmd(CmdSetMatrix)
}

// SetRotate rotates the whole screen, including touch. See REG_ROTATE for
// the values.
func (d *Dev) SetRotate(r uint32) error {
	return d.Cmd(CmdSetRotate, r)
}

// AnimStart starts the animation at aoptr in flash on channel ch.
func (d *Dev) AnimStart(ch int32, aoptr, loop uint32) error {
	return d.Cmd(CmdAnimStart, uint32(ch), aoptr, loop)
}

// AnimStop stops the animation on channel ch, -1 for all of them.
func (d *Dev) AnimStop(ch int32) error {
	return d.Cmd(CmdAnimStop, uint32(ch))
}

// AnimXY moves the animation on channel ch.
func (d *Dev) AnimXY(ch int32, x, y int16) error {
	return d.Cmd(CmdAnimXY, uint32(ch), xy(x, y))
}

// AnimDraw draws the current frame of the animation on channel ch.
func (d *Dev) AnimDraw(ch int32) error {
	return d.Cmd(CmdAnimDraw, uint32(ch))
}

// AnimDrawFrame draws one frame of the animation at aoptr.
func (d *Dev) AnimDrawFrame(x, y int16, aoptr, frame uint32) error {
	return d.Cmd(CmdAnimFrame, xy(x, y), aoptr, frame)
}

// GetPtr returns the first free address in RAM_G after the last
// CMD_INFLATE or CMD_LOADIMAGE. It commits and waits for the coprocessor.
//
// ErrFault is returned when the coprocessor faulted before producing the
// result; the device is recovered already.
func (d *Dev) GetPtr(ctx context.Context) (uint32, error) {
	return d.query(ctx, CmdGetPtr, true)
}

// Calibrate runs the built in touch calibration screen and returns 0 when
// it failed. It commits and waits for the user to tap the three dots; only
// ctx bounds the wait, Opts.WaitTimeout does not apply.
//
// ErrFault is returned as for GetPtr.
func (d *Dev) Calibrate(ctx context.Context) (uint32, error) {
	return d.query(ctx, CmdCalibrate, false)
}

// query sends cmd with one result slot, then reads the slot back once the
// coprocessor has filled it. bounded applies Opts.WaitTimeout to the wait.
func (d *Dev) query(ctx context.Context, cmd uint32, bounded bool) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.cmd(cmd); err != nil {
		return 0, err
	}
	slot := d.cmdWrite
	if err := d.cmd(0); err != nil {
		return 0, err
	}
	if err := d.commit(); err != nil {
		return 0, err
	}
	recovered, err := d.drain(ctx, bounded)
	if err != nil {
		return 0, err
	}
	if recovered {
		return 0, ErrFault
	}
	return d.rd32(RamCmd + uint32(slot))
}

func xy(x, y int16) uint32 {
	return uint32(uint16(y))<<16 | uint32(uint16(x))
}

func pair(hi, lo uint16) uint32 {
	return uint32(hi)<<16 | uint32(lo)
}

// packString packs s 4 bytes per word, little endian, NUL terminated and
// zero padded to a whole word. It returns nil for an empty string.
func packString(s string) []uint32 {
	if len(s) == 0 {
		return nil
	}
	out := make([]uint32, len(s)/4+1)
	for i := 0; i < len(s); i++ {
		out[i/4] |= uint32(s[i]) << (8 * uint(i%4))
	}
	return out
}
