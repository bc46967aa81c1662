// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/GermanBionicSystems/eve/ft81x/dl"
	"github.com/google/go-cmp/cmp"
)

// ringWords decodes what was written to the command ring, in order.
func ringWords(c *fakeChip) []uint32 {
	var out []uint32
	for _, o := range c.writes() {
		if o.addr < RamCmd || o.addr >= RamCmd+4096 {
			continue
		}
		for i := 0; i+4 <= len(o.data); i += 4 {
			out = append(out, binary.LittleEndian.Uint32(o.data[i:]))
		}
	}
	return out
}

func TestPackString(t *testing.T) {
	data := []struct {
		in   string
		want []uint32
	}{
		{"", nil},
		{"a", []uint32{0x00000061}},
		{"abc", []uint32{0x00636261}},
		{"abcd", []uint32{0x64636261, 0}},
		{"Hello", []uint32{0x6c6c6548, 0x0000006f}},
	}
	for _, line := range data {
		if diff := cmp.Diff(packString(line.in), line.want); diff != "" {
			t.Errorf("packString(%q) difference (-got +want):\n%s", line.in, diff)
		}
	}
}

func TestEncoders(t *testing.T) {
	data := []struct {
		name string
		f    func(d *Dev) error
		want []uint32
	}{
		{
			"DLStart",
			func(d *Dev) error { return d.DLStart() },
			[]uint32{0xFFFFFF00},
		},
		{
			"Text",
			func(d *Dev) error { return d.Text(-5, 10, 31, dl.OptCenter, "Hi") },
			[]uint32{CmdText, 0x000afffb, 0x0600001f, 0x00006948},
		},
		{
			"Button",
			func(d *Dev) error { return d.Button(1, 2, 100, 40, 27, 0, "OK") },
			[]uint32{CmdButton, 0x00020001, 0x00280064, 0x0000001b, 0x00004b4f},
		},
		{
			"Number",
			func(d *Dev) error { return d.Number(10, 20, 28, 0, -1) },
			[]uint32{CmdNumber, 0x0014000a, 0x0000001c, 0xffffffff},
		},
		{
			"Slider",
			func(d *Dev) error { return d.Slider(5, 6, 100, 10, 0, 50, 100) },
			[]uint32{CmdSlider, 0x00060005, 0x000a0064, 0x00320000, 100},
		},
		{
			"Progress",
			func(d *Dev) error { return d.Progress(5, 6, 100, 10, 0, 50, 100) },
			[]uint32{CmdProgress, 0x00060005, 0x000a0064, 0x00320000, 100},
		},
		{
			"Spinner",
			func(d *Dev) error { return d.Spinner(240, 136, 0, 1) },
			[]uint32{CmdSpinner, 0x008800f0, 0x00010000},
		},
		{
			"Gauge",
			func(d *Dev) error { return d.Gauge(100, 100, 50, 0, 10, 5, 30, 100) },
			[]uint32{CmdGauge, 0x00640064, 0x00000032, 0x0005000a, 0x0064001e},
		},
		{
			"Dial",
			func(d *Dev) error { return d.Dial(100, 100, 50, 0, 0x8000) },
			[]uint32{CmdDial, 0x00640064, 0x00000032, 0x8000},
		},
		{
			"Track",
			func(d *Dev) error { return d.Track(10, 10, 1, 1, 3) },
			[]uint32{CmdTrack, 0x000a000a, 0x00010001, 3},
		},
		{
			"Gradient",
			func(d *Dev) error { return d.Gradient(0, 0, 0xff0000, 480, 272, 0x0000ff) },
			[]uint32{CmdGradient, 0, 0xff0000, 0x011001e0, 0x0000ff},
		},
		{
			"Colors",
			func(d *Dev) error {
				if err := d.FGColor(0x003870); err != nil {
					return err
				}
				if err := d.BGColor(0x002040); err != nil {
					return err
				}
				return d.GradColor(0xffffff)
			},
			[]uint32{CmdFGColor, 0x003870, CmdBGColor, 0x002040, CmdGradColor, 0xffffff},
		},
		{
			"SetFont2",
			func(d *Dev) error { return d.SetFont2(1, 0x1000, 32) },
			[]uint32{CmdSetFont2, 1, 0x1000, 32},
		},
		{
			"SetBitmap",
			func(d *Dev) error { return d.SetBitmap(0x1000, dl.RGB565, 480, 272) },
			[]uint32{CmdSetBitmap, 0x1000, 0x01e00007, 272},
		},
		{
			"Memcpy",
			func(d *Dev) error { return d.Memcpy(0x2000, 0x1000, 256) },
			[]uint32{CmdMemCpy, 0x2000, 0x1000, 256},
		},
		{
			"Matrix",
			func(d *Dev) error {
				for _, err := range []error{
					d.LoadIdentity(),
					d.Translate(0x10000, -0x10000),
					d.Scale(0x20000, 0x20000),
					d.Rotate(-16384),
					d.SetMatrix(),
				} {
					if err != nil {
						return err
					}
				}
				return nil
			},
			[]uint32{
				CmdLoadIdentity,
				CmdTranslate, 0x10000, 0xffff0000,
				CmdScale, 0x20000, 0x20000,
				CmdRotate, 0xffffc000,
				CmdSetMatrix,
			},
		},
		{
			"SetRotate",
			func(d *Dev) error { return d.SetRotate(1) },
			[]uint32{CmdSetRotate, 1},
		},
		{
			"Anim",
			func(d *Dev) error {
				for _, err := range []error{
					d.AnimStart(1, 0x800000, 1),
					d.AnimXY(1, 240, 136),
					d.AnimDraw(-1),
					d.AnimDrawFrame(240, 136, 0x800000, 3),
					d.AnimStop(-1),
				} {
					if err != nil {
						return err
					}
				}
				return nil
			},
			[]uint32{
				CmdAnimStart, 1, 0x800000, 1,
				CmdAnimXY, 1, 0x008800f0,
				CmdAnimDraw, 0xffffffff,
				CmdAnimFrame, 0x008800f0, 0x800000, 3,
				CmdAnimStop, 0xffffffff,
			},
		},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			c := newFakeChip()
			d := newTestDev(c, nil)
			if err := line.f(d); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(ringWords(c), line.want); diff != "" {
				t.Fatalf("difference (-got +want):\n%s", diff)
			}
			if got := c.get16(RegCmdWrite); got != 0 {
				t.Fatal("encoders must not commit")
			}
		})
	}
}

func TestEmptyLabels(t *testing.T) {
	c := newFakeChip()
	d := newTestDev(c, nil)
	if err := d.Text(0, 0, 26, 0, ""); err != nil {
		t.Fatal(err)
	}
	if err := d.Button(0, 0, 10, 10, 26, 0, ""); err != nil {
		t.Fatal(err)
	}
	if len(c.ops) != 0 {
		t.Fatalf("unexpected bus traffic: %v", c.ops)
	}
}

func TestSwap(t *testing.T) {
	c := newFakeChip()
	c.onWrite = drain
	d := newTestDev(c, nil)
	if err := d.DLStart(); err != nil {
		t.Fatal(err)
	}
	if err := d.Cmd(dl.ClearColorRGB(0, 0, 0xff), dl.Clear(true, true, true)); err != nil {
		t.Fatal(err)
	}
	if err := d.Swap(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := []uint32{CmdDLStart, 0x020000ff, 0x26000007, 0, CmdSwap}
	if diff := cmp.Diff(ringWords(c), want); diff != "" {
		t.Fatalf("difference (-got +want):\n%s", diff)
	}
	if got := c.get16(RegCmdWrite); got != 20 {
		t.Fatalf("REG_CMD_WRITE = %d, want 20", got)
	}
}

// answer makes the coprocessor fill the result slot at offset with v when
// the command is committed.
func answer(offset uint16, v uint32) func(c *fakeChip, addr uint32, data []byte) {
	return func(c *fakeChip, addr uint32, data []byte) {
		if addr == RegCmdWrite {
			c.put32(RamCmd+uint32(offset), v)
			drain(c, addr, data)
		}
	}
}

func TestQuery(t *testing.T) {
	data := []struct {
		name string
		f    func(d *Dev, ctx context.Context) (uint32, error)
		cmd  uint32
	}{
		{"GetPtr", (*Dev).GetPtr, CmdGetPtr},
		{"Calibrate", (*Dev).Calibrate, CmdCalibrate},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			c := newFakeChip()
			d := newTestDev(c, nil)
			// Put something ahead in the ring so the slot is not at 0.
			if err := d.Cmd(CmdDLStart); err != nil {
				t.Fatal(err)
			}
			c.onWrite = answer(8, 0x12340)
			v, err := line.f(d, context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if v != 0x12340 {
				t.Fatalf("got %#x", v)
			}
			if diff := cmp.Diff(ringWords(c), []uint32{CmdDLStart, line.cmd, 0}); diff != "" {
				t.Fatalf("difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestQuery_Timeout(t *testing.T) {
	c := newFakeChip()
	opts := DefaultOpts
	opts.WaitTimeout = 0
	d := newTestDev(c, &opts)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := d.GetPtr(ctx); err == nil {
		t.Fatal("expected timeout")
	}
}

func TestQuery_Fault(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	c := newFakeChip()
	c.put16(RegCmdRead, 0xFFF)
	d := newTestDev(c, nil)
	v, err := d.GetPtr(context.Background())
	if !errors.Is(err, ErrFault) || v != 0 {
		t.Fatalf("GetPtr() = %#x, %v", v, err)
	}
	if d.cmdWrite != 0 {
		t.Fatalf("cursor = %d", d.cmdWrite)
	}
}

// slowCoprocessor drains the ring and fills the result slot at offset only
// once after has elapsed since the commit.
func slowCoprocessor(c *fakeChip, offset uint16, v uint32, after time.Duration) {
	var committed time.Time
	c.onWrite = func(c *fakeChip, addr uint32, data []byte) {
		if addr == RegCmdWrite {
			committed = time.Now()
		}
	}
	c.onRead = func(c *fakeChip, addr uint32, n int) {
		if addr == RegCmdRead && !committed.IsZero() && time.Since(committed) > after {
			c.put32(RamCmd+uint32(offset), v)
			c.put16(RegCmdRead, c.get16(RegCmdWrite))
		}
	}
}

func TestCalibrate_WaitsForUser(t *testing.T) {
	opts := DefaultOpts
	opts.WaitTimeout = time.Millisecond

	c := newFakeChip()
	slowCoprocessor(c, 4, 1, 20*time.Millisecond)
	d := newTestDev(c, &opts)
	if v, err := d.Calibrate(context.Background()); err != nil || v != 1 {
		t.Fatalf("Calibrate() = %d, %v", v, err)
	}

	// GetPtr only waits on the coprocessor and keeps the bound.
	c = newFakeChip()
	slowCoprocessor(c, 4, 1, time.Second)
	d = newTestDev(c, &opts)
	if _, err := d.GetPtr(context.Background()); !errors.Is(err, ErrTimeout) {
		t.Fatalf("GetPtr() = %v", err)
	}
}
