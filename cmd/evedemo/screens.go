// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/GermanBionicSystems/eve/ft81x"
	"github.com/GermanBionicSystems/eve/ft81x/dl"
)

const (
	dotTag     = 1
	dotSmall   = 30
	dotPressed = 120
)

// center returns the middle of the visible area in frame coordinates.
func center(d *ft81x.Dev) (int16, int16) {
	b, p := d.Bounds(), d.Panel()
	return int16(b.Dx()/2 + p.OffsetX), int16(b.Dy()/2 + p.OffsetY)
}

func clearScreen(ctx context.Context, d *ft81x.Dev) error {
	if err := d.DLStart(); err != nil {
		return err
	}
	if err := d.Cmd(dl.ClearColorRGB(0, 0, 0), dl.Clear(true, true, true)); err != nil {
		return err
	}
	return d.Swap(ctx)
}

// dotScreen draws a blue dot of radius size, tagged so touching it can be
// detected, behind the Matrix Orbital name.
func dotScreen(ctx context.Context, d *ft81x.Dev, size uint16) error {
	x, y := center(d)
	if err := d.DLStart(); err != nil {
		return err
	}
	if err := d.Cmd(
		dl.VertexFormat(0),
		dl.ClearColorRGB(0, 0, 0),
		dl.Clear(true, true, true),
		dl.ColorRGB(26, 26, 192),
		dl.PointSize(size*16),
		dl.Begin(dl.Points),
		dl.Tag(dotTag),
		dl.Vertex2F(x, y),
		dl.End(),
		dl.ColorRGB(255, 255, 255),
	); err != nil {
		return err
	}
	if err := d.Text(x, y, 30, dl.OptCenter, " MATRIX         ORBITAL"); err != nil {
		return err
	}
	return d.Swap(ctx)
}

// demo shows the dot screen and grows the dot while it is touched, until
// ctx is done.
func demo(ctx context.Context, d *ft81x.Dev) error {
	if err := dotScreen(ctx, d, dotSmall); err != nil {
		return err
	}
	t := time.NewTicker(10 * time.Millisecond)
	defer t.Stop()
	pressed := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
		tag, err := d.TouchTag()
		if err != nil {
			return err
		}
		if (tag == dotTag) == pressed {
			continue
		}
		pressed = !pressed
		size := uint16(dotSmall)
		if pressed {
			size = dotPressed
		}
		if err := dotScreen(ctx, d, size); err != nil {
			return err
		}
	}
}

// customFont loads a font converted by EVE Asset Builder, the xfont at
// RAM_G and the glyphs 4kB further, and writes with it until ctx is done.
func customFont(ctx context.Context, d *ft81x.Dev, xfont, glyph string) error {
	for _, f := range []struct {
		path      string
		addr, end uint32
	}{
		{xfont, ft81x.RamG, ft81x.RamG + 4096},
		{glyph, ft81x.RamG + 4096, ft81x.RamGWorking},
	} {
		b, err := os.ReadFile(f.path)
		if err != nil {
			return err
		}
		if f.addr+uint32(len(b)) > f.end {
			return fmt.Errorf("%s is too large, %d bytes", f.path, len(b))
		}
		if _, err := d.WriteBlock(f.addr, b); err != nil {
			return err
		}
		log.Printf("loaded %s, %d bytes at %#x", f.path, len(b), f.addr)
	}
	x, y := center(d)
	if err := d.DLStart(); err != nil {
		return err
	}
	if err := d.Cmd(
		dl.VertexFormat(0),
		dl.ClearColorRGB(0, 0, 0),
		dl.Clear(true, true, true),
		dl.ColorRGB(255, 255, 255),
	); err != nil {
		return err
	}
	if err := d.SetFont2(1, ft81x.RamG, 0); err != nil {
		return err
	}
	if err := d.Text(x, y, 1, dl.OptCenter, "MONOSPACE\n821BT_64"); err != nil {
		return err
	}
	if err := d.Swap(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}
