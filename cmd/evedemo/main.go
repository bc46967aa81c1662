// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// evedemo drives an EVE display: the Matrix Orbital demo screen with a
// touchable dot, a custom font, an image or a generated test card.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"

	"github.com/GermanBionicSystems/eve/bridge"
	"github.com/GermanBionicSystems/eve/ft81x"
	"github.com/GermanBionicSystems/eve/preview"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"periph.io/x/conn/v3/display"
)

func mainImpl() error {
	via := flag.String("bridge", "ftdi", "transport: ftdi or spi")
	port := flag.String("spi", "", "SPI port to use with -bridge spi")
	pd := flag.String("pd", "", "GPIO connected to PD_N with -bridge spi")
	panel := &ft81x.Panel43
	flag.Func("panel", "panel: 70, 50, 43, 43hd, 39, 38, 35, 29, 40, 101, 70i, 70iwg or 24", func(s string) error {
		p, err := ft81x.PanelByName(s)
		if err == nil {
			panel = p
		}
		return err
	})
	board := ft81x.EVE3
	flag.Var(&board, "board", "board generation: EVE2, EVE3 or EVE4")
	touch := ft81x.TouchNone
	flag.Var(&touch, "touch", "touch panel: none, resistive or capacitive")
	calibrate := flag.Bool("calibrate", false, "calibrate the touch panel, always done for resistive panels")
	imgPath := flag.String("image", "", "image to show, scaled to the panel")
	card := flag.Bool("testcard", false, "show a generated test card")
	xfont := flag.String("xfont", "", "custom font xfont file, requires -glyph")
	glyph := flag.String("glyph", "", "custom font glyph file")
	showPreview := flag.Bool("preview", false, "mirror images to the terminal")
	verbose := flag.Bool("v", false, "trace the bus traffic")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if (*xfont == "") != (*glyph == "") {
		return errors.New("-xfont and -glyph go together")
	}

	opts := ft81x.DefaultOpts
	opts.Panel = panel
	opts.Board = board
	opts.Touch = touch
	var l *bridge.Link
	var err error
	switch *via {
	case "ftdi":
		l, err = bridge.OpenFTDI(&opts)
	case "spi":
		l, err = bridge.OpenSPI(*port, *pd, &opts)
	default:
		return fmt.Errorf("unknown bridge %q", *via)
	}
	if err != nil {
		return err
	}
	defer l.Close()
	log.Printf("%s", l)
	if *verbose {
		l.EnableDebug(log.Printf)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := clearScreen(ctx, l.Dev); err != nil {
		return err
	}
	if *calibrate || touch == ft81x.TouchResistive {
		t, err := l.CalibrateManual(ctx)
		if err != nil {
			return err
		}
		log.Printf("touch transform %v", t)
	}

	var img image.Image
	switch {
	case *imgPath != "":
		if img, err = loadImage(*imgPath); err != nil {
			return err
		}
	case *card:
		if img, err = testCard(l.Bounds(), panel.Name); err != nil {
			return err
		}
	case *xfont != "":
		return customFont(ctx, l.Dev, *xfont, *glyph)
	default:
		return demo(ctx, l.Dev)
	}
	var dst display.Drawer = l.Dev
	if *showPreview && isatty.IsTerminal(os.Stdout.Fd()) {
		p := preview.New(&preview.Opts{Width: panel.Width, Height: panel.Height})
		defer p.Halt()
		dst = mirror{l.Dev, p}
	}
	if err := show(dst, img); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

func main() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.SetOutput(colorable.NewColorableStderr())
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.SetPrefix("\033[36mevedemo\033[0m ")
	} else {
		log.SetPrefix("evedemo ")
	}
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "evedemo: %s.\n", err)
		os.Exit(1)
	}
}
