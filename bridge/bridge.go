// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bridge

import (
	"errors"
	"fmt"
	"io"

	"github.com/GermanBionicSystems/eve/ft81x"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/ftdi"
)

// ErrNoBridge is returned by OpenFTDI when no FT232H is connected.
var ErrNoBridge = errors.New("bridge: no FT232H found")

// Link is an initialized controller together with the port it is reached
// through.
type Link struct {
	*ft81x.Dev
	name string
	port io.Closer
}

func (l *Link) String() string {
	return fmt.Sprintf("%s via %s", l.Dev, l.name)
}

// Close blanks the screen and releases the port.
func (l *Link) Close() error {
	err := l.Dev.Halt()
	if err2 := l.port.Close(); err == nil {
		err = err2
	}
	return err
}

// OpenFTDI initializes periph, opens the first FT232H found and brings up
// the controller behind it. Chip select is driven by the MPSSE engine on
// ADBUS3.
func OpenFTDI(opts *ft81x.Opts) (*Link, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	for _, d := range ftdi.All() {
		f, ok := d.(*ftdi.FT232H)
		if !ok {
			continue
		}
		p, err := f.SPI()
		if err != nil {
			return nil, fmt.Errorf("bridge: %s: %w", f, err)
		}
		return open(p, p, f.String(), f.D7, opts)
	}
	return nil, ErrNoBridge
}

// OpenSPI initializes periph and brings up the controller on the SPI port
// named port, "" for the first one. pd names the GPIO connected to PD_N; ""
// skips the hard reset.
func OpenSPI(port, pd string, opts *ft81x.Opts) (*Link, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	var pin gpio.PinOut
	if pd != "" {
		p := gpioreg.ByName(pd)
		if p == nil {
			return nil, fmt.Errorf("bridge: unknown pin %q", pd)
		}
		pin = p
	}
	p, err := spireg.Open(port)
	if err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}
	return open(p, p, p.String(), pin, opts)
}

// open brings up the controller on p. c is closed when that fails.
func open(p spi.Port, c io.Closer, name string, pd gpio.PinOut, opts *ft81x.Opts) (*Link, error) {
	d, err := ft81x.NewSPI(p, nil, pd, opts)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return &Link{Dev: d, name: name, port: c}, nil
}
