// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Bus is the byte level transport to the chip.
//
// Every register access is one transaction bracketed by Begin and End. Within
// a transaction the chip expects the address header to be written first,
// followed by either the payload or, for reads, the bytes to clock out.
//
// Implementations are not expected to be safe for concurrent use.
type Bus interface {
	// Begin starts a transaction, asserting chip select.
	Begin() error
	// End terminates the transaction, releasing chip select.
	End() error
	// Write sends b.
	Write(b []byte) error
	// Read clocks len(b) bytes in from the chip.
	Read(b []byte) error
	// Delay pauses for d.
	Delay(d time.Duration)
	// Reset toggles the power down line of the chip.
	Reset() error
}

// SPIBus implements Bus on top of a periph.io SPI connection.
//
// The bytes written during a transaction are accumulated and sent with a
// single Tx at End, or together with the read if the transaction reads data
// back. This maps every chip transaction onto one SPI transfer, which works
// with hardware driven chip select (spidev, FT232H MPSSE) as well as with a
// dedicated CS pin.
type SPIBus struct {
	c         conn.Conn
	cs        gpio.PinOut
	pd        gpio.PinOut
	maxTxSize int
	w         []byte
	open      bool
	sleep     func(time.Duration)
}

// NewSPIBus returns a Bus using c.
//
// cs can be nil when chip select is driven by the SPI controller. pd is the
// power down (PD_N) line of the chip, nil if not connected, in which case
// Reset is a no-op.
func NewSPIBus(c conn.Conn, cs, pd gpio.PinOut) *SPIBus {
	// Get the maxTxSize from the conn if it implements the conn.Limits interface,
	// otherwise use 4096 bytes.
	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize == 0 {
		maxTxSize = 4096 // Use a conservative default.
	}
	return &SPIBus{c: c, cs: cs, pd: pd, maxTxSize: maxTxSize, sleep: time.Sleep}
}

// ConnectSPI connects to p in the mode the FT81x family expects and returns
// the resulting Bus.
func ConnectSPI(p spi.Port, cs, pd gpio.PinOut, opts *Opts) (*SPIBus, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	c, err := p.Connect(opts.Speed, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ft81x: failed to connect over spi: %w", err)
	}
	if cs != nil {
		if err := cs.Out(gpio.High); err != nil {
			return nil, err
		}
	}
	return NewSPIBus(c, cs, pd), nil
}

// String implements conn.Resource.
func (b *SPIBus) String() string {
	return fmt.Sprintf("ft81x.SPIBus{%s}", b.c)
}

// MaxTxSize returns the largest transfer the underlying connection accepts.
func (b *SPIBus) MaxTxSize() int {
	return b.maxTxSize
}

// Begin implements Bus.
func (b *SPIBus) Begin() error {
	if b.open {
		return errors.New("ft81x: nested bus transaction")
	}
	b.open = true
	b.w = b.w[:0]
	if b.cs != nil {
		return b.cs.Out(gpio.Low)
	}
	return nil
}

// End implements Bus.
func (b *SPIBus) End() error {
	if !b.open {
		return errors.New("ft81x: no bus transaction in progress")
	}
	b.open = false
	var err error
	if len(b.w) != 0 {
		err = b.tx(b.w, nil)
		b.w = b.w[:0]
	}
	if b.cs != nil {
		if err2 := b.cs.Out(gpio.High); err == nil {
			err = err2
		}
	}
	return err
}

// Write implements Bus.
func (b *SPIBus) Write(p []byte) error {
	if !b.open {
		return errors.New("ft81x: write outside of a bus transaction")
	}
	b.w = append(b.w, p...)
	return nil
}

// Read implements Bus.
//
// The pending header bytes and len(p) filler bytes are sent in one full
// duplex transfer; the tail of what was received is copied into p.
func (b *SPIBus) Read(p []byte) error {
	if !b.open {
		return errors.New("ft81x: read outside of a bus transaction")
	}
	n := len(b.w)
	w := make([]byte, n+len(p))
	copy(w, b.w)
	r := make([]byte, len(w))
	b.w = b.w[:0]
	if err := b.tx(w, r); err != nil {
		return err
	}
	copy(p, r[n:])
	return nil
}

// Delay implements Bus.
func (b *SPIBus) Delay(d time.Duration) {
	b.sleep(d)
}

// Reset implements Bus.
//
// PD_N is held low for 20ms then released, and the chip is given another
// 20ms before the first access.
func (b *SPIBus) Reset() error {
	if b.pd == nil {
		return nil
	}
	if err := b.pd.Out(gpio.Low); err != nil {
		return err
	}
	b.sleep(20 * time.Millisecond)
	if err := b.pd.Out(gpio.High); err != nil {
		return err
	}
	b.sleep(20 * time.Millisecond)
	return nil
}

func (b *SPIBus) tx(w, r []byte) error {
	if len(w) > b.maxTxSize {
		return fmt.Errorf("ft81x: transfer of %d bytes exceeds the %d bytes limit", len(w), b.maxTxSize)
	}
	return b.c.Tx(w, r)
}

var _ Bus = (*SPIBus)(nil)
var _ conn.Limits = (*SPIBus)(nil)
