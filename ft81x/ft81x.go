// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/GermanBionicSystems/eve/ft81x/dl"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Board identifies the generation of the carrier board, which decides the
// clock source and the touch controller bring-up.
type Board int

// Supported boards.
const (
	EVE2 Board = 2
	EVE3 Board = 3
	EVE4 Board = 4
)

// Touch identifies the touch panel fitted to the display.
type Touch int

// Touch panel variants.
const (
	TouchNone Touch = iota
	TouchResistive
	TouchCapacitive
)

// FIFOOpts describes the coprocessor command ring. The values are those of
// the FT81x/BT81x parts; other generations may differ.
type FIFOOpts struct {
	// Size of the ring in bytes. Must be a power of two and a multiple of 4.
	Size uint16
	// Reserved is kept free to tell a full ring from an empty one.
	Reserved uint16
	// Chunk is the unit in which CmdBuf streams data into the ring.
	Chunk uint16
	// FaultSentinel is the REG_CMD_READ value reported on a coprocessor fault.
	FaultSentinel uint16
	// FaultBackoff is the pause after recovering from a fault.
	FaultBackoff time.Duration
}

// Opts holds the configuration options for the device.
type Opts struct {
	// Panel is the timing description of the attached display.
	Panel *Panel
	// Board generation.
	Board Board
	// Touch panel fitted.
	Touch Touch
	// TouchFirmware is uploaded through the command ring to the touch
	// controller of boards that need one. Leave nil to skip.
	TouchFirmware []byte
	// Speed of the SPI clock when using NewSPI.
	Speed physic.Frequency
	// FIFO geometry. Zero fields take the DefaultOpts value.
	FIFO FIFOOpts
	// WaitTimeout bounds every wait on the coprocessor. 0 means no timeout;
	// the context passed to the call still applies.
	WaitTimeout time.Duration
	// ProbeAttempts and ProbeInterval bound the polling for the chip during
	// bring-up.
	ProbeAttempts int
	ProbeInterval time.Duration
	// OnFault, if set, is called after the device recovered from a
	// coprocessor fault.
	OnFault func(f *Fault)
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Panel: &Panel43,
	Board: EVE3,
	Touch: TouchNone,
	Speed: 10 * physic.MegaHertz,
	FIFO: FIFOOpts{
		Size:          4096,
		Reserved:      4,
		Chunk:         512,
		FaultSentinel: 0xFFF,
		FaultBackoff:  250 * time.Millisecond,
	},
	WaitTimeout:   2 * time.Second,
	ProbeAttempts: 50,
	ProbeInterval: 5 * time.Millisecond,
}

// DebugF the debug function type.
type DebugF func(string, ...interface{})

// Dev is an open handle to an FT81x/BT81x graphics controller.
//
// The methods are safe for concurrent use; each one holds the device for the
// whole of its bus traffic, so the words of a command are never interleaved
// with another caller's.
type Dev struct {
	mu    sync.Mutex
	bus   Bus
	opts  Opts
	debug DebugF

	// cmdWrite is the host copy of the coprocessor write pointer: the offset
	// in RAM_CMD where the next word goes.
	cmdWrite uint16
	chipID   uint32
	rect     image.Rectangle

	// Draw keeps a copy of the frame; the pixels are uploaded to RAM_G at
	// fbAddr in fbFormat.
	frame    *image.RGBA
	fbAddr   uint32
	fbFormat dl.Format
}

// New resets and initializes the chip behind bus and returns a handle to it.
//
// When the bus works but the chip never answers, ErrNotDetected is returned.
func New(bus Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Panel == nil {
		return nil, ErrUnknownPanel
	}
	d := newDev(bus, opts)
	if err := d.bringUp(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewSPI returns a Dev object that communicates over SPI to the chip.
//
// cs may be nil when the SPI port drives chip select. pd is connected to the
// PD_N line and used to hard reset the chip; nil skips the hard reset.
func NewSPI(p spi.Port, cs, pd gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	b, err := ConnectSPI(p, cs, pd, opts)
	if err != nil {
		return nil, err
	}
	return New(b, opts)
}

func newDev(bus Bus, opts *Opts) *Dev {
	o := *opts
	def := DefaultOpts.FIFO
	if o.FIFO.Size == 0 {
		o.FIFO.Size = def.Size
	}
	if o.FIFO.Reserved == 0 {
		o.FIFO.Reserved = def.Reserved
	}
	if o.FIFO.Chunk == 0 {
		o.FIFO.Chunk = def.Chunk
	}
	if o.FIFO.FaultSentinel == 0 {
		o.FIFO.FaultSentinel = def.FaultSentinel
	}
	if o.FIFO.FaultBackoff == 0 {
		o.FIFO.FaultBackoff = def.FaultBackoff
	}
	if o.FIFO.Chunk > o.FIFO.Size-o.FIFO.Reserved {
		o.FIFO.Chunk = o.FIFO.Size - o.FIFO.Reserved
	}
	// A chunk goes out in one transaction behind a 3 byte header and keeps
	// the ring word aligned.
	if l, ok := bus.(conn.Limits); ok {
		if m := (l.MaxTxSize() - 3) &^ 3; m >= 4 && int(o.FIFO.Chunk) > m {
			o.FIFO.Chunk = uint16(m)
		}
	}
	if o.ProbeAttempts <= 0 {
		o.ProbeAttempts = DefaultOpts.ProbeAttempts
	}
	if o.ProbeInterval <= 0 {
		o.ProbeInterval = DefaultOpts.ProbeInterval
	}
	d := &Dev{bus: bus, opts: o, debug: noop}
	if o.Panel != nil {
		d.rect = image.Rect(0, 0, o.Panel.Width, o.Panel.Height)
		d.fbAddr = RamG
		d.fbFormat = frameFormat(o.Panel.Width, o.Panel.Height)
	}
	return d
}

// EnableDebug sets the debugging output using the local print function.
func (d *Dev) EnableDebug(f DebugF) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if f == nil {
		f = noop
	}
	d.debug = f
}

// ChipID returns the identifier read from the chip during bring-up, for
// example 0x00011508 for a BT815.
func (d *Dev) ChipID() uint32 {
	return d.chipID
}

// Panel returns the timing description the device was initialized with.
func (d *Dev) Panel() *Panel {
	return d.opts.Panel
}

func (d *Dev) String() string {
	name := "unknown"
	if d.opts.Panel != nil {
		name = d.opts.Panel.Name
	}
	return fmt.Sprintf("ft81x.Dev{%#08x, %s}", d.chipID, name)
}

// Halt implements conn.Resource.
//
// It blanks the screen and turns the backlight off.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.writeBlankDL(); err != nil {
		return err
	}
	return d.wr8(RegPWMDuty, 0)
}

func noop(string, ...interface{}) {}

var _ conn.Resource = (*Dev)(nil)
