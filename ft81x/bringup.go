// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"context"
	"fmt"
	"time"

	"github.com/GermanBionicSystems/eve/ft81x/dl"
)

// regWrite is one step of a register sequence: write value, truncated to
// size bytes, at addr then pause for delay.
type regWrite struct {
	addr  uint32
	size  uint8
	value uint32
	delay time.Duration
}

// apply runs seq in order, stopping at the first error.
func (d *Dev) apply(seq []regWrite) error {
	for _, w := range seq {
		var err error
		switch w.size {
		case 1:
			err = d.wr8(w.addr, uint8(w.value))
		case 2:
			err = d.wr16(w.addr, uint16(w.value))
		case 4:
			err = d.wr32(w.addr, w.value)
		default:
			err = fmt.Errorf("ft81x: invalid register width %d at %#06x", w.size, w.addr)
		}
		if err != nil {
			return err
		}
		if w.delay != 0 {
			d.bus.Delay(w.delay)
		}
	}
	return nil
}

// timingSequence programs the video timing of p. The registers are 32 bits
// wide but only the used bits are written.
func timingSequence(p *Panel) []regWrite {
	return []regWrite{
		{addr: RegHCycle, size: 2, value: uint32(p.HCycle)},
		{addr: RegHOffset, size: 2, value: uint32(p.HOffset)},
		{addr: RegHSync0, size: 2, value: uint32(p.HSync0)},
		{addr: RegHSync1, size: 2, value: uint32(p.HSync1)},
		{addr: RegVCycle, size: 2, value: uint32(p.VCycle)},
		{addr: RegVOffset, size: 2, value: uint32(p.VOffset)},
		{addr: RegVSync0, size: 2, value: uint32(p.VSync0)},
		{addr: RegVSync1, size: 2, value: uint32(p.VSync1)},
		{addr: RegSwizzle, size: 1, value: uint32(p.Swizzle)},
		{addr: RegPCLKPol, size: 1, value: uint32(p.PCLKPol)},
		{addr: RegHSize, size: 2, value: uint32(p.HSize)},
		{addr: RegVSize, size: 2, value: uint32(p.VSize)},
		{addr: RegCSpread, size: 1, value: uint32(p.CSpread)},
		{addr: RegDither, size: 1, value: uint32(p.Dither)},
	}
}

// The touch engine sometimes fails to start; it is reset once the panel is
// configured.
var touchEngineReset = []regWrite{
	{addr: RegCPUReset, size: 4, value: uint32(resetTouch), delay: 10 * time.Millisecond},
	{addr: RegCPUReset, size: 4, value: 0, delay: 10 * time.Millisecond},
}

// touchParams sets continuous differential sampling with maximum
// oversampling.
var touchParams = []regWrite{
	{addr: RegTouchRZThresh, size: 2, value: 1200},
	{addr: RegTouchMode, size: 1, value: 2},
	{addr: RegTouchADCMode, size: 1, value: 1},
	{addr: RegTouchOversample, size: 1, value: 15},
}

// outputSequence enables the GPIOs and the backlight of p.
func outputSequence(p *Panel) []regWrite {
	return []regWrite{
		{addr: RegGPIOXDir, size: 2, value: 0xffff},
		{addr: RegGPIOX, size: 2, value: uint32(p.gpiox())},
		{addr: RegPWMHz, size: 2, value: 0xfa},
		{addr: RegPWMDuty, size: 1, value: 128},
	}
}

// blankDL is a display list clearing the screen to black.
var blankDL = []regWrite{
	{addr: RamDL + 0, size: 4, value: dl.ClearColorRGB(0, 0, 0)},
	{addr: RamDL + 4, size: 4, value: dl.Clear(true, true, true)},
	{addr: RamDL + 8, size: 4, value: dl.Display()},
	{addr: RegDLSwap, size: 1, value: dlSwapFrame},
}

const (
	touchConfigResistive = 0x8381
	gpioxDisplayEnable   = 1 << 15
)

// bringUp resets the chip and configures it for the panel, leaving a black
// screen with the backlight on.
func (d *Dev) bringUp() error {
	p := d.opts.Panel
	if err := d.bus.Reset(); err != nil {
		return fmt.Errorf("ft81x: reset: %w", err)
	}
	if d.opts.Board >= EVE3 {
		if err := d.hostCommand(HostClkExt, 0); err != nil {
			return err
		}
	}
	if err := d.hostCommand(HostActive, 0); err != nil {
		return err
	}
	d.bus.Delay(300 * time.Millisecond)

	if err := d.poll(func() (bool, error) {
		id, err := d.rd8(RegID)
		return id == chipIDValue, err
	}); err != nil {
		return err
	}
	if err := d.poll(func() (bool, error) {
		v, err := d.rd16(RegCPUReset)
		return v == 0, err
	}); err != nil {
		return err
	}
	var err error
	if d.chipID, err = d.rd32(RamChipID); err != nil {
		return err
	}
	d.debug("chip id %#08x", d.chipID)
	if err := d.wr32(RegFrequency, p.frequency()); err != nil {
		return err
	}

	// The coprocessor may still be faulted from before the reset.
	rd, err := d.rd16(RegCmdRead)
	if err != nil {
		return err
	}
	if rd == d.opts.FIFO.FaultSentinel {
		if err := d.recoverFault(false); err != nil {
			return err
		}
	}

	// Keep the screen dark while it is configured.
	gpiox, err := d.rd16(RegGPIOX)
	if err != nil {
		return err
	}
	if err := d.wr16(RegGPIOX, gpiox&^gpioxDisplayEnable); err != nil {
		return err
	}
	if err := d.wr8(RegPCLK, 0); err != nil {
		return err
	}
	if p.Init != nil {
		if err := p.Init(gpioxPort{d}); err != nil {
			return fmt.Errorf("ft81x: %s init: %w", p.Name, err)
		}
	}
	if err := d.apply(timingSequence(p)); err != nil {
		return err
	}
	if err := d.apply(touchEngineReset); err != nil {
		return err
	}
	if err := d.configureTouch(); err != nil {
		return err
	}
	if err := d.apply(touchParams); err != nil {
		return err
	}
	if err := d.apply(outputSequence(p)); err != nil {
		return err
	}
	if err := d.apply(blankDL); err != nil {
		return err
	}
	return d.wr8(RegPCLK, p.PCLK)
}

// poll calls f until it reports ready, Opts.ProbeAttempts times at most.
func (d *Dev) poll(f func() (bool, error)) error {
	for i := 0; i < d.opts.ProbeAttempts; i++ {
		ok, err := f()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		d.bus.Delay(d.opts.ProbeInterval)
	}
	return ErrNotDetected
}

func (d *Dev) configureTouch() error {
	p := d.opts.Panel
	switch d.opts.Touch {
	case TouchResistive:
		return d.wr16(RegTouchConfig, touchConfigResistive)
	case TouchCapacitive:
		if err := d.wr16(RegTouchConfig, p.capacitiveTouch()); err != nil {
			return err
		}
		fw := d.opts.TouchFirmware
		if fw == nil {
			switch d.opts.Board {
			case EVE2:
				fw = goodixGT911
			case EVE4:
				fw = p.TouchFirmware
			}
		}
		if len(fw) != 0 {
			return d.uploadTouchFirmware(context.Background(), fw)
		}
	}
	return nil
}

// uploadTouchFirmware runs fw through the coprocessor then restarts the
// touch engine with GPIO 3 low, which selects the address of the touch
// controller. AN_336 section 3.
func (d *Dev) uploadTouchFirmware(ctx context.Context, fw []byte) error {
	if err := d.cmdBuf(ctx, fw); err != nil {
		return err
	}
	if err := d.commit(); err != nil {
		return err
	}
	if err := d.waitIdle(ctx); err != nil {
		return err
	}
	if err := d.wr8(RegCPUReset, resetTouch); err != nil {
		return err
	}
	if err := d.update8(RegGPIOXDir, func(v uint8) uint8 { return v | 0x08 }); err != nil {
		return err
	}
	if err := d.update8(RegGPIOX, func(v uint8) uint8 { return v | 0xf7 }); err != nil {
		return err
	}
	d.bus.Delay(time.Millisecond)
	if err := d.wr8(RegCPUReset, 0); err != nil {
		return err
	}
	d.bus.Delay(100 * time.Millisecond)
	return d.update8(RegGPIOXDir, func(v uint8) uint8 { return v & 0xf7 })
}

// update8 is a read-modify-write of the byte at addr.
func (d *Dev) update8(addr uint32, f func(uint8) uint8) error {
	v, err := d.rd8(addr)
	if err != nil {
		return err
	}
	return d.wr8(addr, f(v))
}

func (d *Dev) writeBlankDL() error {
	return d.apply(blankDL)
}

// gpioxPort exposes the GPIOX expander to panel controller drivers.
type gpioxPort struct {
	d *Dev
}

func (g gpioxPort) ReadGPIO() (uint8, error) {
	return g.d.rd8(RegGPIOX)
}

func (g gpioxPort) WriteGPIO8(v uint8) error {
	return g.d.wr8(RegGPIOX, v)
}

func (g gpioxPort) WriteGPIO(v uint16) error {
	return g.d.wr16(RegGPIOX, v)
}

func (g gpioxPort) WriteGPIODir(v uint16) error {
	return g.d.wr16(RegGPIOXDir, v)
}

func (g gpioxPort) Delay(d time.Duration) {
	g.d.bus.Delay(d)
}
