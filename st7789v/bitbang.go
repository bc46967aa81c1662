// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package st7789v

import "time"

// bitbang drives the 3-wire serial interface through GPIOX. Each transferred
// word is 9 bits, MSB first: a D/C bit (0 for a command, 1 for a parameter)
// followed by the byte. The first error sticks and turns the remaining calls
// into no-ops.
type bitbang struct {
	p   Port
	err error
}

func (b *bitbang) send(cmd byte, data []byte) {
	b.chipSelect(true)
	b.word(false, cmd)
	for _, v := range data {
		b.word(true, v)
	}
	b.chipSelect(false)
}

func (b *bitbang) delay(d time.Duration) {
	if b.err != nil {
		return
	}
	b.p.Delay(d)
}

// chipSelect drives CS, which is active low.
func (b *bitbang) chipSelect(enable bool) {
	b.writeDir(0x00f7)
	b.setBit(pinCS, !enable)
}

func (b *bitbang) word(data bool, v byte) {
	b.writeDir(0x80ff)
	b.write(0x80f0)
	b.clock(data)
	for m := byte(0x80); m != 0; m >>= 1 {
		b.clock(v&m != 0)
	}
	b.setBit(pinSCL, false)
}

// clock shifts one bit out; the controller samples SDA on the rising edge.
func (b *bitbang) clock(bit bool) {
	b.setBit(pinSCL, false)
	b.setBit(pinSDA, bit)
	b.setBit(pinSCL, true)
}

func (b *bitbang) setBit(mask uint8, state bool) {
	if b.err != nil {
		return
	}
	v, err := b.p.ReadGPIO()
	if err != nil {
		b.err = err
		return
	}
	if state {
		v |= mask
	} else {
		v &^= mask
	}
	b.err = b.p.WriteGPIO8(v)
}

func (b *bitbang) write(v uint16) {
	if b.err != nil {
		return
	}
	b.err = b.p.WriteGPIO(v)
}

func (b *bitbang) writeDir(v uint16) {
	if b.err != nil {
		return
	}
	b.err = b.p.WriteGPIODir(v)
}
