// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// op is one bus transaction seen by fakeChip.
type op struct {
	// kind is 'r' for a memory read, 'w' for a memory write and 'h' for a
	// host command.
	kind byte
	addr uint32
	data []byte
}

func (o op) String() string {
	return fmt.Sprintf("%c %#06x % x", o.kind, o.addr, o.data)
}

// fakeChip implements Bus by decoding the transactions and serving them from
// a sparse memory. Hooks model the behavior of the registers that matter.
type fakeChip struct {
	mem    map[uint32]byte
	ops    []op
	delays []time.Duration
	resets int

	// onWrite is called after a memory write is stored.
	onWrite func(c *fakeChip, addr uint32, data []byte)
	// onRead is called before a memory read is served.
	onRead func(c *fakeChip, addr uint32, n int)
	// failAfter makes the transaction with this index, counting from 1, fail.
	failAfter int

	open bool
	w    []byte
	read bool
}

var errFakeBus = errors.New("fake bus failure")

func newFakeChip() *fakeChip {
	c := &fakeChip{mem: map[uint32]byte{}}
	c.put8(RegID, chipIDValue)
	c.put32(RamChipID, 0x00011508)
	return c
}

// drain makes the coprocessor consume everything committed, immediately.
func drain(c *fakeChip, addr uint32, data []byte) {
	if addr == RegCmdWrite {
		c.put16(RegCmdRead, c.get16(RegCmdWrite))
	}
}

func (c *fakeChip) Begin() error {
	if c.open {
		return errors.New("nested transaction")
	}
	c.open = true
	c.w = c.w[:0]
	c.read = false
	return nil
}

func (c *fakeChip) End() error {
	if !c.open {
		return errors.New("End without Begin")
	}
	c.open = false
	if c.read {
		return nil
	}
	if c.failAfter != 0 && len(c.ops)+1 == c.failAfter {
		return errFakeBus
	}
	switch {
	case len(c.w) == 3 && c.w[0]&0x80 == 0:
		c.ops = append(c.ops, op{kind: 'h', addr: uint32(c.w[0]), data: []byte{c.w[1]}})
	case len(c.w) > 3 && c.w[0]&0xC0 == 0x80:
		addr := uint32(c.w[0]&0x3F)<<16 | uint32(c.w[1])<<8 | uint32(c.w[2])
		data := append([]byte(nil), c.w[3:]...)
		for i, b := range data {
			c.mem[addr+uint32(i)] = b
		}
		c.ops = append(c.ops, op{kind: 'w', addr: addr, data: data})
		if c.onWrite != nil {
			c.onWrite(c, addr, data)
		}
	default:
		return fmt.Errorf("malformed transaction % x", c.w)
	}
	return nil
}

func (c *fakeChip) Write(b []byte) error {
	if !c.open {
		return errors.New("Write outside transaction")
	}
	c.w = append(c.w, b...)
	return nil
}

func (c *fakeChip) Read(b []byte) error {
	if !c.open || len(c.w) != 4 || c.w[0]&0xC0 != 0 {
		return fmt.Errorf("malformed read header % x", c.w)
	}
	c.read = true
	if c.failAfter != 0 && len(c.ops)+1 == c.failAfter {
		return errFakeBus
	}
	addr := uint32(c.w[0]&0x3F)<<16 | uint32(c.w[1])<<8 | uint32(c.w[2])
	if c.onRead != nil {
		c.onRead(c, addr, len(b))
	}
	for i := range b {
		b[i] = c.mem[addr+uint32(i)]
	}
	c.ops = append(c.ops, op{kind: 'r', addr: addr, data: append([]byte(nil), b...)})
	return nil
}

func (c *fakeChip) Delay(d time.Duration) {
	c.delays = append(c.delays, d)
}

func (c *fakeChip) Reset() error {
	c.resets++
	return nil
}

func (c *fakeChip) put8(addr uint32, v uint8) {
	c.mem[addr] = v
}

func (c *fakeChip) put16(addr uint32, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	c.putBytes(addr, b[:])
}

func (c *fakeChip) put32(addr uint32, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	c.putBytes(addr, b[:])
}

func (c *fakeChip) putBytes(addr uint32, b []byte) {
	for i, v := range b {
		c.mem[addr+uint32(i)] = v
	}
}

func (c *fakeChip) get16(addr uint32) uint16 {
	return uint16(c.mem[addr]) | uint16(c.mem[addr+1])<<8
}

func (c *fakeChip) get32(addr uint32) uint32 {
	return uint32(c.get16(addr)) | uint32(c.get16(addr+2))<<16
}

// writes returns the memory writes, in order.
func (c *fakeChip) writes() []op {
	var out []op
	for _, o := range c.ops {
		if o.kind == 'w' {
			out = append(out, o)
		}
	}
	return out
}

// newTestDev returns a Dev on c without running the bring-up.
func newTestDev(c *fakeChip, opts *Opts) *Dev {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	return newDev(c, opts)
}

func w8(addr uint32, v uint8) op {
	return op{kind: 'w', addr: addr, data: []byte{v}}
}

func w16(addr uint32, v uint16) op {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return op{kind: 'w', addr: addr, data: b[:]}
}

func w32(addr uint32, v uint32) op {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return op{kind: 'w', addr: addr, data: b[:]}
}

var _ Bus = (*fakeChip)(nil)
