// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"encoding/binary"

	"periph.io/x/conn/v3"
)

// Register access. Each call is one complete bus transaction. FT81x
// datasheet section 4.1.4: the address is sent as 3 bytes, MSB first, with
// bit 23 set for writes. Reads have a dummy byte after the address. The data
// is little endian.

// Read8 reads the byte at addr.
func (d *Dev) Read8(addr uint32) (uint8, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rd8(addr)
}

// Read16 reads the 16 bit word at addr.
func (d *Dev) Read16(addr uint32) (uint16, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rd16(addr)
}

// Read32 reads the 32 bit word at addr.
func (d *Dev) Read32(addr uint32) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rd32(addr)
}

// ReadBlock fills p with the memory starting at addr.
//
// Transfers larger than what the bus accepts at once are split.
func (d *Dev) ReadBlock(addr uint32, p []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readBlock(addr, p)
}

// Write8 writes v at addr.
func (d *Dev) Write8(addr uint32, v uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wr8(addr, v)
}

// Write16 writes v at addr.
func (d *Dev) Write16(addr uint32, v uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wr16(addr, v)
}

// Write32 writes v at addr.
func (d *Dev) Write32(addr uint32, v uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wr32(addr, v)
}

// WriteBlock copies p into the chip memory starting at addr. It returns the
// address following the last byte written.
//
// Transfers larger than what the bus accepts at once are split.
func (d *Dev) WriteBlock(addr uint32, p []byte) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeBlock(addr, p)
}

// HostCommand sends a host command. These change power modes and clock
// sources; see the Host* constants.
func (d *Dev) HostCommand(cmd, param byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hostCommand(cmd, param)
}

func (d *Dev) hostCommand(cmd, param byte) error {
	d.debug("host command %#02x %#02x", cmd, param)
	return d.transaction([]byte{cmd, param, 0}, nil)
}

func (d *Dev) rd8(addr uint32) (uint8, error) {
	var b [1]byte
	err := d.read(addr, b[:])
	return b[0], err
}

func (d *Dev) rd16(addr uint32) (uint16, error) {
	var b [2]byte
	err := d.read(addr, b[:])
	return binary.LittleEndian.Uint16(b[:]), err
}

func (d *Dev) rd32(addr uint32) (uint32, error) {
	var b [4]byte
	err := d.read(addr, b[:])
	return binary.LittleEndian.Uint32(b[:]), err
}

func (d *Dev) wr8(addr uint32, v uint8) error {
	return d.write(addr, []byte{v})
}

func (d *Dev) wr16(addr uint32, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return d.write(addr, b[:])
}

func (d *Dev) wr32(addr uint32, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return d.write(addr, b[:])
}

func (d *Dev) readBlock(addr uint32, p []byte) error {
	limit := d.payloadLimit(len(p), 4)
	for len(p) != 0 {
		n := len(p)
		if n > limit {
			n = limit
		}
		if err := d.read(addr, p[:n]); err != nil {
			return err
		}
		addr += uint32(n)
		p = p[n:]
	}
	return nil
}

func (d *Dev) writeBlock(addr uint32, p []byte) (uint32, error) {
	limit := d.payloadLimit(len(p), 3)
	for len(p) != 0 {
		n := len(p)
		if n > limit {
			n = limit
		}
		if err := d.write(addr, p[:n]); err != nil {
			return addr, err
		}
		addr += uint32(n)
		p = p[n:]
	}
	return addr, nil
}

// payloadLimit returns how many data bytes fit in one transaction after a
// header of hdr bytes; n when the bus has no limit.
func (d *Dev) payloadLimit(n, hdr int) int {
	if l, ok := d.bus.(conn.Limits); ok && l.MaxTxSize() > hdr {
		return l.MaxTxSize() - hdr
	}
	return n
}

func (d *Dev) read(addr uint32, p []byte) error {
	hdr := [4]byte{byte(addr>>16) & 0x3F, byte(addr >> 8), byte(addr), 0}
	err := d.transaction(hdr[:], p)
	d.debug("read %#06x % x", addr, p)
	return err
}

func (d *Dev) write(addr uint32, p []byte) error {
	d.debug("write %#06x % x", addr, p)
	if err := d.bus.Begin(); err != nil {
		return err
	}
	hdr := [3]byte{byte(addr>>16)&0x3F | 0x80, byte(addr >> 8), byte(addr)}
	err := d.bus.Write(hdr[:])
	if err == nil {
		err = d.bus.Write(p)
	}
	if err2 := d.bus.End(); err == nil {
		err = err2
	}
	return err
}

// transaction writes w and then, if r is not empty, reads r back, within a
// single Begin/End pair.
func (d *Dev) transaction(w, r []byte) error {
	if err := d.bus.Begin(); err != nil {
		return err
	}
	err := d.bus.Write(w)
	if err == nil && len(r) != 0 {
		err = d.bus.Read(r)
	}
	if err2 := d.bus.End(); err == nil {
		err = err2
	}
	return err
}
