// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package st7789v

import (
	"time"
)

// Port is the GPIOX expander of the graphics controller.
type Port interface {
	// ReadGPIO returns the low byte of the GPIOX register.
	ReadGPIO() (uint8, error)
	// WriteGPIO8 writes the low byte of the GPIOX register.
	WriteGPIO8(v uint8) error
	// WriteGPIO writes the whole GPIOX register.
	WriteGPIO(v uint16) error
	// WriteGPIODir writes the GPIOX direction register.
	WriteGPIODir(v uint16) error
	// Delay pauses for d.
	Delay(d time.Duration)
}

// Pins of the serial interface on GPIOX.
const (
	pinCS  = 0x02
	pinSCL = 0x04
	pinSDA = 0x08
)

// Commands. ST7789V datasheet section 9.
const (
	sleepOut           byte = 0x11
	displayInversionOn byte = 0x21
	displayOn          byte = 0x29
	memoryDataAccess   byte = 0x36 // MADCTL
	interfacePixelFmt  byte = 0x3a // COLMOD
	ramControl         byte = 0xb0
	porchSetting       byte = 0xb2
	gateControl        byte = 0xb7
	vcomSetting        byte = 0xbb
	lcmControl         byte = 0xc0
	vdvVrhEnable       byte = 0xc2
	vrhSet             byte = 0xc3
	vdvSet             byte = 0xc4
	frameRateControl   byte = 0xc6
	powerControl1      byte = 0xd0
	positiveGamma      byte = 0xe0
	negativeGamma      byte = 0xe1
)

// command is one chip select framed transfer: a command byte, its
// parameters and the pause required afterward.
type command struct {
	cmd   byte
	data  []byte
	delay time.Duration
}

// initSequence comes from the AFY240320A0-2.8INTH panel datasheet, page 25.
var initSequence = []command{
	{cmd: sleepOut, delay: 120 * time.Millisecond},
	{cmd: memoryDataAccess, data: []byte{0x00}},
	{cmd: interfacePixelFmt, data: []byte{0x66}},
	// RGB interface.
	{cmd: ramControl, data: []byte{0x12, 0x00}},
	{cmd: displayInversionOn},
	{cmd: porchSetting, data: []byte{0x0c, 0x0c, 0x00, 0x33, 0x33}},
	{cmd: gateControl, data: []byte{0x35}},
	{cmd: vcomSetting, data: []byte{0x18}},
	{cmd: lcmControl, data: []byte{0x2c}},
	{cmd: vdvVrhEnable, data: []byte{0x01, 0xff}},
	{cmd: vrhSet, data: []byte{0x20}},
	{cmd: vdvSet, data: []byte{0x20}},
	{cmd: frameRateControl, data: []byte{0x0f}},
	{cmd: powerControl1, data: []byte{0xa4, 0xa1}},
	{cmd: positiveGamma, data: []byte{0xd0, 0x08, 0x11, 0x08, 0x0c, 0x15, 0x39, 0x33, 0x50, 0x36, 0x13, 0x14, 0x29, 0x2d}},
	{cmd: negativeGamma, data: []byte{0xd0, 0x08, 0x10, 0x08, 0x06, 0x06, 0x39, 0x44, 0x51, 0x0b, 0x16, 0x14, 0x2f, 0x31}},
	{cmd: displayOn},
}

type controller interface {
	// send transfers cmd followed by its parameters in one chip select
	// window.
	send(cmd byte, data []byte)
	delay(time.Duration)
}

// Init configures the panel controller reachable through p and turns the
// display on. It takes a bit more than 220ms.
func Init(p Port) error {
	b := &bitbang{p: p}
	b.writeDir(0x00ff)
	b.write(0x00f7)
	p.Delay(100 * time.Millisecond)
	if b.err != nil {
		return b.err
	}
	initDisplay(b)
	return b.err
}

func initDisplay(ctrl controller) {
	for _, c := range initSequence {
		ctrl.send(c.cmd, c.data)
		if c.delay != 0 {
			ctrl.delay(c.delay)
		}
	}
}
