// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"github.com/GermanBionicSystems/eve/st7789v"
)

// Panel describes the timing of a display panel, as programmed into the
// video registers. FT81x datasheet section 4.4.
type Panel struct {
	Name string
	// Width and Height of the visible area in pixels.
	Width, Height int
	// OffsetX and OffsetY locate the visible area in the frame for panels
	// showing only part of it.
	OffsetX, OffsetY int

	HCycle, HOffset, HSync0, HSync1 uint16
	VCycle, VOffset, VSync0, VSync1 uint16
	// PCLK divides the system clock to produce the pixel clock.
	PCLK    uint8
	Swizzle uint8
	PCLKPol uint8
	HSize   uint16
	VSize   uint16
	CSpread uint8
	Dither  uint8

	// Frequency of the system clock in Hz. 0 means 60MHz.
	Frequency uint32
	// GPIOX is the value of REG_GPIOX after bring-up. 0 means 0x80ff.
	GPIOX uint16
	// CapacitiveTouch is the REG_TOUCH_CONFIG value for the capacitive touch
	// variant. 0 means 0x5d0.
	CapacitiveTouch uint16
	// TouchFirmware is uploaded to EVE4 boards with a capacitive touch panel.
	TouchFirmware []byte
	// Init, when set, runs the panel controller bring-up after the pixel
	// clock is stopped and before the timing registers are written.
	Init func(p st7789v.Port) error
}

func (p *Panel) String() string {
	return p.Name
}

func (p *Panel) frequency() uint32 {
	if p.Frequency == 0 {
		return 60000000
	}
	return p.Frequency
}

func (p *Panel) gpiox() uint16 {
	if p.GPIOX == 0 {
		return 0x80ff
	}
	return p.GPIOX
}

func (p *Panel) capacitiveTouch() uint16 {
	if p.CapacitiveTouch == 0 {
		return 0x5d0
	}
	return p.CapacitiveTouch
}

// Matrix Orbital EVE panels.
var (
	// Panel70 is the 7" 800x480 panel.
	Panel70 = Panel{
		Name: "7.0\" 800x480", Width: 800, Height: 480,
		HCycle: 928, HOffset: 88, HSync0: 0, HSync1: 48,
		VCycle: 525, VOffset: 32, VSync0: 0, VSync1: 3,
		PCLK: 2, Swizzle: 0, PCLKPol: 1, HSize: 800, VSize: 480, CSpread: 0, Dither: 1,
	}
	// Panel50 is the 5" 800x480 panel.
	Panel50 = Panel{
		Name: "5.0\" 800x480", Width: 800, Height: 480,
		HCycle: 928, HOffset: 88, HSync0: 0, HSync1: 48,
		VCycle: 525, VOffset: 32, VSync0: 0, VSync1: 3,
		PCLK: 2, Swizzle: 0, PCLKPol: 1, HSize: 800, VSize: 480, CSpread: 0, Dither: 1,
	}
	// Panel43 is the 4.3" 480x272 panel.
	Panel43 = Panel{
		Name: "4.3\" 480x272", Width: 480, Height: 272,
		HCycle: 548, HOffset: 43, HSync0: 0, HSync1: 41,
		VCycle: 292, VOffset: 12, VSync0: 0, VSync1: 10,
		PCLK: 5, Swizzle: 0, PCLKPol: 1, HSize: 480, VSize: 272, CSpread: 1, Dither: 1,
	}
	// Panel43HD is the 4.3" 800x480 panel.
	Panel43HD = Panel{
		Name: "4.3\" 800x480", Width: 800, Height: 480,
		HCycle: 977, HOffset: 176, HSync0: 40, HSync1: 88,
		VCycle: 529, VOffset: 48, VSync0: 13, VSync1: 16,
		PCLK: 2, Swizzle: 0, PCLKPol: 1, HSize: 800, VSize: 480, CSpread: 0, Dither: 1,
	}
	// Panel39 is the 3.9" 480x128 bar panel. It is scanned as a 480x272
	// frame of which rows 126 to 253 are visible.
	Panel39 = Panel{
		Name: "3.9\" 480x128", Width: 480, Height: 128, OffsetY: 126,
		HCycle: 552, HOffset: 71, HSync0: 28, HSync1: 44,
		VCycle: 308, VOffset: 35, VSync0: 8, VSync1: 11,
		PCLK: 6, Swizzle: 0, PCLKPol: 1, HSize: 480, VSize: 272, CSpread: 0, Dither: 1,
	}
	// Panel38 is the 3.8" 480x116 bar panel.
	Panel38 = Panel{
		Name: "3.8\" 480x116", Width: 480, Height: 116, OffsetY: 156,
		HCycle: 527, HOffset: 46, HSync0: 1, HSync1: 3,
		VCycle: 291, VOffset: 18, VSync0: 4, VSync1: 6,
		PCLK: 5, Swizzle: 0, PCLKPol: 1, HSize: 480, VSize: 272, CSpread: 1, Dither: 1,
	}
	// Panel35 is the 3.5" 320x240 panel.
	Panel35 = Panel{
		Name: "3.5\" 320x240", Width: 320, Height: 240,
		HCycle: 408, HOffset: 68, HSync0: 0, HSync1: 10,
		VCycle: 262, VOffset: 18, VSync0: 0, VSync1: 2,
		PCLK: 8, Swizzle: 0, PCLKPol: 0, HSize: 320, VSize: 240, CSpread: 1, Dither: 1,
	}
	// Panel29 is the 2.9" 320x102 bar panel.
	Panel29 = Panel{
		Name: "2.9\" 320x102", Width: 320, Height: 102,
		HCycle: 408, HOffset: 70, HSync0: 0, HSync1: 10,
		VCycle: 262, VOffset: 156, VSync0: 0, VSync1: 2,
		PCLK: 8, Swizzle: 0, PCLKPol: 0, HSize: 320, VSize: 102, CSpread: 1, Dither: 1,
	}
	// Panel40 is the 4" 720x720 round panel. Its capacitive variant uses an
	// FT6336U touch controller.
	Panel40 = Panel{
		Name: "4.0\" 720x720", Width: 720, Height: 720,
		HCycle: 812, HOffset: 91, HSync0: 46, HSync1: 48,
		VCycle: 756, VOffset: 35, VSync0: 16, VSync1: 18,
		PCLK: 2, Swizzle: 0, PCLKPol: 1, HSize: 720, VSize: 720, CSpread: 0, Dither: 0,
		CapacitiveTouch: 0x480,
	}
	// Panel101 is the 10.1" 1280x800 panel. It needs the system clock at
	// 80MHz. GPIO 3 drives a motor, active high, left off.
	Panel101 = Panel{
		Name: "10.1\" 1280x800", Width: 1280, Height: 800,
		HCycle: 1440, HOffset: 158, HSync0: 78, HSync1: 80,
		VCycle: 823, VOffset: 22, VSync0: 11, VSync1: 12,
		PCLK: 1, Swizzle: 0, PCLKPol: 0, HSize: 1280, VSize: 800, CSpread: 0, Dither: 1,
		Frequency: 80000000,
		GPIOX:     0x80f7,
	}
	// Panel70I is the 7" 1024x600 IPS panel.
	Panel70I = Panel{
		Name: "7.0\" 1024x600", Width: 1024, Height: 600,
		HCycle: 1344, HOffset: 319, HSync0: 12, HSync1: 230,
		VCycle: 635, VOffset: 34, VSync0: 12, VSync1: 22,
		PCLK: 1, Swizzle: 0, PCLKPol: 1, HSize: 1024, VSize: 600, CSpread: 0, Dither: 1,
	}
	// Panel70IWG is the 7" 1024x600 IPS panel with the WG touch controller,
	// which needs its firmware uploaded on EVE4 boards.
	Panel70IWG = Panel{
		Name: "7.0\" 1024x600 WG", Width: 1024, Height: 600,
		HCycle: 1344, HOffset: 319, HSync0: 12, HSync1: 230,
		VCycle: 635, VOffset: 34, VSync0: 12, VSync1: 22,
		PCLK: 1, Swizzle: 0, PCLKPol: 1, HSize: 1024, VSize: 600, CSpread: 0, Dither: 1,
		TouchFirmware: touch70IWG,
	}
	// Panel24 is the 2.4" 240x320 panel with an ST7789V controller.
	Panel24 = Panel{
		Name: "2.4\" 240x320", Width: 240, Height: 320,
		HCycle: 298, HOffset: 57, HSync0: 38, HSync1: 48,
		VCycle: 336, VOffset: 15, VSync0: 8, VSync1: 8,
		PCLK: 6, Swizzle: 0, PCLKPol: 0, HSize: 240, VSize: 320, CSpread: 1, Dither: 1,
		Init: st7789v.Init,
	}
)

// Panels maps a short name to each known panel, for command line selection.
var Panels = map[string]*Panel{
	"70":    &Panel70,
	"50":    &Panel50,
	"43":    &Panel43,
	"43hd":  &Panel43HD,
	"39":    &Panel39,
	"38":    &Panel38,
	"35":    &Panel35,
	"29":    &Panel29,
	"40":    &Panel40,
	"101":   &Panel101,
	"70i":   &Panel70I,
	"70iwg": &Panel70IWG,
	"24":    &Panel24,
}

// PanelByName returns the panel registered as name in Panels, or
// ErrUnknownPanel.
func PanelByName(name string) (*Panel, error) {
	if p, ok := Panels[name]; ok {
		return p, nil
	}
	return nil, ErrUnknownPanel
}
