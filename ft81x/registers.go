// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

// Memory map. See FT81x Series Programmers Guide section 2.
const (
	RamG         uint32 = 0x000000
	RamGWorking  uint32 = 0x0FF000
	RamDL        uint32 = 0x300000
	RamReg       uint32 = 0x302000
	RamCmd       uint32 = 0x308000
	RamErrReport uint32 = 0x309800
	RamFlash     uint32 = 0x800000
	// RamChipID is where the boot ROM leaves the chip identifier in RAM_G.
	RamChipID uint32 = 0x0C0000

	dlSize        = 8 * 1024
	errReportSize = 128
)

// Registers, as absolute addresses.
const (
	RegID              = RamReg + 0x00
	RegFrames          = RamReg + 0x04
	RegClock           = RamReg + 0x08
	RegFrequency       = RamReg + 0x0C
	RegCPUReset        = RamReg + 0x20
	RegHCycle          = RamReg + 0x2C
	RegHOffset         = RamReg + 0x30
	RegHSize           = RamReg + 0x34
	RegHSync0          = RamReg + 0x38
	RegHSync1          = RamReg + 0x3C
	RegVCycle          = RamReg + 0x40
	RegVOffset         = RamReg + 0x44
	RegVSize           = RamReg + 0x48
	RegVSync0          = RamReg + 0x4C
	RegVSync1          = RamReg + 0x50
	RegDLSwap          = RamReg + 0x54
	RegRotate          = RamReg + 0x58
	RegOutBits         = RamReg + 0x5C
	RegDither          = RamReg + 0x60
	RegSwizzle         = RamReg + 0x64
	RegCSpread         = RamReg + 0x68
	RegPCLKPol         = RamReg + 0x6C
	RegPCLK            = RamReg + 0x70
	RegTag             = RamReg + 0x7C
	RegGPIODir         = RamReg + 0x90
	RegGPIO            = RamReg + 0x94
	RegGPIOXDir        = RamReg + 0x98
	RegGPIOX           = RamReg + 0x9C
	RegIntFlags        = RamReg + 0xA8
	RegIntEn           = RamReg + 0xAC
	RegIntMask         = RamReg + 0xB0
	RegPWMHz           = RamReg + 0xD0
	RegPWMDuty         = RamReg + 0xD4
	RegCmdRead         = RamReg + 0xF8
	RegCmdWrite        = RamReg + 0xFC
	RegCmdDL           = RamReg + 0x100
	RegTouchMode       = RamReg + 0x104
	RegTouchADCMode    = RamReg + 0x108
	RegTouchCharge     = RamReg + 0x10C
	RegTouchSettle     = RamReg + 0x110
	RegTouchOversample = RamReg + 0x114
	RegTouchRZThresh   = RamReg + 0x118
	RegTouchRawXY      = RamReg + 0x11C
	RegTouchRZ         = RamReg + 0x120
	RegTouchScreenXY   = RamReg + 0x124
	RegTouchTagXY      = RamReg + 0x128
	RegTouchTag        = RamReg + 0x12C
	RegTouchTransformA = RamReg + 0x150
	RegTouchConfig     = RamReg + 0x168
	RegTouchDirectXY   = RamReg + 0x18C
	RegTouchDirectZ1Z2 = RamReg + 0x190
	RegSPIWidth        = RamReg + 0x180
	RegCmdBSpace       = RamReg + 0x574
	RegCmdBWrite       = RamReg + 0x578
	RegFlashStatus     = RamReg + 0x5F0
	RegFlashSize       = RamReg + 0x7024
	RegCoproPatchPtr   = RamReg + 0x7162
)

// Host commands, sent with HostCommand. FT81x datasheet section 4.1.5.
const (
	HostActive    byte = 0x00
	HostStandby   byte = 0x41
	HostSleep     byte = 0x42
	HostPowerDown byte = 0x50
	HostClkInt    byte = 0x48
	HostClkExt    byte = 0x44
	HostClk48M    byte = 0x62
	HostClk36M    byte = 0x61
	HostCoreReset byte = 0x68
)

// REG_CPU_RESET bits.
const (
	resetCoprocessor byte = 1 << 0
	resetTouch       byte = 1 << 1
	resetAudio       byte = 1 << 2
)

const (
	chipIDValue = 0x7C
	dlSwapFrame = 2
)

// Flash states reported by REG_FLASH_STATUS.
const (
	FlashStatusInit     uint8 = 0
	FlashStatusDetached uint8 = 1
	FlashStatusBasic    uint8 = 2
	FlashStatusFull     uint8 = 3
)
