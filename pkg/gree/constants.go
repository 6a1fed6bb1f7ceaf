// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

// Package gree implements the IR protocol of the Gree family of HVAC
// remotes (also found on Ultimate-branded heat pumps and EKOKAI
// units). It covers the 8-byte fixed-layout command record, the
// nibble-sum checksum shared with the Kelvinator family, and the
// bidirectional translation between the record and its mark/space
// pulse timing representation.
package gree

import "time"

// CarrierKHz is the modulation frequency used by Gree remotes.
const CarrierKHz = 38

// Pulse timing grammar.
const (
	HdrMark   = 9000 * time.Microsecond
	HdrSpace  = 4500 * time.Microsecond
	BitMark   = 620 * time.Microsecond
	OneSpace  = 1600 * time.Microsecond
	ZeroSpace = 540 * time.Microsecond
	MsgSpace  = 19000 * time.Microsecond
)

// The two 32-bit data blocks are separated by a fixed 3-bit footer
// followed by a message-space gap. Real receivers reject streams
// missing this separator.
const (
	BlockFooter     = 0b010
	BlockFooterBits = 3
)

// Command record geometry.
const (
	StateLength = 8
	Bits        = StateLength * 8
)

// Mode is the native operating mode (byte 0, bits 0-2).
type Mode uint8

// Operating modes.
const (
	ModeAuto Mode = iota
	ModeCool
	ModeDry
	ModeFan
	ModeHeat
)

// Temperature limits in °C. Auto mode is locked to AutoTemp.
const (
	MinTemp  = 16
	MaxTemp  = 30
	AutoTemp = 25
)

// Fan speeds (byte 0, bits 4-5): 0 is auto, 1-3 increase. Dry mode is
// locked to FanMin.
const (
	FanAuto = 0
	FanMin  = 1
	FanMed  = 2
	FanMax  = 3
)

// SwingPos is a vertical vane position code (byte 4, bits 0-3). The
// valid codes split into two sets depending on whether automatic
// swing is engaged.
type SwingPos uint8

// Vane position codes.
const (
	SwingLastPos    SwingPos = 0b0000 // manual: hold previous position
	SwingAutoFull   SwingPos = 0b0001
	SwingUp         SwingPos = 0b0010
	SwingMiddleUp   SwingPos = 0b0011
	SwingMiddle     SwingPos = 0b0100
	SwingMiddleDown SwingPos = 0b0101
	SwingDown       SwingPos = 0b0110
	SwingDownAuto   SwingPos = 0b0111
	SwingMiddleAuto SwingPos = 0b1001
	SwingUpAuto     SwingPos = 0b1011
)

// Bit masks, byte 0.
const (
	modeMask      = 0b0000_0111
	power1Mask    = 0b0000_1000
	fanMask       = 0b0011_0000
	swingAutoMask = 0b0100_0000
	sleepMask     = 0b1000_0000
)

// Bit masks, byte 2.
const (
	power2Mask = 0b0000_1000
	turboMask  = 0b0001_0000
	lightMask  = 0b0010_0000
	xfanMask   = 0b1000_0000
)

// Bit mask, byte 4.
const swingPosMask = 0b0000_1111

// checksumSeed is the starting value of the block checksum, shared
// with the Kelvinator protocol family.
const checksumSeed = 10
