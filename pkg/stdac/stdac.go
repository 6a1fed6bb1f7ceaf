// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

// Package stdac defines a vendor-neutral air-conditioner state model.
// Protocol codecs map their native bit layouts to and from this
// representation so callers can drive different remotes uniformly.
package stdac

// OpMode is a universal operating mode.
type OpMode int

// Operating modes.
const (
	OpAuto OpMode = iota
	OpCool
	OpHeat
	OpDry
	OpFan
	OpOff
)

// FanSpeed is a universal fan speed tier.
type FanSpeed int

// Fan speed tiers.
const (
	FanAuto FanSpeed = iota
	FanMin
	FanLow
	FanMedium
	FanHigh
	FanMax
)

// SwingV is a universal vertical swing setting.
type SwingV int

// Vertical swing settings.
const (
	SwingVAuto SwingV = iota
	SwingVHighest
	SwingVHigh
	SwingVMiddle
	SwingVLow
	SwingVLowest
	SwingVOff
)

// SwingH is a universal horizontal swing setting.
type SwingH int

// Horizontal swing settings.
const (
	SwingHOff SwingH = iota
	SwingHAuto
)

// State is the cross-vendor A/C command state. Fields a protocol does
// not support are left at their zero value by its ToCommon mapping;
// Sleep and Clock use -1 for "not set" to keep 0 meaningful.
type State struct {
	Protocol string
	Model    int
	Power    bool
	Mode     OpMode
	Celsius  bool
	Degrees  float64
	Fan      FanSpeed
	SwingV   SwingV
	SwingH   SwingH
	Turbo    bool
	Light    bool
	Clean    bool
	Quiet    bool
	Econo    bool
	Filter   bool
	Beep     bool
	Sleep    int
	Clock    int
}
