// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package gree

import "github.com/coldspell/aircast/pkg/stdac"

// ModeFromCommon maps a universal operating mode to its native value.
func ModeFromCommon(mode stdac.OpMode) Mode {
	switch mode {
	case stdac.OpCool:
		return ModeCool
	case stdac.OpHeat:
		return ModeHeat
	case stdac.OpDry:
		return ModeDry
	case stdac.OpFan:
		return ModeFan
	default:
		return ModeAuto
	}
}

// FanFromCommon maps a universal fan speed to its native value. The
// native field only has three non-auto speeds, so Low and Medium both
// land one below max.
func FanFromCommon(speed stdac.FanSpeed) int {
	switch speed {
	case stdac.FanMin:
		return FanMin
	case stdac.FanLow, stdac.FanMedium:
		return FanMax - 1
	case stdac.FanHigh, stdac.FanMax:
		return FanMax
	default:
		return FanAuto
	}
}

// SwingVFromCommon maps a universal vertical swing setting to a
// native vane position code.
func SwingVFromCommon(swing stdac.SwingV) SwingPos {
	switch swing {
	case stdac.SwingVHighest:
		return SwingUp
	case stdac.SwingVHigh:
		return SwingMiddleUp
	case stdac.SwingVMiddle:
		return SwingMiddle
	case stdac.SwingVLow:
		return SwingMiddleDown
	case stdac.SwingVLowest:
		return SwingDown
	default:
		return SwingAutoFull
	}
}

// ModeToCommon maps a native mode to its universal equivalent.
func ModeToCommon(mode Mode) stdac.OpMode {
	switch mode {
	case ModeCool:
		return stdac.OpCool
	case ModeHeat:
		return stdac.OpHeat
	case ModeDry:
		return stdac.OpDry
	case ModeFan:
		return stdac.OpFan
	default:
		return stdac.OpAuto
	}
}

// FanToCommon maps a native fan speed to its universal equivalent.
// The Low/Medium collapse is not reversible; speed 2 reads back as
// Medium.
func FanToCommon(speed int) stdac.FanSpeed {
	switch speed {
	case FanMax:
		return stdac.FanMax
	case FanMax - 1:
		return stdac.FanMedium
	case FanMin:
		return stdac.FanMin
	default:
		return stdac.FanAuto
	}
}

// SwingVToCommon maps a native vane position to its universal
// equivalent.
func SwingVToCommon(pos SwingPos) stdac.SwingV {
	switch pos {
	case SwingUp:
		return stdac.SwingVHighest
	case SwingMiddleUp:
		return stdac.SwingVHigh
	case SwingMiddle:
		return stdac.SwingVMiddle
	case SwingMiddleDown:
		return stdac.SwingVLow
	case SwingDown:
		return stdac.SwingVLowest
	default:
		return stdac.SwingVAuto
	}
}

// ToCommon converts the record to the cross-vendor representation.
func (s *State) ToCommon() stdac.State {
	out := stdac.State{
		Protocol: "GREE",
		Model:    -1,
		Power:    s.Power(),
		Mode:     ModeToCommon(s.Mode()),
		Celsius:  true,
		Degrees:  float64(s.Temp()),
		Fan:      FanToCommon(s.Fan()),
		Turbo:    s.Turbo(),
		Light:    s.Light(),
		Clean:    s.XFan(),
		SwingH:   stdac.SwingHOff,
		Sleep:    -1,
		Clock:    -1,
	}
	if s.Sleep() {
		out.Sleep = 0
	}
	if s.SwingVerticalAuto() {
		out.SwingV = stdac.SwingVAuto
	} else {
		out.SwingV = SwingVToCommon(s.SwingVerticalPos())
	}
	return out
}
