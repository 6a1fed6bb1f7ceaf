// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package gree

import (
	"fmt"
	"strings"
)

// String returns the mode name as transmitted on remote displays.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "AUTO"
	case ModeCool:
		return "COOL"
	case ModeDry:
		return "DRY"
	case ModeFan:
		return "FAN"
	case ModeHeat:
		return "HEAT"
	default:
		return "UNKNOWN"
	}
}

// String formats the record into a human-readable summary. The record
// is fixed up first, so the printed state matches what would be sent.
func (s *State) String() string {
	s.Fixup()

	var b strings.Builder
	fmt.Fprintf(&b, "Power: %s", onOff(s.Power()))
	fmt.Fprintf(&b, ", Mode: %d (%s)", s.Mode(), s.Mode())
	fmt.Fprintf(&b, ", Temp: %dC", s.Temp())
	fmt.Fprintf(&b, ", Fan: %d", s.Fan())
	switch s.Fan() {
	case FanAuto:
		b.WriteString(" (AUTO)")
	case FanMax:
		b.WriteString(" (MAX)")
	}
	fmt.Fprintf(&b, ", Turbo: %s", onOff(s.Turbo()))
	fmt.Fprintf(&b, ", XFan: %s", onOff(s.XFan()))
	fmt.Fprintf(&b, ", Light: %s", onOff(s.Light()))
	fmt.Fprintf(&b, ", Sleep: %s", onOff(s.Sleep()))
	if s.SwingVerticalAuto() {
		b.WriteString(", Swing Vertical Mode: Auto")
	} else {
		b.WriteString(", Swing Vertical Mode: Manual")
	}
	fmt.Fprintf(&b, ", Swing Vertical Pos: %d", s.SwingVerticalPos())
	switch s.SwingVerticalPos() {
	case SwingLastPos:
		b.WriteString(" (Last Pos)")
	case SwingAutoFull:
		b.WriteString(" (Auto)")
	}
	return b.String()
}

func onOff(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}
