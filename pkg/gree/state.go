// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package gree

// State is the fixed 8-byte Gree command record. The zero value is
// not a valid record; use NewState or SetRaw.
//
// Setters never fail: out-of-domain inputs are silently normalized to
// a safe in-domain value. A remote must keep commanding hardware even
// when handed garbage, so the record degrades instead of erroring.
// The checksum nibble is recomputed lazily by Fixup, which every
// externalizing path (Raw, Encode, String) calls itself.
type State struct {
	raw [StateLength]byte
}

// NewState returns a record reset to the canonical power-off default.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores the known-good default: power off, fan auto, mode
// auto, 25°C. Bytes 1, 2, 3, 5 and 7 carry fixed initialization
// values required by real hardware.
func (s *State) Reset() {
	s.raw = [StateLength]byte{}
	s.raw[1] = 0x09
	s.raw[2] = 0x20
	s.raw[3] = 0x50
	s.raw[5] = 0x20
	s.raw[7] = 0x50
}

// SetRaw replaces the record with caller-supplied bytes. Extra bytes
// are ignored; missing bytes leave the tail untouched.
func (s *State) SetRaw(raw []byte) {
	copy(s.raw[:], raw)
}

// Raw returns a copy of the record with the checksum fixed up. The
// record itself is also fixed up, so a subsequent transmission sends
// exactly these bytes.
func (s *State) Raw() []byte {
	s.Fixup()
	out := make([]byte, StateLength)
	copy(out, s.raw[:])
	return out
}

// Fixup recomputes the checksum and writes it into the top nibble of
// the last byte, preserving that byte's low nibble.
func (s *State) Fixup() {
	sum := BlockChecksum(s.raw[:], StateLength)
	s.raw[StateLength-1] = sum<<4 | s.raw[StateLength-1]&0x0F
}

// On turns the unit on. Power is stored in two redundant bits (byte 0
// bit 3 and byte 2 bit 3) that must agree.
func (s *State) On() {
	s.raw[0] |= power1Mask
	s.raw[2] |= power2Mask
}

// Off turns the unit off, clearing both power bits.
func (s *State) Off() {
	s.raw[0] &^= power1Mask
	s.raw[2] &^= power2Mask
}

// SetPower sets or clears both power bits.
func (s *State) SetPower(on bool) {
	if on {
		s.On()
	} else {
		s.Off()
	}
}

// Power reports true only when both redundant power bits are set.
// Partial state reads as off.
func (s *State) Power() bool {
	return s.raw[0]&power1Mask != 0 && s.raw[2]&power2Mask != 0
}

// SetTemp sets the target temperature in °C, clamped to
// [MinTemp, MaxTemp]. While the mode is Auto the temperature is
// locked to AutoTemp regardless of the requested value.
func (s *State) SetTemp(degrees int) {
	t := degrees
	if t < MinTemp {
		t = MinTemp
	}
	if t > MaxTemp {
		t = MaxTemp
	}
	if s.Mode() == ModeAuto {
		t = AutoTemp
	}
	s.raw[1] = s.raw[1]&0xF0 | byte(t-MinTemp)
}

// Temp returns the target temperature in °C.
func (s *State) Temp() int {
	return int(s.raw[1]&0x0F) + MinTemp
}

// SetFan sets the fan speed, clamped to [FanAuto, FanMax]. Dry mode
// is locked to FanMin regardless of the requested speed.
func (s *State) SetFan(speed int) {
	f := speed
	if f < FanAuto {
		f = FanAuto
	}
	if f > FanMax {
		f = FanMax
	}
	if s.Mode() == ModeDry {
		f = FanMin
	}
	s.raw[0] = s.raw[0]&^fanMask | byte(f)<<4
}

// Fan returns the fan speed, 0 (auto) to 3.
func (s *State) Fan() int {
	return int(s.raw[0]&fanMask) >> 4
}

// SetMode sets the operating mode. Auto locks the temperature to
// AutoTemp and Dry locks the fan to FanMin as a side effect; an
// unknown mode is substituted with Auto.
func (s *State) SetMode(mode Mode) {
	m := mode
	switch m {
	case ModeAuto:
		s.SetTemp(AutoTemp)
	case ModeDry:
		s.SetFan(FanMin)
	case ModeCool, ModeFan, ModeHeat:
	default:
		m = ModeAuto
	}
	s.raw[0] = s.raw[0]&^modeMask | byte(m)
}

// Mode returns the operating mode.
func (s *State) Mode() Mode {
	return Mode(s.raw[0] & modeMask)
}

// SetLight controls the display light.
func (s *State) SetLight(on bool) {
	s.raw[2] &^= lightMask
	if on {
		s.raw[2] |= lightMask
	}
}

// Light reports whether the display light is on.
func (s *State) Light() bool {
	return s.raw[2]&lightMask != 0
}

// SetXFan controls the coil-drying ("X-Fan") feature.
func (s *State) SetXFan(on bool) {
	s.raw[2] &^= xfanMask
	if on {
		s.raw[2] |= xfanMask
	}
}

// XFan reports whether X-Fan is enabled.
func (s *State) XFan() bool {
	return s.raw[2]&xfanMask != 0
}

// SetSleep controls sleep mode.
func (s *State) SetSleep(on bool) {
	s.raw[0] &^= sleepMask
	if on {
		s.raw[0] |= sleepMask
	}
}

// Sleep reports whether sleep mode is enabled.
func (s *State) Sleep() bool {
	return s.raw[0]&sleepMask != 0
}

// SetTurbo controls turbo mode.
func (s *State) SetTurbo(on bool) {
	s.raw[2] &^= turboMask
	if on {
		s.raw[2] |= turboMask
	}
}

// Turbo reports whether turbo mode is enabled.
func (s *State) Turbo() bool {
	return s.raw[2]&turboMask != 0
}

// SetSwingVertical sets the vertical vane. With automatic true the
// position must be one of the auto-variant codes, otherwise it is
// substituted with SwingAutoFull. With automatic false the position
// must be one of the five fixed positions, otherwise it is
// substituted with SwingLastPos.
func (s *State) SetSwingVertical(automatic bool, position SwingPos) {
	s.raw[0] &^= swingAutoMask
	if automatic {
		s.raw[0] |= swingAutoMask
	}
	p := position
	if automatic {
		switch p {
		case SwingAutoFull, SwingDownAuto, SwingMiddleAuto, SwingUpAuto:
		default:
			p = SwingAutoFull
		}
	} else {
		switch p {
		case SwingUp, SwingMiddleUp, SwingMiddle, SwingMiddleDown, SwingDown:
		default:
			p = SwingLastPos
		}
	}
	s.raw[4] = s.raw[4]&^swingPosMask | byte(p)
}

// SwingVerticalAuto reports whether automatic vertical swing is set.
func (s *State) SwingVerticalAuto() bool {
	return s.raw[0]&swingAutoMask != 0
}

// SwingVerticalPos returns the vane position code.
func (s *State) SwingVerticalPos() SwingPos {
	return SwingPos(s.raw[4] & swingPosMask)
}
