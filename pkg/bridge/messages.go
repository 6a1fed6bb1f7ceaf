// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package bridge

import "time"

// Message builders create Packet structs ready for encoding. Pulse
// timings travel as arrays of unsigned microsecond counts; durations
// are truncated to microsecond resolution on the wire.

// NewTransmit creates a TRANSMIT packet (0x10) instructing the dongle
// to play a pulse sequence at the given carrier frequency. The
// sequence alternates mark/space starting with a mark; the dongle
// plays it repeat+1 times.
func NewTransmit(carrierKHz int, repeat int, timings []time.Duration) *Packet {
	payload := map[int]interface{}{
		keyCarrierKHz: uint64(carrierKHz),
		keyRepeat:     uint64(repeat),
		keyTimings:    timingsToMicros(timings),
	}
	return NewPacketWithPayload(MsgTransmit, payload)
}

// NewCaptureOn creates a CAPTURE_ON packet (0x11). The dongle starts
// reporting received IR as CAPTURE frames.
func NewCaptureOn() *Packet {
	return NewPacketWithPayload(MsgCaptureOn, nil)
}

// NewCaptureOff creates a CAPTURE_OFF packet (0x12).
func NewCaptureOff() *Packet {
	return NewPacketWithPayload(MsgCaptureOff, nil)
}

// NewCapture creates a CAPTURE packet (0x30) as a dongle would emit
// it. Used by tests and by loopback tooling.
func NewCapture(timestamp time.Time, timings []time.Duration) *Packet {
	payload := map[int]interface{}{
		keyTimestamp:      uint64(timestamp.UnixMilli()),
		keyCaptureTimings: timingsToMicros(timings),
	}
	return NewPacketWithPayload(MsgCapture, payload)
}

// NewPingRequest creates a PING_REQUEST packet (0x1F). Dongles answer
// with PING_RESPONSE carrying their uptime.
func NewPingRequest() *Packet {
	return NewPacketWithPayload(MsgPingRequest, nil)
}

// Timings extracts the pulse sequence from a TRANSMIT or CAPTURE
// payload. Returns false for other message types or missing arrays.
func (p *Packet) Timings() ([]time.Duration, bool) {
	var key int
	switch p.Type() {
	case MsgTransmit:
		key = keyTimings
	case MsgCapture:
		key = keyCaptureTimings
	default:
		return nil, false
	}
	micros, ok := GetMapUints(p.PayloadMap(), key)
	if !ok {
		return nil, false
	}
	out := make([]time.Duration, len(micros))
	for i, us := range micros {
		out[i] = time.Duration(us) * time.Microsecond
	}
	return out, true
}

// CaptureTime extracts the dongle-side timestamp of a CAPTURE frame.
func (p *Packet) CaptureTime() (time.Time, bool) {
	if p.Type() != MsgCapture {
		return time.Time{}, false
	}
	ms, ok := GetMapUint(p.PayloadMap(), keyTimestamp)
	if !ok {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}

func timingsToMicros(timings []time.Duration) []uint64 {
	out := make([]uint64, len(timings))
	for i, d := range timings {
		out[i] = uint64(d / time.Microsecond)
	}
	return out
}
