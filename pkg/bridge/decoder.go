// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package bridge

import (
	"fmt"
	"time"
)

// Decoder is the per-byte bridge frame decoder state machine. Feed it
// a byte stream; it emits packets as frames complete.
type Decoder struct {
	state      int
	buffer     []byte
	escapeNext bool
	packet     *Packet
}

// NewDecoder creates a new frame decoder.
func NewDecoder() *Decoder {
	return &Decoder{
		state:  stateIdle,
		buffer: make([]byte, 0, lengthSize+MaxPayloadSize),
	}
}

// Reset returns the decoder to idle, discarding any partial frame.
func (d *Decoder) Reset() {
	d.state = stateIdle
	d.buffer = d.buffer[:0]
	d.escapeNext = false
	d.packet = nil
}

// DecodeByte processes a single byte. It returns a completed packet,
// nil while a frame is still in progress, or an error when a frame is
// rejected (the decoder resynchronizes on the next START byte).
func (d *Decoder) DecodeByte(b byte) (*Packet, error) {
	// Handle byte stuffing
	if b == EscByte && !d.escapeNext {
		d.escapeNext = true
		return nil, nil
	}

	originalB := b
	escaped := d.escapeNext
	if escaped {
		b ^= EscXor
		d.escapeNext = false
	}

	// Handle framing bytes
	if originalB == StartByte && !escaped {
		d.Reset()
		d.state = stateLen1
		return nil, nil
	}

	if originalB == EndByte && !escaped {
		if d.state == stateCRC2 {
			packet := d.packet
			calculatedCRC := CalculateCRC(d.buffer)

			if packet.crc != calculatedCRC {
				err := fmt.Errorf("CRC mismatch: expected 0x%04X, got 0x%04X", calculatedCRC, packet.crc)
				d.Reset()
				return nil, err
			}

			packet.timestamp = time.Now()

			d.Reset()
			return packet, nil
		}
		state := d.state
		d.Reset()
		return nil, fmt.Errorf("unexpected END byte in state %d", state)
	}

	// State machine
	switch d.state {
	case stateIdle:
		// Waiting for START byte
		return nil, nil

	case stateLen1:
		d.packet = &Packet{length: uint16(b)}
		d.buffer = append(d.buffer, b)
		d.state = stateLen2
		return nil, nil

	case stateLen2:
		d.packet.length |= uint16(b) << 8
		if d.packet.length > MaxPayloadSize {
			length := d.packet.length
			d.Reset()
			return nil, fmt.Errorf("invalid length: %d (max %d)", length, MaxPayloadSize)
		}
		d.buffer = append(d.buffer, b)
		d.packet.cborPayload = make([]byte, 0, d.packet.length)
		if d.packet.length == 0 {
			d.state = stateCRC1
		} else {
			d.state = statePayload
		}
		return nil, nil

	case statePayload:
		d.packet.cborPayload = append(d.packet.cborPayload, b)
		d.buffer = append(d.buffer, b)
		if len(d.packet.cborPayload) >= int(d.packet.length) {
			d.state = stateCRC1
		}
		return nil, nil

	case stateCRC1:
		d.packet.crc = uint16(b) << 8
		d.state = stateCRC2
		return nil, nil

	case stateCRC2:
		d.packet.crc |= uint16(b)
		// Wait for END byte
		return nil, nil

	default:
		d.Reset()
		return nil, fmt.Errorf("invalid state: %d", d.state)
	}
}
