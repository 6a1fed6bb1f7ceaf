// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package bridge

import "time"

// Packet is a decoded bridge frame.
type Packet struct {
	length      uint16
	cborPayload []byte // raw CBOR bytes: [msg_type, payload_map]
	crc         uint16
	timestamp   time.Time

	// Cached parsed values (lazy parsing)
	msgType    uint8
	payloadMap map[int]interface{}
	parsed     bool
	parseErr   error
}

// NewPacket creates a packet from already-framed fields.
func NewPacket(length uint16, cborPayload []byte, crc uint16) *Packet {
	return &Packet{
		length:      length,
		cborPayload: cborPayload,
		crc:         crc,
		timestamp:   time.Now(),
	}
}

// NewPacketWithPayload creates a packet from a message type and
// payload map. CBOR encoding and CRC are computed at encode time.
func NewPacketWithPayload(msgType uint8, payload map[int]interface{}) *Packet {
	return &Packet{
		msgType:    msgType,
		payloadMap: payload,
		parsed:     true,
		timestamp:  time.Now(),
	}
}

// ensureParsed parses the CBOR payload if not already done
func (p *Packet) ensureParsed() {
	if p.parsed {
		return
	}
	p.parsed = true
	if len(p.cborPayload) == 0 {
		return
	}
	p.msgType, p.payloadMap, p.parseErr = ParseCBORMessage(p.cborPayload)
}

// Length returns the CBOR payload length in bytes.
func (p *Packet) Length() uint16 {
	return p.length
}

// Type returns the message type parsed from the CBOR payload.
func (p *Packet) Type() uint8 {
	p.ensureParsed()
	return p.msgType
}

// Payload returns the raw CBOR payload bytes.
func (p *Packet) Payload() []byte {
	return p.cborPayload
}

// PayloadMap returns the decoded payload map, nil for empty payloads.
func (p *Packet) PayloadMap() map[int]interface{} {
	p.ensureParsed()
	return p.payloadMap
}

// ParseError returns any error from parsing the CBOR payload.
func (p *Packet) ParseError() error {
	p.ensureParsed()
	return p.parseErr
}

// CRC returns the frame's CRC value.
func (p *Packet) CRC() uint16 {
	return p.crc
}

// Timestamp returns the decode timestamp.
func (p *Packet) Timestamp() time.Time {
	return p.timestamp
}
