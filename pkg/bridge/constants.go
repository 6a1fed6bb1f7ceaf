// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

// Package bridge implements the framed link protocol spoken by
// aircast IR transceiver dongles over serial or WebSocket transports.
//
// A frame is a byte-stuffed section between START and END bytes,
// holding a little-endian 16-bit length, a CBOR payload of the shape
// [msg_type, payload_map], and a CRC-16-CCITT over length and
// payload. The dongle plays TRANSMIT pulse sequences and reports
// received IR as CAPTURE frames.
package bridge

// Protocol framing bytes
const (
	StartByte = 0x7E
	EndByte   = 0x7F
	EscByte   = 0x7D
	EscXor    = 0x20
)

// Packet size limits. A 64-bit Gree frame is 140 timings; CBOR encodes
// each in at most 5 bytes, so one payload comfortably holds several
// repeats.
const (
	MaxPayloadSize = 4096
	lengthSize     = 2
)

// CRC-16-CCITT configuration
const (
	crcPolynomial = 0x1021
	crcInitial    = 0xFFFF
)

// Message types - Controller → Dongle 0x10-0x1F
const (
	MsgTransmit    = 0x10
	MsgCaptureOn   = 0x11
	MsgCaptureOff  = 0x12
	MsgPingRequest = 0x1F
)

// Message types - Dongle → Controller 0x30-0x3F
const (
	MsgCapture      = 0x30
	MsgPingResponse = 0x3F
)

// Message types - Errors 0xE0-0xEF
const (
	MsgErrorInvalidCmd = 0xE0
	MsgErrorBusy       = 0xE1
)

// Payload map keys for TRANSMIT
const (
	keyCarrierKHz = 0
	keyRepeat     = 1
	keyTimings    = 2
)

// Payload map keys for CAPTURE
const (
	keyTimestamp      = 0
	keyCaptureTimings = 1
)

// Decoder states (internal)
const (
	stateIdle = iota
	stateLen1
	stateLen2
	statePayload
	stateCRC1
	stateCRC2
)
