// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package bridge

import (
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Encode produces the wire form of a packet: framing bytes around the
// byte-stuffed data section (length, CBOR payload, CRC).
func Encode(p *Packet) ([]byte, error) {
	return EncodeMessage(p.Type(), p.PayloadMap())
}

// EncodeMessage creates a complete wire-formatted bridge frame from a
// message type and payload map.
func EncodeMessage(msgType uint8, payloadMap map[int]interface{}) ([]byte, error) {
	cborPayload, err := encodeCBORPayload(msgType, payloadMap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode CBOR payload: %w", err)
	}

	if len(cborPayload) > MaxPayloadSize {
		return nil, fmt.Errorf("CBOR payload too large: %d bytes (max %d)", len(cborPayload), MaxPayloadSize)
	}

	// Data section: length + CBOR payload. This is what gets CRC'd
	// and byte-stuffed.
	data := make([]byte, lengthSize+len(cborPayload))
	binary.LittleEndian.PutUint16(data[:lengthSize], uint16(len(cborPayload)))
	copy(data[lengthSize:], cborPayload)

	crc := CalculateCRC(data)
	data = append(data, byte(crc>>8), byte(crc&0xFF))

	stuffed := stuffBytes(data)

	frame := make([]byte, 0, len(stuffed)+2)
	frame = append(frame, StartByte)
	frame = append(frame, stuffed...)
	frame = append(frame, EndByte)

	return frame, nil
}

// encodeCBORPayload creates the CBOR-encoded payload for a message.
func encodeCBORPayload(msgType uint8, payloadMap map[int]interface{}) ([]byte, error) {
	var msg interface{}
	if len(payloadMap) == 0 {
		msg = []interface{}{uint64(msgType), nil}
	} else {
		msg = []interface{}{uint64(msgType), payloadMap}
	}
	return cbor.Marshal(msg)
}

// stuffBytes escapes framing bytes in the data section. START, END
// and ESC are replaced with ESC + (byte XOR EscXor).
func stuffBytes(data []byte) []byte {
	result := make([]byte, 0, len(data)*2)
	for _, b := range data {
		if b == StartByte || b == EndByte || b == EscByte {
			result = append(result, EscByte, b^EscXor)
		} else {
			result = append(result, b)
		}
	}
	return result
}
