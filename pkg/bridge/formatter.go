// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package bridge

import "fmt"

// FormatPacket formats a bridge frame into a human-readable string.
func FormatPacket(p *Packet) string {
	timestamp := p.timestamp.Format("15:04:05.000")
	msgType := FormatMessageType(p.Type())

	result := fmt.Sprintf("[%s] %s (0x%02X) len=%d\n", timestamp, msgType, p.Type(), p.length)
	result += formatPayloadMap(p)

	return result
}

// FormatMessageType returns the human-readable name for a message type.
func FormatMessageType(msgType uint8) string {
	switch msgType {
	case MsgTransmit:
		return "TRANSMIT"
	case MsgCaptureOn:
		return "CAPTURE_ON"
	case MsgCaptureOff:
		return "CAPTURE_OFF"
	case MsgPingRequest:
		return "PING_REQUEST"
	case MsgCapture:
		return "CAPTURE"
	case MsgPingResponse:
		return "PING_RESPONSE"
	case MsgErrorInvalidCmd:
		return "ERROR_INVALID_CMD"
	case MsgErrorBusy:
		return "ERROR_BUSY"
	default:
		return "UNKNOWN"
	}
}

func formatPayloadMap(p *Packet) string {
	m := p.PayloadMap()

	switch p.Type() {
	case MsgPingRequest, MsgCaptureOn, MsgCaptureOff:
		return "  (no payload)\n"

	case MsgPingResponse:
		// 0 => uptime-ms
		uptime, _ := GetMapUint(m, 0)
		return fmt.Sprintf("  Uptime: %d ms\n", uptime)

	case MsgTransmit:
		carrier, _ := GetMapUint(m, keyCarrierKHz)
		repeat, _ := GetMapUint(m, keyRepeat)
		timings, _ := GetMapUints(m, keyTimings)
		return fmt.Sprintf("  Carrier: %d kHz, Repeat: %d, Timings: %d entries\n", carrier, repeat, len(timings))

	case MsgCapture:
		ts, _ := GetMapUint(m, keyTimestamp)
		timings, _ := GetMapUints(m, keyCaptureTimings)
		return fmt.Sprintf("  Timestamp: %d ms, Timings: %d entries\n", ts, len(timings))

	case MsgErrorInvalidCmd:
		cmd, ok := GetMapUint(m, 0)
		if ok {
			return fmt.Sprintf("  Invalid Command: 0x%02X\n", cmd)
		}
	}

	if m == nil {
		return "  (no payload)\n"
	}
	return fmt.Sprintf("  Payload: %v\n", m)
}
