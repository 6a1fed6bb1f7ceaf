// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package gree

import (
	"errors"
	"time"

	"github.com/coldspell/aircast/pkg/irpulse"
)

// Decode failures. Callers normally only branch on nil versus
// non-nil; the sentinels exist for logs and tests.
var (
	ErrTooShort = errors.New("gree: capture too short")
	ErrBits     = errors.New("gree: bit count is not a full message")
	ErrHeader   = errors.New("gree: header mismatch")
	ErrBlock    = errors.New("gree: data block mismatch")
	ErrFooter   = errors.New("gree: block footer mismatch")
	ErrGap      = errors.New("gree: inter-block gap mismatch")
	ErrTrailer  = errors.New("gree: trailing pulse mismatch")
	ErrChecksum = errors.New("gree: invalid checksum")
)

// Decoder reconstructs command records from captured pulse timings.
type Decoder struct {
	Match irpulse.Matcher
}

// NewDecoder returns a decoder using the default timing tolerances.
func NewDecoder() *Decoder {
	return &Decoder{Match: irpulse.Default}
}

// Decode validates a captured mark/space sequence against the Gree
// frame grammar and reconstructs the command record. nbits is the
// number of data bits expected (Bits for a full message). In strict
// mode the capture must be a full 64-bit message with a valid
// checksum; lenient mode accepts any capture that parses.
//
// On failure no record is returned; callers must check the error, not
// buffer contents. On success the decoded bit count is also reported.
func (d *Decoder) Decode(capture []time.Duration, nbits int, strict bool) (*State, int, error) {
	if len(capture) < 2*(nbits+BlockFooterBits)+5 {
		return nil, 0, ErrTooShort
	}
	if strict && nbits != Bits {
		return nil, 0, ErrBits
	}

	var raw [StateLength]byte
	offset := 0

	// Header
	if !d.Match.Mark(capture[offset], HdrMark) {
		return nil, 0, ErrHeader
	}
	offset++
	if !d.Match.Space(capture[offset], HdrSpace) {
		return nil, 0, ErrHeader
	}
	offset++

	// Data block #1 (32 bits)
	res := d.Match.Bits(capture[offset:], 32, BitMark, OneSpace, ZeroSpace, true)
	if !res.OK {
		return nil, 0, ErrBlock
	}
	offset += res.Used
	for i, data := 0, res.Data; i < 4; i, data = i+1, data>>8 {
		raw[i] = byte(data)
	}
	pos := 4

	// Block #1 footer (3 bits, must be 0b010)
	res = d.Match.Bits(capture[offset:], BlockFooterBits, BitMark, OneSpace, ZeroSpace, true)
	if !res.OK || res.Data != BlockFooter {
		return nil, 0, ErrFooter
	}
	offset += res.Used

	// Inter-block gap
	if !d.Match.Mark(capture[offset], BitMark) {
		return nil, 0, ErrGap
	}
	offset++
	if !d.Match.Space(capture[offset], MsgSpace) {
		return nil, 0, ErrGap
	}
	offset++

	// Data block #2 (32 bits)
	res = d.Match.Bits(capture[offset:], 32, BitMark, OneSpace, ZeroSpace, true)
	if !res.OK {
		return nil, 0, ErrBlock
	}
	offset += res.Used
	for i, data := 0, res.Data; i < 4; i, data = i+1, data>>8 {
		raw[pos+i] = byte(data)
	}
	pos += 4

	// Trailer: a bit mark, then at least a message space. The capture
	// may end right after the mark when the receiver stopped early.
	if !d.Match.Mark(capture[offset], BitMark) {
		return nil, 0, ErrTrailer
	}
	offset++
	if offset < len(capture) && !d.Match.AtLeast(capture[offset], MsgSpace) {
		return nil, 0, ErrTrailer
	}

	if strict {
		if pos != StateLength {
			return nil, 0, ErrBits
		}
		if !ValidChecksum(raw[:]) {
			return nil, 0, ErrChecksum
		}
	}

	return &State{raw: raw}, pos * 8, nil
}
