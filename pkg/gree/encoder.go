// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package gree

import (
	"time"

	"github.com/coldspell/aircast/pkg/irpulse"
)

// FrameTimings is the number of timing entries in one transmitted
// frame: header pair, 64 data bits, 3 footer bits, inter-block pair
// and trailing pair.
const FrameTimings = 2 + 2*Bits + 2*BlockFooterBits + 4

// Encode converts a raw Gree record into its pulse timing sequence:
// alternating mark/space durations starting with the header mark. The
// message is repeated repeat+1 times, so repeat=0 sends exactly once.
//
// Frame structure per repeat: header mark/space, first 4 record bytes
// as 32 LSB-first bits, the 3-bit block footer, a bit mark plus
// message-space gap, the remaining 4 bytes as 32 bits, and a final
// bit mark plus message space. No header is re-emitted before the
// second block; the gap substitutes for it.
//
// Returns nil when raw holds fewer than StateLength bytes - a
// configuration error upstream, not worth sending garbage for.
func Encode(raw []byte, repeat int) []time.Duration {
	if len(raw) < StateLength {
		return nil
	}
	seq := make([]time.Duration, 0, (repeat+1)*FrameTimings)
	for r := 0; r <= repeat; r++ {
		seq = append(seq, HdrMark, HdrSpace)
		for _, b := range raw[:4] {
			seq = appendBits(seq, uint64(b), 8)
		}
		seq = appendBits(seq, BlockFooter, BlockFooterBits)
		seq = append(seq, BitMark, MsgSpace)
		for _, b := range raw[4:StateLength] {
			seq = appendBits(seq, uint64(b), 8)
		}
		seq = append(seq, BitMark, MsgSpace)
	}
	return seq
}

// appendBits emits n bits of v LSB-first, one mark/space pair per bit.
func appendBits(seq []time.Duration, v uint64, n int) []time.Duration {
	for i := 0; i < n; i++ {
		seq = append(seq, BitMark)
		if v>>i&1 == 1 {
			seq = append(seq, OneSpace)
		} else {
			seq = append(seq, ZeroSpace)
		}
	}
	return seq
}

// Encode fixes up the record and returns its pulse timing sequence.
func (s *State) Encode(repeat int) []time.Duration {
	return Encode(s.Raw(), repeat)
}

// Send fixes up the record and plays it over tx, repeated repeat+1
// times. A caller that needs to abort a long repeat train can only do
// so between repeats; one frame is always emitted whole.
func (s *State) Send(tx irpulse.Transmitter, repeat int) {
	irpulse.SendRaw(tx, s.Encode(repeat))
}
