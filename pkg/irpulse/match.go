// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package irpulse

import "time"

// Matcher compares measured pulse durations against expected protocol
// timings. Tolerance is a percentage window around the expected value.
// Excess compensates for receiver hardware stretching marks at the
// expense of the following space: measured marks run long by roughly
// Excess, measured spaces run short by the same amount.
type Matcher struct {
	Tolerance int // percent
	Excess    time.Duration
}

// Default is the matcher used by the bundled codecs. 25% / 50µs are
// the de-facto values for consumer demodulator modules.
var Default = Matcher{Tolerance: 25, Excess: 50 * time.Microsecond}

func (m Matcher) inRange(measured, want time.Duration) bool {
	delta := want * time.Duration(m.Tolerance) / 100
	return measured >= want-delta && measured <= want+delta
}

// Mark reports whether a measured carrier-on duration matches want.
func (m Matcher) Mark(measured, want time.Duration) bool {
	return m.inRange(measured, want+m.Excess)
}

// Space reports whether a measured carrier-off duration matches want.
func (m Matcher) Space(measured, want time.Duration) bool {
	return m.inRange(measured, want-m.Excess)
}

// AtLeast reports whether a measured duration reaches min, allowing
// the tolerance window on the low side only. Trailing gaps are
// open-ended: anything longer than the minimum is acceptable.
func (m Matcher) AtLeast(measured, min time.Duration) bool {
	return measured >= min-min*time.Duration(m.Tolerance)/100
}

// BitsResult reports the outcome of a multi-bit match.
type BitsResult struct {
	OK   bool
	Data uint64
	Used int // timing entries consumed
}

// Bits matches nbits consecutive (mark, space) pairs against the
// given bit timings and assembles the decoded value. With lsbFirst
// the first decoded bit is bit 0. At most 64 bits can be matched.
func (m Matcher) Bits(buf []time.Duration, nbits int, bitMark, oneSpace, zeroSpace time.Duration, lsbFirst bool) BitsResult {
	if nbits > 64 || len(buf) < 2*nbits {
		return BitsResult{}
	}
	var data uint64
	for i := 0; i < nbits; i++ {
		if !m.Mark(buf[2*i], bitMark) {
			return BitsResult{Used: 2 * i}
		}
		var bit uint64
		switch {
		case m.Space(buf[2*i+1], oneSpace):
			bit = 1
		case m.Space(buf[2*i+1], zeroSpace):
			bit = 0
		default:
			return BitsResult{Used: 2 * i}
		}
		if lsbFirst {
			data |= bit << i
		} else {
			data = data<<1 | bit
		}
	}
	return BitsResult{OK: true, Data: data, Used: 2 * nbits}
}
