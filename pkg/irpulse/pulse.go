// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

// Package irpulse provides the pulse-level primitives shared by IR
// protocol codecs: transmission of mark/space duration sequences and
// tolerance-aware matching of captured timings.
//
// A "mark" is carrier-on for a duration, a "space" is carrier-off.
// Encoders produce alternating sequences starting with a mark;
// receivers capture the same shape.
package irpulse

import "time"

// Transmitter is the hardware-facing side of an IR emitter. Mark
// drives the modulated carrier for the duration, Space holds the
// output off. Implementations own carrier generation and pin setup.
type Transmitter interface {
	Mark(d time.Duration)
	Space(d time.Duration)
}

// SendRaw plays an alternating mark/space sequence over tx. Even
// indices are marks, odd indices are spaces.
func SendRaw(tx Transmitter, seq []time.Duration) {
	for i, d := range seq {
		if i%2 == 0 {
			tx.Mark(d)
		} else {
			tx.Space(d)
		}
	}
}

// Recorder is a Transmitter that accumulates emitted durations in
// memory instead of driving hardware. Useful for tests and for
// handing a sequence to a bridge device that plays it back itself.
type Recorder struct {
	Buf []time.Duration
}

// Mark appends a carrier-on duration to the buffer.
func (r *Recorder) Mark(d time.Duration) {
	r.Buf = append(r.Buf, d)
}

// Space appends a carrier-off duration to the buffer.
func (r *Recorder) Space(d time.Duration) {
	r.Buf = append(r.Buf, d)
}

// Reset clears the accumulated buffer.
func (r *Recorder) Reset() {
	r.Buf = r.Buf[:0]
}
