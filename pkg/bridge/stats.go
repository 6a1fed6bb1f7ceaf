// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package bridge

import (
	"fmt"
	"strings"
	"time"
)

// Stats tracks frame and codec outcomes for the watch/tui commands.
type Stats struct {
	StartTime time.Time

	// Counters
	TotalFrames  uint64 // bridge frames seen (valid or not)
	CRCErrors    uint64 // bridge frames dropped on CRC
	Captures     uint64 // CAPTURE frames received
	Decoded      uint64 // captures that decoded to a valid command
	DecodeErrors uint64 // captures the protocol decoder rejected

	// Rates (calculated)
	FrameRate float64 // frames/sec
}

// NewStats creates a statistics tracker.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Frame records the outcome of one bridge frame. frameErr is the
// decoder error, if any.
func (s *Stats) Frame(p *Packet, frameErr error) {
	s.TotalFrames++
	if frameErr != nil {
		if strings.HasPrefix(frameErr.Error(), "CRC mismatch") {
			s.CRCErrors++
		}
		return
	}
	if p != nil && p.Type() == MsgCapture {
		s.Captures++
	}
}

// Capture records the outcome of decoding one captured pulse buffer.
func (s *Stats) Capture(decodeErr error) {
	if decodeErr != nil {
		s.DecodeErrors++
		return
	}
	s.Decoded++
}

// CalculateRates refreshes the derived rate fields.
func (s *Stats) CalculateRates() {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed > 0 {
		s.FrameRate = float64(s.TotalFrames) / elapsed
	}
}

// String returns a formatted statistics summary.
func (s *Stats) String() string {
	s.CalculateRates()

	var decodedPercent float64
	if s.Captures > 0 {
		decodedPercent = float64(s.Decoded) * 100.0 / float64(s.Captures)
	}

	elapsed := time.Since(s.StartTime)

	result := fmt.Sprintf("=== Statistics (%.0f seconds) ===\n", elapsed.Seconds())
	result += fmt.Sprintf("Frames:         %8d\n", s.TotalFrames)
	result += fmt.Sprintf("Captures:       %8d\n", s.Captures)
	result += fmt.Sprintf("Decoded:        %8d (%.1f%%)\n", s.Decoded, decodedPercent)
	if s.DecodeErrors > 0 {
		result += fmt.Sprintf("Decode Errors:  %8d\n", s.DecodeErrors)
	}
	if s.CRCErrors > 0 {
		result += fmt.Sprintf("CRC Errors:     %8d\n", s.CRCErrors)
	}
	result += fmt.Sprintf("Frame Rate:     %8.1f frames/sec\n", s.FrameRate)
	result += "================================\n"

	return result
}

// Reset clears all counters.
func (s *Stats) Reset() {
	*s = Stats{StartTime: time.Now()}
}
