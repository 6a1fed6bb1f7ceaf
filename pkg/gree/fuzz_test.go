// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package gree

import (
	"bytes"
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"
)

// getFuzzRounds returns the number of fuzz rounds from FUZZ_ROUNDS env var, default 1000
func getFuzzRounds() int {
	if envRounds := os.Getenv("FUZZ_ROUNDS"); envRounds != "" {
		if rounds, err := strconv.Atoi(envRounds); err == nil && rounds > 0 {
			return rounds
		}
	}
	return 1000
}

// getFuzzSeed returns the seed from FUZZ_SEED env var, or generates one from current time
func getFuzzSeed() int64 {
	if envSeed := os.Getenv("FUZZ_SEED"); envSeed != "" {
		if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}

// newFuzzRng creates a new random number generator and logs the seed for reproducibility
func newFuzzRng(t *testing.T) *rand.Rand {
	seed := getFuzzSeed()
	t.Logf("Seed: %d (reproduce with FUZZ_SEED=%d)", seed, seed)
	return rand.New(rand.NewSource(seed))
}

// randomState builds a record with every settable field randomized.
func randomState(rng *rand.Rand) *State {
	s := NewState()
	s.SetPower(rng.Intn(2) == 1)
	s.SetMode(Mode(rng.Intn(5)))
	s.SetTemp(MinTemp + rng.Intn(MaxTemp-MinTemp+1))
	s.SetFan(rng.Intn(4))
	s.SetLight(rng.Intn(2) == 1)
	s.SetTurbo(rng.Intn(2) == 1)
	s.SetSleep(rng.Intn(2) == 1)
	s.SetXFan(rng.Intn(2) == 1)

	positions := []SwingPos{
		SwingLastPos, SwingAutoFull, SwingUp, SwingMiddleUp, SwingMiddle,
		SwingMiddleDown, SwingDown, SwingDownAuto, SwingMiddleAuto, SwingUpAuto,
	}
	s.SetSwingVertical(rng.Intn(2) == 1, positions[rng.Intn(len(positions))])
	return s
}

// ============================================================
// Round-Trip Fuzz Tests
// ============================================================

// TestFuzzRoundTrip_RandomStates encodes randomized records and
// verifies the decoder reconstructs them bit for bit
func TestFuzzRoundTrip_RandomStates(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	d := NewDecoder()
	for i := 0; i < rounds; i++ {
		s := randomState(rng)
		raw := s.Raw()

		state, bits, err := d.Decode(s.Encode(0), Bits, true)
		if err != nil {
			t.Errorf("Round %d: decode error for % 02X: %v", i, raw, err)
			continue
		}
		if bits != Bits {
			t.Errorf("Round %d: bits = %d, want %d", i, bits, Bits)
		}
		if got := state.Raw(); !bytes.Equal(got, raw) {
			t.Errorf("Round %d: decoded % 02X, want % 02X", i, got, raw)
		}
	}
}

// TestFuzzRoundTrip_RandomRaw round-trips arbitrary byte records in
// lenient mode; the frame grammar carries any 8 bytes, valid or not
func TestFuzzRoundTrip_RandomRaw(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	d := NewDecoder()
	for i := 0; i < rounds; i++ {
		raw := make([]byte, StateLength)
		rng.Read(raw)

		state, _, err := d.Decode(Encode(raw, 0), Bits, false)
		if err != nil {
			t.Errorf("Round %d: lenient decode error for % 02X: %v", i, raw, err)
			continue
		}
		if !bytes.Equal(state.raw[:], raw) {
			t.Errorf("Round %d: decoded % 02X, want % 02X", i, state.raw, raw)
		}
	}
}

// TestFuzzRoundTrip_Jitter applies random per-timing jitter inside the
// matcher tolerance and verifies decoding still succeeds
func TestFuzzRoundTrip_Jitter(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	d := NewDecoder()
	for i := 0; i < rounds; i++ {
		s := randomState(rng)
		raw := s.Raw()
		seq := s.Encode(0)

		// Up to +/-10% per entry, safely inside the matcher window
		// even for the short zero space.
		for j := range seq {
			jitter := time.Duration(rng.Int63n(int64(seq[j])*20/100+1)) - seq[j]/10
			seq[j] += jitter
		}

		state, _, err := d.Decode(seq, Bits, true)
		if err != nil {
			t.Errorf("Round %d: decode error for jittered % 02X: %v", i, raw, err)
			continue
		}
		if got := state.Raw(); !bytes.Equal(got, raw) {
			t.Errorf("Round %d: decoded % 02X, want % 02X", i, got, raw)
		}
	}
}

// ============================================================
// Decoder Fuzz Tests
// ============================================================

// TestFuzzDecoder_RandomTimings feeds random duration buffers to the
// decoder and verifies it fails cleanly instead of panicking
func TestFuzzDecoder_RandomTimings(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	d := NewDecoder()
	for i := 0; i < rounds; i++ {
		length := rng.Intn(300)
		seq := make([]time.Duration, length)
		for j := range seq {
			seq[j] = time.Duration(rng.Intn(25000)) * time.Microsecond
		}

		state, _, err := d.Decode(seq, Bits, true)
		if err == nil {
			// Astronomically unlikely but legal: the buffer happened
			// to be a valid message.
			continue
		}
		if state != nil {
			t.Errorf("Round %d: non-nil state with error %v", i, err)
		}
	}
}

// TestFuzzDecoder_Truncations cuts valid captures at random points and
// verifies the decoder never panics and never reports success for
// anything shorter than a complete message
func TestFuzzDecoder_Truncations(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	d := NewDecoder()
	for i := 0; i < rounds; i++ {
		s := randomState(rng)
		seq := s.Encode(0)
		cut := rng.Intn(len(seq) - 1)

		state, _, err := d.Decode(seq[:cut], Bits, true)
		if cut < FrameTimings-1 && err == nil {
			t.Errorf("Round %d: decode succeeded on %d of %d entries", i, cut, len(seq))
		}
		if err != nil && state != nil {
			t.Errorf("Round %d: non-nil state with error %v", i, err)
		}
	}
}
