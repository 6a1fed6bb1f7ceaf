// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package bridge

import (
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

// randomTimings builds a random pulse sequence of up to 300 entries.
func randomTimings(rng *rand.Rand) []time.Duration {
	timings := make([]time.Duration, rng.Intn(300))
	for i := range timings {
		timings[i] = time.Duration(rng.Intn(20000)) * time.Microsecond
	}
	return timings
}

// TestFuzzDecoder_RandomBytes feeds random bytes to the decoder
// and verifies it doesn't crash or panic
func TestFuzzDecoder_RandomBytes(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		d := NewDecoder()

		length := rng.Intn(512) + 1
		data := make([]byte, length)
		rng.Read(data)

		for _, b := range data {
			d.DecodeByte(b)
		}
	}
}

// TestFuzzRoundTrip_RandomTransmits encodes TRANSMIT frames with random
// pulse sequences and verifies byte-level decode reproduces them
func TestFuzzRoundTrip_RandomTransmits(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		timings := randomTimings(rng)
		carrier := rng.Intn(57)
		repeat := rng.Intn(10)

		frame, err := Encode(NewTransmit(carrier, repeat, timings))
		if err != nil {
			t.Errorf("Round %d: encode error: %v", i, err)
			continue
		}

		d := NewDecoder()
		var packet *Packet
		for _, b := range frame {
			packet, err = d.DecodeByte(b)
			if err != nil {
				t.Errorf("Round %d: decode error: %v", i, err)
				break
			}
		}
		if packet == nil {
			if err == nil {
				t.Errorf("Round %d: no packet from complete frame", i)
			}
			continue
		}

		if packet.Type() != MsgTransmit {
			t.Errorf("Round %d: type = 0x%02X, want TRANSMIT", i, packet.Type())
		}
		got, ok := packet.Timings()
		if !ok || len(got) != len(timings) {
			t.Errorf("Round %d: timings = %d entries, want %d", i, len(got), len(timings))
			continue
		}
		for j := range timings {
			if got[j] != timings[j] {
				t.Errorf("Round %d: timing %d = %v, want %v", i, j, got[j], timings[j])
				break
			}
		}
	}
}

// TestFuzzDecoder_CorruptedFrames corrupts one wire byte per round and
// verifies the decoder rejects the frame instead of panicking
func TestFuzzDecoder_CorruptedFrames(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		frame, err := Encode(NewCapture(time.Now(), randomTimings(rng)))
		if err != nil {
			t.Fatalf("Round %d: encode error: %v", i, err)
		}

		// Corrupt one byte between the delimiters.
		if len(frame) > 2 {
			idx := rng.Intn(len(frame)-2) + 1
			frame[idx] ^= byte(rng.Intn(255) + 1)
		}

		d := NewDecoder()
		for _, b := range frame {
			d.DecodeByte(b)
		}
	}
}

// TestFuzzDecoder_TruncatedFrames drops a tail of the wire frame and
// verifies no packet is emitted
func TestFuzzDecoder_TruncatedFrames(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		frame, err := Encode(NewPingRequest())
		if err != nil {
			t.Fatalf("Round %d: encode error: %v", i, err)
		}

		cut := rng.Intn(len(frame)-1) + 1

		d := NewDecoder()
		for _, b := range frame[:cut] {
			packet, _ := d.DecodeByte(b)
			if packet != nil {
				t.Errorf("Round %d: packet from truncated frame (%d of %d bytes)",
					i, cut, len(frame))
			}
		}
	}
}
