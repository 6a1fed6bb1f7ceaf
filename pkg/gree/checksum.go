// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package gree

// BlockChecksum computes the 4-bit nibble-sum checksum over
// state[:length]. The algorithm is shared with the Kelvinator block
// checksum: starting from the common seed, it sums the low nibbles of
// the first four bytes and the high nibbles of the remaining bytes up
// to but excluding the final (checksum-carrying) byte, modulo 16.
func BlockChecksum(state []byte, length int) uint8 {
	sum := uint8(checksumSeed)
	for i := 0; i < 4 && i < length-1; i++ {
		sum += state[i] & 0x0F
	}
	for i := 4; i < length-1; i++ {
		sum += state[i] >> 4
	}
	return sum & 0x0F
}

// ValidChecksum reports whether the top nibble of the last byte of
// state matches the freshly computed block checksum.
func ValidChecksum(state []byte) bool {
	if len(state) < StateLength {
		return false
	}
	return state[StateLength-1]>>4 == BlockChecksum(state, StateLength)
}
