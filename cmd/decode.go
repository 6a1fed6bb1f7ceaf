// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Coldspell Labs

package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/coldspell/aircast/pkg/gree"
	"github.com/spf13/cobra"
)

var (
	decodeLenient bool
	decodeBits    int
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a captured IR pulse timing sequence",
	Long: `Read whitespace-separated pulse durations in microseconds (marks and
spaces alternating, mark first) from a file or stdin and decode them
as a Gree command.

Strict decoding requires a full 64-bit message with a valid checksum.
Use --lenient to accept captures with checksum damage.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeLenient, "lenient", false, "Skip bit-count and checksum validation")
	decodeCmd.Flags().IntVar(&decodeBits, "bits", gree.Bits, "Expected data bit count")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	timings, err := readTimings(in)
	if err != nil {
		return err
	}

	dec := gree.NewDecoder()
	state, bits, err := dec.Decode(timings, decodeBits, !decodeLenient)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	fmt.Printf("%s\n", state)
	fmt.Printf("State: % 02X\n", state.Raw())
	fmt.Printf("Bits: %d\n", bits)
	return nil
}

// readTimings parses whitespace-separated microsecond counts.
func readTimings(in io.Reader) ([]time.Duration, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return nil, fmt.Errorf("no timings in input")
	}
	timings := make([]time.Duration, 0, len(fields))
	for _, f := range fields {
		us, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad timing %q: %v", f, err)
		}
		timings = append(timings, time.Duration(us)*time.Microsecond)
	}
	return timings, nil
}
