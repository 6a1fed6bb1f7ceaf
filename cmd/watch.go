// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Coldspell Labs

package cmd

import (
	"fmt"
	"log"

	"github.com/coldspell/aircast/pkg/bridge"
	"github.com/coldspell/aircast/pkg/gree"
	"github.com/spf13/cobra"
)

var watchLenient bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Log captured IR traffic in human-readable form",
	Long: `Continuously read bridge frames and decode CAPTURE payloads as Gree
commands as they arrive. Non-capture frames are logged as-is.

Supports both serial and WebSocket connections.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchLenient, "lenient", false, "Skip bit-count and checksum validation")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	// Ask the dongle to start reporting received IR.
	if on, err := bridge.Encode(bridge.NewCaptureOn()); err == nil {
		conn.Write(on)
	}

	fmt.Printf("Aircast - Capture Log\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	frames := bridge.NewDecoder()
	codec := gree.NewDecoder()
	stats := bridge.NewStats()
	buf := make([]byte, 512)

	for {
		n, err := conn.Read(buf)
		if err != nil {
			if err == ErrConnectionClosed {
				log.Printf("Connection closed")
				fmt.Print(stats)
				return nil
			}
			log.Printf("Read error: %v", err)
			continue
		}

		for i := 0; i < n; i++ {
			packet, err := frames.DecodeByte(buf[i])
			if err != nil {
				stats.Frame(nil, err)
				fmt.Printf("[ERROR] %v\n", err)
				continue
			}
			if packet == nil {
				continue
			}
			stats.Frame(packet, nil)

			if packet.Type() != bridge.MsgCapture {
				fmt.Print(bridge.FormatPacket(packet))
				continue
			}

			timings, ok := packet.Timings()
			if !ok {
				fmt.Printf("[ERROR] capture frame without timings\n")
				continue
			}

			state, bits, err := codec.Decode(timings, gree.Bits, !watchLenient)
			stats.Capture(err)
			if err != nil {
				fmt.Printf("[%s] unrecognized capture (%d timings): %v\n",
					packet.Timestamp().Format("15:04:05.000"), len(timings), err)
				continue
			}
			fmt.Printf("[%s] %s (%d bits)\n",
				packet.Timestamp().Format("15:04:05.000"), state, bits)
		}
	}
}
