// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Coldspell Labs

package cmd

import (
	"fmt"

	"github.com/coldspell/aircast/pkg/bridge"
	"github.com/coldspell/aircast/pkg/gree"
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Encode a command state and transmit it through a bridge dongle",
	Long: `Build a Gree command record from flags, encode it into a pulse
sequence and send it to an aircast dongle as a TRANSMIT frame.

Requires a connection (--port or --url).`,
	RunE: runSend,
}

func init() {
	addStateFlags(sendCmd)
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	s, err := buildState()
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	// The dongle replays the repeats itself, so the frame carries a
	// single message plus the repeat count.
	timings := s.Encode(0)
	frame, err := bridge.Encode(bridge.NewTransmit(gree.CarrierKHz, acRepeat, timings))
	if err != nil {
		return err
	}

	if _, err := conn.Write(frame); err != nil {
		return fmt.Errorf("write failed: %v", err)
	}

	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Sent: %s\n", s)
	fmt.Printf("Frame: %d bytes, %d timings, repeat %d\n", len(frame), len(timings), acRepeat)
	return nil
}
