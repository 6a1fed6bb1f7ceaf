// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Coldspell Labs

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/coldspell/aircast/pkg/gree"
	"github.com/spf13/cobra"
)

// Command state flags, shared by encode and send.
var (
	acPower     bool
	acMode      string
	acTemp      int
	acFan       int
	acSwingAuto bool
	acSwingPos  string
	acLight     bool
	acTurbo     bool
	acSleep     bool
	acXFan      bool
	acRepeat    int
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a command state into IR pulse timings",
	Long: `Build a Gree command record from flags and print its 8-byte state
and the mark/space pulse timing sequence in microseconds.

Out-of-range values are normalized the way a real remote would:
temperatures clamp to 16-30°C, auto mode locks to 25°C, dry mode
locks the fan to speed 1.`,
	RunE: runEncode,
}

func init() {
	addStateFlags(encodeCmd)
	rootCmd.AddCommand(encodeCmd)
}

func addStateFlags(c *cobra.Command) {
	c.Flags().BoolVar(&acPower, "power", false, "Power on")
	c.Flags().StringVar(&acMode, "mode", "auto", "Mode: auto, cool, dry, fan, heat")
	c.Flags().IntVar(&acTemp, "temp", 25, "Temperature in °C (16-30)")
	c.Flags().IntVar(&acFan, "fan", 0, "Fan speed: 0 (auto) to 3")
	c.Flags().BoolVar(&acSwingAuto, "swing-auto", false, "Automatic vertical swing")
	c.Flags().StringVar(&acSwingPos, "swing-pos", "last", "Vane position: last, auto, up, middle-up, middle, middle-down, down, down-auto, middle-auto, up-auto")
	c.Flags().BoolVar(&acLight, "light", true, "Display light")
	c.Flags().BoolVar(&acTurbo, "turbo", false, "Turbo mode")
	c.Flags().BoolVar(&acSleep, "sleep", false, "Sleep mode")
	c.Flags().BoolVar(&acXFan, "xfan", false, "X-Fan (coil drying)")
	c.Flags().IntVar(&acRepeat, "repeat", 0, "Extra message repeats")
}

func parseMode(name string) (gree.Mode, error) {
	switch strings.ToLower(name) {
	case "auto":
		return gree.ModeAuto, nil
	case "cool":
		return gree.ModeCool, nil
	case "dry":
		return gree.ModeDry, nil
	case "fan":
		return gree.ModeFan, nil
	case "heat":
		return gree.ModeHeat, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (use auto, cool, dry, fan or heat)", name)
	}
}

func parseSwingPos(name string) (gree.SwingPos, error) {
	switch strings.ToLower(name) {
	case "last":
		return gree.SwingLastPos, nil
	case "auto":
		return gree.SwingAutoFull, nil
	case "up":
		return gree.SwingUp, nil
	case "middle-up":
		return gree.SwingMiddleUp, nil
	case "middle":
		return gree.SwingMiddle, nil
	case "middle-down":
		return gree.SwingMiddleDown, nil
	case "down":
		return gree.SwingDown, nil
	case "down-auto":
		return gree.SwingDownAuto, nil
	case "middle-auto":
		return gree.SwingMiddleAuto, nil
	case "up-auto":
		return gree.SwingUpAuto, nil
	default:
		return 0, fmt.Errorf("unknown swing position %q", name)
	}
}

// buildState assembles a command record from the shared state flags.
func buildState() (*gree.State, error) {
	mode, err := parseMode(acMode)
	if err != nil {
		return nil, err
	}
	swingPos, err := parseSwingPos(acSwingPos)
	if err != nil {
		return nil, err
	}

	s := gree.NewState()
	s.SetPower(acPower)
	s.SetMode(mode)
	s.SetTemp(acTemp)
	s.SetFan(acFan)
	s.SetSwingVertical(acSwingAuto, swingPos)
	s.SetLight(acLight)
	s.SetTurbo(acTurbo)
	s.SetSleep(acSleep)
	s.SetXFan(acXFan)
	return s, nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	s, err := buildState()
	if err != nil {
		return err
	}

	raw := s.Raw()
	timings := gree.Encode(raw, acRepeat)

	fmt.Printf("%s\n", s)
	fmt.Printf("State: % 02X\n", raw)
	fmt.Printf("Timings: %d entries\n", len(timings))
	fmt.Println(formatTimings(timings))
	return nil
}

// formatTimings renders a pulse sequence as microsecond counts, 16
// per line, in the format the decode command reads back.
func formatTimings(timings []time.Duration) string {
	var b strings.Builder
	for i, d := range timings {
		if i > 0 {
			if i%16 == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintf(&b, "%d", d/time.Microsecond)
	}
	return b.String()
}
