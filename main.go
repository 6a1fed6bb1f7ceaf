// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs
//
// Aircast - Gree HVAC infrared codec and transceiver bridge CLI.

package main

import (
	"fmt"
	"os"

	"github.com/coldspell/aircast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
