// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Coldspell Labs

package gree

import (
	"testing"

	"github.com/coldspell/aircast/pkg/stdac"
)

func TestModeMapping(t *testing.T) {
	tests := []struct {
		common stdac.OpMode
		native Mode
	}{
		{stdac.OpAuto, ModeAuto},
		{stdac.OpCool, ModeCool},
		{stdac.OpHeat, ModeHeat},
		{stdac.OpDry, ModeDry},
		{stdac.OpFan, ModeFan},
	}

	for _, tt := range tests {
		if got := ModeFromCommon(tt.common); got != tt.native {
			t.Errorf("ModeFromCommon(%v) = %v, want %v", tt.common, got, tt.native)
		}
		if got := ModeToCommon(tt.native); got != tt.common {
			t.Errorf("ModeToCommon(%v) = %v, want %v", tt.native, got, tt.common)
		}
	}

	// Off has no native mode; it maps to auto going in.
	if got := ModeFromCommon(stdac.OpOff); got != ModeAuto {
		t.Errorf("ModeFromCommon(OpOff) = %v, want ModeAuto", got)
	}
}

func TestFanFromCommon(t *testing.T) {
	tests := []struct {
		common stdac.FanSpeed
		want   int
	}{
		{stdac.FanAuto, FanAuto},
		{stdac.FanMin, FanMin},
		{stdac.FanLow, FanMax - 1},
		{stdac.FanMedium, FanMax - 1},
		{stdac.FanHigh, FanMax},
		{stdac.FanMax, FanMax},
	}

	for _, tt := range tests {
		if got := FanFromCommon(tt.common); got != tt.want {
			t.Errorf("FanFromCommon(%v) = %d, want %d", tt.common, got, tt.want)
		}
	}
}

func TestFanToCommon(t *testing.T) {
	tests := []struct {
		native int
		want   stdac.FanSpeed
	}{
		{FanAuto, stdac.FanAuto},
		{FanMin, stdac.FanMin},
		{FanMed, stdac.FanMedium}, // Low/Medium collapse reads back as Medium
		{FanMax, stdac.FanMax},
	}

	for _, tt := range tests {
		if got := FanToCommon(tt.native); got != tt.want {
			t.Errorf("FanToCommon(%d) = %v, want %v", tt.native, got, tt.want)
		}
	}
}

func TestSwingVMapping(t *testing.T) {
	tests := []struct {
		common stdac.SwingV
		native SwingPos
	}{
		{stdac.SwingVHighest, SwingUp},
		{stdac.SwingVHigh, SwingMiddleUp},
		{stdac.SwingVMiddle, SwingMiddle},
		{stdac.SwingVLow, SwingMiddleDown},
		{stdac.SwingVLowest, SwingDown},
	}

	for _, tt := range tests {
		if got := SwingVFromCommon(tt.common); got != tt.native {
			t.Errorf("SwingVFromCommon(%v) = %v, want %v", tt.common, got, tt.native)
		}
		if got := SwingVToCommon(tt.native); got != tt.common {
			t.Errorf("SwingVToCommon(%v) = %v, want %v", tt.native, got, tt.common)
		}
	}

	if got := SwingVFromCommon(stdac.SwingVAuto); got != SwingAutoFull {
		t.Errorf("SwingVFromCommon(SwingVAuto) = %v, want SwingAutoFull", got)
	}
	if got := SwingVToCommon(SwingAutoFull); got != stdac.SwingVAuto {
		t.Errorf("SwingVToCommon(SwingAutoFull) = %v, want SwingVAuto", got)
	}
}

func TestToCommon(t *testing.T) {
	s := NewState()
	s.On()
	s.SetMode(ModeCool)
	s.SetTemp(22)
	s.SetFan(FanMax)
	s.SetTurbo(true)
	s.SetXFan(true)
	s.SetSwingVertical(false, SwingMiddle)

	got := s.ToCommon()

	if got.Protocol != "GREE" {
		t.Errorf("Protocol = %q, want GREE", got.Protocol)
	}
	if got.Model != -1 {
		t.Errorf("Model = %d, want -1", got.Model)
	}
	if !got.Power {
		t.Error("Power = false, want true")
	}
	if got.Mode != stdac.OpCool {
		t.Errorf("Mode = %v, want OpCool", got.Mode)
	}
	if !got.Celsius || got.Degrees != 22 {
		t.Errorf("Degrees = %v (celsius %v), want 22C", got.Degrees, got.Celsius)
	}
	if got.Fan != stdac.FanMax {
		t.Errorf("Fan = %v, want FanMax", got.Fan)
	}
	if !got.Turbo {
		t.Error("Turbo = false, want true")
	}
	if !got.Clean {
		t.Error("Clean = false, want true (xfan)")
	}
	if got.SwingV != stdac.SwingVMiddle {
		t.Errorf("SwingV = %v, want SwingVMiddle", got.SwingV)
	}
	if got.Sleep != -1 {
		t.Errorf("Sleep = %d, want -1", got.Sleep)
	}
	if got.Clock != -1 {
		t.Errorf("Clock = %d, want -1", got.Clock)
	}
}

func TestToCommon_AutoSwingAndSleep(t *testing.T) {
	s := NewState()
	s.SetSwingVertical(true, SwingDownAuto)
	s.SetSleep(true)

	got := s.ToCommon()
	if got.SwingV != stdac.SwingVAuto {
		t.Errorf("SwingV = %v, want SwingVAuto", got.SwingV)
	}
	if got.Sleep != 0 {
		t.Errorf("Sleep = %d, want 0", got.Sleep)
	}
}
