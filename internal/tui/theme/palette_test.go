// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import "testing"

func TestParseOSCColor(t *testing.T) {
	tests := []struct {
		name     string
		response string
		code     int
		want     RGB
		ok       bool
	}{
		{"bel terminated", "\x1b]11;rgb:ff/00/80\a", 11, RGB{R: 255, B: 128}, true},
		{"st terminated", "\x1b]10;rgb:ffff/0000/8000\x1b\\", 10, RGB{R: 255, B: 128}, true},
		{"single digit channels", "\x1b]11;rgb:f/0/8\a", 11, RGB{R: 255, B: 136}, true},
		{"rounds to nearest", "\x1b]11;rgb:ffff/8000/0001\a", 11, RGB{R: 255, G: 128}, true},
		{"wrong code", "\x1b]10;rgb:ff/00/80\a", 11, RGB{}, false},
		{"missing channel", "\x1b]11;rgb:ff/00\a", 11, RGB{}, false},
		{"garbage", "hello", 11, RGB{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseOSCColor(tt.response, tt.code)
			if ok != tt.ok {
				t.Fatalf("parseOSCColor ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("parseOSCColor = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPaletteFromEnv(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	pal := paletteFromEnv()
	if !pal.HasFG || !pal.HasBG {
		t.Fatalf("expected both channels, got %+v", pal)
	}
	if pal.FG != (RGB{R: 255, G: 255, B: 255}) || pal.BG != (RGB{}) {
		t.Fatalf("unexpected palette: %+v", pal)
	}

	t.Setenv("COLORFGBG", "")
	if pal := paletteFromEnv(); pal.HasFG || pal.HasBG {
		t.Fatalf("empty env should yield empty palette, got %+v", pal)
	}
}

func TestModeFromPalette(t *testing.T) {
	light := Palette{BG: RGB{R: 250, G: 250, B: 250}, HasBG: true}
	if got := modeFromPalette(light); got != ModeLight {
		t.Fatalf("expected light mode, got %v", got)
	}
	dark := Palette{BG: RGB{R: 10, G: 10, B: 10}, HasBG: true}
	if got := modeFromPalette(dark); got != ModeDark {
		t.Fatalf("expected dark mode, got %v", got)
	}
	if got := modeFromPalette(Palette{}); got != ModeUnknown {
		t.Fatalf("expected unknown mode, got %v", got)
	}
}
