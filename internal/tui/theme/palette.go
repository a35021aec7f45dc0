// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"os"
	"strconv"
	"strings"
)

func queryPalette() Palette {
	palette := queryDefaultColors()
	if palette.HasBG || palette.HasFG {
		return palette
	}
	return paletteFromEnv()
}

func modeFromPalette(palette Palette) Mode {
	if !palette.HasBG {
		return ModeUnknown
	}
	if isLight(palette.BG) {
		return ModeLight
	}
	return ModeDark
}

func isLight(color RGB) bool {
	luma := 0.2126*float64(color.R) + 0.7152*float64(color.G) + 0.0722*float64(color.B)
	return luma >= 128.0
}

// paletteFromEnv falls back to the COLORFGBG convention
// ("<fg>;...;<bg>" as xterm 16-color indices).
func paletteFromEnv() Palette {
	value := strings.TrimSpace(os.Getenv("COLORFGBG"))
	parts := strings.Split(value, ";")
	if value == "" || len(parts) < 2 {
		return Palette{}
	}
	var palette Palette
	if idx, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil && idx >= 0 && idx < len(xterm16) {
		palette.FG = xterm16[idx]
		palette.HasFG = true
	}
	if idx, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil && idx >= 0 && idx < len(xterm16) {
		palette.BG = xterm16[idx]
		palette.HasBG = true
	}
	return palette
}

// parseOSCColor extracts the RGB value from an OSC 10/11 response such
// as "\x1b]11;rgb:ff/00/80\a". Channels may be 1-4 hex digits and are
// scaled to 8 bits.
func parseOSCColor(response string, code int) (RGB, bool) {
	start := strings.Index(response, "]")
	if start == -1 {
		return RGB{}, false
	}
	payload := strings.TrimSuffix(strings.TrimSuffix(response[start+1:], "\a"), "\x1b\\")
	payload, ok := strings.CutPrefix(payload, strconv.Itoa(code)+";")
	if !ok {
		return RGB{}, false
	}
	payload = strings.TrimPrefix(payload, "rgb:")
	parts := strings.Split(payload, "/")
	if len(parts) < 3 {
		return RGB{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, ok := parseHexChannel(parts[i])
		if !ok {
			return RGB{}, false
		}
		ch[i] = v
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

func parseHexChannel(value string) (uint8, bool) {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > 4 {
		return 0, false
	}
	n, err := strconv.ParseUint(value, 16, 16)
	if err != nil {
		return 0, false
	}
	max := uint64(1<<(len(value)*4) - 1)
	if max != 255 {
		n = (n*255 + max/2) / max
	}
	return uint8(n), true
}

var xterm16 = []RGB{
	{R: 0, G: 0, B: 0},       // 0 black
	{R: 128, G: 0, B: 0},     // 1 maroon
	{R: 0, G: 128, B: 0},     // 2 green
	{R: 128, G: 128, B: 0},   // 3 olive
	{R: 0, G: 0, B: 128},     // 4 navy
	{R: 128, G: 0, B: 128},   // 5 purple
	{R: 0, G: 128, B: 128},   // 6 teal
	{R: 192, G: 192, B: 192}, // 7 silver
	{R: 128, G: 128, B: 128}, // 8 grey
	{R: 255, G: 0, B: 0},     // 9 red
	{R: 0, G: 255, B: 0},     // 10 lime
	{R: 255, G: 255, B: 0},   // 11 yellow
	{R: 0, G: 0, B: 255},     // 12 blue
	{R: 255, G: 0, B: 255},   // 13 fuchsia
	{R: 0, G: 255, B: 255},   // 14 aqua
	{R: 255, G: 255, B: 255}, // 15 white
}
