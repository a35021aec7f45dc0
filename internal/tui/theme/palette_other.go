// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package theme

// Terminals outside the unix family get no OSC query; COLORFGBG and
// the dark default still apply.
func queryDefaultColors() Palette {
	return Palette{}
}
