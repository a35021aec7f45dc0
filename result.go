// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

// ButtonResult is the unified outcome of a message dialog, independent
// of which backend produced it.
type ButtonResult int

const (
	ResultOK ButtonResult = iota
	ResultCancel
	ResultYes
	ResultNo
	// ResultClosed reports that the dialog went away without a
	// recognized button click.
	ResultClosed
)

func (r ButtonResult) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultCancel:
		return "cancel"
	case ResultYes:
		return "yes"
	case ResultNo:
		return "no"
	case ResultClosed:
		return "closed"
	}
	return "unknown"
}

// NSAlert modal responses. The Cocoa backend adds buttons in reverse
// of the logical order, so the first return position is the
// right-most, primary button.
const (
	nativeFirstButton  = 1000
	nativeSecondButton = 1001
	nativeThirdButton  = 1002
)

// nativeButtonResult translates a Cocoa modal response into a
// semantic result for the stored button configuration. Responses
// outside the configuration's button count map to ResultClosed.
func nativeButtonResult(response int, buttons Buttons) ButtonResult {
	switch response {
	case nativeFirstButton:
		switch buttons {
		case ButtonsOK, ButtonsOKCancel:
			return ResultOK
		case ButtonsYesNo, ButtonsYesNoCancel:
			return ResultYes
		}
	case nativeSecondButton:
		switch buttons {
		case ButtonsOKCancel:
			return ResultCancel
		case ButtonsYesNo, ButtonsYesNoCancel:
			return ResultNo
		}
	case nativeThirdButton:
		if buttons == ButtonsYesNoCancel {
			return ResultCancel
		}
	}
	return ResultClosed
}

// overlayButtonResult translates a 0-based overlay button index into a
// semantic result. The browser overlay appends the dismissive buttons
// before the primary action so the primary renders last; the index
// order is therefore the reverse of the native table. Keep the two
// tables separate: each matches its own backend's physical layout.
func overlayButtonResult(index int, buttons Buttons) ButtonResult {
	switch buttons {
	case ButtonsOK:
		if index == 0 {
			return ResultOK
		}
	case ButtonsOKCancel:
		switch index {
		case 0:
			return ResultCancel
		case 1:
			return ResultOK
		}
	case ButtonsYesNo:
		switch index {
		case 0:
			return ResultNo
		case 1:
			return ResultYes
		}
	case ButtonsYesNoCancel:
		switch index {
		case 0:
			return ResultCancel
		case 1:
			return ResultNo
		case 2:
			return ResultYes
		}
	}
	return ResultClosed
}
