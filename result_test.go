// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import "testing"

func TestNativeButtonResultTable(t *testing.T) {
	cases := []struct {
		buttons  Buttons
		response int
		want     ButtonResult
	}{
		{ButtonsOK, nativeFirstButton, ResultOK},
		{ButtonsOK, nativeSecondButton, ResultClosed},
		{ButtonsOK, nativeThirdButton, ResultClosed},
		{ButtonsOKCancel, nativeFirstButton, ResultOK},
		{ButtonsOKCancel, nativeSecondButton, ResultCancel},
		{ButtonsOKCancel, nativeThirdButton, ResultClosed},
		{ButtonsYesNo, nativeFirstButton, ResultYes},
		{ButtonsYesNo, nativeSecondButton, ResultNo},
		{ButtonsYesNo, nativeThirdButton, ResultClosed},
		{ButtonsYesNoCancel, nativeFirstButton, ResultYes},
		{ButtonsYesNoCancel, nativeSecondButton, ResultNo},
		{ButtonsYesNoCancel, nativeThirdButton, ResultCancel},
	}
	for _, tc := range cases {
		got := nativeButtonResult(tc.response, tc.buttons)
		if got != tc.want {
			t.Errorf("nativeButtonResult(%d, %s) = %s; want %s",
				tc.response, tc.buttons, got, tc.want)
		}
	}
}

func TestNativeButtonResultUnknownResponse(t *testing.T) {
	for _, buttons := range []Buttons{ButtonsOK, ButtonsOKCancel, ButtonsYesNo, ButtonsYesNoCancel} {
		for _, response := range []int{0, 1, 999, 1003, -1} {
			if got := nativeButtonResult(response, buttons); got != ResultClosed {
				t.Errorf("nativeButtonResult(%d, %s) = %s; want closed",
					response, buttons, got)
			}
		}
	}
}

func TestOverlayButtonResultTable(t *testing.T) {
	cases := []struct {
		buttons Buttons
		index   int
		want    ButtonResult
	}{
		{ButtonsOK, 0, ResultOK},
		{ButtonsOKCancel, 0, ResultCancel},
		{ButtonsOKCancel, 1, ResultOK},
		{ButtonsYesNo, 0, ResultNo},
		{ButtonsYesNo, 1, ResultYes},
		{ButtonsYesNoCancel, 0, ResultCancel},
		{ButtonsYesNoCancel, 1, ResultNo},
		{ButtonsYesNoCancel, 2, ResultYes},
	}
	for _, tc := range cases {
		got := overlayButtonResult(tc.index, tc.buttons)
		if got != tc.want {
			t.Errorf("overlayButtonResult(%d, %s) = %s; want %s",
				tc.index, tc.buttons, got, tc.want)
		}
	}
}

func TestOverlayButtonResultOutOfRange(t *testing.T) {
	for _, buttons := range []Buttons{ButtonsOK, ButtonsOKCancel, ButtonsYesNo, ButtonsYesNoCancel} {
		for index := buttons.count(); index < buttons.count()+3; index++ {
			if got := overlayButtonResult(index, buttons); got != ResultClosed {
				t.Errorf("overlayButtonResult(%d, %s) = %s; want closed",
					index, buttons, got)
			}
		}
		if got := overlayButtonResult(-1, buttons); got != ResultClosed {
			t.Errorf("overlayButtonResult(-1, %s) = %s; want closed", buttons, got)
		}
	}
}

func TestButtonsLabelsMatchCount(t *testing.T) {
	for _, buttons := range []Buttons{ButtonsOK, ButtonsOKCancel, ButtonsYesNo, ButtonsYesNoCancel} {
		if len(buttons.labels()) != buttons.count() {
			t.Errorf("%s: %d labels for %d buttons",
				buttons, len(buttons.labels()), buttons.count())
		}
	}
}
