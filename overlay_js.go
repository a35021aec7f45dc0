// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

package pick

import (
	"strconv"
	"strings"
	"syscall/js"

	"github.com/google/uuid"
)

// styleGlyph is the fallback icon shown when no image icon applies.
func styleGlyph(style Style) string {
	switch style {
	case StyleWarning:
		return "⚠️"
	case StyleError:
		return "⛔"
	case StyleQuestion:
		return "❓"
	default:
		return "ℹ️"
	}
}

type overlay struct {
	root    js.Value
	dialog  js.Value
	funcs   []js.Func
	blobURL js.Value
}

func (ov *overlay) release() {
	for _, fn := range ov.funcs {
		fn.Release()
	}
	if !ov.blobURL.IsUndefined() && ov.blobURL.Truthy() {
		js.Global().Get("URL").Call("revokeObjectURL", ov.blobURL)
	}
	ov.root.Call("remove")
}

func newOverlay() *overlay {
	document := js.Global().Get("document")
	root := document.Call("createElement", "div")
	root.Set("id", "pick-overlay-"+uuid.NewString())
	root.Call("setAttribute", "data-pick", "overlay")
	rootStyle := root.Get("style")
	rootStyle.Set("position", "fixed")
	rootStyle.Set("inset", "0")
	rootStyle.Set("background", "rgba(0,0,0,0.4)")
	rootStyle.Set("display", "flex")
	rootStyle.Set("alignItems", "center")
	rootStyle.Set("justifyContent", "center")
	rootStyle.Set("zIndex", "2147483647")

	dialog := document.Call("createElement", "div")
	dialog.Call("setAttribute", "data-pick", "dialog")
	dialogStyle := dialog.Get("style")
	dialogStyle.Set("background", "#fff")
	dialogStyle.Set("color", "#111")
	dialogStyle.Set("minWidth", "280px")
	dialogStyle.Set("maxWidth", "440px")
	dialogStyle.Set("padding", "20px")
	dialogStyle.Set("borderRadius", "10px")
	dialogStyle.Set("boxShadow", "0 8px 40px rgba(0,0,0,0.35)")
	dialogStyle.Set("font", "13px system-ui, sans-serif")
	root.Call("appendChild", dialog)
	return &overlay{root: root, dialog: dialog}
}

func (ov *overlay) addText(role, text, weight string) {
	if text == "" {
		return
	}
	document := js.Global().Get("document")
	el := document.Call("createElement", "div")
	el.Call("setAttribute", "data-pick", role)
	el.Set("textContent", text)
	style := el.Get("style")
	style.Set("marginBottom", "8px")
	if weight != "" {
		style.Set("fontWeight", weight)
	}
	if role == "detail" {
		style.Set("color", "#555")
	}
	ov.dialog.Call("appendChild", el)
}

func (ov *overlay) addIcon(db *domBackend, opts MessageOptions) {
	document := js.Global().Get("document")
	if opts.Icon == IconCustom && opts.IconPath != "" && db != nil {
		if data, err := db.fs.ReadFile(opts.IconPath); err == nil {
			array := js.Global().Get("Uint8Array").New(len(data))
			js.CopyBytesToJS(array, data)
			parts := js.Global().Get("Array").New()
			parts.Call("push", array)
			blob := js.Global().Get("Blob").New(parts)
			ov.blobURL = js.Global().Get("URL").Call("createObjectURL", blob)
			img := document.Call("createElement", "img")
			img.Call("setAttribute", "data-pick", "icon")
			img.Set("src", ov.blobURL)
			style := img.Get("style")
			style.Set("width", "48px")
			style.Set("height", "48px")
			style.Set("marginBottom", "8px")
			ov.dialog.Call("appendChild", img)
			return
		}
	}
	span := document.Call("createElement", "span")
	span.Call("setAttribute", "data-pick", "icon")
	span.Set("textContent", styleGlyph(opts.Style))
	span.Get("style").Set("fontSize", "28px")
	ov.dialog.Call("appendChild", span)
}

func buttonStyle(btn js.Value, primary bool) {
	style := btn.Get("style")
	style.Set("marginLeft", "8px")
	style.Set("padding", "6px 14px")
	style.Set("borderRadius", "6px")
	style.Set("border", "1px solid #bbb")
	style.Set("cursor", "pointer")
	if primary {
		style.Set("background", "#2563eb")
		style.Set("color", "#fff")
		style.Set("border", "1px solid #2563eb")
	} else {
		style.Set("background", "#f3f4f6")
		style.Set("color", "#111")
	}
}

// messageOverlay shows a modal message dialog and blocks until a
// button resolves it. The return value is the DOM index of the pressed
// button; Escape and backdrop clicks return -1. Buttons are appended
// dismissive-first so the primary action sits right-most, and the
// primary (last) button takes focus.
func (db *domBackend) messageOverlay(opts MessageOptions) int {
	document := js.Global().Get("document")
	ov := newOverlay()
	ov.dialog.Call("setAttribute", "data-pick-style", opts.Style.token())
	ov.dialog.Call("setAttribute", "data-pick-icon", opts.Icon.token())
	ov.addIcon(db, opts)
	ov.addText("title", opts.Title, "600")
	ov.addText("message", opts.Message, "")
	ov.addText("detail", opts.Detail, "")

	row := document.Call("createElement", "div")
	row.Call("setAttribute", "data-pick", "buttons")
	rowStyle := row.Get("style")
	rowStyle.Set("display", "flex")
	rowStyle.Set("justifyContent", "flex-end")
	rowStyle.Set("marginTop", "12px")
	ov.dialog.Call("appendChild", row)

	choice := make(chan int, 1)
	pick := func(index int) {
		select {
		case choice <- index:
		default:
		}
	}

	labels := opts.Buttons.labels()
	var lastButton js.Value
	for i := len(labels) - 1; i >= 0; i-- {
		index := len(labels) - 1 - i
		btn := document.Call("createElement", "button")
		btn.Call("setAttribute", "data-pick", "button")
		btn.Call("setAttribute", "data-pick-index", strconv.Itoa(index))
		btn.Set("textContent", labels[i])
		buttonStyle(btn, index == len(labels)-1)
		onClick := js.FuncOf(func(this js.Value, args []js.Value) any {
			pick(index)
			return nil
		})
		ov.funcs = append(ov.funcs, onClick)
		btn.Call("addEventListener", "click", onClick)
		row.Call("appendChild", btn)
		lastButton = btn
	}

	onKey := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].Get("key").String() == "Escape" {
			pick(-1)
		}
		return nil
	})
	ov.funcs = append(ov.funcs, onKey)
	document.Call("addEventListener", "keydown", onKey)
	defer document.Call("removeEventListener", "keydown", onKey)

	onBackdrop := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].Get("target").Equal(ov.root) {
			pick(-1)
		}
		return nil
	})
	ov.funcs = append(ov.funcs, onBackdrop)
	ov.root.Call("addEventListener", "click", onBackdrop)

	document.Get("body").Call("appendChild", ov.root)
	if !lastButton.IsUndefined() {
		lastButton.Call("focus")
	}

	index := <-choice
	ov.release()
	return index
}

// promptOverlay shows a modal text prompt. ok is false when the user
// cancelled or dismissed it.
func (db *domBackend) promptOverlay(title, label, initial string) (string, bool) {
	document := js.Global().Get("document")
	ov := newOverlay()
	ov.addText("title", title, "600")
	ov.addText("message", label, "")

	input := document.Call("createElement", "input")
	input.Call("setAttribute", "data-pick", "input")
	input.Set("type", "text")
	input.Set("value", initial)
	inputStyle := input.Get("style")
	inputStyle.Set("width", "100%")
	inputStyle.Set("boxSizing", "border-box")
	inputStyle.Set("padding", "6px 8px")
	inputStyle.Set("border", "1px solid #bbb")
	inputStyle.Set("borderRadius", "6px")
	ov.dialog.Call("appendChild", input)

	row := document.Call("createElement", "div")
	row.Call("setAttribute", "data-pick", "buttons")
	rowStyle := row.Get("style")
	rowStyle.Set("display", "flex")
	rowStyle.Set("justifyContent", "flex-end")
	rowStyle.Set("marginTop", "12px")
	ov.dialog.Call("appendChild", row)

	done := make(chan bool, 1)
	resolve := func(accepted bool) {
		select {
		case done <- accepted:
		default:
		}
	}

	for _, spec := range []struct {
		label    string
		accepted bool
	}{{"Cancel", false}, {"OK", true}} {
		accepted := spec.accepted
		btn := document.Call("createElement", "button")
		btn.Call("setAttribute", "data-pick", "button")
		btn.Set("textContent", spec.label)
		buttonStyle(btn, accepted)
		onClick := js.FuncOf(func(this js.Value, args []js.Value) any {
			resolve(accepted)
			return nil
		})
		ov.funcs = append(ov.funcs, onClick)
		btn.Call("addEventListener", "click", onClick)
		row.Call("appendChild", btn)
	}

	onKey := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		switch args[0].Get("key").String() {
		case "Escape":
			resolve(false)
		case "Enter":
			resolve(true)
		}
		return nil
	})
	ov.funcs = append(ov.funcs, onKey)
	document.Call("addEventListener", "keydown", onKey)
	defer document.Call("removeEventListener", "keydown", onKey)

	document.Get("body").Call("appendChild", ov.root)
	input.Call("focus")
	input.Call("select")

	accepted := <-done
	value := strings.TrimSpace(input.Get("value").String())
	ov.release()
	return value, accepted
}
