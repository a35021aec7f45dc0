// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

// Filter is a named group of allowed file extensions, without dots
// (e.g. {"Images", []string{"png", "jpg"}}). Filters are shown in the
// order given; duplicates are allowed.
type Filter struct {
	Name       string
	Extensions []string
}

// FileOptions configures the file and folder picker dialogs. The zero
// value asks for platform defaults everywhere.
type FileOptions struct {
	// Title is the dialog title or prompt message.
	Title string
	// DefaultPath is the directory the dialog starts in.
	DefaultPath string
	// DefaultName suggests a file name (save dialogs only).
	DefaultName string
	// Filters restricts the selectable file types.
	Filters []Filter
	// CanCreateDirs lets the user create directories (save dialogs).
	CanCreateDirs bool
	// AllowMultiple permits selecting more than one item.
	AllowMultiple bool
	// Parent is an opaque platform window handle (NSWindow* on macOS,
	// HWND on Windows). When set, the dialog attaches to that window.
	Parent uintptr
}

// Buttons selects which action buttons a message dialog exposes.
type Buttons int

const (
	ButtonsOK Buttons = iota
	ButtonsOKCancel
	ButtonsYesNo
	ButtonsYesNoCancel
)

func (b Buttons) String() string {
	switch b {
	case ButtonsOK:
		return "ok"
	case ButtonsOKCancel:
		return "ok-cancel"
	case ButtonsYesNo:
		return "yes-no"
	case ButtonsYesNoCancel:
		return "yes-no-cancel"
	}
	return "unknown"
}

// count reports how many buttons the configuration renders.
func (b Buttons) count() int {
	switch b {
	case ButtonsOKCancel, ButtonsYesNo:
		return 2
	case ButtonsYesNoCancel:
		return 3
	}
	return 1
}

// labels returns the button captions in logical order, primary first.
func (b Buttons) labels() []string {
	switch b {
	case ButtonsOKCancel:
		return []string{"OK", "Cancel"}
	case ButtonsYesNo:
		return []string{"Yes", "No"}
	case ButtonsYesNoCancel:
		return []string{"Yes", "No", "Cancel"}
	}
	return []string{"OK"}
}

// Style selects the visual treatment of a message dialog.
type Style int

const (
	StyleInfo Style = iota
	StyleWarning
	StyleError
	StyleQuestion
)

// token is the stable string form used by the browser overlay.
func (s Style) token() string {
	switch s {
	case StyleWarning:
		return "warning"
	case StyleError:
		return "error"
	case StyleQuestion:
		return "question"
	}
	return "info"
}

// Icon selects the image shown next to a message dialog.
type Icon int

const (
	IconDefault Icon = iota
	IconCustom
	IconApp
	IconTrash
	IconFolder
	IconDocument
	IconLocked
	IconUnlocked
	IconNetwork
	IconUser
	IconCaution
	IconError
	IconStop
	IconInvalid
)

func (i Icon) token() string {
	switch i {
	case IconCustom:
		return "custom"
	case IconApp:
		return "app"
	case IconTrash:
		return "trash"
	case IconFolder:
		return "folder"
	case IconDocument:
		return "document"
	case IconLocked:
		return "locked"
	case IconUnlocked:
		return "unlocked"
	case IconNetwork:
		return "network"
	case IconUser:
		return "user"
	case IconCaution:
		return "caution"
	case IconError:
		return "error"
	case IconStop:
		return "stop"
	case IconInvalid:
		return "invalid"
	}
	return "default"
}

// MessageOptions configures message dialogs and sheets.
type MessageOptions struct {
	// Title is the window title, or the bold heading on sheets.
	Title string
	// Message is the main text. Required.
	Message string
	// Detail is additional smaller text below the message.
	Detail string
	// Buttons picks the button configuration.
	Buttons Buttons
	// Style picks the visual treatment.
	Style Style
	// Icon picks the dialog icon; IconCustom reads IconPath.
	Icon Icon
	// IconPath locates a custom icon image when Icon is IconCustom.
	IconPath string
	// Parent is an opaque platform window handle. When set, the
	// dialog shows as a sheet or owned modal on that window.
	Parent uintptr
}

// FileCallback receives the chosen path. ok is false when the user
// cancelled; path is then empty. The string is the callback's to copy
// if it needs to be retained.
type FileCallback func(path string, ok bool)

// MultiFileCallback receives the chosen paths in selection order. An
// empty (or nil) slice means the user cancelled.
type MultiFileCallback func(paths []string)

// MessageCallback receives the semantic result of a message dialog.
type MessageCallback func(result ButtonResult)

// ResultCallback receives a plain success flag.
type ResultCallback func(ok bool)
