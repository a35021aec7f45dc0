// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

func newPlatformBackend() backend {
	return &win32Backend{}
}

// win32Backend drives the classic common dialogs. Each dialog runs on
// its own locked OS thread since the common controls pump a message
// loop on the calling thread.
type win32Backend struct{}

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	comdlg32 = windows.NewLazySystemDLL("comdlg32.dll")
	shell32  = windows.NewLazySystemDLL("shell32.dll")
	ole32    = windows.NewLazySystemDLL("ole32.dll")

	procMessageBoxW         = user32.NewProc("MessageBoxW")
	procGetOpenFileNameW    = comdlg32.NewProc("GetOpenFileNameW")
	procGetSaveFileNameW    = comdlg32.NewProc("GetSaveFileNameW")
	procSHBrowseForFolderW  = shell32.NewProc("SHBrowseForFolderW")
	procSHGetPathFromIDList = shell32.NewProc("SHGetPathFromIDListW")
	procCoTaskMemFree       = ole32.NewProc("CoTaskMemFree")
)

const (
	mbOK          = 0x0
	mbOKCancel    = 0x1
	mbYesNoCancel = 0x3
	mbYesNo       = 0x4

	mbIconError       = 0x10
	mbIconQuestion    = 0x20
	mbIconWarning     = 0x30
	mbIconInformation = 0x40

	idOK     = 1
	idCancel = 2
	idYes    = 6
	idNo     = 7

	ofnExplorer         = 0x00080000
	ofnAllowMultiselect = 0x00000200
	ofnFileMustExist    = 0x00001000
	ofnPathMustExist    = 0x00000800
	ofnHideReadonly     = 0x00000004
	ofnNoChangeDir      = 0x00000008
	ofnOverwritePrompt  = 0x00000002

	bifReturnOnlyFSDirs = 0x00000001
	bifNewDialogStyle   = 0x00000040
)

type openFileNameW struct {
	structSize      uint32
	owner           uintptr
	instance        uintptr
	filter          *uint16
	customFilter    *uint16
	maxCustomFilter uint32
	filterIndex     uint32
	file            *uint16
	maxFile         uint32
	fileTitle       *uint16
	maxFileTitle    uint32
	initialDir      *uint16
	title           *uint16
	flags           uint32
	fileOffset      uint16
	fileExtension   uint16
	defExt          *uint16
	custData        uintptr
	hook            uintptr
	templateName    *uint16
	reserved0       uintptr
	reserved1       uint32
	flagsEx         uint32
}

type browseInfoW struct {
	owner       uintptr
	root        uintptr
	displayName *uint16
	title       *uint16
	flags       uint32
	callback    uintptr
	lparam      uintptr
	image       int32
}

// filterSpec builds the double-NUL terminated pattern list the common
// dialogs expect: "Name\0*.png;*.jpg\0...\0\0".
func filterSpec(filters []Filter) []uint16 {
	var sb strings.Builder
	for _, f := range filters {
		patterns := make([]string, 0, len(f.Extensions))
		for _, ext := range f.Extensions {
			ext = strings.TrimSpace(strings.TrimPrefix(ext, "."))
			if ext != "" {
				patterns = append(patterns, "*."+ext)
			}
		}
		if len(patterns) == 0 {
			continue
		}
		name := f.Name
		if name == "" {
			name = strings.Join(patterns, ", ")
		}
		sb.WriteString(name)
		sb.WriteByte(0)
		sb.WriteString(strings.Join(patterns, ";"))
		sb.WriteByte(0)
	}
	if sb.Len() == 0 {
		sb.WriteString("All Files")
		sb.WriteByte(0)
		sb.WriteString("*.*")
		sb.WriteByte(0)
	}
	spec := sb.String()
	encoded := make([]uint16, 0, len(spec)+1)
	for _, r := range spec {
		if r == 0 {
			encoded = append(encoded, 0)
			continue
		}
		encoded = append(encoded, utf16Units(r)...)
	}
	return append(encoded, 0)
}

func utf16Units(r rune) []uint16 {
	units, _ := windows.UTF16FromString(string(r))
	if n := len(units); n > 0 && units[n-1] == 0 {
		units = units[:n-1]
	}
	return units
}

func utf16Ptr(s string) *uint16 {
	if s == "" {
		return nil
	}
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return nil
	}
	return p
}

// parseMultiSelect decodes the OFN_ALLOWMULTISELECT buffer: either one
// full path, or a directory followed by file names, NUL separated with
// a double NUL at the end.
func parseMultiSelect(buf []uint16) []string {
	var parts []string
	start := 0
	for i := 0; i < len(buf); i++ {
		if buf[i] != 0 {
			continue
		}
		if i == start {
			break
		}
		parts = append(parts, windows.UTF16ToString(buf[start:i]))
		start = i + 1
	}
	switch len(parts) {
	case 0:
		return nil
	case 1:
		return parts
	default:
		dir := parts[0]
		paths := make([]string, 0, len(parts)-1)
		for _, name := range parts[1:] {
			paths = append(paths, filepath.Join(dir, name))
		}
		return paths
	}
}

func (wb *win32Backend) openFile(s *session, id int, opts FileOptions, dirs bool) {
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if dirs {
			path, ok := browseForFolder(opts)
			if opts.AllowMultiple {
				s.br.deliverMulti(id, path)
				return
			}
			s.br.deliverSingle(id, path, ok)
			return
		}

		bufLen := windows.MAX_PATH
		if opts.AllowMultiple {
			bufLen = 32 * 1024
		}
		buf := make([]uint16, bufLen)
		if opts.DefaultPath != "" && !opts.AllowMultiple {
			if units, err := windows.UTF16FromString(opts.DefaultPath); err == nil && len(units) < bufLen {
				copy(buf, units)
			}
		}
		spec := filterSpec(opts.Filters)
		ofn := openFileNameW{
			owner:       opts.Parent,
			filter:      &spec[0],
			filterIndex: 1,
			file:        &buf[0],
			maxFile:     uint32(len(buf)),
			title:       utf16Ptr(opts.Title),
			flags:       ofnExplorer | ofnFileMustExist | ofnPathMustExist | ofnHideReadonly | ofnNoChangeDir,
		}
		if opts.AllowMultiple {
			ofn.flags |= ofnAllowMultiselect
			ofn.initialDir = utf16Ptr(opts.DefaultPath)
		}
		ofn.structSize = uint32(unsafe.Sizeof(ofn))

		ret, _, _ := procGetOpenFileNameW.Call(uintptr(unsafe.Pointer(&ofn)))
		if ret == 0 {
			if opts.AllowMultiple {
				s.br.deliverMulti(id, "")
			} else {
				s.br.deliverSingle(id, "", false)
			}
			return
		}
		if opts.AllowMultiple {
			s.br.deliverMulti(id, strings.Join(parseMultiSelect(buf), "\n"))
			return
		}
		s.br.deliverSingle(id, windows.UTF16ToString(buf), true)
	}()
}

func browseForFolder(opts FileOptions) (string, bool) {
	display := make([]uint16, windows.MAX_PATH)
	bi := browseInfoW{
		owner:       opts.Parent,
		displayName: &display[0],
		title:       utf16Ptr(opts.Title),
		flags:       bifReturnOnlyFSDirs | bifNewDialogStyle,
	}
	pidl, _, _ := procSHBrowseForFolderW.Call(uintptr(unsafe.Pointer(&bi)))
	if pidl == 0 {
		return "", false
	}
	defer procCoTaskMemFree.Call(pidl)

	buf := make([]uint16, windows.MAX_PATH)
	ret, _, _ := procSHGetPathFromIDList.Call(pidl, uintptr(unsafe.Pointer(&buf[0])))
	if ret == 0 {
		return "", false
	}
	return windows.UTF16ToString(buf), true
}

func (wb *win32Backend) saveFile(s *session, id int, opts FileOptions) {
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		path, ok := saveDialog(opts)
		s.br.deliverSingle(id, path, ok)
	}()
}

func saveDialog(opts FileOptions) (string, bool) {
	buf := make([]uint16, 32*1024)
	seed := opts.DefaultName
	if opts.DefaultPath != "" {
		seed = filepath.Join(opts.DefaultPath, opts.DefaultName)
	}
	if units, err := windows.UTF16FromString(seed); err == nil && len(units) < len(buf) {
		copy(buf, units)
	}
	spec := filterSpec(opts.Filters)
	ofn := openFileNameW{
		owner:       opts.Parent,
		filter:      &spec[0],
		filterIndex: 1,
		file:        &buf[0],
		maxFile:     uint32(len(buf)),
		title:       utf16Ptr(opts.Title),
		flags:       ofnExplorer | ofnPathMustExist | ofnHideReadonly | ofnNoChangeDir | ofnOverwritePrompt,
	}
	ofn.structSize = uint32(unsafe.Sizeof(ofn))

	ret, _, _ := procGetSaveFileNameW.Call(uintptr(unsafe.Pointer(&ofn)))
	if ret == 0 {
		return "", false
	}
	return windows.UTF16ToString(buf), true
}

func (wb *win32Backend) showMessage(s *session, id int, opts MessageOptions) {
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		var flags uintptr
		switch opts.Buttons {
		case ButtonsOKCancel:
			flags = mbOKCancel
		case ButtonsYesNo:
			flags = mbYesNo
		case ButtonsYesNoCancel:
			flags = mbYesNoCancel
		default:
			flags = mbOK
		}
		switch opts.Style {
		case StyleWarning:
			flags |= mbIconWarning
		case StyleError:
			flags |= mbIconError
		case StyleQuestion:
			flags |= mbIconQuestion
		default:
			flags |= mbIconInformation
		}

		text := opts.Message
		if opts.Detail != "" {
			text += "\n\n" + opts.Detail
		}
		ret, _, _ := procMessageBoxW.Call(
			opts.Parent,
			uintptr(unsafe.Pointer(utf16Ptr(text))),
			uintptr(unsafe.Pointer(utf16Ptr(opts.Title))),
			flags,
		)
		switch ret {
		case idOK:
			s.br.deliverMessage(id, ResultOK)
		case idCancel:
			s.br.deliverMessage(id, ResultCancel)
		case idYes:
			s.br.deliverMessage(id, ResultYes)
		case idNo:
			s.br.deliverMessage(id, ResultNo)
		default:
			s.br.deliverMessage(id, ResultClosed)
		}
	}()
}

func (wb *win32Backend) exportFile(s *session, id int, src string, opts FileOptions) {
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		data, err := os.ReadFile(src)
		if err != nil {
			s.br.deliverButton(id, 1)
			return
		}
		if opts.DefaultName == "" {
			opts.DefaultName = filepath.Base(src)
		}
		path, ok := saveDialog(opts)
		if !ok {
			s.br.deliverButton(id, 1)
			return
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			s.br.deliverButton(id, 1)
			return
		}
		s.br.deliverButton(id, 0)
	}()
}
