// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework Cocoa

#include <stdlib.h>
#include "dialog_darwin.h"
*/
import "C"

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unsafe"
)

func newPlatformBackend() backend {
	return &cocoaBackend{}
}

// cocoaBackend shows NSOpenPanel, NSSavePanel and NSAlert dialogs.
// The Objective-C layer dispatches to the main queue and calls back
// into pickPanelDone/pickAlertDone when a panel resolves, so tokens
// route each completion back to the bridge that issued it.
type cocoaBackend struct{}

type cocoaPending struct {
	br    *bridge
	id    int
	multi bool
	// done, when set, replaces the default delivery. Used by export,
	// which must copy bytes after the destination is chosen.
	done func(path string, ok bool)
}

var (
	cocoaMu      sync.Mutex
	cocoaSeq     int64
	cocoaPendMap = map[int64]cocoaPending{}
)

func cocoaRegister(p cocoaPending) int64 {
	cocoaMu.Lock()
	defer cocoaMu.Unlock()
	cocoaSeq++
	cocoaPendMap[cocoaSeq] = p
	return cocoaSeq
}

func cocoaTake(token int64) (cocoaPending, bool) {
	cocoaMu.Lock()
	defer cocoaMu.Unlock()
	p, ok := cocoaPendMap[token]
	if ok {
		delete(cocoaPendMap, token)
	}
	return p, ok
}

type cString struct {
	ptr *C.char
}

func newCString(s string) cString {
	if s == "" {
		return cString{}
	}
	return cString{ptr: C.CString(s)}
}

func (c cString) free() {
	if c.ptr != nil {
		C.free(unsafe.Pointer(c.ptr))
	}
}

func fileParams(opts FileOptions, dirs bool) (C.pick_file_params, func()) {
	title := newCString(opts.Title)
	dir := newCString(opts.DefaultPath)
	name := newCString(opts.DefaultName)
	exts := newCString(strings.Join(flatExtensions(opts.Filters), ","))
	params := C.pick_file_params{
		title:           title.ptr,
		default_path:    dir.ptr,
		default_name:    name.ptr,
		extensions:      exts.ptr,
		allow_multiple:  C.bool(opts.AllowMultiple),
		can_create_dirs: C.bool(opts.CanCreateDirs),
		choose_dirs:     C.bool(dirs),
		parent:          C.uintptr_t(opts.Parent),
	}
	release := func() {
		title.free()
		dir.free()
		name.free()
		exts.free()
	}
	return params, release
}

func (cb *cocoaBackend) openFile(s *session, id int, opts FileOptions, dirs bool) {
	token := cocoaRegister(cocoaPending{br: s.br, id: id, multi: opts.AllowMultiple})
	params, release := fileParams(opts, dirs)
	defer release()
	C.pickShowOpenPanel(C.int64_t(token), params)
}

func (cb *cocoaBackend) saveFile(s *session, id int, opts FileOptions) {
	token := cocoaRegister(cocoaPending{br: s.br, id: id})
	params, release := fileParams(opts, false)
	defer release()
	C.pickShowSavePanel(C.int64_t(token), params)
}

func (cb *cocoaBackend) showMessage(s *session, id int, opts MessageOptions) {
	token := cocoaRegister(cocoaPending{br: s.br, id: id})

	title := newCString(opts.Title)
	message := newCString(opts.Message)
	detail := newCString(opts.Detail)
	iconPath := newCString(opts.IconPath)
	defer title.free()
	defer message.free()
	defer detail.free()
	defer iconPath.free()

	params := C.pick_message_params{
		title:     title.ptr,
		message:   message.ptr,
		detail:    detail.ptr,
		buttons:   C.int(opts.Buttons),
		style:     C.int(opts.Style),
		icon:      C.int(opts.Icon),
		icon_path: iconPath.ptr,
		parent:    C.uintptr_t(opts.Parent),
	}
	C.pickShowAlert(C.int64_t(token), params)
}

func (cb *cocoaBackend) exportFile(s *session, id int, src string, opts FileOptions) {
	br := s.br
	data, err := os.ReadFile(src)
	if err != nil {
		br.deliverButton(id, 1)
		return
	}
	if opts.DefaultName == "" {
		opts.DefaultName = filepath.Base(src)
	}
	token := cocoaRegister(cocoaPending{
		br: br,
		id: id,
		done: func(path string, ok bool) {
			if !ok || path == "" {
				br.deliverButton(id, 1)
				return
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				br.deliverButton(id, 1)
				return
			}
			br.deliverButton(id, 0)
		},
	})
	params, release := fileParams(opts, false)
	defer release()
	C.pickShowSavePanel(C.int64_t(token), params)
}

//export pickPanelDone
func pickPanelDone(token C.int64_t, paths *C.char) {
	p, ok := cocoaTake(int64(token))
	if !ok {
		return
	}
	joined := ""
	if paths != nil {
		joined = C.GoString(paths)
	}
	if p.done != nil {
		first := ""
		if lines := splitPathLines(joined); len(lines) > 0 {
			first = lines[0]
		}
		go p.done(first, first != "")
		return
	}
	if p.multi {
		p.br.deliverMulti(p.id, joined)
		return
	}
	first := ""
	if lines := splitPathLines(joined); len(lines) > 0 {
		first = lines[0]
	}
	p.br.deliverSingle(p.id, first, first != "")
}

//export pickAlertDone
func pickAlertDone(token C.int64_t, response C.long) {
	p, ok := cocoaTake(int64(token))
	if !ok {
		return
	}
	p.br.deliverNative(p.id, int(response))
}
