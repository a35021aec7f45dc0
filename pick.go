// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pick shows native open/save/folder pickers and message
// dialogs through one asynchronous API. Desktop builds talk to the
// platform dialog surfaces (Cocoa panels, the Windows common dialogs,
// zenity on Linux, or terminal forms when no display is available);
// the js/wasm build emulates the same surface with a DOM overlay and
// the File System Access API, bridging picked files into an in-memory
// filesystem.
//
// Every operation returns immediately and reports its outcome through
// a callback invoked exactly once. Cancellation, a saturated request
// table, and malformed completions all resolve as an empty/cancelled
// callback value; nothing is left pending and nothing panics.
package pick

import "sync"

// Config tunes the process-wide dialog session. The zero value of any
// field keeps its default.
type Config struct {
	// MaxRequests caps concurrent in-flight dialogs. Default 64.
	MaxRequests int
	// ImportDir is the in-memory bucket picked files are copied into
	// on the browser backend. Default "/picked".
	ImportDir string
	// SaveDir is the in-memory bucket save dialogs create files under
	// on the browser backend. Default "/saved".
	SaveDir string
	// DefaultSaveName seeds the save dialog's name field when the
	// caller provides none. Default "untitled".
	DefaultSaveName string
}

func (c Config) withDefaults() Config {
	if c.MaxRequests < 2 {
		c.MaxRequests = 64
	}
	if c.ImportDir == "" {
		c.ImportDir = "/picked"
	}
	if c.SaveDir == "" {
		c.SaveDir = "/saved"
	}
	if c.DefaultSaveName == "" {
		c.DefaultSaveName = "untitled"
	}
	return c
}

// backend is one platform dialog surface. The id argument is a live
// slot in the session bridge; the backend completes it through the
// bridge deliver methods, from whatever goroutine or event loop the
// platform hands results back on.
type backend interface {
	openFile(s *session, id int, opts FileOptions, dirs bool)
	saveFile(s *session, id int, opts FileOptions)
	showMessage(s *session, id int, opts MessageOptions)
	exportFile(s *session, id int, src string, opts FileOptions)
}

// session owns the bridge and the chosen backend. One session exists
// per process; Configure rebuilds it.
type session struct {
	cfg Config
	br  *bridge
	be  backend
}

var (
	sessionMu   sync.Mutex
	defaultSes  *session
	backendOver backend
)

func currentSession() *session {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	if defaultSes == nil {
		cfg := Config{}.withDefaults()
		defaultSes = &session{cfg: cfg, br: newBridge(cfg.MaxRequests), be: chooseBackend()}
	}
	return defaultSes
}

func chooseBackend() backend {
	if backendOver != nil {
		return backendOver
	}
	return newPlatformBackend()
}

// setBackend pins the dialog surface for later requests. In-flight
// requests keep their session.
func setBackend(be backend) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	backendOver = be
	defaultSes = nil
}

// Configure replaces the process-wide session. In-flight requests on
// the previous session still complete against it. Call before opening
// dialogs; calling mid-flight is safe but the new capacity only
// applies to later requests.
func Configure(cfg Config) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	c := cfg.withDefaults()
	defaultSes = &session{cfg: c, br: newBridge(c.MaxRequests), be: chooseBackend()}
}

// OpenFile shows a single-file open dialog. cb receives the chosen
// path, or ("", false) on cancel.
func OpenFile(opts *FileOptions, cb FileCallback) {
	s := currentSession()
	o := normalized(opts)
	id, ok := s.br.allocate(request{kind: kindOpenSingle, single: cb})
	if !ok {
		cancelSingle(cb)
		return
	}
	s.be.openFile(s, id, o, false)
}

// OpenFiles shows a multi-file open dialog. cb receives the chosen
// paths in selection order; an empty slice means cancel.
func OpenFiles(opts *FileOptions, cb MultiFileCallback) {
	s := currentSession()
	o := normalized(opts)
	o.AllowMultiple = true
	id, ok := s.br.allocate(request{kind: kindOpenMulti, multi: cb})
	if !ok {
		cancelMulti(cb)
		return
	}
	s.be.openFile(s, id, o, false)
}

// OpenFolder shows a single-folder selection dialog.
func OpenFolder(opts *FileOptions, cb FileCallback) {
	s := currentSession()
	o := normalized(opts)
	id, ok := s.br.allocate(request{kind: kindOpenDirSingle, single: cb})
	if !ok {
		cancelSingle(cb)
		return
	}
	s.be.openFile(s, id, o, true)
}

// OpenFolders shows a multi-folder selection dialog.
func OpenFolders(opts *FileOptions, cb MultiFileCallback) {
	s := currentSession()
	o := normalized(opts)
	o.AllowMultiple = true
	id, ok := s.br.allocate(request{kind: kindOpenDirMulti, multi: cb})
	if !ok {
		cancelMulti(cb)
		return
	}
	s.be.openFile(s, id, o, true)
}

// SaveFile shows a save dialog. cb receives the destination path, or
// ("", false) on cancel. The file may not exist yet on desktop
// backends; the browser backend creates it empty under the save
// bucket.
func SaveFile(opts *FileOptions, cb FileCallback) {
	s := currentSession()
	o := normalized(opts)
	if o.DefaultName == "" {
		o.DefaultName = s.cfg.DefaultSaveName
	}
	id, ok := s.br.allocate(request{kind: kindSave, single: cb})
	if !ok {
		cancelSingle(cb)
		return
	}
	s.be.saveFile(s, id, o)
}

// ShowMessage shows a message dialog. cb may be nil for
// fire-and-forget use; otherwise it receives the semantic result of
// the button the user pressed.
func ShowMessage(opts *MessageOptions, cb MessageCallback) {
	s := currentSession()
	var o MessageOptions
	if opts != nil {
		o = *opts
	}
	id, ok := s.br.allocate(request{kind: kindMessage, message: cb, buttons: o.Buttons})
	if !ok {
		if cb != nil {
			go cb(ResultClosed)
		}
		return
	}
	s.be.showMessage(s, id, o)
}

// ShowAlert shows a plain informational alert with an OK button. No
// result is delivered.
func ShowAlert(title, message string, parent uintptr) {
	ShowMessage(&MessageOptions{
		Title:   title,
		Message: message,
		Buttons: ButtonsOK,
		Style:   StyleInfo,
		Parent:  parent,
	}, nil)
}

// ShowConfirm shows an OK/Cancel question dialog.
func ShowConfirm(title, message string, parent uintptr, cb MessageCallback) {
	ShowMessage(&MessageOptions{
		Title:   title,
		Message: message,
		Buttons: ButtonsOKCancel,
		Style:   StyleQuestion,
		Parent:  parent,
	}, cb)
}

// ExportFile hands a file to the user. On the browser backend src
// names a file in the in-memory buckets and the bytes go to the
// user's download target; on desktop backends a save dialog picks a
// destination and the bytes are copied there. done receives false on
// cancel or failure.
func ExportFile(src string, opts *FileOptions, done ResultCallback) {
	s := currentSession()
	o := normalized(opts)
	id, ok := s.br.allocate(request{kind: kindExport, result: done})
	if !ok {
		if done != nil {
			go done(false)
		}
		return
	}
	s.be.exportFile(s, id, src, o)
}

func normalized(opts *FileOptions) FileOptions {
	if opts == nil {
		return FileOptions{}
	}
	return *opts
}

// cancelSingle resolves an operation that could not start. The
// callback still runs asynchronously so call sites observe one
// consistent contract.
func cancelSingle(cb FileCallback) {
	if cb != nil {
		go cb("", false)
	}
}

func cancelMulti(cb MultiFileCallback) {
	if cb != nil {
		go cb(nil)
	}
}
