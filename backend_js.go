// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

package pick

import (
	"errors"
	"path"
	"strings"
	"syscall/js"

	"github.com/google/uuid"

	"github.com/shayne/pick/internal/memfs"
)

func newPlatformBackend() backend {
	return &domBackend{fs: memfs.Default()}
}

// domBackend emulates the desktop dialog surface in a browser. Message
// dialogs render as a DOM overlay; file dialogs go through the File
// System Access API when the browser has it and fall back to a hidden
// <input type=file> otherwise. Picked files are copied into the
// in-memory filesystem so callers see ordinary paths.
type domBackend struct {
	fs *memfs.FS
}

var errAborted = errors.New("pick: dialog aborted")

func consoleError(args ...any) {
	js.Global().Get("console").Call("error", args...)
}

// await blocks the calling goroutine until the promise settles. Must
// never be called from a JS event callback.
func await(promise js.Value) (js.Value, error) {
	done := make(chan struct{})
	var result js.Value
	var rejected bool

	onResolve := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			result = args[0]
		}
		close(done)
		return nil
	})
	defer onResolve.Release()
	onReject := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			result = args[0]
		}
		rejected = true
		close(done)
		return nil
	})
	defer onReject.Release()

	promise.Call("then", onResolve, onReject)
	<-done
	if rejected {
		return result, errAborted
	}
	return result, nil
}

func (db *domBackend) openFile(s *session, id int, opts FileOptions, dirs bool) {
	go func() {
		paths, err := db.pickAndImport(s.cfg.ImportDir, opts, dirs)
		if err != nil {
			paths = nil
		}
		if opts.AllowMultiple {
			s.br.deliverMulti(id, strings.Join(paths, "\n"))
			return
		}
		if len(paths) == 0 {
			s.br.deliverSingle(id, "", false)
			return
		}
		s.br.deliverSingle(id, paths[0], true)
	}()
}

func (db *domBackend) pickAndImport(importDir string, opts FileOptions, dirs bool) ([]string, error) {
	window := js.Global()
	if dirs && window.Get("showDirectoryPicker").Type() == js.TypeFunction {
		return db.importViaDirectoryPicker(importDir)
	}
	if !dirs && window.Get("showOpenFilePicker").Type() == js.TypeFunction {
		return db.importViaFilePicker(importDir, opts)
	}
	return db.importViaInput(importDir, opts, dirs)
}

// fsaTypeOptions translates filters into showOpenFilePicker's accept
// shape. No filters means the picker accepts everything.
func fsaTypeOptions(filters []Filter) js.Value {
	types := js.Global().Get("Array").New()
	for _, f := range filters {
		exts := js.Global().Get("Array").New()
		for _, ext := range f.Extensions {
			ext = strings.TrimSpace(strings.TrimPrefix(ext, "."))
			if ext == "" {
				continue
			}
			exts.Call("push", "."+ext)
		}
		if exts.Length() == 0 {
			continue
		}
		accept := js.Global().Get("Object").New()
		accept.Set("application/octet-stream", exts)
		entry := js.Global().Get("Object").New()
		if f.Name != "" {
			entry.Set("description", f.Name)
		}
		entry.Set("accept", accept)
		types.Call("push", entry)
	}
	return types
}

func (db *domBackend) importViaFilePicker(importDir string, opts FileOptions) ([]string, error) {
	pickerOpts := js.Global().Get("Object").New()
	pickerOpts.Set("multiple", opts.AllowMultiple)
	if types := fsaTypeOptions(opts.Filters); types.Length() > 0 {
		pickerOpts.Set("types", types)
		pickerOpts.Set("excludeAcceptAllOption", false)
	}
	handles, err := await(js.Global().Call("showOpenFilePicker", pickerOpts))
	if err != nil {
		return nil, errAborted
	}
	var paths []string
	for i := 0; i < handles.Length(); i++ {
		file, err := await(handles.Index(i).Call("getFile"))
		if err != nil {
			continue
		}
		p, err := db.importFile(importDir, file.Get("name").String(), file)
		if err != nil {
			consoleError("pick: import failed:", err.Error())
			continue
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func (db *domBackend) importViaDirectoryPicker(importDir string) ([]string, error) {
	handle, err := await(js.Global().Call("showDirectoryPicker"))
	if err != nil {
		return nil, errAborted
	}
	root := path.Join(importDir, handle.Get("name").String())
	if err := db.importDirectory(handle, root); err != nil {
		return nil, err
	}
	return []string{root}, nil
}

// importDirectory walks a directory handle's async iterator, copying
// every file beneath dst and preserving the directory structure.
func (db *domBackend) importDirectory(handle js.Value, dst string) error {
	if err := db.fs.MkdirAll(dst); err != nil {
		return err
	}
	iter := handle.Call("values")
	for {
		step, err := await(iter.Call("next"))
		if err != nil {
			return errAborted
		}
		if step.Get("done").Bool() {
			return nil
		}
		entry := step.Get("value")
		name := entry.Get("name").String()
		switch entry.Get("kind").String() {
		case "directory":
			if err := db.importDirectory(entry, path.Join(dst, name)); err != nil {
				return err
			}
		case "file":
			file, err := await(entry.Call("getFile"))
			if err != nil {
				continue
			}
			if _, err := db.importFile(path.Dir(path.Join(dst, name)), name, file); err != nil {
				consoleError("pick: import failed:", err.Error())
			}
		}
	}
}

func (db *domBackend) importViaInput(importDir string, opts FileOptions, dirs bool) ([]string, error) {
	document := js.Global().Get("document")
	input := document.Call("createElement", "input")
	input.Set("type", "file")
	input.Set("id", "pick-input-"+uuid.NewString())
	input.Get("style").Set("display", "none")
	if opts.AllowMultiple {
		input.Set("multiple", true)
	}
	if dirs {
		input.Set("webkitdirectory", true)
	} else if accept := acceptString(opts.Filters); accept != "" {
		input.Set("accept", accept)
	}

	files := make(chan js.Value, 1)
	onChange := js.FuncOf(func(this js.Value, args []js.Value) any {
		files <- input.Get("files")
		return nil
	})
	defer onChange.Release()
	onCancel := js.FuncOf(func(this js.Value, args []js.Value) any {
		files <- js.Undefined()
		return nil
	})
	defer onCancel.Release()
	input.Call("addEventListener", "change", onChange)
	input.Call("addEventListener", "cancel", onCancel)

	document.Get("body").Call("appendChild", input)
	defer input.Call("remove")
	input.Call("click")

	list := <-files
	if list.IsUndefined() || list.Length() == 0 {
		return nil, errAborted
	}

	if dirs {
		var roots []string
		for i := 0; i < list.Length(); i++ {
			file := list.Index(i)
			rel := file.Get("webkitRelativePath").String()
			if rel == "" {
				rel = file.Get("name").String()
			}
			if _, err := db.importFile(path.Dir(path.Join(importDir, rel)), file.Get("name").String(), file); err != nil {
				consoleError("pick: import failed:", err.Error())
				continue
			}
			root := path.Join(importDir, strings.SplitN(rel, "/", 2)[0])
			if len(roots) == 0 || roots[len(roots)-1] != root {
				roots = append(roots, root)
			}
		}
		return roots, nil
	}

	var paths []string
	for i := 0; i < list.Length(); i++ {
		file := list.Index(i)
		p, err := db.importFile(importDir, file.Get("name").String(), file)
		if err != nil {
			consoleError("pick: import failed:", err.Error())
			continue
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// importFile copies one browser File into the in-memory filesystem and
// returns the path it landed on.
func (db *domBackend) importFile(dir, name string, file js.Value) (string, error) {
	buf, err := await(file.Call("arrayBuffer"))
	if err != nil {
		return "", errAborted
	}
	array := js.Global().Get("Uint8Array").New(buf)
	data := make([]byte, array.Length())
	js.CopyBytesToGo(data, array)
	dst := path.Join(dir, name)
	if err := db.fs.WriteFile(dst, data); err != nil {
		return "", err
	}
	return dst, nil
}

func (db *domBackend) saveFile(s *session, id int, opts FileOptions) {
	go func() {
		title := opts.Title
		if title == "" {
			title = "Save As"
		}
		name, ok := db.promptOverlay(title, "File name:", opts.DefaultName)
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			s.br.deliverSingle(id, "", false)
			return
		}
		dst := path.Join(s.cfg.SaveDir, name)
		if err := db.fs.WriteFile(dst, nil); err != nil {
			consoleError("pick: save failed:", err.Error())
			s.br.deliverSingle(id, "", false)
			return
		}
		s.br.deliverSingle(id, dst, true)
	}()
}

func (db *domBackend) showMessage(s *session, id int, opts MessageOptions) {
	go func() {
		index := db.messageOverlay(opts)
		s.br.deliverButton(id, index)
	}()
}

func (db *domBackend) exportFile(s *session, id int, src string, opts FileOptions) {
	go func() {
		data, err := db.fs.ReadFile(src)
		if err != nil {
			consoleError("pick: export source missing:", src)
			s.br.deliverButton(id, 1)
			return
		}
		name := opts.DefaultName
		if name == "" {
			name = path.Base(src)
		}
		if db.exportBytes(name, data) {
			s.br.deliverButton(id, 0)
			return
		}
		s.br.deliverButton(id, 1)
	}()
}

// exportBytes hands data to the user, preferring a real save dialog
// and falling back to a synthesized anchor download.
func (db *domBackend) exportBytes(name string, data []byte) bool {
	window := js.Global()
	array := window.Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(array, data)

	if window.Get("showSaveFilePicker").Type() == js.TypeFunction {
		pickerOpts := window.Get("Object").New()
		pickerOpts.Set("suggestedName", name)
		handle, err := await(window.Call("showSaveFilePicker", pickerOpts))
		if err != nil {
			return false
		}
		writable, err := await(handle.Call("createWritable"))
		if err != nil {
			return false
		}
		if _, err := await(writable.Call("write", array)); err != nil {
			_, _ = await(writable.Call("close"))
			return false
		}
		if _, err := await(writable.Call("close")); err != nil {
			return false
		}
		return true
	}

	parts := window.Get("Array").New()
	parts.Call("push", array)
	blob := window.Get("Blob").New(parts)
	url := window.Get("URL").Call("createObjectURL", blob)
	document := window.Get("document")
	anchor := document.Call("createElement", "a")
	anchor.Set("href", url)
	anchor.Set("download", name)
	document.Get("body").Call("appendChild", anchor)
	anchor.Call("click")
	anchor.Call("remove")
	window.Get("URL").Call("revokeObjectURL", url)
	return true
}
