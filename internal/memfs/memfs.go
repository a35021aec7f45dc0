// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memfs is a small path-to-bytes store with directory
// semantics. The browser dialog backend copies picked files into it
// and creates saved files under it, standing in for the sandboxed
// filesystem a native platform would provide. It is platform-neutral
// so the same store backs tests on any OS.
package memfs

import (
	"errors"
	"path"
	"sort"
	"strings"
	"sync"
)

var (
	ErrNotExist = errors.New("memfs: file does not exist")
	ErrIsDir    = errors.New("memfs: path is a directory")
	ErrNotDir   = errors.New("memfs: path is not a directory")
)

// FS is a mutex-guarded in-memory filesystem rooted at "/".
type FS struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool
}

// New returns an empty filesystem containing only the root directory.
func New() *FS {
	return &FS{
		files: make(map[string][]byte),
		dirs:  map[string]bool{"/": true},
	}
}

// clean normalizes to a slash-rooted clean path.
func clean(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// MkdirAll creates the directory and any missing parents. Creating a
// directory over an existing file fails.
func (f *FS) MkdirAll(dir string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mkdirAllLocked(clean(dir))
}

func (f *FS) mkdirAllLocked(dir string) error {
	if dir == "/" {
		return nil
	}
	if _, isFile := f.files[dir]; isFile {
		return ErrNotDir
	}
	if f.dirs[dir] {
		return nil
	}
	if err := f.mkdirAllLocked(path.Dir(dir)); err != nil {
		return err
	}
	f.dirs[dir] = true
	return nil
}

// WriteFile stores data at p, creating parent directories as needed.
func (f *FS) WriteFile(p string, data []byte) error {
	p = clean(p)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dirs[p] {
		return ErrIsDir
	}
	if err := f.mkdirAllLocked(path.Dir(p)); err != nil {
		return err
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	f.files[p] = buf
	return nil
}

// ReadFile returns a copy of the bytes stored at p.
func (f *FS) ReadFile(p string) ([]byte, error) {
	p = clean(p)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dirs[p] {
		return nil, ErrIsDir
	}
	data, ok := f.files[p]
	if !ok {
		return nil, ErrNotExist
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Exists reports whether p names a file or directory.
func (f *FS) Exists(p string) bool {
	p = clean(p)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dirs[p] {
		return true
	}
	_, ok := f.files[p]
	return ok
}

// ReadDir lists the immediate children of dir, sorted, with
// directories carrying a trailing slash.
func (f *FS) ReadDir(dir string) ([]string, error) {
	dir = clean(dir)
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, isFile := f.files[dir]; isFile {
		return nil, ErrNotDir
	}
	if !f.dirs[dir] {
		return nil, ErrNotExist
	}
	prefix := dir
	if prefix != "/" {
		prefix += "/"
	}
	seen := map[string]bool{}
	var out []string
	for p := range f.files {
		if rest, ok := strings.CutPrefix(p, prefix); ok && !strings.Contains(rest, "/") {
			if !seen[rest] {
				seen[rest] = true
				out = append(out, rest)
			}
		}
	}
	for p := range f.dirs {
		if rest, ok := strings.CutPrefix(p, prefix); ok && rest != "" && !strings.Contains(rest, "/") {
			name := rest + "/"
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// Remove deletes a file. Directories cannot be removed.
func (f *FS) Remove(p string) error {
	p = clean(p)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dirs[p] {
		return ErrIsDir
	}
	if _, ok := f.files[p]; !ok {
		return ErrNotExist
	}
	delete(f.files, p)
	return nil
}

var (
	defaultOnce sync.Once
	defaultFS   *FS
)

// Default returns the process-wide store shared by the browser
// backend and its callers.
func Default() *FS {
	defaultOnce.Do(func() {
		defaultFS = New()
	})
	return defaultFS
}
