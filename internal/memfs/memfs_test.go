// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memfs

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	fs := New()
	if err := fs.WriteFile("/picked/docs/a.txt", []byte("hello")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := fs.ReadFile("/picked/docs/a.txt")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(data, []byte("hello")) {
		t.Fatalf("data = %q", data)
	}
	// Parents exist implicitly.
	if !fs.Exists("/picked") || !fs.Exists("/picked/docs") {
		t.Fatal("parent directories missing")
	}
}

func TestReadMissing(t *testing.T) {
	fs := New()
	if _, err := fs.ReadFile("/nope"); !errors.Is(err, ErrNotExist) {
		t.Fatalf("err = %v; want ErrNotExist", err)
	}
}

func TestWriteOverDirectoryFails(t *testing.T) {
	fs := New()
	if err := fs.MkdirAll("/saved"); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := fs.WriteFile("/saved", []byte("x")); !errors.Is(err, ErrIsDir) {
		t.Fatalf("err = %v; want ErrIsDir", err)
	}
}

func TestMkdirOverFileFails(t *testing.T) {
	fs := New()
	if err := fs.WriteFile("/a", nil); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := fs.MkdirAll("/a/b"); !errors.Is(err, ErrNotDir) {
		t.Fatalf("err = %v; want ErrNotDir", err)
	}
}

func TestReadDir(t *testing.T) {
	fs := New()
	for _, p := range []string{"/picked/b.txt", "/picked/a.txt", "/picked/sub/c.txt"} {
		if err := fs.WriteFile(p, nil); err != nil {
			t.Fatalf("WriteFile(%s): %v", p, err)
		}
	}
	got, err := fs.ReadDir("/picked")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	want := []string{"a.txt", "b.txt", "sub/"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ReadDir = %v; want %v", got, want)
	}
}

func TestRelativePathsNormalized(t *testing.T) {
	fs := New()
	if err := fs.WriteFile("picked/x", []byte("1")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := fs.ReadFile("/picked/x"); err != nil {
		t.Fatalf("normalized read: %v", err)
	}
}

func TestRemove(t *testing.T) {
	fs := New()
	if err := fs.WriteFile("/saved/out.bin", []byte("x")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := fs.Remove("/saved/out.bin"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if fs.Exists("/saved/out.bin") {
		t.Fatal("file still exists after Remove")
	}
	if err := fs.Remove("/saved/out.bin"); !errors.Is(err, ErrNotExist) {
		t.Fatalf("second Remove err = %v; want ErrNotExist", err)
	}
}
