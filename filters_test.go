// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"reflect"
	"testing"
)

func TestAcceptString(t *testing.T) {
	filters := []Filter{
		{Name: "Images", Extensions: []string{"png", "jpg", ""}},
		{Name: "Docs", Extensions: []string{".pdf"}},
	}
	if got := acceptString(filters); got != ".png,.jpg,.pdf" {
		t.Fatalf("acceptString = %q", got)
	}
	if got := acceptString(nil); got != "" {
		t.Fatalf("acceptString(nil) = %q; want empty", got)
	}
}

func TestFlatExtensions(t *testing.T) {
	filters := []Filter{
		{Name: "Images", Extensions: []string{"png", " jpg "}},
		{Name: "Archives", Extensions: []string{"zip"}},
	}
	got := flatExtensions(filters)
	if !reflect.DeepEqual(got, []string{"png", "jpg", "zip"}) {
		t.Fatalf("flatExtensions = %v", got)
	}
}

func TestSplitPathLines(t *testing.T) {
	if got := splitPathLines(""); got != nil {
		t.Fatalf("empty payload produced %v; want nil", got)
	}
	got := splitPathLines("a\nb\nc")
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("splitPathLines = %v", got)
	}
	// A trailing newline must not fabricate an empty selection.
	got = splitPathLines("/picked/one\n")
	if !reflect.DeepEqual(got, []string{"/picked/one"}) {
		t.Fatalf("splitPathLines with trailing newline = %v", got)
	}
}
