// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import "strings"

// acceptString flattens filters into the comma-joined form the
// browser file input expects: ".png,.jpg,.pdf". Empty extensions are
// skipped; an empty result means "accept everything".
func acceptString(filters []Filter) string {
	var b strings.Builder
	for _, f := range filters {
		for _, ext := range f.Extensions {
			ext = strings.TrimSpace(strings.TrimPrefix(ext, "."))
			if ext == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('.')
			b.WriteString(ext)
		}
	}
	return b.String()
}

// flatExtensions returns every extension across all filters, in
// order, without dots. Used by backends that take a flat type list.
func flatExtensions(filters []Filter) []string {
	var out []string
	for _, f := range filters {
		for _, ext := range f.Extensions {
			ext = strings.TrimSpace(strings.TrimPrefix(ext, "."))
			if ext == "" {
				continue
			}
			out = append(out, ext)
		}
	}
	return out
}

// splitPathLines splits a newline-joined delivery payload into paths,
// preserving order. Empty input means cancellation and yields nil,
// never a single empty path. Blank interior lines are dropped so a
// trailing newline cannot fabricate a selection.
func splitPathLines(joined string) []string {
	if joined == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(joined, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
