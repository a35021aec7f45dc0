// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"
)

func TestEnsureDemoSubcommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"empty", nil, []string{"demo"}},
		{"bare scenario", []string{"open-file"}, []string{"demo", "open-file"}},
		{"scenario with flag", []string{"save", "--term"}, []string{"demo", "save", "--term"}},
		{"explicit demo", []string{"demo", "save"}, []string{"demo", "save"}},
		{"config passthrough", []string{"config"}, []string{"config"}},
		{"help passthrough", []string{"--help"}, []string{"--help"}},
		{"version passthrough", []string{"version"}, []string{"version"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ensureDemoSubcommand(tt.args)
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Fatalf("ensureDemoSubcommand(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestFindScenario(t *testing.T) {
	for _, sc := range scenarios {
		if _, ok := findScenario(sc.name); !ok {
			t.Fatalf("scenario %q not found", sc.name)
		}
	}
	if _, ok := findScenario("nope"); ok {
		t.Fatalf("unexpected scenario match")
	}
}

func TestVersionString(t *testing.T) {
	oldVersion, oldCommit := version, commit
	defer func() { version, commit = oldVersion, oldCommit }()

	version, commit = "1.2.3", ""
	if got := versionString(); got != "1.2.3" {
		t.Fatalf("versionString() = %q", got)
	}
	version, commit = "1.2.3", "abc123"
	if got := versionString(); got != "1.2.3 (abc123)" {
		t.Fatalf("versionString() = %q", got)
	}
	version, commit = "", ""
	if got := versionString(); got != "dev" {
		t.Fatalf("versionString() = %q", got)
	}
}
