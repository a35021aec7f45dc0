// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme styles terminal dialog output, adapting to the
// terminal's light or dark background when it can be detected.
package theme

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type Mode int

const (
	ModeUnknown Mode = iota
	ModeLight
	ModeDark
)

type RGB struct {
	R uint8
	G uint8
	B uint8
}

type Palette struct {
	FG      RGB
	BG      RGB
	HasFG   bool
	HasBG   bool
	Version uint64
}

// Theme carries the styles terminal dialogs render with. The zero
// value (Enabled false) renders plain text.
type Theme struct {
	Enabled bool
	Mode    Mode
	Palette Palette
	Dialog  DialogStyles
}

type DialogStyles struct {
	Title   lipgloss.Style
	Message lipgloss.Style
	Detail  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Result  lipgloss.Style
	Path    lipgloss.Style
}

type manager struct {
	mu           sync.Mutex
	palette      Palette
	attempted    bool
	cachedTheme  Theme
	themeVersion uint64
}

var global = &manager{}

// ForOutput returns the theme for out, disabled when out is not a
// color-capable terminal.
func ForOutput(out io.Writer) Theme {
	enabled := EnabledForOutput(out)
	return global.themeFor(enabled)
}

// Refresh re-queries the terminal palette.
func Refresh() {
	global.refresh()
}

func EnabledForOutput(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	termValue := os.Getenv("TERM")
	if termValue == "" || termValue == "dumb" {
		return false
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func (m *manager) themeFor(enabled bool) Theme {
	if !enabled {
		return Theme{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensurePaletteLocked()
	if m.themeVersion != m.palette.Version || !m.cachedTheme.Enabled {
		m.cachedTheme = buildTheme(m.palette)
		m.themeVersion = m.palette.Version
	}
	return m.cachedTheme
}

func (m *manager) refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshLocked()
}

func (m *manager) ensurePaletteLocked() {
	if m.attempted {
		return
	}
	m.attempted = true
	m.refreshLocked()
}

func (m *manager) refreshLocked() {
	palette := queryPalette()
	if !(palette.HasBG || palette.HasFG) {
		return
	}
	if paletteEqual(palette, m.palette) {
		return
	}
	palette.Version = m.palette.Version + 1
	m.palette = palette
}

func paletteEqual(a, b Palette) bool {
	if a.HasFG != b.HasFG || a.HasBG != b.HasBG {
		return false
	}
	if a.HasFG && a.FG != b.FG {
		return false
	}
	if a.HasBG && a.BG != b.BG {
		return false
	}
	return true
}

type tokens struct {
	accent  string
	muted   string
	label   string
	value   string
	error   string
	warning string
	success string
	path    string
}

var darkTokens = tokens{
	accent:  "213",
	muted:   "243",
	label:   "244",
	value:   "252",
	error:   "203",
	warning: "214",
	success: "77",
	path:    "#7AB8FF",
}

var lightTokens = tokens{
	accent:  "127",
	muted:   "245",
	label:   "240",
	value:   "235",
	error:   "160",
	warning: "130",
	success: "28",
	path:    "#0A3E84",
}

func buildTheme(palette Palette) Theme {
	mode := modeFromPalette(palette)
	if mode == ModeUnknown {
		mode = ModeDark
	}

	pal := darkTokens
	if mode == ModeLight {
		pal = lightTokens
	}

	return Theme{
		Enabled: true,
		Mode:    mode,
		Palette: palette,
		Dialog: DialogStyles{
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.accent)),
			Message: lipgloss.NewStyle().Foreground(lipgloss.Color(pal.value)),
			Detail:  lipgloss.NewStyle().Foreground(lipgloss.Color(pal.label)),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(pal.muted)),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(pal.error)),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(pal.warning)),
			Result:  lipgloss.NewStyle().Foreground(lipgloss.Color(pal.success)),
			Path:    lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color(pal.path)),
		},
	}
}
