// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme returns the form theme matching t. Disabled themes get the
// plain base theme so forms stay readable on dumb outputs.
func (t Theme) HuhTheme() *huh.Theme {
	if !t.Enabled {
		return huh.ThemeBase()
	}
	pal := darkTokens
	if t.Mode == ModeLight {
		pal = lightTokens
	}

	accent := lipgloss.Color(pal.accent)
	muted := lipgloss.Color(pal.muted)
	label := lipgloss.Color(pal.label)
	value := lipgloss.Color(pal.value)
	errColor := lipgloss.Color(pal.error)

	th := huh.ThemeBase()
	th.Group.Title = th.Group.Title.Foreground(accent).Bold(true)
	th.Group.Description = th.Group.Description.Foreground(muted)
	th.FieldSeparator = lipgloss.NewStyle().SetString("\n\n")

	th.Focused.Title = th.Focused.Title.Foreground(label).Bold(true)
	th.Focused.Description = th.Focused.Description.Foreground(muted)
	th.Focused.ErrorIndicator = th.Focused.ErrorIndicator.Foreground(errColor)
	th.Focused.ErrorMessage = th.Focused.ErrorMessage.Foreground(errColor)
	th.Focused.SelectSelector = th.Focused.SelectSelector.Foreground(accent)
	th.Focused.SelectedOption = th.Focused.SelectedOption.Foreground(accent)
	th.Focused.MultiSelectSelector = th.Focused.MultiSelectSelector.Foreground(accent)
	th.Focused.SelectedPrefix = th.Focused.SelectedPrefix.Foreground(accent)
	th.Focused.TextInput.Prompt = th.Focused.TextInput.Prompt.Foreground(label)
	th.Focused.TextInput.Text = th.Focused.TextInput.Text.Foreground(value)
	th.Focused.TextInput.Placeholder = th.Focused.TextInput.Placeholder.Foreground(muted)

	th.Blurred = th.Focused
	th.Blurred.Base = th.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	return th
}
