// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package pick

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/huh"

	"github.com/shayne/pick/internal/tui/theme"
)

// termBackend renders dialogs as interactive terminal forms. It backs
// displayless Linux sessions and the UseTerminal override everywhere
// else. Forms are serialized; callers still get their callbacks
// asynchronously in request order.
type termBackend struct {
	mu  sync.Mutex
	in  *os.File
	out io.Writer
}

func newTermBackend() *termBackend {
	return &termBackend{in: os.Stdin, out: os.Stdout}
}

// UseTerminal pins all later dialogs to the terminal form surface,
// bypassing platform dialog detection.
func UseTerminal() {
	setBackend(newTermBackend())
}

func (b *termBackend) runForm(fields ...huh.Field) error {
	th := theme.ForOutput(b.out)
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithInput(b.in).
		WithOutput(b.out).
		WithTheme(th.HuhTheme())
	return form.Run()
}

func (b *termBackend) openFile(s *session, id int, opts FileOptions, dirs bool) {
	go func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if opts.AllowMultiple {
			title := opts.Title
			if title == "" {
				title = "Select files"
				if dirs {
					title = "Select folders"
				}
			}
			var joined string
			field := huh.NewText().
				Title(title).
				Description("One path per line; leave empty to cancel.").
				Value(&joined)
			if err := b.runForm(field); err != nil {
				s.br.deliverMulti(id, "")
				return
			}
			s.br.deliverMulti(id, joined)
			return
		}

		title := opts.Title
		if title == "" {
			title = "Select a file"
			if dirs {
				title = "Select a folder"
			}
		}
		var path string
		picker := huh.NewFilePicker().
			Title(title).
			DirAllowed(dirs).
			FileAllowed(!dirs).
			Value(&path)
		if dirs {
			picker = picker.Picking(true)
		}
		if exts := flatExtensions(opts.Filters); len(exts) > 0 && !dirs {
			picker = picker.AllowedTypes(exts)
		}
		if opts.DefaultPath != "" {
			picker = picker.CurrentDirectory(opts.DefaultPath)
		}
		if err := b.runForm(picker); err != nil || path == "" {
			s.br.deliverSingle(id, "", false)
			return
		}
		s.br.deliverSingle(id, path, true)
	}()
}

func (b *termBackend) saveFile(s *session, id int, opts FileOptions) {
	go func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		title := opts.Title
		if title == "" {
			title = "Save as"
		}
		path := opts.DefaultName
		if opts.DefaultPath != "" {
			path = filepath.Join(opts.DefaultPath, opts.DefaultName)
		}
		field := huh.NewInput().
			Title(title).
			Description("Destination path; leave empty to cancel.").
			Value(&path)
		if err := b.runForm(field); err != nil || strings.TrimSpace(path) == "" {
			s.br.deliverSingle(id, "", false)
			return
		}
		s.br.deliverSingle(id, strings.TrimSpace(path), true)
	}()
}

func (b *termBackend) showMessage(s *session, id int, opts MessageOptions) {
	go func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		labels := opts.Buttons.labels()
		results := buttonResults(opts.Buttons)
		options := make([]huh.Option[ButtonResult], len(labels))
		for i, label := range labels {
			options[i] = huh.NewOption(label, results[i])
		}

		title := opts.Title
		if title == "" {
			title = messageTitle(opts.Style)
		}
		description := opts.Message
		if opts.Detail != "" {
			description += "\n\n" + opts.Detail
		}
		var choice ButtonResult
		field := huh.NewSelect[ButtonResult]().
			Title(title).
			Description(description).
			Options(options...).
			Value(&choice)
		if err := b.runForm(field); err != nil {
			// Esc and real form failures both read as a dismissed dialog.
			s.br.deliverMessage(id, ResultClosed)
			return
		}
		s.br.deliverMessage(id, choice)
	}()
}

func (b *termBackend) exportFile(s *session, id int, src string, opts FileOptions) {
	go func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		data, err := os.ReadFile(src)
		if err != nil {
			s.br.deliverButton(id, 1)
			return
		}

		title := opts.Title
		if title == "" {
			title = "Export to"
		}
		path := opts.DefaultName
		if path == "" {
			path = filepath.Base(src)
		}
		if opts.DefaultPath != "" {
			path = filepath.Join(opts.DefaultPath, path)
		}
		field := huh.NewInput().
			Title(title).
			Description("Destination path; leave empty to cancel.").
			Value(&path)
		if err := b.runForm(field); err != nil || strings.TrimSpace(path) == "" {
			s.br.deliverButton(id, 1)
			return
		}
		if err := os.WriteFile(strings.TrimSpace(path), data, 0o644); err != nil {
			s.br.deliverButton(id, 1)
			return
		}
		s.br.deliverButton(id, 0)
	}()
}

func messageTitle(style Style) string {
	switch style {
	case StyleWarning:
		return "Warning"
	case StyleError:
		return "Error"
	case StyleQuestion:
		return "Question"
	default:
		return "Info"
	}
}

// buttonResults pairs each logical button label with the result it
// reports, in the same order as Buttons.labels.
func buttonResults(b Buttons) []ButtonResult {
	switch b {
	case ButtonsOKCancel:
		return []ButtonResult{ResultOK, ResultCancel}
	case ButtonsYesNo:
		return []ButtonResult{ResultYes, ResultNo}
	case ButtonsYesNoCancel:
		return []ButtonResult{ResultYes, ResultNo, ResultCancel}
	default:
		return []ButtonResult{ResultOK}
	}
}
