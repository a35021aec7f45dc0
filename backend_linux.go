// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
)

// newPlatformBackend prefers the zenity dialog surface when a display
// server and a dialog helper are both present, and falls back to
// terminal forms otherwise.
func newPlatformBackend() backend {
	if hasDisplay() && zenity.IsAvailable() {
		return &zenityBackend{}
	}
	return newTermBackend()
}

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

type zenityBackend struct{}

func zenityFilters(filters []Filter) zenity.FileFilters {
	var out zenity.FileFilters
	for _, f := range filters {
		patterns := make([]string, 0, len(f.Extensions))
		for _, ext := range f.Extensions {
			ext = strings.TrimSpace(strings.TrimPrefix(ext, "."))
			if ext == "" {
				continue
			}
			patterns = append(patterns, "*."+ext)
		}
		if len(patterns) == 0 {
			continue
		}
		out = append(out, zenity.FileFilter{Name: f.Name, Patterns: patterns, CaseFold: true})
	}
	return out
}

func (zb *zenityBackend) openFile(s *session, id int, opts FileOptions, dirs bool) {
	go func() {
		var zopts []zenity.Option
		if opts.Title != "" {
			zopts = append(zopts, zenity.Title(opts.Title))
		}
		if opts.DefaultPath != "" {
			zopts = append(zopts, zenity.Filename(opts.DefaultPath))
		}
		if dirs {
			zopts = append(zopts, zenity.Directory())
		} else if f := zenityFilters(opts.Filters); len(f) > 0 {
			zopts = append(zopts, f)
		}

		if opts.AllowMultiple {
			paths, err := zenity.SelectFileMultiple(zopts...)
			if err != nil {
				s.br.deliverMulti(id, "")
				return
			}
			s.br.deliverMulti(id, strings.Join(paths, "\n"))
			return
		}
		path, err := zenity.SelectFile(zopts...)
		if err != nil || path == "" {
			s.br.deliverSingle(id, "", false)
			return
		}
		s.br.deliverSingle(id, path, true)
	}()
}

func (zb *zenityBackend) saveFile(s *session, id int, opts FileOptions) {
	go func() {
		zopts := []zenity.Option{zenity.ConfirmOverwrite()}
		if opts.Title != "" {
			zopts = append(zopts, zenity.Title(opts.Title))
		}
		zopts = append(zopts, zenity.Filename(filepath.Join(opts.DefaultPath, opts.DefaultName)))
		if f := zenityFilters(opts.Filters); len(f) > 0 {
			zopts = append(zopts, f)
		}
		path, err := zenity.SelectFileSave(zopts...)
		if err != nil || path == "" {
			s.br.deliverSingle(id, "", false)
			return
		}
		s.br.deliverSingle(id, path, true)
	}()
}

func (zb *zenityBackend) showMessage(s *session, id int, opts MessageOptions) {
	go func() {
		text := opts.Message
		if opts.Detail != "" {
			text += "\n\n" + opts.Detail
		}
		zopts := []zenity.Option{zenity.Title(opts.Title)}
		switch opts.Style {
		case StyleWarning:
			zopts = append(zopts, zenity.WarningIcon)
		case StyleError:
			zopts = append(zopts, zenity.ErrorIcon)
		case StyleQuestion:
			zopts = append(zopts, zenity.QuestionIcon)
		default:
			zopts = append(zopts, zenity.InfoIcon)
		}

		switch opts.Buttons {
		case ButtonsOK:
			show := zenity.Info
			switch opts.Style {
			case StyleWarning:
				show = zenity.Warning
			case StyleError:
				show = zenity.Error
			}
			_ = show(text, zopts...)
			s.br.deliverMessage(id, ResultOK)
		case ButtonsOKCancel:
			err := zenity.Question(text, append(zopts, zenity.OKLabel("OK"), zenity.CancelLabel("Cancel"))...)
			s.br.deliverMessage(id, questionResult(err, ResultOK, ResultCancel, ResultClosed))
		case ButtonsYesNo:
			err := zenity.Question(text, append(zopts, zenity.OKLabel("Yes"), zenity.CancelLabel("No"))...)
			s.br.deliverMessage(id, questionResult(err, ResultYes, ResultNo, ResultClosed))
		case ButtonsYesNoCancel:
			err := zenity.Question(text, append(zopts,
				zenity.OKLabel("Yes"), zenity.ExtraButton("No"), zenity.CancelLabel("Cancel"))...)
			if errors.Is(err, zenity.ErrExtraButton) {
				s.br.deliverMessage(id, ResultNo)
				return
			}
			s.br.deliverMessage(id, questionResult(err, ResultYes, ResultCancel, ResultClosed))
		default:
			s.br.deliverMessage(id, ResultClosed)
		}
	}()
}

// questionResult maps a zenity question outcome onto button results:
// nil is the affirmative button, ErrCanceled the dismissive one.
func questionResult(err error, ok, cancel, closed ButtonResult) ButtonResult {
	switch {
	case err == nil:
		return ok
	case errors.Is(err, zenity.ErrCanceled):
		return cancel
	default:
		return closed
	}
}

func (zb *zenityBackend) exportFile(s *session, id int, src string, opts FileOptions) {
	go func() {
		data, err := os.ReadFile(src)
		if err != nil {
			s.br.deliverButton(id, 1)
			return
		}
		name := opts.DefaultName
		if name == "" {
			name = filepath.Base(src)
		}
		zopts := []zenity.Option{
			zenity.ConfirmOverwrite(),
			zenity.Filename(filepath.Join(opts.DefaultPath, name)),
		}
		if opts.Title != "" {
			zopts = append(zopts, zenity.Title(opts.Title))
		}
		path, err := zenity.SelectFileSave(zopts...)
		if err != nil || path == "" {
			s.br.deliverButton(id, 1)
			return
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			s.br.deliverButton(id, 1)
			return
		}
		s.br.deliverButton(id, 0)
	}()
}
