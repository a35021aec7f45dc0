// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"strings"
	"sync"
	"testing"
	"time"
)

// stubBackend records calls and completes them with canned payloads so
// the public API can be driven without any real dialog surface.
type stubBackend struct {
	mu    sync.Mutex
	calls []string

	singlePath string
	singleOK   bool
	multiJoin  string
	buttonIdx  int
	result     ButtonResult
	useNative  bool
	nativeCode int
}

func (sb *stubBackend) record(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.calls = append(sb.calls, name)
}

func (sb *stubBackend) called() []string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return append([]string(nil), sb.calls...)
}

func (sb *stubBackend) openFile(s *session, id int, opts FileOptions, dirs bool) {
	sb.record("open")
	if opts.AllowMultiple {
		s.br.deliverMulti(id, sb.multiJoin)
		return
	}
	s.br.deliverSingle(id, sb.singlePath, sb.singleOK)
}

func (sb *stubBackend) saveFile(s *session, id int, opts FileOptions) {
	sb.record("save:" + opts.DefaultName)
	s.br.deliverSingle(id, sb.singlePath, sb.singleOK)
}

func (sb *stubBackend) showMessage(s *session, id int, opts MessageOptions) {
	sb.record("message")
	if sb.useNative {
		s.br.deliverNative(id, sb.nativeCode)
		return
	}
	s.br.deliverMessage(id, sb.result)
}

func (sb *stubBackend) exportFile(s *session, id int, src string, opts FileOptions) {
	sb.record("export:" + src)
	s.br.deliverButton(id, sb.buttonIdx)
}

func withStub(t *testing.T, sb *stubBackend) {
	t.Helper()
	setBackend(sb)
	t.Cleanup(func() {
		setBackend(nil)
		Configure(Config{})
	})
}

func waitDone(t *testing.T, done chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("callback never fired")
	}
}

func TestOpenFileDeliversPath(t *testing.T) {
	withStub(t, &stubBackend{singlePath: "/tmp/a.txt", singleOK: true})

	done := make(chan struct{})
	OpenFile(nil, func(path string, ok bool) {
		if !ok || path != "/tmp/a.txt" {
			t.Errorf("got (%q, %v)", path, ok)
		}
		close(done)
	})
	waitDone(t, done)
}

func TestOpenFilesForcesMultiple(t *testing.T) {
	withStub(t, &stubBackend{multiJoin: "/a\n/b"})

	done := make(chan struct{})
	OpenFiles(&FileOptions{AllowMultiple: false}, func(paths []string) {
		if strings.Join(paths, ",") != "/a,/b" {
			t.Errorf("got %v", paths)
		}
		close(done)
	})
	waitDone(t, done)
}

func TestSaveFileAppliesDefaultName(t *testing.T) {
	sb := &stubBackend{singlePath: "/saved/untitled", singleOK: true}
	withStub(t, sb)

	done := make(chan struct{})
	SaveFile(nil, func(path string, ok bool) {
		close(done)
	})
	waitDone(t, done)

	calls := sb.called()
	if len(calls) != 1 || calls[0] != "save:untitled" {
		t.Fatalf("calls = %v", calls)
	}
}

func TestShowMessageNativeResponse(t *testing.T) {
	withStub(t, &stubBackend{useNative: true, nativeCode: nativeSecondButton})

	done := make(chan struct{})
	ShowMessage(&MessageOptions{Buttons: ButtonsYesNo}, func(result ButtonResult) {
		if result != ResultNo {
			t.Errorf("result = %v, want %v", result, ResultNo)
		}
		close(done)
	})
	waitDone(t, done)
}

func TestShowMessageNilCallback(t *testing.T) {
	sb := &stubBackend{result: ResultOK}
	withStub(t, sb)

	ShowMessage(&MessageOptions{Buttons: ButtonsOK}, nil)
	deadline := time.Now().Add(2 * time.Second)
	for len(sb.called()) == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("backend never invoked")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestShowConfirmUsesOKCancel(t *testing.T) {
	withStub(t, &stubBackend{result: ResultCancel})

	done := make(chan struct{})
	ShowConfirm("Sure?", "really", 0, func(result ButtonResult) {
		if result != ResultCancel {
			t.Errorf("result = %v", result)
		}
		close(done)
	})
	waitDone(t, done)
}

func TestExportFileReportsOutcome(t *testing.T) {
	withStub(t, &stubBackend{buttonIdx: 0})

	done := make(chan struct{})
	ExportFile("/picked/a.bin", nil, func(ok bool) {
		if !ok {
			t.Errorf("export reported failure")
		}
		close(done)
	})
	waitDone(t, done)
}

// Saturating the table must cancel new requests asynchronously instead
// of blocking or panicking.
func TestSaturationCancelsImmediately(t *testing.T) {
	// A backend that never completes, pinning every slot.
	setBackend(backendFunc(func(s *session, id int) {}))
	t.Cleanup(func() {
		setBackend(nil)
		Configure(Config{})
	})
	Configure(Config{MaxRequests: 4})

	for i := 0; i < 3; i++ {
		OpenFile(nil, func(string, bool) {})
	}

	done := make(chan struct{})
	OpenFile(nil, func(path string, ok bool) {
		if ok || path != "" {
			t.Errorf("saturated open delivered (%q, %v)", path, ok)
		}
		close(done)
	})
	waitDone(t, done)
}

// backendFunc adapts a hang-forever function into a backend.
type backendFunc func(s *session, id int)

func (f backendFunc) openFile(s *session, id int, opts FileOptions, dirs bool) { f(s, id) }
func (f backendFunc) saveFile(s *session, id int, opts FileOptions)            { f(s, id) }
func (f backendFunc) showMessage(s *session, id int, opts MessageOptions)      { f(s, id) }
func (f backendFunc) exportFile(s *session, id int, src string, opts FileOptions) {
	f(s, id)
}

func TestConfigureDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.MaxRequests != 64 || cfg.ImportDir != "/picked" || cfg.SaveDir != "/saved" || cfg.DefaultSaveName != "untitled" {
		t.Fatalf("defaults = %+v", cfg)
	}
	small := Config{MaxRequests: 1}.withDefaults()
	if small.MaxRequests != 64 {
		t.Fatalf("MaxRequests 1 should fall back to 64, got %d", small.MaxRequests)
	}
}
