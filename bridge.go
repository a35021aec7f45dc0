// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import "github.com/shayne/pick/internal/reqtable"

// requestKind tags what a live slot is waiting for. kindNone is the
// zero value and marks a free slot.
type requestKind int

const (
	kindNone requestKind = iota
	kindOpenSingle
	kindOpenMulti
	kindOpenDirSingle
	kindOpenDirMulti
	kindSave
	kindMessage
	kindExport
)

// request is one in-flight dialog operation. Exactly one callback
// field is set, matching the kind; any state a caller needs at
// completion rides in the callback's closure.
type request struct {
	kind    requestKind
	single  FileCallback
	multi   MultiFileCallback
	message MessageCallback
	result  ResultCallback
	buttons Buttons
}

// bridge is the single integration point between externally delivered
// dialog outcomes and user callbacks. Each deliver method takes the
// slot before dispatching, so a second delivery for the same id finds
// a free slot and does nothing.
type bridge struct {
	reqs *reqtable.Table[request]
}

func newBridge(capacity int) *bridge {
	return &bridge{reqs: reqtable.New[request](capacity)}
}

// allocate claims a slot for req and returns its id. False means the
// table is saturated; the caller must resolve the operation as
// cancelled immediately rather than leaving it pending.
func (b *bridge) allocate(req request) (int, bool) {
	id, ok := b.reqs.Allocate()
	if !ok {
		return 0, false
	}
	b.reqs.Store(id, req)
	return id, true
}

// deliverSingle completes a request with one path, or with a
// cancellation when ok is false. A single delivery arriving for a
// multi request resolves as an empty cancelled result; for a message
// request it resolves as OK. Mismatches resolve instead of erroring so
// a confused event source can never strand a callback.
func (b *bridge) deliverSingle(id int, path string, ok bool) {
	req, live := b.reqs.TakeAndClear(id)
	if !live {
		return
	}
	switch req.kind {
	case kindOpenSingle, kindOpenDirSingle, kindSave:
		if req.single != nil {
			if !ok {
				req.single("", false)
			} else {
				req.single(path, true)
			}
		}
	case kindOpenMulti, kindOpenDirMulti:
		if req.multi != nil {
			req.multi(nil)
		}
	case kindMessage:
		if req.message != nil {
			req.message(ResultOK)
		}
	case kindExport:
		if req.result != nil {
			req.result(ok)
		}
	}
}

// deliverMulti completes a request with a newline-joined path list.
// Empty input is a cancellation. A multi delivery arriving for a
// single-path open request hands over the first path only; other
// single-callback kinds resolve as cancellation.
func (b *bridge) deliverMulti(id int, joined string) {
	req, live := b.reqs.TakeAndClear(id)
	if !live {
		return
	}
	paths := splitPathLines(joined)
	if len(paths) == 0 {
		if req.multi != nil {
			req.multi(nil)
		} else if req.single != nil {
			req.single("", false)
		}
		return
	}
	if (req.kind == kindOpenSingle || req.kind == kindOpenDirSingle) && req.single != nil {
		req.single(paths[0], true)
		return
	}
	if req.multi == nil {
		if req.single != nil {
			req.single("", false)
		}
		return
	}
	req.multi(paths)
}

// deliverButton completes a request with a 0-based overlay button
// index. Message requests map the index through the overlay table;
// export requests succeed iff the index is 0.
func (b *bridge) deliverButton(id int, index int) {
	req, live := b.reqs.TakeAndClear(id)
	if !live {
		return
	}
	switch req.kind {
	case kindMessage:
		if req.message != nil {
			req.message(overlayButtonResult(index, req.buttons))
		}
	case kindExport:
		if req.result != nil {
			req.result(index == 0)
		}
	}
}

// deliverNative completes a message request with a raw desktop modal
// response code, mapped through the native table against the stored
// button configuration.
func (b *bridge) deliverNative(id int, response int) {
	req, live := b.reqs.TakeAndClear(id)
	if !live {
		return
	}
	if req.kind == kindMessage && req.message != nil {
		req.message(nativeButtonResult(response, req.buttons))
	}
}

// deliverMessage completes a message request with an already-mapped
// semantic result. Backends whose surfaces report button identity
// rather than position (Windows, zenity, terminal) use this.
func (b *bridge) deliverMessage(id int, result ButtonResult) {
	req, live := b.reqs.TakeAndClear(id)
	if !live {
		return
	}
	if req.kind == kindMessage && req.message != nil {
		req.message(result)
	}
}
