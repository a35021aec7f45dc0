// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reqtable correlates in-flight asynchronous requests with
// their completion payloads. A Table hands out small integer ids and
// guarantees each id is taken back at most once, so a completion event
// that arrives twice (or for an id that was never issued) is ignored
// instead of dispatching stale state.
package reqtable

import "sync"

// DefaultCapacity is used when New is given a capacity below 2.
const DefaultCapacity = 64

type slot[T any] struct {
	live  bool
	value T
}

// Table is a fixed-capacity id-to-payload store. Ids are in
// [1, capacity-1]; id 0 is never issued and always invalid.
type Table[T any] struct {
	mu    sync.Mutex
	slots []slot[T]
	next  int
}

// New returns a Table with the given capacity. Capacities below 2
// leave no usable ids and fall back to DefaultCapacity.
func New[T any](capacity int) *Table[T] {
	if capacity < 2 {
		capacity = DefaultCapacity
	}
	return &Table[T]{slots: make([]slot[T], capacity), next: 1}
}

// Capacity reports the table size, counting the reserved zero slot.
func (t *Table[T]) Capacity() int {
	return len(t.slots)
}

// Allocate claims a free slot and returns its id. The scan starts
// from a rotating cursor rather than from the low ids, so released
// ids are not immediately reissued. Returns false when every slot is
// occupied.
func (t *Table[T]) Allocate() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for tries := 0; tries < len(t.slots); tries++ {
		id := t.next
		t.next++
		if t.next >= len(t.slots) {
			t.next = 1
		}
		if id <= 0 || id >= len(t.slots) {
			continue
		}
		if !t.slots[id].live {
			t.slots[id].live = true
			return id, true
		}
	}
	return 0, false
}

// Store writes the payload for a live id. Storing to an id that is
// out of range or not live is a no-op.
func (t *Table[T]) Store(id int, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id <= 0 || id >= len(t.slots) || !t.slots[id].live {
		return
	}
	t.slots[id].value = v
}

// TakeAndClear releases the slot and returns its payload. The slot is
// cleared before the payload is handed back, under a single lock
// acquisition, so a re-entrant delivery for the same id observes a
// free slot. Returns false for ids that are out of range, never
// issued, or already cleared.
func (t *Table[T]) TakeAndClear(id int) (T, bool) {
	var zero T
	t.mu.Lock()
	defer t.mu.Unlock()
	if id <= 0 || id >= len(t.slots) || !t.slots[id].live {
		return zero, false
	}
	v := t.slots[id].value
	t.slots[id] = slot[T]{}
	return v, true
}

// Live reports how many slots are currently occupied.
func (t *Table[T]) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, s := range t.slots {
		if s.live {
			n++
		}
	}
	return n
}
