// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reqtable

import "testing"

func TestAllocateIssuesPositiveIds(t *testing.T) {
	tbl := New[string](8)
	seen := map[int]bool{}
	for i := 0; i < 7; i++ {
		id, ok := tbl.Allocate()
		if !ok {
			t.Fatalf("allocation %d failed with free slots remaining", i)
		}
		if id <= 0 || id >= 8 {
			t.Fatalf("id %d out of range [1,7]", id)
		}
		if seen[id] {
			t.Fatalf("id %d issued twice while live", id)
		}
		seen[id] = true
	}
}

func TestAllocateSaturation(t *testing.T) {
	tbl := New[int](4)
	for i := 0; i < 3; i++ {
		if _, ok := tbl.Allocate(); !ok {
			t.Fatalf("allocation %d failed early", i)
		}
	}
	if id, ok := tbl.Allocate(); ok {
		t.Fatalf("expected saturation, got id %d", id)
	}
	// Saturation must be deterministic, not transient.
	if _, ok := tbl.Allocate(); ok {
		t.Fatal("second allocation past saturation succeeded")
	}
}

func TestTakeAndClearUnknownId(t *testing.T) {
	tbl := New[string](8)
	for _, id := range []int{-1, 0, 3, 8, 100} {
		if v, ok := tbl.TakeAndClear(id); ok {
			t.Fatalf("TakeAndClear(%d) returned %q for a never-issued id", id, v)
		}
	}
	if tbl.Live() != 0 {
		t.Fatalf("spurious TakeAndClear changed table state: %d live", tbl.Live())
	}
}

func TestStoreAndTake(t *testing.T) {
	tbl := New[string](8)
	id, ok := tbl.Allocate()
	if !ok {
		t.Fatal("allocate failed")
	}
	tbl.Store(id, "payload")
	v, ok := tbl.TakeAndClear(id)
	if !ok || v != "payload" {
		t.Fatalf("TakeAndClear = %q, %v; want payload, true", v, ok)
	}
	if v, ok := tbl.TakeAndClear(id); ok {
		t.Fatalf("second TakeAndClear returned %q; want miss", v)
	}
}

func TestStoreDeadIdIgnored(t *testing.T) {
	tbl := New[string](8)
	tbl.Store(3, "ghost")
	if v, ok := tbl.TakeAndClear(3); ok {
		t.Fatalf("store to dead id took effect: %q", v)
	}
}

func TestReleasedIdReusable(t *testing.T) {
	tbl := New[int](2) // single usable id
	id, ok := tbl.Allocate()
	if !ok {
		t.Fatal("allocate failed")
	}
	if _, ok := tbl.Allocate(); ok {
		t.Fatal("expected saturation with one usable slot")
	}
	if _, ok := tbl.TakeAndClear(id); !ok {
		t.Fatal("TakeAndClear failed for live id")
	}
	id2, ok := tbl.Allocate()
	if !ok {
		t.Fatal("allocate after release failed")
	}
	if id2 != id {
		t.Fatalf("capacity-2 table reissued id %d; want %d", id2, id)
	}
}

func TestRotatingCursorAvoidsImmediateReuse(t *testing.T) {
	tbl := New[int](8)
	first, ok := tbl.Allocate()
	if !ok {
		t.Fatal("allocate failed")
	}
	if _, ok := tbl.TakeAndClear(first); !ok {
		t.Fatal("TakeAndClear failed")
	}
	second, ok := tbl.Allocate()
	if !ok {
		t.Fatal("allocate failed")
	}
	if second == first {
		t.Fatalf("cursor reissued id %d immediately after release", first)
	}
}

func TestTinyCapacityFallsBack(t *testing.T) {
	tbl := New[int](1)
	if tbl.Capacity() != DefaultCapacity {
		t.Fatalf("capacity = %d; want %d", tbl.Capacity(), DefaultCapacity)
	}
	tbl = New[int](0)
	if tbl.Capacity() != DefaultCapacity {
		t.Fatalf("capacity = %d; want %d", tbl.Capacity(), DefaultCapacity)
	}
}
