// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "testing"

func TestVerifyDetectsAdjacentFreeBlocks(t *testing.T) {
	a, h := newTestAllocator(t)

	// Manufacture invariant 5's violation by hand: split the initial
	// chunk into two free blocks without going through coalesce.
	first := a.firstBlock()
	a.remove(first)
	h.WriteWord(first, pack(64, false))
	h.WriteWord(footerOf(first, 64), pack(64, false))
	second := nextOf(first, 64)
	h.WriteWord(second, pack(chunkSize-64, false))
	h.WriteWord(footerOf(second, chunkSize-64), pack(chunkSize-64, false))
	a.insert(second)
	a.insert(first)

	if a.Verify(nil) {
		t.Fatal("Verify should have flagged two adjacent free blocks")
	}
}

func TestVerifyDetectsFreeListMembershipMismatch(t *testing.T) {
	a, _ := newTestAllocator(t)

	// A block whose alloc bit is clear but that was never linked into
	// the free list violates invariant 6.
	a.freeHead = 0

	if a.Verify(nil) {
		t.Fatal("Verify should have flagged the orphaned free block")
	}
}

func TestCheckIsTrueOnFreshHeap(t *testing.T) {
	a, _ := newTestAllocator(t)
	if !a.Check() {
		t.Fatal("Check() should be true on a freshly initialised heap")
	}
}
