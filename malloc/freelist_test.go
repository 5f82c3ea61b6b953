// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "testing"

// freeListAddrs walks the free list from head to tail and returns the
// addresses visited, for assertions about list order.
func freeListAddrs(a *Allocator) []int64 {
	var out []int64
	for b := a.freeHead; b != 0; b = a.nextLink(b) {
		out = append(out, b)
	}
	return out
}

func TestReleasingAdjacentBlocksCoalescesToOne(t *testing.T) {
	a, _ := newTestAllocator(t)

	// Carve three same-sized, adjacent blocks out of the initial chunk and
	// release them out of address order.
	pa, _ := a.Allocate(64)
	pb, _ := a.Allocate(64)
	pc, _ := a.Allocate(64)

	a.Release(pa)
	a.Release(pc)
	a.Release(pb)

	// pa, pc, pb are adjacent in memory and all freed, so they coalesce
	// into a single block rather than three; the remaining free list
	// here should be the one resulting block.
	addrs := freeListAddrs(a)
	if len(addrs) != 1 {
		t.Fatalf("expected full coalesce back to one free block, got %v", addrs)
	}
}

func TestInsertRemoveMaintainsDoublyLinkedInvariants(t *testing.T) {
	a, _ := newTestAllocator(t)

	// Synthesize three independent free blocks by allocating and
	// releasing in an order that defeats
	// coalescing: allocate four, release the two non-adjacent ones.
	p1, _ := a.Allocate(64)
	p2, _ := a.Allocate(64)
	p3, _ := a.Allocate(64)
	p4, _ := a.Allocate(64)
	_ = p4

	a.Release(p1)
	a.Release(p3)

	b1 := blockOf(p1)
	b3 := blockOf(p3)

	addrs := freeListAddrs(a)
	if len(addrs) != 3 { // b1, b3, and the tail residue from init
		t.Fatalf("expected 3 free blocks, got %d: %v", len(addrs), addrs)
	}

	// Head should be the most recently released block, b3.
	if a.freeHead != b3 {
		t.Fatalf("freeHead = %d, want %d (LIFO)", a.freeHead, b3)
	}

	// Remove the middle-released block (b1) and check the remaining
	// links heal. b1 is briefly off-list here with its alloc bit still
	// clear, which Verify would (correctly) flag, so re-insert before
	// checking consistency.
	a.remove(b1)
	if got := freeListAddrs(a); len(got) != 2 {
		t.Fatalf("expected 2 free blocks after remove, got %d: %v", len(got), got)
	}

	// Re-insert b1 and the list should accept it back at the head.
	a.insert(b1)
	if a.freeHead != b1 {
		t.Fatalf("freeHead = %d, want %d after re-insert", a.freeHead, b1)
	}
	mustVerify(t, a)
}

func TestFindFitReturnsFirstQualifyingBlock(t *testing.T) {
	a, _ := newTestAllocator(t)
	// Only the one big initial block exists; any small request should
	// find it.
	if b := a.findFit(32); b != a.firstBlock() {
		t.Fatalf("findFit(32) = %d, want %d", b, a.firstBlock())
	}
	if b := a.findFit(chunkSize + 1); b != 0 {
		t.Fatalf("findFit(oversized) = %d, want 0", b)
	}
}
