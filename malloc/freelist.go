// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// The free list is a single doubly linked list threaded through the payload
// bytes of free blocks: offset+8 holds the prev link, offset+16 the next
// link, both addresses of other free blocks, 0 meaning "no such neighbour".
// Insertion is always at the head (LIFO), so Allocate's first-fit scan sees
// the most recently freed blocks first.
//
// The link words only have this meaning while a block is free. Once handed
// out by Allocate they are ordinary payload bytes and must not be read as
// links - every call site here is only ever reached with a block known to
// be on the list.

func (a *Allocator) prevLink(block int64) int64 { return int64(a.heap.ReadWord(payloadOf(block))) }
func (a *Allocator) nextLink(block int64) int64 {
	return int64(a.heap.ReadWord(payloadOf(block) + wordSize))
}

func (a *Allocator) setPrevLink(block, v int64) { a.heap.WriteWord(payloadOf(block), uint64(v)) }
func (a *Allocator) setNextLink(block, v int64) {
	a.heap.WriteWord(payloadOf(block)+wordSize, uint64(v))
}

// insert prepends block to the free list in O(1).
func (a *Allocator) insert(block int64) {
	a.setPrevLink(block, 0)
	a.setNextLink(block, a.freeHead)
	if a.freeHead != 0 {
		a.setPrevLink(a.freeHead, block)
	}
	a.freeHead = block
}

// remove splices block out of the free list in O(1). It does not touch
// block's own link words; the caller is about to either overwrite them
// (allocation) or they become irrelevant (absorbed by coalesce).
//
// remove is not idempotent: block MUST currently be on the free list.
func (a *Allocator) remove(block int64) {
	prev := a.prevLink(block)
	next := a.nextLink(block)
	if prev != 0 {
		a.setNextLink(prev, next)
	} else {
		a.freeHead = next
	}
	if next != 0 {
		a.setPrevLink(next, prev)
	}
}

// findFit returns the first free-list block whose size is >= asize, or 0 if
// none qualifies. Traversal order is free-list (LIFO) order, not address
// order.
func (a *Allocator) findFit(asize int64) int64 {
	for b := a.freeHead; b != 0; b = a.nextLink(b) {
		if extractSize(a.heap.ReadWord(b)) >= asize {
			return b
		}
	}
	return 0
}
