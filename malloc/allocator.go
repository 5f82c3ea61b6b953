// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "github.com/cznic/mathutil"

// A Allocator is a dynamic memory allocator over a single contiguous,
// monotonically growable heap region supplied by a Provider. It is not safe
// for concurrent use and not reentrant: no method may be called while
// another is in progress on the same Allocator.
//
// The zero value is not usable; construct one with New.
type Allocator struct {
	heap     Provider
	freeHead int64 // head of the free list (the most recently inserted block still on it), or 0
}

// New bootstraps a fresh Allocator over heap. It installs the prologue
// footer and epilogue header sentinels and seeds one large free block by
// extending heap by chunkSize bytes.
//
// heap MUST be empty (Lo() > Hi()); New does not support attaching to a
// heap that already holds blocks.
func New(heap Provider) (*Allocator, error) {
	a := &Allocator{heap: heap}
	if err := a.init(); err != nil {
		return nil, &ErrInit{err}
	}
	return a, nil
}

func (a *Allocator) init() error {
	base, err := a.heap.Extend(2 * wordSize)
	if err != nil {
		return err
	}

	a.heap.WriteWord(base, pack(0, true))          // prologue footer
	a.heap.WriteWord(base+wordSize, pack(0, true)) // epilogue header

	if _, err := a.extendHeap(chunkSize); err != nil {
		return err
	}
	return nil
}

// epilogue returns the address of the current epilogue header: the last
// word of the heap.
func (a *Allocator) epilogue() int64 { return a.heap.Hi() - wordSize + 1 }

// extendHeap grows the heap by n bytes (rounded up to 16), turning the old
// epilogue header into the header of a new free block, and returns the
// (possibly coalesced) survivor block's address.
func (a *Allocator) extendHeap(n int64) (int64, error) {
	n = roundUp(n, alignment)

	base, err := a.heap.Extend(n)
	if err != nil {
		return 0, &ErrOOM{n}
	}

	// Extend appends n fresh bytes after the old top of heap; the old
	// epilogue header - the last word already in the heap - sits
	// wordSize bytes before that, and becomes the new block's header.
	block := base - wordSize
	a.writeBlock(block, n, false)
	a.heap.WriteWord(a.epilogue(), pack(0, true))

	return a.coalesce(block), nil
}

// Allocate requests a payload of n usable bytes and returns its address, or
// 0 if the request cannot be satisfied (n == 0, or the heap provider
// refuses to grow further).
func (a *Allocator) Allocate(n int64) (int64, error) {
	if n < 0 {
		return 0, &ErrINVAL{"Allocator.Allocate: negative size", n}
	}
	if n == 0 {
		return 0, nil
	}

	var asize int64
	if n <= 16 {
		asize = minBlockSize
	} else {
		asize = roundUp(n+overhead, alignment)
	}

	block := a.findFit(asize)
	if block == 0 {
		grow := mathutil.MaxInt64(chunkSize, asize)
		if _, err := a.extendHeap(grow); err != nil {
			return 0, err
		}

		block = a.findFit(asize)
		if block == 0 {
			return 0, &ErrOOM{asize}
		}
	}

	a.remove(block)
	bsize := extractSize(a.heap.ReadWord(block))
	a.writeBlock(block, bsize, true)
	a.split(block, asize)

	return payloadOf(block), nil
}

// split carves the asize-byte prefix of block off as the allocated block
// and turns any residue of at least minBlockSize into a new free block,
// coalescing it with whatever follows.
//
// block MUST already be marked allocated at its full size and already
// removed from the free list - find_fit/remove MUST run before split, or
// block would stay linked into the free list while allocated (the coalesce
// call below reads block as an allocated neighbour and never unlinks it).
func (a *Allocator) split(block, asize int64) {
	bsize := extractSize(a.heap.ReadWord(block))
	if bsize-asize < minBlockSize {
		return
	}

	a.writeBlock(block, asize, true)

	residue := nextOf(block, asize)
	a.writeBlock(residue, bsize-asize, false)
	a.coalesce(residue) // invariant 5 leaves nothing to merge; this links residue into the free list
}

// Release gives payload back to the allocator. p MUST be an address
// previously returned by Allocate and not yet released; releasing 0 is a
// no-op. Double release and release of a foreign pointer are undefined
// behaviour, per the allocator's failure semantics.
func (a *Allocator) Release(p int64) {
	if p == 0 {
		return
	}

	block := blockOf(p)
	bsize := extractSize(a.heap.ReadWord(block))
	a.writeBlock(block, bsize, false)
	a.coalesce(block)
}

// writeBlock rewrites both the header and footer of the block starting at
// addr.
func (a *Allocator) writeBlock(addr, size int64, alloc bool) {
	w := pack(size, alloc)
	a.heap.WriteWord(addr, w)
	a.heap.WriteWord(footerOf(addr, size), w)
}

// coalesce merges block with any free neighbour, inserts the surviving
// free block into the free list and returns its address. It is the sole
// place invariant 5 (no two adjacent free blocks) is re-established.
func (a *Allocator) coalesce(block int64) int64 {
	bsize := extractSize(a.heap.ReadWord(block))
	prevFooterWord := a.heap.ReadWord(prevFooterOf(block))
	prevAlloc := extractAlloc(prevFooterWord)
	nextHeaderAddr := nextOf(block, bsize)
	nextHeaderWord := a.heap.ReadWord(nextHeaderAddr)
	nextAlloc := extractAlloc(nextHeaderWord)

	switch {
	case prevAlloc && nextAlloc:
		// no neighbour to merge with

	case prevAlloc && !nextAlloc:
		nsize := extractSize(nextHeaderWord)
		a.remove(nextHeaderAddr)
		a.writeBlock(block, bsize+nsize, false)

	case !prevAlloc && nextAlloc:
		psize := extractSize(prevFooterWord)
		prev := block - psize
		a.remove(prev)
		a.writeBlock(prev, psize+bsize, false)
		block = prev

	default: // both neighbours free
		psize := extractSize(prevFooterWord)
		nsize := extractSize(nextHeaderWord)
		prev := block - psize
		a.remove(prev)
		a.remove(nextHeaderAddr)
		a.writeBlock(prev, psize+bsize+nsize, false)
		block = prev
	}

	a.insert(block)
	return block
}
