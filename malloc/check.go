// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// firstBlock returns the address of the first non-sentinel block: the
// prologue footer occupies the first word of the heap, so real blocks start
// one word in.
func (a *Allocator) firstBlock() int64 { return a.heap.Lo() + wordSize }

// Verify performs one implicit-list pass and one free-list pass over the
// heap, checking the structural invariants documented in §4.7:
//
//   - header == footer for every non-sentinel block
//   - every block lies inside [heap_lo, heap_hi]
//   - no two adjacent free blocks
//   - every free-list node has its alloc bit clear
//   - every block with its alloc bit clear appears exactly once in the free list
//   - prev/next links are mutually consistent
//
// Each violation found is reported to log, which may return false to stop
// the scan early. Verify returns true iff no violation was found. Passing a
// nil log simply suppresses diagnostics.
func (a *Allocator) Verify(log func(error) bool) bool {
	ok := true
	report := func(err error) bool {
		ok = false
		if log == nil {
			return true
		}
		return log(err)
	}

	onFreeList := make(map[int64]bool)
	for b := a.freeHead; b != 0; b = a.nextLink(b) {
		onFreeList[b] = true
	}

	seen := make(map[int64]bool)
	prevWasFree := false
	lo, hi := a.heap.Lo(), a.heap.Hi()
	for b := a.firstBlock(); ; {
		header := a.heap.ReadWord(b)
		size := extractSize(header)
		if size == 0 {
			break // epilogue reached
		}

		if b < lo || footerOf(b, size) > hi {
			if !report(&ErrCorrupt{"block out of heap bounds", b}) {
				return false
			}
		}

		footer := a.heap.ReadWord(footerOf(b, size))
		if header != footer {
			if !report(&ErrCorrupt{"header/footer mismatch", b}) {
				return false
			}
		}

		free := !extractAlloc(header)
		if free && prevWasFree {
			if !report(&ErrCorrupt{"two adjacent free blocks", b}) {
				return false
			}
		}

		if free != onFreeList[b] {
			if !report(&ErrCorrupt{"free bit disagrees with free-list membership", b}) {
				return false
			}
		}
		delete(onFreeList, b)

		seen[b] = true
		prevWasFree = free
		b = nextOf(b, size)
	}

	for b := range onFreeList {
		if !report(&ErrCorrupt{"free-list node unreachable from implicit list", b}) {
			return false
		}
	}

	var prevAddr int64
	for b := a.freeHead; b != 0; b = a.nextLink(b) {
		if !seen[b] {
			if !report(&ErrCorrupt{"free-list node is not a valid block", b}) {
				return false
			}
		}
		if extractAlloc(a.heap.ReadWord(b)) {
			if !report(&ErrCorrupt{"free-list node has its alloc bit set", b}) {
				return false
			}
		}
		if a.prevLink(b) != prevAddr {
			if !report(&ErrCorrupt{"free-list prev link inconsistent", b}) {
				return false
			}
		}
		prevAddr = b
	}

	return ok
}

// Check is the spec-level check() entry point: a terse bool result for
// callers that just want a go/no-go answer.
func (a *Allocator) Check() bool { return a.Verify(nil) }
