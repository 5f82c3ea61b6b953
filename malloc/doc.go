// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package malloc implements a general purpose dynamic memory allocator over a
single contiguous, monotonically growable heap region.

The allocator services requests for arbitrarily sized payloads and reclaims
released payloads, reusing freed space to satisfy future requests. It is not
safe for concurrent use: a Allocator is designed for consumption by a single
goroutine, or via an externally held mutex.

Heap layout

The heap is a linear, contiguous sequence of blocks, bracketed at both ends
by a zero-size allocated sentinel (the prologue footer and the epilogue
header). Every block, including the sentinels, carries a header word at its
first 8 bytes and - for non-sentinel blocks - an identical footer word at its
last 8 bytes:

	+--------++----------...----------++--------+
	| header ||        payload        || footer |
	+--------++----------...----------++--------+
	  8 bytes          size-16            8 bytes

A header/footer word packs two fields:

	bits [63:4]  block size in bytes, always a multiple of 16
	bits [3:1]   reserved, always zero
	bit  [0]     allocation flag: 1 allocated, 0 free

The footer of block N and the header of block N+1 are adjacent; this boundary
tag layout is what lets coalesce inspect either neighbour of a block in O(1)
without walking the heap.

Free blocks

A freed block's payload is overlaid with two link words (prev, next) forming
an explicit, doubly linked free list. List order is LIFO: newly freed blocks
are linked in at the head. The link words are only meaningful while the block
is free; once the block is handed back out by Allocate they revert to being
ordinary payload bytes.

Placement and coalescing

Allocate locates a free block with a first-fit scan of the free list,
extending the heap when no candidate is large enough, and splits off any
residue of at least the minimum block size. Release marks a block free and
immediately coalesces it with any free neighbour, so that no two adjacent
free blocks ever coexist.

No size-class segregation, best-fit, or address-ordered placement is
implemented; the heap never shrinks; there is no thread safety.
*/
package malloc
