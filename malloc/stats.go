// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "github.com/cznic/sortutil"

// A BlockInfo describes one block of the heap as seen by Stats, in address
// order.
type BlockInfo struct {
	Addr  int64
	Size  int64
	Alloc bool
}

// AllocStats summarizes the result of a Stats walk. FreeAddrs lists the
// addresses of free blocks in ascending address order - the free list
// itself is threaded in LIFO insertion order, which is the right order to
// scan for first-fit but not a useful one to print in a report.
type AllocStats struct {
	TotalBytes int64
	AllocBytes int64
	FreeBytes  int64
	AllocCount int
	FreeCount  int
	FreeAddrs  []int64
}

// Stats walks the implicit block list in address order and returns a
// BlockInfo per block together with the aggregate AllocStats.
func (a *Allocator) Stats() ([]BlockInfo, AllocStats) {
	var blocks []BlockInfo
	var stats AllocStats

	for b := a.firstBlock(); ; {
		header := a.heap.ReadWord(b)
		size := extractSize(header)
		if size == 0 {
			break
		}

		alloc := extractAlloc(header)
		blocks = append(blocks, BlockInfo{Addr: b, Size: size, Alloc: alloc})
		stats.TotalBytes += size
		if alloc {
			stats.AllocBytes += size
			stats.AllocCount++
		} else {
			stats.FreeBytes += size
			stats.FreeCount++
		}

		b = nextOf(b, size)
	}

	for b := a.freeHead; b != 0; b = a.nextLink(b) {
		stats.FreeAddrs = append(stats.FreeAddrs, b)
	}
	sortutil.Int64Slice(stats.FreeAddrs).Sort()

	return blocks, stats
}
