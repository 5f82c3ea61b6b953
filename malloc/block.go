// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// This file holds the named helpers for block/footer/neighbour address
// arithmetic. Not all such arithmetic goes through them: coalesce computes
// the preceding block's header address inline from its footer size, and the
// bootstrap, epilogue, firstBlock and free-list link code compute their word
// offsets directly.

// footerOf returns the address of the footer word of the block of size
// bytes starting at block.
func footerOf(block, size int64) int64 { return block + size - wordSize }

// payloadOf returns the address of the payload of an allocated block,
// or equivalently the address of the prev-link word of a free block.
func payloadOf(block int64) int64 { return block + wordSize }

// blockOf is the inverse of payloadOf: it recovers a block's header address
// from a payload pointer returned by Allocate.
func blockOf(payload int64) int64 { return payload - wordSize }

// nextOf returns the address of the block immediately following the block
// of size bytes starting at block. For the current top block, this is the
// epilogue header.
func nextOf(block, size int64) int64 { return block + size }

// prevFooterOf returns the address of the footer word belonging to the
// block immediately preceding block. For the first real block, this is the
// prologue footer.
func prevFooterOf(block int64) int64 { return block - wordSize }
