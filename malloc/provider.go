// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "encoding/binary"

// A Provider is the heap's backing storage. It abstracts the two operations
// the allocator needs from the address space it manages: growing it, and
// reading/writing the 8-byte words that make up block headers and footers.
// A Provider is not safe for concurrent use.
type Provider interface {
	// Extend grows the heap by exactly n bytes, where n is always a
	// multiple of 16, and returns the address of the first byte of the
	// new region - the prior top of heap. It returns an error if the
	// heap cannot be grown any further; on error the heap is unchanged.
	Extend(n int64) (int64, error)

	// Lo returns the lowest currently addressable byte.
	Lo() int64

	// Hi returns the highest currently addressable byte.
	Hi() int64

	// ReadWord reads the 8-byte word at addr.
	ReadWord(addr int64) uint64

	// WriteWord writes the 8-byte word w at addr.
	WriteWord(addr int64, w uint64)
}

// A MemHeap is a Provider backed by a plain Go byte slice. It is the only
// heap provider this package ships: the allocator never needs anything more
// exotic than a single growable region of process memory.
//
// MemHeap never shrinks and never reuses freed Go memory from a prior
// Extend; callers wanting a hard ceiling for testing out-of-memory behaviour
// should set MaxBytes.
type MemHeap struct {
	buf      []byte
	MaxBytes int64 // 0 means unlimited
}

// NewMemHeap returns an empty heap ready for an Allocator's bootstrap.
func NewMemHeap() *MemHeap { return &MemHeap{} }

// Lo implements Provider.
func (h *MemHeap) Lo() int64 { return 0 }

// Hi implements Provider.
func (h *MemHeap) Hi() int64 { return int64(len(h.buf)) - 1 }

// Extend implements Provider.
func (h *MemHeap) Extend(n int64) (int64, error) {
	if n <= 0 || n&0xF != 0 {
		return 0, &ErrINVAL{"MemHeap.Extend: n must be a positive multiple of 16", n}
	}

	base := int64(len(h.buf))
	if h.MaxBytes != 0 && base+n > h.MaxBytes {
		return 0, &ErrOOM{n}
	}

	h.buf = append(h.buf, make([]byte, n)...)
	return base, nil
}

// ReadWord implements Provider.
func (h *MemHeap) ReadWord(addr int64) uint64 {
	return binary.BigEndian.Uint64(h.buf[addr : addr+wordSize])
}

// WriteWord implements Provider.
func (h *MemHeap) WriteWord(addr int64, w uint64) {
	binary.BigEndian.PutUint64(h.buf[addr:addr+wordSize], w)
}

// Bytes exposes the live payload bytes at [addr, addr+n) for the benefit of
// callers that wrote to a payload and now want to inspect it directly, e.g.
// tests exercising P6 (size honoured).
func (h *MemHeap) Bytes(addr, n int64) []byte { return h.buf[addr : addr+n] }
