// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "fmt"

// A ErrINVAL is returned when a caller-supplied argument is invalid: a
// negative size passed to Allocate, or an Extend size that MemHeap cannot
// honour. Release does not validate its pointer and never reports ErrINVAL.
type ErrINVAL struct {
	Src string
	Arg interface{}
}

func (e *ErrINVAL) Error() string {
	return fmt.Sprintf("%s: invalid argument %v", e.Src, e.Arg)
}

// A ErrOOM is returned when the heap provider refuses to grow the heap any
// further. The allocator's visible state is left unchanged.
type ErrOOM struct {
	Requested int64
}

func (e *ErrOOM) Error() string {
	return fmt.Sprintf("malloc: heap provider refused to extend by %d bytes", e.Requested)
}

// A ErrInit is returned by New when the bootstrap heap_extend call fails.
// New returns a nil Allocator together with it.
type ErrInit struct {
	Err error
}

func (e *ErrInit) Error() string {
	return fmt.Sprintf("malloc: bootstrap failed: %v", e.Err)
}

// A ErrCorrupt is reported by Verify when a structural invariant of the heap
// does not hold.
type ErrCorrupt struct {
	Msg  string
	Addr int64
}

func (e *ErrCorrupt) Error() string {
	return fmt.Sprintf("malloc: corrupt heap at %#x: %s", e.Addr, e.Msg)
}
