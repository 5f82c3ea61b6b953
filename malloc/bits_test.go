// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "testing"

func TestPackExtractRoundTrip(t *testing.T) {
	for _, size := range []int64{0, 16, 32, 48, 4096, 1 << 20} {
		for _, alloc := range []bool{true, false} {
			w := pack(size, alloc)
			if g, e := extractSize(w), size; g != e {
				t.Fatalf("size(%d,%t): got %d want %d", size, alloc, g, e)
			}
			if g, e := extractAlloc(w), alloc; g != e {
				t.Fatalf("alloc(%d,%t): got %t want %t", size, alloc, g, e)
			}
		}
	}
}

func TestPackRejectsMisaligned(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("pack(17, ...) did not panic")
		}
	}()
	pack(17, true)
}

func TestRoundUp(t *testing.T) {
	cases := []struct{ n, align, want int64 }{
		{0, 16, 0},
		{1, 16, 16},
		{15, 16, 16},
		{16, 16, 16},
		{17, 16, 32},
		{2000, 16, 2000},
		{2001, 16, 2016},
	}
	for _, c := range cases {
		if g := roundUp(c.n, c.align); g != c.want {
			t.Errorf("roundUp(%d, %d) = %d, want %d", c.n, c.align, g, c.want)
		}
	}
}
