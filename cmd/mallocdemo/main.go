// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mallocdemo drives an Allocator through a sequence of random allocate and
// release calls and reports the resulting heap shape. It exists to make the
// allocator's behaviour visible on the command line; it is not a benchmark.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/cznic/malloclab/malloc"
)

var (
	oN      = flag.Int("n", 200, "number of allocate/release cycles to run")
	oMax    = flag.Int("max", 512, "maximum payload size in bytes")
	oSeed   = flag.Int64("seed", 1, "PRNG seed")
	oVerify = flag.Bool("verify", true, "run Verify after every cycle")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	heap := malloc.NewMemHeap()
	a, err := malloc.New(heap)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(*oSeed))
	live := make([]int64, 0, *oN)

	for i := 0; i < *oN; i++ {
		if len(live) > 0 && rng.Intn(2) == 0 {
			j := rng.Intn(len(live))
			a.Release(live[j])
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]
		} else {
			n := int64(rng.Intn(*oMax) + 1)
			p, err := a.Allocate(n)
			if err != nil {
				log.Printf("cycle %d: allocate(%d) failed: %v", i, n, err)
				continue
			}
			live = append(live, p)
		}

		if *oVerify {
			if !a.Verify(func(err error) bool {
				log.Printf("cycle %d: %v", i, err)
				return true
			}) {
				log.Fatalf("cycle %d: heap is corrupt", i)
			}
		}
	}

	_, stats := a.Stats()
	log.Printf("final: %d live allocations, %d bytes allocated, %d bytes free across %d blocks",
		len(live), stats.AllocBytes, stats.FreeBytes, stats.FreeCount)
}
