// Package primegen provides the external-collaborator surface spec §4.4
// describes sitting on top of the core primality/factorization kernel: a
// segmented sieving buffer, analytic prime-counting bounds, gap
// statistics, and a random-prime generator.
package primegen

import (
	"github.com/sylvestre/num-prime/core"
)

// Buffer is a segmented sieve over a half-open window [lo, hi) of the
// uint64 range, built by striking out the multiples of every prime up to
// sqrt(hi) from core's small-prime table, then falling back to
// core.IsPrime64 for any prime whose square exceeds the table's reach.
// Zero value is not usable; construct with NewBuffer.
type Buffer struct {
	lo, hi uint64
	isComp []bool // isComp[i] true means lo+i is known composite
}

// NewBuffer sieves the primes in [lo, hi). It panics if hi <= lo.
func NewBuffer(lo, hi uint64) *Buffer {
	if hi <= lo {
		panic("primegen: NewBuffer requires hi > lo")
	}
	b := &Buffer{lo: lo, hi: hi, isComp: make([]bool, hi-lo)}

	mark := func(p uint64) {
		start := lo
		if start < p*p {
			start = p * p
		} else {
			start = ((lo + p - 1) / p) * p
			if start < p*p {
				start = p * p
			}
		}
		for m := start; m < hi; m += p {
			if m >= lo {
				b.isComp[m-lo] = true
			}
		}
	}

	for _, p := range core.SmallPrimes {
		if p*p >= hi {
			break
		}
		mark(p)
	}

	return b
}

// Primes returns every prime in the buffer's window, in ascending order.
func (b *Buffer) Primes() []uint64 {
	var out []uint64
	for i, composite := range b.isComp {
		n := b.lo + uint64(i)
		if n < 2 || composite {
			continue
		}
		if core.IsPrime64(n) {
			out = append(out, n)
		}
	}
	return out
}

// Contains reports whether n, which must lie in the buffer's window, is
// prime.
func (b *Buffer) Contains(n uint64) bool {
	if n < b.lo || n >= b.hi {
		panic("primegen: Contains requires n in the buffer's window")
	}
	if b.isComp[n-b.lo] {
		return false
	}
	return core.IsPrime64(n)
}
