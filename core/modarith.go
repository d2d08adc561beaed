// Package core implements the number-theoretic kernel: modular arithmetic
// over integers of varying width, deterministic primality testing on
// 64-bit integers, and 64-bit integer factorization.
//
// The kernel is stateless aside from its compile-time tables: every
// function here takes its operands by value and returns a value, with no
// shared mutable state, so every exported function is safe to call
// concurrently from any number of goroutines without synchronization.
package core

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Width is the set of fixed unsigned integer widths the generic ModArith
// kernel is monomorphized over. Uint128 and arbitrary precision are
// handled by the dedicated Uint128 and BigModArith implementations.
type Width interface {
	constraints.Unsigned
}

// AddMod returns (a+b) mod m without overflowing T, for m >= 1.
func AddMod[T Width](a, b, m T) T {
	return T(addMod64(uint64(a), uint64(b), uint64(m)))
}

// SubMod returns (a-b) mod m, for m >= 1.
func SubMod[T Width](a, b, m T) T {
	return T(subMod64(uint64(a), uint64(b), uint64(m)))
}

// MulMod returns (a*b) mod m, for m >= 1.
func MulMod[T Width](a, b, m T) T {
	return T(mulMod64(uint64(a), uint64(b), uint64(m)))
}

// PowMod returns (a^e) mod m, for m >= 1.
func PowMod[T Width](a, e, m T) T {
	return T(powMod64(uint64(a), uint64(e), uint64(m)))
}

// TrailingZeros returns k such that a = 2^k * odd. TrailingZeros(0) == 0.
func TrailingZeros[T Width](a T) int {
	if a == 0 {
		return 0
	}
	return bits.TrailingZeros64(uint64(a))
}

// InvMod returns a^-1 mod m and true, or (0, false) if gcd(a, m) != 1.
func InvMod[T Width](a, m T) (T, bool) {
	r, ok := invMod64(uint64(a), uint64(m))
	return T(r), ok
}

// Jacobi returns the Jacobi symbol (a/n) in {-1, 0, 1}. n must be odd and
// positive; violating that is a programming error, not a recoverable one.
func Jacobi[T Width](a, n T) int {
	return jacobi64(uint64(a), uint64(n))
}

// --- uint64-exact core, shared by every generic width above and by
// Uint128/BigModArith's downcast fast path. Grounded on ring/modular_
// reduction.go's BRed/MRed/CRed promote-or-split strategy: every op
// returns a canonical value in [0, m) without ever overflowing uint64.

func addMod64(a, b, m uint64) uint64 {
	if m == 0 {
		panic("core: modulus must be >= 1")
	}
	a %= m
	b %= m
	if b < m-a {
		return a + b
	}
	return a - (m - b)
}

func subMod64(a, b, m uint64) uint64 {
	if m == 0 {
		panic("core: modulus must be >= 1")
	}
	a %= m
	b %= m
	if a >= b {
		return a - b
	}
	return m - (b - a)
}

// mulMod64 computes a*b mod m. It attempts the single-word Div64 fast
// path (valid when the high word of the 128-bit product is < m) and
// falls back to shift-and-add binary multiplication via addMod64
// otherwise, per spec's 128-bit mulm overflow branch generalized down
// to 64 bits.
func mulMod64(a, b, m uint64) uint64 {
	if m == 0 {
		panic("core: modulus must be >= 1")
	}
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo % m
	}
	if hi < m {
		_, rem := bits.Div64(hi, lo, m)
		return rem
	}
	return mulModBinary64(a, b, m)
}

func mulModBinary64(a, b, m uint64) uint64 {
	var result uint64
	for b > 0 {
		if b&1 == 1 {
			result = addMod64(result, a, m)
		}
		a = addMod64(a, a, m)
		b >>= 1
	}
	return result
}

// powMod64 computes a^e mod m by right-to-left square-and-multiply.
func powMod64(a, e, m uint64) uint64 {
	if m == 0 {
		panic("core: modulus must be >= 1")
	}
	a %= m
	if e == 1 {
		return a
	}
	if e == 2 {
		return mulMod64(a, a, m)
	}
	result := uint64(1) % m
	for e > 0 {
		if e&1 == 1 {
			result = mulMod64(result, a, m)
		}
		a = mulMod64(a, a, m)
		e >>= 1
	}
	return result
}

// invMod64 runs the extended Euclidean algorithm using modular arithmetic
// to keep the running Bezout coefficient reduced mod m throughout, per
// spec §4.1.
func invMod64(a, m uint64) (uint64, bool) {
	if m == 0 {
		panic("core: modulus must be >= 1")
	}
	if m == 1 {
		return 0, true
	}
	a %= m
	lastR, r := m, a
	lastT, t := uint64(0), uint64(1)

	for r != 0 {
		q := lastR / r
		rem := lastR % r
		newT := subMod64(lastT, mulMod64(q, t, m), m)
		lastR, r = r, rem
		lastT, t = t, newT
	}

	if lastR > 1 {
		return 0, false
	}
	return lastT % m, true
}

// jacobi64 computes the Jacobi symbol (a/n) for odd positive n via the
// standard reciprocity loop described in spec §4.1.
func jacobi64(a, n uint64) int {
	if n == 0 || n%2 == 0 {
		panic("core: jacobi requires an odd positive modulus")
	}
	a %= n
	sign := 1
	for a != 0 {
		for a%2 == 0 {
			a /= 2
			if r := n % 8; r == 3 || r == 5 {
				sign = -sign
			}
		}
		a, n = n, a
		if a%4 == 3 && n%4 == 3 {
			sign = -sign
		}
		a %= n
	}
	if n == 1 {
		return sign
	}
	return 0
}
