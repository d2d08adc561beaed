// Package factorization extends the core package's uint64-only kernel
// to arbitrary-precision *big.Int inputs, for callers working with RSA
// moduli or other numbers beyond 64 bits. Only primality testing is
// guaranteed correct and complete at this width; IsPrime falls back to
// big.Int's own Miller-Rabin/Baillie-PSW ProbablyPrime once an operand no
// longer fits in a uint64 (the deterministic core.IsPrime64 path only
// covers the full 64-bit range). Factorization itself is best-effort
// above 64 bits: GetFactorPollardRho and GetFactorECM can fail to find a
// factor of a hard semiprime and the caller should be prepared to retry
// with a different curve or seed.
package factorization

import (
	"math"
	"math/big"

	"github.com/sylvestre/num-prime/core"
)

// IsPrime reports whether n is prime. Operands that fit in a uint64 are
// routed through the deterministic core.IsPrime64; larger operands fall
// back to big.Int's probabilistic ProbablyPrime, run at a high enough
// round count that a composite slipping through is not a practical
// concern.
func IsPrime(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	if n.IsUint64() {
		return core.IsPrime64(n.Uint64())
	}
	return n.ProbablyPrime(32)
}

// GetFactors returns the prime factorization of n as a flat slice with
// repeats for multiplicity, in ascending order. n must be >= 1; GetFactors
// panics otherwise. Below 2^64 it delegates to core.Factors64; above that
// it recursively splits composite residuals with GetFactorPollardRho,
// falling back to GetFactorECM when Pollard rho stalls.
func GetFactors(n *big.Int) []*big.Int {
	if n.Sign() <= 0 {
		panic("factorization: GetFactors requires n >= 1")
	}
	if n.IsUint64() {
		fm := core.Factors64(n.Uint64(), core.NewRNG())
		out := make([]*big.Int, 0, len(fm))
		for _, f := range fm {
			for i := 0; i < f.Multiplity; i++ {
				out = append(out, new(big.Int).SetUint64(f.Prime))
			}
		}
		return out
	}

	one := big.NewInt(1)
	if n.Cmp(one) == 0 {
		return nil
	}

	var out []*big.Int
	stack := []*big.Int{new(big.Int).Set(n)}
	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if m.Cmp(one) == 0 {
			continue
		}
		if IsPrime(m) {
			out = append(out, m)
			continue
		}

		d := GetFactorPollardRho(m)
		if d == nil {
			d = GetFactorECM(m)
		}
		q := new(big.Int).Div(m, d)
		stack = append(stack, d, q)
	}

	sortBigInts(out)
	return out
}

func sortBigInts(xs []*big.Int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1].Cmp(xs[j]) > 0; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// GetFactorPollardRho searches for a non-trivial divisor of composite n
// using Floyd's tortoise-and-hare cycle detection in Pollard's rho over
// f(x) = x^2 + c mod n, operating on math/big.Int since n may exceed 64
// bits. It returns nil if repeated attempts with fresh parameters fail to
// split n.
func GetFactorPollardRho(n *big.Int) *big.Int {
	if n.Bit(0) == 0 {
		return big.NewInt(2)
	}

	one := big.NewInt(1)
	for attempt := int64(1); attempt <= 64; attempt++ {
		c := big.NewInt(attempt)
		x := big.NewInt(2)
		y := big.NewInt(2)
		d := big.NewInt(1)

		f := func(v *big.Int) *big.Int {
			r := new(big.Int).Mul(v, v)
			r.Add(r, c)
			r.Mod(r, n)
			return r
		}

		for d.Cmp(one) == 0 {
			x = f(x)
			y = f(f(y))
			diff := new(big.Int).Sub(x, y)
			diff.Abs(diff)
			if diff.Sign() == 0 {
				break
			}
			d.GCD(nil, nil, diff, n)
		}

		if d.Cmp(one) > 0 && d.Cmp(n) < 0 {
			return d
		}
	}
	return nil
}

// GetFactorECM searches for a non-trivial divisor of composite n via
// Lenstra's elliptic curve method: it repeatedly samples a random
// Weierstrass curve and point over Z/nZ and multiplies the point by a
// smooth bound B!-like product, hoping the point addition chain hits a
// modular inverse that doesn't exist mod n — exposing a factor via gcd.
// It returns nil after a bounded number of curves fail to split n.
func GetFactorECM(n *big.Int) *big.Int {
	bound := ecmBound(n)

	for curve := 0; curve < 64; curve++ {
		w, g, ok := newRandomWeierstrassCurve(n)
		if !ok {
			continue
		}

		p := g
		var gcd *big.Int
		for k := int64(2); k <= bound; k++ {
			var stop bool
			p, gcd, stop = w.checkThenMul(big.NewInt(k), p)
			if stop {
				break
			}
		}
		if gcd != nil && gcd.Cmp(big.NewInt(1)) > 0 && gcd.Cmp(n) < 0 {
			return gcd
		}
	}
	return nil
}

// ecmBound mirrors ring/ecm.go's smoothness bound
// exp(sqrt(2*ln(N)*ln(ln(N)))), the standard ECM stage-1 heuristic, as a
// small enough int64 to drive the multiplication loop.
func ecmBound(n *big.Int) int64 {
	bits := float64(n.BitLen())
	lnN := bits * math.Ln2
	lnlnN := math.Log(lnN)
	if lnlnN <= 0 {
		return 2
	}
	b := math.Exp(math.Sqrt(2*lnN*lnlnN)) + 0.5
	if b < 2 {
		b = 2
	}
	if b > 1_000_000 {
		b = 1_000_000
	}
	return int64(b)
}
