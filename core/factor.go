package core

import "sort"

// Factor is one (prime, multiplicity) pair of a factorization.
type Factor struct {
	Prime      uint64
	Multiplity int
}

// FactorMap is an ordered mapping from prime to multiplicity, as
// described in spec §3: keys are unique and iteration (ranging over the
// slice) yields primes in strictly ascending order.
type FactorMap []Factor

func (fm FactorMap) add(p uint64, e int) FactorMap {
	for i := range fm {
		if fm[i].Prime == p {
			fm[i].Multiplity += e
			return fm
		}
	}
	return append(fm, Factor{Prime: p, Multiplity: e})
}

func (fm FactorMap) sorted() FactorMap {
	sort.Slice(fm, func(i, j int) bool { return fm[i].Prime < fm[j].Prime })
	return fm
}

// Product returns the product of p^e over every entry — callers use
// this to check ∏ p^e == n.
func (fm FactorMap) Product() uint64 {
	var n uint64 = 1
	for _, f := range fm {
		for i := 0; i < f.Multiplity; i++ {
			n *= f.Prime
		}
	}
	return n
}

// Factors64 factors T >= 1 into its prime decomposition, per spec §4.3:
// strip powers of two, trial-divide by the small-prime table up to
// sqrt(T), then resolve any hard residual via Pollard rho / SQUFOF,
// re-testing every candidate sub-factor with IsPrime64. The randomness
// consumed by the Pollard rho fallback is drawn from rng.
func Factors64(t uint64, rng RNG) FactorMap {
	if t == 0 {
		panic("core: Factors64 requires t >= 1")
	}
	var result FactorMap
	if t == 1 {
		return result
	}

	if k := TrailingZeros(t); k > 0 {
		result = result.add(2, k)
		t >>= uint(k)
		if t == 1 {
			return result
		}
	} else if IsPrime64(t) {
		return result.add(t, 1)
	}

	result = tryDivide(result, &t)

	if t == 1 {
		return result.sorted()
	}

	stack := []uint64{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n == 1 {
			continue
		}
		if IsPrime64(n) {
			result = result.add(n, 1)
			continue
		}

		d := findFactor(n, rng)
		stack = append(stack, d, n/d)
	}

	return result.sorted()
}

// tryDivide strips every small prime factor (other than 2, already
// handled) out of *residual using the fast Granlund-Moller divisibility
// check, recording each prime's multiplicity, and stops once the next
// prime in the table exceeds sqrt(residual) — at that point the
// remaining residual, if > 1, is prime.
func tryDivide(result FactorMap, residual *uint64) FactorMap {
	n := *residual
	for i, p := range SmallPrimes {
		if p == 2 {
			continue
		}
		if p*p > n {
			break
		}
		pinv, plim := SmallPrimesInv[i], SmallPrimesInvLim[i]
		e := 0
		for {
			q := n * pinv
			if q > plim {
				break
			}
			n = q
			e++
		}
		if e > 0 {
			result = result.add(p, e)
		}
	}
	*residual = n
	return result
}

// findFactor looks for a single non-trivial divisor of the composite n,
// alternating Pollard rho with fresh random seeds and SQUFOF under a
// rotating multiplier, per spec §4.3's trial-count schedule.
func findFactor(n uint64, rng RNG) uint64 {
	for i := 1; ; i++ {
		if i%5 == 0 && i/5 < len(SqufofMultipliers) {
			if d, ok := Squfof(n, SqufofMultipliers[i/5]); ok {
				return d
			}
			continue
		}
		start := uint64n(rng, n)
		offset := uint64n(rng, n)
		if d, ok := PollardRho(n, start, offset); ok {
			return d
		}
	}
}
