package factorization

import "math/big"

// IsSafePrime reports whether p is a safe prime in Sophie Germain's
// sense: p and (p-1)/2 are both prime.
func IsSafePrime(p *big.Int) bool {
	if !IsPrime(p) {
		return false
	}
	sophie := new(big.Int).Rsh(p, 1)
	return IsPrime(sophie)
}

// Primorial returns the product of the first n primes (the empty
// product, 1, for n == 0).
func Primorial(n int) *big.Int {
	if n < 0 {
		panic("factorization: Primorial requires n >= 0")
	}
	result := big.NewInt(1)
	p := big.NewInt(1)
	for i := 0; i < n; i++ {
		p = nextPrimeBig(p)
		result.Mul(result, p)
	}
	return result
}

func nextPrimeBig(after *big.Int) *big.Int {
	cand := new(big.Int).Add(after, big.NewInt(1))
	for !IsPrime(cand) {
		cand.Add(cand, big.NewInt(1))
	}
	return cand
}

// IsSquareFree reports whether n has no repeated prime factor.
func IsSquareFree(n *big.Int) bool {
	last := (*big.Int)(nil)
	for _, f := range GetFactors(n) {
		if last != nil && last.Cmp(f) == 0 {
			return false
		}
		last = f
	}
	return true
}
