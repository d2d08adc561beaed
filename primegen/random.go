package primegen

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/sylvestre/num-prime/core"
	"github.com/sylvestre/num-prime/factorization"
)

// ErrInvalidBits is returned by RandomPrime when bits < 2.
var ErrInvalidBits = errors.New("primegen: bits must be >= 2")

// RandomPrime draws a uniformly random bits-bit number with the top bit
// set and walks forward from it: with core.NextPrime for widths within
// uint64 (redrawing if the walk leaves the width), or, above uint64, in
// steps of 2 from the candidate forced odd, testing each with
// factorization.IsPrime and redrawing after 2^20 steps, per spec §4.4's
// random-prime-generation requirement. It returns ErrInvalidBits for
// bits < 2.
func RandomPrime(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, ErrInvalidBits
	}
	if bits == 2 {
		return big.NewInt(3), nil
	}

	if bits <= 64 {
		lo, err := randCandidate(bits)
		if err != nil {
			return nil, err
		}
		p, err := core.NextPrime(lo.Uint64())
		if err == nil && bits64(p) <= bits {
			return new(big.Int).SetUint64(p), nil
		}
		// the walk crossed into the next bit width; retry with a fresh
		// candidate rather than returning an oversized prime.
		return RandomPrime(bits)
	}

	for {
		cand, err := randCandidate(bits)
		if err != nil {
			return nil, err
		}
		cand.SetBit(cand, 0, 1) // force odd
		for i := 0; i < 1<<20; i++ {
			if factorization.IsPrime(cand) {
				return cand, nil
			}
			cand.Add(cand, big.NewInt(2))
		}
	}
}

// RandomSafePrime draws a random safe prime of approximately the given
// bit size, per the original's gen_safe_prime: draw a candidate prime p;
// if p is itself safe (its Sophie Germain half (p-1)/2 is prime) return
// p; otherwise, if p is a Sophie Germain prime itself (2p+1 is prime),
// return 2p+1; otherwise retry with a fresh p.
func RandomSafePrime(bits int) (*big.Int, error) {
	for {
		p, err := RandomPrime(bits)
		if err != nil {
			return nil, err
		}
		sophie := new(big.Int).Rsh(p, 1)
		if factorization.IsPrime(sophie) {
			return p, nil
		}
		p2 := new(big.Int).Lsh(p, 1)
		p2.Add(p2, big.NewInt(1))
		if factorization.IsPrime(p2) {
			return p2, nil
		}
	}
}

func bits64(v uint64) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}
	return n
}

// randCandidate draws a uniform random integer in [2^(bits-1), 2^bits)
// using crypto/rand, the boundary randomness source per spec §5.
func randCandidate(bits int) (*big.Int, error) {
	n, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), uint(bits-1)))
	if err != nil {
		return nil, err
	}
	n.Add(n, new(big.Int).Lsh(big.NewInt(1), uint(bits-1)))
	return n, nil
}
