package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/sylvestre/num-prime/core"
)

func factorMap(t *testing.T, n uint64) map[uint64]int {
	t.Helper()
	got := core.Factors64(n, core.NewRNG())
	out := make(map[uint64]int, len(got))
	for _, f := range got {
		out[f.Prime] = f.Multiplity
	}
	return out
}

func TestFactors64Scenarios(t *testing.T) {
	require.Equal(t, map[uint64]int{3: 2, 3607: 1, 3803: 1}, factorMap(t, 123456789))
	require.Equal(t, map[uint64]int{2_071_723: 1, 5_363_222_357: 1}, factorMap(t, 11_111_111_111_111_111))
}

func TestFactors64One(t *testing.T) {
	got := core.Factors64(1, core.NewRNG())
	require.Empty(t, got)
}

func TestFactors64PanicsOnZero(t *testing.T) {
	require.Panics(t, func() { core.Factors64(0, core.NewRNG()) })
}

func TestFactors64Product(t *testing.T) {
	for _, n := range []uint64{2, 4, 97, 123456789, 999_999_999_989} {
		got := core.Factors64(n, core.NewRNG())
		require.Equal(t, n, got.Product())
	}
}

func TestFactors64PrimeInput(t *testing.T) {
	p := uint64(2305843009213693951) // 2^61 - 1, a Mersenne prime
	require.True(t, core.IsPrime64(p))
	require.Equal(t, map[uint64]int{p: 1}, factorMap(t, p))
}

func TestFactors64MatchesOrderedExpectation(t *testing.T) {
	want := core.FactorMap{{Prime: 3, Multiplity: 2}, {Prime: 3607, Multiplity: 1}, {Prime: 3803, Multiplity: 1}}
	got := core.Factors64(123456789, core.NewRNG())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Factors64 mismatch (-want +got):\n%s", diff)
	}
}

func TestFactors64RandomProperties(t *testing.T) {
	// spec §8: for 100 random 64-bit T, the product of Factors64(T)
	// equals T and every key is prime.
	seed := uint64(0x2545f4914f6cdd1d)
	next := func() uint64 {
		seed ^= seed << 13
		seed ^= seed >> 7
		seed ^= seed << 17
		return seed
	}

	rng := core.NewRNG()
	for i := 0; i < 100; i++ {
		n := next()
		if n == 0 {
			n = 1
		}
		got := core.Factors64(n, rng)
		require.Equal(t, n, got.Product(), "n=%d", n)
		for _, f := range got {
			require.True(t, core.IsPrime64(f.Prime), "n=%d prime=%d", n, f.Prime)
		}
	}
}
