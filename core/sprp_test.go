package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sylvestre/num-prime/core"
)

func TestIsSPRP(t *testing.T) {
	require.True(t, core.IsSPRP(97, 2))
	require.False(t, core.IsSPRP(91, 2)) // 91 = 7*13, base 2 exposes compositeness
}

func TestRNGProducesVaryingOutput(t *testing.T) {
	rng := core.NewRNG()
	a := rng.Uint64()
	b := rng.Uint64()
	require.NotEqual(t, a, b)
}

func TestKeyedRNGDeterministic(t *testing.T) {
	key := []byte("a fixed 32 byte key for replay!!")
	r1 := core.NewKeyedRNG(key)
	r2 := core.NewKeyedRNG(key)
	require.Equal(t, r1.Uint64(), r2.Uint64())
	require.Equal(t, r1.Uint64(), r2.Uint64())
}
