package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sylvestre/num-prime/core"
)

func TestIsPrime64Boundaries(t *testing.T) {
	require.False(t, core.IsPrime64(0))
	require.False(t, core.IsPrime64(1))
	require.True(t, core.IsPrime64(2))
	require.False(t, core.IsPrime64(4))
	require.True(t, core.IsPrime64(97))
}

func TestIsPrime64Scenarios(t *testing.T) {
	require.True(t, core.IsPrime64(13_756_265_695_458_089_029))
	require.False(t, core.IsPrime64(8_651_776_913_431))
}

func TestIsPrime64KnownPrimesAndComposites(t *testing.T) {
	require.True(t, core.IsPrime64(0xffffffffffffffc5)) // 2^64 - 59
	require.False(t, core.IsPrime64(0xffffffffffffffff)) // 2^64 - 1, not prime
}
