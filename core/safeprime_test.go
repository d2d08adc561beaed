package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sylvestre/num-prime/core"
)

func TestIsSafePrime64Scenarios(t *testing.T) {
	for _, p := range []uint64{5, 7, 11, 23, 47, 59, 83} {
		require.True(t, core.IsSafePrime64(p), "p=%d", p)
	}
	// 13 is prime but (13-1)/2 = 6 is not.
	require.False(t, core.IsSafePrime64(13))
	// 9 isn't even prime.
	require.False(t, core.IsSafePrime64(9))
	require.False(t, core.IsSafePrime64(2))
	require.False(t, core.IsSafePrime64(3))
}
