package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sylvestre/num-prime/core"
)

func TestNextPrevPrimeScenarios(t *testing.T) {
	got, err := core.NextPrime(999983)
	require.NoError(t, err)
	require.Equal(t, uint64(1000003), got)

	got, err = core.PrevPrime(10000000)
	require.NoError(t, err)
	require.Equal(t, uint64(9999991), got)
}

func TestPrevPrimeBelowRange(t *testing.T) {
	_, err := core.PrevPrime(2)
	require.ErrorIs(t, err, core.ErrBelowRange)
	_, err = core.PrevPrime(1)
	require.ErrorIs(t, err, core.ErrBelowRange)
}

func TestNextPrimeOverflow(t *testing.T) {
	_, err := core.NextPrime(^uint64(0))
	require.ErrorIs(t, err, core.ErrOverflow)
}

func TestNextPrimeSmall(t *testing.T) {
	got, err := core.NextPrime(0)
	require.NoError(t, err)
	require.Equal(t, uint64(2), got)

	got, err = core.NextPrime(2)
	require.NoError(t, err)
	require.Equal(t, uint64(3), got)
}
