package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sylvestre/num-prime/core"
)

func TestPrimorialScenarios(t *testing.T) {
	require.Equal(t, uint64(1), core.Primorial(0))
	require.Equal(t, uint64(2), core.Primorial(1))
	require.Equal(t, uint64(6), core.Primorial(2))
	require.Equal(t, uint64(30), core.Primorial(3))
	require.Equal(t, uint64(210), core.Primorial(4))
	require.Equal(t, uint64(2310), core.Primorial(5))
}

func TestPrimorialPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { core.Primorial(-1) })
}

func TestPrimorialPanicsOnOverflow(t *testing.T) {
	// the first 16 primes multiply past 2^64 while staying within the table.
	require.Panics(t, func() { core.Primorial(16) })
}
