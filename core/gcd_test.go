package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sylvestre/num-prime/core"
)

func TestSqufofPerfectSquareShortCircuit(t *testing.T) {
	// spec §9 flags SQUFOF looping forever on a perfect square without a
	// pre-check; 1234567^2 exercises that guard directly.
	n := uint64(1234567) * 1234567
	d, ok := core.Squfof(n, 1)
	require.True(t, ok)
	require.Equal(t, uint64(1234567), d)
}

func TestSqufofFindsFactor(t *testing.T) {
	n := uint64(5591617) * 6292343
	found := false
	for _, mult := range core.SqufofMultipliers {
		if d, ok := core.Squfof(n, mult); ok {
			require.True(t, d == 5591617 || d == 6292343)
			found = true
			break
		}
	}
	require.True(t, found)
}

func TestPollardRhoEvenInput(t *testing.T) {
	d, ok := core.PollardRho(100, 2, 1)
	require.True(t, ok)
	require.Equal(t, uint64(2), d)
}
