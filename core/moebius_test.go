package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sylvestre/num-prime/core"
)

func TestMoebiusMuScenarios(t *testing.T) {
	require.Equal(t, -1, core.MoebiusMu(30))
	require.Equal(t, 0, core.MoebiusMu(1024))
}

func TestMoebiusMuFirst20(t *testing.T) {
	want := []int{1, -1, -1, 0, -1, 1, -1, 0, 0, 1, -1, 0, -1, 1, 1, 0, -1, 0, -1, 0}
	for n := 1; n <= 20; n++ {
		require.Equal(t, want[n-1], core.MoebiusMu(uint64(n)), "mu(%d)", n)
	}
}

func TestMoebiusMuPanicsOnZero(t *testing.T) {
	require.Panics(t, func() { core.MoebiusMu(0) })
}

func TestMoebiusMuAgreesAboveTable(t *testing.T) {
	// squarefree with seven prime factors above the packed-table cutoff.
	require.Equal(t, -1, core.MoebiusMu(2*3*5*7*11*13*17))
	// 4 | n always yields 0.
	require.Equal(t, 0, core.MoebiusMu(1000))
}

func TestIsSquareFree64(t *testing.T) {
	require.True(t, core.IsSquareFree64(30))
	require.True(t, core.IsSquareFree64(2*3*5*7*11*13*17))
	require.False(t, core.IsSquareFree64(1024))
	require.False(t, core.IsSquareFree64(12)) // 12 = 2^2 * 3
}
