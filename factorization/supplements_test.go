package factorization_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sylvestre/num-prime/factorization"
)

func TestIsSafePrime(t *testing.T) {
	for _, p := range []int64{5, 7, 11, 23, 47} {
		require.True(t, factorization.IsSafePrime(big.NewInt(p)), "p=%d", p)
	}
	require.False(t, factorization.IsSafePrime(big.NewInt(13)))
	require.False(t, factorization.IsSafePrime(big.NewInt(9)))
}

func TestPrimorial(t *testing.T) {
	require.Equal(t, big.NewInt(1), factorization.Primorial(0))
	require.Equal(t, big.NewInt(2), factorization.Primorial(1))
	require.Equal(t, big.NewInt(30), factorization.Primorial(3))
	require.Equal(t, big.NewInt(2310), factorization.Primorial(5))
}

func TestIsSquareFree(t *testing.T) {
	require.True(t, factorization.IsSquareFree(big.NewInt(30)))
	require.True(t, factorization.IsSquareFree(big.NewInt(1)))
	require.False(t, factorization.IsSquareFree(big.NewInt(1024)))
	require.False(t, factorization.IsSquareFree(big.NewInt(12)))
}
