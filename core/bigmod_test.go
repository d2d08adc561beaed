package core_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sylvestre/num-prime/core"
)

func TestBigModArithBasics(t *testing.T) {
	m := big.NewInt(5000)
	bm := core.NewBigModArith()

	got := bm.AddMod(big.NewInt(4999), big.NewInt(2), m)
	require.Equal(t, int64(1), got.Value.Int64())

	got = bm.MulMod(big.NewInt(999), big.NewInt(1), m)
	require.Equal(t, int64(999), got.Value.Int64())
}

func TestBigModArithInvMod(t *testing.T) {
	bm := core.NewBigModArith()
	m := big.NewInt(5000)
	inv, ok := bm.InvMod(big.NewInt(999), m)
	require.True(t, ok)
	require.Equal(t, int64(3999), inv.Value.Int64())

	_, ok = bm.InvMod(big.NewInt(0), m)
	require.False(t, ok)
}

func TestBigJacobi(t *testing.T) {
	require.Equal(t, -1, core.JacobiBig(big.NewInt(19), big.NewInt(29)))
	require.Equal(t, 1, core.JacobiBig(big.NewInt(29), big.NewInt(9)))
}

func TestBigModArithBeyondUint64(t *testing.T) {
	// modulus wider than 64 bits forces the big.Int path.
	m := new(big.Int).Lsh(big.NewInt(1), 100)
	a := new(big.Int).Sub(m, big.NewInt(1))
	got := core.NewBigModArith().AddMod(a, big.NewInt(2), m)
	require.Equal(t, int64(1), got.Value.Int64())
}
