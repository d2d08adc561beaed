package core

import "math/big"

// BigModArith provides arbitrary-precision modular arithmetic, in the
// shape of ring/int.go's thin big.Int wrapper: every operation sets the
// receiver to the requested value and returns it, so calls can be
// chained the way ring.Int's Add/Sub/Mul/Exp are.
//
// Per spec §4.1, when the modulus and the operands all fit in 64 bits
// they are downcast and routed through the uint64 kernel instead of
// paying for arbitrary-precision arithmetic on numbers that don't need
// it; an operand wider than 64 bits takes the big.Int path even when the
// modulus fits.
type BigModArith struct {
	Value big.Int
}

// NewBigModArith returns a zero-valued BigModArith.
func NewBigModArith() *BigModArith { return &BigModArith{} }

func fitsUint64(m *big.Int) bool {
	return m.Sign() > 0 && m.IsUint64()
}

// AddMod sets i to (a+b) mod m and returns i.
func (i *BigModArith) AddMod(a, b, m *big.Int) *BigModArith {
	if fitsUint64(m) && a.IsUint64() && b.IsUint64() {
		i.Value.SetUint64(addMod64(a.Uint64(), b.Uint64(), m.Uint64()))
		return i
	}
	i.Value.Add(a, b)
	i.Value.Mod(&i.Value, m)
	return i
}

// SubMod sets i to (a-b) mod m and returns i.
func (i *BigModArith) SubMod(a, b, m *big.Int) *BigModArith {
	if fitsUint64(m) && a.IsUint64() && b.IsUint64() {
		i.Value.SetUint64(subMod64(a.Uint64(), b.Uint64(), m.Uint64()))
		return i
	}
	i.Value.Sub(a, b)
	i.Value.Mod(&i.Value, m)
	return i
}

// MulMod sets i to (a*b) mod m and returns i.
func (i *BigModArith) MulMod(a, b, m *big.Int) *BigModArith {
	if fitsUint64(m) && a.IsUint64() && b.IsUint64() {
		i.Value.SetUint64(mulMod64(a.Uint64(), b.Uint64(), m.Uint64()))
		return i
	}
	i.Value.Mul(a, b)
	i.Value.Mod(&i.Value, m)
	return i
}

// PowMod sets i to a^e mod m and returns i.
func (i *BigModArith) PowMod(a, e, m *big.Int) *BigModArith {
	if fitsUint64(m) && a.IsUint64() && e.IsUint64() {
		i.Value.SetUint64(powMod64(a.Uint64(), e.Uint64(), m.Uint64()))
		return i
	}
	i.Value.Exp(a, e, m)
	return i
}

// InvMod sets i to a^-1 mod m and reports whether the inverse exists.
func (i *BigModArith) InvMod(a, m *big.Int) (*BigModArith, bool) {
	if fitsUint64(m) && a.IsUint64() {
		r, ok := invMod64(a.Uint64(), m.Uint64())
		if !ok {
			return i, false
		}
		i.Value.SetUint64(r)
		return i, true
	}
	r := i.Value.ModInverse(a, m)
	return i, r != nil
}

// JacobiBig returns the Jacobi symbol (a/n) for odd positive n.
func JacobiBig(a, n *big.Int) int {
	return big.Jacobi(a, n)
}
