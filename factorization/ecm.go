package factorization

import (
	"crypto/rand"
	"math/big"
)

// point is an affine elliptic curve point over Z/nZ; {0,1} is the
// point at infinity, matching ring/ecm.go's representation.
type point struct {
	X, Y *big.Int
}

// weierstrass is the curve y^2 = x^3 + a*x + b mod n, generalizing
// ring/ecm.go's uint64-bounded Weierstrass to arbitrary-precision n.
type weierstrass struct {
	A, N *big.Int
}

// add adds two points on w, returning the point at infinity's
// coordinates unmodified when either operand already is one. Unlike
// ring/ecm.go's Add, failures to invert are surfaced by the caller via
// checkThenAdd rather than panicking, since a non-invertible slope is
// exactly how ECM discovers a factor.
func (w *weierstrass) add(p, q point) point {
	if p.X.Sign() == 0 && p.Y.Cmp(big.NewInt(1)) == 0 {
		return q
	}
	if q.X.Sign() == 0 && q.Y.Cmp(big.NewInt(1)) == 0 {
		return p
	}

	n := w.N
	var s *big.Int
	if p.X.Cmp(q.X) != 0 {
		num := new(big.Int).Sub(q.Y, p.Y)
		den := new(big.Int).Sub(q.X, p.X)
		den.ModInverse(den, n)
		s = new(big.Int).Mul(num, den)
	} else {
		num := new(big.Int).Mul(p.X, p.X)
		num.Mul(num, big.NewInt(3))
		num.Add(num, w.A)
		den := new(big.Int).Lsh(p.Y, 1)
		den.ModInverse(den, n)
		s = new(big.Int).Mul(num, den)
	}
	s.Mod(s, n)

	xr := new(big.Int).Mul(s, s)
	xr.Sub(xr, p.X)
	xr.Sub(xr, q.X)
	xr.Mod(xr, n)

	yr := new(big.Int).Sub(p.X, xr)
	yr.Mul(yr, s)
	yr.Sub(yr, p.Y)
	yr.Mod(yr, n)

	return point{X: xr, Y: yr}
}

// checkThenAdd mirrors ring/ecm.go's checkThenAdd: before adding, it
// computes the gcd of the slope's denominator with n. A gcd strictly
// between 1 and n means that denominator isn't invertible mod n, which
// exposes a factor; stop reports that the search should halt (either a
// factor was found, in which case gcd holds it, or the points coincide
// exactly, which the caller treats as a dead end).
func (w *weierstrass) checkThenAdd(p, q point) (r point, gcd *big.Int, stop bool) {
	n := w.N
	var den *big.Int
	if p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0 {
		den = new(big.Int).Lsh(p.Y, 1)
	} else {
		den = new(big.Int).Sub(q.X, p.X)
	}
	den.Mod(den, n)

	g := new(big.Int).GCD(nil, nil, den, n)
	if g.Cmp(big.NewInt(1)) != 0 {
		return point{}, g, true
	}
	return w.add(p, q), nil, false
}

// checkThenMul computes k*p via double-and-add, stopping early the
// moment checkThenAdd surfaces a non-trivial gcd.
func (w *weierstrass) checkThenMul(k *big.Int, p point) (q point, gcd *big.Int, stop bool) {
	q = point{X: big.NewInt(0), Y: big.NewInt(1)}
	base := p
	e := new(big.Int).Set(k)
	zero := big.NewInt(0)

	for e.Cmp(zero) > 0 {
		if e.Bit(0) == 1 {
			if q, gcd, stop = w.checkThenAdd(base, q); stop {
				return
			}
		}
		if base, gcd, stop = w.checkThenAdd(base, base); stop {
			return
		}
		e.Rsh(e, 1)
	}
	return q, nil, false
}

// newRandomWeierstrassCurve samples a random curve and point over Z/nZ,
// deducing b from the sampled point the way ring/ecm.go's
// NewRandomWeierstrassCurve does, and rejecting singular curves
// (4a^3 + 27b^2 == 0 mod n, or a shared factor between that discriminant
// and n). ok is false for such a rejected curve; the caller discards it
// and samples another, and a factor shared by the discriminant and n is
// not returned.
func newRandomWeierstrassCurve(n *big.Int) (w weierstrass, g point, ok bool) {
	a, err := rand.Int(rand.Reader, n)
	if err != nil {
		panic(err)
	}
	xg, err := rand.Int(rand.Reader, n)
	if err != nil {
		panic(err)
	}
	yg, err := rand.Int(rand.Reader, n)
	if err != nil {
		panic(err)
	}

	w = weierstrass{A: a, N: n}
	g = point{X: xg, Y: yg}

	aCube := new(big.Int).Mul(a, a)
	aCube.Mul(aCube, a)
	aCube.Lsh(aCube, 2)

	ySquare := new(big.Int).Mul(yg, yg)
	xCube := new(big.Int).Mul(xg, xg)
	xCube.Mul(xCube, xg)
	ax := new(big.Int).Mul(a, xg)
	b := new(big.Int).Sub(ySquare, xCube)
	b.Sub(b, ax)
	b.Mod(b, n)

	bSquare := new(big.Int).Mul(b, b)
	bSquare.Mul(bSquare, big.NewInt(27))

	disc := new(big.Int).Add(aCube, bSquare)
	disc.Mod(disc, n)
	if disc.Sign() == 0 {
		return w, g, false
	}

	gcd := new(big.Int).GCD(nil, nil, disc, n)
	if gcd.Cmp(big.NewInt(1)) != 0 {
		return w, g, false
	}
	return w, g, true
}
