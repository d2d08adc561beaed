package primegen

import (
	"math/big"
	"sort"

	"github.com/ALTree/bigfloat"

	"github.com/sylvestre/num-prime/core"
)

// PrimePiBounds returns (lower, upper) bounds on pi(x), the count of
// primes not exceeding x. Below the largest tabulated small prime it
// returns the exact count as both endpoints; above that it dispatches to
// one of several Dusart/Axler explicit estimates, switching formulas at
// the threshold each one is actually proven valid from (Dusart, "Estimates
// of some functions over primes without RH", 2010/2018; Axler 2014) —
// a wide-coefficient form is not a valid bound below its stated
// threshold, so a single pair of coefficients cannot be applied uniformly
// across every x. The bigfloat package supplies Log at arbitrary
// precision so the bound stays accurate for x far beyond float64's
// usable range.
func PrimePiBounds(x *big.Float) (lower, upper *big.Float) {
	xf, _ := x.Float64()

	maxSmall := float64(core.SmallPrimes[len(core.SmallPrimes)-1])
	if xf <= maxSmall {
		n := uint64(0)
		if xf >= 0 {
			n = uint64(xf)
		}
		idx := sort.Search(len(core.SmallPrimes), func(i int) bool { return core.SmallPrimes[i] > n })
		c := big.NewFloat(float64(idx))
		return c, c
	}

	prec := x.Prec()
	if prec == 0 {
		prec = 128
	}
	one := big.NewFloat(1).SetPrec(prec)
	lnX := bigfloat.Log(x)
	invLn := new(big.Float).Quo(one, lnX)

	switch {
	case xf >= 468049:
		// Dusart 2010, Corollary 5.3.
		denom := new(big.Float).Sub(lnX, one)
		denom.Sub(denom, invLn)
		lower = new(big.Float).Quo(x, denom)
	case xf >= 88789:
		// Dusart 2010, Corollary 5.2.
		lower = nestedInvLn(x, invLn, 1, 2)
	case xf >= 5393:
		// Dusart 2010, Corollary 5.3.
		denom := new(big.Float).Sub(lnX, one)
		lower = new(big.Float).Quo(x, denom)
	case xf >= 599:
		// Dusart 2010, Corollary 5.2.
		lower = nestedInvLn(x, invLn, 1)
	default:
		// Dusart 2010, Corollary 5.2, x > 1.
		lower = nestedInvLn(x, invLn)
	}

	switch {
	case xf >= 7398600000:
		// Axler 2014, Theorem 5.1.
		upper = nestedInvLn(x, invLn, 1, 1, 2, 7.59)
	case xf >= 2953652287:
		// Dusart 2018, Theorem 6.9.
		upper = nestedInvLn(x, invLn, 1, 1, 2.334)
	case xf >= 467345:
		// Dusart 2010, Corollary 5.3.
		denom := new(big.Float).Sub(lnX, one)
		denom.Sub(denom, new(big.Float).Mul(big.NewFloat(1.2311), invLn))
		upper = new(big.Float).Quo(x, denom)
	case xf >= 29927:
		// Dusart 2010, Corollary 5.2.
		upper = nestedInvLn(x, invLn, 1, 2.53816)
	case xf >= 5668:
		// Dusart 2010, Corollary 5.3.
		denom := new(big.Float).Sub(lnX, big.NewFloat(1.112))
		upper = new(big.Float).Quo(x, denom)
	case xf >= 148:
		// Dusart 2010, Corollary 5.2.
		upper = nestedInvLn(x, invLn, 1.2762)
	default:
		// Dusart 2010, Corollary 5.2, x > 1.
		upper = new(big.Float).Mul(big.NewFloat(1.25506), new(big.Float).Mul(x, invLn))
	}

	return lower, upper
}

// nestedInvLn evaluates x * invLn * P(invLn), where P is the Horner
// polynomial 1 + c[0]*invLn*(1 + c[1]*invLn*(... + c[len(c)-1]*invLn)),
// the nested form the Dusart/Axler pi(x) estimates are stated in. An
// empty c evaluates P to 1.
func nestedInvLn(x, invLn *big.Float, c ...float64) *big.Float {
	prec := invLn.Prec()
	acc := big.NewFloat(1).SetPrec(prec)
	for i := len(c) - 1; i >= 0; i-- {
		term := new(big.Float).Mul(big.NewFloat(c[i]), invLn)
		term.Mul(term, acc)
		acc = new(big.Float).Add(big.NewFloat(1).SetPrec(prec), term)
	}
	result := new(big.Float).Mul(x, invLn)
	result.Mul(result, acc)
	return result
}

// NthPrimeBounds returns (lower, upper) bounds on the n-th prime (n
// 1-indexed, p_1 = 2). Below the size of the small-prime table it returns
// the exact value as both endpoints; above that it dispatches to one of
// several Dusart/Axler/Robin/Rosser ln(n)+ln(ln(n)) estimates, switching
// at the threshold each is proven valid from, the same way PrimePiBounds
// does for pi(x).
func NthPrimeBounds(n uint64) (lower, upper *big.Float) {
	if n == 0 {
		z := big.NewFloat(0)
		return z, z
	}
	if n <= uint64(len(core.SmallPrimes)) {
		c := new(big.Float).SetUint64(core.SmallPrimes[n-1])
		return c, c
	}

	prec := uint(128)
	nf := new(big.Float).SetPrec(prec).SetUint64(n)
	lnN := bigfloat.Log(nf)
	lnLnN := bigfloat.Log(lnN)
	base := new(big.Float).Add(lnN, lnLnN)
	one := big.NewFloat(1).SetPrec(prec)

	xf, _ := nf.Float64()
	switch {
	case xf >= 317200:
		// Axler 2013, Theorem 4.
		lower = nthPolyCorrection(nf, lnN, -2, 11.321)
	case xf >= 3520:
		// Dusart 2018, Proposition 6.7.
		lower = nthLinearCorrection(nf, base, lnN, -2.1)
	default:
		// Rosser 1941.
		lower = new(big.Float).Mul(nf, new(big.Float).Sub(base, one))
	}

	switch {
	case xf >= 46254381:
		// Axler 2013, Theorem 1.
		upper = nthPolyCorrection(nf, lnN, -2, 10.667)
	case xf >= 8009824:
		// Axler 2013, Korollar 2.11.
		upper = nthPolyCorrection(nf, lnN, -2, 10.273)
	case xf >= 688383:
		// Dusart 2018, Proposition 6.6.
		upper = nthLinearCorrection(nf, base, lnN, -2)
	case xf >= 178974:
		// Dusart 2018, Lemma 6.5.
		upper = nthLinearCorrection(nf, base, lnN, -1.95)
	case xf >= 39017:
		// Robin 1983.
		upper = new(big.Float).Mul(nf, new(big.Float).Sub(base, big.NewFloat(0.9484)))
	case xf >= 27076:
		// Robin 1983.
		upper = nthLinearCorrection(nf, base, lnN, -1.8)
	default:
		// Rosser & Schoenfeld 1962, Theorem 3, x >= 20.
		upper = new(big.Float).Mul(nf, new(big.Float).Sub(base, big.NewFloat(0.5)))
	}

	return lower, upper
}

// nthLinearCorrection evaluates n*(ln(n)+ln(ln(n))-1+(ln(ln(n))+a)/ln(n)),
// the first-order-correction form several of the tighter nth-prime
// estimates use.
func nthLinearCorrection(n, base, lnN *big.Float, a float64) *big.Float {
	prec := n.Prec()
	t := new(big.Float).Sub(base, big.NewFloat(1).SetPrec(prec))
	lnLnN := bigfloat.Log(lnN)
	frac := new(big.Float).Add(lnLnN, big.NewFloat(a))
	frac.Quo(frac, lnN)
	t.Add(t, frac)
	return new(big.Float).Mul(n, t)
}

// nthPolyCorrection evaluates
// n*(ln(n)+ln(ln(n))-1+(ln(ln(n))+a)/ln(n)-(ln(ln(n))^2-6*ln(ln(n))+b)/(2*ln(n)^2)),
// the second-order-correction form used by the tightest nth-prime
// estimates.
func nthPolyCorrection(n, lnN *big.Float, a, b float64) *big.Float {
	prec := n.Prec()
	lnLnN := bigfloat.Log(lnN)
	base := new(big.Float).Add(lnN, lnLnN)

	t := new(big.Float).Sub(base, big.NewFloat(1).SetPrec(prec))
	frac1 := new(big.Float).Add(lnLnN, big.NewFloat(a))
	frac1.Quo(frac1, lnN)
	t.Add(t, frac1)

	lnLnN2 := new(big.Float).Mul(lnLnN, lnLnN)
	num2 := new(big.Float).Sub(lnLnN2, new(big.Float).Mul(big.NewFloat(6), lnLnN))
	num2.Add(num2, big.NewFloat(b))
	denom2 := new(big.Float).Mul(big.NewFloat(2), new(big.Float).Mul(lnN, lnN))
	frac2 := new(big.Float).Quo(num2, denom2)
	t.Sub(t, frac2)

	return new(big.Float).Mul(n, t)
}
