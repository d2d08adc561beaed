package core

// PollardRho searches for a non-trivial divisor of composite n using
// Floyd cycle detection over f(x) = x^2 + c mod n, per spec §4.3. It
// returns (d, true) with 1 < d < n on success, or (0, false) if the
// walk cycles without finding one — the caller is expected to retry
// with a fresh (start, offset).
func PollardRho(n, start, offset uint64) (uint64, bool) {
	if n%2 == 0 {
		return 2, true
	}

	c := offset % n
	f := func(x uint64) uint64 {
		return addMod64(mulMod64(x, x, n), c, n)
	}

	x, y, d := start%n, start%n, uint64(1)
	for d == 1 {
		x = f(x)
		y = f(f(y))
		var diff uint64
		if y > x {
			diff = y - x
		} else {
			diff = x - y
		}
		d = gcd64(diff, n)
	}

	if d == n {
		return 0, false
	}
	return d, true
}
