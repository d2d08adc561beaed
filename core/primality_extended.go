//go:build extended

package core

// sprpDispatch implements spec §4.2's hashed Miller-Rabin dispatch: one
// SPRP test looked up through a multiplicative hash into MR32 for 32-bit
// t, and up to three chained SPRP tests (base 2, an MR64 base, then a
// SecondBases base from 2^49 up) for larger t. See mr_tables_extended.go
// for why those tables are not populated in this build by default.
func sprpDispatch(t uint64) bool {
	if t <= 0xFFFFFFFF {
		idx := hashIdx8(uint32(t))
		return IsSPRP(t, MR32[idx])
	}

	if !IsSPRP(t, 2) {
		return false
	}

	u := uint32(t)
	idx14 := hashIdx14(u)
	if !IsSPRP(t, MR64[idx14]) {
		return false
	}

	if t < 1<<49 {
		return true
	}

	idx3 := idx14 >> 13
	return IsSPRP(t, SecondBases[idx3])
}
