package core

// MAGIC is the multiplicative-hash constant used by the extended,
// hashed Miller-Rabin dispatch (mr_tables_extended.go, -tags extended).
// It is part of the specification: the hash derived from it must agree
// with whatever witness tables are in force. See DESIGN.md for why this
// repository does not ship fabricated MR32/MR64 contents.
const MAGIC uint32 = 0xAD625B89

// SecondBases is the fixed 8-entry table of extra witnesses used for the
// third SPRP round on 64-bit candidates >= 2^49 in the extended dispatch.
var SecondBases = [8]uint64{15, 135, 13, 60, 15, 117, 65, 29}

// Classical deterministic witness sets (spec §4.2, "without the extended
// tables"). These are the default, always-correct path: no offline
// generation is needed to trust them, unlike the hashed tables.
var (
	witnesses16 = [...]uint64{2, 3}
	witnesses32 = [...]uint64{2, 7, 61}
	witnesses64 = [...]uint64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}
)
