package gf

// Limb-vector arithmetic shared by the two field widths. A vector is a
// little-endian sequence of 64-bit limbs: limb i holds the coefficients of
// z^(64i) through z^(64i+63), with bit 0 of limb 0 the constant term.

// xorInto adds src into dst limbwise. Addition of binary polynomials is
// XOR. Both slices must have the same length.
func xorInto(dst, src []uint64) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// shl shifts p left by k bits, 1 <= k <= 63. The freshly vacated low bits
// of limb 0 are filled with the low k bits of start, and the k bits shifted
// out of the top limb are returned. This is how the double-width product
// accumulator below moves as one value: the low half's carry-out becomes
// the high half's carry-in.
func shl(p []uint64, start uint64, k uint) uint64 {
	out := p[len(p)-1] >> (64 - k)
	for i := len(p) - 1; i > 0; i-- {
		p[i] = p[i]<<k | p[i-1]>>(64-k)
	}
	p[0] = p[0]<<k | start&(1<<k-1)
	return out
}

// mulInto writes the unreduced product a*b into the double-width (hi, lo)
// limb pair. It scans the bits of a from high to low, conditionally adding
// a limb-aligned window of b into the accumulator and shifting the whole
// accumulator left one bit between rounds.
//
// The conditional add is a mask select, never a branch: the scanned bit
// expands to an all-ones or all-zeroes mask that gates b. The loop touches
// the same memory in the same order whatever the operands hold.
func mulInto(hi, lo, a, b []uint64) {
	n := len(a)
	for i := range hi {
		hi[i] = 0
		lo[i] = 0
	}
	for k := 63; k >= 0; k-- {
		for j := 0; j < n; j++ {
			mask := -(a[j] >> uint(k) & 1)
			// Bit k of limb j weighs z^(64j+k); the window for
			// limb j spans lo[j:] and hi[:j].
			for i := j; i < n; i++ {
				lo[i] ^= mask & b[i-j]
			}
			for i := 0; i < j; i++ {
				hi[i] ^= mask & b[n-j+i]
			}
		}
		if k > 0 {
			carry := shl(lo, 0, 1)
			shl(hi, carry, 1)
		}
	}
}
