package bigz

// Root computes the integer k-th root of a non-negative z: the
// largest r such that r^k <= z. Precondition: z is
// non-negative and k >= 1. Implemented as a binary search over the
// candidate range, since the digit kernel doesn't have a cheap
// Newton step available without division already being expensive;
// each candidate is raised to the k-th power by repeated squaring.
func Root[D Digit, W Wide](z *Z[D, W], k int) *Z[D, W] {
	if IsZero(z) {
		return Zero[D, W]()
	}
	if k == 1 {
		return Clone(z)
	}

	lo := Zero[D, W]()
	hi := Add(z, One[D, W]())
	one := One[D, W]()
	two := FromUint64[D, W](2)

	for CmpN(Sub(hi, lo), one) > 0 {
		mid := Add(lo, hi)
		mid, _, _ = DivMod(mid, two)
		if CmpN(powMagnitude(mid, k), z) > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// powMagnitude computes z^k by repeated squaring, for non-negative z.
func powMagnitude[D Digit, W Wide](z *Z[D, W], k int) *Z[D, W] {
	result := One[D, W]()
	base := Clone(z)
	for k > 0 {
		if k&1 == 1 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		k >>= 1
	}
	return result
}
