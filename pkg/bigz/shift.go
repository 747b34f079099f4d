package bigz

// Mul2Exp computes z * 2^n for n >= 0, or the magnitude right-shift by
// |n| bits for n < 0 — a left/right bit shift by |n| bits, crossing
// digit boundaries. A right shift that collapses the magnitude to
// zero forces the sign back to positive.
func Mul2Exp[D Digit, W Wide](z *Z[D, W], n int) *Z[D, W] {
	if IsZero(z) || n == 0 {
		return Clone(z)
	}
	if n < 0 {
		return shiftRightExp(z, -n)
	}
	width := digitBits[D]()
	wholeDigits := n / width
	bits := n % width

	digits := make([]D, wholeDigits, wholeDigits+len(z.Digits)+1)
	digits = append(digits, z.Digits...)

	carry := shiftLeft(digits[wholeDigits:], bits, width)
	if carry > 0 {
		digits = append(digits, carry)
	}
	return Normalize(&Z[D, W]{Digits: digits, Sign: z.Sign})
}

func shiftRightExp[D Digit, W Wide](z *Z[D, W], n int) *Z[D, W] {
	width := digitBits[D]()
	wholeDigits := n / width
	bits := n % width

	if wholeDigits >= len(z.Digits) {
		return Zero[D, W]()
	}
	digits := make([]D, len(z.Digits)-wholeDigits)
	copy(digits, z.Digits[wholeDigits:])
	shiftRight(digits, bits, width)
	return Normalize(&Z[D, W]{Digits: digits, Sign: z.Sign})
}

// Mul4Exp computes z * 4^n for any sign of n, i.e. z * 2^(2n) — the
// step size the precision-oracle layer works in (real approximations
// are taken at scale 4^k). Implemented directly as Mul2Exp(z, 2*n)
// rather than squaring, since a bit shift is exact and squaring would
// do needless work.
func Mul4Exp[D Digit, W Wide](z *Z[D, W], n int) *Z[D, W] {
	return Mul2Exp(z, 2*n)
}
