package bigz

// Sign is the sign tag of a Z.
type Sign int8

const (
	Positive Sign = iota
	Negative
)

// Z is a signed arbitrary-precision integer over digit type D with
// scratch type W. Digits are least-significant first; the normal
// form has no trailing zero digit, and an empty digit slice is
// always paired with Positive (canonical zero). Z is value-typed in
// spirit — every exported function here returns a fresh *Z rather
// than mutating a caller's value in place, except where the operation
// is explicitly in-place (Normalize, Negate).
type Z[D Digit, W Wide] struct {
	Digits []D
	Sign   Sign
}

// IsZero reports whether z is canonical zero.
func IsZero[D Digit, W Wide](z *Z[D, W]) bool {
	return len(z.Digits) == 0
}

// IsPositive reports whether z's sign tag is Positive. Zero is positive.
func IsPositive[D Digit, W Wide](z *Z[D, W]) bool {
	return z.Sign == Positive
}

// Normalize strips trailing zero digits in place and forces the sign
// to Positive if the result is empty. Every exported Z-returning
// function in this package returns normal-form values.
func Normalize[D Digit, W Wide](z *Z[D, W]) *Z[D, W] {
	n := len(z.Digits)
	for n > 0 && z.Digits[n-1] == 0 {
		n--
	}
	z.Digits = z.Digits[:n]
	if len(z.Digits) == 0 {
		z.Sign = Positive
	}
	return z
}

// Negate flips z's sign in place. Negating zero leaves it zero
// (positive).
func Negate[D Digit, W Wide](z *Z[D, W]) *Z[D, W] {
	if z.Sign == Positive {
		z.Sign = Negative
	} else {
		z.Sign = Positive
	}
	return Normalize(z)
}

// CmpN compares a and b by magnitude only, ignoring sign. Returns
// -1, 0, or +1.
func CmpN[D Digit, W Wide](a, b *Z[D, W]) int {
	if len(a.Digits) != len(b.Digits) {
		if len(a.Digits) < len(b.Digits) {
			return -1
		}
		return 1
	}
	for i := len(a.Digits) - 1; i >= 0; i-- {
		if a.Digits[i] != b.Digits[i] {
			if a.Digits[i] < b.Digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares a and b as signed values. Returns -1, 0, or +1. Add and
// Div order operands by magnitude with CmpN; signed comparisons such
// as real.MSD's threshold tests use Cmp.
func Cmp[D Digit, W Wide](a, b *Z[D, W]) int {
	if IsZero(a) && IsZero(b) {
		return 0
	}
	if a.Sign != b.Sign {
		if a.Sign == Positive {
			return 1
		}
		return -1
	}
	c := CmpN(a, b)
	if a.Sign == Negative {
		return -c
	}
	return c
}

// Clone returns an independent copy of z.
func Clone[D Digit, W Wide](z *Z[D, W]) *Z[D, W] {
	d := make([]D, len(z.Digits))
	copy(d, z.Digits)
	return &Z[D, W]{Digits: d, Sign: z.Sign}
}
