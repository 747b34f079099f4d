package bigz

// AddN computes the magnitude sum of a and b, ignoring sign. The
// result is normal form: unsigned magnitude with a trailing carry
// digit if needed.
func AddN[D Digit, W Wide](a, b *Z[D, W]) *Z[D, W] {
	if len(a.Digits) > len(b.Digits) {
		a, b = b, a
	}
	width := digitBits[D]()
	digits := make([]D, 0, len(b.Digits)+1)
	var carry W
	i := 0
	for ; i < len(a.Digits); i++ {
		sum := W(a.Digits[i]) + W(b.Digits[i]) + carry
		digits = append(digits, D(sum))
		carry = sum >> width
	}
	for ; i < len(b.Digits); i++ {
		sum := W(b.Digits[i]) + carry
		digits = append(digits, D(sum))
		carry = sum >> width
	}
	if carry > 0 {
		digits = append(digits, D(carry))
	}
	return &Z[D, W]{Digits: digits, Sign: Positive}
}

// SubN computes the magnitude difference a - b, ignoring sign.
// Precondition: |a| >= |b|.
func SubN[D Digit, W Wide](a, b *Z[D, W]) *Z[D, W] {
	width := digitBits[D]()
	base := W(1) << width
	digits := make([]D, 0, len(a.Digits))
	var borrow W
	i := 0
	for ; i < len(b.Digits); i++ {
		ai, needed := W(a.Digits[i]), W(b.Digits[i])+borrow
		if ai >= needed {
			digits = append(digits, D(ai-needed))
			borrow = 0
		} else {
			digits = append(digits, D(ai+base-needed))
			borrow = 1
		}
	}
	for ; i < len(a.Digits); i++ {
		ai := W(a.Digits[i])
		if ai >= borrow {
			digits = append(digits, D(ai-borrow))
			borrow = 0
		} else {
			digits = append(digits, D(ai+base-borrow))
			borrow = 1
		}
	}
	return Normalize(&Z[D, W]{Digits: digits, Sign: Positive})
}

// Add computes the signed sum a + b.
func Add[D Digit, W Wide](a, b *Z[D, W]) *Z[D, W] {
	if a.Sign == b.Sign {
		r := AddN(a, b)
		if len(r.Digits) > 0 {
			r.Sign = a.Sign
		}
		return r
	}
	minuend, subtrahend := a, b
	if CmpN(a, b) < 0 {
		minuend, subtrahend = b, a
	}
	r := SubN(minuend, subtrahend)
	if len(r.Digits) > 0 {
		r.Sign = minuend.Sign
	}
	return r
}

// Sub computes the signed difference a - b.
func Sub[D Digit, W Wide](a, b *Z[D, W]) *Z[D, W] {
	negB := Clone(b)
	Negate(negB)
	return Add(a, negB)
}

// MulN computes the magnitude product of a and b, ignoring sign —
// schoolbook O(len(a)*len(b)) multiplication using W as the
// double-width scratch for each digit product plus carry chain.
func MulN[D Digit, W Wide](a, b *Z[D, W]) *Z[D, W] {
	if IsZero(a) || IsZero(b) {
		return Zero[D, W]()
	}
	width := digitBits[D]()
	out := make([]D, len(a.Digits)+len(b.Digits))
	for j := 0; j < len(b.Digits); j++ {
		var carry W
		for i := 0; i < len(a.Digits); i++ {
			prod := W(a.Digits[i])*W(b.Digits[j]) + W(out[i+j]) + carry
			out[i+j] = D(prod)
			carry = prod >> width
		}
		out[j+len(a.Digits)] = D(carry)
	}
	return Normalize(&Z[D, W]{Digits: out, Sign: Positive})
}

// Mul computes the signed product a * b. A zero result is always
// positive; otherwise the sign is the XOR of the operands' signs.
func Mul[D Digit, W Wide](a, b *Z[D, W]) *Z[D, W] {
	r := MulN(a, b)
	if IsZero(r) {
		return r
	}
	if a.Sign == b.Sign {
		r.Sign = Positive
	} else {
		r.Sign = Negative
	}
	return r
}
