package bigz

import "github.com/oisee/epsilon/pkg/epxerr"

// DivDigit divides the magnitude of z by a single digit d, returning
// the magnitude quotient and the remainder digit. Used as the fast
// path by DivMod when the divisor fits in one digit. A zero divisor
// is a fatal error, not a Go panic.
func DivDigit[D Digit, W Wide](z *Z[D, W], d D) (*Z[D, W], D, error) {
	if d == 0 {
		return nil, 0, epxerr.New("div_n", epxerr.DivideByZero)
	}
	width := digitBits[D]()
	n := len(z.Digits)
	out := make([]D, n)
	var rem W
	for i := n - 1; i >= 0; i-- {
		cur := rem<<width | W(z.Digits[i])
		out[i] = D(cur / W(d))
		rem = cur % W(d)
	}
	return Normalize(&Z[D, W]{Digits: out, Sign: Positive}), D(rem), nil
}

// DivMod computes the magnitude quotient and remainder of a / b,
// dispatching to the single-digit fast path or Knuth's Algorithm D
// for a multi-digit divisor. A zero divisor is a fatal error.
func DivMod[D Digit, W Wide](a, b *Z[D, W]) (*Z[D, W], *Z[D, W], error) {
	if IsZero(b) {
		return nil, nil, epxerr.New("div_n", epxerr.DivideByZero)
	}
	if len(b.Digits) == 1 {
		q, r, err := DivDigit(a, b.Digits[0])
		if err != nil {
			return nil, nil, err
		}
		return q, FromUint64[D, W](uint64(r)), nil
	}
	if CmpN(a, b) < 0 {
		return Zero[D, W](), Clone(a), nil
	}
	r := knuthDWithRemainder(a, b)
	return r.quotient, r.remainder, nil
}

type divResult[D Digit, W Wide] struct {
	quotient  *Z[D, W]
	remainder *Z[D, W]
}

// knuthDWithRemainder implements Knuth's Algorithm D (TAOCP vol 2, 4.3.1) for
// multi-digit long division by magnitude, entirely in unsigned
// arithmetic: every borrow in the multiply-and-subtract step is
// tracked as a digit-width quantity compared against what's needed,
// the same technique SubN uses, rather than a signed wide-integer
// trick. Precondition: len(b.Digits) >= 2 and |a| >= |b|.
func knuthDWithRemainder[D Digit, W Wide](a, b *Z[D, W]) divResult[D, W] {
	width := digitBits[D]()
	base := W(1) << width
	n := len(b.Digits)
	m := len(a.Digits) - n

	// D1: normalize so the divisor's top digit has its high bit set.
	shift := leadingZeros(b.Digits[n-1], width)
	v := make([]D, n)
	copy(v, b.Digits)
	shiftLeft(v, shift, width)

	u := make([]D, len(a.Digits)+1)
	copy(u[:len(a.Digits)], a.Digits)
	topCarry := shiftLeft(u[:len(a.Digits)], shift, width)
	u[len(a.Digits)] = topCarry

	q := make([]D, m+1)

	// D2/D7: main loop over quotient digit positions.
	for j := m; j >= 0; j-- {
		// D3: estimate qhat from the top two digits of the remaining
		// dividend divided by the divisor's top digit.
		num := W(u[j+n])<<width | W(u[j+n-1])
		qhat := num / W(v[n-1])
		rhat := num % W(v[n-1])
		if qhat >= base {
			qhat = base - 1
			rhat = num - qhat*W(v[n-1])
		}
		for rhat < base {
			if qhat*W(v[n-2]) <= rhat*base+W(u[j+n-2]) {
				break
			}
			qhat--
			rhat += W(v[n-1])
		}

		// D4: multiply and subtract qhat*v from u[j:j+n+1].
		var borrow W
		var carry W
		for i := 0; i < n; i++ {
			p := qhat*W(v[i]) + carry
			carry = p >> width
			sub := W(u[j+i])
			need := W(D(p)) + borrow
			if sub >= need {
				u[j+i] = D(sub - need)
				borrow = 0
			} else {
				u[j+i] = D(sub + base - need)
				borrow = 1
			}
		}
		need := carry + borrow
		top := W(u[j+n])
		if top >= need {
			u[j+n] = D(top - need)
			q[j] = D(qhat)
		} else {
			// D6: qhat was one too large; add back v once.
			u[j+n] = D(top + base - need)
			q[j] = D(qhat - 1)
			var addCarry W
			for i := 0; i < n; i++ {
				sum := W(u[j+i]) + W(v[i]) + addCarry
				u[j+i] = D(sum)
				addCarry = sum >> width
			}
			u[j+n] = D(W(u[j+n]) + addCarry)
		}
	}

	// D8: unnormalize the remainder.
	rem := make([]D, n)
	copy(rem, u[:n])
	shiftRight(rem, shift, width)

	return divResult[D, W]{
		quotient:  Normalize(&Z[D, W]{Digits: q, Sign: Positive}),
		remainder: Normalize(&Z[D, W]{Digits: rem, Sign: Positive}),
	}
}

// Div computes the signed truncated quotient and remainder of a / b:
// sign(r) = sign(a) (or r = 0), e.g. -11/7 -> (-1,-4), 11/-7 ->
// (-1,4). A zero divisor is a fatal error.
func Div[D Digit, W Wide](a, b *Z[D, W]) (*Z[D, W], *Z[D, W], error) {
	q, r, err := DivMod(a, b)
	if err != nil {
		return nil, nil, err
	}
	if len(q.Digits) > 0 && a.Sign != b.Sign {
		q.Sign = Negative
	}
	if len(r.Digits) > 0 {
		r.Sign = a.Sign
	}
	return q, r, nil
}

// FloorDiv computes the floored quotient and remainder of a / b: the
// remainder's sign always matches b's sign (or is zero). Derived from
// Div by adjusting the truncated result down by one when the
// truncated remainder is non-zero and its sign disagrees with b's.
func FloorDiv[D Digit, W Wide](a, b *Z[D, W]) (*Z[D, W], *Z[D, W], error) {
	q, r, err := Div(a, b)
	if err != nil {
		return nil, nil, err
	}
	if len(r.Digits) > 0 && r.Sign != b.Sign {
		q = Sub(q, One[D, W]())
		r = Add(r, b)
	}
	return q, r, nil
}

// CeilDiv computes the ceilinged quotient and remainder of a / b: the
// remainder's sign always matches -sign(b) (or is zero).
func CeilDiv[D Digit, W Wide](a, b *Z[D, W]) (*Z[D, W], *Z[D, W], error) {
	q, r, err := Div(a, b)
	if err != nil {
		return nil, nil, err
	}
	if len(r.Digits) > 0 && r.Sign == b.Sign {
		q = Add(q, One[D, W]())
		r = Sub(r, b)
	}
	return q, r, nil
}
