package bigz

// Zero returns canonical zero.
func Zero[D Digit, W Wide]() *Z[D, W] {
	return &Z[D, W]{Sign: Positive}
}

// One returns the value 1.
func One[D Digit, W Wide]() *Z[D, W] {
	return &Z[D, W]{Digits: []D{1}, Sign: Positive}
}

// FromUint64 builds a Z from a non-negative native integer.
func FromUint64[D Digit, W Wide](v uint64) *Z[D, W] {
	width := digitBits[D]()
	var digits []D
	for v > 0 {
		digits = append(digits, D(v))
		v >>= width
	}
	return Normalize(&Z[D, W]{Digits: digits, Sign: Positive})
}

// FromInt64 builds a Z from a native signed integer.
func FromInt64[D Digit, W Wide](v int64) *Z[D, W] {
	sign := Positive
	u := uint64(v)
	if v < 0 {
		sign = Negative
		u = uint64(-v)
	}
	z := FromUint64[D, W](u)
	z.Sign = sign
	return Normalize(z)
}
