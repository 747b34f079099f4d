// Package decimal implements parsing and rendering of signed decimal
// text for bigz.Z, and fixed-point rendering of a real.R to a
// requested number of fractional digits.
package decimal

import (
	"math"
	"strings"

	"github.com/oisee/epsilon/pkg/bigz"
	"github.com/oisee/epsilon/pkg/real"
)

// Parse accepts an optional leading sign (only when immediately
// followed by a digit) and one or more decimal digits; anything else
// fails with ok=false. Empty input parses as canonical zero — this is
// the "absent-value sentinel" pattern, never an error.
func Parse[D bigz.Digit, W bigz.Wide](s string) (z *bigz.Z[D, W], ok bool) {
	if s == "" {
		return bigz.Zero[D, W](), true
	}
	i := 0
	neg := false
	if s[0] == '+' || s[0] == '-' {
		if len(s) < 2 || !isDigit(s[1]) {
			return nil, false
		}
		neg = s[0] == '-'
		i = 1
	}
	if i >= len(s) {
		return nil, false
	}
	ten := bigz.FromInt64[D, W](10)
	acc := bigz.Zero[D, W]()
	for ; i < len(s); i++ {
		if !isDigit(s[i]) {
			return nil, false
		}
		digit := bigz.FromInt64[D, W](int64(s[i] - '0'))
		acc = bigz.Add(bigz.Mul(acc, ten), digit)
	}
	if neg {
		bigz.Negate(acc)
	}
	return acc, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Render emits z's canonical decimal text: "0" for zero, otherwise
// the magnitude's digits with a leading "-" for negative values, never
// a leading zero and never "-0".
func Render[D bigz.Digit, W bigz.Wide](z *bigz.Z[D, W]) string {
	if bigz.IsZero(z) {
		return "0"
	}
	mag := bigz.Clone(z)
	mag.Sign = bigz.Positive

	var buf []byte
	for !bigz.IsZero(mag) {
		var rem D
		mag, rem, _ = bigz.DivDigit[D, W](mag, D(10))
		buf = append(buf, '0'+byte(rem))
	}
	if !bigz.IsPositive(z) {
		buf = append(buf, '-')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// log4Of10 is log_4(10), hard-coded to the precision this package needs.
const log4Of10 = 1.66096405

// ToFixed renders x to exactly k fractional digits: working precision
// n = floor(log4(10)*k) + 10, rounding half-away-from-zero via the
// midpoint-biased integer formula.
func ToFixed[D bigz.Digit, W bigz.Wide](x *real.R[D, W], k int) (string, error) {
	n := int(math.Floor(log4Of10*float64(k))) + 10
	xn, err := x.Approx(n)
	if err != nil {
		return "", err
	}
	negative := !bigz.IsPositive(xn) && !bigz.IsZero(xn)

	absXn := bigz.Clone(xn)
	absXn.Sign = bigz.Positive

	one := bigz.One[D, W]()
	two := bigz.FromInt64[D, W](2)
	tenK := powZ(bigz.FromInt64[D, W](10), k)
	fourN := bigz.Mul4Exp(one, n)

	numerator := bigz.Add(bigz.Mul(bigz.Add(bigz.Mul(two, absXn), one), tenK), fourN)
	denom := bigz.Mul2Exp(fourN, 1)
	d, _, err := bigz.DivMod(numerator, denom)
	if err != nil {
		return "", err
	}

	digits := Render(d)
	if k == 0 {
		if negative {
			return "-" + digits, nil
		}
		return digits, nil
	}
	for len(digits) <= k {
		digits = "0" + digits
	}
	intPart := strings.TrimLeft(digits[:len(digits)-k], "0")
	if intPart == "" {
		intPart = "0"
	}
	fracPart := digits[len(digits)-k:]

	result := intPart + "." + fracPart
	if negative {
		result = "-" + result
	}
	return result, nil
}

func powZ[D bigz.Digit, W bigz.Wide](base *bigz.Z[D, W], k int) *bigz.Z[D, W] {
	result := bigz.One[D, W]()
	for i := 0; i < k; i++ {
		result = bigz.Mul(result, base)
	}
	return result
}
