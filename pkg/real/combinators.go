package real

import (
	"github.com/oisee/epsilon/pkg/bigz"
	"github.com/oisee/epsilon/pkg/epxerr"
)

// MakeQ builds the real number p/q: x(n) = floor(p*4^n / q). q must be
// non-zero.
func MakeQ[D bigz.Digit, W bigz.Wide](p, q *bigz.Z[D, W]) (*R[D, W], error) {
	if bigz.IsZero(q) {
		return nil, epxerr.New("make_q", epxerr.DivideByZero)
	}
	p, q = bigz.Clone(p), bigz.Clone(q)
	return New[D, W](func(n int) (*bigz.Z[D, W], error) {
		shifted := bigz.Mul4Exp(p, n)
		quo, _, err := bigz.FloorDiv(shifted, q)
		if err != nil {
			return nil, err
		}
		return quo, nil
	}), nil
}

// Add returns x+y: (x+y)(n) = mul_4exp(x(n+1)+y(n+1), -1).
// Each input carries error <=1 at precision n+1; their sum has error
// <=2 in units of 4^-(n+1) = 1/2 in units of 4^-n, and the right shift
// by one base-4 digit loses at most another 1/2, for a total <=1.
func Add[D bigz.Digit, W bigz.Wide](x, y *R[D, W]) *R[D, W] {
	return New[D, W](func(n int) (*bigz.Z[D, W], error) {
		xv, err := x.Approx(n + 1)
		if err != nil {
			return nil, err
		}
		yv, err := y.Approx(n + 1)
		if err != nil {
			return nil, err
		}
		return bigz.Mul4Exp(bigz.Add(xv, yv), -1), nil
	})
}

// Neg returns -x: (-x)(n) = -x(n).
func Neg[D bigz.Digit, W bigz.Wide](x *R[D, W]) *R[D, W] {
	return New[D, W](func(n int) (*bigz.Z[D, W], error) {
		v, err := x.Approx(n)
		if err != nil {
			return nil, err
		}
		neg := bigz.Clone(v)
		bigz.Negate(neg)
		return neg, nil
	})
}

// MSD returns the most-significant-digit index of x: the least i such
// that |x| >= 2*4^-i. max bounds the increasing scan used when x(0)
// <= 0; reaching it returns max itself rather than an error (e.g.
// msd(0) at bound 10 returns 10). Inv treats a returned index at or
// above its bound as MSDOverflow; Mul uses the returned index as is.
func MSD[D bigz.Digit, W bigz.Wide](x *R[D, W], max int) (int, error) {
	one := bigz.One[D, W]()
	four := bigz.FromInt64[D, W](4)
	zero := bigz.Zero[D, W]()

	x0, err := x.Approx(0)
	if err != nil {
		return 0, err
	}

	switch {
	case bigz.Cmp(x0, four) > 0:
		i := -1
		for {
			xi, err := x.Approx(i)
			if err != nil {
				return 0, err
			}
			if bigz.Cmp(absZ(xi), one) <= 0 {
				return i + 1, nil
			}
			i--
		}
	case bigz.Cmp(x0, one) > 0:
		return 0, nil
	case bigz.Cmp(x0, zero) > 0:
		return 1, nil
	default:
		i := 0
		for {
			xi, err := x.Approx(i)
			if err != nil {
				return 0, err
			}
			if bigz.Cmp(absZ(xi), one) > 0 {
				return i, nil
			}
			if i >= max {
				return i, nil
			}
			i++
		}
	}
}

func absZ[D bigz.Digit, W bigz.Wide](z *bigz.Z[D, W]) *bigz.Z[D, W] {
	if bigz.IsPositive(z) {
		return z
	}
	c := bigz.Clone(z)
	bigz.Negate(c)
	return c
}

// addOverflows reports whether a+b overflows the int type.
func addOverflows(a, b int) bool {
	sum := a + b
	if b > 0 && sum < a {
		return true
	}
	if b < 0 && sum > a {
		return true
	}
	return false
}

// Mul returns x*y. cfg bounds the internal MSD searches
// against the configured ceiling in addition to the formula's own
// locally-computed bound, so a caller's max_msd override is always
// honored even though the formula supplies a tighter bound in the
// common case.
func Mul[D bigz.Digit, W bigz.Wide](x, y *R[D, W], cfg epxerr.Config) *R[D, W] {
	return New[D, W](func(n int) (*bigz.Z[D, W], error) {
		if addOverflows(n, 3) {
			return nil, epxerr.New("mul", epxerr.PrecisionOverflow)
		}
		localMax := n + 3 - (n+2)/2
		if cap := cfg.MaxMSDOrDefault(); cap < localMax {
			localMax = cap
		}
		my, err := MSD(y, localMax)
		if err != nil {
			return nil, err
		}
		mx, err := MSD(x, localMax)
		if err != nil {
			return nil, err
		}
		px := n - my + 3
		py := n - mx + 3
		xpx, err := x.Approx(px)
		if err != nil {
			return nil, err
		}
		ypy, err := y.Approx(py)
		if err != nil {
			return nil, err
		}
		prod := bigz.Add(bigz.Mul(xpx, ypy), bigz.One[D, W]())
		return bigz.Mul4Exp(prod, n-px-py), nil
	})
}

// Inv returns 1/x. x=0 surfaces as an MSD-overflow error rather than
// a dedicated divide-by-zero kind: MSD(0) never terminates the
// increasing scan, so the configured ceiling is what actually fires.
func Inv[D bigz.Digit, W bigz.Wide](x *R[D, W], cfg epxerr.Config) *R[D, W] {
	return New[D, W](func(n int) (*bigz.Z[D, W], error) {
		max := cfg.MaxMSDOrDefault()
		m, err := MSD(x, max)
		if err != nil {
			return nil, err
		}
		if m >= max {
			return nil, epxerr.New("inv", epxerr.MSDOverflow)
		}
		if n <= -m {
			return bigz.Zero[D, W](), nil
		}
		if addOverflows(m, m) || addOverflows(m+m, 1) || addOverflows(n, m+m+1) {
			return nil, epxerr.New("inv", epxerr.PrecisionOverflow)
		}
		k := n + 2*m + 1
		xk, err := x.Approx(k)
		if err != nil {
			return nil, err
		}
		denom := bigz.Add(xk, bigz.One[D, W]())
		if bigz.IsZero(denom) {
			return nil, epxerr.New("inv", epxerr.MSDOverflow)
		}
		numerator := bigz.Mul4Exp(bigz.One[D, W](), k+n)
		q, _, err := bigz.CeilDiv(numerator, denom)
		if err != nil {
			return nil, err
		}
		return q, nil
	})
}

// Root returns the k-th root of x for k>=2; k<2 is reported
// immediately since it never depends on a precision query.
func Root[D bigz.Digit, W bigz.Wide](x *R[D, W], k int) (*R[D, W], error) {
	if k < 2 {
		return nil, epxerr.New("root", epxerr.KthRootTooSmall)
	}
	return New[D, W](func(n int) (*bigz.Z[D, W], error) {
		xkn, err := x.Approx(n * k)
		if err != nil {
			return nil, err
		}
		if !bigz.IsZero(xkn) && !bigz.IsPositive(xkn) {
			return nil, epxerr.New("root", epxerr.NegativeRadicand)
		}
		return bigz.Root(xkn, k), nil
	}), nil
}
