// Package real implements the lazy real-number layer: a computable
// real is a precision oracle — approx(n) returns an integer within
// +/-1 of alpha*4^n — wrapped in a memoization record so repeated
// queries at non-increasing precision are answered by a cheap base-4
// shift instead of re-running the oracle.
//
// Every oracle invocation runs inside a pkg/lazy Computation that is
// awaited immediately: this is the "only suspension point" each
// combinator's approx(n) goes through when it needs approx(m) on one
// of its inputs, since that nested call is itself an R.Approx call
// wrapping its own oracle in exactly the same way.
package real

import (
	"github.com/oisee/epsilon/pkg/bigz"
	"github.com/oisee/epsilon/pkg/lazy"
)

// Oracle computes an approximation of a real at precision n. It is
// invoked at most once per distinct n actually reached by R.Approx,
// since the memoization record in R intercepts repeat and
// lower-precision queries.
type Oracle[D bigz.Digit, W bigz.Wide] func(n int) (*bigz.Z[D, W], error)

// R is a computable real number: an oracle plus the most-precise
// approximation queried so far, as an (mpa, x_mpa) pair. The zero
// value is not usable; construct with New or one of the combinators
// in combinators.go.
type R[D bigz.Digit, W bigz.Wide] struct {
	oracle Oracle[D, W]
	hasMPA bool
	mpa    int
	xMPA   *bigz.Z[D, W]
}

// New wraps an oracle function as an R. Exported for combinators
// outside this package that need to build a fresh precision oracle
// directly; within this package the combinators in combinators.go are
// the usual entry points.
func New[D bigz.Digit, W bigz.Wide](oracle Oracle[D, W]) *R[D, W] {
	return &R[D, W]{oracle: oracle}
}

// Approx returns an integer within +/-1 of alpha*4^n. If n is at or
// below the most precise approximation already cached, the cached
// value is shifted rather than re-evaluated; the cache is otherwise
// updated in place — the one intentional mutation of an
// "immutable-looking" value, safe because R is single-threaded by
// contract. A cache miss suspends on a lazy.Computation wrapping the
// oracle call, rather than invoking x.oracle directly, so a
// combinator's nested x.Approx(m)/y.Approx(m) calls on its inputs are
// themselves awaits on the suspendable-computation primitive.
func (x *R[D, W]) Approx(n int) (*bigz.Z[D, W], error) {
	if x.hasMPA && n <= x.mpa {
		return bigz.Mul4Exp(x.xMPA, n-x.mpa), nil
	}
	v, err := lazy.Await(lazy.New(func() (*bigz.Z[D, W], error) {
		return x.oracle(n)
	}))
	if err != nil {
		return nil, err
	}
	x.mpa = n
	x.xMPA = v
	x.hasMPA = true
	return v, nil
}
