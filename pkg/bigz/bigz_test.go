package bigz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func z32(v int64) *Z[uint32, uint64] { return FromInt64[uint32, uint64](v) }

func toInt64(z *Z[uint32, uint64]) int64 {
	var v uint64
	for i := len(z.Digits) - 1; i >= 0; i-- {
		v = v<<32 | uint64(z.Digits[i])
	}
	if z.Sign == Negative {
		return -int64(v)
	}
	return int64(v)
}

func TestNewKernelWidth(t *testing.T) {
	if err := NewKernelWidth[uint32, uint64](); err != nil {
		t.Fatalf("uint32/uint64 should be a valid pairing: %v", err)
	}
	if err := NewKernelWidth[uint8, uint32](); err == nil {
		t.Fatal("uint8/uint32 is not a double-width pairing, want error")
	}
}

func TestAddSub(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{0, 0}, {1, 1}, {5, -3}, {-5, 3}, {-5, -3},
		{1<<32 - 1, 1}, {1 << 40, 1 << 40},
		{-(1 << 33), 1 << 20},
	}
	for _, c := range cases {
		got := toInt64(Add(z32(c.a), z32(c.b)))
		if want := c.a + c.b; got != want {
			t.Errorf("Add(%d,%d) = %d, want %d", c.a, c.b, got, want)
		}
		got = toInt64(Sub(z32(c.a), z32(c.b)))
		if want := c.a - c.b; got != want {
			t.Errorf("Sub(%d,%d) = %d, want %d", c.a, c.b, got, want)
		}
	}
}

func TestMul(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{0, 5}, {7, -6}, {-7, -6}, {1 << 20, 1 << 20}, {1<<32 - 1, 2},
	}
	for _, c := range cases {
		got := toInt64(Mul(z32(c.a), z32(c.b)))
		if want := c.a * c.b; got != want {
			t.Errorf("Mul(%d,%d) = %d, want %d", c.a, c.b, got, want)
		}
	}
}

// Truncated division examples: -11/7 -> (-1,-4), 11/-7 -> (-1,4).
func TestDivTruncated(t *testing.T) {
	q, r, err := Div(z32(-11), z32(7))
	if err != nil {
		t.Fatal(err)
	}
	if toInt64(q) != -1 || toInt64(r) != -4 {
		t.Fatalf("Div(-11,7) = (%d,%d), want (-1,-4)", toInt64(q), toInt64(r))
	}
	q, r, err = Div(z32(11), z32(-7))
	if err != nil {
		t.Fatal(err)
	}
	if toInt64(q) != -1 || toInt64(r) != 3 {
		t.Fatalf("Div(11,-7) = (%d,%d), want (-1,3)", toInt64(q), toInt64(r))
	}
}

func TestDivByZeroErrors(t *testing.T) {
	if _, _, err := Div(z32(11), z32(0)); err == nil {
		t.Fatal("Div by zero should error")
	}
	if _, _, err := DivMod(z32(11), z32(0)); err == nil {
		t.Fatal("DivMod by zero should error")
	}
	if _, _, err := DivDigit(z32(11), uint32(0)); err == nil {
		t.Fatal("DivDigit by zero should error")
	}
}

func TestDivMatchesGoTruncation(t *testing.T) {
	vals := []int64{100, -100, 1, -1, 1 << 40, -(1 << 40)}
	divs := []int64{3, -3, 7, -7, 1 << 20}
	for _, a := range vals {
		for _, b := range divs {
			q, r, err := Div(z32(a), z32(b))
			if err != nil {
				t.Fatal(err)
			}
			wantQ, wantR := a/b, a%b
			if toInt64(q) != wantQ || toInt64(r) != wantR {
				t.Errorf("Div(%d,%d) = (%d,%d), want (%d,%d)", a, b, toInt64(q), toInt64(r), wantQ, wantR)
			}
		}
	}
}

func TestFloorCeilDiv(t *testing.T) {
	q, r, err := FloorDiv(z32(-11), z32(7))
	if err != nil {
		t.Fatal(err)
	}
	if toInt64(q) != -2 || toInt64(r) != 3 {
		t.Fatalf("FloorDiv(-11,7) = (%d,%d), want (-2,3)", toInt64(q), toInt64(r))
	}
	q, r, err = CeilDiv(z32(-11), z32(7))
	if err != nil {
		t.Fatal(err)
	}
	if toInt64(q) != -1 || toInt64(r) != -4 {
		t.Fatalf("CeilDiv(-11,7) = (%d,%d), want (-1,-4)", toInt64(q), toInt64(r))
	}
	q, r, err = CeilDiv(z32(11), z32(7))
	if err != nil {
		t.Fatal(err)
	}
	if toInt64(q) != 2 || toInt64(r) != -3 {
		t.Fatalf("CeilDiv(11,7) = (%d,%d), want (2,-3)", toInt64(q), toInt64(r))
	}
}

func TestDivMultiDigitDivisor(t *testing.T) {
	big := FromUint64[uint32, uint64](1<<62 + 12345)
	divisor := FromUint64[uint32, uint64](1<<40 + 7)
	q, r, err := DivMod(big, divisor)
	if err != nil {
		t.Fatal(err)
	}

	// reconstruct: q*divisor + r should equal big
	recombined := Add(Mul(q, divisor), r)
	if CmpN(recombined, big) != 0 {
		t.Fatalf("q*b+r != a: got digits %v sign %v, want %v", recombined.Digits, recombined.Sign, big.Digits)
	}
	if CmpN(r, divisor) >= 0 {
		t.Fatalf("remainder %v >= divisor %v", r.Digits, divisor.Digits)
	}
}

func TestMul2ExpMul4Exp(t *testing.T) {
	got := toInt64(Mul2Exp(z32(3), 4))
	if got != 3<<4 {
		t.Fatalf("Mul2Exp(3,4) = %d, want %d", got, 3<<4)
	}
	got = toInt64(Mul4Exp(z32(3), 2))
	if got != 3*16 {
		t.Fatalf("Mul4Exp(3,2) = %d, want %d", got, 3*16)
	}
	// crosses a digit boundary
	got = toInt64(Mul2Exp(z32(1), 40))
	if got != int64(1)<<40 {
		t.Fatalf("Mul2Exp(1,40) = %d, want %d", got, int64(1)<<40)
	}

	// negative n is a magnitude right shift, truncating toward zero
	got = toInt64(Mul2Exp(z32(0xFF), -4))
	if got != 0xF {
		t.Fatalf("Mul2Exp(0xFF,-4) = %d, want %d", got, 0xF)
	}
	shifted := Mul2Exp(z32(-3), -10)
	if !IsZero(shifted) || shifted.Sign != Positive {
		t.Fatalf("Mul2Exp(-3,-10) = %+v, want canonical zero", shifted)
	}

	// mul_4exp(Z{digits=[4,1]}, -1) = Z{digits=[0x41]}, with an 8-bit
	// digit width (260 / 4 = 65 = 0x41).
	z := &Z[uint8, uint16]{Digits: []uint8{4, 1}, Sign: Positive}
	got8 := Mul4Exp[uint8, uint16](z, -1)
	if len(got8.Digits) != 1 || got8.Digits[0] != 0x41 {
		t.Fatalf("Mul4Exp({4,1},-1) = %v, want [0x41]", got8.Digits)
	}
}

func TestRoot(t *testing.T) {
	cases := []struct {
		z    int64
		k    int
		want int64
	}{
		{0, 2, 0}, {1, 2, 1}, {8, 3, 2}, {9, 2, 3}, {26, 3, 2}, {27, 3, 3}, {1000000, 2, 1000},
	}
	for _, c := range cases {
		got := toInt64(Root(z32(c.z), c.k))
		if got != c.want {
			t.Errorf("Root(%d,%d) = %d, want %d", c.z, c.k, got, c.want)
		}
	}
}

// Carry/borrow boundary cases at the top of an 8-bit digit.
func TestCarryBorrowBoundary8Bit(t *testing.T) {
	a := &Z[uint8, uint16]{Digits: []uint8{0xFF}, Sign: Positive}
	b := &Z[uint8, uint16]{Digits: []uint8{0x01}, Sign: Positive}
	sum := AddN[uint8, uint16](a, b)
	if len(sum.Digits) != 2 || sum.Digits[0] != 0 || sum.Digits[1] != 1 {
		t.Fatalf("0xFF+1 = %v, want [0 1]", sum.Digits)
	}
	diff := SubN[uint8, uint16](sum, b)
	if CmpN[uint8, uint16](diff, a) != 0 {
		t.Fatalf("(0xFF+1)-1 = %v, want %v", diff.Digits, a.Digits)
	}
}

func TestNormalizeStripsTrailingZeros(t *testing.T) {
	z := &Z[uint32, uint64]{Digits: []uint32{1, 0, 0}, Sign: Positive}
	Normalize(z)
	want := &Z[uint32, uint64]{Digits: []uint32{1}, Sign: Positive}
	if diff := cmp.Diff(want, z); diff != "" {
		t.Fatalf("Normalize left unexpected digit sequence (-want +got):\n%s", diff)
	}

	zero := &Z[uint32, uint64]{Digits: []uint32{0, 0}, Sign: Negative}
	Normalize(zero)
	wantZero := &Z[uint32, uint64]{Digits: []uint32{}, Sign: Positive}
	if diff := cmp.Diff(wantZero, zero); diff != "" {
		t.Fatalf("Normalize(zero with negative sign) did not collapse to canonical zero (-want +got):\n%s", diff)
	}
}

func TestAddSubStructuralEquality(t *testing.T) {
	got := Add(z32(1<<40), z32(1))
	want := &Z[uint32, uint64]{Digits: []uint32{1, 1 << 8}, Sign: Positive}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Add(2^40, 1) digit layout mismatch (-want +got):\n%s", diff)
	}
}
