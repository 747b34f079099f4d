// Package bigz implements the signed arbitrary-precision integer
// kernel: digit storage over a configurable digit width, arithmetic,
// shifts, and base conversion.
//
// The digit width is a Go type parameter pair (D, W): D is the narrow
// digit type and W is its double-width scratch type, so that every
// carry/borrow/product computed during arithmetic has room to live in
// a single native unsigned integer without a manual wide-multiply
// emulation. NewKernelWidth validates the pairing once, refusing at
// construction time a digit width whose double doesn't fit a
// supported native wide integer.
package bigz

import (
	"errors"
	"math/bits"
)

// Digit is the constraint on a Z[D, W]'s narrow digit type.
type Digit interface {
	~uint8 | ~uint16 | ~uint32
}

// Wide is the constraint on a Z[D, W]'s double-width scratch type,
// used for carries, borrows, and digit products.
type Wide interface {
	~uint16 | ~uint32 | ~uint64
}

// ErrUnsupportedWidth is returned by NewKernelWidth when W is not
// exactly double the bit width of D.
var ErrUnsupportedWidth = errors.New("bigz: wide type is not double the digit type's width")

// NewKernelWidth validates that W is exactly double the bit width of
// D — the one constraint the digit-width/wide-scratch-type pairing
// must satisfy. Callers instantiate Z[D, W] implicitly through the
// package's generic functions; this is an explicit check meant to run
// once at startup for whichever (D, W) pair a caller picks (the
// default, used throughout pkg/real and pkg/decimal, is
// (uint32, uint64)).
func NewKernelWidth[D Digit, W Wide]() error {
	if wideBits[W]() != 2*digitBits[D]() {
		return ErrUnsupportedWidth
	}
	return nil
}

func digitBits[D Digit]() int {
	switch any(D(0)).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	}
	return 0
}

func wideBits[W Wide]() int {
	switch any(W(0)).(type) {
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	}
	return 0
}

// leadingZeros returns the number of leading zero bits of d within a
// width-bit digit.
func leadingZeros[D Digit](d D, width int) int {
	return bits.LeadingZeros64(uint64(d)) - (64 - width)
}

// shiftLeft shifts digits left by offset bits (0 <= offset < width) in
// place, returning the bits shifted out of the top digit.
func shiftLeft[D Digit](digits []D, offset, width int) D {
	if offset == 0 {
		return 0
	}
	var carry D
	for i := range digits {
		d := digits[i]
		digits[i] = (d << offset) | carry
		carry = d >> (width - offset)
	}
	return carry
}

// shiftRight shifts digits right by offset bits (0 <= offset < width)
// in place, returning the bits shifted out of the bottom digit,
// left-aligned at bit (width - offset) — the same convention as a
// left shift with a negative offset.
func shiftRight[D Digit](digits []D, offset, width int) D {
	if offset == 0 {
		return 0
	}
	var carry D
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		digits[i] = (d >> offset) | carry
		carry = d << (width - offset)
	}
	return carry
}
