// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

// Package intsqrt computes exact integer square roots of machine integers.
//
// The integer square root of n is the largest integer r with r*r <= n. It is
// extracted digit by digit from the unsigned bit pattern of the input, so the
// result is exact over the full range of every supported width. Going through
// float64 is not: near large perfect squares the rounded math.Sqrt value can
// be off by one, which is exactly the error an integer square root exists to
// rule out.
//
// Unsigned entry points are total. Signed entry points report ErrNegative for
// negative input; that is the package's only failure mode.
package intsqrt

import (
	"errors"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

var (
	Error       = errors.New("intsqrt")
	ErrNegative = fmt.Errorf("%w: negative number", Error)
)

// Uint returns the integer square root of n. It cannot fail: negative input
// is inexpressible for unsigned types.
func Uint[T constraints.Unsigned](n T) T {
	return T(sqrt64(uint64(n)))
}

// Int returns the integer square root of n, or ErrNegative if n is negative.
// A root of a W-bit value occupies at most W/2 bits, so the unsigned result
// always converts back into T without wrapping.
func Int[T constraints.Signed](n T) (T, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	return T(sqrt64(uint64(n))), nil
}

// sqrt64 is the digit-by-digit binary extraction every width up to 64 bits
// reduces to. bit starts at the highest power of four not exceeding n; each
// step decides one result bit by comparing the remainder against the
// tentative subtrahend, so no intermediate value can overflow, including at
// n == math.MaxUint64.
func sqrt64(n uint64) uint64 {
	if n < 2 {
		return n
	}
	bit := uint64(1) << uint((bits.Len64(n)-1)&^1)
	var root uint64
	for bit != 0 {
		if sub := root + bit; n >= sub {
			n -= sub
			root = root>>1 + bit
		} else {
			root >>= 1
		}
		bit >>= 2
	}
	return root
}
