// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package intsqrt

import (
	num "github.com/shabbyrobe/go-num"
)

// U128 returns the integer square root of n. The loop is sqrt64 expressed in
// 128-bit arithmetic; only the scalar type changes.
func U128(n num.U128) num.U128 {
	if n.BitLen() < 2 {
		return n
	}
	bit := num.U128From64(1).Lsh(uint((n.BitLen() - 1) &^ 1))
	var root num.U128
	for !bit.IsZero() {
		if sub := root.Add(bit); n.Cmp(sub) >= 0 {
			n = n.Sub(sub)
			root = root.Rsh(1).Add(bit)
		} else {
			root = root.Rsh(1)
		}
		bit = bit.Rsh(2)
	}
	return root
}

// I128 returns the integer square root of n, or ErrNegative if n is negative.
// A 128-bit root fits in 64 bits, so converting the unsigned result back to
// I128 never wraps.
func I128(n num.I128) (num.I128, error) {
	if n.Sign() < 0 {
		return num.I128{}, ErrNegative
	}
	return U128(n.AsU128()).AsI128(), nil
}
