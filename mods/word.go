// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package mods

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Word is the set of fixed-width integer types usable as residue storage.
type Word interface {
	constraints.Signed | constraints.Unsigned
}

// signedWord reports whether T is a signed storage type.
func signedWord[T Word]() bool {
	var m T
	m--
	return m < 0
}

// bitsOf returns the width of T in bits.
func bitsOf[T Word]() int {
	n := 0
	for v := T(1); v != 0; v <<= 1 {
		n++
	}
	return n
}

// minWord returns the smallest value representable in T.
func minWord[T Word]() T {
	if !signedWord[T]() {
		return 0
	}
	m := T(1)
	for m<<1 != 0 {
		m <<= 1
	}
	return m
}

// maxWord returns the largest value representable in T.
func maxWord[T Word]() T {
	if signedWord[T]() {
		return ^minWord[T]()
	}
	var m T
	m--
	return m
}

// canonical maps a raw storage value onto [0, modulus). This is the only place
// reduction happens; callers keep raw values lazy until they need the
// canonical representative.
func canonical[T Word](raw, modulus T) T {
	v := raw % modulus
	if v < 0 {
		v += modulus
	}
	return v
}

// addOverflows reports whether x+y wraps around the storage width.
func addOverflows[T Word](x, y T) bool {
	s := x + y
	return (y > 0 && s < x) || (y < 0 && s > x)
}

// mulOverflows reports whether x*y wraps around the storage width.
func mulOverflows[T Word](x, y T) bool {
	if x == 0 || y == 0 {
		return false
	}
	var negOne T
	negOne--
	if signedWord[T]() && x == negOne {
		// -x overflows only for the most negative value; p/x below would trap on it.
		return y == minWord[T]()
	}
	p := x * y
	return p/x != y
}

// wideApply recomputes op(x, y) in arbitrary precision, reduces the result
// modulo m and narrows it back to the storage width. It is the shared fallback
// for additions and multiplications that would wrap the native width.
func wideApply[T Word](op func(z, x, y *big.Int) *big.Int, x, y, m T) T {
	z := op(new(big.Int), toBig(x), toBig(y))
	z.Mod(z, toBig(m))
	return narrow[T](z)
}

func toBig[T Word](v T) *big.Int {
	if signedWord[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// narrow converts a non-negative big.Int known to fit T.
func narrow[T Word](z *big.Int) T {
	if signedWord[T]() {
		return T(z.Int64())
	}
	return T(z.Uint64())
}

// fitsWord reports whether a non-negative big.Int is representable in T.
func fitsWord[T Word](z *big.Int) bool {
	return z.Sign() >= 0 && z.Cmp(toBig(maxWord[T]())) <= 0
}

func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
