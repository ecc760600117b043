// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package mods

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Inverse returns the multiplicative inverse of x modulo its modulus, or
// ErrNotInvertible when gcd(Value(x), M) != 1.
//
// Signed storage runs the textbook extended Euclidean algorithm over int64;
// unsigned storage runs a variant that keeps the Bezout coefficient reduced
// modulo M on every step so no signed intermediate is needed. Both paths
// agree on any value representable in either.
func (x Mod[T]) Inverse() (Mod[T], error) {
	if signedWord[T]() {
		v, ok := invertSigned(int64(x.Value()), int64(x.modulus))
		if !ok {
			return Mod[T]{}, errors.Wrapf(ErrNotInvertible, "%v modulo %v", x.Value(), x.modulus)
		}
		return Mod[T]{raw: T(v), modulus: x.modulus}, nil
	}
	v, ok := invertUnsigned(uint64(x.Value()), uint64(x.modulus))
	if !ok {
		return Mod[T]{}, errors.Wrapf(ErrNotInvertible, "%v modulo %v", x.Value(), x.modulus)
	}
	return Mod[T]{raw: T(v), modulus: x.modulus}, nil
}

// invertSigned solves a*v + m*w = gcd(a, m) and returns v mod m.
// Preconditions: 0 <= a < m, m >= 2.
func invertSigned(a, m int64) (int64, bool) {
	g, r := a, m
	v, v1 := int64(1), int64(0)
	for r != 0 {
		q := g / r
		g, r = r, g-q*r
		v, v1 = v1, v-q*v1
	}
	if g != 1 {
		return 0, false
	}
	v %= m
	if v < 0 {
		v += m
	}
	return v, true
}

// invertUnsigned is the unsigned counterpart of invertSigned. The coefficient
// updates run modulo m, so values stay in [0, m) and never need a sign bit.
// Preconditions: a < m, m >= 2.
func invertUnsigned(a, m uint64) (uint64, bool) {
	g, r := a, m
	v, v1 := uint64(1), uint64(0)
	for r != 0 {
		q := g / r
		g, r = r, g-q*r
		v, v1 = v1, subMod64(v, mulMod64(q, v1, m), m)
	}
	if g != 1 {
		return 0, false
	}
	return v, true
}

// mulMod64 returns (a*b) mod m using a 128-bit intermediate product.
func mulMod64(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// subMod64 returns (a-b) mod m for a, b in [0, m).
func subMod64(a, b, m uint64) uint64 {
	if a >= b {
		return a - b
	}
	return m - b + a
}
