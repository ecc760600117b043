// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package mods

import (
	"math/big"

	"github.com/pkg/errors"
)

// Add returns x+y. The raw storages are summed without reduction when the sum
// fits the storage width; otherwise the sum is recomputed in arbitrary
// precision, reduced modulo M and narrowed back.
func (x Mod[T]) Add(y Mod[T]) (Mod[T], error) {
	if err := x.sameModulus(y); err != nil {
		return Mod[T]{}, err
	}
	return x.add(y), nil
}

// Sub returns x-y.
func (x Mod[T]) Sub(y Mod[T]) (Mod[T], error) {
	if err := x.sameModulus(y); err != nil {
		return Mod[T]{}, err
	}
	return x.add(y.Neg()), nil
}

// Mul returns x*y, falling back to a widened multiplication when the raw
// product would wrap the storage width.
func (x Mod[T]) Mul(y Mod[T]) (Mod[T], error) {
	if err := x.sameModulus(y); err != nil {
		return Mod[T]{}, err
	}
	return x.mul(y), nil
}

// Neg returns -x. Signed storage negates the raw value directly unless it is
// the most negative representable value, which is canonicalized first;
// unsigned storage computes M - Value(x).
func (x Mod[T]) Neg() Mod[T] {
	if !signedWord[T]() {
		v := x.Value()
		if v == 0 {
			return Mod[T]{raw: 0, modulus: x.modulus}
		}
		return Mod[T]{raw: x.modulus - v, modulus: x.modulus}
	}
	raw := x.raw
	if raw == minWord[T]() {
		raw = x.Value()
	}
	return Mod[T]{raw: -raw, modulus: x.modulus}
}

// IsInvertible reports whether x has a multiplicative inverse, i.e. whether
// its value is coprime to the modulus.
func (x Mod[T]) IsInvertible() bool {
	return gcd64(uint64(x.Value()), uint64(x.modulus)) == 1
}

// Div returns x/y, defined as x * Inverse(y). It fails with ErrNotInvertible
// when y is not a unit.
func (x Mod[T]) Div(y Mod[T]) (Mod[T], error) {
	if err := x.sameModulus(y); err != nil {
		return Mod[T]{}, err
	}
	inv, err := y.Inverse()
	if err != nil {
		return Mod[T]{}, err
	}
	return x.mul(inv), nil
}

// Pow returns x^k. k == 0 yields the multiplicative identity for every x,
// including zero. Negative k requires x to be invertible.
func (x Mod[T]) Pow(k int64) (Mod[T], error) {
	base := x
	if k < 0 {
		inv, err := x.Inverse()
		if err != nil {
			return Mod[T]{}, err
		}
		base = inv
	}
	// -k without overflowing int64's minimum
	var e uint64
	if k < 0 {
		e = uint64(-(k + 1)) + 1
	} else {
		e = uint64(k)
	}
	result := x.One()
	for e > 0 {
		if e&1 == 1 {
			result = result.mul(base)
		}
		base = base.mul(base)
		e >>= 1
	}
	return result, nil
}

func (x Mod[T]) sameModulus(y Mod[T]) error {
	if x.modulus != y.modulus {
		return errors.Wrapf(ErrIncompatibleModuli, "%v vs %v", x.modulus, y.modulus)
	}
	return nil
}

func (x Mod[T]) add(y Mod[T]) Mod[T] {
	if addOverflows(x.raw, y.raw) {
		return Mod[T]{raw: wideApply((*big.Int).Add, x.raw, y.raw, x.modulus), modulus: x.modulus}
	}
	return Mod[T]{raw: x.raw + y.raw, modulus: x.modulus}
}

func (x Mod[T]) mul(y Mod[T]) Mod[T] {
	if mulOverflows(x.raw, y.raw) {
		return Mod[T]{raw: wideApply((*big.Int).Mul, x.raw, y.raw, x.modulus), modulus: x.modulus}
	}
	return Mod[T]{raw: x.raw * y.raw, modulus: x.modulus}
}
