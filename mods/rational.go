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

// NewRational constructs the residue p/q modulo the given modulus, defined as
// New(p, modulus) / New(q, modulus). It fails with ErrNotInvertible when q is
// not a unit modulo the modulus.
func NewRational[T Word](p, q, modulus T) (Mod[T], error) {
	num, err := New(p, modulus)
	if err != nil {
		return Mod[T]{}, err
	}
	den, err := New(q, modulus)
	if err != nil {
		return Mod[T]{}, err
	}
	return num.Div(den)
}

// NewFromBigRat reduces an arbitrary-precision rational into a residue of the
// given modulus.
func NewFromBigRat[T Word](r *big.Rat, modulus T) (Mod[T], error) {
	if modulus < 2 {
		return Mod[T]{}, errors.Wrapf(ErrInvalidModulus, "got %v", modulus)
	}
	m := toBig(modulus)
	num := new(big.Int).Mod(r.Num(), m)
	den := new(big.Int).Mod(r.Denom(), m)
	return NewRational(narrow[T](num), narrow[T](den), modulus)
}

// Promote lifts a plain integer to a residue with x's modulus, so that it can
// take part in arithmetic with x. Promotion is always explicit; residues of
// differing moduli are never unified.
func (x Mod[T]) Promote(n T) Mod[T] {
	return Mod[T]{raw: n, modulus: x.modulus}
}

// PromoteRat lifts the rational p/q to a residue with x's modulus.
func (x Mod[T]) PromoteRat(p, q T) (Mod[T], error) {
	return NewRational(p, q, x.modulus)
}
