// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package mods

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"

	"github.com/binance-chain/mods-lib/common"
)

// Mod is an integer considered only up to its remainder modulo a fixed
// modulus. Instances are immutable; every operation returns a new value.
//
// The raw storage is not reduced eagerly: it may hold any bit pattern of T,
// including negative values for signed storage. Value() performs the
// reduction.
type Mod[T Word] struct {
	raw     T
	modulus T
}

// New constructs a residue from a raw value and a modulus. The raw value is
// stored as-is; no reduction happens until Value() is called.
func New[T Word](raw, modulus T) (Mod[T], error) {
	if modulus < 2 {
		return Mod[T]{}, errors.Wrapf(ErrInvalidModulus, "got %v", modulus)
	}
	return Mod[T]{raw: raw, modulus: modulus}, nil
}

// MustNew panics where New would return an error.
func MustNew[T Word](raw, modulus T) Mod[T] {
	m, err := New(raw, modulus)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns the additive identity modulo the given modulus.
func Zero[T Word](modulus T) (Mod[T], error) {
	return New[T](0, modulus)
}

// One returns the multiplicative identity modulo the given modulus.
func One[T Word](modulus T) (Mod[T], error) {
	return New[T](1, modulus)
}

// Zero returns the additive identity with x's modulus.
func (x Mod[T]) Zero() Mod[T] {
	return Mod[T]{raw: 0, modulus: x.modulus}
}

// One returns the multiplicative identity with x's modulus.
func (x Mod[T]) One() Mod[T] {
	return Mod[T]{raw: 1, modulus: x.modulus}
}

// Modulus returns the fixed modulus of x.
func (x Mod[T]) Modulus() T {
	return x.modulus
}

// Value returns the canonical representative of x in [0, Modulus()). It is
// recomputed on every call; the raw storage is never normalised in place.
func (x Mod[T]) Value() T {
	return canonical(x.raw, x.modulus)
}

// Equal reports whether x and y represent the same residue class. Residues of
// differing moduli are never equal; this is a defined false, not an error.
// Equality goes through subtraction and canonicalization so that differing
// raw representations of the same class compare equal.
func (x Mod[T]) Equal(y Mod[T]) bool {
	if x.modulus != y.modulus {
		return false
	}
	return x.add(y.Neg()).Value() == 0
}

// Hash returns a digest of (modulus, canonical value). Equal residues hash
// identically regardless of their raw storage.
func (x Mod[T]) Hash() uint64 {
	sum := common.SHA512_256(toBig(x.modulus).Bytes(), toBig(x.Value()).Bytes())
	return binary.LittleEndian.Uint64(sum[:8])
}

func (x Mod[T]) String() string {
	return fmt.Sprintf("Mod{%v}(%v)", x.modulus, x.Value())
}
