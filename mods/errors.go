// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package mods

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidModulus is returned when a residue is constructed with a modulus below 2.
	ErrInvalidModulus = errors.New("modulus must be at least 2")

	// ErrIncompatibleModuli is returned when binary arithmetic is attempted
	// across residues of differing moduli. Equality is the exception: it
	// returns false rather than failing.
	ErrIncompatibleModuli = errors.New("residues have differing moduli")

	// ErrNotInvertible is returned when an inverse, a division or a negative
	// power is requested of a residue whose value shares a factor with the modulus.
	ErrNotInvertible = errors.New("residue is not invertible")

	// ErrSizeMismatch is returned by CRT when the remainder and modulus
	// sequences differ in length.
	ErrSizeMismatch = errors.New("remainders and moduli differ in length")

	// ErrEmptyInput is returned by CRT when no residues are supplied.
	ErrEmptyInput = errors.New("no residues supplied")

	// ErrUnrepresentable is returned when a result does not fit the requested
	// storage width.
	ErrUnrepresentable = errors.New("value does not fit the storage width")

	// ErrModuliNotCoprime is returned by CRTChecked when two supplied moduli
	// share a common factor.
	ErrModuliNotCoprime = errors.New("moduli are not pairwise coprime")
)
