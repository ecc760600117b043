// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package mods

import (
	"github.com/pkg/errors"
)

// Cast reinterprets a residue in a different storage width, keeping the
// modulus. The canonical value is carried over, so a widening cast is always
// exact; a narrowing cast fails with ErrUnrepresentable when the modulus does
// not fit the target width.
//
// Residues of the same modulus but different storage widths interoperate by
// casting both operands to the wider type first.
func Cast[U, T Word](x Mod[T]) (Mod[U], error) {
	m := toBig(x.Modulus())
	if !fitsWord[U](m) {
		return Mod[U]{}, errors.Wrapf(ErrUnrepresentable, "modulus %v in %d-bit storage", x.Modulus(), bitsOf[U]())
	}
	// value < modulus, so representability follows from the modulus check
	return Mod[U]{raw: narrow[U](toBig(x.Value())), modulus: narrow[U](m)}, nil
}
