// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package mods

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/binance-chain/mods-lib/common"
)

// Random draws a residue whose raw storage is uniform over the full range of
// T, reading exactly one storage word from the supplied source.
// Canonicalization stays lazy, as with any other construction.
//
// Note that the resulting distribution over [0, M) carries a small bias
// toward lower residue classes unless the storage range is an exact multiple
// of M. Use RandomUnit for draws that must be uniform over their support.
func Random[T Word](rand io.Reader, modulus T) (Mod[T], error) {
	if modulus < 2 {
		return Mod[T]{}, errors.Wrapf(ErrInvalidModulus, "got %v", modulus)
	}
	var buf [8]byte
	if _, err := io.ReadFull(rand, buf[:bitsOf[T]()/8]); err != nil {
		return Mod[T]{}, errors.Wrap(err, "reading a random storage word")
	}
	return Mod[T]{raw: T(binary.LittleEndian.Uint64(buf[:])), modulus: modulus}, nil
}

// RandomBatch draws n independent residues of the given modulus.
func RandomBatch[T Word](rand io.Reader, modulus T, n int) ([]Mod[T], error) {
	if n < 0 {
		return nil, errors.Errorf("invalid batch size %d", n)
	}
	out := make([]Mod[T], n)
	for i := range out {
		r, err := Random(rand, modulus)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// RandomUnit draws an invertible residue, uniform over the multiplicative
// group modulo the modulus.
func RandomUnit[T Word](rand io.Reader, modulus T) (Mod[T], error) {
	if modulus < 2 {
		return Mod[T]{}, errors.Wrapf(ErrInvalidModulus, "got %v", modulus)
	}
	v := common.GetRandomPositiveRelativelyPrimeInt(rand, toBig(modulus))
	if v == nil {
		return Mod[T]{}, errors.New("sampling from the multiplicative group failed")
	}
	return Mod[T]{raw: narrow[T](v), modulus: modulus}, nil
}
