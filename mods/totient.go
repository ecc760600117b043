// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package mods

import (
	"github.com/otiai10/primes"
	"github.com/pkg/errors"
)

// Totient returns Euler's phi(m): the number of invertible residues modulo m,
// i.e. the order of the multiplicative group sampled by RandomUnit.
func Totient(m int64) (int64, error) {
	if m < 2 {
		return 0, errors.Wrapf(ErrInvalidModulus, "got %v", m)
	}
	phi := m
	for _, p := range primes.Factorize(m).List() {
		phi = phi / p * (p - 1)
	}
	return phi, nil
}
