// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package mods

import (
	"math/big"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/binance-chain/mods-lib/common"
)

// CRT reconstructs the unique value modulo the product of the supplied moduli
// from its remainders modulo each. The moduli must be pairwise coprime; this
// precondition is not validated here (see CRTChecked), and violating it makes
// the result mathematically meaningless, surfacing at best as
// ErrNotInvertible from the inversion step.
//
// It fails with ErrSizeMismatch when the sequences differ in length and with
// ErrEmptyInput when they are empty.
func CRT[T Word](remainders, moduli []T) (*big.Int, error) {
	if len(remainders) != len(moduli) {
		return nil, errors.Wrapf(ErrSizeMismatch, "%d remainders, %d moduli", len(remainders), len(moduli))
	}
	if len(remainders) == 0 {
		return nil, ErrEmptyInput
	}
	rs := make([]Mod[T], len(remainders))
	for i := range remainders {
		r, err := New(remainders[i], moduli[i])
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}
	return CRTResidues(rs...)
}

// CRTResidues is the residue-based form of CRT. Unlike binary arithmetic,
// differing moduli here are the whole point, so no modulus-equality check
// applies.
func CRTResidues[T Word](rs ...Mod[T]) (*big.Int, error) {
	if len(rs) == 0 {
		return nil, ErrEmptyInput
	}
	bigM := big.NewInt(1)
	for _, r := range rs {
		if r.modulus < 2 {
			return nil, errors.Wrapf(ErrInvalidModulus, "got %v", r.modulus)
		}
		bigM.Mul(bigM, toBig(r.modulus))
	}
	sum := new(big.Int)
	for _, r := range rs {
		mi := toBig(r.modulus)
		// Mi = M / m_i; t_i = Mi^-1 (mod m_i), via the fixed-width inversion
		// primitive after reducing Mi into m_i's range.
		Mi := new(big.Int).Div(bigM, mi)
		MiRed := Mod[T]{raw: narrow[T](new(big.Int).Mod(Mi, mi)), modulus: r.modulus}
		ti, err := MiRed.Inverse()
		if err != nil {
			return nil, errors.Wrapf(err, "modulus %v is not coprime to the others", r.modulus)
		}
		term := new(big.Int).Mul(toBig(r.Value()), toBig(ti.Value()))
		sum.Add(sum, term.Mul(term, Mi))
	}
	return sum.Mod(sum, bigM), nil
}

// Combine runs CRTResidues and wraps the result as a residue whose modulus is
// the product of the inputs' moduli. It fails with ErrUnrepresentable when
// that product does not fit the storage width.
func Combine[T Word](rs ...Mod[T]) (Mod[T], error) {
	v, err := CRTResidues(rs...)
	if err != nil {
		return Mod[T]{}, err
	}
	bigM := big.NewInt(1)
	for _, r := range rs {
		bigM.Mul(bigM, toBig(r.modulus))
	}
	if !fitsWord[T](bigM) {
		return Mod[T]{}, errors.Wrapf(ErrUnrepresentable, "combined modulus %v in %d-bit storage", bigM, bitsOf[T]())
	}
	return Mod[T]{raw: narrow[T](v), modulus: narrow[T](bigM)}, nil
}

// CRTChecked is CRT with an explicit pairwise-coprimality check up front. All
// offending pairs are reported, not just the first.
func CRTChecked[T Word](remainders, moduli []T) (*big.Int, error) {
	if err := checkPairwiseCoprime(moduli); err != nil {
		common.Logger.Debugf("CRT rejected: %v", err)
		return nil, err
	}
	return CRT(remainders, moduli)
}

func checkPairwiseCoprime[T Word](moduli []T) error {
	var result *multierror.Error
	for i := 0; i < len(moduli); i++ {
		if moduli[i] < 2 {
			continue // reported as ErrInvalidModulus by CRT itself
		}
		for j := i + 1; j < len(moduli); j++ {
			if moduli[j] < 2 {
				continue
			}
			if g := gcd64(uint64(moduli[i]), uint64(moduli[j])); g != 1 {
				result = multierror.Append(result,
					errors.Wrapf(ErrModuliNotCoprime, "%v and %v share the factor %d", moduli[i], moduli[j], g))
			}
		}
	}
	return result.ErrorOrNil()
}
