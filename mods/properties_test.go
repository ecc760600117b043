// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package mods_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/binance-chain/mods-lib/mods"
)

func testParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	return parameters
}

// The canonical value of a sum/product/negation must match the reference
// computed in arbitrary precision, for any raw storages and any modulus.
func TestHomomorphismPropertiesUint64(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	mod := func(z *big.Int, m uint64) uint64 {
		return new(big.Int).Mod(z, new(big.Int).SetUint64(m)).Uint64()
	}

	properties.Property("value(x+y) == (value(x)+value(y)) mod M", prop.ForAll(
		func(a, b, m uint64) bool {
			x := mods.MustNew(a, m)
			y := mods.MustNew(b, m)
			sum, err := x.Add(y)
			if err != nil {
				return false
			}
			want := new(big.Int).Add(
				new(big.Int).SetUint64(x.Value()), new(big.Int).SetUint64(y.Value()))
			return sum.Value() == mod(want, m)
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64Range(2, math.MaxUint64),
	))

	properties.Property("value(x*y) == (value(x)*value(y)) mod M", prop.ForAll(
		func(a, b, m uint64) bool {
			x := mods.MustNew(a, m)
			y := mods.MustNew(b, m)
			prod, err := x.Mul(y)
			if err != nil {
				return false
			}
			want := new(big.Int).Mul(
				new(big.Int).SetUint64(x.Value()), new(big.Int).SetUint64(y.Value()))
			return prod.Value() == mod(want, m)
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64Range(2, math.MaxUint64),
	))

	properties.Property("value(-x) == (M - value(x)) mod M", prop.ForAll(
		func(a, m uint64) bool {
			x := mods.MustNew(a, m)
			want := (m - x.Value()) % m
			return x.Neg().Value() == want
		},
		gen.UInt64(), gen.UInt64Range(2, math.MaxUint64),
	))

	properties.Property("x - x == 0", prop.ForAll(
		func(a, m uint64) bool {
			x := mods.MustNew(a, m)
			d, err := x.Sub(x)
			return err == nil && d.Value() == 0
		},
		gen.UInt64(), gen.UInt64Range(2, math.MaxUint64),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestHomomorphismPropertiesInt32(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	canon := func(v int64, m int64) int64 {
		v %= m
		if v < 0 {
			v += m
		}
		return v
	}

	properties.Property("value(x+y) matches the int64 reference", prop.ForAll(
		func(a, b int32, m int32) bool {
			x := mods.MustNew(a, m)
			y := mods.MustNew(b, m)
			sum, err := x.Add(y)
			if err != nil {
				return false
			}
			return int64(sum.Value()) == canon(int64(a)+int64(b), int64(m))
		},
		gen.Int32(), gen.Int32(), gen.Int32Range(2, math.MaxInt32),
	))

	properties.Property("value(x*y) matches the int64 reference", prop.ForAll(
		func(a, b int32, m int32) bool {
			x := mods.MustNew(a, m)
			y := mods.MustNew(b, m)
			prod, err := x.Mul(y)
			if err != nil {
				return false
			}
			return int64(prod.Value()) == canon(int64(a)*int64(b), int64(m))
		},
		gen.Int32(), gen.Int32(), gen.Int32Range(2, math.MaxInt32),
	))

	properties.Property("x + (-x) == 0", prop.ForAll(
		func(a int32, m int32) bool {
			x := mods.MustNew(a, m)
			sum, err := x.Add(x.Neg())
			return err == nil && sum.Value() == 0
		},
		gen.Int32(), gen.Int32Range(2, math.MaxInt32),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestInverseProperty(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	properties.Property("inv(x) * x == 1 whenever x is invertible", prop.ForAll(
		func(a uint64, m uint64) bool {
			x := mods.MustNew(a, m)
			inv, err := x.Inverse()
			if !x.IsInvertible() {
				return err != nil
			}
			if err != nil {
				return false
			}
			prod, err := x.Mul(inv)
			return err == nil && prod.Value() == 1
		},
		gen.UInt64(), gen.UInt64Range(2, math.MaxUint64),
	))

	properties.Property("x^0 == 1 for every x", prop.ForAll(
		func(a uint64, m uint64) bool {
			p, err := mods.MustNew(a, m).Pow(0)
			return err == nil && p.Value() == 1
		},
		gen.UInt64(), gen.UInt64Range(2, math.MaxUint64),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestEqualityHashProperties(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	properties.Property("x == x+k*M and their hashes agree", prop.ForAll(
		func(a int32, m int32, k int32) bool {
			x := mods.MustNew(int64(a), int64(m))
			y := mods.MustNew(int64(a)+int64(k)*int64(m), int64(m))
			return x.Equal(y) && x.Hash() == y.Hash()
		},
		gen.Int32(), gen.Int32Range(2, math.MaxInt32), gen.Int32(),
	))

	properties.Property("equality is symmetric", prop.ForAll(
		func(a, b int64, m int64) bool {
			x := mods.MustNew(a, m)
			y := mods.MustNew(b, m)
			return x.Equal(y) == y.Equal(x)
		},
		gen.Int64(), gen.Int64(), gen.Int64Range(2, math.MaxInt64),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCRTRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	crtPrimes := []int64{11, 13, 17, 19, 23}

	properties.Property("CRT result reduces back to its remainders", prop.ForAll(
		func(i, j int, a, b int64) bool {
			if i == j {
				return true
			}
			m1, m2 := crtPrimes[i], crtPrimes[j]
			r, err := mods.CRT([]int64{a % m1, b % m2}, []int64{m1, m2})
			if err != nil {
				return false
			}
			v := r.Int64()
			return v >= 0 && v < m1*m2 && v%m1 == canonInt64(a, m1) && v%m2 == canonInt64(b, m2)
		},
		gen.IntRange(0, len(crtPrimes)-1), gen.IntRange(0, len(crtPrimes)-1),
		gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func canonInt64(v, m int64) int64 {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}
