// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package mods implements fixed-width modular integers: immutable residues
// tagged with a modulus M >= 2, supporting overflow-safe addition and
// multiplication, extended-Euclidean inversion, exponentiation, uniform
// sampling and recombination of coprime-modulus residues via the Chinese
// Remainder Theorem.
//
// Raw storage is lazy: it may sit anywhere in the storage type's range between
// operations, and only Value() reduces it to the canonical representative in
// [0, M). Equality and hashing are defined on the canonical value, never on
// the raw storage.
package mods
