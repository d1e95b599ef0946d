// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"math/big"

	"filippo.io/edwards25519/field"
)

const (
	canonicalEncodingLength = 32

	// orderPrime is the order of the Ristretto255 / Edwards25519 prime-order scalar group, ℓ.
	orderPrime = "7237005577332262213973186563042994240857116359379907606001950938285454250989"

	// H2C is the hash-to-curve ciphersuite identifier for this group.
	H2C = "ristretto255_XMD:SHA-512_R255MAP_RO_"
)

// fieldElementFromDecimal builds a field.Element from a base-10 string, matching the constants
// published alongside the ristretto255 reference implementation.
func fieldElementFromDecimal(s string) *field.Element {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("ristretto: invalid decimal constant")
	}

	// big.Int.FillBytes is big-endian; the field package wants little-endian.
	be := i.FillBytes(make([]byte, canonicalEncodingLength))
	buf := make([]byte, canonicalEncodingLength)

	for j := 0; j < canonicalEncodingLength; j++ {
		buf[j] = be[canonicalEncodingLength-1-j]
	}

	e, err := new(field.Element).SetBytes(buf)
	if err != nil {
		panic(err)
	}

	return e
}

// Curve and Elligator constants, grounded on the decimal constants published with the
// ristretto255 reference implementation (the same values appear in every conformant
// ristretto255 codebase, filippo.io/edwards25519-based or not).
var (
	// d is the Edwards25519 curve equation constant: -x^2 + y^2 = 1 + d*x^2*y^2.
	d = fieldElementFromDecimal(
		"37095705934669439343138083508754565189542113879843219016388785533085940283555")

	// sqrtM1 is a square root of -1 modulo p.
	sqrtM1 = fieldElementFromDecimal(
		"19681161376707505956807079304988542015446066515923890162744021073123829784752")

	// sqrtADMinusOne is sqrt(a*d - 1), with a = -1 for Edwards25519.
	sqrtADMinusOne = fieldElementFromDecimal(
		"25063068953384623474111414158702152701244531502492656460079210482610430750235")

	// invSqrtAMinusD is 1/sqrt(a-d), with a = -1 for Edwards25519.
	invSqrtAMinusD = fieldElementFromDecimal(
		"54469307008909316920995813868745141605393597292927456921205312896311721017578")

	// oneMinusDSQ is 1 - d^2.
	oneMinusDSQ = fieldElementFromDecimal(
		"1159843021668779879193775521855586647937357759715417654439879720876111806838")

	// dMinusOneSQ is (d-1)^2.
	dMinusOneSQ = fieldElementFromDecimal(
		"40440834346308536858101042469323190826248399146238708352240133220865137265952")

	feOne      = new(field.Element).One()
	feMinusOne = new(field.Element).Negate(feOne)
)

// basepointCompressed is the canonical 32-byte encoding of the Ristretto255 group generator.
var basepointCompressed = [canonicalEncodingLength]byte{
	0xe2, 0xf2, 0xae, 0x0a, 0x6a, 0xbc, 0x4e, 0x71,
	0xa8, 0x84, 0xa9, 0x61, 0xc5, 0x00, 0x51, 0x5f,
	0x58, 0xe3, 0x0b, 0x6a, 0xa5, 0x82, 0xdd, 0x8d,
	0xb6, 0xa6, 0x59, 0x45, 0xe0, 0x8d, 0x2d, 0x76,
}
