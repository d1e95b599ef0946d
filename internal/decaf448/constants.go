// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package decaf448

import "math/big"

const (
	// encodingLength is the canonical encoded size, in bytes, of both a Decaf448 element and
	// a Decaf448 scalar.
	encodingLength = 56

	// H2C is the hash-to-curve ciphersuite identifier for this group.
	H2C = "decaf448_XOF:SHAKE256_D448MAP_RO_"

	// hashToScalarSecurityLength is L in RFC 9380's hash_to_field for the ~446-bit group order.
	hashToScalarSecurityLength = 72
)

var (
	zeroInt = big.NewInt(0)
	oneInt  = big.NewInt(1)
	twoInt  = big.NewInt(2)
	fourInt = big.NewInt(4)

	// fieldPrimeInt is p = 2^448 - 2^224 - 1, the field over which Ed448-Goldilocks is defined.
	fieldPrimeInt, _ = new(big.Int).SetString(
		"726838724295606890549323807888004534353641360687318060281490199180612328166730772686396383698676545930088884461843637361053498018365439", 10)

	// groupOrderInt is l, the prime order of the Decaf448 group (cofactor 4 quotiented out).
	groupOrderInt, _ = new(big.Int).SetString(
		"181709681073901722637330951972001133588410340171829515070372549795146003961539585716195755291692375963310293709091662304773755859649779", 10)

	coordField = newFieldParams(fieldPrimeInt)
	scalarField = newFieldParams(groupOrderInt)

	feZero = newElt(coordField).zero()
	feOne  = newElt(coordField).one()
	feTwo  = newElt(coordField).set(twoInt)
	feFour = newElt(coordField).set(fourInt)

	feMinusOne = newElt(coordField).neg(feOne)

	// d is the untwisted Edwards curve equation constant: y^2 + x^2 = 1 + d*x^2*y^2, d = -39081.
	d = newElt(coordField).set(new(big.Int).Neg(big.NewInt(39081)))

	oneMinusD    = newElt(coordField).set(big.NewInt(39082))
	oneMinusTwoD = newElt(coordField).set(big.NewInt(78163))

	sqrtMinusD, _ = new(big.Int).SetString(
		"98944233647732219769177004876929019128417576295529901074099889598043702116001257856802131563896515373927712232092845883226922417596214", 10)
	invSqrtMinusD, _ = new(big.Int).SetString(
		"315019913931389607337177038330951043522456072897266928557328499619017160722351061360252776265186336876723201881398623946864393857820716", 10)

	feSqrtMinusD    = newElt(coordField).set(sqrtMinusD)
	feInvSqrtMinusD = newElt(coordField).set(invSqrtMinusD)
)
