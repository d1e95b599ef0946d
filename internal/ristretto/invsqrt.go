// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import "filippo.io/edwards25519/field"

// ctEq returns 1 if a and b are equal, and 0 otherwise, in constant time.
func ctEq(a, b *field.Element) int {
	return a.Equal(b)
}

// isNegative reports whether the canonical encoding of e has its least significant bit set,
// matching sign(x) in draft-irtf-cfrg-ristretto255-decaf448.
func isNegative(e *field.Element) int {
	return e.IsNegative()
}

// ctAbsolute sets v to the non-negative representative of e, and returns v.
func ctAbsolute(v, e *field.Element) *field.Element {
	return v.Absolute(e)
}

// invsqrt returns (1/sqrt(v), 1) if v is a nonzero square, (sqrt(-1)/sqrt(v), 0) if v is
// a nonzero non-square, and (0, 0) if v is zero, per section 4.1 of
// draft-irtf-cfrg-ristretto255-decaf448.
func invsqrt(v *field.Element) (root *field.Element, wasSquare int) {
	root = new(field.Element)
	_, wasSquare = root.SqrtRatio(feOne, v)

	return root, wasSquare
}
