// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	ed "filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/go-ristretto/ristretto255/internal"
)

// mapToPoint implements the Ristretto255 flavor of the Elligator2 map (section 4.3.4 of
// draft-irtf-cfrg-ristretto255-decaf448), translated field element by field element from the
// reference ristretto255 implementation onto filippo.io/edwards25519/field.Element.
func mapToPoint(t *field.Element) *ed.Point {
	r := new(field.Element).Square(t)
	r.Multiply(r, sqrtM1)

	u := new(field.Element).Add(r, feOne)
	u.Multiply(u, oneMinusDSQ)

	rPlusD := new(field.Element).Add(r, d)
	v := new(field.Element).Multiply(r, d)
	v.Subtract(feMinusOne, v)
	v.Multiply(v, rPlusD)

	s := new(field.Element)
	_, wasSquare := s.SqrtRatio(u, v)

	sPrime := new(field.Element).Multiply(s, t)
	ctAbsolute(sPrime, sPrime)
	sPrime.Negate(sPrime)

	s = new(field.Element).Select(s, sPrime, wasSquare)
	c := new(field.Element).Select(feMinusOne, r, wasSquare)

	n := new(field.Element).Subtract(r, feOne)
	n.Multiply(n, c)
	n.Multiply(n, dMinusOneSQ)
	n.Subtract(n, v)

	sSquare := new(field.Element).Square(s)

	w0 := new(field.Element).Multiply(s, v)
	w0.Add(w0, w0)
	w1 := new(field.Element).Multiply(n, sqrtADMinusOne)
	w2 := new(field.Element).Subtract(feOne, sSquare)
	w3 := new(field.Element).Add(feOne, sSquare)

	x := new(field.Element).Multiply(w0, w3)
	y := new(field.Element).Multiply(w2, w1)
	z := new(field.Element).Multiply(w1, w3)
	tOut := new(field.Element).Multiply(w0, w2)

	p, err := new(ed.Point).SetExtendedCoordinates(x, y, z, tOut)
	if err != nil {
		panic(err)
	}

	return p
}

// fromUniformBytes implements from_uniform_bytes (section 4.3.4): it splits a 64-byte uniformly
// random string in half, maps each half to the curve with mapToPoint, and adds the results.
func fromUniformBytes(data []byte) (*ed.Point, error) {
	if len(data) != 2*canonicalEncodingLength {
		return nil, internal.ErrParamInvalidPointEncoding
	}

	t1, err := new(field.Element).SetBytes(data[:canonicalEncodingLength])
	if err != nil {
		return nil, internal.ErrParamInvalidPointEncoding
	}

	t2, err := new(field.Element).SetBytes(data[canonicalEncodingLength:])
	if err != nil {
		return nil, internal.ErrParamInvalidPointEncoding
	}

	p1 := mapToPoint(t1)
	p2 := mapToPoint(t2)

	return p1.Add(p1, p2), nil
}
