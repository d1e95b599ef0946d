// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ristretto allows simple and abstracted operations in the Ristretto255 group.
package ristretto

import (
	"encoding/hex"
	"fmt"

	ed "filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/go-ristretto/ristretto255/internal"
)

// Element implements the Element interface for the Ristretto255 group element.
type Element struct {
	element ed.Point
}

func checkElement(element internal.Element) *Element {
	if element == nil {
		panic(internal.ErrParamNilPoint)
	}

	ec, ok := element.(*Element)
	if !ok {
		panic(internal.ErrCastElement)
	}

	return ec
}

// Base sets the element to the group's base point a.k.a. canonical generator.
func (e *Element) Base() internal.Element {
	e.element.Set(ed.NewGeneratorPoint())
	return e
}

// Identity sets the element to the point at infinity of the Group's underlying curve.
func (e *Element) Identity() internal.Element {
	e.element.Set(ed.NewIdentityPoint())
	return e
}

// Add sets the receiver to the sum of the input and the receiver, and returns the receiver.
func (e *Element) Add(element internal.Element) internal.Element {
	ec := checkElement(element)
	e.element.Add(&e.element, &ec.element)

	return e
}

// Double sets the receiver to its double, and returns it.
func (e *Element) Double() internal.Element {
	e.element.Add(&e.element, &e.element)
	return e
}

// Negate sets the receiver to its negation, and returns it.
func (e *Element) Negate() internal.Element {
	e.element.Negate(&e.element)
	return e
}

// Subtract subtracts the input from the receiver, and returns the receiver.
func (e *Element) Subtract(element internal.Element) internal.Element {
	ec := checkElement(element)
	e.element.Subtract(&e.element, &ec.element)

	return e
}

// Multiply sets the receiver to the scalar multiplication of the receiver with the given Scalar, and returns it.
// Non-goal: this is plain delegation to the external Edwards25519 scalar multiplication, not part of the
// Ristretto core this package implements from scratch.
func (e *Element) Multiply(scalar internal.Scalar) internal.Element {
	if scalar == nil {
		e.Identity()
		return e
	}

	sc := assertScalar(scalar)
	e.element.ScalarMult(&sc.scalar, &e.element)

	return e
}

// Equal returns 1 if the elements are equivalent, and 0 otherwise. Per section 4.4 of
// draft-irtf-cfrg-ristretto255-decaf448, two representatives (X1:Y1:Z1:T1) and (X2:Y2:Z2:T2) denote
// the same Ristretto element iff X1*Y2 == Y1*X2 or Y1*Y2 == X1*X2.
func (e *Element) Equal(element internal.Element) int {
	ec := checkElement(element)

	x1, y1, _, _ := e.element.ExtendedCoordinates()
	x2, y2, _, _ := ec.element.ExtendedCoordinates()

	var f0, f1 field.Element

	f0.Multiply(x1, y2)
	f1.Multiply(y1, x2)
	out := f0.Equal(&f1)

	f0.Multiply(y1, y2)
	f1.Multiply(x1, x2)
	out |= f0.Equal(&f1)

	return out
}

// IsIdentity returns whether the Element is the point at infinity of the Group's underlying curve.
func (e *Element) IsIdentity() bool {
	return e.element.Equal(ed.NewIdentityPoint()) == 1
}

func (e *Element) set(element *Element) *Element {
	*e = *element
	return e
}

// Set sets the receiver to the value of the argument, and returns the receiver.
func (e *Element) Set(element internal.Element) internal.Element {
	if element == nil {
		return e.set(nil)
	}

	ec, ok := element.(*Element)
	if !ok {
		panic(internal.ErrCastElement)
	}

	return e.set(ec)
}

// Copy returns a copy of the receiver.
func (e *Element) Copy() internal.Element {
	return &Element{*ed.NewIdentityPoint().Set(&e.element)}
}

// Encode returns the canonical 32-byte encoding of the element, per section 4.3.2 of
// draft-irtf-cfrg-ristretto255-decaf448.
func (e *Element) Encode() []byte {
	x, y, z, t := e.element.ExtendedCoordinates()

	zPlusY := new(field.Element).Add(z, y)
	zMinusY := new(field.Element).Subtract(z, y)
	u1 := new(field.Element).Multiply(zPlusY, zMinusY)
	u2 := new(field.Element).Multiply(x, y)

	u2sq := new(field.Element).Square(u2)
	invsqrtResult, _ := invsqrt(new(field.Element).Multiply(u1, u2sq))

	den1 := new(field.Element).Multiply(invsqrtResult, u1)
	den2 := new(field.Element).Multiply(invsqrtResult, u2)
	zInv := new(field.Element).Multiply(den1, den2)
	zInv.Multiply(zInv, t)

	ix0 := new(field.Element).Multiply(x, sqrtM1)
	iy0 := new(field.Element).Multiply(y, sqrtM1)
	enchantedDenominator := new(field.Element).Multiply(den1, invSqrtAMinusD)

	tZInv := new(field.Element).Multiply(t, zInv)
	rotate := isNegative(tZInv)

	outX := new(field.Element).Select(iy0, x, rotate)
	outY := new(field.Element).Select(ix0, y, rotate)
	denInv := new(field.Element).Select(enchantedDenominator, den2, rotate)

	xZInv := new(field.Element).Multiply(outX, zInv)
	negY := new(field.Element).Negate(outY)
	outY = new(field.Element).Select(negY, outY, isNegative(xZInv))

	s := new(field.Element).Subtract(z, outY)
	s.Multiply(denInv, s)

	result := new(field.Element)
	ctAbsolute(result, s)

	return result.Bytes()
}

// XCoordinate returns the encoded element, which is the same as Encode() for a Ristretto255 element.
func (e *Element) XCoordinate() []byte {
	return e.Encode()
}

// decodeElement implements section 4.3.1 (Decode) of draft-irtf-cfrg-ristretto255-decaf448.
// The two early returns below only test the public input's shape (its length, and whether it
// parses as 32 bytes at all) and never touch a secret-derived value. Every check that depends
// on the decoded field element or curve point — canonical/non-negative s, square invsqrt
// candidate, non-negative t, nonzero y — is instead folded into a single accept mask with no
// intermediate branch, per section 5's constant-time discipline.
func decodeElement(data []byte) (*ed.Point, error) {
	if len(data) != canonicalEncodingLength {
		return nil, internal.ErrParamInvalidPointEncoding
	}

	s, err := new(field.Element).SetBytes(data)
	if err != nil {
		return nil, internal.ErrParamInvalidPointEncoding
	}

	// accept starts at 1 and is only ever narrowed by bitwise AND below; canonicalFieldBytes
	// and isNegative are themselves non-short-circuiting (see bytesEqual, field.Element.IsNegative).
	accept := canonicalFieldBytes(data) & (1 - isNegative(s))

	ss := new(field.Element).Square(s)
	u1 := new(field.Element).Subtract(feOne, ss)
	u2 := new(field.Element).Add(feOne, ss)
	u2Sqr := new(field.Element).Square(u2)

	v := new(field.Element).Multiply(d, new(field.Element).Square(u1))
	v.Negate(v)
	v.Subtract(v, u2Sqr)

	invSqrtCandidate, wasSquare := invsqrt(new(field.Element).Multiply(v, u2Sqr))
	accept &= wasSquare

	dx := new(field.Element).Multiply(invSqrtCandidate, u2)
	dy := new(field.Element).Multiply(invSqrtCandidate, dx)
	dy.Multiply(dy, v)

	x := new(field.Element).Add(s, s)
	x.Multiply(x, dx)
	ctAbsolute(x, x)

	y := new(field.Element).Multiply(u1, dy)

	t := new(field.Element).Multiply(x, y)

	accept &= 1 - isNegative(t)
	accept &= 1 - y.Equal(new(field.Element).Zero())

	if accept == 0 {
		return nil, internal.ErrParamInvalidPointEncoding
	}

	p, err := new(ed.Point).SetExtendedCoordinates(x, y, new(field.Element).One(), t)
	if err != nil {
		return nil, internal.ErrParamInvalidPointEncoding
	}

	return p, nil
}

// canonicalFieldBytes returns 1 if data, read as a little-endian integer, is already the
// field's canonical representative (i.e. strictly less than p = 2^255 - 19), and 0 otherwise.
func canonicalFieldBytes(data []byte) int {
	fe, err := new(field.Element).SetBytes(data)
	if err != nil {
		return 0
	}

	return bytesEqual(fe.Bytes(), data)
}

// bytesEqual implements ct_eq (section 4.1): fold the bitwise XOR of every byte pair into a
// single accumulator with no early return, then collapse to 0 or 1.
func bytesEqual(a, b []byte) int {
	if len(a) != len(b) {
		return 0
	}

	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}

	if v == 0 {
		return 1
	}

	return 0
}

// Decode sets the receiver to a decoding of the input data, and returns an error on failure.
func (e *Element) Decode(data []byte) error {
	element, err := decodeElement(data)
	if err != nil {
		return fmt.Errorf("ristretto element Decode: %w", err)
	}

	e.element = *element

	return nil
}

// Hex returns the fixed-sized hexadecimal encoding of e.
func (e *Element) Hex() string {
	return hex.EncodeToString(e.Encode())
}

// DecodeHex sets e to the decoding of the hex encoded element.
func (e *Element) DecodeHex(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("ristretto element DecodeHex: %w", err)
	}

	return e.Decode(b)
}

// MarshalBinary returns the compressed byte encoding of the element.
func (e *Element) MarshalBinary() ([]byte, error) {
	return e.Encode(), nil
}

// UnmarshalBinary sets e to the decoding of the byte encoded element.
func (e *Element) UnmarshalBinary(data []byte) error {
	return e.Decode(data)
}
