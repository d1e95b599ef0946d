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
	"crypto"

	"filippo.io/edwards25519/field"

	"github.com/go-ristretto/ristretto255/hash2curve"
	"github.com/go-ristretto/ristretto255/internal"
)

// hashToScalarSecurityLength is L in RFC 9380's hash_to_field, chosen so the reduction bias
// modulo the (253-bit) Ristretto255 scalar order is negligible: ceil((log2(ℓ) + 128) / 8).
const hashToScalarSecurityLength = 48

// Group represents the Ristretto255 group. It exposes a prime-order group API with
// hash-to-curve operations, built atop filippo.io/edwards25519's Edwards25519 point and
// scalar arithmetic plus this package's own Ristretto decode/encode and Elligator2 map.
type Group struct{}

// New returns a new instantiation of the Ristretto255 Group.
func New() internal.Group {
	return Group{}
}

// NewScalar returns a new scalar set to 0.
func (g Group) NewScalar() internal.Scalar {
	s := &Scalar{}
	s.Zero()

	return s
}

// NewElement returns the identity element (point at infinity).
func (g Group) NewElement() internal.Element {
	e := &Element{}
	e.Identity()

	return e
}

// Base returns group's base point a.k.a. canonical generator.
func (g Group) Base() internal.Element {
	e := &Element{}
	e.Base()

	return e
}

// HashToScalar returns a safe mapping of the arbitrary input to a Scalar.
// The DST must not be empty or nil, and is recommended to be longer than 16 bytes.
func (g Group) HashToScalar(input, dst []byte) internal.Scalar {
	u := hash2curve.HashToFieldXMD(crypto.SHA512, input, dst, 1, 1, hashToScalarSecurityLength, &order)

	s := &Scalar{}
	if err := s.SetInt(u[0]); err != nil {
		panic(err)
	}

	return s
}

// HashToGroup returns a safe mapping of the arbitrary input to an Element in the Group, per
// the ristretto255_XMD:SHA-512_R255MAP_RO_ ciphersuite of draft-irtf-cfrg-ristretto255-decaf448,
// appendix B: expand to 64 uniform bytes and apply from_uniform_bytes (two Elligator2 map
// evaluations, added together).
func (g Group) HashToGroup(input, dst []byte) internal.Element {
	uniform := hash2curve.ExpandXMD(crypto.SHA512, input, dst, 2*canonicalEncodingLength)

	p, err := fromUniformBytes(uniform)
	if err != nil {
		panic(err)
	}

	return &Element{*p}
}

// EncodeToGroup returns a non-uniform mapping of the arbitrary input to an Element in the
// Group. Ristretto255 only defines a single Elligator2 evaluation here (no second map, no
// addition), so only 32 uniform bytes are expanded instead of the 64 HashToGroup requires.
func (g Group) EncodeToGroup(input, dst []byte) internal.Element {
	uniform := hash2curve.ExpandXMD(crypto.SHA512, input, dst, canonicalEncodingLength)

	t, err := new(field.Element).SetBytes(uniform)
	if err != nil {
		panic(internal.ErrParamInvalidPointEncoding)
	}

	return &Element{*mapToPoint(t)}
}

// Ciphersuite returns the hash-to-curve ciphersuite identifier.
func (g Group) Ciphersuite() string {
	return H2C
}

// ScalarLength returns the byte size of an encoded scalar.
func (g Group) ScalarLength() int {
	return canonicalEncodingLength
}

// ElementLength returns the byte size of an encoded element.
func (g Group) ElementLength() int {
	return canonicalEncodingLength
}

// Order returns the order of the canonical group of scalars.
func (g Group) Order() string {
	return orderPrime
}
