// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package decaf448

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/go-ristretto/ristretto255/internal"
)

// Scalar implements the Scalar interface for Decaf448 group scalars, backed by a big.Int
// residue modulo the group order via the shared fieldElt/fieldParams machinery in field.go.
type Scalar struct {
	s fieldElt
}

func assertScalar(scalar internal.Scalar) *Scalar {
	sc, ok := scalar.(*Scalar)
	if !ok {
		panic(internal.ErrCastScalar)
	}

	return sc
}

// Zero sets the scalar to 0, and returns it.
func (s *Scalar) Zero() internal.Scalar {
	s.s.f = scalarField
	s.s.zero()

	return s
}

// One sets the scalar to 1, and returns it.
func (s *Scalar) One() internal.Scalar {
	s.s.f = scalarField
	s.s.one()

	return s
}

// Random sets the current scalar to a new random scalar and returns it.
// The random source is crypto/rand, and this function is guaranteed to return a non-zero scalar.
func (s *Scalar) Random() internal.Scalar {
	s.s.f = scalarField

	for {
		s.s.f.field.Random(&s.s.v)
		if !s.IsZero() {
			return s
		}
	}
}

// Add sets the receiver to the sum of the input and the receiver, and returns the receiver.
func (s *Scalar) Add(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s
	}

	sc := assertScalar(scalar)
	s.s.add(&s.s, &sc.s)

	return s
}

// Subtract subtracts the input from the receiver, and returns the receiver.
func (s *Scalar) Subtract(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s
	}

	sc := assertScalar(scalar)
	s.s.sub(&s.s, &sc.s)

	return s
}

// Multiply multiplies the receiver with the input, and returns the receiver.
func (s *Scalar) Multiply(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s.Zero()
	}

	sc := assertScalar(scalar)
	s.s.mul(&s.s, &sc.s)

	return s
}

// Pow sets s to s**scalar modulo the group order, and returns s. If scalar is nil, it returns 1.
func (s *Scalar) Pow(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s.One()
	}

	sc := assertScalar(scalar)
	s.s.exp(&s.s, &sc.s.v)

	return s
}

// Invert sets the receiver to the scalar's modular inverse ( 1 / scalar ), and returns it.
func (s *Scalar) Invert() internal.Scalar {
	s.s.invert(&s.s)
	return s
}

// Equal returns 1 if the scalars are equal, and 0 otherwise.
func (s *Scalar) Equal(scalar internal.Scalar) int {
	if scalar == nil {
		return 0
	}

	sc := assertScalar(scalar)

	return s.s.equal(&sc.s)
}

// LessOrEqual returns 1 if s <= scalar, and 0 otherwise.
func (s *Scalar) LessOrEqual(scalar internal.Scalar) int {
	sc := assertScalar(scalar)

	if s.s.v.Cmp(&sc.s.v) <= 0 {
		return 1
	}

	return 0
}

// IsZero returns whether the scalar is 0.
func (s *Scalar) IsZero() bool {
	return s.s.isZero()
}

// Set sets the receiver to the value of the argument scalar, and returns the receiver.
func (s *Scalar) Set(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		s.s.f = scalarField
		s.s.zero()

		return s
	}

	sc := assertScalar(scalar)
	s.s.f = scalarField
	s.s.setElt(&sc.s)

	return s
}

// SetInt sets s to i modulo the group order, and returns an error if one occurs.
func (s *Scalar) SetInt(i *big.Int) error {
	s.s.f = scalarField
	s.s.set(new(big.Int).Set(i))

	return nil
}

// Copy returns a copy of the receiver.
func (s *Scalar) Copy() internal.Scalar {
	cp := &Scalar{}
	cp.s.f = scalarField
	cp.s.setElt(&s.s)

	return cp
}

// Encode returns the compressed little-endian byte encoding of the scalar.
func (s *Scalar) Encode() []byte {
	return s.s.bytes()
}

// Decode sets the receiver to a decoding of the input data, and returns an error on failure.
func (s *Scalar) Decode(in []byte) error {
	if len(in) == 0 {
		return internal.ErrParamNilScalar
	}

	if len(in) != encodingLength {
		return internal.ErrParamScalarLength
	}

	e := setBytesLittle(scalarField, in)
	if e.v.Cmp(scalarField.order()) >= 0 {
		return fmt.Errorf("decaf448 scalar Decode: %w", internal.ErrParamScalarTooBig)
	}

	s.s = *e

	return nil
}

// Hex returns the fixed-sized hexadecimal encoding of s.
func (s *Scalar) Hex() string {
	return hex.EncodeToString(s.Encode())
}

// DecodeHex sets s to the decoding of the hex encoded scalar.
func (s *Scalar) DecodeHex(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("decaf448 scalar DecodeHex: %w", err)
	}

	return s.Decode(b)
}

// MarshalBinary returns the compressed byte encoding of the scalar.
func (s *Scalar) MarshalBinary() (data []byte, err error) {
	return s.Encode(), nil
}

// UnmarshalBinary sets e to the decoding of the byte encoded scalar.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	if err := s.Decode(data); err != nil {
		return fmt.Errorf("decaf448: %w", err)
	}

	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s *Scalar) MarshalText() (text []byte, err error) {
	return []byte(base64.StdEncoding.EncodeToString(s.Encode())), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *Scalar) UnmarshalText(text []byte) error {
	sb, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("decaf448 scalar UnmarshalText: %w", err)
	}

	return s.Decode(sb)
}
