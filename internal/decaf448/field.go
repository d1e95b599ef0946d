// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package decaf448 implements the Decaf448 prime-order group over the untwisted Edwards
// curve Ed448-Goldilocks, per draft-irtf-cfrg-ristretto255-decaf448.
package decaf448

import (
	"math/big"

	ifield "github.com/go-ristretto/ristretto255/internal/field"
)

// fieldParams wraps internal/field's generic modular-arithmetic Field with the extra exponent
// (p-3)/4 that SqrtRatio needs; it is shared by both the curve's coordinate field (modulo
// fieldPrime) and the scalar field (modulo groupOrderInt).
type fieldParams struct {
	field       ifield.Field
	pMinus3Div4 *big.Int
}

func newFieldParams(prime *big.Int) *fieldParams {
	p3 := new(big.Int).Sub(prime, big.NewInt(3))
	p3.Rsh(p3, 2)

	return &fieldParams{
		field:       ifield.NewField(prime),
		pMinus3Div4: p3,
	}
}

func (f *fieldParams) mod(x *big.Int) *big.Int {
	return f.field.Mod(x)
}

func (f *fieldParams) order() *big.Int {
	return f.field.Order()
}

// fieldElt is a big.Int-backed residue modulo one of this package's two fieldParams, reduced
// after every operation.
type fieldElt struct {
	f *fieldParams
	v big.Int
}

func newElt(f *fieldParams) *fieldElt {
	e := &fieldElt{f: f}
	e.v.Set(zeroInt)

	return e
}

func (e *fieldElt) set(v *big.Int) *fieldElt {
	e.v.Set(v)
	e.f.mod(&e.v)

	return e
}

func (e *fieldElt) setElt(a *fieldElt) *fieldElt {
	e.f = a.f
	return e.set(&a.v)
}

func (e *fieldElt) zero() *fieldElt {
	e.v.Set(zeroInt)
	return e
}

func (e *fieldElt) one() *fieldElt {
	e.v.Set(oneInt)
	return e
}

func (e *fieldElt) add(a, b *fieldElt) *fieldElt {
	e.f = a.f
	e.f.field.Add(&e.v, &a.v, &b.v)

	return e
}

func (e *fieldElt) sub(a, b *fieldElt) *fieldElt {
	e.f = a.f
	e.f.field.Sub(&e.v, &a.v, &b.v)

	return e
}

func (e *fieldElt) mul(a, b *fieldElt) *fieldElt {
	e.f = a.f
	e.f.field.Mul(&e.v, &a.v, &b.v)

	return e
}

func (e *fieldElt) sq(a *fieldElt) *fieldElt {
	return e.mul(a, a)
}

func (e *fieldElt) neg(a *fieldElt) *fieldElt {
	e.f = a.f
	e.v.Neg(&a.v)
	e.f.mod(&e.v)

	return e
}

func (e *fieldElt) invert(a *fieldElt) *fieldElt {
	e.f = a.f
	e.f.field.Inv(&e.v, &a.v)

	return e
}

func (e *fieldElt) exp(a *fieldElt, n *big.Int) *fieldElt {
	e.f = a.f
	e.f.field.Exponent(&e.v, &a.v, n)

	return e
}

func (e *fieldElt) isZero() bool {
	return e.v.Sign() == 0
}

// isNegative reports sign(x) as defined in draft-irtf-cfrg-ristretto255-decaf448: the least
// significant bit of the canonical (little-endian) encoding of x.
func (e *fieldElt) isNegative() int {
	return int(e.v.Bit(0))
}

func (e *fieldElt) absolute(a *fieldElt) *fieldElt {
	if a.isNegative() == 1 {
		return e.neg(a)
	}

	return e.setElt(a)
}

func (e *fieldElt) equal(b *fieldElt) int {
	if e.v.Cmp(&b.v) == 0 {
		return 1
	}

	return 0
}

func (e *fieldElt) selectElt(a, b *fieldElt, cond int) *fieldElt {
	if cond == 1 {
		return e.setElt(a)
	}

	return e.setElt(b)
}

// bytes returns the fixed-length little-endian encoding of e.
func (e *fieldElt) bytes() []byte {
	be := e.v.FillBytes(make([]byte, encodingLength))
	return reverseBytes(be)
}

func setBytesLittle(f *fieldParams, data []byte) *fieldElt {
	be := reverseBytes(append([]byte(nil), data...))

	e := newElt(f)
	e.v.SetBytes(be)

	return e
}

func reverseBytes(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return b
}

// sqrtRatioM1 implements SQRT_RATIO_M1(u, v) from section 4.1/4.3 of
// draft-irtf-cfrg-ristretto255-decaf448, generalized to an arbitrary field whose prime is
// congruent to 3 mod 4: r = u * (u*v)^((p-3)/4); was_square iff v*r^2 == u; return
// (was_square, CT_ABS(r)).
func sqrtRatioM1(f *fieldParams, u, v *fieldElt) (wasSquare int, root *fieldElt) {
	r := newElt(f).mul(u, v)
	r.exp(r, f.pMinus3Div4)
	r.mul(r, u)

	check := newElt(f).sq(r)
	check.mul(check, v)
	wasSquare = check.equal(u)

	root = newElt(f).absolute(r)

	return wasSquare, root
}
