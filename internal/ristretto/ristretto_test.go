// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/go-ristretto/ristretto255/internal"
)

// invalidCanonicalEncoding is a random valid field element (s < p, sign bit clear) that does
// not correspond to any point on the Ristretto255 curve: decode must reject it at the
// inverse-square-root step rather than the canonicalization or sign checks.
const invalidCanonicalEncoding = "04fedf98a7fa0a688492bd590807a7039ed1f6f2e1d9e2a4a45147" +
	"36f3c3a917"

func mustDecode(t *testing.T, h string) *Element {
	t.Helper()

	b, err := hex.DecodeString(h)
	if err != nil {
		t.Fatalf("bad test vector hex: %v", err)
	}

	e := &Element{}
	if err := e.Decode(b); err != nil {
		t.Fatalf("decode of %s failed: %v", h, err)
	}

	return e
}

func TestDecodeBasepoint(t *testing.T) {
	e := mustDecode(t, hex.EncodeToString(basepointCompressed[:]))

	if !bytes.Equal(e.Encode(), basepointCompressed[:]) {
		t.Fatal("basepoint does not round-trip through decode/encode")
	}
}

func TestDecodeIdentity(t *testing.T) {
	zero := make([]byte, canonicalEncodingLength)

	e := &Element{}
	if err := e.Decode(zero); err != nil {
		t.Fatalf("decoding the all-zero string failed: %v", err)
	}

	if !bytes.Equal(e.Encode(), zero) {
		t.Fatal("identity does not encode to the all-zero string")
	}

	if !e.IsIdentity() {
		t.Fatal("decoded all-zero string is not recognized as identity")
	}
}

func TestEncodeIdentityIsZero(t *testing.T) {
	e := &Element{}
	e.Identity()

	zero := make([]byte, canonicalEncodingLength)
	if !bytes.Equal(e.Encode(), zero) {
		t.Fatal("encode(identity) is not the all-zero string")
	}
}

func TestDecodeRejectsNonCurvePoint(t *testing.T) {
	b, err := hex.DecodeString(invalidCanonicalEncoding)
	if err != nil {
		t.Fatalf("bad test vector hex: %v", err)
	}

	e := &Element{}
	if err := e.Decode(b); err == nil {
		t.Fatal("expected decode to reject a valid field element that is not a Ristretto point")
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	e := &Element{}
	if err := e.Decode(make([]byte, canonicalEncodingLength-1)); err == nil {
		t.Fatal("expected decode to reject a short encoding")
	}

	if err := e.Decode(make([]byte, canonicalEncodingLength+1)); err == nil {
		t.Fatal("expected decode to reject a long encoding")
	}
}

func TestDecodeRejectsNonCanonical(t *testing.T) {
	// p = 2^255 - 19: the little-endian encoding of p itself is not canonical (it must
	// reduce to 0), so decode must reject it even though it parses as 32 bytes.
	p := make([]byte, canonicalEncodingLength)
	p[0] = 0xed
	for i := 1; i < 31; i++ {
		p[i] = 0xff
	}
	p[31] = 0x7f

	e := &Element{}
	if err := e.Decode(p); err == nil {
		t.Fatal("expected decode to reject the non-canonical encoding of p")
	}
}

func TestEncodeRoundTripsThroughRandomPoints(t *testing.T) {
	bp := &Element{}
	bp.Base()

	acc := &Element{}
	acc.Identity()

	for i := 0; i < 32; i++ {
		acc.Add(bp)

		encoded := acc.Encode()

		decoded := &Element{}
		if err := decoded.Decode(encoded); err != nil {
			t.Fatalf("round %d: re-decoding own encoding failed: %v", i, err)
		}

		if decoded.Equal(acc) != 1 {
			t.Fatalf("round %d: decoded point is not equal to the original", i)
		}

		if !bytes.Equal(decoded.Encode(), encoded) {
			t.Fatalf("round %d: re-encoding the decoded point changed the bytes", i)
		}
	}
}

// TestSmallMultiplesAreDistinctAndEncodeDeterministically checks that adding the base point
// 16 times produces 16 *distinct* canonical encodings, none equal to the identity's (the group
// order is far beyond 16), and that calling Encode twice on the same element returns the same
// bytes. It does not compare encodings across different Edwards representatives of one class.
func TestSmallMultiplesAreDistinctAndEncodeDeterministically(t *testing.T) {
	bp := &Element{}
	bp.Base()

	acc := &Element{}
	acc.Identity()

	seen := make(map[string]bool)

	zero := make([]byte, canonicalEncodingLength)
	seen[string(zero)] = true

	for k := 1; k <= 16; k++ {
		acc.Add(bp)

		enc := acc.Encode()
		if seen[string(enc)] {
			t.Fatalf("multiple k=%d collided with an earlier small multiple", k)
		}

		seen[string(enc)] = true

		// Encoding must be stable across repeated calls regardless of internal
		// representative churn from the preceding Add.
		if !bytes.Equal(enc, acc.Encode()) {
			t.Fatalf("k=%d: Encode() is not idempotent", k)
		}
	}
}

func TestEqualAndEncodeAgreeForAddAndDouble(t *testing.T) {
	bp := &Element{}
	bp.Base()

	// (bp + bp) and (bp.Double()) are computed separately (Double is itself an Edwards
	// add-with-self here), and must compare and encode identically.
	sum := &Element{}
	sum.Base()
	sum.Add(bp)

	dbl := &Element{}
	dbl.Base()
	dbl.Double()

	if sum.Equal(dbl) != 1 {
		t.Fatal("bp+bp and bp.Double() are not equal")
	}

	if !bytes.Equal(sum.Encode(), dbl.Encode()) {
		t.Fatal("bp+bp and bp.Double() do not share a canonical encoding")
	}
}

func TestCtEqZeros(t *testing.T) {
	zeros := make([]byte, canonicalEncodingLength)
	other := make([]byte, canonicalEncodingLength)
	other[0] = 1

	a := &Element{}
	if err := a.Decode(zeros); err != nil {
		t.Fatalf("decode of all-zero failed: %v", err)
	}

	b := &Element{}
	if err := b.Decode(zeros); err != nil {
		t.Fatalf("decode of all-zero failed: %v", err)
	}

	if a.Equal(b) != 1 {
		t.Fatal("ct_eq(identity, identity) != 1")
	}

	c := &Element{}
	if err := c.Decode(other); err == nil && c.Equal(a) == 1 {
		t.Fatal("ct_eq incorrectly reported two distinct encodings as equal")
	}
}

func TestFromUniformBytesIsDeterministicAndTotal(t *testing.T) {
	input := make([]byte, 2*canonicalEncodingLength)
	for i := range input {
		input[i] = byte(i * 7)
	}
	// Clear the high bit of each 32-byte half, matching the masking from_uniform_bytes
	// applies before expanding to a field element.
	input[canonicalEncodingLength-1] &= 0x7f
	input[2*canonicalEncodingLength-1] &= 0x7f

	p1, err := fromUniformBytes(input)
	if err != nil {
		t.Fatalf("fromUniformBytes failed: %v", err)
	}

	p2, err := fromUniformBytes(input)
	if err != nil {
		t.Fatalf("fromUniformBytes failed: %v", err)
	}

	e1 := &Element{*p1}
	e2 := &Element{*p2}

	if e1.Equal(e2) != 1 {
		t.Fatal("fromUniformBytes is not deterministic on identical input")
	}

	if !bytes.Equal(e1.Encode(), e2.Encode()) {
		t.Fatal("fromUniformBytes encodings differ across identical calls")
	}
}

func TestFromUniformBytesRejectsWrongLength(t *testing.T) {
	if _, err := fromUniformBytes(make([]byte, 2*canonicalEncodingLength-1)); err == nil {
		t.Fatal("expected fromUniformBytes to reject a short input")
	}
}

func TestAddNilElementPanics(t *testing.T) {
	bp := &Element{}
	bp.Base()

	if hasPanic, _ := internal.ExpectPanic(internal.ErrParamNilPoint, func() {
		bp.Add(nil)
	}); !hasPanic {
		t.Fatal("expected Add(nil) to panic")
	}
}

func TestEqualNilElementPanics(t *testing.T) {
	bp := &Element{}
	bp.Base()

	if hasPanic, _ := internal.ExpectPanic(internal.ErrParamNilPoint, func() {
		bp.Equal(nil)
	}); !hasPanic {
		t.Fatal("expected Equal(nil) to panic")
	}
}

func TestGroupHashToGroupIsCollisionFreeAcrossSmallInputs(t *testing.T) {
	g := New()

	seen := make(map[string]bool)

	for i := 0; i < 32; i++ {
		input := []byte{byte(i)}
		e := g.HashToGroup(input, []byte("ristretto255-hash-to-group-test"))

		enc := e.Encode()
		if seen[string(enc)] {
			t.Fatalf("HashToGroup produced a collision at input %d", i)
		}

		seen[string(enc)] = true
	}
}
