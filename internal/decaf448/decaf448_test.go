// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package decaf448

import (
	"bytes"
	"testing"

	"github.com/go-ristretto/ristretto255/internal"
)

func TestIdentityRoundTrip(t *testing.T) {
	zero := make([]byte, encodingLength)

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

func TestBasePointRoundTrip(t *testing.T) {
	e := &Element{}
	e.Base()

	encoded := e.Encode()

	d := &Element{}
	if err := d.Decode(encoded); err != nil {
		t.Fatalf("decoding the base point's own encoding failed: %v", err)
	}

	if d.Equal(e) != 1 {
		t.Fatal("decoded base point is not equal to the original")
	}

	if !bytes.Equal(d.Encode(), encoded) {
		t.Fatal("re-encoding the decoded base point changed the bytes")
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	e := &Element{}

	if err := e.Decode(make([]byte, encodingLength-1)); err == nil {
		t.Fatal("expected decode to reject a short encoding")
	}

	if err := e.Decode(make([]byte, encodingLength+1)); err == nil {
		t.Fatal("expected decode to reject a long encoding")
	}
}

func TestEncodeRoundTripsThroughRandomPoints(t *testing.T) {
	bp := &Element{}
	bp.Base()

	acc := &Element{}
	acc.Identity()

	for i := 0; i < 24; i++ {
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

func TestSmallMultiplesAreDistinct(t *testing.T) {
	bp := &Element{}
	bp.Base()

	acc := &Element{}
	acc.Identity()

	seen := make(map[string]bool)

	zero := make([]byte, encodingLength)
	seen[string(zero)] = true

	for k := 1; k <= 16; k++ {
		acc.Add(bp)

		enc := acc.Encode()
		if seen[string(enc)] {
			t.Fatalf("multiple k=%d collided with an earlier small multiple", k)
		}

		seen[string(enc)] = true
	}
}

func TestEqualAndEncodeAgreeForAddAndDouble(t *testing.T) {
	bp := &Element{}
	bp.Base()

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

func TestNegateAndSubtractAreConsistent(t *testing.T) {
	bp := &Element{}
	bp.Base()

	neg := &Element{}
	neg.Base()
	neg.Negate()

	sum := &Element{}
	sum.Base()
	sum.Add(neg)

	if !sum.IsIdentity() {
		t.Fatal("base + (-base) is not the identity")
	}

	diff := &Element{}
	diff.Base()
	diff.Subtract(bp)

	if !diff.IsIdentity() {
		t.Fatal("base - base is not the identity")
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

func TestOneWayMapIsDeterministic(t *testing.T) {
	input := make([]byte, 2*encodingLength)
	for i := range input {
		input[i] = byte(i * 11)
	}

	p1, err := oneWayMap(input)
	if err != nil {
		t.Fatalf("oneWayMap failed: %v", err)
	}

	p2, err := oneWayMap(input)
	if err != nil {
		t.Fatalf("oneWayMap failed: %v", err)
	}

	e1 := &Element{p: *p1}
	e2 := &Element{p: *p2}

	if e1.Equal(e2) != 1 {
		t.Fatal("oneWayMap is not deterministic on identical input")
	}
}

func TestOneWayMapRejectsWrongLength(t *testing.T) {
	if _, err := oneWayMap(make([]byte, 2*encodingLength-1)); err == nil {
		t.Fatal("expected oneWayMap to reject a short input")
	}
}

func TestGroupHashToGroupIsCollisionFreeAcrossSmallInputs(t *testing.T) {
	g := New()

	seen := make(map[string]bool)

	for i := 0; i < 24; i++ {
		input := []byte{byte(i)}
		e := g.HashToGroup(input, []byte("decaf448-hash-to-group-test"))

		enc := e.Encode()
		if seen[string(enc)] {
			t.Fatalf("HashToGroup produced a collision at input %d", i)
		}

		seen[string(enc)] = true
	}
}

func TestGroupEncodeToGroupDoesNotPanic(t *testing.T) {
	g := New()

	// Regression: EncodeToGroup must request enough XOF output to clear SHAKE256's 64-byte
	// minimum, even though mapToPoint only needs encodingLength bytes' worth of entropy.
	e := g.EncodeToGroup([]byte("input"), []byte("decaf448-encode-to-group-test"))
	if e.Encode() == nil {
		t.Fatal("EncodeToGroup returned an element that fails to encode")
	}
}

func TestGroupScalarLengthAndElementLength(t *testing.T) {
	g := New()

	if g.ScalarLength() != encodingLength {
		t.Fatalf("ScalarLength() = %d, want %d", g.ScalarLength(), encodingLength)
	}

	if g.ElementLength() != encodingLength {
		t.Fatalf("ElementLength() = %d, want %d", g.ElementLength(), encodingLength)
	}
}
