// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package hash2curve

import (
	"bytes"
	"crypto"
	"math/big"
	"strings"
	"testing"

	"github.com/go-ristretto/ristretto255/hash"
)

// ristretto255Order is ℓ, the Ristretto255/Edwards25519 scalar group order, used here only to
// exercise HashToFieldXMD's modular reduction with a realistic modulus.
const ristretto255Order = "7237005577332262213973186563042994240857116359379907606001950938285454250989"

func TestExpandZeroDSTPanics(t *testing.T) {
	msg := []byte("test")
	zeroDST := []byte("")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero length DST")
		}
	}()

	_ = ExpandXMD(crypto.SHA512, msg, zeroDST, 64)
}

func TestExpandXOFZeroDSTPanics(t *testing.T) {
	msg := []byte("test")
	zeroDST := []byte("")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero length DST")
		}
	}()

	_ = ExpandXOF(hash.SHAKE256, msg, zeroDST, 64)
}

func TestExpandLongDSTIsHashed(t *testing.T) {
	msg := []byte("test")
	longDST := []byte(strings.Repeat("a", 300))

	// A DST over 255 bytes is hashed down rather than used verbatim; this must not panic and
	// must still produce deterministic output.
	out1 := ExpandXMD(crypto.SHA512, msg, longDST, 64)
	out2 := ExpandXMD(crypto.SHA512, msg, longDST, 64)

	if !bytes.Equal(out1, out2) {
		t.Fatal("ExpandXMD with an oversized DST is not deterministic")
	}

	xof1 := ExpandXOF(hash.SHAKE256, msg, longDST, 64)
	xof2 := ExpandXOF(hash.SHAKE256, msg, longDST, 64)

	if !bytes.Equal(xof1, xof2) {
		t.Fatal("ExpandXOF with an oversized DST is not deterministic")
	}
}

func TestExpandXMDHighLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on extremely high requested output length")
		}
	}()

	_ = ExpandXMD(crypto.SHA512, []byte("input"), []byte("dst"), 9000*64)
}

func TestExpandXMDProducesRequestedLength(t *testing.T) {
	for _, length := range []int{16, 32, 64, 128, 255} {
		out := ExpandXMD(crypto.SHA512, []byte("input"), []byte("ristretto255-test-dst"), length)
		if len(out) != length {
			t.Fatalf("ExpandXMD(length=%d) returned %d bytes", length, len(out))
		}
	}
}

func TestExpandXOFProducesRequestedLength(t *testing.T) {
	// SHAKE256's declared security-level minimum output is 64 bytes; ExpandXOF enforces it,
	// so no case below may go under that floor.
	for _, length := range []int{64, 112, 128, 255} {
		out := ExpandXOF(hash.SHAKE256, []byte("input"), []byte("decaf448-test-dst"), length)
		if len(out) != length {
			t.Fatalf("ExpandXOF(length=%d) returned %d bytes", length, len(out))
		}
	}
}

func TestExpandXMDDeterministicAndSensitiveToDST(t *testing.T) {
	msg := []byte("same message")

	a := ExpandXMD(crypto.SHA512, msg, []byte("dst-one"), 64)
	b := ExpandXMD(crypto.SHA512, msg, []byte("dst-one"), 64)

	if !bytes.Equal(a, b) {
		t.Fatal("ExpandXMD is not deterministic for identical input/DST")
	}

	c := ExpandXMD(crypto.SHA512, msg, []byte("dst-two"), 64)
	if bytes.Equal(a, c) {
		t.Fatal("ExpandXMD produced identical output for two different DSTs")
	}
}

func TestHashToFieldXMDReducesModuloOrder(t *testing.T) {
	modulo, ok := new(big.Int).SetString(ristretto255Order, 10)
	if !ok {
		t.Fatal("bad test constant")
	}

	res := HashToFieldXMD(crypto.SHA512, []byte("input"), []byte("ristretto255-hash-to-field-test"), 2, 1, 48, modulo)

	if len(res) != 2 {
		t.Fatalf("HashToFieldXMD returned %d elements, want 2", len(res))
	}

	for i, r := range res {
		if r.Sign() < 0 || r.Cmp(modulo) >= 0 {
			t.Fatalf("element %d is not reduced modulo the given order: %s", i, r)
		}
	}
}
