// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

/*
Package crypto implements the Ristretto255 and Decaf448 prime-order groups defined by
draft-irtf-cfrg-ristretto255-decaf448, plus the hash-to-curve operations of
draft-irtf-cfrg-hash-to-curve applied to each.

Both groups quotient a cofactor-4 (Decaf448) or cofactor-8 (Ristretto255) twisted Edwards
curve down to a prime-order group, exposing the same four core operations: decode a
canonical byte encoding to a group element, encode an element back to its unique canonical
representative, map an arbitrary-length input to an element via hash-to-group, and compare
elements. Ristretto255 compares elements in constant time; Decaf448's arithmetic is built on
math/big and its comparisons, selections and absolute values branch on the values, so its
operations are not constant time. Group selects between the two ciphersuites; Element and
Scalar are the opaque value types each ciphersuite produces.
*/
package crypto
