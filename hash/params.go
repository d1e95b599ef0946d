// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package hash

import "crypto"

const (
	// output size in bytes.
	size256 = 32
	size512 = 64

	// security level in bits.
	sec128 = 128
	sec256 = 256
)

// parameters holds the properties shared by fixed-output and extendable-output hash registrations.
type parameters struct {
	name       string
	blockSize  int
	outputSize int
	security   int
}

// GetCryptoID returns the standard library crypto.Hash identifier matching the receiver.
func (i Hashing) GetCryptoID() crypto.Hash {
	switch i {
	case SHA256:
		return crypto.SHA256
	case SHA512:
		return crypto.SHA512
	case SHA3_256:
		return crypto.SHA3_256
	case SHA3_512:
		return crypto.SHA3_512
	default:
		return 0
	}
}

// FromCrypto returns the Hashing identifier matching a standard library crypto.Hash value.
func FromCrypto(id crypto.Hash) Hashing {
	switch id {
	case crypto.SHA256:
		return SHA256
	case crypto.SHA512:
		return SHA512
	case crypto.SHA3_256:
		return SHA3_256
	case crypto.SHA3_512:
		return SHA3_512
	default:
		return 0
	}
}
