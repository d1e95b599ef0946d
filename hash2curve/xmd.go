// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package hash2curve

import (
	"crypto"
	"errors"
)

var errLengthTooLarge = errors.New("requested length is too large")

const maxDSTLength = 255

// i2osp is the Integer-to-Octet-Stream-Primitive restricted to the small lengths this package needs.
func i2osp(value, length int) []byte {
	out := make([]byte, length)

	for i := length - 1; i >= 0; i-- {
		out[i] = byte(value & 0xff)
		value >>= 8
	}

	return out
}

// expandMessage XMD implements https://www.rfc-editor.org/rfc/rfc9380.html#section-5.3.1.
func expandXMD(id crypto.Hash, msg, dst []byte, lengthInBytes int) []byte {
	if lengthInBytes > 65535 {
		panic(errLengthTooLarge)
	}

	h := id.New()
	bInBytes := h.Size()
	sInBytes := h.BlockSize()

	ell := (lengthInBytes + bInBytes - 1) / bInBytes
	if ell > 255 {
		panic(errLengthTooLarge)
	}

	dst = vetXmdDST(id, dst)
	dstPrime := append(append([]byte{}, dst...), i2osp(len(dst), 1)...)

	zPad := make([]byte, sInBytes)
	libStr := i2osp(lengthInBytes, 2)

	h.Reset()
	h.Write(zPad)
	h.Write(msg)
	h.Write(libStr)
	h.Write(i2osp(0, 1))
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h.Reset()
	h.Write(b0)
	h.Write(i2osp(1, 1))
	h.Write(dstPrime)
	bi := h.Sum(nil)

	uniform := make([]byte, 0, ell*bInBytes)
	uniform = append(uniform, bi...)

	for i := 2; i <= ell; i++ {
		xored := make([]byte, bInBytes)
		for j := range xored {
			xored[j] = b0[j] ^ bi[j]
		}

		h.Reset()
		h.Write(xored)
		h.Write(i2osp(i, 1))
		h.Write(dstPrime)
		bi = h.Sum(nil)

		uniform = append(uniform, bi...)
	}

	return uniform[:lengthInBytes]
}

// If the tag length exceeds 255 bytes, compute a shorter tag by hashing it.
func vetXmdDST(id crypto.Hash, dst []byte) []byte {
	if len(dst) <= maxDSTLength {
		return dst
	}

	h := id.New()
	h.Write([]byte(dstLongPrefix))
	h.Write(dst)

	return h.Sum(nil)
}
