// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - secp256k1 (K1) keys and recoverable signatures
//
// text formats:
//   private key  WIF:   base58(0x80 || key || sha256d(0x80 || key)[:4])
//                K1:    "PVT_K1_" base58(key || ripemd160(key || "K1")[:4])
//   public key   legacy: prefix base58(key || ripemd160(key)[:4])
//                K1:     "PUB_K1_" base58(key || ripemd160(key || "K1")[:4])
//   signature    "SIG_K1_" base58(sig || ripemd160(sig || "K1")[:4])
//
// the legacy public key prefix is not global state, callers pass it
// to Text and PublicKeyFromText
package keypair
