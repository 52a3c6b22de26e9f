// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"strings"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	sha256 "github.com/minio/sha256-simd"

	"github.com/bitmark-inc/eosapi/fault"
)

// sizes
const (
	DigestSize    = 32
	SignatureSize = 65
)

// compact header: 27 + 4 (compressed key) + recovery code
const compactHeaderBase = 27 + 4

const k1SignaturePrefix = "SIG_K1_"

// Digest - a 32 byte hash
type Digest [DigestSize]byte

// Signature - compact recoverable form: header || r || s
type Signature [SignatureSize]byte

// NewDigest - sha256 of the concatenated parts
func NewDigest(parts ...[]byte) Digest {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// DigestFromBytes - b must be exactly 32 bytes
func DigestFromBytes(b []byte) (Digest, error) {
	var d Digest
	if DigestSize != len(b) {
		return d, fault.DigestLength
	}
	copy(d[:], b)
	return d, nil
}

// Sign - deterministic signature of a digest
//
// RFC6979 nonces are drawn with an increasing iteration count until
// the signature is canonical: neither r nor s may carry a high bit or
// a redundant leading zero byte
func Sign(k PrivateKey, digest Digest) (Signature, error) {
	var key secp256k1.ModNScalar
	if overflow := key.SetByteSlice(k[:]); overflow || key.IsZero() {
		return Signature{}, fault.InvalidPrivateKey
	}
	defer key.Zero()

	for iteration := uint32(0); ; iteration += 1 {
		sig, ok := signAttempt(&key, k[:], digest[:], iteration)
		if ok && sig.IsCanonical() {
			return sig, nil
		}
	}
}

func signAttempt(key *secp256k1.ModNScalar, keyBytes []byte, hash []byte, iteration uint32) (Signature, bool) {
	var sig Signature

	nonce := secp256k1.NonceRFC6979(keyBytes, hash, nil, nil, iteration)
	defer nonce.Zero()

	var kG secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(nonce, &kG)
	kG.ToAffine()

	var xBytes [32]byte
	kG.X.PutBytes(&xBytes)
	var r secp256k1.ModNScalar
	overflow := r.SetBytes(&xBytes)
	if r.IsZero() {
		return sig, false
	}
	recoveryCode := byte(overflow<<1) | byte(kG.Y.IsOddBit())

	var e secp256k1.ModNScalar
	e.SetByteSlice(hash)
	kInverse := new(secp256k1.ModNScalar).InverseValNonConst(nonce)
	s := new(secp256k1.ModNScalar).Mul2(key, &r).Add(&e).Mul(kInverse)
	if s.IsZero() {
		return sig, false
	}
	if s.IsOverHalfOrder() {
		s.Negate()
		recoveryCode ^= 0x01
	}

	sig[0] = compactHeaderBase + recoveryCode
	r.PutBytesUnchecked(sig[1:33])
	s.PutBytesUnchecked(sig[33:65])
	return sig, true
}

// Recover - the public key that produced the signature
func Recover(sig Signature, digest Digest) (PublicKey, error) {
	pub, compressed, err := ecdsa.RecoverCompact(sig[:], digest[:])
	if nil != err || !compressed {
		return PublicKey{}, fault.InvalidSignature
	}
	var p PublicKey
	copy(p[:], pub.SerializeCompressed())
	return p, nil
}

// Verify - true if the signature recovers to the public key
func Verify(p PublicKey, sig Signature, digest Digest) bool {
	recovered, err := Recover(sig, digest)
	if nil != err {
		return false
	}
	return recovered == p
}

// IsCanonical - check the chain's canonical signature rule
func (sig Signature) IsCanonical() bool {
	return 0 == sig[1]&0x80 &&
		!(0 == sig[1] && 0 == sig[2]&0x80) &&
		0 == sig[33]&0x80 &&
		!(0 == sig[33] && 0 == sig[34]&0x80)
}

// SignatureFromBytes - b must be the 65 byte compact form
func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if SignatureSize != len(b) {
		return sig, fault.InvalidSignature
	}
	copy(sig[:], b)
	return sig, nil
}

// String - "SIG_K1_" text form
func (sig Signature) String() string {
	return k1SignaturePrefix + encodeK1(sig[:])
}

// MarshalText - convert a signature to its JSON form
func (sig Signature) MarshalText() ([]byte, error) {
	return []byte(sig.String()), nil
}

// UnmarshalText - read the "SIG_K1_" form
func (sig *Signature) UnmarshalText(s []byte) error {
	v, err := SignatureFromString(string(s))
	if nil != err {
		return err
	}
	*sig = v
	return nil
}

// SignatureFromString - decode the "SIG_K1_" form
func SignatureFromString(s string) (Signature, error) {
	if !strings.HasPrefix(s, k1SignaturePrefix) {
		return Signature{}, fault.KeyPrefix
	}
	data, err := decodeK1(s[len(k1SignaturePrefix):])
	if nil != err {
		return Signature{}, err
	}
	return SignatureFromBytes(data)
}
