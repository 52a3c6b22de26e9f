// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/mr-tron/base58"
	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160"

	"github.com/bitmark-inc/eosapi/fault"
)

// DefaultPrefix - legacy public key prefix
const DefaultPrefix = "EOS"

// sizes of raw key material
const (
	PrivateKeySize = 32
	PublicKeySize  = 33
	checksumLength = 4
	wifVersion     = 0x80
)

const (
	k1PrivatePrefix = "PVT_K1_"
	k1PublicPrefix  = "PUB_K1_"
	k1Suffix        = "K1"
)

// PrivateKey - raw 32 byte secret scalar
type PrivateKey [PrivateKeySize]byte

// PublicKey - compressed 33 byte curve point
type PublicKey [PublicKeySize]byte

// KeyPair - a private key and its public key
type KeyPair struct {
	PrivateKey PrivateKey
	PublicKey  PublicKey
}

// RawKeyPair - text version of the keys
type RawKeyPair struct {
	PublicKey  string `json:"public"`
	PrivateKey string `json:"private"`
}

// Generate - create a new key pair from secure random data
func Generate() (*KeyPair, error) {
	key, err := btcec.NewPrivateKey()
	if nil != err {
		return nil, err
	}
	var private PrivateKey
	copy(private[:], key.Serialize())
	return &KeyPair{
		PrivateKey: private,
		PublicKey:  private.PublicKey(),
	}, nil
}

// Raw - text form using the given public key prefix
func (pair *KeyPair) Raw(prefix string) RawKeyPair {
	return RawKeyPair{
		PublicKey:  pair.PublicKey.Text(prefix),
		PrivateKey: pair.PrivateKey.WIF(),
	}
}

// PrivateKeyFromBytes - check that b is a usable secret scalar
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	var k PrivateKey
	if PrivateKeySize != len(b) {
		return k, fault.InvalidPrivateKey
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow || s.IsZero() {
		return k, fault.InvalidPrivateKey
	}
	copy(k[:], b)
	return k, nil
}

// PublicKey - derive the public key
func (k PrivateKey) PublicKey() PublicKey {
	_, pub := btcec.PrivKeyFromBytes(k[:])
	var p PublicKey
	copy(p[:], pub.SerializeCompressed())
	return p
}

// WIF - wallet import format text
func (k PrivateKey) WIF() string {
	buffer := append([]byte{wifVersion}, k[:]...)
	checksum := doubleSHA256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// K1String - "PVT_K1_" text form
func (k PrivateKey) K1String() string {
	return k1PrivatePrefix + encodeK1(k[:])
}

// String - default text form is WIF
func (k PrivateKey) String() string {
	return k.WIF()
}

// MarshalText - convert a private key to its WIF JSON form
func (k PrivateKey) MarshalText() ([]byte, error) {
	return []byte(k.WIF()), nil
}

// UnmarshalText - read either private key text form
func (k *PrivateKey) UnmarshalText(s []byte) error {
	key, err := PrivateKeyFromWIF(string(s))
	if nil != err {
		return err
	}
	*k = key
	return nil
}

// PrivateKeyFromWIF - decode a WIF or "PVT_K1_" string
func PrivateKeyFromWIF(s string) (PrivateKey, error) {
	if strings.HasPrefix(s, k1PrivatePrefix) {
		data, err := decodeK1(s[len(k1PrivatePrefix):])
		if nil != err {
			return PrivateKey{}, err
		}
		return PrivateKeyFromBytes(data)
	}

	data, err := base58.Decode(s)
	if nil != err {
		return PrivateKey{}, fault.InvalidBase58
	}

	// optional 0x01 after the key marks a compressed public key
	switch len(data) {
	case 1 + PrivateKeySize + checksumLength:
	case 1 + PrivateKeySize + 1 + checksumLength:
		if 0x01 != data[1+PrivateKeySize] {
			return PrivateKey{}, fault.InvalidPrivateKey
		}
	default:
		return PrivateKey{}, fault.InvalidPrivateKey
	}
	if wifVersion != data[0] {
		return PrivateKey{}, fault.KeyPrefix
	}

	checksumStart := len(data) - checksumLength
	checksum := doubleSHA256(data[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], data[checksumStart:]) {
		return PrivateKey{}, fault.ChecksumMismatch
	}
	return PrivateKeyFromBytes(data[1 : 1+PrivateKeySize])
}

// PublicKeyFromBytes - parse a compressed point
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var p PublicKey
	if PublicKeySize != len(b) {
		return p, fault.InvalidPublicKey
	}
	if _, err := btcec.ParsePubKey(b); nil != err {
		return p, fault.InvalidPublicKey
	}
	copy(p[:], b)
	return p, nil
}

// Text - legacy text form with the given prefix
func (p PublicKey) Text(prefix string) string {
	checksum := ripemd(p[:])
	buffer := append(append([]byte{}, p[:]...), checksum[:checksumLength]...)
	return prefix + base58.Encode(buffer)
}

// K1String - "PUB_K1_" text form
func (p PublicKey) K1String() string {
	return k1PublicPrefix + encodeK1(p[:])
}

// String - legacy text form with the default prefix
func (p PublicKey) String() string {
	return p.Text(DefaultPrefix)
}

// PublicKeyFromText - decode "PUB_K1_" or legacy text using prefix
func PublicKeyFromText(s string, prefix string) (PublicKey, error) {
	if strings.HasPrefix(s, k1PublicPrefix) {
		data, err := decodeK1(s[len(k1PublicPrefix):])
		if nil != err {
			return PublicKey{}, err
		}
		return PublicKeyFromBytes(data)
	}

	if "" == prefix || !strings.HasPrefix(s, prefix) {
		return PublicKey{}, fault.KeyPrefix
	}
	data, err := base58.Decode(s[len(prefix):])
	if nil != err {
		return PublicKey{}, fault.InvalidBase58
	}
	if PublicKeySize+checksumLength != len(data) {
		return PublicKey{}, fault.InvalidPublicKey
	}
	checksum := ripemd(data[:PublicKeySize])
	if !bytes.Equal(checksum[:checksumLength], data[PublicKeySize:]) {
		return PublicKey{}, fault.ChecksumMismatch
	}
	return PublicKeyFromBytes(data[:PublicKeySize])
}

// Base58Encode - plain base58, no checksum
func Base58Encode(data []byte) string {
	return base58.Encode(data)
}

// Base58Decode - plain base58, no checksum
func Base58Decode(s string) ([]byte, error) {
	data, err := base58.Decode(s)
	if nil != err {
		return nil, fault.InvalidBase58
	}
	return data, nil
}

func encodeK1(data []byte) string {
	checksum := ripemd(data, []byte(k1Suffix))
	buffer := append(append([]byte{}, data...), checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

func decodeK1(s string) ([]byte, error) {
	data, err := base58.Decode(s)
	if nil != err {
		return nil, fault.InvalidBase58
	}
	if len(data) <= checksumLength {
		return nil, fault.InvalidBase58
	}
	checksumStart := len(data) - checksumLength
	checksum := ripemd(data[:checksumStart], []byte(k1Suffix))
	if !bytes.Equal(checksum[:checksumLength], data[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}
	return data[:checksumStart], nil
}

func ripemd(parts ...[]byte) []byte {
	h := ripemd160.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func doubleSHA256(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}
