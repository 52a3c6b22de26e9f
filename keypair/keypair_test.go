// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/keypair"
)

const (
	devWIF       = "5KQwrPbwdL6PhXujxW37FSSQZ1JiwsST4cqQzDeyXtP79zkvFD3"
	devK1Private = "PVT_K1_2bfGi9rYsXQSXXTvJbDAPhHLQUojjaNLomdm3cEJ1XTzMqUt3V"
	devPublic    = "EOS6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV"
	devK1Public  = "PUB_K1_6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5BoDq63"
	devRawPublic = "02c0ded2bc1f1305fb0faac5e6c03ee3a1924234985427b6167ca569d13df435cf"
)

func TestWIF(t *testing.T) {
	k, err := keypair.PrivateKeyFromWIF(devWIF)
	if nil != err {
		t.Fatalf("PrivateKeyFromWIF error: %s", err)
	}
	assert.Equal(t, devWIF, k.WIF(), "wif round trip")
	assert.Equal(t, devK1Private, k.K1String(), "k1 private text")

	p := k.PublicKey()
	assert.Equal(t, devRawPublic, hex.EncodeToString(p[:]), "raw public key")
	assert.Equal(t, devPublic, p.String(), "legacy public text")
	assert.Equal(t, devK1Public, p.K1String(), "k1 public text")

	k1, err := keypair.PrivateKeyFromWIF(devK1Private)
	assert.Nil(t, err, "k1 private parse")
	assert.Equal(t, k, k1, "k1 private key")
}

func TestWIFInvalid(t *testing.T) {
	tests := []struct {
		wif string
		err error
	}{
		{"5KQwrPbwdL6PhXujxW37FSSQZ1JiwsST4cqQzDeyXtP79zkvFD4", fault.ChecksumMismatch},
		{"5KQwrPbwdL6PhXujxW37FSSQZ1JiwsST4cqQzDeyXtP79zkvFD0", fault.InvalidBase58},
		{"5KQwrPbwdL6PhXujxW37FSSQZ1JiwsST4cqQzDeyXtP79zkv", fault.InvalidPrivateKey},
		{"PVT_K1_2bfGi9rYsXQSXXTvJbDAPhHLQUojjaNLomdm3cEJ1XTzMqUt3W", fault.ChecksumMismatch},
		{devPublic, fault.InvalidBase58},
		{"", fault.InvalidBase58},
	}
	for i, item := range tests {
		_, err := keypair.PrivateKeyFromWIF(item.wif)
		assert.Equal(t, item.err, err, "%d: PrivateKeyFromWIF(%q)", i, item.wif)
	}
}

func TestPublicKeyText(t *testing.T) {
	p, err := keypair.PublicKeyFromText(devPublic, keypair.DefaultPrefix)
	assert.Nil(t, err, "legacy parse")
	assert.Equal(t, devRawPublic, hex.EncodeToString(p[:]))

	p2, err := keypair.PublicKeyFromText(devK1Public, "anything")
	assert.Nil(t, err, "k1 parse ignores prefix")
	assert.Equal(t, p, p2)

	// prefix is caller supplied
	other := p.Text("FIO")
	assert.Equal(t, "FIO"+devPublic[3:], other)
	p3, err := keypair.PublicKeyFromText(other, "FIO")
	assert.Nil(t, err, "custom prefix parse")
	assert.Equal(t, p, p3)

	_, err = keypair.PublicKeyFromText(other, keypair.DefaultPrefix)
	assert.Equal(t, fault.KeyPrefix, err, "wrong prefix")

	_, err = keypair.PublicKeyFromText(devPublic[:len(devPublic)-1]+"D", keypair.DefaultPrefix)
	assert.Error(t, err, "bad checksum")
}

func TestGenerate(t *testing.T) {
	pair, err := keypair.Generate()
	if nil != err {
		t.Fatalf("Generate error: %s", err)
	}
	assert.Equal(t, pair.PrivateKey.PublicKey(), pair.PublicKey, "derived public key")

	k, err := keypair.PrivateKeyFromWIF(pair.PrivateKey.WIF())
	assert.Nil(t, err)
	assert.Equal(t, pair.PrivateKey, k, "wif round trip")

	raw := pair.Raw("EOS")
	assert.Equal(t, pair.PublicKey.String(), raw.PublicKey)
	assert.Equal(t, pair.PrivateKey.WIF(), raw.PrivateKey)
}

func TestSignRecover(t *testing.T) {
	for i := 0; i < 8; i += 1 {
		pair, err := keypair.Generate()
		if nil != err {
			t.Fatalf("%d: Generate error: %s", i, err)
		}
		digest := keypair.NewDigest([]byte("message"), []byte{byte(i)})

		sig, err := keypair.Sign(pair.PrivateKey, digest)
		if nil != err {
			t.Fatalf("%d: Sign error: %s", i, err)
		}
		assert.True(t, sig.IsCanonical(), "%d: canonical", i)

		recovered, err := keypair.Recover(sig, digest)
		assert.Nil(t, err, "%d: Recover", i)
		assert.Equal(t, pair.PublicKey, recovered, "%d: recovered key", i)
		assert.True(t, keypair.Verify(pair.PublicKey, sig, digest), "%d: verify", i)

		other := keypair.NewDigest([]byte("other"))
		assert.False(t, keypair.Verify(pair.PublicKey, sig, other), "%d: verify other digest", i)
	}
}

func TestSignDeterministic(t *testing.T) {
	k, _ := keypair.PrivateKeyFromWIF(devWIF)
	digest := keypair.NewDigest([]byte("deterministic"))

	sig1, err := keypair.Sign(k, digest)
	assert.Nil(t, err)
	sig2, err := keypair.Sign(k, digest)
	assert.Nil(t, err)
	assert.Equal(t, sig1, sig2, "same key and digest give the same signature")
}

func TestSignatureText(t *testing.T) {
	k, _ := keypair.PrivateKeyFromWIF(devWIF)
	digest := keypair.NewDigest([]byte("text"))
	sig, err := keypair.Sign(k, digest)
	assert.Nil(t, err)

	text := sig.String()
	assert.Equal(t, "SIG_K1_", text[:7])

	parsed, err := keypair.SignatureFromString(text)
	assert.Nil(t, err)
	assert.Equal(t, sig, parsed)

	_, err = keypair.SignatureFromString("SIG_R1_" + text[7:])
	assert.Equal(t, fault.KeyPrefix, err)

	_, err = keypair.SignatureFromBytes(sig[:64])
	assert.Equal(t, fault.InvalidSignature, err)
}

func TestRecoverInvalid(t *testing.T) {
	digest := keypair.NewDigest([]byte("x"))
	var sig keypair.Signature
	_, err := keypair.Recover(sig, digest)
	assert.Equal(t, fault.InvalidSignature, err, "zero signature")
}

func TestBase58(t *testing.T) {
	data := []byte{0x00, 0x00, 0x01, 0x02, 0xff}
	s := keypair.Base58Encode(data)
	assert.Equal(t, "11LiA", s)
	decoded, err := keypair.Base58Decode(s)
	assert.Nil(t, err)
	assert.Equal(t, data, decoded)

	_, err = keypair.Base58Decode("0OIl")
	assert.Equal(t, fault.InvalidBase58, err)
}

func TestDigestFromBytes(t *testing.T) {
	_, err := keypair.DigestFromBytes(make([]byte, 31))
	assert.Equal(t, fault.DigestLength, err)
	d, err := keypair.DigestFromBytes(make([]byte, 32))
	assert.Nil(t, err)
	assert.Equal(t, keypair.Digest{}, d)
}
