// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/eosapi/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	rawKeyPair := m.api.CreateKey()
	if "" == rawKeyPair.PrivateKey {
		return ErrOperationFailed
	}

	return printJson(m.w, rawKeyPair)
}

func runPublic(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	wif, err := requiredArgument("key", c.String("key"))
	if nil != err {
		return err
	}

	publicKey := m.api.GetPublicKey(strings.TrimSpace(string(wif)))
	if "" == publicKey {
		return ErrOperationFailed
	}

	type publicDisplay struct {
		PublicKey string `json:"public"`
	}
	return printJson(m.w, publicDisplay{PublicKey: publicKey})
}

func runSignDigest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	digest, err := hexArgument("digest", c.String("digest"))
	if nil != err {
		return err
	}
	wif, err := requiredArgument("key", c.String("key"))
	if nil != err {
		return err
	}

	b := m.api.SignDigest(digest, strings.TrimSpace(string(wif)))
	if nil == b {
		return ErrOperationFailed
	}
	signature, err := keypair.SignatureFromBytes(b)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "digest: %x\n", digest)
	}

	type signatureDisplay struct {
		Signature keypair.Signature `json:"signature"`
		Hex       string            `json:"hex"`
	}
	return printJson(m.w, signatureDisplay{
		Signature: signature,
		Hex:       hex.EncodeToString(b),
	})
}

func runRecover(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	digest, err := hexArgument("digest", c.String("digest"))
	if nil != err {
		return err
	}
	text, err := requiredArgument("signature", c.String("signature"))
	if nil != err {
		return err
	}

	signature, err := signatureArgument(strings.TrimSpace(string(text)))
	if nil != err {
		return err
	}

	publicKey := m.api.RecoverKey(digest, signature)
	if "" == publicKey {
		return ErrOperationFailed
	}

	type publicDisplay struct {
		PublicKey string `json:"public"`
	}
	return printJson(m.w, publicDisplay{PublicKey: publicKey})
}

// SIG_K1_ text or the 65 byte hex form
func signatureArgument(s string) ([]byte, error) {
	if sig, err := keypair.SignatureFromString(s); nil == err {
		return sig[:], nil
	}
	b, err := hex.DecodeString(s)
	if nil != err || keypair.SignatureSize != len(b) {
		return nil, ErrSignatureFormat
	}
	return b, nil
}
