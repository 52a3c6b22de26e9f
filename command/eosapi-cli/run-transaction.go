// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/eosapi/transaction"
)

func runGenTransaction(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	actions, err := requiredArgument("json", c.String("json"))
	if nil != err {
		return err
	}
	blockID, err := requiredArgument("ref-block", c.String("ref-block"))
	if nil != err {
		return err
	}

	text := m.api.GenTransaction(actions, c.Int("expiration"), strings.TrimSpace(string(blockID)))
	if "" == text {
		return ErrOperationFailed
	}

	return printRawJson(m.w, text)
}

func runSignTransaction(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	trx, err := requiredArgument("json", c.String("json"))
	if nil != err {
		return err
	}
	wif, err := requiredArgument("key", c.String("key"))
	if nil != err {
		return err
	}

	chainID := c.String("chain-id")
	if "" == chainID {
		chainID = m.config.ChainID
	}
	if "" == chainID {
		return ErrMissingChainID
	}

	text := m.api.SignTransaction(trx, strings.TrimSpace(string(wif)), chainID)
	if "" == text {
		return ErrOperationFailed
	}

	return printRawJson(m.w, text)
}

func runPackTransaction(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	trx, err := requiredArgument("json", c.String("json"))
	if nil != err {
		return err
	}

	compression, err := transaction.ParseCompression(c.String("compression"))
	if nil != err {
		return err
	}

	text := m.api.PackTransaction(trx, compression)
	if "" == text {
		return ErrOperationFailed
	}

	return printRawJson(m.w, text)
}

func runUnpackTransaction(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" != c.String("json") {
		text, err := requiredArgument("json", c.String("json"))
		if nil != err {
			return err
		}
		p, err := transaction.ParsePackedTransaction(text)
		if nil != err {
			return err
		}
		s, err := p.SignedTransaction()
		if nil != err {
			return err
		}
		b, err := s.JSON()
		if nil != err {
			return err
		}
		return printRawJson(m.w, string(b))
	}

	data, err := hexArgument("data", c.String("data"))
	if nil != err {
		return err
	}

	text := m.api.UnpackTransaction(data)
	if "" == text {
		return ErrOperationFailed
	}

	return printRawJson(m.w, text)
}
