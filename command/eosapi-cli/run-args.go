// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/eosapi/util"
)

type hexDisplay struct {
	Hex string `json:"hex"`
}

func runPackArgs(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	account, action, err := accountAndAction(c)
	if nil != err {
		return err
	}
	args, err := requiredArgument("json", c.String("json"))
	if nil != err {
		return err
	}

	packed := m.api.PackArgs(account, action, args)
	if nil == packed {
		return ErrOperationFailed
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s\n", util.FormatBytes("args", packed))
	}

	return printJson(m.w, hexDisplay{Hex: hex.EncodeToString(packed)})
}

func runUnpackArgs(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	account, action, err := accountAndAction(c)
	if nil != err {
		return err
	}
	data, err := hexArgument("data", c.String("data"))
	if nil != err {
		return err
	}

	text := m.api.UnpackArgs(account, action, data)
	if "" == text {
		return ErrOperationFailed
	}

	return printRawJson(m.w, text)
}

func runPackABI(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	text, err := requiredArgument("json", c.String("json"))
	if nil != err {
		return err
	}

	packed := m.api.PackABI(text)
	if nil == packed {
		return ErrOperationFailed
	}

	if m.verbose {
		fmt.Fprintf(m.e, "abi: %d bytes\n", len(packed))
	}
	return printJson(m.w, hexDisplay{Hex: hex.EncodeToString(packed)})
}

func accountAndAction(c *cli.Context) (string, string, error) {
	account := c.String("account")
	if "" == account {
		return "", "", fmt.Errorf("%w: account", ErrMissingArgument)
	}
	action := c.String("action")
	if "" == action {
		return "", "", fmt.Errorf("%w: action", ErrMissingArgument)
	}
	return account, action, nil
}
