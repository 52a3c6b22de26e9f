// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/eosapi/fault"
)

type nameDisplay struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
}

func runS2N(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := c.String("name")
	if "" == s {
		return fmt.Errorf("%w: name", ErrMissingArgument)
	}

	value := m.api.S2N(s)
	if 0 == value {
		return fault.InvalidName
	}

	return printJson(m.w, nameDisplay{Name: s, Value: value})
}

func runN2S(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	value := c.Uint64("value")
	return printJson(m.w, nameDisplay{Name: m.api.N2S(value), Value: value})
}

func runSymbol(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	precision := c.Int("precision")
	code := c.String("code")
	if "" == code {
		return fmt.Errorf("%w: code", ErrMissingArgument)
	}

	value := m.api.StringToSymbol(precision, code)
	if 0 == value {
		return fault.InvalidSymbol
	}

	type symbolDisplay struct {
		Symbol string `json:"symbol"`
		Value  uint64 `json:"value"`
	}
	return printJson(m.w, symbolDisplay{
		Symbol: fmt.Sprintf("%d,%s", precision, code),
		Value:  value,
	})
}
