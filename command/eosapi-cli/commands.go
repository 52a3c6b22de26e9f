// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a new key pair",
			Action: runGenerate,
		},
		{
			Name:      "public",
			Usage:     "public key of a WIF private key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*WIF private `KEY`",
				},
			},
			Action: runPublic,
		},
		{
			Name:      "s2n",
			Usage:     "convert a name to its 64 bit value",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*account or action `NAME`",
				},
			},
			Action: runS2N,
		},
		{
			Name:      "n2s",
			Usage:     "convert a 64 bit value to a name",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "value, n",
					Value: 0,
					Usage: "*name `VALUE`",
				},
			},
			Action: runN2S,
		},
		{
			Name:      "symbol",
			Usage:     "convert a precision and ticker to a symbol value",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "precision, p",
					Value: 4,
					Usage: " decimal `DIGITS`",
				},
				cli.StringFlag{
					Name:  "code, s",
					Value: "",
					Usage: "*upper case `TICKER`",
				},
			},
			Action: runSymbol,
		},
		{
			Name:      "pack-args",
			Usage:     "pack JSON action arguments to hex",
			ArgsUsage: "\n   (* = required, @FILE reads a file)",
			Flags: []cli.Flag{
				accountFlag(),
				actionFlag(),
				cli.StringFlag{
					Name:  "json, j",
					Value: "",
					Usage: "*action arguments `JSON`",
				},
			},
			Action: runPackArgs,
		},
		{
			Name:      "unpack-args",
			Usage:     "unpack hex action arguments to JSON",
			ArgsUsage: "\n   (* = required, @FILE reads a file)",
			Flags: []cli.Flag{
				accountFlag(),
				actionFlag(),
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "*packed arguments `HEX`",
				},
			},
			Action: runUnpackArgs,
		},
		{
			Name:      "pack-abi",
			Usage:     "convert ABI JSON to its binary form",
			ArgsUsage: "\n   (* = required, @FILE reads a file)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "json, j",
					Value: "",
					Usage: "*ABI `JSON`",
				},
			},
			Action: runPackABI,
		},
		{
			Name:      "gen-tx",
			Usage:     "build an unsigned transaction",
			ArgsUsage: "\n   (* = required, @FILE reads a file)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "json, j",
					Value: "",
					Usage: "*array of actions `JSON`, data is hex or arguments",
				},
				cli.IntFlag{
					Name:  "expiration, e",
					Value: 60,
					Usage: " expire after `SECONDS`",
				},
				cli.StringFlag{
					Name:  "ref-block, b",
					Value: "",
					Usage: "*reference block id `HEX`",
				},
			},
			Action: runGenTransaction,
		},
		{
			Name:      "sign-tx",
			Usage:     "add a signature to a transaction",
			ArgsUsage: "\n   (* = required, @FILE reads a file)",
			Flags: []cli.Flag{
				transactionFlag(),
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*WIF private `KEY`",
				},
				cli.StringFlag{
					Name:  "chain-id, i",
					Value: "",
					Usage: " chain id `HEX` [configured chain_id]",
				},
			},
			Action: runSignTransaction,
		},
		{
			Name:      "pack-tx",
			Usage:     "convert a signed transaction to packed form",
			ArgsUsage: "\n   (* = required, @FILE reads a file)",
			Flags: []cli.Flag{
				transactionFlag(),
				cli.StringFlag{
					Name:  "compression, z",
					Value: "none",
					Usage: " `TYPE` [none|zlib]",
				},
			},
			Action: runPackTransaction,
		},
		{
			Name:      "unpack-tx",
			Usage:     "decode transaction bytes or a packed transaction",
			ArgsUsage: "\n   (* = required, @FILE reads a file)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: " transaction `HEX`",
				},
				cli.StringFlag{
					Name:  "json, j",
					Value: "",
					Usage: " packed transaction `JSON`",
				},
			},
			Action: runUnpackTransaction,
		},
		{
			Name:      "sign-digest",
			Usage:     "sign a 32 byte digest",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				digestFlag(),
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*WIF private `KEY`",
				},
			},
			Action: runSignDigest,
		},
		{
			Name:      "recover",
			Usage:     "recover the public key from a digest and signature",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				digestFlag(),
				cli.StringFlag{
					Name:  "signature, s",
					Value: "",
					Usage: "*`SIGNATURE` as SIG_K1_ text or hex",
				},
			},
			Action: runRecover,
		},
		{
			Name:  "version",
			Usage: "display eosapi-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}

func accountFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "account, a",
		Value: "",
		Usage: "*contract `ACCOUNT`",
	}
}

func actionFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "action, n",
		Value: "",
		Usage: "*action `NAME`",
	}
}

func transactionFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "json, j",
		Value: "",
		Usage: "*transaction `JSON`",
	}
}

func digestFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "digest, d",
		Value: "",
		Usage: "*32 byte `HEX` digest",
	}
}
