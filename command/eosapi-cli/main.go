// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/eosapi/chainrpc"
	"github.com/bitmark-inc/eosapi/configuration"
	"github.com/bitmark-inc/eosapi/eosapi"
	"github.com/bitmark-inc/eosapi/fault"
)

type metadata struct {
	config  *configuration.Configuration
	api     *eosapi.API
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "eosapi-cli"
	app.Usage = "ABI action codec, keys and transaction signing"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringSliceFlag{
			Name:  "abi, a",
			Usage: " preload an ABI `ACCOUNT=FILE` instead of fetching it",
		},
	}
	app.Commands = commands()

	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		m, err := setup(c)
		if nil != err {
			return err
		}
		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

// read configuration, start logging and create the API
func setup(c *cli.Context) (*metadata, error) {
	e := c.App.ErrWriter
	w := c.App.Writer
	verbose := c.GlobalBool("verbose")

	var config *configuration.Configuration
	if file := c.GlobalString("config"); "" != file {
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}
		var err error
		config, err = configuration.GetConfiguration(file)
		if nil != err {
			return nil, err
		}
	} else {
		config = configuration.Default()
		config.Logging.Directory = filepath.Join(os.TempDir(), c.App.Name)
		if err := os.MkdirAll(config.Logging.Directory, 0700); nil != err {
			return nil, err
		}
	}

	if verbose {
		config.Logging.Console = true
	}
	if err := logger.Initialise(config.Logging); nil != err {
		return nil, err
	}
	if err := fault.Initialise(); nil != err {
		return nil, err
	}

	log := logger.New("main")
	log.Infof("version: %s", version)

	var fetcher *chainrpc.Client
	if "" != config.APIURL {
		var err error
		fetcher, err = chainrpc.New(config.APIURL, config.Timeout(), config.RequestsPerSecond)
		if nil != err {
			return nil, err
		}
	}

	api := newAPI(config.Settings(), fetcher)

	abiFiles, err := parseABIFlags(c.GlobalStringSlice("abi"))
	if nil != err {
		return nil, err
	}
	for account, file := range config.ABIFiles {
		if _, ok := abiFiles[account]; !ok {
			abiFiles[account] = file
		}
	}
	err = loadABIFiles(api, abiFiles, log)
	if nil != err {
		return nil, err
	}

	return &metadata{
		config:  config,
		api:     api,
		log:     log,
		verbose: verbose,
		e:       e,
		w:       w,
	}, nil
}

// avoid a typed nil fetcher
func newAPI(settings eosapi.Settings, fetcher *chainrpc.Client) *eosapi.API {
	if nil == fetcher {
		return eosapi.New(settings, nil)
	}
	return eosapi.New(settings, fetcher)
}
