// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eosapi/eosapi"
	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/keypair"
	"github.com/bitmark-inc/eosapi/transaction"
	"github.com/bitmark-inc/eosapi/util"
)

// basic defaults (directories and files are relative to the
// directory containing the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "eosapi.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultAPIURL               = "http://127.0.0.1:8888"
	defaultRequestTimeout       = 5000 // ms
	defaultRequestsPerSecond    = 10
	defaultABISerializerMaxTime = 100 // ms
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// fresh map each time as the Lua mapping updates it in place
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

// Configuration - values read from the Lua file
type Configuration struct {
	ChainID              string               `gluamapper:"chain_id" json:"chain_id"`
	APIURL               string               `gluamapper:"api_url" json:"api_url"`
	RequestTimeout       int                  `gluamapper:"request_timeout_ms" json:"request_timeout_ms"`
	RequestsPerSecond    float64              `gluamapper:"requests_per_second" json:"requests_per_second"`
	MaxNetUsage          uint32               `gluamapper:"max_net_usage" json:"max_net_usage"`
	ABISerializerMaxTime int                  `gluamapper:"abi_serializer_max_time_ms" json:"abi_serializer_max_time_ms"`
	PublicKeyPrefix      string               `gluamapper:"public_key_prefix" json:"public_key_prefix"`
	ABIFiles             map[string]string    `gluamapper:"abi_files" json:"abi_files"`
	Logging              logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given
func Default() *Configuration {
	return &Configuration{
		ChainID:              "",
		APIURL:               defaultAPIURL,
		RequestTimeout:       defaultRequestTimeout,
		RequestsPerSecond:    defaultRequestsPerSecond,
		MaxNetUsage:          0,
		ABISerializerMaxTime: defaultABISerializerMaxTime,
		PublicKeyPrefix:      keypair.DefaultPrefix,
		ABIFiles:             map[string]string{},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default()

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.check(); nil != err {
		return nil, err
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fault.InvalidFileName
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	options.Logging.Directory = util.EnsureAbsolute(dataDirectory, options.Logging.Directory)
	for account, fileName := range options.ABIFiles {
		options.ABIFiles[account] = util.EnsureAbsolute(dataDirectory, fileName)
	}

	// create the log directory if it does not already exist
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}
	if fileInfo, err := os.Stat(options.Logging.Directory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.InvalidDirectory
	}

	return options, nil
}

func (c *Configuration) check() error {
	if "" != c.ChainID {
		if _, err := c.ChainIDBytes(); nil != err {
			return err
		}
	}
	if c.RequestsPerSecond <= 0 {
		return fault.InvalidRequestRate
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	if c.ABISerializerMaxTime <= 0 {
		c.ABISerializerMaxTime = defaultABISerializerMaxTime
	}
	if nil == c.ABIFiles {
		c.ABIFiles = map[string]string{}
	}
	return nil
}

// ChainIDBytes - the decoded chain id
func (c *Configuration) ChainIDBytes() ([]byte, error) {
	b, err := hex.DecodeString(c.ChainID)
	if nil != err {
		return nil, fault.HexExpected
	}
	if transaction.ChainIDSize != len(b) {
		return nil, fault.ChainIdLength
	}
	return b, nil
}

// Timeout - HTTP request timeout
func (c *Configuration) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Millisecond
}

// Settings - boundary settings from this configuration
func (c *Configuration) Settings() eosapi.Settings {
	return eosapi.Settings{
		MaxNetUsage:          c.MaxNetUsage,
		ABISerializerMaxTime: time.Duration(c.ABISerializerMaxTime) * time.Millisecond,
		PublicKeyPrefix:      c.PublicKeyPrefix,
	}
}
