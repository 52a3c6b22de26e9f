// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eosapi/configuration"
	"github.com/bitmark-inc/eosapi/fault"
)

const chainID = "aca376f206b8fc25a6ed44dbdc66547c36c6c33e3a119ffbeaef943642f0e906"

const fullConfiguration = `
local M = {}

M.chain_id = "` + chainID + `"
M.api_url = os.getenv("EOSAPI_TEST_URL") or "http://localhost:1"
M.request_timeout_ms = 2500
M.requests_per_second = 2.5
M.max_net_usage = 1024
M.abi_serializer_max_time_ms = 250
M.public_key_prefix = "TST"
M.abi_files = {
    ["eosio.token"] = "token.abi",
    ["eosio"] = "/abi/eosio.abi",
}
M.logging = {
    directory = "logs",
    file = "cli.log",
    size = 4096,
    count = 3,
    console = false,
    levels = {
        DEFAULT = "info",
        registry = "debug",
    },
}

return M
`

func writeConfiguration(t *testing.T, text string) string {
	dir, err := os.MkdirTemp("", "eosapi-configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	fileName := filepath.Join(dir, "eosapi.conf")
	err = os.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestFullConfiguration(t *testing.T) {
	t.Setenv("EOSAPI_TEST_URL", "http://node.example:8888")

	fileName := writeConfiguration(t, fullConfiguration)
	dir := filepath.Dir(fileName)

	c, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, chainID, c.ChainID, "chain id")
	assert.Equal(t, "http://node.example:8888", c.APIURL, "api url")
	assert.Equal(t, 2500*time.Millisecond, c.Timeout(), "timeout")
	assert.Equal(t, 2.5, c.RequestsPerSecond, "rate")
	assert.Equal(t, filepath.Join(dir, "token.abi"), c.ABIFiles["eosio.token"], "relative abi file")
	assert.Equal(t, "/abi/eosio.abi", c.ABIFiles["eosio"], "absolute abi file")

	assert.Equal(t, filepath.Join(dir, "logs"), c.Logging.Directory, "log directory")
	assert.Equal(t, "cli.log", c.Logging.File, "log file")
	assert.Equal(t, 4096, c.Logging.Size, "log size")
	assert.Equal(t, 3, c.Logging.Count, "log count")
	assert.Equal(t, "debug", c.Logging.Levels["registry"], "registry level")

	fileInfo, err := os.Stat(c.Logging.Directory)
	assert.Nil(t, err, "log directory created")
	assert.True(t, fileInfo.IsDir(), "log directory")

	s := c.Settings()
	assert.Equal(t, uint32(1024), s.MaxNetUsage, "max net usage")
	assert.Equal(t, 250*time.Millisecond, s.ABISerializerMaxTime, "max time")
	assert.Equal(t, "TST", s.PublicKeyPrefix, "prefix")

	b, err := c.ChainIDBytes()
	assert.Nil(t, err, "chain id bytes")
	assert.Equal(t, 32, len(b), "chain id length")
}

func TestDefaults(t *testing.T) {
	fileName := writeConfiguration(t, "return {}")

	c, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, "", c.ChainID, "chain id")
	assert.Equal(t, "http://127.0.0.1:8888", c.APIURL, "api url")
	assert.Equal(t, 5*time.Second, c.Timeout(), "timeout")
	assert.Equal(t, 100*time.Millisecond, c.Settings().ABISerializerMaxTime, "max time")
	assert.Equal(t, "EOS", c.PublicKeyPrefix, "prefix")
	assert.Equal(t, "eosapi.log", c.Logging.File, "log file")
	assert.Equal(t, "critical", c.Logging.Levels[logger.DefaultTag], "default level")

	assert.Equal(t, "critical", configuration.Default().Logging.Levels[logger.DefaultTag], "defaults unchanged")
}

func TestInvalidConfiguration(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{`return 1`, fault.ConfigurationNotTable},
		{`return { chain_id = "00" }`, fault.ChainIdLength},
		{`return { chain_id = "xyz" }`, fault.HexExpected},
		{`return { requests_per_second = 0 }`, fault.InvalidRequestRate},
		{`return { logging = { file = "a/b.log" } }`, fault.InvalidFileName},
	}

	for i, item := range items {
		fileName := writeConfiguration(t, item.text)
		_, err := configuration.GetConfiguration(fileName)
		if item.err != err {
			t.Errorf("%d: error: %v  expected: %s", i, err, item.err)
		}
	}

	fileName := writeConfiguration(t, `return {`)
	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "syntax error")

	_, err = configuration.GetConfiguration("/nonexistent/eosapi.conf")
	assert.NotNil(t, err, "missing file")
}
