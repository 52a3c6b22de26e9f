// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/eosapi/fault"
)

func TestParseABIFlags(t *testing.T) {
	files, err := parseABIFlags([]string{"eosio.token=token.abi", "eosio=/a=b.abi"})
	assert.Nil(t, err, "valid flags")
	assert.Equal(t, map[string]string{
		"eosio.token": "token.abi",
		"eosio":       "/a=b.abi",
	}, files, "files")

	for _, v := range []string{"eosio.token", "=token.abi", "eosio.token="} {
		_, err := parseABIFlags([]string{v})
		assert.True(t, errors.Is(err, ErrInvalidABIFlag), "%q: %v", v, err)
	}
}

func TestRequiredArgument(t *testing.T) {
	_, err := requiredArgument("json", "")
	assert.True(t, errors.Is(err, ErrMissingArgument), "missing: %v", err)

	b, err := requiredArgument("json", `{"a":1}`)
	assert.Nil(t, err, "literal")
	assert.Equal(t, `{"a":1}`, string(b), "literal")

	dir := t.TempDir()
	fileName := filepath.Join(dir, "args.json")
	_ = os.WriteFile(fileName, []byte(`[1,2]`), 0600)
	b, err = requiredArgument("json", "@"+fileName)
	assert.Nil(t, err, "file")
	assert.Equal(t, `[1,2]`, string(b), "file")

	_, err = hexArgument("data", "0g")
	assert.True(t, errors.Is(err, fault.HexExpected), "bad hex: %v", err)
	b, err = hexArgument("data", "00ff\n")
	assert.Nil(t, err, "hex")
	assert.Equal(t, []byte{0x00, 0xff}, b, "hex")
}

func TestSignatureArgument(t *testing.T) {
	_, err := signatureArgument("SIG_K1_1")
	assert.Equal(t, ErrSignatureFormat, err, "bad text")

	_, err = signatureArgument(strings.Repeat("00", 64))
	assert.Equal(t, ErrSignatureFormat, err, "short hex")

	b, err := signatureArgument(strings.Repeat("1f", 65))
	assert.Nil(t, err, "hex")
	assert.Equal(t, 65, len(b), "length")
}

func TestPrintRawJson(t *testing.T) {
	var buffer bytes.Buffer
	err := printRawJson(&buffer, `{"a":[1,2]}`)
	assert.Nil(t, err, "print")
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}\n", buffer.String(), "indented")
}
