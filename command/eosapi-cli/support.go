// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eosapi/eosapi"
	"github.com/bitmark-inc/eosapi/fault"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// print text that is already JSON with indentation
func printRawJson(handle io.Writer, text string) error {
	return printJson(handle, json.RawMessage(text))
}

// a flag value that is required; "@name" reads the named file
func requiredArgument(name string, value string) ([]byte, error) {
	if "" == value {
		return nil, fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}
	if strings.HasPrefix(value, "@") {
		return os.ReadFile(value[1:])
	}
	return []byte(value), nil
}

func hexArgument(name string, value string) ([]byte, error) {
	text, err := requiredArgument(name, value)
	if nil != err {
		return nil, err
	}
	b, err := hex.DecodeString(strings.TrimSpace(string(text)))
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.HexExpected, name)
	}
	return b, nil
}

// split --abi account=file values
func parseABIFlags(values []string) (map[string]string, error) {
	files := make(map[string]string, len(values))
	for _, v := range values {
		s := strings.SplitN(v, "=", 2)
		if 2 != len(s) || "" == s[0] || "" == s[1] {
			return nil, fmt.Errorf("%w: %q", ErrInvalidABIFlag, v)
		}
		files[s[0]] = s[1]
	}
	return files, nil
}

func loadABIFiles(api *eosapi.API, files map[string]string, log *logger.L) error {
	for account, fileName := range files {
		text, err := os.ReadFile(fileName)
		if nil != err {
			return err
		}
		if !api.SetABI(account, text) {
			return fmt.Errorf("%w: abi for: %q from: %q", ErrValueNotAccepted, account, fileName)
		}
		log.Infof("loaded abi for: %q from: %q", account, fileName)
	}
	return nil
}
