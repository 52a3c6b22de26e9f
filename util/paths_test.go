// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/bitmark-inc/eosapi/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/etc/eosapi", "token.abi", "/etc/eosapi/token.abi"},
		{"/etc/eosapi", "log/../abi/token.abi", "/etc/eosapi/abi/token.abi"},
		{"/etc/eosapi", "/var/log", "/var/log"},
		{"/etc/eosapi/", "./log/", "/etc/eosapi/log"},
	}

	for i, item := range items {
		actual := util.EnsureAbsolute(item.directory, item.path)
		if item.expected != actual {
			t.Errorf("%d: actual: %q  expected: %q", i, actual, item.expected)
		}
	}
}
