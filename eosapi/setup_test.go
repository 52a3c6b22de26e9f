// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eosapi

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	dir      = "testing"
	category = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func TestGuardRecoversPanic(t *testing.T) {
	api := &API{
		settings: DefaultSettings(),
		log:      logger.New(category),
	}

	if api.guard("panic", func() error { panic("boom") }) {
		t.Errorf("guard returned true after panic")
	}

	// no registry so the lookup panics
	if nil != api.PackArgs("eosio.token", "transfer", []byte(`{}`)) {
		t.Errorf("pack args returned data after panic")
	}
	if "" != api.UnpackArgs("eosio.token", "transfer", []byte{0}) {
		t.Errorf("unpack args returned text after panic")
	}

	if !api.guard("ok", func() error { return nil }) {
		t.Errorf("guard returned false without error")
	}
}
