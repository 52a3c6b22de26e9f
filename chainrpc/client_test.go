// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainrpc_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eosapi/chainrpc"
	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/registry"
	"github.com/bitmark-inc/eosapi/util"
)

const tokenABI = `{"version":"eosio::abi/1.1","structs":[{"name":"transfer","base":"","fields":[` +
	`{"name":"from","type":"name"},{"name":"to","type":"name"},` +
	`{"name":"quantity","type":"asset"},{"name":"memo","type":"string"}]}],` +
	`"actions":[{"name":"transfer","type":"transfer"}]}`

func newServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if "/v1/chain/get_abi" != r.URL.Path || "POST" != r.Method {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ := io.ReadAll(r.Body)
		var arguments struct {
			AccountName string `json:"account_name"`
		}
		if err := json.Unmarshal(body, &arguments); nil != err {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch arguments.AccountName {
		case "eosio.token":
			_, _ = io.WriteString(w, `{"account_name":"eosio.token","abi":`+tokenABI+`}`)
		case "alice":
			_, _ = io.WriteString(w, `{"account_name":"alice"}`)
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"code":500,"message":"Internal Service Error"}`)
		}
	}))
}

func TestFetchABI(t *testing.T) {
	server := newServer(t)
	defer server.Close()

	c, err := chainrpc.New(server.URL+"/", time.Second, 100)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	data, err := c.FetchABI("eosio.token")
	assert.Nil(t, err, "fetch error")
	assert.JSONEq(t, tokenABI, string(data), "abi")

	_, err = c.FetchABI("alice")
	assert.Equal(t, fault.AbiNotFound, err, "no abi")

	_, err = c.FetchABI("nobody")
	var statusError *util.StatusError
	assert.True(t, errors.As(err, &statusError), "status error: %v", err)
	assert.Equal(t, http.StatusInternalServerError, statusError.StatusCode, "status")
}

func TestRegistryWithClient(t *testing.T) {
	server := newServer(t)
	defer server.Close()

	c, err := chainrpc.New(server.URL, time.Second, 100)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	r := registry.New(c, logger.New("testing"))

	d, err := r.GetOrFetch("eosio.token")
	assert.Nil(t, err, "fetch error")
	_, err = d.ActionType("transfer")
	assert.Nil(t, err, "transfer action")

	_, err = r.GetOrFetch("alice")
	assert.True(t, fault.IsErrNotFound(err), "not found: %v", err)

	_, err = r.GetOrFetch("nobody")
	assert.True(t, errors.Is(err, fault.FetchFailed), "fetch failed: %v", err)
}

func TestNewInvalidRate(t *testing.T) {
	_, err := chainrpc.New("http://localhost", time.Second, 0)
	assert.Equal(t, fault.InvalidRequestRate, err, "zero rate")
}
