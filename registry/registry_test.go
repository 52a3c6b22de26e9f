// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/mocks"
	"github.com/bitmark-inc/eosapi/registry"
)

const tokenABI = `{
  "version": "eosio::abi/1.1",
  "structs": [{"name": "transfer", "base": "", "fields": [
    {"name": "from", "type": "name"},
    {"name": "to", "type": "name"},
    {"name": "quantity", "type": "asset"},
    {"name": "memo", "type": "string"}
  ]}],
  "actions": [{"name": "transfer", "type": "transfer"}]
}`

func TestGetOrFetchCaches(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockFetcher(ctl)
	m.EXPECT().FetchABI("eosio.token").Return([]byte(tokenABI), nil).Times(1)

	r := registry.New(m, logger.New(category))

	d, err := r.GetOrFetch("eosio.token")
	assert.Nil(t, err, "first get")
	assert.NotNil(t, d, "descriptor")

	d2, err := r.GetOrFetch("eosio.token")
	assert.Nil(t, err, "second get")
	assert.Equal(t, d, d2, "same descriptor")
	assert.Equal(t, 1, r.Size(), "size")
}

func TestClearRefetches(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockFetcher(ctl)
	m.EXPECT().FetchABI("eosio.token").Return([]byte(tokenABI), nil).Times(2)

	r := registry.New(m, logger.New(category))

	_, err := r.GetOrFetch("eosio.token")
	assert.Nil(t, err, "first get")

	assert.True(t, r.Clear("eosio.token"), "clear existing")
	assert.False(t, r.Clear("eosio.token"), "clear again")
	assert.Equal(t, 0, r.Size(), "size after clear")

	_, ok := r.Get("eosio.token")
	assert.False(t, ok, "cache only lookup")

	_, err = r.GetOrFetch("eosio.token")
	assert.Nil(t, err, "get after clear")
}

func TestFetchFailureNotCached(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockFetcher(ctl)
	gomock.InOrder(
		m.EXPECT().FetchABI("alice").Return(nil, errors.New("connection refused")),
		m.EXPECT().FetchABI("alice").Return(nil, fault.AbiNotFound),
		m.EXPECT().FetchABI("alice").Return([]byte(`{"structs": [{"name": "x", "fields": [{"name": "y", "type": "missing"}]}]}`), nil),
		m.EXPECT().FetchABI("alice").Return([]byte(tokenABI), nil),
	)

	r := registry.New(m, logger.New(category))

	_, err := r.GetOrFetch("alice")
	assert.True(t, errors.Is(err, fault.FetchFailed), "transport failure: %v", err)
	assert.True(t, fault.IsErrExternal(err), "external class")

	_, err = r.GetOrFetch("alice")
	assert.True(t, errors.Is(err, fault.AbiNotFound), "not found: %v", err)

	_, err = r.GetOrFetch("alice")
	assert.True(t, errors.Is(err, fault.UnknownType), "bad abi: %v", err)
	assert.Equal(t, 0, r.Size(), "nothing installed")

	_, err = r.GetOrFetch("alice")
	assert.Nil(t, err, "good abi")
	assert.Equal(t, 1, r.Size(), "installed")
}

func TestSetWithoutFetcher(t *testing.T) {
	r := registry.New(nil, logger.New(category))

	_, err := r.GetOrFetch("eosio.token")
	assert.True(t, errors.Is(err, fault.AbiNotFound), "no fetcher: %v", err)

	err = r.Set("eosio.token", []byte(tokenABI))
	assert.Nil(t, err, "set")

	err = r.Set("bob", []byte(`{`))
	assert.True(t, errors.Is(err, fault.AbiParseFailed), "bad set: %v", err)

	d, err := r.GetOrFetch("eosio.token")
	assert.Nil(t, err, "get after set")
	assert.Equal(t, []string{"transfer"}, d.Actions(), "actions")
	assert.Equal(t, 1, r.Size(), "size")
}

func TestConcurrentAccess(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockFetcher(ctl)
	m.EXPECT().FetchABI(gomock.Any()).Return([]byte(tokenABI), nil).AnyTimes()

	r := registry.New(m, logger.New(category))

	const accounts = 64
	wg := sync.WaitGroup{}
	for i := 0; i < 4*accounts; i += 1 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			account := fmt.Sprintf("acct%d", n%accounts)
			if 0 == n%7 {
				r.Clear(account)
			}
			_, err := r.GetOrFetch(account)
			if nil != err {
				t.Errorf("get: %s  error: %s", account, err)
			}
		}(i)
	}
	wg.Wait()

	assert.True(t, r.Size() <= accounts, "size bounded")
}

func TestConcurrentClear(t *testing.T) {
	r := registry.New(nil, logger.New(category))

	for round := 0; round < 20; round += 1 {
		err := r.Set("eosio.token", []byte(tokenABI))
		assert.Nil(t, err, "round: %d: set", round)

		cleared := make(chan bool, 8)
		wg := sync.WaitGroup{}
		for i := 0; i < cap(cleared); i += 1 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				cleared <- r.Clear("eosio.token")
			}()
		}
		wg.Wait()
		close(cleared)

		n := 0
		for found := range cleared {
			if found {
				n += 1
			}
		}
		if 1 != n {
			t.Errorf("round: %d: cleared: %d times  expected: 1", round, n)
		}
	}
}
