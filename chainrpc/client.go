// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainrpc

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/util"
)

const (
	getABIPath = "/v1/chain/get_abi"

	rateBurst = 5
)

// Client - get_abi caller, implements registry.Fetcher
type Client struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
	log     *logger.L
}

type getABIArguments struct {
	AccountName string `json:"account_name"`
}

type getABIReply struct {
	AccountName string          `json:"account_name"`
	ABI         json.RawMessage `json:"abi"`
}

// New - create a client for the node at url
func New(url string, timeout time.Duration, requestsPerSecond float64) (*Client, error) {
	if requestsPerSecond <= 0 {
		return nil, fault.InvalidRequestRate
	}
	return &Client{
		url: strings.TrimSuffix(url, "/") + getABIPath,
		client: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), rateBurst),
		log:     logger.New("chainrpc"),
	}, nil
}

// FetchABI - the ABI JSON for an account
func (c *Client) FetchABI(account string) ([]byte, error) {
	err := rateLimit(c.limiter)
	if nil != err {
		return nil, err
	}

	var reply getABIReply
	err = util.PostJSON(c.client, c.url, getABIArguments{AccountName: account}, &reply)
	if nil != err {
		c.log.Warnf("get_abi: %q  error: %s", account, err)
		return nil, err
	}

	abi := bytes.TrimSpace(reply.ABI)
	if 0 == len(abi) || "null" == string(abi) {
		c.log.Infof("get_abi: %q has no abi", account)
		return nil, fault.AbiNotFound
	}

	c.log.Debugf("get_abi: %q  %d bytes", account, len(abi))
	return abi, nil
}

// limiting for a single request
func rateLimit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
