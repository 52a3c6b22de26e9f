// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eosapi

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eosapi/codec"
	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/keypair"
	"github.com/bitmark-inc/eosapi/name"
	"github.com/bitmark-inc/eosapi/registry"
	"github.com/bitmark-inc/eosapi/symbol"
	"github.com/bitmark-inc/eosapi/transaction"
)

// API - boundary over the codec, registry, key and transaction packages
type API struct {
	lock     sync.RWMutex // guards settings
	settings Settings
	registry *registry.Registry
	log      *logger.L
}

// New - create an API; fetcher may be nil if all ABIs are installed
// with SetABI
func New(settings Settings, fetcher registry.Fetcher) *API {
	return &API{
		settings: settings,
		registry: registry.New(fetcher, logger.New("registry")),
		log:      logger.New("eosapi"),
	}
}

// Registry - the ABI cache
func (api *API) Registry() *registry.Registry {
	return api.registry
}

// run an operation, logging any error or panic, true on success
func (api *API) guard(operation string, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); nil != r {
			err := fault.Recovered(operation, r)
			api.log.Criticalf("%s: %s", operation, err)
			ok = false
		}
	}()

	err := fn()
	if nil != err {
		api.log.Errorf("%s: error: %s", operation, err)
		return false
	}
	return true
}

func (api *API) codecFor(account string) (*codec.Codec, error) {
	d, err := api.registry.GetOrFetch(account)
	if nil != err {
		return nil, err
	}
	return codec.New(d, api.codecOptions()), nil
}

// S2N - name to its 64 bit value, 0 on failure
func (api *API) S2N(s string) uint64 {
	value := uint64(0)
	api.guard("s2n", func() error {
		var err error
		value, err = name.Parse(s)
		return err
	})
	return value
}

// N2S - 64 bit value to name
func (api *API) N2S(n uint64) string {
	s := ""
	api.guard("n2s", func() error {
		s = name.Decode(n)
		return nil
	})
	return s
}

// StringToSymbol - precision and ticker to a symbol value, 0 on failure
func (api *API) StringToSymbol(precision int, code string) uint64 {
	value := uint64(0)
	api.guard("string_to_symbol", func() error {
		var err error
		value, err = symbol.Encode(precision, code)
		return err
	})
	return value
}

// PackArgs - JSON action arguments to binary, nil on failure
func (api *API) PackArgs(account string, action string, args []byte) []byte {
	var packed []byte
	ok := api.guard("pack_args", func() error {
		c, err := api.codecFor(account)
		if nil != err {
			return err
		}
		packed, err = c.Pack(action, args)
		return err
	})
	if !ok {
		return nil
	}
	return packed
}

// UnpackArgs - binary action arguments to JSON, "" on failure
func (api *API) UnpackArgs(account string, action string, data []byte) string {
	text := ""
	api.guard("unpack_args", func() error {
		c, err := api.codecFor(account)
		if nil != err {
			return err
		}
		b, err := c.Unpack(action, data)
		if nil != err {
			return err
		}
		text = string(b)
		return nil
	})
	return text
}

// SetABI - parse and install an ABI for an account
func (api *API) SetABI(account string, abiJSON []byte) bool {
	return api.guard("set_abi", func() error {
		return api.registry.Set(account, abiJSON)
	})
}

// ClearABICache - drop the cached ABI, true if one was cached
func (api *API) ClearABICache(account string) bool {
	found := false
	api.guard("clear_abi_cache", func() error {
		found = api.registry.Clear(account)
		return nil
	})
	return found
}

// PackABI - ABI JSON to its binary form, nil on failure
func (api *API) PackABI(abiJSON []byte) []byte {
	var packed []byte
	ok := api.guard("pack_abi", func() error {
		var err error
		packed, err = codec.PackABI(abiJSON)
		return err
	})
	if !ok {
		return nil
	}
	return packed
}

// action as accepted by GenTransaction: data is either hex or the
// JSON arguments to be packed with the account's ABI
type actionRequest struct {
	Account       string                        `json:"account"`
	Name          string                        `json:"name"`
	Authorization []transaction.PermissionLevel `json:"authorization"`
	Data          json.RawMessage               `json:"data"`
}

// GenTransaction - unsigned transaction JSON, "" on failure
func (api *API) GenTransaction(actionsJSON []byte, expirationSeconds int, referenceBlockID string) string {
	text := ""
	api.guard("gen_transaction", func() error {
		var requests []actionRequest
		err := json.Unmarshal(actionsJSON, &requests)
		if nil != err {
			return fmt.Errorf("%w: %s", fault.InvalidJSON, err)
		}

		actions := make([]transaction.Action, 0, len(requests))
		for i, r := range requests {
			a, err := api.action(r)
			if nil != err {
				return fmt.Errorf("action[%d]: %w", i, err)
			}
			actions = append(actions, a)
		}

		blockID, err := hex.DecodeString(referenceBlockID)
		if nil != err {
			return fault.HexExpected
		}

		s, err := transaction.Build(actions, expirationSeconds, blockID, api.Settings().MaxNetUsage)
		if nil != err {
			return err
		}
		b, err := s.JSON()
		if nil != err {
			return err
		}
		text = string(b)
		return nil
	})
	return text
}

func (api *API) action(r actionRequest) (transaction.Action, error) {
	a := transaction.Action{
		Account:       r.Account,
		Name:          r.Name,
		Authorization: r.Authorization,
	}
	if nil == a.Authorization {
		a.Authorization = []transaction.PermissionLevel{}
	}

	var hexData string
	if err := json.Unmarshal(r.Data, &hexData); nil == err {
		b, err := hex.DecodeString(hexData)
		if nil != err {
			return a, fault.HexExpected
		}
		a.Data = b
		return a, nil
	}

	c, err := api.codecFor(r.Account)
	if nil != err {
		return a, err
	}
	a.Data, err = c.Pack(r.Name, r.Data)
	return a, err
}

// SignTransaction - add a signature to a transaction JSON, "" on failure
func (api *API) SignTransaction(trxJSON []byte, wif string, chainID string) string {
	text := ""
	api.guard("sign_transaction", func() error {
		s, err := transaction.ParseSignedTransaction(trxJSON)
		if nil != err {
			return err
		}
		privateKey, err := keypair.PrivateKeyFromWIF(wif)
		if nil != err {
			return err
		}
		chain, err := hex.DecodeString(chainID)
		if nil != err {
			return fault.HexExpected
		}
		err = s.Sign(privateKey, chain)
		if nil != err {
			return err
		}
		b, err := s.JSON()
		if nil != err {
			return err
		}
		text = string(b)
		return nil
	})
	return text
}

// PackTransaction - signed transaction JSON to packed transaction
// JSON, "" on failure
func (api *API) PackTransaction(signedJSON []byte, compression transaction.Compression) string {
	text := ""
	api.guard("pack_transaction", func() error {
		s, err := transaction.ParseSignedTransaction(signedJSON)
		if nil != err {
			return err
		}
		p, err := transaction.Pack(s, compression)
		if nil != err {
			return err
		}
		b, err := p.JSON()
		if nil != err {
			return err
		}
		text = string(b)
		return nil
	})
	return text
}

// UnpackTransaction - plain transaction bytes to JSON, "" on failure
func (api *API) UnpackTransaction(data []byte) string {
	text := ""
	api.guard("unpack_transaction", func() error {
		t, err := transaction.Unpack(data)
		if nil != err {
			return err
		}
		b, err := t.JSON()
		if nil != err {
			return err
		}
		text = string(b)
		return nil
	})
	return text
}

// CreateKey - new random key pair in text form, empty on failure
func (api *API) CreateKey() keypair.RawKeyPair {
	raw := keypair.RawKeyPair{}
	api.guard("create_key", func() error {
		pair, err := keypair.Generate()
		if nil != err {
			return err
		}
		raw = pair.Raw(api.GetPublicKeyPrefix())
		return nil
	})
	return raw
}

// GetPublicKey - public key text for a WIF private key, "" on failure
func (api *API) GetPublicKey(wif string) string {
	text := ""
	api.guard("get_public_key", func() error {
		privateKey, err := keypair.PrivateKeyFromWIF(wif)
		if nil != err {
			return err
		}
		text = privateKey.PublicKey().Text(api.GetPublicKeyPrefix())
		return nil
	})
	return text
}

// FromBase58 - decode plain base58, nil on failure
func (api *API) FromBase58(s string) []byte {
	var data []byte
	ok := api.guard("from_base58", func() error {
		var err error
		data, err = keypair.Base58Decode(s)
		return err
	})
	if !ok {
		return nil
	}
	return data
}

// ToBase58 - encode plain base58
func (api *API) ToBase58(data []byte) string {
	text := ""
	api.guard("to_base58", func() error {
		text = keypair.Base58Encode(data)
		return nil
	})
	return text
}

// RecoverKey - public key text from a 32 byte digest and a 65 byte
// compact signature, "" on failure
func (api *API) RecoverKey(digest []byte, signature []byte) string {
	text := ""
	api.guard("recover_key", func() error {
		d, err := keypair.DigestFromBytes(digest)
		if nil != err {
			return err
		}
		sig, err := keypair.SignatureFromBytes(signature)
		if nil != err {
			return err
		}
		p, err := keypair.Recover(sig, d)
		if nil != err {
			return err
		}
		text = p.Text(api.GetPublicKeyPrefix())
		return nil
	})
	return text
}

// SignDigest - 65 byte compact signature of a 32 byte digest, nil on
// failure
func (api *API) SignDigest(digest []byte, wif string) []byte {
	var signature []byte
	ok := api.guard("sign_digest", func() error {
		d, err := keypair.DigestFromBytes(digest)
		if nil != err {
			return err
		}
		privateKey, err := keypair.PrivateKeyFromWIF(wif)
		if nil != err {
			return err
		}
		sig, err := keypair.Sign(privateKey, d)
		if nil != err {
			return err
		}
		signature = sig[:]
		return nil
	})
	if !ok {
		return nil
	}
	return signature
}
