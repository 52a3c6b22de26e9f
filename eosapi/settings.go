// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eosapi

import (
	"time"

	"github.com/bitmark-inc/eosapi/codec"
	"github.com/bitmark-inc/eosapi/keypair"
)

// Settings - process wide constants read by every operation
type Settings struct {
	MaxNetUsage          uint32        // bytes, converted to words in each built transaction
	ABISerializerMaxTime time.Duration // allowance for a single pack or unpack
	PublicKeyPrefix      string        // legacy public key text prefix
}

// DefaultSettings - values used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		MaxNetUsage:          0,
		ABISerializerMaxTime: codec.DefaultMaxTime,
		PublicKeyPrefix:      keypair.DefaultPrefix,
	}
}

// Settings - a copy of the current settings
func (api *API) Settings() Settings {
	api.lock.RLock()
	defer api.lock.RUnlock()
	return api.settings
}

// SetPublicKeyPrefix - change the legacy public key prefix
func (api *API) SetPublicKeyPrefix(prefix string) {
	api.lock.Lock()
	api.settings.PublicKeyPrefix = prefix
	api.lock.Unlock()
	api.log.Infof("public key prefix: %q", prefix)
}

// GetPublicKeyPrefix - the legacy public key prefix
func (api *API) GetPublicKeyPrefix() string {
	api.lock.RLock()
	defer api.lock.RUnlock()
	return api.settings.PublicKeyPrefix
}

// SetMaxNetUsage - net usage budget in bytes for built transactions
func (api *API) SetMaxNetUsage(bytes uint32) {
	api.lock.Lock()
	api.settings.MaxNetUsage = bytes
	api.lock.Unlock()
}

// SetABISerializerMaxTime - allowance for a single pack or unpack
func (api *API) SetABISerializerMaxTime(d time.Duration) {
	api.lock.Lock()
	api.settings.ABISerializerMaxTime = d
	api.lock.Unlock()
}

func (api *API) codecOptions() codec.Options {
	api.lock.RLock()
	defer api.lock.RUnlock()
	return codec.Options{
		MaxTime:         api.settings.ABISerializerMaxTime,
		PublicKeyPrefix: api.settings.PublicKeyPrefix,
	}
}
