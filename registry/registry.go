// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"
	"hash/fnv"
	"sync"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/eosapi/abi"
	"github.com/bitmark-inc/eosapi/fault"
)

// number of independently locked partitions
const shardCount = 16

// Fetcher - source of ABI JSON text for accounts that are not cached
type Fetcher interface {
	FetchABI(account string) ([]byte, error)
}

// Registry - account name to parsed ABI
type Registry struct {
	fetcher Fetcher
	log     *logger.L
	shards  [shardCount]*partition
}

// the mutex serialises changes so that a lookup followed by a change
// is a single step
type partition struct {
	sync.Mutex
	items *cache.Cache
}

// New - create an empty registry, fetcher may be nil in which case
// only explicitly installed ABIs are available
func New(fetcher Fetcher, log *logger.L) *Registry {
	r := &Registry{
		fetcher: fetcher,
		log:     log,
	}
	for i := range r.shards {
		r.shards[i] = &partition{
			items: cache.New(cache.NoExpiration, 0),
		}
	}
	return r
}

func (r *Registry) shard(account string) *partition {
	h := fnv.New32a()
	_, _ = h.Write([]byte(account))
	return r.shards[h.Sum32()%shardCount]
}

// Get - cached descriptor only, never fetches
func (r *Registry) Get(account string) (*abi.Descriptor, bool) {
	obj, found := r.shard(account).items.Get(account)
	if !found {
		return nil, false
	}
	return obj.(*abi.Descriptor), true
}

// GetOrFetch - cached descriptor, fetching and parsing it on a miss
//
// the fetch runs without any lock held; a failed fetch or parse leaves
// the registry unchanged
func (r *Registry) GetOrFetch(account string) (*abi.Descriptor, error) {
	if d, ok := r.Get(account); ok {
		return d, nil
	}
	if nil == r.fetcher {
		return nil, fmt.Errorf("%w: %q", fault.AbiNotFound, account)
	}

	r.log.Debugf("fetch abi for: %q", account)
	data, err := r.fetcher.FetchABI(account)
	if nil != err {
		r.log.Warnf("fetch abi for: %q  error: %s", account, err)
		if fault.IsErrNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", fault.FetchFailed, err)
	}

	d, err := abi.Parse(data)
	if nil != err {
		r.log.Errorf("parse abi for: %q  error: %s", account, err)
		return nil, err
	}

	r.SetDescriptor(account, d)
	return d, nil
}

// Set - parse and install an ABI, replacing any existing entry
func (r *Registry) Set(account string, text []byte) error {
	d, err := abi.Parse(text)
	if nil != err {
		r.log.Errorf("set abi for: %q  error: %s", account, err)
		return err
	}
	r.SetDescriptor(account, d)
	return nil
}

// SetDescriptor - install an already parsed ABI
func (r *Registry) SetDescriptor(account string, d *abi.Descriptor) {
	s := r.shard(account)
	s.Lock()
	s.items.Set(account, d, cache.NoExpiration)
	s.Unlock()
	r.log.Infof("installed abi for: %q", account)
}

// Clear - remove an entry, true if one was present
func (r *Registry) Clear(account string) bool {
	s := r.shard(account)
	s.Lock()
	_, found := s.items.Get(account)
	if found {
		s.items.Delete(account)
	}
	s.Unlock()

	if found {
		r.log.Infof("cleared abi for: %q", account)
	}
	return found
}

// Size - total number of cached ABIs
func (r *Registry) Size() int {
	n := 0
	for _, s := range r.shards {
		n += s.items.ItemCount()
	}
	return n
}
