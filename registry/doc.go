// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - process wide cache of parsed contract ABIs
//
// entries are spread over a fixed number of shards selected by an
// FNV-1a hash of the account name, each shard being a go-cache
// instance without expiry.  descriptors are immutable so a cached
// pointer may be used by any number of goroutines.
package registry
