// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - build, sign and pack transaction envelopes
//
// Binary layout of a transaction:
//
//   expiration           uint32     seconds since epoch
//   ref_block_num        uint16     low 16 bits of the reference block number
//   ref_block_prefix     uint32     bytes 8..11 of the reference block id
//   max_net_usage_words  varuint32
//   max_cpu_usage_ms     uint8
//   delay_sec            varuint32
//   context_free_actions action[]
//   actions              action[]
//   extensions           (uint16, bytes)[]
//
// an action is account name, action name, (actor, permission)[] and
// the packed argument bytes.
//
// the signing digest is sha256(chain id || transaction ||
// sha256(context free data)), with 32 zero bytes in place of the last
// hash when there is no context free data.
package transaction
