// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the file must return a table, e.g.:
//
//   local M = {}
//   M.chain_id = "aca376f206b8fc25a6ed44dbdc66547c36c6c33e3a119ffbeaef943642f0e906"
//   M.api_url = "http://127.0.0.1:8888"
//   M.abi_serializer_max_time_ms = 100
//   M.abi_files = { ["eosio.token"] = "token.abi" }
//   return M
package configuration
