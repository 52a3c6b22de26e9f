// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainrpc - fetch contract ABIs from a chain node's HTTP API
//
// only get_abi is used; transactions are never pushed
package chainrpc
