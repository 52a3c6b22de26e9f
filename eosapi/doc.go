// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package eosapi - host facing operations
//
// every exported method of API is fail safe: an error or a panic in
// the underlying packages is logged and converted to the method's
// documented empty result (0, "", nil or false).  callers cannot tell
// one failure from another by the return value; the log carries the
// detail.
//
// ABIs are looked up in a shared registry and fetched on a miss.
package eosapi
