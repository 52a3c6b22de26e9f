// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Classes follow the failure taxonomy of the codec:
//   SchemaError    unknown action or type, struct/array arity
//   EncodingError  truncated or over-long data, value shape mismatch
//   KeyError       WIF, base58, signature, chain id, block id
//   ExternalError  ABI fetch failure
package fault
