// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/eosapi/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidABIFlag   = fault.InvalidError("abi flag must be: account=file")
	ErrMissingArgument  = fault.InvalidError("missing required argument")
	ErrMissingChainID   = fault.InvalidError("chain id not given and not configured")
	ErrOperationFailed  = fault.GenericError("operation failed, see log for details")
	ErrSignatureFormat  = fault.InvalidError("signature must be SIG_K1_ text or 65 byte hex")
	ErrValueNotAccepted = fault.InvalidError("value not accepted")
)
