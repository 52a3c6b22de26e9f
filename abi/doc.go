// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package abi - contract interface descriptions
//
// an ABI maps action names to argument types and describes the
// structs, aliases and variants those types are built from.  Parse
// validates the whole description up front so that a Descriptor never
// contains an unresolvable type or an alias cycle; a Descriptor is
// read only once built and may be shared between goroutines.
//
// type expressions accept three suffixes:
//   T[]   array of T
//   T?    optional T
//   T$    binary extension, only allowed on trailing struct fields
package abi
