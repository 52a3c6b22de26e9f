// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - convert between JSON values and the binary layout
// described by an ABI
//
// all integers are little endian, lengths and counts are varuint32,
// optionals carry a one byte presence flag and variants a varuint32
// index of the member type.
//
// decoded values are built from Object (ordered members), []interface{},
// string, bool, json.Number and nil; 64 bit integers outside
// ±0xffffffff together with 128 bit integers and floats are rendered
// as strings.
package codec
