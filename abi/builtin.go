// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package abi

import (
	"sort"
)

// names of the types every ABI may reference without declaring them
var builtinTypes = map[string]struct{}{
	"bool":                 {},
	"int8":                 {},
	"uint8":                {},
	"int16":                {},
	"uint16":               {},
	"int32":                {},
	"uint32":               {},
	"int64":                {},
	"uint64":               {},
	"int128":               {},
	"uint128":              {},
	"varint32":             {},
	"varuint32":            {},
	"float32":              {},
	"float64":              {},
	"time_point":           {},
	"time_point_sec":       {},
	"block_timestamp_type": {},
	"name":                 {},
	"bytes":                {},
	"string":               {},
	"checksum160":          {},
	"checksum256":          {},
	"checksum512":          {},
	"public_key":           {},
	"signature":            {},
	"symbol":               {},
	"symbol_code":          {},
	"asset":                {},
	"extended_asset":       {},
}

// IsBuiltin - true if the type name is a built in primitive
func IsBuiltin(typeName string) bool {
	_, ok := builtinTypes[typeName]
	return ok
}

// BuiltinTypes - sorted list of built in type names
func BuiltinTypes() []string {
	names := make([]string, 0, len(builtinTypes))
	for n := range builtinTypes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
