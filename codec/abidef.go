// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/eosapi/abi"
	"github.com/bitmark-inc/eosapi/fault"
)

// the binary layout of an ABI, described as an ABI
const abiDefinitionText = `{
  "version": "eosio::abi/1.1",
  "types": [
    {"new_type_name": "type_name", "type": "string"},
    {"new_type_name": "field_name", "type": "string"}
  ],
  "structs": [
    {"name": "type_def", "base": "", "fields": [
      {"name": "new_type_name", "type": "type_name"},
      {"name": "type", "type": "type_name"}]},
    {"name": "field_def", "base": "", "fields": [
      {"name": "name", "type": "field_name"},
      {"name": "type", "type": "type_name"}]},
    {"name": "struct_def", "base": "", "fields": [
      {"name": "name", "type": "type_name"},
      {"name": "base", "type": "type_name"},
      {"name": "fields", "type": "field_def[]"}]},
    {"name": "action_def", "base": "", "fields": [
      {"name": "name", "type": "name"},
      {"name": "type", "type": "type_name"},
      {"name": "ricardian_contract", "type": "string"}]},
    {"name": "table_def", "base": "", "fields": [
      {"name": "name", "type": "name"},
      {"name": "index_type", "type": "type_name"},
      {"name": "key_names", "type": "field_name[]"},
      {"name": "key_types", "type": "type_name[]"},
      {"name": "type", "type": "type_name"}]},
    {"name": "clause_pair", "base": "", "fields": [
      {"name": "id", "type": "string"},
      {"name": "body", "type": "string"}]},
    {"name": "error_message", "base": "", "fields": [
      {"name": "error_code", "type": "uint64"},
      {"name": "error_msg", "type": "string"}]},
    {"name": "abi_extension", "base": "", "fields": [
      {"name": "type", "type": "uint16"},
      {"name": "data", "type": "bytes"}]},
    {"name": "variant_def", "base": "", "fields": [
      {"name": "name", "type": "type_name"},
      {"name": "types", "type": "type_name[]"}]},
    {"name": "action_result_def", "base": "", "fields": [
      {"name": "name", "type": "name"},
      {"name": "result_type", "type": "type_name"}]},
    {"name": "abi_def", "base": "", "fields": [
      {"name": "version", "type": "string"},
      {"name": "types", "type": "type_def[]"},
      {"name": "structs", "type": "struct_def[]"},
      {"name": "actions", "type": "action_def[]"},
      {"name": "tables", "type": "table_def[]"},
      {"name": "ricardian_clauses", "type": "clause_pair[]"},
      {"name": "error_messages", "type": "error_message[]"},
      {"name": "abi_extensions", "type": "abi_extension[]"},
      {"name": "variants", "type": "variant_def[]$"},
      {"name": "action_results", "type": "action_result_def[]$"}]}
  ]
}`

// type name of the root of abiDefinitionText
const abiDefinitionType = "abi_def"

var abiDefinitionCodec = mustCodec(abiDefinitionText)

func mustCodec(text string) *Codec {
	d, err := abi.Parse([]byte(text))
	if nil != err {
		panic(fmt.Sprintf("built in abi: %s", err))
	}
	return New(d, Options{})
}

// PackABI - validate the JSON text of an ABI and convert it to the
// binary form stored on chain
func PackABI(text []byte) ([]byte, error) {
	d, err := abi.Parse(text)
	if nil != err {
		return nil, err
	}
	return PackDefinition(d.Definition())
}

// PackDefinition - binary form of a decoded definition
func PackDefinition(def abi.Definition) ([]byte, error) {
	def.Normalise()
	text, err := json.Marshal(def)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.InvalidJSON, err)
	}
	return abiDefinitionCodec.PackType(abiDefinitionType, text)
}

// UnpackABI - binary ABI back to JSON text
func UnpackABI(data []byte) ([]byte, error) {
	return abiDefinitionCodec.UnpackType(abiDefinitionType, data)
}

// UnpackDefinition - binary ABI to a validated descriptor
func UnpackDefinition(data []byte) (*abi.Descriptor, error) {
	text, err := UnpackABI(data)
	if nil != err {
		return nil, err
	}
	return abi.Parse(text)
}
