// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package abi

import (
	"strconv"
	"strings"
)

// Definition - the JSON form of an ABI as published by a contract
type Definition struct {
	Version          string         `json:"version"`
	Types            []TypeDef      `json:"types"`
	Structs          []StructDef    `json:"structs"`
	Actions          []ActionDef    `json:"actions"`
	Tables           []TableDef     `json:"tables"`
	RicardianClauses []ClausePair   `json:"ricardian_clauses"`
	ErrorMessages    []ErrorMessage `json:"error_messages"`
	Extensions       []Extension    `json:"abi_extensions"`
	Variants         []VariantDef   `json:"variants"`
	ActionResults    []ActionResult `json:"action_results"`
}

// TypeDef - alias
type TypeDef struct {
	NewTypeName string `json:"new_type_name"`
	Type        string `json:"type"`
}

// FieldDef - one struct member
type FieldDef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// StructDef - fields are serialised in declaration order after
// those of the base struct
type StructDef struct {
	Name   string     `json:"name"`
	Base   string     `json:"base"`
	Fields []FieldDef `json:"fields"`
}

// ActionDef - action name and its argument type
type ActionDef struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	RicardianContract string `json:"ricardian_contract"`
}

// TableDef - contract table
type TableDef struct {
	Name      string   `json:"name"`
	IndexType string   `json:"index_type"`
	KeyNames  []string `json:"key_names"`
	KeyTypes  []string `json:"key_types"`
	Type      string   `json:"type"`
}

// ClausePair - ricardian clause
type ClausePair struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

// ErrorMessage - contract error code text
type ErrorMessage struct {
	Code    ErrorCode `json:"error_code"`
	Message string    `json:"error_msg"`
}

// ErrorCode - accepts both a JSON number and a decimal string
type ErrorCode uint64

// UnmarshalJSON - number or quoted number
func (c *ErrorCode) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return err
	}
	*c = ErrorCode(v)
	return nil
}

// Extension - opaque ABI extension
type Extension struct {
	Type uint16 `json:"type"`
	Data string `json:"data"`
}

// VariantDef - tagged union, index is the position in Types
type VariantDef struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

// ActionResult - return value type of an action
type ActionResult struct {
	Name       string `json:"name"`
	ResultType string `json:"result_type"`
}

// Normalise - replace missing lists with empty ones so that every
// member is present when the definition is serialised
func (def *Definition) Normalise() {
	if nil == def.Types {
		def.Types = []TypeDef{}
	}
	if nil == def.Structs {
		def.Structs = []StructDef{}
	}
	for i := range def.Structs {
		if nil == def.Structs[i].Fields {
			def.Structs[i].Fields = []FieldDef{}
		}
	}
	if nil == def.Actions {
		def.Actions = []ActionDef{}
	}
	if nil == def.Tables {
		def.Tables = []TableDef{}
	}
	for i := range def.Tables {
		if nil == def.Tables[i].KeyNames {
			def.Tables[i].KeyNames = []string{}
		}
		if nil == def.Tables[i].KeyTypes {
			def.Tables[i].KeyTypes = []string{}
		}
	}
	if nil == def.RicardianClauses {
		def.RicardianClauses = []ClausePair{}
	}
	if nil == def.ErrorMessages {
		def.ErrorMessages = []ErrorMessage{}
	}
	if nil == def.Extensions {
		def.Extensions = []Extension{}
	}
	if nil == def.Variants {
		def.Variants = []VariantDef{}
	}
	for i := range def.Variants {
		if nil == def.Variants[i].Types {
			def.Variants[i].Types = []string{}
		}
	}
	if nil == def.ActionResults {
		def.ActionResults = []ActionResult{}
	}
}
