// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package abi

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/name"
)

// suffixes of type expressions
const (
	ArraySuffix     = "[]"
	OptionalSuffix  = "?"
	ExtensionSuffix = "$"
)

// nesting limit while validating type expressions
const maximumValidationDepth = 32

// Struct - a struct with the fields of its base chain flattened in
// front of its own
type Struct struct {
	Name   string
	Base   string
	Fields []FieldDef
}

// Variant - ordered list of member types
type Variant struct {
	Name  string
	Types []string
}

// Descriptor - validated, immutable ABI
type Descriptor struct {
	definition Definition
	aliases    map[string]string
	structs    map[string]*Struct
	variants   map[string]*Variant
	actions    map[string]string
	tables     map[string]string
	results    map[string]string
}

// Parse - decode and validate the JSON text of an ABI
func Parse(data []byte) (*Descriptor, error) {
	if 0 == len(strings.TrimSpace(string(data))) {
		return nil, fault.AbiParseFailed
	}

	var def Definition
	err := json.Unmarshal(data, &def)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.AbiParseFailed, err)
	}
	return New(def)
}

// New - validate an already decoded definition
func New(def Definition) (*Descriptor, error) {

	if "" != def.Version && !strings.HasPrefix(def.Version, "eosio::abi/1.") {
		return nil, fmt.Errorf("%w: unsupported version %q", fault.AbiParseFailed, def.Version)
	}
	def.Normalise()

	d := &Descriptor{
		definition: def,
		aliases:    make(map[string]string, len(def.Types)),
		structs:    make(map[string]*Struct, len(def.Structs)),
		variants:   make(map[string]*Variant, len(def.Variants)),
		actions:    make(map[string]string, len(def.Actions)),
		tables:     make(map[string]string, len(def.Tables)),
		results:    make(map[string]string, len(def.ActionResults)),
	}

	declared := func(n string) bool {
		if IsBuiltin(n) {
			return true
		}
		if _, ok := d.aliases[n]; ok {
			return true
		}
		if _, ok := d.structs[n]; ok {
			return true
		}
		_, ok := d.variants[n]
		return ok
	}

	for _, t := range def.Types {
		if "" == t.NewTypeName || declared(t.NewTypeName) {
			return nil, fmt.Errorf("%w: %q", fault.DuplicateType, t.NewTypeName)
		}
		d.aliases[t.NewTypeName] = t.Type
	}
	for _, s := range def.Structs {
		if "" == s.Name || declared(s.Name) {
			return nil, fmt.Errorf("%w: %q", fault.DuplicateType, s.Name)
		}
		d.structs[s.Name] = &Struct{
			Name:   s.Name,
			Base:   s.Base,
			Fields: s.Fields,
		}
	}
	for _, v := range def.Variants {
		if "" == v.Name || declared(v.Name) {
			return nil, fmt.Errorf("%w: %q", fault.DuplicateType, v.Name)
		}
		d.variants[v.Name] = &Variant{
			Name:  v.Name,
			Types: v.Types,
		}
	}

	err := d.checkAliases()
	if nil != err {
		return nil, err
	}

	err = d.flattenStructs()
	if nil != err {
		return nil, err
	}

	for _, s := range d.structs {
		extension := false
		for _, f := range s.Fields {
			if strings.HasSuffix(f.Type, ExtensionSuffix) {
				extension = true
			} else if extension {
				return nil, fmt.Errorf("%w: %s.%s", fault.BinaryExtensionNotLast, s.Name, f.Name)
			}
			err := d.validate(f.Type, true, 0)
			if nil != err {
				return nil, fmt.Errorf("%s.%s: %w", s.Name, f.Name, err)
			}
		}
	}
	for _, v := range d.variants {
		for _, t := range v.Types {
			err := d.validate(t, false, 0)
			if nil != err {
				return nil, fmt.Errorf("variant %s: %w", v.Name, err)
			}
		}
	}
	for alias, t := range d.aliases {
		err := d.validate(t, false, 0)
		if nil != err {
			return nil, fmt.Errorf("alias %s: %w", alias, err)
		}
	}

	for _, a := range def.Actions {
		if !name.Valid(a.Name) {
			return nil, fmt.Errorf("action %q: %w", a.Name, fault.InvalidName)
		}
		if _, ok := d.actions[a.Name]; ok {
			return nil, fmt.Errorf("%w: action %q", fault.DuplicateType, a.Name)
		}
		err := d.validate(a.Type, false, 0)
		if nil != err {
			return nil, fmt.Errorf("action %s: %w", a.Name, err)
		}
		d.actions[a.Name] = a.Type
	}
	for _, t := range def.Tables {
		if !name.Valid(t.Name) {
			return nil, fmt.Errorf("table %q: %w", t.Name, fault.InvalidName)
		}
		err := d.validate(t.Type, false, 0)
		if nil != err {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		d.tables[t.Name] = t.Type
	}
	for _, r := range def.ActionResults {
		err := d.validate(r.ResultType, false, 0)
		if nil != err {
			return nil, fmt.Errorf("action result %s: %w", r.Name, err)
		}
		d.results[r.Name] = r.ResultType
	}

	return d, nil
}

// follow every alias chain and reject any that loops
func (d *Descriptor) checkAliases() error {
	for alias := range d.aliases {
		seen := map[string]struct{}{alias: {}}
		t := d.aliases[alias]
		for {
			next, ok := d.aliases[t]
			if !ok {
				break
			}
			if _, loop := seen[t]; loop {
				return fmt.Errorf("%w: %q", fault.AliasCycle, alias)
			}
			seen[t] = struct{}{}
			t = next
		}
	}
	return nil
}

// prepend base fields to every struct
func (d *Descriptor) flattenStructs() error {
	done := make(map[string]bool, len(d.structs))

	var flatten func(s *Struct, chain map[string]struct{}) error
	flatten = func(s *Struct, chain map[string]struct{}) error {
		if done[s.Name] || "" == s.Base {
			done[s.Name] = true
			return nil
		}
		if _, loop := chain[s.Name]; loop {
			return fmt.Errorf("%w: %q", fault.StructBaseCycle, s.Name)
		}
		chain[s.Name] = struct{}{}

		base, ok := d.structs[d.ResolveType(s.Base)]
		if !ok {
			return fmt.Errorf("struct %s base %q: %w", s.Name, s.Base, fault.UnknownType)
		}
		err := flatten(base, chain)
		if nil != err {
			return err
		}

		fields := make([]FieldDef, 0, len(base.Fields)+len(s.Fields))
		fields = append(fields, base.Fields...)
		s.Fields = append(fields, s.Fields...)
		done[s.Name] = true
		return nil
	}

	for _, s := range d.structs {
		err := flatten(s, map[string]struct{}{})
		if nil != err {
			return err
		}
	}
	return nil
}

// check that a type expression resolves to something concrete
func (d *Descriptor) validate(typeName string, extensionAllowed bool, depth int) error {
	if depth > maximumValidationDepth {
		return fmt.Errorf("%w: %q", fault.MaximumDepthExceeded, typeName)
	}

	t := typeName
	if strings.HasSuffix(t, ExtensionSuffix) {
		if !extensionAllowed {
			return fmt.Errorf("%w: %q", fault.UnknownType, typeName)
		}
		t = strings.TrimSuffix(t, ExtensionSuffix)
	}
	for {
		if strings.HasSuffix(t, ArraySuffix) {
			t = strings.TrimSuffix(t, ArraySuffix)
		} else if strings.HasSuffix(t, OptionalSuffix) {
			t = strings.TrimSuffix(t, OptionalSuffix)
		} else {
			break
		}
	}
	if "" == t || strings.ContainsAny(t, "[]?$") {
		return fmt.Errorf("%w: %q", fault.UnknownType, typeName)
	}

	if target, ok := d.aliases[t]; ok {
		return d.validate(target, false, depth+1)
	}
	if IsBuiltin(t) {
		return nil
	}
	if _, ok := d.structs[t]; ok {
		return nil
	}
	if _, ok := d.variants[t]; ok {
		return nil
	}
	return fmt.Errorf("%w: %q", fault.UnknownType, typeName)
}

// ResolveType - follow aliases until a non-alias type expression
func (d *Descriptor) ResolveType(typeName string) string {
	for {
		next, ok := d.aliases[typeName]
		if !ok {
			return typeName
		}
		typeName = next
	}
}

// Struct - look up a struct by name
func (d *Descriptor) Struct(typeName string) (*Struct, bool) {
	s, ok := d.structs[typeName]
	return s, ok
}

// Variant - look up a variant by name
func (d *Descriptor) Variant(typeName string) (*Variant, bool) {
	v, ok := d.variants[typeName]
	return v, ok
}

// ActionType - argument type of an action
func (d *Descriptor) ActionType(action string) (string, error) {
	t, ok := d.actions[action]
	if !ok {
		return "", fmt.Errorf("%w: %q", fault.UnknownAction, action)
	}
	return t, nil
}

// TableType - row type of a table
func (d *Descriptor) TableType(table string) (string, error) {
	t, ok := d.tables[table]
	if !ok {
		return "", fmt.Errorf("%w: table %q", fault.UnknownType, table)
	}
	return t, nil
}

// ActionResultType - return type of an action, if declared
func (d *Descriptor) ActionResultType(action string) (string, bool) {
	t, ok := d.results[action]
	return t, ok
}

// Actions - sorted action names
func (d *Descriptor) Actions() []string {
	names := make([]string, 0, len(d.actions))
	for n := range d.actions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Version - the declared version string
func (d *Descriptor) Version() string {
	return d.definition.Version
}

// Definition - the definition the descriptor was built from with all
// lists present
func (d *Descriptor) Definition() Definition {
	return d.definition
}
