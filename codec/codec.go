// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"fmt"
	"strings"
	"time"

	"github.com/bitmark-inc/eosapi/abi"
	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/keypair"
)

// defaults for Options
const (
	DefaultMaxDepth = 32
	DefaultMaxTime  = 100 * time.Millisecond
)

// Options - limits applied to a single pack or unpack
type Options struct {
	MaxTime         time.Duration // zero means no deadline
	MaxDepth        int           // zero means DefaultMaxDepth
	PublicKeyPrefix string        // zero means keypair.DefaultPrefix
}

// Codec - packs and unpacks values of the types of one ABI
type Codec struct {
	descriptor *abi.Descriptor
	options    Options
}

// per call traversal state
type walk struct {
	depth    int
	maxDepth int
	deadline time.Time
}

// New - codec for a descriptor
func New(descriptor *abi.Descriptor, options Options) *Codec {
	if options.MaxDepth <= 0 {
		options.MaxDepth = DefaultMaxDepth
	}
	if "" == options.PublicKeyPrefix {
		options.PublicKeyPrefix = keypair.DefaultPrefix
	}
	return &Codec{
		descriptor: descriptor,
		options:    options,
	}
}

// Descriptor - the ABI in use
func (c *Codec) Descriptor() *abi.Descriptor {
	return c.descriptor
}

// Pack - JSON arguments of an action to binary
func (c *Codec) Pack(action string, args []byte) ([]byte, error) {
	t, err := c.descriptor.ActionType(action)
	if nil != err {
		return nil, err
	}
	return c.PackType(t, args)
}

// Unpack - binary arguments of an action to JSON
func (c *Codec) Unpack(action string, data []byte) ([]byte, error) {
	t, err := c.descriptor.ActionType(action)
	if nil != err {
		return nil, err
	}
	return c.UnpackType(t, data)
}

// UnpackActionResult - binary return value of an action to JSON
func (c *Codec) UnpackActionResult(action string, data []byte) ([]byte, error) {
	t, ok := c.descriptor.ActionResultType(action)
	if !ok {
		return nil, fmt.Errorf("%w: no result type for %q", fault.UnknownAction, action)
	}
	return c.UnpackType(t, data)
}

// PackType - JSON text of any type expression to binary
func (c *Codec) PackType(typeName string, text []byte) ([]byte, error) {
	value, err := ParseJSON(text)
	if nil != err {
		return nil, err
	}
	return c.Encode(typeName, value)
}

// UnpackType - binary of any type expression to JSON text
func (c *Codec) UnpackType(typeName string, data []byte) ([]byte, error) {
	value, err := c.Decode(typeName, data)
	if nil != err {
		return nil, err
	}
	return Marshal(value)
}

// Encode - decoded JSON value to binary
func (c *Codec) Encode(typeName string, value interface{}) ([]byte, error) {
	e := NewEncoder()
	err := c.encode(c.newWalk(), typeName, value, e)
	if nil != err {
		return nil, err
	}
	return e.Bytes(), nil
}

// Decode - binary to a JSON ready value, all input must be consumed
func (c *Codec) Decode(typeName string, data []byte) (interface{}, error) {
	d := NewDecoder(data)
	value, err := c.decode(c.newWalk(), typeName, d)
	if nil != err {
		return nil, err
	}
	if 0 != d.Remaining() {
		return nil, fmt.Errorf("%w: %d bytes", fault.TrailingBytes, d.Remaining())
	}
	return value, nil
}

func (c *Codec) newWalk() *walk {
	w := &walk{
		maxDepth: c.options.MaxDepth,
	}
	if c.options.MaxTime > 0 {
		w.deadline = time.Now().Add(c.options.MaxTime)
	}
	return w
}

func (w *walk) enter() error {
	w.depth += 1
	if w.depth > w.maxDepth {
		return fault.MaximumDepthExceeded
	}
	if !w.deadline.IsZero() && time.Now().After(w.deadline) {
		return fault.DeadlineExceeded
	}
	return nil
}

func (w *walk) leave() {
	w.depth -= 1
}

func (c *Codec) encode(w *walk, typeName string, value interface{}, e *Encoder) error {
	if err := w.enter(); nil != err {
		return err
	}
	defer w.leave()

	t := c.descriptor.ResolveType(typeName)

	switch {
	case strings.HasSuffix(t, abi.ExtensionSuffix):
		return c.encode(w, strings.TrimSuffix(t, abi.ExtensionSuffix), value, e)

	case strings.HasSuffix(t, abi.OptionalSuffix):
		if nil == value {
			e.WriteBool(false)
			return nil
		}
		e.WriteBool(true)
		return c.encode(w, strings.TrimSuffix(t, abi.OptionalSuffix), value, e)

	case strings.HasSuffix(t, abi.ArraySuffix):
		items, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("%s: %w", t, fault.ArrayExpected)
		}
		element := strings.TrimSuffix(t, abi.ArraySuffix)
		e.WriteVaruint32(uint32(len(items)))
		for i, item := range items {
			err := c.encode(w, element, item, e)
			if nil != err {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return nil
	}

	if abi.IsBuiltin(t) {
		err := c.encodeBuiltin(w, t, value, e)
		if nil != err {
			return fmt.Errorf("%s: %w", t, err)
		}
		return nil
	}
	if v, ok := c.descriptor.Variant(t); ok {
		return c.encodeVariant(w, v, value, e)
	}
	if s, ok := c.descriptor.Struct(t); ok {
		return c.encodeStruct(w, s.Name, s.Fields, value, e)
	}
	return fmt.Errorf("%w: %q", fault.UnknownType, t)
}

func (c *Codec) encodeVariant(w *walk, v *abi.Variant, value interface{}, e *Encoder) error {
	pair, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("%s: %w", v.Name, fault.ArrayExpected)
	}
	if 2 != len(pair) {
		return fmt.Errorf("%s: %w", v.Name, fault.WrongNumberOfVariantItems)
	}
	member, ok := pair[0].(string)
	if !ok {
		return fmt.Errorf("%s: %w", v.Name, fault.StringExpected)
	}
	for i, t := range v.Types {
		if t == member {
			e.WriteVaruint32(uint32(i))
			return c.encode(w, t, pair[1], e)
		}
	}
	return fmt.Errorf("%s: %w: %q", v.Name, fault.UnknownVariantMember, member)
}

// fields are accepted either as an object or positionally as an array
func (c *Codec) encodeStruct(w *walk, structName string, fields []abi.FieldDef, value interface{}, e *Encoder) error {
	switch v := value.(type) {

	case Object:
		m := make(map[string]interface{}, len(v))
		for _, f := range v {
			m[f.Name] = f.Value
		}
		return c.encodeStruct(w, structName, fields, m, e)

	case map[string]interface{}:
		omitted := ""
		for _, f := range fields {
			item, present := v[f.Name]
			if !present {
				if strings.HasSuffix(f.Type, abi.ExtensionSuffix) {
					if "" == omitted {
						omitted = f.Name
					}
					continue
				}
				return fmt.Errorf("%s.%s: %w", structName, f.Name, fault.MissingField)
			}
			if "" != omitted {
				return fmt.Errorf("%s.%s: %w: follows omitted extension %q", structName, f.Name, fault.MissingField, omitted)
			}
			err := c.encode(w, f.Type, item, e)
			if nil != err {
				return fmt.Errorf("%s.%s: %w", structName, f.Name, err)
			}
		}
		return nil

	case []interface{}:
		required := 0
		for _, f := range fields {
			if !strings.HasSuffix(f.Type, abi.ExtensionSuffix) {
				required += 1
			}
		}
		if len(v) < required || len(v) > len(fields) {
			return fmt.Errorf("%s: %w: %d values for %d fields", structName, fault.ArityMismatch, len(v), len(fields))
		}
		for i, item := range v {
			err := c.encode(w, fields[i].Type, item, e)
			if nil != err {
				return fmt.Errorf("%s.%s: %w", structName, fields[i].Name, err)
			}
		}
		return nil

	default:
		return fmt.Errorf("%s: %w", structName, fault.ObjectExpected)
	}
}

func (c *Codec) decode(w *walk, typeName string, d *Decoder) (interface{}, error) {
	if err := w.enter(); nil != err {
		return nil, err
	}
	defer w.leave()

	t := c.descriptor.ResolveType(typeName)

	switch {
	case strings.HasSuffix(t, abi.ExtensionSuffix):
		return c.decode(w, strings.TrimSuffix(t, abi.ExtensionSuffix), d)

	case strings.HasSuffix(t, abi.OptionalSuffix):
		present, err := d.ReadBool()
		if nil != err {
			return nil, fmt.Errorf("%s: %w", t, err)
		}
		if !present {
			return nil, nil
		}
		return c.decode(w, strings.TrimSuffix(t, abi.OptionalSuffix), d)

	case strings.HasSuffix(t, abi.ArraySuffix):
		n, err := d.ReadVaruint32()
		if nil != err {
			return nil, fmt.Errorf("%s: %w", t, err)
		}
		if uint64(n) > uint64(d.Remaining()) {
			return nil, fmt.Errorf("%s: %w: %d elements", t, fault.Truncated, n)
		}
		element := strings.TrimSuffix(t, abi.ArraySuffix)
		items := make([]interface{}, 0, n)
		for i := uint32(0); i < n; i += 1 {
			item, err := c.decode(w, element, d)
			if nil != err {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			items = append(items, item)
		}
		return items, nil
	}

	if abi.IsBuiltin(t) {
		value, err := c.decodeBuiltin(w, t, d)
		if nil != err {
			return nil, fmt.Errorf("%s: %w", t, err)
		}
		return value, nil
	}
	if v, ok := c.descriptor.Variant(t); ok {
		return c.decodeVariant(w, v, d)
	}
	if s, ok := c.descriptor.Struct(t); ok {
		return c.decodeStruct(w, s.Name, s.Fields, d)
	}
	return nil, fmt.Errorf("%w: %q", fault.UnknownType, t)
}

func (c *Codec) decodeVariant(w *walk, v *abi.Variant, d *Decoder) (interface{}, error) {
	index, err := d.ReadVaruint32()
	if nil != err {
		return nil, fmt.Errorf("%s: %w", v.Name, err)
	}
	if uint64(index) >= uint64(len(v.Types)) {
		return nil, fmt.Errorf("%s: %w: %d", v.Name, fault.VariantIndexOutOfRange, index)
	}
	member := v.Types[index]
	value, err := c.decode(w, member, d)
	if nil != err {
		return nil, err
	}
	return []interface{}{member, value}, nil
}

// trailing extension fields are absent when the input is exhausted
func (c *Codec) decodeStruct(w *walk, structName string, fields []abi.FieldDef, d *Decoder) (interface{}, error) {
	object := make(Object, 0, len(fields))
	for _, f := range fields {
		if strings.HasSuffix(f.Type, abi.ExtensionSuffix) && 0 == d.Remaining() {
			break
		}
		value, err := c.decode(w, f.Type, d)
		if nil != err {
			return nil, fmt.Errorf("%s.%s: %w", structName, f.Name, err)
		}
		object = append(object, Field{Name: f.Name, Value: value})
	}
	return object, nil
}
