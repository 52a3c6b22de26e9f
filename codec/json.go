// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/bitmark-inc/eosapi/fault"
)

// largest magnitude a 64 bit integer may have and still be rendered
// as a JSON number
const maximumJSONInteger = 0xffffffff

// Field - one member of an Object
type Field struct {
	Name  string
	Value interface{}
}

// Object - JSON object that keeps its members in field order
type Object []Field

// Get - value of the named member
func (o Object) Get(name string) (interface{}, bool) {
	for _, f := range o {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON - members in order
func (o Object) MarshalJSON() ([]byte, error) {
	buffer := bytes.Buffer{}
	buffer.WriteByte('{')
	for i, f := range o {
		if 0 != i {
			buffer.WriteByte(',')
		}
		k, err := Marshal(f.Name)
		if nil != err {
			return nil, err
		}
		buffer.Write(k)
		buffer.WriteByte(':')
		v, err := Marshal(f.Value)
		if nil != err {
			return nil, err
		}
		buffer.Write(v)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// Marshal - compact JSON without HTML escaping
func Marshal(value interface{}) ([]byte, error) {
	buffer := bytes.Buffer{}
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(value)
	if nil != err {
		return nil, err
	}
	return bytes.TrimRight(buffer.Bytes(), "\n"), nil
}

// ParseJSON - decode a single JSON value keeping numbers as json.Number
func ParseJSON(text []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(text))
	decoder.UseNumber()

	var value interface{}
	err := decoder.Decode(&value)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.InvalidJSON, err)
	}

	var extra interface{}
	if err := decoder.Decode(&extra); io.EOF != err {
		return nil, fmt.Errorf("%w: data after value", fault.InvalidJSON)
	}
	return value, nil
}

func renderInt(v int64) interface{} {
	if v > maximumJSONInteger || v < -maximumJSONInteger {
		return strconv.FormatInt(v, 10)
	}
	return json.Number(strconv.FormatInt(v, 10))
}

func renderUint(v uint64) interface{} {
	if v > maximumJSONInteger {
		return strconv.FormatUint(v, 10)
	}
	return json.Number(strconv.FormatUint(v, 10))
}

func renderBig(v *big.Int) interface{} {
	return v.String()
}

func renderFloat(v float64, bits int) interface{} {
	return strconv.FormatFloat(v, 'g', -1, bits)
}
