// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/bitmark-inc/eosapi/fault"
)

var (
	ErrEncodingOne = fault.EncodingError("encoding one")
	ErrEncodingTwo = fault.EncodingError("encoding two")
	ErrExternalOne = fault.ExternalError("external one")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrKeyOne      = fault.KeyError("key one")
	ErrKeyTwo      = fault.KeyError("key two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrSchemaOne   = fault.SchemaError("schema one")
	ErrSchemaTwo   = fault.SchemaError("schema two")
)

// test that the various errors can be classified
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		encoding bool
		external bool
		invalid  bool
		key      bool
		notFound bool
		schema   bool
	}{
		{ErrEncodingOne, true, false, false, false, false, false},
		{ErrEncodingTwo, true, false, false, false, false, false},
		{ErrExternalOne, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false},
		{ErrKeyOne, false, false, false, true, false, false},
		{ErrKeyTwo, false, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false},
		{ErrSchemaOne, false, false, false, false, false, true},
		{ErrSchemaTwo, false, false, false, false, false, true},
		{fmt.Errorf("field %q: %w", "memo", ErrSchemaTwo), false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrEncoding(err) != e.encoding {
			t.Errorf("%d: expected 'encoding' == %v for err = %v", i, e.encoding, err)
		}
		if fault.IsErrExternal(err) != e.external {
			t.Errorf("%d: expected 'external' == %v for err = %v", i, e.external, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrKey(err) != e.key {
			t.Errorf("%d: expected 'key' == %v for err = %v", i, e.key, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrSchema(err) != e.schema {
			t.Errorf("%d: expected 'schema' == %v for err = %v", i, e.schema, err)
		}
	}
}
