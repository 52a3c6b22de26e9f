// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"fmt"

	"github.com/bitmark-inc/eosapi/codec"
	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/keypair"
	"github.com/bitmark-inc/eosapi/name"
)

// signatures are a K1 key type tag followed by the compact form
const k1KeyType = 0

// Bytes - binary form of the transaction
func (t *Transaction) Bytes() ([]byte, error) {
	e := codec.NewEncoder()
	err := t.encode(e)
	if nil != err {
		return nil, err
	}
	return e.Bytes(), nil
}

// ID - sha256 of the binary form
func (t *Transaction) ID() (keypair.Digest, error) {
	b, err := t.Bytes()
	if nil != err {
		return keypair.Digest{}, err
	}
	return keypair.NewDigest(b), nil
}

func (t *Transaction) encode(e *codec.Encoder) error {
	e.WriteUint32(uint32(t.Expiration))
	e.WriteUint16(t.RefBlockNum)
	e.WriteUint32(t.RefBlockPrefix)
	e.WriteVaruint32(t.MaxNetUsageWords)
	e.WriteUint8(t.MaxCPUUsageMS)
	e.WriteVaruint32(t.DelaySec)

	err := encodeActions(t.ContextFreeActions, e)
	if nil != err {
		return fmt.Errorf("context free %w", err)
	}
	err = encodeActions(t.Actions, e)
	if nil != err {
		return err
	}

	e.WriteVaruint32(uint32(len(t.Extensions)))
	for _, x := range t.Extensions {
		e.WriteUint16(x.Type)
		e.WriteBytes(x.Data)
	}
	return nil
}

func encodeActions(actions []Action, e *codec.Encoder) error {
	e.WriteVaruint32(uint32(len(actions)))
	for i, a := range actions {
		err := encodeAction(a, e)
		if nil != err {
			return fmt.Errorf("action[%d]: %w", i, err)
		}
	}
	return nil
}

func encodeAction(a Action, e *codec.Encoder) error {
	err := writeName(a.Account, e)
	if nil != err {
		return err
	}
	err = writeName(a.Name, e)
	if nil != err {
		return err
	}
	e.WriteVaruint32(uint32(len(a.Authorization)))
	for _, p := range a.Authorization {
		err = writeName(p.Actor, e)
		if nil != err {
			return err
		}
		err = writeName(p.Permission, e)
		if nil != err {
			return err
		}
	}
	e.WriteBytes(a.Data)
	return nil
}

func writeName(s string, e *codec.Encoder) error {
	n, err := name.Parse(s)
	if nil != err {
		return fmt.Errorf("%w: %q", err, s)
	}
	e.WriteUint64(n)
	return nil
}

// Unpack - decode the binary form of a transaction, all of data must
// be consumed
func Unpack(data []byte) (*Transaction, error) {
	d := codec.NewDecoder(data)
	t, err := decodeTransaction(d)
	if nil != err {
		return nil, err
	}
	if 0 != d.Remaining() {
		return nil, fmt.Errorf("%w: %d bytes", fault.TrailingBytes, d.Remaining())
	}
	return t, nil
}

func decodeTransaction(d *codec.Decoder) (*Transaction, error) {
	t := &Transaction{}

	expiration, err := d.ReadUint32()
	if nil != err {
		return nil, err
	}
	t.Expiration = TimePointSec(expiration)

	if t.RefBlockNum, err = d.ReadUint16(); nil != err {
		return nil, err
	}
	if t.RefBlockPrefix, err = d.ReadUint32(); nil != err {
		return nil, err
	}
	if t.MaxNetUsageWords, err = d.ReadVaruint32(); nil != err {
		return nil, err
	}
	if t.MaxCPUUsageMS, err = d.ReadUint8(); nil != err {
		return nil, err
	}
	if t.DelaySec, err = d.ReadVaruint32(); nil != err {
		return nil, err
	}

	if t.ContextFreeActions, err = decodeActions(d); nil != err {
		return nil, fmt.Errorf("context free %w", err)
	}
	if t.Actions, err = decodeActions(d); nil != err {
		return nil, err
	}

	n, err := readCount(d)
	if nil != err {
		return nil, err
	}
	t.Extensions = make([]Extension, 0, n)
	for i := 0; i < n; i += 1 {
		x := Extension{}
		if x.Type, err = d.ReadUint16(); nil != err {
			return nil, err
		}
		data, err := d.ReadBytes()
		if nil != err {
			return nil, err
		}
		x.Data = append(HexBytes{}, data...)
		t.Extensions = append(t.Extensions, x)
	}
	return t, nil
}

func decodeActions(d *codec.Decoder) ([]Action, error) {
	n, err := readCount(d)
	if nil != err {
		return nil, err
	}
	actions := make([]Action, 0, n)
	for i := 0; i < n; i += 1 {
		a, err := decodeAction(d)
		if nil != err {
			return nil, fmt.Errorf("action[%d]: %w", i, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func decodeAction(d *codec.Decoder) (Action, error) {
	a := Action{}
	account, err := d.ReadUint64()
	if nil != err {
		return a, err
	}
	action, err := d.ReadUint64()
	if nil != err {
		return a, err
	}
	a.Account = name.Decode(account)
	a.Name = name.Decode(action)

	n, err := readCount(d)
	if nil != err {
		return a, err
	}
	a.Authorization = make([]PermissionLevel, 0, n)
	for i := 0; i < n; i += 1 {
		actor, err := d.ReadUint64()
		if nil != err {
			return a, err
		}
		permission, err := d.ReadUint64()
		if nil != err {
			return a, err
		}
		a.Authorization = append(a.Authorization, PermissionLevel{
			Actor:      name.Decode(actor),
			Permission: name.Decode(permission),
		})
	}

	data, err := d.ReadBytes()
	if nil != err {
		return a, err
	}
	a.Data = append(HexBytes{}, data...)
	return a, nil
}

// element count that cannot exceed the remaining input
func readCount(d *codec.Decoder) (int, error) {
	n, err := d.ReadVaruint32()
	if nil != err {
		return 0, err
	}
	if uint64(n) > uint64(d.Remaining()) {
		return 0, fault.Truncated
	}
	return int(n), nil
}

func encodeSignatures(signatures []keypair.Signature, e *codec.Encoder) {
	e.WriteVaruint32(uint32(len(signatures)))
	for _, sig := range signatures {
		e.WriteVaruint32(k1KeyType)
		e.WriteRaw(sig[:])
	}
}

func decodeSignatures(d *codec.Decoder) ([]keypair.Signature, error) {
	n, err := readCount(d)
	if nil != err {
		return nil, err
	}
	signatures := make([]keypair.Signature, 0, n)
	for i := 0; i < n; i += 1 {
		kt, err := d.ReadVaruint32()
		if nil != err {
			return nil, err
		}
		if k1KeyType != kt {
			return nil, fault.UnsupportedKeyType
		}
		b, err := d.ReadRaw(keypair.SignatureSize)
		if nil != err {
			return nil, err
		}
		sig, err := keypair.SignatureFromBytes(b)
		if nil != err {
			return nil, err
		}
		signatures = append(signatures, sig)
	}
	return signatures, nil
}

// vector of byte strings, empty input packs to nothing at all
func packContextFreeData(data []HexBytes) []byte {
	if 0 == len(data) {
		return []byte{}
	}
	e := codec.NewEncoder()
	e.WriteVaruint32(uint32(len(data)))
	for _, b := range data {
		e.WriteBytes(b)
	}
	return e.Bytes()
}

func unpackContextFreeData(packed []byte) ([]HexBytes, error) {
	if 0 == len(packed) {
		return []HexBytes{}, nil
	}
	d := codec.NewDecoder(packed)
	n, err := readCount(d)
	if nil != err {
		return nil, err
	}
	data := make([]HexBytes, 0, n)
	for i := 0; i < n; i += 1 {
		b, err := d.ReadBytes()
		if nil != err {
			return nil, err
		}
		data = append(data, append(HexBytes{}, b...))
	}
	if 0 != d.Remaining() {
		return nil, fault.TrailingBytes
	}
	return data, nil
}
