// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/util"
)

// Decoder - sequential reader over a byte slice
type Decoder struct {
	data     []byte
	position int
}

// NewDecoder - start reading at the beginning of data
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		data: data,
	}
}

// Remaining - count of unread bytes
func (d *Decoder) Remaining() int {
	return len(d.data) - d.position
}

// Position - offset of the next byte to be read
func (d *Decoder) Position() int {
	return d.position
}

// ReadRaw - next n bytes, the result aliases the input
func (d *Decoder) ReadRaw(n int) ([]byte, error) {
	if n < 0 || n > d.Remaining() {
		return nil, fault.Truncated
	}
	b := d.data[d.position : d.position+n]
	d.position += n
	return b, nil
}

// ReadUint8 - single byte
func (d *Decoder) ReadUint8() (uint8, error) {
	b, err := d.ReadRaw(1)
	if nil != err {
		return 0, err
	}
	return b[0], nil
}

// ReadBool - byte that must be 0 or 1
func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.ReadUint8()
	if nil != err {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.BooleanExpected
	}
}

// ReadUint16 - little endian
func (d *Decoder) ReadUint16() (uint16, error) {
	b, err := d.ReadRaw(2)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 - little endian
func (d *Decoder) ReadUint32() (uint32, error) {
	b, err := d.ReadRaw(4)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 - little endian
func (d *Decoder) ReadUint64() (uint64, error) {
	b, err := d.ReadRaw(8)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadFloat32 - IEEE 754 single
func (d *Decoder) ReadFloat32() (float32, error) {
	v, err := d.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 - IEEE 754 double
func (d *Decoder) ReadFloat64() (float64, error) {
	v, err := d.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadVaruint32 - LEB128 of at most five bytes
func (d *Decoder) ReadVaruint32() (uint32, error) {
	v, n := util.FromVaruint32(d.data[d.position:])
	if 0 == n {
		return 0, d.varintFailure()
	}
	d.position += n
	return v, nil
}

// ReadVarint32 - zigzag LEB128
func (d *Decoder) ReadVarint32() (int32, error) {
	v, n := util.FromVarint32(d.data[d.position:])
	if 0 == n {
		return 0, d.varintFailure()
	}
	d.position += n
	return v, nil
}

// distinguish running off the end from a value wider than 32 bits
func (d *Decoder) varintFailure() error {
	for i := 0; i < util.Varuint32MaximumBytes && i < d.Remaining(); i += 1 {
		if 0 == d.data[d.position+i]&0x80 {
			return fault.VarintOverflow
		}
	}
	if d.Remaining() < util.Varuint32MaximumBytes {
		return fault.Truncated
	}
	return fault.VarintOverflow
}

// ReadBytes - varuint32 length then data
func (d *Decoder) ReadBytes() ([]byte, error) {
	n, err := d.ReadVaruint32()
	if nil != err {
		return nil, err
	}
	if uint64(n) > uint64(d.Remaining()) {
		return nil, fault.Truncated
	}
	return d.ReadRaw(int(n))
}

// ReadString - varuint32 length then bytes
func (d *Decoder) ReadString() (string, error) {
	b, err := d.ReadBytes()
	if nil != err {
		return "", err
	}
	return string(b), nil
}
