// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/eosapi/util"
)

// Encoder - append only binary buffer
type Encoder struct {
	buffer []byte
}

// NewEncoder - create an empty encoder
func NewEncoder() *Encoder {
	return &Encoder{
		buffer: make([]byte, 0, 64),
	}
}

// Bytes - the data written so far
func (e *Encoder) Bytes() []byte {
	return e.buffer
}

// Len - number of bytes written
func (e *Encoder) Len() int {
	return len(e.buffer)
}

// WriteRaw - append bytes without a length prefix
func (e *Encoder) WriteRaw(b []byte) {
	e.buffer = append(e.buffer, b...)
}

// WriteUint8 - append a single byte
func (e *Encoder) WriteUint8(v uint8) {
	e.buffer = append(e.buffer, v)
}

// WriteBool - 0 or 1
func (e *Encoder) WriteBool(v bool) {
	if v {
		e.WriteUint8(1)
	} else {
		e.WriteUint8(0)
	}
}

// WriteUint16 - little endian
func (e *Encoder) WriteUint16(v uint16) {
	e.buffer = binary.LittleEndian.AppendUint16(e.buffer, v)
}

// WriteUint32 - little endian
func (e *Encoder) WriteUint32(v uint32) {
	e.buffer = binary.LittleEndian.AppendUint32(e.buffer, v)
}

// WriteUint64 - little endian
func (e *Encoder) WriteUint64(v uint64) {
	e.buffer = binary.LittleEndian.AppendUint64(e.buffer, v)
}

// WriteFloat32 - IEEE 754 single
func (e *Encoder) WriteFloat32(v float32) {
	e.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 - IEEE 754 double
func (e *Encoder) WriteFloat64(v float64) {
	e.WriteUint64(math.Float64bits(v))
}

// WriteVaruint32 - LEB128
func (e *Encoder) WriteVaruint32(v uint32) {
	e.buffer = append(e.buffer, util.ToVaruint32(v)...)
}

// WriteVarint32 - zigzag then LEB128
func (e *Encoder) WriteVarint32(v int32) {
	e.buffer = append(e.buffer, util.ToVarint32(v)...)
}

// WriteBytes - varuint32 length then data
func (e *Encoder) WriteBytes(b []byte) {
	e.WriteVaruint32(uint32(len(b)))
	e.WriteRaw(b)
}

// WriteString - varuint32 length then UTF-8 bytes
func (e *Encoder) WriteString(s string) {
	e.WriteVaruint32(uint32(len(s)))
	e.buffer = append(e.buffer, s...)
}
