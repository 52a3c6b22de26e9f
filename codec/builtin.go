// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/hex"
	"math"
	"math/big"
	"time"

	"github.com/bitmark-inc/eosapi/abi"
	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/keypair"
	"github.com/bitmark-inc/eosapi/name"
	"github.com/bitmark-inc/eosapi/symbol"
)

// key and signature variant index, only K1 is supported
const k1KeyType = 0

// block timestamps count half second slots from 2000-01-01T00:00:00Z
const (
	blockTimestampEpochMS    = int64(946684800000)
	blockTimestampIntervalMS = int64(500)
)

// output layouts
const (
	timePointLayout    = "2006-01-02T15:04:05.000"
	timePointSecLayout = "2006-01-02T15:04:05"
)

var extendedAssetFields = []abi.FieldDef{
	{Name: "quantity", Type: "asset"},
	{Name: "contract", Type: "name"},
}

var (
	two128     = new(big.Int).Lsh(big.NewInt(1), 128)
	maxUint128 = new(big.Int).Sub(two128, big.NewInt(1))
	maxInt128  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

func (c *Codec) encodeBuiltin(w *walk, t string, value interface{}, e *Encoder) error {
	switch t {

	case "bool":
		b, err := toBool(value)
		if nil != err {
			return err
		}
		e.WriteBool(b)

	case "int8":
		n, err := toInt(value, math.MinInt8, math.MaxInt8)
		if nil != err {
			return err
		}
		e.WriteUint8(uint8(n))

	case "uint8":
		n, err := toUint(value, math.MaxUint8)
		if nil != err {
			return err
		}
		e.WriteUint8(uint8(n))

	case "int16":
		n, err := toInt(value, math.MinInt16, math.MaxInt16)
		if nil != err {
			return err
		}
		e.WriteUint16(uint16(n))

	case "uint16":
		n, err := toUint(value, math.MaxUint16)
		if nil != err {
			return err
		}
		e.WriteUint16(uint16(n))

	case "int32":
		n, err := toInt(value, math.MinInt32, math.MaxInt32)
		if nil != err {
			return err
		}
		e.WriteUint32(uint32(n))

	case "uint32":
		n, err := toUint(value, math.MaxUint32)
		if nil != err {
			return err
		}
		e.WriteUint32(uint32(n))

	case "int64":
		n, err := toInt(value, math.MinInt64, math.MaxInt64)
		if nil != err {
			return err
		}
		e.WriteUint64(uint64(n))

	case "uint64":
		n, err := toUint(value, math.MaxUint64)
		if nil != err {
			return err
		}
		e.WriteUint64(n)

	case "int128", "uint128":
		b, err := toBig(value)
		if nil != err {
			return err
		}
		return encode128(b, "int128" == t, e)

	case "varint32":
		n, err := toInt(value, math.MinInt32, math.MaxInt32)
		if nil != err {
			return err
		}
		e.WriteVarint32(int32(n))

	case "varuint32":
		n, err := toUint(value, math.MaxUint32)
		if nil != err {
			return err
		}
		e.WriteVaruint32(uint32(n))

	case "float32":
		f, err := toFloat(value, 32)
		if nil != err {
			return err
		}
		e.WriteFloat32(float32(f))

	case "float64":
		f, err := toFloat(value, 64)
		if nil != err {
			return err
		}
		e.WriteFloat64(f)

	case "time_point":
		tm, err := toTime(value)
		if nil != err {
			return err
		}
		e.WriteUint64(uint64(tm.UnixMicro()))

	case "time_point_sec":
		tm, err := toTime(value)
		if nil != err {
			return err
		}
		seconds := tm.Unix()
		if seconds < 0 || seconds > math.MaxUint32 {
			return fault.InvalidTime
		}
		e.WriteUint32(uint32(seconds))

	case "block_timestamp_type":
		tm, err := toTime(value)
		if nil != err {
			return err
		}
		slot := (tm.UnixMilli() - blockTimestampEpochMS) / blockTimestampIntervalMS
		if slot < 0 || slot > math.MaxUint32 {
			return fault.InvalidTime
		}
		e.WriteUint32(uint32(slot))

	case "name":
		s, err := toString(value)
		if nil != err {
			return err
		}
		n, err := name.Parse(s)
		if nil != err {
			return err
		}
		e.WriteUint64(n)

	case "bytes":
		b, err := toHex(value, -1)
		if nil != err {
			return err
		}
		e.WriteBytes(b)

	case "string":
		s, err := toString(value)
		if nil != err {
			return err
		}
		e.WriteString(s)

	case "checksum160":
		return encodeChecksum(value, 20, e)

	case "checksum256":
		return encodeChecksum(value, 32, e)

	case "checksum512":
		return encodeChecksum(value, 64, e)

	case "public_key":
		s, err := toString(value)
		if nil != err {
			return err
		}
		p, err := keypair.PublicKeyFromText(s, c.options.PublicKeyPrefix)
		if nil != err {
			return err
		}
		e.WriteVaruint32(k1KeyType)
		e.WriteRaw(p[:])

	case "signature":
		s, err := toString(value)
		if nil != err {
			return err
		}
		sig, err := keypair.SignatureFromString(s)
		if nil != err {
			return err
		}
		e.WriteVaruint32(k1KeyType)
		e.WriteRaw(sig[:])

	case "symbol":
		s, err := toString(value)
		if nil != err {
			return err
		}
		sym, err := symbol.ParseSymbol(s)
		if nil != err {
			return err
		}
		v, err := sym.Value()
		if nil != err {
			return err
		}
		e.WriteUint64(v)

	case "symbol_code":
		s, err := toString(value)
		if nil != err {
			return err
		}
		v, err := symbol.CodeFromString(s)
		if nil != err {
			return err
		}
		e.WriteUint64(v)

	case "asset":
		s, err := toString(value)
		if nil != err {
			return err
		}
		a, err := symbol.ParseAsset(s)
		if nil != err {
			return err
		}
		v, err := a.Symbol.Value()
		if nil != err {
			return err
		}
		e.WriteUint64(uint64(a.Amount))
		e.WriteUint64(v)

	case "extended_asset":
		return c.encodeStruct(w, t, extendedAssetFields, value, e)

	default:
		return fault.UnknownType
	}
	return nil
}

func (c *Codec) decodeBuiltin(w *walk, t string, d *Decoder) (interface{}, error) {
	switch t {

	case "bool":
		return d.ReadBool()

	case "int8":
		v, err := d.ReadUint8()
		return renderInt(int64(int8(v))), err

	case "uint8":
		v, err := d.ReadUint8()
		return renderUint(uint64(v)), err

	case "int16":
		v, err := d.ReadUint16()
		return renderInt(int64(int16(v))), err

	case "uint16":
		v, err := d.ReadUint16()
		return renderUint(uint64(v)), err

	case "int32":
		v, err := d.ReadUint32()
		return renderInt(int64(int32(v))), err

	case "uint32":
		v, err := d.ReadUint32()
		return renderUint(uint64(v)), err

	case "int64":
		v, err := d.ReadUint64()
		return renderInt(int64(v)), err

	case "uint64":
		v, err := d.ReadUint64()
		return renderUint(v), err

	case "int128", "uint128":
		b, err := decode128("int128" == t, d)
		if nil != err {
			return nil, err
		}
		return renderBig(b), nil

	case "varint32":
		v, err := d.ReadVarint32()
		return renderInt(int64(v)), err

	case "varuint32":
		v, err := d.ReadVaruint32()
		return renderUint(uint64(v)), err

	case "float32":
		v, err := d.ReadFloat32()
		return renderFloat(float64(v), 32), err

	case "float64":
		v, err := d.ReadFloat64()
		return renderFloat(v, 64), err

	case "time_point":
		v, err := d.ReadUint64()
		if nil != err {
			return nil, err
		}
		return time.UnixMicro(int64(v)).UTC().Format(timePointLayout), nil

	case "time_point_sec":
		v, err := d.ReadUint32()
		if nil != err {
			return nil, err
		}
		return time.Unix(int64(v), 0).UTC().Format(timePointSecLayout), nil

	case "block_timestamp_type":
		v, err := d.ReadUint32()
		if nil != err {
			return nil, err
		}
		ms := int64(v)*blockTimestampIntervalMS + blockTimestampEpochMS
		return time.UnixMilli(ms).UTC().Format(timePointLayout), nil

	case "name":
		v, err := d.ReadUint64()
		if nil != err {
			return nil, err
		}
		return name.Decode(v), nil

	case "bytes":
		b, err := d.ReadBytes()
		if nil != err {
			return nil, err
		}
		return hex.EncodeToString(b), nil

	case "string":
		return d.ReadString()

	case "checksum160":
		return decodeChecksum(20, d)

	case "checksum256":
		return decodeChecksum(32, d)

	case "checksum512":
		return decodeChecksum(64, d)

	case "public_key":
		err := readKeyType(d)
		if nil != err {
			return nil, err
		}
		b, err := d.ReadRaw(keypair.PublicKeySize)
		if nil != err {
			return nil, err
		}
		p, err := keypair.PublicKeyFromBytes(b)
		if nil != err {
			return nil, err
		}
		return p.Text(c.options.PublicKeyPrefix), nil

	case "signature":
		err := readKeyType(d)
		if nil != err {
			return nil, err
		}
		b, err := d.ReadRaw(keypair.SignatureSize)
		if nil != err {
			return nil, err
		}
		sig, err := keypair.SignatureFromBytes(b)
		if nil != err {
			return nil, err
		}
		return sig.String(), nil

	case "symbol":
		v, err := d.ReadUint64()
		if nil != err {
			return nil, err
		}
		sym, err := symbol.DecodeValid(v)
		if nil != err {
			return nil, err
		}
		return sym.String(), nil

	case "symbol_code":
		v, err := d.ReadUint64()
		if nil != err {
			return nil, err
		}
		return symbol.CodeToString(v), nil

	case "asset":
		amount, err := d.ReadUint64()
		if nil != err {
			return nil, err
		}
		v, err := d.ReadUint64()
		if nil != err {
			return nil, err
		}
		a := symbol.Asset{
			Amount: int64(amount),
			Symbol: symbol.Decode(v),
		}
		err = a.Check()
		if nil != err {
			return nil, err
		}
		return a.String(), nil

	case "extended_asset":
		return c.decodeStruct(w, t, extendedAssetFields, d)

	default:
		return nil, fault.UnknownType
	}
}

func readKeyType(d *Decoder) error {
	kt, err := d.ReadVaruint32()
	if nil != err {
		return err
	}
	if k1KeyType != kt {
		return fault.UnsupportedKeyType
	}
	return nil
}

func encodeChecksum(value interface{}, length int, e *Encoder) error {
	b, err := toHex(value, length)
	if nil != err {
		return err
	}
	e.WriteRaw(b)
	return nil
}

func decodeChecksum(length int, d *Decoder) (interface{}, error) {
	b, err := d.ReadRaw(length)
	if nil != err {
		return nil, err
	}
	return hex.EncodeToString(b), nil
}

// sixteen bytes little endian, two's complement when signed
func encode128(b *big.Int, signed bool, e *Encoder) error {
	v := new(big.Int).Set(b)
	if signed {
		if v.Cmp(minInt128) < 0 || v.Cmp(maxInt128) > 0 {
			return fault.IntegerOutOfRange
		}
		if v.Sign() < 0 {
			v.Add(v, two128)
		}
	} else if v.Sign() < 0 || v.Cmp(maxUint128) > 0 {
		return fault.IntegerOutOfRange
	}

	buffer := v.FillBytes(make([]byte, 16))
	reverse(buffer)
	e.WriteRaw(buffer)
	return nil
}

func decode128(signed bool, d *Decoder) (*big.Int, error) {
	raw, err := d.ReadRaw(16)
	if nil != err {
		return nil, err
	}
	buffer := append([]byte{}, raw...)
	reverse(buffer)
	v := new(big.Int).SetBytes(buffer)
	if signed && v.Cmp(maxInt128) > 0 {
		v.Sub(v, two128)
	}
	return v, nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
