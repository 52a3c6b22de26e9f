// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/bitmark-inc/eosapi/codec"
	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/keypair"
)

// Compression - how the packed fields are stored
type Compression uint8

// compression types
const (
	None Compression = 0
	Zlib Compression = 1
)

// largest inflated field accepted
const maximumInflatedSize = 4 << 20

// String - JSON name
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Zlib:
		return "zlib"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// MarshalJSON - "none" or "zlib"
func (c Compression) MarshalJSON() ([]byte, error) {
	if None != c && Zlib != c {
		return nil, fault.InvalidCompression
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON - name or number
func (c *Compression) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); nil == err {
		compression, err := ParseCompression(s)
		if nil != err {
			return err
		}
		*c = compression
		return nil
	}
	var n uint8
	if err := json.Unmarshal(b, &n); nil != err || n > uint8(Zlib) {
		return fault.InvalidCompression
	}
	*c = Compression(n)
	return nil
}

// ParseCompression - compression from its name
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "none":
		return None, nil
	case "zlib":
		return Zlib, nil
	default:
		return None, fault.InvalidCompression
	}
}

// PackedTransaction - wire form of a signed transaction
type PackedTransaction struct {
	Signatures            []keypair.Signature `json:"signatures"`
	Compression           Compression         `json:"compression"`
	PackedContextFreeData HexBytes            `json:"packed_context_free_data"`
	PackedTrx             HexBytes            `json:"packed_trx"`
}

// Pack - serialise and optionally compress a signed transaction
func Pack(s *SignedTransaction, compression Compression) (*PackedTransaction, error) {
	trx, err := s.Transaction.Bytes()
	if nil != err {
		return nil, err
	}
	cfd := packContextFreeData(s.ContextFreeData)

	switch compression {
	case None:
	case Zlib:
		if trx, err = deflate(trx); nil != err {
			return nil, err
		}
		if 0 != len(cfd) {
			if cfd, err = deflate(cfd); nil != err {
				return nil, err
			}
		}
	default:
		return nil, fault.InvalidCompression
	}

	signatures := append([]keypair.Signature{}, s.Signatures...)
	return &PackedTransaction{
		Signatures:            signatures,
		Compression:           compression,
		PackedContextFreeData: cfd,
		PackedTrx:             trx,
	}, nil
}

// SignedTransaction - reverse of Pack
func (p *PackedTransaction) SignedTransaction() (*SignedTransaction, error) {
	trx := []byte(p.PackedTrx)
	cfd := []byte(p.PackedContextFreeData)

	switch p.Compression {
	case None:
	case Zlib:
		var err error
		if trx, err = inflate(trx); nil != err {
			return nil, err
		}
		if 0 != len(cfd) {
			if cfd, err = inflate(cfd); nil != err {
				return nil, err
			}
		}
	default:
		return nil, fault.InvalidCompression
	}

	t, err := Unpack(trx)
	if nil != err {
		return nil, err
	}
	data, err := unpackContextFreeData(cfd)
	if nil != err {
		return nil, err
	}
	s := &SignedTransaction{
		Transaction:     *t,
		Signatures:      append([]keypair.Signature{}, p.Signatures...),
		ContextFreeData: data,
	}
	s.normalise()
	return s, nil
}

// Bytes - binary form of the packed transaction
func (p *PackedTransaction) Bytes() []byte {
	e := codec.NewEncoder()
	encodeSignatures(p.Signatures, e)
	e.WriteUint8(uint8(p.Compression))
	e.WriteBytes(p.PackedContextFreeData)
	e.WriteBytes(p.PackedTrx)
	return e.Bytes()
}

// JSON - chain JSON form
func (p PackedTransaction) JSON() ([]byte, error) {
	if nil == p.Signatures {
		p.Signatures = []keypair.Signature{}
	}
	if nil == p.PackedContextFreeData {
		p.PackedContextFreeData = HexBytes{}
	}
	return json.Marshal(p)
}

// UnpackPacked - decode the binary form of a packed transaction
func UnpackPacked(data []byte) (*PackedTransaction, error) {
	d := codec.NewDecoder(data)
	signatures, err := decodeSignatures(d)
	if nil != err {
		return nil, err
	}
	c, err := d.ReadUint8()
	if nil != err {
		return nil, err
	}
	if c > uint8(Zlib) {
		return nil, fault.InvalidCompression
	}
	cfd, err := d.ReadBytes()
	if nil != err {
		return nil, err
	}
	trx, err := d.ReadBytes()
	if nil != err {
		return nil, err
	}
	if 0 != d.Remaining() {
		return nil, fmt.Errorf("%w: %d bytes", fault.TrailingBytes, d.Remaining())
	}
	return &PackedTransaction{
		Signatures:            signatures,
		Compression:           Compression(c),
		PackedContextFreeData: append(HexBytes{}, cfd...),
		PackedTrx:             append(HexBytes{}, trx...),
	}, nil
}

// ParsePackedTransaction - read the JSON form
func ParsePackedTransaction(text []byte) (*PackedTransaction, error) {
	var p PackedTransaction
	err := json.Unmarshal(text, &p)
	if nil != err {
		return nil, jsonError(err)
	}
	return &p, nil
}

func deflate(data []byte) ([]byte, error) {
	buffer := bytes.Buffer{}
	w := zlib.NewWriter(&buffer)
	if _, err := w.Write(data); nil != err {
		return nil, err
	}
	if err := w.Close(); nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.DecompressionFailed, err)
	}
	defer r.Close()

	result, err := io.ReadAll(io.LimitReader(r, maximumInflatedSize+1))
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.DecompressionFailed, err)
	}
	if len(result) > maximumInflatedSize {
		return nil, fmt.Errorf("%w: exceeds %d bytes", fault.DecompressionFailed, maximumInflatedSize)
	}
	return result, nil
}
