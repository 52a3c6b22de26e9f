// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varuint32MaximumBytes - maximum possible number of bytes in Varuint32
const Varuint32MaximumBytes = 5

// ToVaruint32 - convert a 32 bit unsigned integer to Varuint32
//
// little endian base 128: seven data bits per byte, the high bit of
// each byte is set when another byte follows
//
// byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
// byte 2:  ext | B13 | B12 | B11 | B10 | B09 | B08 | B07
// byte 3:  ext | B20 | B19 | B18 | B17 | B16 | B15 | B14
// byte 4:  ext | B27 | B26 | B25 | B24 | B23 | B22 | B21
// byte 5:    0 |   0 |   0 |   0 | B31 | B30 | B29 | B28
func ToVaruint32(value uint32) []byte {
	result := make([]byte, 0, Varuint32MaximumBytes)
	for {
		b := byte(value & 0x7f)
		value >>= 7
		if 0 == value {
			return append(result, b)
		}
		result = append(result, b|0x80)
	}
}

// FromVaruint32 - convert an array of up to Varuint32MaximumBytes to a uint32
//
// also return the number of bytes used as second value
// returns 0, 0 if varuint32 buffer is truncated or exceeds 32 bits
func FromVaruint32(buffer []byte) (uint32, int) {
	result := uint64(0)
	shift := uint(0)

	for count := 0; count < len(buffer) && count < Varuint32MaximumBytes; count += 1 {
		currByte := uint64(buffer[count])
		result |= (currByte & 0x7f) << shift
		if 0 == currByte&0x80 {
			if result > 0xffffffff {
				return 0, 0
			}
			return uint32(result), count + 1
		}
		shift += 7
	}
	return 0, 0
}

// ToVarint32 - zigzag encode a signed value then write it as Varuint32
func ToVarint32(value int32) []byte {
	return ToVaruint32(uint32((value << 1) ^ (value >> 31)))
}

// FromVarint32 - inverse of ToVarint32
//
// returns 0, 0 if the buffer is truncated
func FromVarint32(buffer []byte) (int32, int) {
	u, n := FromVaruint32(buffer)
	if 0 == n {
		return 0, 0
	}
	return int32(u>>1) ^ -int32(u&1), n
}
