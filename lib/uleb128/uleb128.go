// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

package uleb128

import "errors"

// MaxEncodedLen is the largest number of bytes a 32-bit value can
// occupy on the wire: ceil(32 / 7) = 5.
const MaxEncodedLen = 5

// Errors returned by Decode.
var (
	ErrTruncated    = errors.New("uleb128: input ends before terminating byte")
	ErrOverflow     = errors.New("uleb128: value overflows 32 bits")
	ErrNonCanonical = errors.New("uleb128: redundant zero digit in terminating byte")
)

// Append appends the canonical encoding of value to dst and returns
// the extended slice.
func Append(dst []byte, value uint32) []byte {
	for value >= 0x80 {
		dst = append(dst, byte(value&0x7f)|0x80)
		value >>= 7
	}
	return append(dst, byte(value))
}

// Decode reads one canonically encoded 32-bit value from the front of
// buf. It returns the value and the number of bytes consumed.
//
// Decode fails with ErrTruncated if buf ends before a byte with a
// clear continuation bit, with ErrOverflow if the accumulated value
// exceeds 32 bits (including the case of a fifth byte carrying bits
// past position 31), and with ErrNonCanonical if the terminating byte
// is a zero digit after at least one continuation byte. The last check
// guarantees that every 32-bit value has exactly one decodable
// encoding.
func Decode(buf []byte) (value uint32, n int, err error) {
	var accum uint64
	for shift := 0; shift < 32; shift += 7 {
		if n >= len(buf) {
			return 0, n, ErrTruncated
		}
		b := buf[n]
		n++
		digit := b & 0x7f
		accum |= uint64(digit) << shift
		if accum > maxUint32 {
			return 0, n, ErrOverflow
		}
		if digit == b {
			if shift > 0 && digit == 0 {
				return 0, n, ErrNonCanonical
			}
			return uint32(accum), n, nil
		}
	}
	return 0, n, ErrOverflow
}

const maxUint32 = uint64(^uint32(0))
