// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

package serial

// Uint128 is an unsigned 128-bit integer as a (high, low) pair of
// 64-bit halves. On the wire it is 16 bytes little-endian: the low
// half first, then the high half.
type Uint128 struct {
	High uint64
	Low  uint64
}

// Int128 is a signed (two's complement) 128-bit integer. The sign
// lives in the high half; the low half is the raw low 64 bits. Wire
// layout matches Uint128.
type Int128 struct {
	High int64
	Low  uint64
}

// Slice identifies a half-open byte range [Start, End) in a reader's
// input buffer. It is used to compare the raw bytes of successively
// decoded map keys without retaining the decoded values.
type Slice struct {
	Start uint64
	End   uint64
}
