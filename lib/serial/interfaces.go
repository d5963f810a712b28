// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

package serial

// Serializer is the write-side contract that generated per-type code
// drives. Calls happen in schema-declared field order; the serializer
// never infers type layout. A Serializer is single-use: after Bytes
// the instance is done.
//
// Map entries are canonicalized cooperatively: the caller records
// BufferOffset before writing each key/value pair and hands the
// collected offsets to SortMapEntries once the map is fully written.
type Serializer interface {
	SerializeStr(value string) error
	SerializeBytes(value []byte) error
	SerializeVecBytes(value [][]byte) error

	SerializeBool(value bool) error
	SerializeUnit(value struct{}) error
	SerializeChar(value rune) error

	SerializeF32(value float32) error
	SerializeF64(value float64) error

	SerializeU8(value uint8) error
	SerializeU16(value uint16) error
	SerializeU32(value uint32) error
	SerializeU64(value uint64) error
	SerializeU128(value Uint128) error

	SerializeI8(value int8) error
	SerializeI16(value int16) error
	SerializeI32(value int32) error
	SerializeI64(value int64) error
	SerializeI128(value Int128) error

	SerializeLen(value uint64) error
	SerializeVariantIndex(value uint32) error
	SerializeOptionTag(value bool) error

	// EnterContainer charges one level against the depth budget. Call
	// it before recursing into a sequence, map, optional payload, or
	// variant payload, and pair it with ExitContainer on the way out.
	EnterContainer() error
	ExitContainer()

	// BufferOffset is the number of bytes written so far.
	BufferOffset() uint64

	// SortMapEntries rewrites the buffer region from offsets[0] to the
	// current end so the entry slices delimited by offsets appear in
	// increasing byte-lexicographic order. A no-op for formats without
	// canonical maps and for maps of fewer than two entries.
	SortMapEntries(offsets []uint64)

	// Bytes yields the completed byte sequence.
	Bytes() []byte
}

// Deserializer is the read-side mirror of Serializer. The same
// schema-declared field order drives decoding; the canonical formats
// additionally verify map-key ordering via CheckKeySlicesIncreasing.
type Deserializer interface {
	DeserializeStr() (string, error)
	DeserializeBytes() ([]byte, error)
	DeserializeVecBytes() ([][]byte, error)

	DeserializeBool() (bool, error)
	DeserializeUnit() (struct{}, error)
	DeserializeChar() (rune, error)

	DeserializeF32() (float32, error)
	DeserializeF64() (float64, error)

	DeserializeU8() (uint8, error)
	DeserializeU16() (uint16, error)
	DeserializeU32() (uint32, error)
	DeserializeU64() (uint64, error)
	DeserializeU128() (Uint128, error)

	DeserializeI8() (int8, error)
	DeserializeI16() (int16, error)
	DeserializeI32() (int32, error)
	DeserializeI64() (int64, error)
	DeserializeI128() (Int128, error)

	DeserializeLen() (uint64, error)
	DeserializeVariantIndex() (uint32, error)
	DeserializeOptionTag() (bool, error)

	EnterContainer() error
	ExitContainer()

	// BufferOffset is the number of bytes consumed so far. Callers
	// capture it around a key decode to build the Slice ranges passed
	// to CheckKeySlicesIncreasing.
	BufferOffset() uint64

	// Remaining is the number of unconsumed input bytes. Callers that
	// require fully consumed input assert it is zero after the final
	// field.
	Remaining() int

	// CheckKeySlicesIncreasing fails with ErrMapKeysOutOfOrder unless
	// the key bytes at next compare strictly greater than the key
	// bytes at prev. A no-op for formats without canonical maps.
	CheckKeySlicesIncreasing(prev, next Slice) error
}
