// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

package serial

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/wireform/wireform/lib/uleb128"
)

// Reader is the engine behind every format's Deserializer: the input
// bytes, a cursor, the active Policy, and the remaining container
// depth budget. Create one per decode call with NewReader and discard
// it once the value is decoded.
//
// The cursor never moves past the end of the input; any read that
// would cross it fails with ErrTruncated instead.
type Reader struct {
	policy      Policy
	input       []byte
	pos         int
	depthBudget uint64
}

var _ Deserializer = (*Reader)(nil)

// NewReader returns a Reader decoding input under the given policy.
// The reader borrows input; the caller must not mutate it until
// decoding is finished.
func NewReader(input []byte, policy Policy) *Reader {
	return &Reader{
		policy:      policy,
		input:       input,
		depthBudget: policy.MaxContainerDepth,
	}
}

// take consumes n bytes and returns them as a sub-slice of the input.
func (r *Reader) take(n int, what string) ([]byte, error) {
	if n > len(r.input)-r.pos {
		return nil, fmt.Errorf("%w: need %d bytes for %s, have %d", ErrTruncated, n, what, len(r.input)-r.pos)
	}
	out := r.input[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// takeByte consumes a single byte.
func (r *Reader) takeByte(what string) (byte, error) {
	if r.pos >= len(r.input) {
		return 0, fmt.Errorf("%w: need 1 byte for %s", ErrTruncated, what)
	}
	b := r.input[r.pos]
	r.pos++
	return b, nil
}

// DeserializeLen decodes a length using the policy's length encoding
// and rejects values above the format ceiling. The ceiling check runs
// before any allocation sized by the length.
func (r *Reader) DeserializeLen() (uint64, error) {
	var value uint64
	switch r.policy.Lengths {
	case EncodingULEB128:
		v, err := r.readUleb128("length")
		if err != nil {
			return 0, err
		}
		value = uint64(v)
	case EncodingFixed8:
		raw, err := r.take(8, "length")
		if err != nil {
			return 0, err
		}
		value = binary.LittleEndian.Uint64(raw)
	default:
		panic("serial: policy has invalid length encoding " + r.policy.Lengths.String())
	}
	if value > r.policy.MaxSequenceLength {
		return 0, fmt.Errorf("%w: length %d > %d (%s)", ErrLengthTooLarge, value, r.policy.MaxSequenceLength, r.policy.Name)
	}
	return value, nil
}

// DeserializeVariantIndex decodes an enum/union variant tag using the
// policy's tag encoding. Tags have no application ceiling beyond
// their 32-bit width.
func (r *Reader) DeserializeVariantIndex() (uint32, error) {
	switch r.policy.Tags {
	case EncodingULEB128:
		return r.readUleb128("variant tag")
	case EncodingFixed4:
		raw, err := r.take(4, "variant tag")
		if err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint32(raw), nil
	default:
		panic("serial: policy has invalid tag encoding " + r.policy.Tags.String())
	}
}

// DeserializeOptionTag decodes the presence tag of an optional value.
func (r *Reader) DeserializeOptionTag() (bool, error) {
	return r.DeserializeBool()
}

// DeserializeBytes decodes a length prefix and the following raw
// bytes. The declared length is checked against the remaining input
// before anything is allocated, so a hostile length cannot force an
// unbounded allocation.
func (r *Reader) DeserializeBytes() ([]byte, error) {
	length, err := r.DeserializeLen()
	if err != nil {
		return nil, err
	}
	raw, err := r.take(int(length), "byte sequence")
	if err != nil {
		return nil, err
	}
	return bytes.Clone(raw), nil
}

// DeserializeStr decodes a length-prefixed UTF-8 string.
func (r *Reader) DeserializeStr() (string, error) {
	length, err := r.DeserializeLen()
	if err != nil {
		return "", err
	}
	raw, err := r.take(int(length), "string")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DeserializeVecBytes decodes a sequence of byte strings written by
// SerializeVecBytes.
func (r *Reader) DeserializeVecBytes() ([][]byte, error) {
	length, err := r.DeserializeLen()
	if err != nil {
		return nil, err
	}
	out := make([][]byte, 0, min(int(length), r.Remaining()))
	for i := uint64(0); i < length; i++ {
		element, err := r.DeserializeBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, element)
	}
	return out, nil
}

// DeserializeBool decodes one byte and rejects anything but 0 or 1.
func (r *Reader) DeserializeBool() (bool, error) {
	b, err := r.takeByte("bool")
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: got %d", ErrInvalidBool, b)
	}
}

// DeserializeUnit decodes the unit value, consuming nothing.
func (r *Reader) DeserializeUnit() (struct{}, error) {
	return struct{}{}, nil
}

// DeserializeChar fails: no wire format profile defines a character
// encoding.
func (r *Reader) DeserializeChar() (rune, error) {
	return 0, fmt.Errorf("%w: char", ErrUnsupported)
}

// DeserializeF32 fails: no wire format profile defines a float
// encoding.
func (r *Reader) DeserializeF32() (float32, error) {
	return 0, fmt.Errorf("%w: f32", ErrUnsupported)
}

// DeserializeF64 fails: no wire format profile defines a float
// encoding.
func (r *Reader) DeserializeF64() (float64, error) {
	return 0, fmt.Errorf("%w: f64", ErrUnsupported)
}

func (r *Reader) DeserializeU8() (uint8, error) {
	return r.takeByte("u8")
}

func (r *Reader) DeserializeU16() (uint16, error) {
	raw, err := r.take(2, "u16")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(raw), nil
}

func (r *Reader) DeserializeU32() (uint32, error) {
	raw, err := r.take(4, "u32")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(raw), nil
}

func (r *Reader) DeserializeU64() (uint64, error) {
	raw, err := r.take(8, "u64")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(raw), nil
}

// DeserializeU128 decodes 16 little-endian bytes: low half first.
func (r *Reader) DeserializeU128() (Uint128, error) {
	raw, err := r.take(16, "u128")
	if err != nil {
		return Uint128{}, err
	}
	return Uint128{
		Low:  binary.LittleEndian.Uint64(raw[:8]),
		High: binary.LittleEndian.Uint64(raw[8:]),
	}, nil
}

func (r *Reader) DeserializeI8() (int8, error) {
	b, err := r.takeByte("i8")
	return int8(b), err
}

func (r *Reader) DeserializeI16() (int16, error) {
	v, err := r.DeserializeU16()
	return int16(v), err
}

func (r *Reader) DeserializeI32() (int32, error) {
	v, err := r.DeserializeU32()
	return int32(v), err
}

func (r *Reader) DeserializeI64() (int64, error) {
	v, err := r.DeserializeU64()
	return int64(v), err
}

// DeserializeI128 mirrors DeserializeU128; the high half carries the
// sign.
func (r *Reader) DeserializeI128() (Int128, error) {
	raw, err := r.take(16, "i128")
	if err != nil {
		return Int128{}, err
	}
	return Int128{
		Low:  binary.LittleEndian.Uint64(raw[:8]),
		High: int64(binary.LittleEndian.Uint64(raw[8:])),
	}, nil
}

// EnterContainer charges one nesting level against the depth budget.
// This is the engine's guard against adversarially deep input: once
// the budget is spent, decoding fails before any further recursion.
func (r *Reader) EnterContainer() error {
	if r.depthBudget == 0 {
		return fmt.Errorf("%w: limit %d (%s)", ErrDepthExceeded, r.policy.MaxContainerDepth, r.policy.Name)
	}
	r.depthBudget--
	return nil
}

// ExitContainer returns one nesting level to the depth budget.
func (r *Reader) ExitContainer() {
	r.depthBudget++
}

// BufferOffset is the number of bytes consumed so far.
func (r *Reader) BufferOffset() uint64 {
	return uint64(r.pos)
}

// Remaining is the number of unconsumed input bytes.
func (r *Reader) Remaining() int {
	return len(r.input) - r.pos
}

// CheckKeySlicesIncreasing verifies that the key bytes at next compare
// strictly greater than the key bytes at prev, rejecting map entries
// that are duplicated or not canonically ordered. Formats without
// canonical maps accept any order.
func (r *Reader) CheckKeySlicesIncreasing(prev, next Slice) error {
	if !r.policy.CanonicalMaps {
		return nil
	}
	if bytes.Compare(r.input[prev.Start:prev.End], r.input[next.Start:next.End]) >= 0 {
		return fmt.Errorf("%w (%s)", ErrMapKeysOutOfOrder, r.policy.Name)
	}
	return nil
}

// readUleb128 decodes one canonical varint at the cursor, translating
// end-of-input into the engine's truncation error. Overflow and
// non-canonical-padding failures surface as the uleb128 sentinels.
func (r *Reader) readUleb128(what string) (uint32, error) {
	value, n, err := uleb128.Decode(r.input[r.pos:])
	r.pos += n
	if err != nil {
		if errors.Is(err, uleb128.ErrTruncated) {
			return 0, fmt.Errorf("%w: %s varint", ErrTruncated, what)
		}
		return 0, fmt.Errorf("decoding %s: %w", what, err)
	}
	return value, nil
}
