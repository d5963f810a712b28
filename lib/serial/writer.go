// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

package serial

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/wireform/wireform/lib/uleb128"
)

// Writer is the engine behind every format's Serializer: a growable
// byte buffer plus the active Policy and the remaining container
// depth budget. Create one per encode call with NewWriter and discard
// it after Bytes.
type Writer struct {
	policy      Policy
	buf         []byte
	depthBudget uint64
}

var _ Serializer = (*Writer)(nil)

// NewWriter returns a Writer encoding under the given policy.
func NewWriter(policy Policy) *Writer {
	return &Writer{
		policy:      policy,
		depthBudget: policy.MaxContainerDepth,
	}
}

// SerializeLen encodes a string, byte-sequence, or container length
// using the policy's length encoding. Under a variable-length policy
// a length above the ceiling fails before any bytes are emitted; the
// fixed 8-byte encoding can represent any uint64 and defers the
// ceiling to the decode side.
func (w *Writer) SerializeLen(value uint64) error {
	switch w.policy.Lengths {
	case EncodingULEB128:
		if value > w.policy.MaxSequenceLength {
			return fmt.Errorf("%w: length %d > %d (%s)", ErrLengthTooLarge, value, w.policy.MaxSequenceLength, w.policy.Name)
		}
		w.buf = uleb128.Append(w.buf, uint32(value))
	case EncodingFixed8:
		w.buf = binary.LittleEndian.AppendUint64(w.buf, value)
	default:
		panic("serial: policy has invalid length encoding " + w.policy.Lengths.String())
	}
	return nil
}

// SerializeVariantIndex encodes an enum/union variant tag using the
// policy's tag encoding.
func (w *Writer) SerializeVariantIndex(value uint32) error {
	switch w.policy.Tags {
	case EncodingULEB128:
		w.buf = uleb128.Append(w.buf, value)
	case EncodingFixed4:
		w.buf = binary.LittleEndian.AppendUint32(w.buf, value)
	default:
		panic("serial: policy has invalid tag encoding " + w.policy.Tags.String())
	}
	return nil
}

// SerializeOptionTag encodes the presence tag of an optional value:
// one byte, 1 for present, 0 for absent.
func (w *Writer) SerializeOptionTag(value bool) error {
	return w.SerializeBool(value)
}

// SerializeBytes encodes a length prefix followed by the raw bytes,
// with no terminator.
func (w *Writer) SerializeBytes(value []byte) error {
	if err := w.SerializeLen(uint64(len(value))); err != nil {
		return err
	}
	w.buf = append(w.buf, value...)
	return nil
}

// SerializeStr encodes a UTF-8 string the same way as SerializeBytes.
func (w *Writer) SerializeStr(value string) error {
	if err := w.SerializeLen(uint64(len(value))); err != nil {
		return err
	}
	w.buf = append(w.buf, value...)
	return nil
}

// SerializeVecBytes encodes a sequence of byte strings: an outer
// length followed by each element as SerializeBytes.
func (w *Writer) SerializeVecBytes(value [][]byte) error {
	if err := w.SerializeLen(uint64(len(value))); err != nil {
		return err
	}
	for _, element := range value {
		if err := w.SerializeBytes(element); err != nil {
			return err
		}
	}
	return nil
}

// SerializeBool encodes a boolean as one byte, 0 or 1.
func (w *Writer) SerializeBool(value bool) error {
	if value {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
	return nil
}

// SerializeUnit encodes the unit value as zero bytes.
func (w *Writer) SerializeUnit(value struct{}) error {
	return nil
}

// SerializeChar fails: no wire format profile defines a character
// encoding. This is a known format-surface gap, kept deliberately.
func (w *Writer) SerializeChar(value rune) error {
	return fmt.Errorf("%w: char", ErrUnsupported)
}

// SerializeF32 fails: no wire format profile defines a float encoding.
func (w *Writer) SerializeF32(value float32) error {
	return fmt.Errorf("%w: f32", ErrUnsupported)
}

// SerializeF64 fails: no wire format profile defines a float encoding.
func (w *Writer) SerializeF64(value float64) error {
	return fmt.Errorf("%w: f64", ErrUnsupported)
}

func (w *Writer) SerializeU8(value uint8) error {
	w.buf = append(w.buf, value)
	return nil
}

func (w *Writer) SerializeU16(value uint16) error {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, value)
	return nil
}

func (w *Writer) SerializeU32(value uint32) error {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, value)
	return nil
}

func (w *Writer) SerializeU64(value uint64) error {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, value)
	return nil
}

// SerializeU128 encodes the low half first, then the high half, so
// the 16 bytes read as one little-endian 128-bit value.
func (w *Writer) SerializeU128(value Uint128) error {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, value.Low)
	w.buf = binary.LittleEndian.AppendUint64(w.buf, value.High)
	return nil
}

func (w *Writer) SerializeI8(value int8) error {
	return w.SerializeU8(uint8(value))
}

func (w *Writer) SerializeI16(value int16) error {
	return w.SerializeU16(uint16(value))
}

func (w *Writer) SerializeI32(value int32) error {
	return w.SerializeU32(uint32(value))
}

func (w *Writer) SerializeI64(value int64) error {
	return w.SerializeU64(uint64(value))
}

// SerializeI128 mirrors SerializeU128; two's complement puts the sign
// in the high half.
func (w *Writer) SerializeI128(value Int128) error {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, value.Low)
	w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(value.High))
	return nil
}

// EnterContainer charges one nesting level against the depth budget.
// The write side enforces the same ceiling as the read side so that a
// value graph too deep to decode cannot be encoded in the first place.
func (w *Writer) EnterContainer() error {
	if w.depthBudget == 0 {
		return fmt.Errorf("%w: limit %d (%s)", ErrDepthExceeded, w.policy.MaxContainerDepth, w.policy.Name)
	}
	w.depthBudget--
	return nil
}

// ExitContainer returns one nesting level to the depth budget.
func (w *Writer) ExitContainer() {
	w.depthBudget++
}

// BufferOffset is the number of bytes written so far.
func (w *Writer) BufferOffset() uint64 {
	return uint64(len(w.buf))
}

// SortMapEntries rewrites the buffer region starting at offsets[0] so
// that the entry slices delimited by offsets appear in increasing
// byte-lexicographic order. Entry slices start with the serialized
// key, so comparing whole slices orders entries by key. The caller
// records BufferOffset before writing each entry and passes the
// collected offsets here once the map is fully written; the result is
// the same byte sequence regardless of the map's iteration order.
//
// Formats without canonical maps skip the work entirely, as do maps
// with fewer than two entries.
func (w *Writer) SortMapEntries(offsets []uint64) {
	if !w.policy.CanonicalMaps || len(offsets) <= 1 {
		return
	}
	region := w.buf[offsets[0]:]

	// Cut the region into per-entry slices, copying each one: the
	// region itself is about to be overwritten.
	entries := make([][]byte, len(offsets))
	for i, start := range offsets {
		end := uint64(len(w.buf))
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		entries[i] = bytes.Clone(w.buf[start:end])
	}
	slices.SortFunc(entries, bytes.Compare)

	rewritten := 0
	for _, entry := range entries {
		rewritten += copy(region[rewritten:], entry)
	}
	if rewritten != len(region) {
		// Entry slices partition the region exactly; anything else is
		// an engine bug, not bad input.
		panic("serial: map entry sort changed the buffer length")
	}
}

// Bytes yields the completed byte sequence. The returned slice aliases
// the writer's buffer; the writer is done once Bytes is called.
func (w *Writer) Bytes() []byte {
	return w.buf
}
