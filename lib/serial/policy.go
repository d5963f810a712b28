// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

package serial

import (
	"fmt"
	"math"
)

// IntEncoding selects how an unsigned integer (a length or a variant
// tag) is put on the wire. The values are format constants — a policy
// built from them defines wire compatibility, so changing a format's
// encodings breaks every byte stream that format has produced.
type IntEncoding uint8

const (
	// EncodingULEB128 is the canonical variable-length base-128
	// encoding (1-5 bytes for a 32-bit value).
	EncodingULEB128 IntEncoding = iota

	// EncodingFixed4 is a fixed 4-byte little-endian unsigned integer.
	EncodingFixed4

	// EncodingFixed8 is a fixed 8-byte little-endian unsigned integer.
	EncodingFixed8
)

// String returns the human-readable name of an integer encoding.
func (e IntEncoding) String() string {
	switch e {
	case EncodingULEB128:
		return "uleb128"
	case EncodingFixed4:
		return "fixed4"
	case EncodingFixed8:
		return "fixed8"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(e))
	}
}

// NoDepthLimit disables container depth checking when used as a
// policy's MaxContainerDepth.
const NoDepthLimit = math.MaxUint64

// Policy fixes the encoding decisions that distinguish one wire
// format from another while sharing the same primitive engine. A
// Policy is immutable for the lifetime of the Writer or Reader it is
// given to; the canonical, legacy, and fastbin packages each publish
// one.
type Policy struct {
	// Name identifies the format in error messages.
	Name string

	// Lengths is the wire encoding for string, byte-sequence, and
	// container lengths.
	Lengths IntEncoding

	// Tags is the wire encoding for enum/union variant tags.
	Tags IntEncoding

	// MaxSequenceLength is the largest length accepted when decoding.
	// Formats with variable-length length encodings also refuse to
	// encode anything longer, so the ceiling is symmetric for them.
	MaxSequenceLength uint64

	// MaxContainerDepth is the deepest container nesting the format
	// accepts, on both the encode and decode side. NoDepthLimit
	// disables the check.
	MaxContainerDepth uint64

	// CanonicalMaps requires map entries to appear on the wire in
	// strictly increasing byte-lexicographic key order: the writer
	// reorders entries after writing them and the reader rejects
	// streams that are not already ordered.
	CanonicalMaps bool
}
