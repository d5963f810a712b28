// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

package canonical

import "github.com/wireform/wireform/lib/serial"

// MaxSequenceLength is the largest length of a string, byte sequence,
// sequence, or map the format encodes or decodes.
const MaxSequenceLength = 1<<31 - 1

// MaxContainerDepth is the deepest container nesting the format
// accepts. It bounds stack usage and decode time against
// adversarially nested input.
const MaxContainerDepth = 500

// Policy is the canonical format's encoding policy. These values are
// wire-format constants; changing any of them breaks compatibility
// with every byte stream the format has produced.
func Policy() serial.Policy {
	return serial.Policy{
		Name:              "canonical",
		Lengths:           serial.EncodingULEB128,
		Tags:              serial.EncodingULEB128,
		MaxSequenceLength: MaxSequenceLength,
		MaxContainerDepth: MaxContainerDepth,
		CanonicalMaps:     true,
	}
}

// NewSerializer returns a single-use canonical-format serializer.
func NewSerializer() *serial.Writer {
	return serial.NewWriter(Policy())
}

// NewDeserializer returns a single-use canonical-format deserializer
// over input.
func NewDeserializer(input []byte) *serial.Reader {
	return serial.NewReader(input, Policy())
}
