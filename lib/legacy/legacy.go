// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

package legacy

import "github.com/wireform/wireform/lib/serial"

// MaxSequenceLength matches the canonical format's length ceiling.
const MaxSequenceLength = 1<<31 - 1

// MaxContainerDepth matches the canonical format's depth ceiling.
const MaxContainerDepth = 500

// Policy is the legacy canonical format's encoding policy. It is
// byte-for-byte compatible with the canonical format; only the name
// differs so errors identify which profile a caller selected.
func Policy() serial.Policy {
	return serial.Policy{
		Name:              "legacy-canonical",
		Lengths:           serial.EncodingULEB128,
		Tags:              serial.EncodingULEB128,
		MaxSequenceLength: MaxSequenceLength,
		MaxContainerDepth: MaxContainerDepth,
		CanonicalMaps:     true,
	}
}

// NewSerializer returns a single-use legacy-canonical serializer.
func NewSerializer() *serial.Writer {
	return serial.NewWriter(Policy())
}

// NewDeserializer returns a single-use legacy-canonical deserializer
// over input.
func NewDeserializer(input []byte) *serial.Reader {
	return serial.NewReader(input, Policy())
}
