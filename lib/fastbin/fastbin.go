// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

package fastbin

import "github.com/wireform/wireform/lib/serial"

// MaxSequenceLength is the largest length accepted when decoding. The
// fixed 8-byte length field can carry larger values, so the ceiling
// is a decode-side allocation guard rather than a representational
// limit; encoding does not enforce it.
const MaxSequenceLength = 1<<31 - 1

// MaxContainerDepth is the format's depth ceiling: none. The fast
// format trusts its inputs (it is not canonical and not meant for
// adversarial data); callers decoding untrusted bytes should build a
// custom serial.Policy with a finite ceiling instead.
const MaxContainerDepth = serial.NoDepthLimit

// Policy is the fast format's encoding policy.
func Policy() serial.Policy {
	return serial.Policy{
		Name:              "fast",
		Lengths:           serial.EncodingFixed8,
		Tags:              serial.EncodingFixed4,
		MaxSequenceLength: MaxSequenceLength,
		MaxContainerDepth: MaxContainerDepth,
		CanonicalMaps:     false,
	}
}

// NewSerializer returns a single-use fast-format serializer.
func NewSerializer() *serial.Writer {
	return serial.NewWriter(Policy())
}

// NewDeserializer returns a single-use fast-format deserializer over
// input.
func NewDeserializer(input []byte) *serial.Reader {
	return serial.NewReader(input, Policy())
}
