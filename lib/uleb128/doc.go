// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

// Package uleb128 implements the canonical unsigned little-endian
// base-128 variable-length integer encoding used by the canonical
// wire formats for lengths and variant tags.
//
// Each byte carries 7 data bits; the top bit is a continuation flag.
// A 32-bit value occupies between 1 and 5 bytes. The decoder enforces
// canonicality: every value has exactly one legal encoding, so a
// trailing zero digit after a continuation byte (zero padding) is
// rejected. This is a precondition for byte-equality of canonically
// encoded values, not a stylistic choice.
package uleb128
