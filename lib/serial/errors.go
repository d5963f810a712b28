// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

package serial

import "errors"

// Errors returned by Writer and Reader operations. Varint-specific
// failures (overflow, redundant zero padding) are reported as the
// uleb128 package's sentinels and pass through unchanged, so callers
// can distinguish them with errors.Is as well.
var (
	// ErrTruncated reports a read past the end of the input buffer,
	// including a declared string or byte-sequence length that exceeds
	// the bytes remaining.
	ErrTruncated = errors.New("serial: input truncated")

	// ErrLengthTooLarge reports a sequence length above the format's
	// ceiling, in either direction.
	ErrLengthTooLarge = errors.New("serial: length exceeds format maximum")

	// ErrMapKeysOutOfOrder reports decoded map entries whose key bytes
	// are not in strictly increasing lexicographic order. Only the
	// canonical formats check this.
	ErrMapKeysOutOfOrder = errors.New("serial: map keys not in canonical order")

	// ErrDepthExceeded reports container nesting past the format's
	// depth ceiling.
	ErrDepthExceeded = errors.New("serial: maximum container depth exceeded")

	// ErrUnsupported reports a primitive the wire formats deliberately
	// do not define: characters and floating-point values.
	ErrUnsupported = errors.New("serial: primitive not supported by wire format")

	// ErrInvalidBool reports a boolean byte other than 0 or 1.
	ErrInvalidBool = errors.New("serial: invalid boolean byte")
)
