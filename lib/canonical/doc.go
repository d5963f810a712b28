// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

// Package canonical is the canonical wire format: exactly one valid
// byte sequence exists per value, so byte equality of encodings is
// equivalent to value equality. That property is what makes the
// format usable under hashing, signing, and content-addressed
// storage.
//
// The format encodes lengths and variant tags as canonical ULEB128
// varints, caps sequence lengths at MaxSequenceLength, caps container
// nesting at MaxContainerDepth, and forces map entries into strictly
// increasing byte-lexicographic key order — on the way out by
// reordering written entries, on the way in by rejecting streams that
// are not already ordered.
package canonical
