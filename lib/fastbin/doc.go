// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

// Package fastbin is the fast wire format: fixed-width integer
// encodings chosen for encode/decode speed rather than compactness or
// determinism. Lengths are 8 little-endian bytes, variant tags are 4,
// and map entries appear in whatever order the in-memory container
// yields them — encoding the same map twice may produce different
// bytes. Use the canonical format when byte equality matters.
package fastbin
