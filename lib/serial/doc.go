// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

// Package serial is the shared engine behind the wireform wire
// formats. It provides the primitive writer and reader over in-memory
// byte buffers, the Serializer/Deserializer contracts that generated
// per-type code composes, and the Policy type that captures the
// encoding decisions distinguishing one format from another.
//
// A format is a Policy value: how lengths are encoded, how variant
// tags are encoded, whether map entries are forced into canonical
// byte order, and how deeply containers may nest. The concrete
// policies live in the canonical, legacy, and fastbin packages; this
// package never hard-codes one format's choices.
//
// One Writer or Reader instance is created per encode or decode call
// and discarded afterwards. Instances are not safe for concurrent use,
// but independent instances share no state and may run fully in
// parallel. Every failure is fatal to the current call: the engine
// never retries, skips, or substitutes defaults, and a partially
// written buffer must be treated as unusable.
package serial
