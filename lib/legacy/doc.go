// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

// Package legacy is the legacy canonical wire format: the
// wire-compatible predecessor of the canonical format, kept as a
// separately named profile so existing callers keep an explicit
// compatibility anchor. Its byte output is identical to package
// canonical's; new code should use canonical directly.
package legacy
