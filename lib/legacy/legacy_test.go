// Copyright 2026 The Wireform Authors
// SPDX-License-Identifier: Apache-2.0

package legacy

import (
	"bytes"
	"testing"

	"github.com/wireform/wireform/lib/canonical"
	"github.com/wireform/wireform/lib/serial"
)

func TestPolicyMatchesCanonicalExceptName(t *testing.T) {
	legacyPolicy := Policy()
	canonicalPolicy := canonical.Policy()

	if legacyPolicy.Name == canonicalPolicy.Name {
		t.Error("legacy and canonical policies share a name")
	}
	legacyPolicy.Name = canonicalPolicy.Name
	if legacyPolicy != canonicalPolicy {
		t.Errorf("legacy policy %+v differs from canonical %+v beyond the name", legacyPolicy, canonicalPolicy)
	}
}

// TestWireCompatibleWithCanonical drives both serializers through the
// same write sequence and requires identical bytes: the legacy profile
// exists for callers pinned to the old name, not for a different
// format.
func TestWireCompatibleWithCanonical(t *testing.T) {
	write := func(w *serial.Writer) error {
		if err := w.SerializeStr("compatibility"); err != nil {
			return err
		}
		if err := w.SerializeVariantIndex(300); err != nil {
			return err
		}
		if err := w.SerializeU128(serial.Uint128{High: 1, Low: 2}); err != nil {
			return err
		}
		if err := w.SerializeLen(3); err != nil {
			return err
		}
		offsets := []uint64{w.BufferOffset()}
		if err := w.SerializeStr("z"); err != nil {
			return err
		}
		if err := w.SerializeU8(1); err != nil {
			return err
		}
		offsets = append(offsets, w.BufferOffset())
		if err := w.SerializeStr("a"); err != nil {
			return err
		}
		if err := w.SerializeU8(2); err != nil {
			return err
		}
		offsets = append(offsets, w.BufferOffset())
		if err := w.SerializeStr("m"); err != nil {
			return err
		}
		if err := w.SerializeU8(3); err != nil {
			return err
		}
		w.SortMapEntries(offsets)
		return nil
	}

	legacyWriter := NewSerializer()
	canonicalWriter := canonical.NewSerializer()
	if err := write(legacyWriter); err != nil {
		t.Fatalf("legacy write: %v", err)
	}
	if err := write(canonicalWriter); err != nil {
		t.Fatalf("canonical write: %v", err)
	}
	if !bytes.Equal(legacyWriter.Bytes(), canonicalWriter.Bytes()) {
		t.Errorf("legacy bytes %x != canonical bytes %x", legacyWriter.Bytes(), canonicalWriter.Bytes())
	}
}

func TestRoundTrip(t *testing.T) {
	w := NewSerializer()
	if err := w.SerializeStr("legacy"); err != nil {
		t.Fatal(err)
	}
	if err := w.SerializeI64(-42); err != nil {
		t.Fatal(err)
	}

	// Bytes written by the legacy profile decode under the canonical
	// one and vice versa.
	for name, r := range map[string]*serial.Reader{
		"legacy":    NewDeserializer(w.Bytes()),
		"canonical": canonical.NewDeserializer(w.Bytes()),
	} {
		s, err := r.DeserializeStr()
		if err != nil || s != "legacy" {
			t.Errorf("%s DeserializeStr = (%q, %v)", name, s, err)
		}
		v, err := r.DeserializeI64()
		if err != nil || v != -42 {
			t.Errorf("%s DeserializeI64 = (%d, %v)", name, v, err)
		}
		if r.Remaining() != 0 {
			t.Errorf("%s Remaining = %d, want 0", name, r.Remaining())
		}
	}
}
