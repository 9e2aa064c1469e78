package util

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	got, err := SanitizeFileName("  notes/week 1\\final.pdf ")
	if err != nil {
		t.Fatalf("SanitizeFileName: %v", err)
	}
	if got != "notes_week 1_final.pdf" {
		t.Fatalf("unexpected sanitized name %q", got)
	}

	for _, bad := range []string{"", "   ", "../etc/passwd", "a/../b.txt"} {
		if _, err := SanitizeFileName(bad); !errors.Is(err, ErrInvalidFileName) {
			t.Fatalf("%q: expected ErrInvalidFileName, got %v", bad, err)
		}
	}
}

func TestHashUserKeyIsPathSafe(t *testing.T) {
	key := HashUserKey("auth0|user/1@example.com")
	if len(key) != 64 {
		t.Fatalf("expected 64 hex chars, got %d (%q)", len(key), key)
	}
	if strings.ContainsAny(key, "/\\|@ ") {
		t.Fatalf("key should be path-safe, got %q", key)
	}
	if key != HashUserKey("auth0|user/1@example.com") {
		t.Fatal("hash should be deterministic")
	}
}
