package utils

import (
	"strings"
	"testing"
)

func TestNewReferenceCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := NewReferenceCode()
		if err != nil {
			t.Fatalf("NewReferenceCode() error: %v", err)
		}
		if len(code) != 9 || code[4] != '-' {
			t.Fatalf("code %q does not match XXXX-XXXX", code)
		}
		for _, ch := range strings.ReplaceAll(code, "-", "") {
			if !strings.ContainsRune(refCharset, ch) {
				t.Fatalf("code %q contains %q outside the charset", code, ch)
			}
		}
		seen[code] = true
	}
	// 100 draws from a 36^8 space colliding would point at a broken generator
	if len(seen) < 90 {
		t.Errorf("only %d distinct codes in 100 draws", len(seen))
	}
}

func TestRandomCodeRejectsBadLength(t *testing.T) {
	if _, err := randomCode(0); err == nil {
		t.Error("randomCode(0) should fail")
	}
	if _, err := randomCode(-3); err == nil {
		t.Error("randomCode(-3) should fail")
	}
}
