package utils

import (
	"strings"
	"testing"
)

func TestNewTrackingNumber_Format(t *testing.T) {
	t.Parallel()

	tn, err := NewTrackingNumber()
	if err != nil {
		t.Fatalf("NewTrackingNumber error: %v", err)
	}
	if !strings.HasPrefix(tn, "SHP-") {
		t.Fatalf("missing prefix: %q", tn)
	}
	if len(tn) != len("SHP-")+12 {
		t.Fatalf("unexpected length %d for %q", len(tn), tn)
	}
	if tn != strings.ToUpper(tn) {
		t.Fatalf("tracking number not uppercase: %q", tn)
	}
}

func TestNewTrackingNumber_Distinct(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tn, err := NewTrackingNumber()
		if err != nil {
			t.Fatalf("NewTrackingNumber error: %v", err)
		}
		if seen[tn] {
			t.Fatalf("duplicate tracking number %q after %d draws", tn, i)
		}
		seen[tn] = true
	}
}
