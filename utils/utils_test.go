package utils

import (
	"reflect"
	"testing"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID(12)
	if len(id) != 12 {
		t.Fatalf("expected length 12, got %d", len(id))
	}
	if GenerateID(12) == id {
		// Collisions at this length mean the generator is broken, not unlucky.
		t.Fatal("two generated ids should differ")
	}
}

func TestGenerateRandomDigitString(t *testing.T) {
	s := GenerateRandomDigitString(6)
	if len(s) != 6 {
		t.Fatalf("expected length 6, got %d", len(s))
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			t.Fatalf("expected digits only, got %q", s)
		}
	}
}

func TestParseDate(t *testing.T) {
	if d := ParseDate("2026-08-31"); d == nil {
		t.Fatal("expected valid date to parse")
	}
	for _, bad := range []string{"", "31-08-2026", "2026/08/31", "2026-13-01", "yesterday"} {
		if d := ParseDate(bad); d != nil {
			t.Errorf("expected %q to be rejected, got %v", bad, d)
		}
	}
}

func TestSplitCSV(t *testing.T) {
	got := SplitCSV(" s1, s2 ,s1,, s3")
	want := []string{"s1", "s2", "s3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := SplitCSV(""); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
