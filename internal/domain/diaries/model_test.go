package diaries

import (
	"errors"
	"testing"
)

func TestParseVisibility(t *testing.T) {
	cases := map[string]Visibility{
		"":         VisibilityPrivate,
		"private":  VisibilityPrivate,
		" PUBLIC ": VisibilityPublic,
		"public":   VisibilityPublic,
	}
	for in, want := range cases {
		got, err := ParseVisibility(in)
		if err != nil {
			t.Fatalf("ParseVisibility(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseVisibility(%q)=%q want %q", in, got, want)
		}
	}

	if _, err := ParseVisibility("friends"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNormalizeLimit(t *testing.T) {
	if NormalizeLimit(0) != DefaultListLimit || NormalizeLimit(-3) != DefaultListLimit {
		t.Fatalf("default limit not applied")
	}
	if NormalizeLimit(10) != 10 {
		t.Fatalf("limit 10 changed")
	}
	if NormalizeLimit(1000) != MaxListLimit {
		t.Fatalf("max limit not applied")
	}
}
