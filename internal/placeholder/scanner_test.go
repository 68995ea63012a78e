// Where: cli/internal/placeholder/scanner_test.go
// What: Tests for the placeholder token scanner.
// Why: The token grammar must be asserted, not left implicit.
package placeholder

import (
	"reflect"
	"testing"
)

func TestScanFindsTokensInOrder(t *testing.T) {
	body := "color: __COLOR1__\nvalue: __COLOR2__\nagain: __COLOR1__\n"

	tokens := Scan(body)
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}

	names := []string{tokens[0].Name, tokens[1].Name, tokens[2].Name}
	want := []string{"COLOR1", "COLOR2", "COLOR1"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected names %v, got %v", want, names)
	}

	first := tokens[0]
	if first.Raw != "__COLOR1__" {
		t.Fatalf("expected raw __COLOR1__, got %q", first.Raw)
	}
	if body[first.Start:first.End] != first.Raw {
		t.Fatalf("span [%d, %d) does not cover raw token", first.Start, first.End)
	}
}

func TestScanIgnoresNearMisses(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing trailing underscores", "__COLOR1"},
		{"single trailing underscore", "__COLOR1_"},
		{"single leading underscore", "_COLOR1__"},
		{"no digits", "__COLOR__"},
		{"wrong family", "__SHADE1__"},
		{"lowercase family", "__color1__"},
		{"digits before family", "__1COLOR__"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tokens := Scan(tc.body); len(tokens) != 0 {
				t.Fatalf("expected no tokens in %q, got %v", tc.body, tokens)
			}
		})
	}
}

func TestScanMultiDigitIndex(t *testing.T) {
	tokens := Scan("__COLOR42__")
	if len(tokens) != 1 || tokens[0].Name != "COLOR42" {
		t.Fatalf("expected single COLOR42 token, got %v", tokens)
	}
}

func TestScanEmptyBody(t *testing.T) {
	if tokens := Scan(""); tokens != nil {
		t.Fatalf("expected nil for empty body, got %v", tokens)
	}
}

func TestNamesSortedAndDeduplicated(t *testing.T) {
	tokens := Scan("__COLOR10__ __COLOR2__ __COLOR10__ __COLOR1__")
	names := Names(tokens)
	want := []string{"COLOR1", "COLOR10", "COLOR2"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
}

func TestNamePattern(t *testing.T) {
	for _, key := range []string{"COLOR1", "COLOR99"} {
		if !NamePattern.MatchString(key) {
			t.Fatalf("expected %q to match", key)
		}
	}
	for _, key := range []string{"COLOR", "COLOR1X", "XCOLOR1", "color1", ""} {
		if NamePattern.MatchString(key) {
			t.Fatalf("expected %q not to match", key)
		}
	}
}
