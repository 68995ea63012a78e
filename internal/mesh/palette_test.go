// Where: cli/internal/mesh/palette_test.go
// What: Tests for thread color parsing.
package mesh

import (
	"image/color"
	"testing"
)

func TestParseColorNames(t *testing.T) {
	red, err := ParseColor("red")
	if err != nil {
		t.Fatalf("parse red: %v", err)
	}
	if red != (color.RGBA{0xFF, 0x00, 0x00, 0xFF}) {
		t.Fatalf("unexpected red: %+v", red)
	}

	upper, err := ParseColor("Blue")
	if err != nil {
		t.Fatalf("parse Blue: %v", err)
	}
	if upper != (color.RGBA{0x00, 0x00, 0xFF, 0xFF}) {
		t.Fatalf("name lookup must be case-insensitive, got %+v", upper)
	}
}

func TestParseColorEmptyDefaultsToBlack(t *testing.T) {
	c, err := ParseColor("")
	if err != nil {
		t.Fatalf("parse empty: %v", err)
	}
	if c != (color.RGBA{0x00, 0x00, 0x00, 0xFF}) {
		t.Fatalf("expected black, got %+v", c)
	}
}

func TestParseColorHex(t *testing.T) {
	c, err := ParseColor("#1A2B3C")
	if err != nil {
		t.Fatalf("parse hex: %v", err)
	}
	if c != (color.RGBA{0x1A, 0x2B, 0x3C, 0xFF}) {
		t.Fatalf("unexpected hex color: %+v", c)
	}

	short, err := ParseColor("#F0A")
	if err != nil {
		t.Fatalf("parse short hex: %v", err)
	}
	if short != (color.RGBA{0xFF, 0x00, 0xAA, 0xFF}) {
		t.Fatalf("unexpected short hex color: %+v", short)
	}
}

func TestParseColorRejectsUnknown(t *testing.T) {
	for _, name := range []string{"chartreuse-ish", "#12345", "#GGHHII"} {
		if _, err := ParseColor(name); err == nil {
			t.Fatalf("expected error for %q", name)
		}
	}
}
