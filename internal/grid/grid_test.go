// Where: cli/internal/grid/grid_test.go
// What: Tests for the checkerboard pattern generator.
package grid

import (
	"strings"
	"testing"

	"github.com/stitchworks/embroidery-mesh/cli/internal/threads"
)

func TestGenerateDefaultDimensions(t *testing.T) {
	doc, err := Generate(Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(doc.Threads) != 6*8 {
		t.Fatalf("expected 48 units, got %d", len(doc.Threads))
	}
	for i, thread := range doc.Threads {
		if len(thread.Paths) != 9 {
			t.Fatalf("unit %d: expected 9 paths, got %d", i, len(thread.Paths))
		}
	}
}

func TestGenerateCheckerboardColors(t *testing.T) {
	doc, err := Generate(Options{Cols: 3, Rows: 2, UnitSize: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := []string{"red", "blue", "red", "blue", "red", "blue"}
	for i, thread := range doc.Threads {
		if thread.Color != want[i] {
			t.Fatalf("unit %d: expected %s, got %s", i, want[i], thread.Color)
		}
	}
}

func TestGenerateFirstUnitUsesBaseLattice(t *testing.T) {
	doc, err := Generate(Options{Cols: 2, Rows: 2, UnitSize: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	first := doc.Threads[0].Paths[0]
	if first.Start != (threads.Point{X: 0, Y: 1}) || first.End != (threads.Point{X: 1, Y: 0}) {
		t.Fatalf("unit (0,0) must use the base lattice, got %+v", first)
	}
}

func TestGenerateMirrorsOddColumns(t *testing.T) {
	doc, err := Generate(Options{Cols: 2, Rows: 2, UnitSize: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// Unit (row 0, col 1): horizontally mirrored, then translated +5 in x.
	mirrored := doc.Threads[1].Paths[0]
	if mirrored.Start != (threads.Point{X: 10, Y: 1}) || mirrored.End != (threads.Point{X: 9, Y: 0}) {
		t.Fatalf("unexpected mirrored path: %+v", mirrored)
	}
}

func TestGenerateMirrorsOddRows(t *testing.T) {
	doc, err := Generate(Options{Cols: 2, Rows: 2, UnitSize: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// Unit (row 1, col 0): vertically mirrored, then translated +5 in y.
	mirrored := doc.Threads[2].Paths[0]
	if mirrored.Start != (threads.Point{X: 0, Y: 9}) || mirrored.End != (threads.Point{X: 1, Y: 10}) {
		t.Fatalf("unexpected mirrored path: %+v", mirrored)
	}
}

func TestGenerateRejectsBadDimensions(t *testing.T) {
	if _, err := Generate(Options{Cols: -1}); err == nil {
		t.Fatal("expected error for negative columns")
	}
	if _, err := Generate(Options{UnitSize: 1}); err == nil {
		t.Fatal("expected error for unit size below 2")
	}
}

func TestRenderYAMLIsValidThreadsDocument(t *testing.T) {
	out, err := RenderYAML(Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := threads.ValidateDocument([]byte(out)); err != nil {
		t.Fatalf("generated pattern must satisfy the schema: %v", err)
	}
	doc, err := threads.Decode([]byte(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Threads) != 48 {
		t.Fatalf("expected 48 units, got %d", len(doc.Threads))
	}
}

func TestRenderYAMLAnnotations(t *testing.T) {
	out, err := RenderYAML(Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"# Unit 1,1 (top-left)",
		"# Unit 6,1 (top-right)",
		"# Unit 3,2 (second row, middle)",
		"# Unit 1,8 (bottom-left)",
		"# Threads (translated +5 in x)",
		"# Threads (translated +5 in x and +5 in y)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q\n%s", want, out[:min(len(out), 600)])
		}
	}
}

func TestRenderYAMLDeterministic(t *testing.T) {
	first, err := RenderYAML(Options{Cols: 2, Rows: 2})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := RenderYAML(Options{Cols: 2, Rows: 2})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first != second {
		t.Fatal("pattern rendering must be deterministic")
	}
}
