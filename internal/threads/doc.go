// Where: cli/internal/threads/doc.go
// What: Threads document model and YAML decoding.
// Why: One model for both the flat legacy form and the grouped paths form.
package threads

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Point is a grid coordinate, serialized as a two-element sequence.
type Point struct {
	X float64
	Y float64
}

func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var coords []float64
	if err := value.Decode(&coords); err != nil {
		return fmt.Errorf("decode point: %w", err)
	}
	if len(coords) != 2 {
		return fmt.Errorf("point must have exactly two coordinates, got %d", len(coords))
	}
	p.X, p.Y = coords[0], coords[1]
	return nil
}

// Path is a single stitch from Start to End, in grid coordinates.
type Path struct {
	Start Point `yaml:"start"`
	End   Point `yaml:"end"`
}

// Thread is one colored thread. It either carries a single flat
// start/end pair or a list of paths; both forms appear in the wild.
type Thread struct {
	Color string `yaml:"color"`
	Start *Point `yaml:"start,omitempty"`
	End   *Point `yaml:"end,omitempty"`
	Paths []Path `yaml:"paths,omitempty"`
}

// Segments returns the thread's stitches regardless of which form the
// thread was declared in. A flat thread with no start defaults to the
// origin, matching the generator's historical behavior.
func (t Thread) Segments() []Path {
	if len(t.Paths) > 0 {
		return t.Paths
	}
	var start, end Point
	if t.Start != nil {
		start = *t.Start
	}
	if t.End != nil {
		end = *t.End
	}
	return []Path{{Start: start, End: end}}
}

// Document is a full threads file.
type Document struct {
	Threads []Thread `yaml:"threads"`
}

// Decode parses a threads document from YAML (or JSON, which YAML
// subsumes). Unknown fields are rejected by the schema validator, not
// here; Decode is deliberately permissive so diagnostics come from one
// place.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode threads document: %w", err)
	}
	return doc, nil
}

// Load reads and decodes the threads document at path. A missing file
// yields an empty document, mirroring the original generator.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, nil
		}
		return Document{}, fmt.Errorf("read threads file %s: %w", path, err)
	}
	return Decode(data)
}
