// Where: cli/internal/grid/render.go
// What: YAML rendering for generated patterns.
// Why: Keep the annotated, hand-editable layout of the historical files.
package grid

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/stitchworks/embroidery-mesh/cli/internal/threads"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	patternTemplateOnce sync.Once
	patternTemplateErr  error
	patternTemplate     *template.Template
)

type unitView struct {
	Col      int // 0-indexed; the template renders 1-indexed labels
	Row      int
	Position string
	Note     string
	Color    string
	Paths    []threads.Path
}

type patternView struct {
	Units []unitView
}

// RenderYAML generates the pattern and lays it out as an annotated
// YAML threads document.
func RenderYAML(opts Options) (string, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return "", err
	}
	doc, err := Generate(opts)
	if err != nil {
		return "", err
	}

	view := patternView{}
	for i, thread := range doc.Threads {
		row := i / opts.Cols
		col := i % opts.Cols
		view.Units = append(view.Units, unitView{
			Col:      col,
			Row:      row,
			Position: describePosition(row, col, opts),
			Note:     translationNote(row, col, opts),
			Color:    thread.Color,
			Paths:    thread.Paths,
		})
	}

	tmpl, err := loadPatternTemplate()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render pattern: %w", err)
	}
	return buf.String(), nil
}

func loadPatternTemplate() (*template.Template, error) {
	patternTemplateOnce.Do(func() {
		patternTemplate, patternTemplateErr = template.New("pattern.yml.tmpl").
			Funcs(sprig.TxtFuncMap()).
			ParseFS(templateFS, "templates/pattern.yml.tmpl")
	})
	return patternTemplate, patternTemplateErr
}

var rowNames = map[int]string{
	2: "second", 3: "third", 4: "fourth", 5: "fifth",
	6: "sixth", 7: "seventh",
}

// describePosition labels a unit the way the historical files did:
// top/bottom rows get "top-left" style labels, inner rows get an
// ordinal row name.
func describePosition(row, col int, opts Options) string {
	displayRow := row + 1
	displayCol := col + 1

	colDesc := fmt.Sprintf("col-%d", displayCol)
	switch {
	case displayCol == 1:
		colDesc = "left"
	case displayCol == opts.Cols:
		colDesc = "right"
	case displayCol == opts.Cols/2 || displayCol == opts.Cols/2+1:
		colDesc = "middle"
	}

	switch displayRow {
	case 1:
		return fmt.Sprintf("top-%s", colDesc)
	case opts.Rows:
		return fmt.Sprintf("bottom-%s", colDesc)
	}

	rowDesc, ok := rowNames[displayRow]
	if !ok {
		rowDesc = fmt.Sprintf("%dth", displayRow)
	}
	return fmt.Sprintf("%s row, %s", rowDesc, colDesc)
}

func translationNote(row, col int, opts Options) string {
	xOffset := col * opts.UnitSize
	yOffset := row * opts.UnitSize
	switch {
	case xOffset > 0 && yOffset > 0:
		return fmt.Sprintf("Threads (translated +%d in x and +%d in y)", xOffset, yOffset)
	case xOffset > 0:
		return fmt.Sprintf("Threads (translated +%d in x)", xOffset)
	case yOffset > 0:
		return fmt.Sprintf("Threads (translated +%d in y)", yOffset)
	}
	return ""
}
