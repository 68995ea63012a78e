// Where: cli/internal/app/generate.go
// What: Generate command.
// Why: Resolve, validate, and render in one pass, with no stale temp files.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/stitchworks/embroidery-mesh/cli/internal/artifact"
	"github.com/stitchworks/embroidery-mesh/cli/internal/mesh"
	"github.com/stitchworks/embroidery-mesh/cli/internal/meta"
	"github.com/stitchworks/embroidery-mesh/cli/internal/threads"
	"github.com/stitchworks/embroidery-mesh/cli/internal/ui"
)

type GenerateCmd struct {
	Template    string `arg:"" help:"Path to the threads template"`
	Output      string `short:"o" help:"Output PNG filename (default: embroidery_mesh.png)"`
	Size        int    `default:"40" help:"Number of cells per side"`
	CellSize    int    `name:"cell-size" default:"20" help:"Size of each cell in pixels"`
	ThreadWidth int    `name:"thread-width" default:"3" help:"Width of thread lines in pixels"`
	Keep        bool   `help:"Keep the resolved intermediate document"`
	NoValidate  bool   `name:"no-validate" help:"Skip threads schema validation"`
}

func runGenerate(cli CLI, deps Dependencies, out, errOut io.Writer) int {
	console := ui.New(out)
	cmd := cli.Generate

	console.Header("🧵", "Generating mesh image")
	path, cleanup, err := artifact.Materialize(cmd.Template, colorVars(deps))
	if err != nil {
		return exitWithError(errOut, err)
	}
	if !cmd.Keep {
		defer cleanup()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return exitWithError(errOut, fmt.Errorf("read resolved document: %w", err))
	}

	if !cmd.NoValidate {
		if err := threads.ValidateDocument(data); err != nil {
			return exitWithError(errOut, err)
		}
	}

	doc, err := threads.Decode(data)
	if err != nil {
		return exitWithError(errOut, err)
	}

	opts := mesh.Options{
		Size:        cmd.Size,
		CellSize:    cmd.CellSize,
		ThreadWidth: cmd.ThreadWidth,
	}
	img, err := mesh.Render(doc, opts)
	if err != nil {
		return exitWithError(errOut, err)
	}

	output := cmd.Output
	if output == "" {
		output = meta.DefaultMeshOutput
	}
	if err := mesh.WritePNG(output, img); err != nil {
		return exitWithError(errOut, err)
	}

	normalized, err := opts.Normalize()
	if err != nil {
		return exitWithError(errOut, err)
	}
	console.Success("Mesh image generated")
	console.Item("Template", cmd.Template)
	if cmd.Keep {
		console.Item("Resolved", path)
	}
	console.Item("Output", output)
	console.Item("Mesh", fmt.Sprintf("%dx%d cells (%dx%d pixels)",
		normalized.Size, normalized.Size, normalized.GridExtent(), normalized.GridExtent()))
	return 0
}
