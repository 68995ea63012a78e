// Where: cli/internal/app/mesh.go
// What: Mesh command.
// Why: Render a mesh image directly from an already concrete threads file.
package app

import (
	"fmt"
	"io"

	"github.com/stitchworks/embroidery-mesh/cli/internal/mesh"
	"github.com/stitchworks/embroidery-mesh/cli/internal/meta"
	"github.com/stitchworks/embroidery-mesh/cli/internal/threads"
	"github.com/stitchworks/embroidery-mesh/cli/internal/ui"
)

type MeshCmd struct {
	Threads     string `short:"t" help:"Threads file to draw (omit for an empty grid)"`
	Output      string `short:"o" help:"Output PNG filename (default: embroidery_mesh.png)"`
	Size        int    `default:"40" help:"Number of cells per side"`
	CellSize    int    `name:"cell-size" default:"20" help:"Size of each cell in pixels"`
	ThreadWidth int    `name:"thread-width" default:"3" help:"Width of thread lines in pixels"`
}

func runMesh(cli CLI, _ Dependencies, out, errOut io.Writer) int {
	console := ui.New(out)
	cmd := cli.Mesh

	var doc threads.Document
	if cmd.Threads != "" {
		var err error
		doc, err = threads.Load(cmd.Threads)
		if err != nil {
			return exitWithError(errOut, err)
		}
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
	if cmd.Threads != "" {
		console.Item("Threads", cmd.Threads)
	}
	console.Item("Output", output)
	console.Item("Mesh", fmt.Sprintf("%dx%d cells (%dx%d pixels)",
		normalized.Size, normalized.Size, normalized.GridExtent(), normalized.GridExtent()))
	return 0
}
