// Where: cli/internal/app/grid.go
// What: Grid command.
// Why: Emit the generated checkerboard pattern for later resolution or editing.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/stitchworks/embroidery-mesh/cli/internal/grid"
	"github.com/stitchworks/embroidery-mesh/cli/internal/ui"
)

type GridCmd struct {
	Cols     int    `default:"6" help:"Units per row"`
	Rows     int    `default:"8" help:"Unit rows"`
	UnitSize int    `name:"unit-size" default:"5" help:"Cells per unit edge"`
	Output   string `short:"o" help:"Write the pattern here instead of stdout"`
}

func runGrid(cli CLI, _ Dependencies, out, errOut io.Writer) int {
	cmd := cli.Grid

	pattern, err := grid.RenderYAML(grid.Options{
		Cols:     cmd.Cols,
		Rows:     cmd.Rows,
		UnitSize: cmd.UnitSize,
	})
	if err != nil {
		return exitWithError(errOut, err)
	}

	if cmd.Output == "" {
		fmt.Fprint(out, pattern)
		return 0
	}
	if err := os.WriteFile(cmd.Output, []byte(pattern), 0o644); err != nil {
		return exitWithError(errOut, fmt.Errorf("write pattern: %w", err))
	}

	console := ui.New(out)
	console.Success("Pattern generated")
	console.Item("Units", fmt.Sprintf("%dx%d", cmd.Cols, cmd.Rows))
	console.Item("Output", cmd.Output)
	return 0
}
