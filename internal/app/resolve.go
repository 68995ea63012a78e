// Where: cli/internal/app/resolve.go
// What: Resolve command.
// Why: Turn a placeholder template into a concrete threads document.
package app

import (
	"io"

	"github.com/stitchworks/embroidery-mesh/cli/internal/artifact"
	"github.com/stitchworks/embroidery-mesh/cli/internal/ui"
)

type ResolveCmd struct {
	Template string `arg:"" help:"Path to the threads template"`
	Output   string `short:"o" help:"Write the resolved document here instead of a temp file"`
}

func runResolve(cli CLI, deps Dependencies, out, errOut io.Writer) int {
	console := ui.New(out)

	path, cleanup, err := artifact.Materialize(cli.Resolve.Template, colorVars(deps))
	if err != nil {
		return exitWithError(errOut, err)
	}

	if cli.Resolve.Output != "" {
		if err := artifact.Export(path, cli.Resolve.Output); err != nil {
			cleanup()
			return exitWithError(errOut, err)
		}
		path = cli.Resolve.Output
	}

	console.Success("Template resolved")
	console.Item("Template", cli.Resolve.Template)
	console.Item("Resolved", path)
	if cli.Resolve.Output == "" {
		console.Info("Pass this path to the mesh generator, or remove it when done")
	}
	return 0
}
