// Where: cli/cmd/meshkit/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/stitchworks/embroidery-mesh/cli/internal/app"
)

// buildDependencies constructs the runtime dependencies for the CLI.
// Placeholder bindings come from the process environment; everything
// below the boundary receives them as an explicit mapping.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Environ: os.Environ,
	}
}
