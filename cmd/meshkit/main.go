// Where: cli/cmd/meshkit/main.go
// What: CLI entrypoint.
// Why: Execute meshkit commands with configured dependencies.
package main

import (
	"os"

	"github.com/stitchworks/embroidery-mesh/cli/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
