// Where: cli/internal/app/version.go
// What: Version command.
package app

import (
	"fmt"
	"io"

	"github.com/stitchworks/embroidery-mesh/cli/internal/meta"
	"github.com/stitchworks/embroidery-mesh/cli/internal/version"
)

func runVersion(out io.Writer) int {
	fmt.Fprintf(out, "%s %s\n", meta.AppName, version.GetVersion())
	return 0
}
