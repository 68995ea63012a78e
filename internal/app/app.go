// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/stitchworks/embroidery-mesh/cli/internal/envutil"
	"github.com/stitchworks/embroidery-mesh/cli/internal/meta"
	"github.com/stitchworks/embroidery-mesh/cli/internal/placeholder"
)

// Dependencies holds the injected collaborators for command execution.
// Environment access goes through Environ so tests can supply a fixed
// variable set instead of mutating the process environment.
type Dependencies struct {
	Out     io.Writer
	Err     io.Writer
	Environ func() []string
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	EnvFile string `name:"env-file" help:"Path to .env file with COLOR variables"`

	Resolve  ResolveCmd  `cmd:"" help:"Resolve color placeholders in a threads template"`
	Generate GenerateCmd `cmd:"" help:"Resolve a template and render the mesh image"`
	Mesh     MeshCmd     `cmd:"" help:"Render a mesh image from a concrete threads file"`
	Grid     GridCmd     `cmd:"" help:"Generate a checkerboard thread pattern"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

// Run parses args and dispatches to the requested command.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := deps.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	if deps.Environ == nil {
		deps.Environ = os.Environ
	}

	cli := CLI{}
	parser, err := kong.New(&cli, kong.Name(meta.AppName),
		kong.Description("Embroidery mesh template and image toolkit"))
	if err != nil {
		return exitWithError(errOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(errOut, err)
	}

	// Load an environment file if provided, or .env when present.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(errOut, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(errOut, "Warning: failed to load .env: %v\n", err)
		}
	}

	handlers := map[string]func(CLI, Dependencies, io.Writer, io.Writer) int{
		"resolve <template>":  runResolve,
		"generate <template>": runGenerate,
		"mesh":                runMesh,
		"grid":                runGrid,
		"version": func(_ CLI, _ Dependencies, out io.Writer, _ io.Writer) int {
			return runVersion(out)
		},
	}
	if handler, ok := handlers[ctx.Command()]; ok {
		return handler(cli, deps, out, errOut)
	}

	fmt.Fprintln(errOut, "unknown command")
	return 1
}

func exitWithError(errOut io.Writer, err error) int {
	fmt.Fprintln(errOut, err)
	return 1
}

// colorVars collects the placeholder bindings from the environment.
// This is the only place the variable mapping touches process state.
func colorVars(deps Dependencies) map[string]string {
	return envutil.Matching(deps.Environ(), placeholder.NamePattern)
}
