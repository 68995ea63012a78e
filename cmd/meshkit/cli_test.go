// Where: cli/cmd/meshkit/cli_test.go
// What: Tests for CLI dependency wiring.
package main

import (
	"os"
	"testing"
)

func TestBuildDependencies(t *testing.T) {
	deps := buildDependencies()
	if deps.Out != os.Stdout {
		t.Fatal("expected stdout writer")
	}
	if deps.Err != os.Stderr {
		t.Fatal("expected stderr writer")
	}
	if deps.Environ == nil {
		t.Fatal("expected environment source")
	}
}
