// Where: cli/internal/artifact/artifact.go
// What: Intermediate artifact lifecycle for resolved templates.
// Why: A failing invocation must leave the filesystem exactly as it found it.
package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/stitchworks/embroidery-mesh/cli/internal/placeholder"
)

// ErrTemplateNotFound marks a missing or unreadable template file.
var ErrTemplateNotFound = errors.New("template not found")

// Materialize reads the template at templatePath, resolves placeholders
// from vars, and persists the resolved document to a uniquely named
// temporary file. The temp name carries the template's base name so
// leftover files from --keep runs are attributable.
//
// On success it returns the artifact path and a cleanup function that
// removes it; the caller decides whether the artifact is handed off or
// scoped to the invocation. On any failure no artifact remains on disk
// and cleanup is nil.
func Materialize(templatePath string, vars map[string]string) (string, func(), error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templatePath)
		}
		return "", nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, templatePath, err)
	}

	resolved, err := placeholder.Resolve(string(data), vars)
	if err != nil {
		return "", nil, err
	}

	base := filepath.Base(templatePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	tmp, err := os.CreateTemp("", stem+"-resolved-*"+ext)
	if err != nil {
		return "", nil, fmt.Errorf("create resolved artifact: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.WriteString(resolved); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("write resolved artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close resolved artifact: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("chmod resolved artifact: %w", err)
	}
	return tmpPath, cleanup, nil
}

// Export copies the artifact at path to dest and removes the original.
// A plain rename is not enough: the temp directory may live on another
// filesystem than dest.
func Export(path, dest string) error {
	if err := os.Rename(path, dest); err == nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read resolved artifact: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("export resolved artifact: %w", err)
	}
	return os.Remove(path)
}
