// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep project identity in one place.
package meta

const (
	// Project Identity
	AppName = "meshkit"

	// Default Artifacts
	DefaultMeshOutput = "embroidery_mesh.png"
)
